package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCredentialMissing marks a missing or empty API credential. Fatal;
	// callers must not retry until configuration changes.
	ErrCredentialMissing = errors.New("credential missing")
	// ErrNoCaptions marks a video without a usable English caption track.
	ErrNoCaptions = errors.New("no captions available")
	// ErrNetwork marks a transport-level failure. Transient; safe to retry.
	ErrNetwork = errors.New("network error")
	// ErrParsing marks a malformed caption or enrichment payload.
	ErrParsing = errors.New("parsing error")
	// ErrEmptyCandidates marks a transcript that normalized to zero words.
	ErrEmptyCandidates = errors.New("empty candidate set")
	// ErrPersistence marks a failed database write or commit.
	ErrPersistence = errors.New("persistence error")
	// ErrTransient marks failures with no more specific classification.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Retryable reports whether the caller may usefully invoke the pipeline again
// without changing configuration or upstream data.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrCredentialMissing),
		errors.Is(err, ErrNoCaptions),
		errors.Is(err, ErrParsing),
		errors.Is(err, ErrEmptyCandidates):
		return false
	default:
		return true
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
