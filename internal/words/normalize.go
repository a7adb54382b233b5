package words

import (
	"sort"
	"strings"
	"unicode"

	"subvocab/internal/services"
)

// Normalize reduces transcript text to a deduplicated, sorted candidate-word
// set. Tokens are lowercased and split on every non-alphanumeric rune; purely
// numeric tokens and stop words are discarded. The stop-word slice is not
// mutated. An empty result is an error so callers can distinguish "nothing to
// enrich" from a silent no-op.
func Normalize(fullText string, stopWords []string) ([]string, error) {
	stops := make(map[string]struct{}, len(stopWords))
	for _, word := range stopWords {
		normalized := strings.ToLower(strings.TrimSpace(word))
		if normalized != "" {
			stops[normalized] = struct{}{}
		}
	}

	tokens := strings.FieldsFunc(strings.ToLower(fullText), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	candidates := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if allDigits(token) {
			continue
		}
		if _, stopped := stops[token]; stopped {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		candidates = append(candidates, token)
	}

	if len(candidates) == 0 {
		return nil, services.Wrap(services.ErrEmptyCandidates, "normalize", "", "no candidate words after filtering", nil)
	}

	sort.Strings(candidates)
	return candidates, nil
}

func allDigits(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(token) > 0
}
