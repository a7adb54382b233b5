package captions

import (
	"regexp"
	"strconv"
	"strings"
)

// Line is a single timed caption cue.
type Line struct {
	Start float64
	Text  string
}

var markupTags = regexp.MustCompile(`<[^>]+>`)

// ParseWebVTT extracts timed cues from a WebVTT-like payload. Text lines
// following a timing boundary are concatenated into one cue; header and
// comment markers (WEBVTT, NOTE, STYLE) are skipped. Cues whose text is empty
// after tag stripping are dropped.
func ParseWebVTT(payload string) []Line {
	var (
		cues        []Line
		currentTime float64
		pending     []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(pending, " "))
		pending = pending[:0]
		if text != "" {
			cues = append(cues, Line{Start: currentTime, Text: text})
		}
	}

	for _, raw := range strings.Split(payload, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.Contains(line, "-->") {
			flush()
			if start, ok := parseCueStart(line); ok {
				currentTime = start
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "WEBVTT") ||
			strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "STYLE") {
			continue
		}
		text := strings.TrimSpace(markupTags.ReplaceAllString(trimmed, ""))
		if text != "" {
			pending = append(pending, text)
		}
	}
	flush()

	return cues
}

func parseCueStart(line string) (float64, bool) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, false
	}
	start := strings.TrimSpace(parts[0])
	components := strings.Split(start, ":")
	if len(components) != 3 {
		return 0, false
	}
	hours, errH := strconv.ParseFloat(components[0], 64)
	minutes, errM := strconv.ParseFloat(components[1], 64)
	seconds, errS := strconv.ParseFloat(components[2], 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

// JoinText concatenates cue text in order with single spaces, producing the
// transcript handed to normalization and enrichment.
func JoinText(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Text != "" {
			parts = append(parts, line.Text)
		}
	}
	return strings.Join(parts, " ")
}
