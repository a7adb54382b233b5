package words

import "strings"

// DefaultStopWords is the built-in exclusion list of common English function
// words. Configuration extends it; it is never consulted implicitly by
// Normalize, callers pass the merged list explicitly.
var DefaultStopWords = []string{
	"a", "about", "after", "all", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "before", "being", "but", "by",
	"can", "could",
	"did", "do", "does", "doing", "down", "during",
	"each",
	"for", "from",
	"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his", "how",
	"i", "if", "in", "into", "is", "it", "its",
	"just",
	"me", "more", "most", "my",
	"no", "not", "now",
	"of", "off", "on", "once", "only", "or", "other", "our", "out", "over",
	"she", "so", "some", "such",
	"than", "that", "the", "their", "them", "then", "there", "these", "they",
	"this", "those", "through", "to", "too",
	"under", "until", "up",
	"very",
	"was", "we", "were", "what", "when", "where", "which", "while", "who",
	"why", "will", "with", "would",
	"you", "your", "yours",
}

// MergeStopWords combines the built-in list with configured extras,
// deduplicating case-insensitively.
func MergeStopWords(extras []string) []string {
	merged := make([]string, 0, len(DefaultStopWords)+len(extras))
	seen := make(map[string]struct{}, len(DefaultStopWords)+len(extras))
	for _, source := range [][]string{DefaultStopWords, extras} {
		for _, word := range source {
			key := strings.ToLower(strings.TrimSpace(word))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, key)
		}
	}
	return merged
}
