package gemini

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a vocabulary tutor helping a young learner study English words from a video they just watched.

For each word in the list below, produce:
- a short, child-friendly definition in English
- the sentence from the transcript where the word appears (or a simple example sentence if it does not appear verbatim)
- a translation of that sentence into %s

Words:
%s

Transcript:
%s

Respond with ONLY a JSON array. Each element must be an object with exactly these keys: "word", "definition", "original_sentence", "translated_sentence". Do not wrap the JSON in markdown fences or add commentary.`

// BuildPrompt renders the batched enrichment prompt for the supplied words
// and transcript.
func BuildPrompt(wordList []string, transcript, targetLanguage string) string {
	items := make([]string, 0, len(wordList))
	for _, word := range wordList {
		items = append(items, "- "+word)
	}
	return fmt.Sprintf(promptTemplate, targetLanguage, strings.Join(items, "\n"), transcript)
}
