// Package gemini enriches candidate vocabulary words through the Gemini
// generateContent API.
//
// A single batched request carries every candidate word plus the full video
// transcript so the model can ground definitions and example sentences in the
// context the learner actually heard. Models frequently wrap JSON output in
// markdown code fences; the decoder tolerates fenced and unfenced payloads
// alike and treats anything that still fails to parse as a parsing failure.
package gemini
