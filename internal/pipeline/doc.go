// Package pipeline orchestrates vocabulary generation for a single video.
//
// A run moves through a fixed sequence of statuses: checking existing data,
// fetching captions, processing text, fetching definitions and examples,
// saving to the database, then completed or failed. Observers receive each
// transition in order from the run itself, so UIs can mirror progress without
// polling. A video that already has saved vocabulary completes immediately
// without touching the network.
package pipeline
