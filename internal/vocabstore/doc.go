// Package vocabstore persists vocabulary extraction results in SQLite.
//
// The store keeps three tables: videos the pipeline has processed (with their
// cached transcript text), vocabulary words deduplicated across all videos,
// and per-video occurrences linking a word to the sentence it appeared in.
// Saving a batch is a single transaction so a processed video is either fully
// recorded or absent; re-running a video is therefore always safe.
package vocabstore
