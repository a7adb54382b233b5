// Package words turns raw transcript text into a deterministic candidate-word
// set for definition lookup.
//
// Normalize is a pure function: identical input always yields a byte-identical,
// lexicographically sorted result, which downstream caching and tests rely on.
package words
