package words_test

import (
	"errors"
	"testing"

	"subvocab/internal/services"
	"subvocab/internal/words"
)

func TestNormalizeFiltersStopWords(t *testing.T) {
	got, err := words.Normalize("The Quick Brown Fox jumps", []string{"the"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := []string{"brown", "fox", "jumps", "quick"}
	assertWords(t, want, got)
}

func TestNormalizeDropsNumericTokens(t *testing.T) {
	got, err := words.Normalize("room 101 now", nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertWords(t, []string{"now", "room"}, got)
}

func TestNormalizeKeepsAlphanumericTokens(t *testing.T) {
	got, err := words.Normalize("the mp3 player", nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertWords(t, []string{"mp3", "player", "the"}, got)
}

func TestNormalizeDeterministicAcrossRuns(t *testing.T) {
	input := "zebra apple zebra Mango apple banana MANGO"
	first, err := words.Normalize(input, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	second, err := words.Normalize(input, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertWords(t, first, second)
	assertWords(t, []string{"apple", "banana", "mango", "zebra"}, first)
}

func TestNormalizeStopWordsCaseInsensitive(t *testing.T) {
	got, err := words.Normalize("Hello WORLD", []string{"HELLO"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertWords(t, []string{"world"}, got)
}

func TestNormalizeSplitsOnPunctuation(t *testing.T) {
	got, err := words.Normalize("don't stop, it's fun!", []string{"t", "s"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertWords(t, []string{"don", "fun", "it", "stop"}, got)
}

func TestNormalizeEmptyResultIsError(t *testing.T) {
	_, err := words.Normalize("42 7 1999", nil)
	if err == nil {
		t.Fatal("expected error for empty candidate set")
	}
	if !errors.Is(err, services.ErrEmptyCandidates) {
		t.Fatalf("expected empty-candidate marker, got %v", err)
	}
}

func TestNormalizeDoesNotMutateStopWords(t *testing.T) {
	stops := []string{"The", "And"}
	if _, err := words.Normalize("the and everything", stops); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if stops[0] != "The" || stops[1] != "And" {
		t.Fatalf("stop-word slice mutated: %v", stops)
	}
}

func TestMergeStopWordsDeduplicates(t *testing.T) {
	merged := words.MergeStopWords([]string{"THE", "gonna", "gonna", ""})
	count := 0
	for _, word := range merged {
		if word == "gonna" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one gonna entry, got %d", count)
	}
	the := 0
	for _, word := range merged {
		if word == "the" {
			the++
		}
	}
	if the != 1 {
		t.Fatalf("expected single the entry, got %d", the)
	}
}

func assertWords(t *testing.T, want, got []string) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
