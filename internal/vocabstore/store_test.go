package vocabstore_test

import (
	"context"
	"errors"
	"testing"

	"subvocab/internal/testsupport"
	"subvocab/internal/vocabstore"
)

func sampleEntries() []vocabstore.Entry {
	return []vocabstore.Entry{
		{Word: "adventure", Definition: "an exciting trip", OriginalSentence: "What an adventure!", TranslatedSentence: "多么棒的冒险！"},
		{Word: "forest", Definition: "a place with many trees", OriginalSentence: "They walked into the forest.", TranslatedSentence: "他们走进了森林。"},
	}
}

func TestSaveBatchAndListWords(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	video := vocabstore.Video{ID: "vid1", Title: "Forest Walk", SubtitleText: "They walked into the forest."}
	if err := store.SaveBatch(ctx, video, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	listed, err := store.ListWords(ctx)
	if err != nil {
		t.Fatalf("ListWords failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 words, got %d", len(listed))
	}
	if listed[0].Word != "adventure" || listed[1].Word != "forest" {
		t.Fatalf("unexpected order: %v, %v", listed[0].Word, listed[1].Word)
	}
	if listed[0].Difficulty != 2 {
		t.Fatalf("expected default difficulty 2, got %d", listed[0].Difficulty)
	}
	if listed[0].AddedAt.IsZero() {
		t.Fatal("expected added_at to be recorded")
	}
}

func TestAlreadyProcessed(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	processed, err := store.AlreadyProcessed(ctx, "vid1")
	if err != nil {
		t.Fatalf("AlreadyProcessed failed: %v", err)
	}
	if processed {
		t.Fatal("fresh database should not report the video as processed")
	}

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	processed, err = store.AlreadyProcessed(ctx, "vid1")
	if err != nil {
		t.Fatalf("AlreadyProcessed failed: %v", err)
	}
	if !processed {
		t.Fatal("expected video to be reported as processed")
	}
}

func TestSaveBatchDeduplicatesAcrossVideos(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first := []vocabstore.Entry{{Word: "adventure", Definition: "an exciting trip", OriginalSentence: "What an adventure!"}}
	second := []vocabstore.Entry{{Word: "Adventure", Definition: "a thrilling journey", OriginalSentence: "Another adventure begins."}}

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1", Title: "One"}, first); err != nil {
		t.Fatalf("SaveBatch vid1 failed: %v", err)
	}
	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid2", Title: "Two"}, second); err != nil {
		t.Fatalf("SaveBatch vid2 failed: %v", err)
	}

	listed, err := store.ListWords(ctx)
	if err != nil {
		t.Fatalf("ListWords failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one shared word row, got %d", len(listed))
	}
	// The first writer wins; the second video must not overwrite the definition.
	if listed[0].Definition != "an exciting trip" {
		t.Fatalf("definition overwritten: %q", listed[0].Definition)
	}

	occurrences, err := store.OccurrencesForWord(ctx, "adventure")
	if err != nil {
		t.Fatalf("OccurrencesForWord failed: %v", err)
	}
	if len(occurrences) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occurrences))
	}
	videos := map[string]bool{}
	for _, occ := range occurrences {
		videos[occ.VideoID] = true
	}
	if !videos["vid1"] || !videos["vid2"] {
		t.Fatalf("expected occurrences in both videos, got %#v", videos)
	}
}

func TestSaveBatchUpsertsVideo(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1", Title: "Old", SubtitleText: "old text"}, sampleEntries()); err != nil {
		t.Fatalf("first SaveBatch failed: %v", err)
	}
	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1", Title: "New", SubtitleText: "new text"}, nil); err != nil {
		t.Fatalf("second SaveBatch failed: %v", err)
	}

	video, err := store.Video(ctx, "vid1")
	if err != nil {
		t.Fatalf("Video failed: %v", err)
	}
	if video.Title != "New" || video.SubtitleText != "new text" {
		t.Fatalf("video not upserted: %#v", video)
	}
}

func TestWordsForVideo(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid2"}, []vocabstore.Entry{{Word: "river"}}); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	listed, err := store.WordsForVideo(ctx, "vid1")
	if err != nil {
		t.Fatalf("WordsForVideo failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 words for vid1, got %d", len(listed))
	}
}

func TestSetDifficulty(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	if err := store.SetDifficulty(ctx, "forest", 4); err != nil {
		t.Fatalf("SetDifficulty failed: %v", err)
	}
	word, err := store.GetWord(ctx, "forest")
	if err != nil {
		t.Fatalf("GetWord failed: %v", err)
	}
	if word.Difficulty != 4 {
		t.Fatalf("expected difficulty 4, got %d", word.Difficulty)
	}

	if err := store.SetDifficulty(ctx, "forest", 9); err == nil {
		t.Fatal("expected out-of-range difficulty to fail")
	}
	if err := store.SetDifficulty(ctx, "missing", 1); !errors.Is(err, vocabstore.ErrWordNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteWordRemovesOccurrences(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	if err := store.DeleteWord(ctx, "adventure"); err != nil {
		t.Fatalf("DeleteWord failed: %v", err)
	}
	if _, err := store.GetWord(ctx, "adventure"); !errors.Is(err, vocabstore.ErrWordNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Words != 1 || stats.Occurrences != 1 {
		t.Fatalf("expected orphaned occurrences removed, got %#v", stats)
	}
}

func TestStats(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Videos != 1 || stats.Words != 2 || stats.Occurrences != 2 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}

func TestCustomDefaultDifficulty(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDefaultDifficulty(0))
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.SaveBatch(ctx, vocabstore.Video{ID: "vid1"}, sampleEntries()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	word, err := store.GetWord(ctx, "adventure")
	if err != nil {
		t.Fatalf("GetWord failed: %v", err)
	}
	if word.Difficulty != 0 {
		t.Fatalf("expected difficulty 0, got %d", word.Difficulty)
	}
}
