package testsupport

import (
	"testing"

	"subvocab/internal/config"
	"subvocab/internal/vocabstore"
)

// MustOpenStore opens a vocabstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *vocabstore.Store {
	t.Helper()

	store, err := vocabstore.Open(cfg)
	if err != nil {
		t.Fatalf("vocabstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
