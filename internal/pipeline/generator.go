package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"subvocab/internal/captions"
	"subvocab/internal/config"
	"subvocab/internal/gemini"
	"subvocab/internal/logging"
	"subvocab/internal/vocabstore"
	"subvocab/internal/words"
)

// CaptionFetcher retrieves timed caption cues for a video.
type CaptionFetcher interface {
	FetchEnglishCaptions(ctx context.Context, videoID string) ([]captions.Line, error)
}

// Enricher produces definitions and example sentences for candidate words.
type Enricher interface {
	Enrich(ctx context.Context, wordList []string, transcript string) ([]gemini.WordDefinition, error)
}

// Saver persists generation results.
type Saver interface {
	AlreadyProcessed(ctx context.Context, videoID string) (bool, error)
	SaveBatch(ctx context.Context, video vocabstore.Video, entries []vocabstore.Entry) error
}

// Generator runs the vocabulary extraction pipeline for one video at a time.
type Generator struct {
	fetcher   CaptionFetcher
	enricher  Enricher
	store     Saver
	stopWords []string
	logger    *slog.Logger
	observer  Observer
}

// Option customizes the generator.
type Option func(*Generator)

// WithObserver registers a status observer. Transitions are delivered
// sequentially from the goroutine executing the run.
func WithObserver(observer Observer) Option {
	return func(g *Generator) {
		g.observer = observer
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logging.WithComponent(logger, "pipeline")
		}
	}
}

// NewGenerator wires a generator from its collaborators. Stop words combine
// the built-in list with any extras from configuration.
func NewGenerator(cfg *config.Config, fetcher CaptionFetcher, enricher Enricher, store Saver, opts ...Option) *Generator {
	gen := &Generator{
		fetcher:   fetcher,
		enricher:  enricher,
		store:     store,
		stopWords: words.MergeStopWords(cfg.Vocabulary.StopWords),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	VideoID   string
	WordCount int
	Skipped   bool
}

// Generate runs the full pipeline for one video. It returns the result on
// success; on failure the observer sees a failed transition carrying the
// error message and the error is returned to the caller.
func (g *Generator) Generate(ctx context.Context, videoID, title string) (Result, error) {
	result := Result{RunID: uuid.NewString(), VideoID: videoID}
	logger := g.logger.With(
		logging.String(logging.FieldRunID, result.RunID),
		logging.String(logging.FieldVideoID, videoID),
	)
	started := time.Now()

	g.notify(StatusCheckingExisting, "")
	processed, err := g.store.AlreadyProcessed(ctx, videoID)
	if err != nil {
		return result, g.fail(logger, err)
	}
	if processed {
		logger.Info("video already processed, skipping generation")
		result.Skipped = true
		g.notify(StatusCompleted, "")
		return result, nil
	}

	g.notify(StatusFetchingCaptions, "")
	lines, err := g.fetcher.FetchEnglishCaptions(ctx, videoID)
	if err != nil {
		return result, g.fail(logger, err)
	}
	transcript := captions.JoinText(lines)
	logger.Info("captions fetched", logging.Int("cues", len(lines)))

	g.notify(StatusProcessingText, "")
	candidates, err := words.Normalize(transcript, g.stopWords)
	if err != nil {
		return result, g.fail(logger, err)
	}
	logger.Info("candidate words extracted", logging.Int("candidates", len(candidates)))

	g.notify(StatusFetchingDefinitions, "")
	definitions, err := g.enricher.Enrich(ctx, candidates, transcript)
	if err != nil {
		return result, g.fail(logger, err)
	}
	logger.Info("definitions fetched", logging.Int("definitions", len(definitions)))

	g.notify(StatusSaving, "")
	entries := make([]vocabstore.Entry, 0, len(definitions))
	for _, def := range definitions {
		entries = append(entries, vocabstore.Entry{
			Word:               def.Word,
			Definition:         def.Definition,
			OriginalSentence:   def.OriginalSentence,
			TranslatedSentence: def.TranslatedSentence,
		})
	}
	video := vocabstore.Video{ID: videoID, Title: title, SubtitleText: transcript}
	if err := g.store.SaveBatch(ctx, video, entries); err != nil {
		return result, g.fail(logger, err)
	}

	result.WordCount = len(entries)
	logger.Info("generation completed",
		logging.Int("words_saved", result.WordCount),
		logging.Duration("run_duration", time.Since(started)),
	)
	g.notify(StatusCompleted, "")
	return result, nil
}

func (g *Generator) notify(status Status, message string) {
	if g.observer != nil {
		g.observer(Update{Status: status, Message: message})
	}
}

func (g *Generator) fail(logger *slog.Logger, err error) error {
	logger.Error("generation failed", logging.Error(err))
	g.notify(StatusFailed, err.Error())
	return err
}
