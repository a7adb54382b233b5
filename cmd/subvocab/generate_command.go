package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"subvocab/internal/captions"
	"subvocab/internal/config"
	"subvocab/internal/gemini"
	"subvocab/internal/logging"
	"subvocab/internal/pipeline"
	"subvocab/internal/vocabstore"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "generate <video-id>",
		Short: "Fetch captions and build vocabulary for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := strings.TrimSpace(args[0])
			if videoID == "" {
				return fmt.Errorf("video id required")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			// One generation run per data directory at a time.
			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire pipeline lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another generation run is already in progress (lock: %s)", cfg.LockPath())
			}
			defer func() { _ = lock.Unlock() }()

			logger, closeLogger := newRunLogger(cfg)
			defer closeLogger()

			store, err := vocabstore.Open(cfg)
			if err != nil {
				return fmt.Errorf("open vocabulary store: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			observer := func(update pipeline.Update) {
				printStatusUpdate(out, update, colorize)
			}

			gen := pipeline.NewGenerator(cfg,
				captions.NewClient(cfg.YouTube),
				gemini.NewClient(cfg.Gemini),
				store,
				pipeline.WithObserver(observer),
				pipeline.WithLogger(logger),
			)

			result, err := gen.Generate(cmd.Context(), videoID, title)
			if err != nil {
				return fmt.Errorf("generate vocabulary for %s: %w", videoID, err)
			}

			if result.Skipped {
				fmt.Fprintf(out, "Video %s already has saved vocabulary; nothing to do.\n", videoID)
				return nil
			}
			fmt.Fprintf(out, "Saved %d words for video %s.\n", result.WordCount, videoID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Video title to store alongside the vocabulary")
	return cmd
}

func printStatusUpdate(out io.Writer, update pipeline.Update, colorize bool) {
	label := update.Status.Label()
	switch update.Status {
	case pipeline.StatusCompleted:
		if colorize {
			label = ansiGreen + label + ansiReset
		}
		fmt.Fprintf(out, "  %s\n", label)
	case pipeline.StatusFailed:
		if colorize {
			label = ansiRed + label + ansiReset
		}
		fmt.Fprintf(out, "  %s: %s\n", label, update.Message)
	default:
		fmt.Fprintf(out, "  %s...\n", label)
	}
}

// newRunLogger opens the shared log file for the run, falling back to stderr
// when the file cannot be created.
func newRunLogger(cfg *config.Config) (*slog.Logger, func()) {
	var writer io.Writer = os.Stderr
	closer := func() {}
	if logPath, err := logging.LogPath(cfg.Paths.LogDir); err == nil && logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			writer = file
			closer = func() { _ = file.Close() }
		}
	}

	logger, logErr := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: writer,
	})
	if logErr != nil {
		closer()
		return logging.NewNop(), func() {}
	}
	return logger, closer
}

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)
