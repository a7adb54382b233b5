package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subvocab/internal/vocabstore"
)

func newWordsCommand(ctx *commandContext) *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Browse and manage saved vocabulary",
	}

	wordsCmd.AddCommand(newWordsListCommand(ctx))
	wordsCmd.AddCommand(newWordsShowCommand(ctx))
	wordsCmd.AddCommand(newWordsVideoCommand(ctx))
	wordsCmd.AddCommand(newWordsDifficultyCommand(ctx))
	wordsCmd.AddCommand(newWordsDeleteCommand(ctx))

	return wordsCmd
}

func openStore(ctx *commandContext) (*vocabstore.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := vocabstore.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary store: %w", err)
	}
	return store, nil
}

func newWordsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every saved word",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			listed, err := store.ListWords(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintln(out, "No vocabulary saved yet.")
				return nil
			}
			fmt.Fprintln(out, renderWordTable(listed))
			return nil
		},
	}
}

func newWordsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "Show a word's definition and every sentence it appeared in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			text := strings.ToLower(strings.TrimSpace(args[0]))
			word, err := store.GetWord(cmd.Context(), text)
			if err != nil {
				return err
			}
			occurrences, err := store.OccurrencesForWord(cmd.Context(), text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Word:       %s\n", word.Word)
			fmt.Fprintf(out, "Definition: %s\n", word.Definition)
			fmt.Fprintf(out, "Difficulty: %d\n", word.Difficulty)
			fmt.Fprintf(out, "Added:      %s\n", word.AddedAt.Format(time.RFC3339))
			if len(occurrences) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(occurrences))
			for _, occ := range occurrences {
				videoLabel := occ.VideoTitle
				if videoLabel == "" {
					videoLabel = occ.VideoID
				}
				rows = append(rows, []string{videoLabel, occ.OriginalSentence, occ.TranslatedSentence})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Video", "Sentence", "Translation"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newWordsVideoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "video <video-id>",
		Short: "List the words saved for one video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			listed, err := store.WordsForVideo(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintln(out, "No vocabulary saved for that video.")
				return nil
			}
			fmt.Fprintln(out, renderWordTable(listed))
			return nil
		},
	}
}

func newWordsDifficultyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-difficulty <word> <0-4>",
		Short: "Update a word's difficulty rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("difficulty must be a number between 0 and 4: %q", args[1])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			text := strings.ToLower(strings.TrimSpace(args[0]))
			if err := store.SetDifficulty(cmd.Context(), text, difficulty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set difficulty of %q to %d.\n", text, difficulty)
			return nil
		},
	}
}

func newWordsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <word>",
		Short: "Remove a word and all of its recorded sentences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			text := strings.ToLower(strings.TrimSpace(args[0]))
			if err := store.DeleteWord(cmd.Context(), text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", text)
			return nil
		},
	}
}

func renderWordTable(listed []vocabstore.Word) string {
	rows := make([][]string, 0, len(listed))
	for _, word := range listed {
		rows = append(rows, []string{
			word.Word,
			word.Definition,
			strconv.Itoa(word.Difficulty),
			word.AddedAt.Format("2006-01-02"),
		})
	}
	return renderTable(
		[]string{"Word", "Definition", "Difficulty", "Added"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	)
}
