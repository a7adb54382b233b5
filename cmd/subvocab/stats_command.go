package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize database contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", store.Path())
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Count"},
				[][]string{
					{"Videos processed", strconv.Itoa(stats.Videos)},
					{"Vocabulary words", strconv.Itoa(stats.Words)},
					{"Sentence occurrences", strconv.Itoa(stats.Occurrences)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}
