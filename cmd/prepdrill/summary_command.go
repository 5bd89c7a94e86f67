package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prepdrill/internal/session"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <session-id>",
		Short: "Show score statistics for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			env, err := ctx.openEnvironment()
			if err != nil {
				return err
			}
			defer env.Close()

			record, err := env.manager.Session(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			summary, err := env.manager.Summarize(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary, record.Domain)
			return nil
		},
	}
}

var titleCaser = cases.Title(language.English)

func printSummary(out io.Writer, summary session.Summary, domain string) {
	label := titleCaser.String(domain)
	if label == "" {
		label = "Practice"
	}
	fmt.Fprintf(out, "%s session %d: %d answer(s)\n", label, summary.SessionID, summary.Count)
	if summary.Count == 0 {
		return
	}
	fmt.Fprintf(out, "Average score: %.1f/10\n", summary.AverageScore)
	fmt.Fprintf(out, "Best: %.1f  Worst: %.1f\n", summary.BestScore, summary.WorstScore)
}
