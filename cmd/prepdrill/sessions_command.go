package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded practice sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.openEnvironment()
			if err != nil {
				return err
			}
			defer env.Close()

			sessions, err := env.store.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				ended := "open"
				if session.EndedAt != nil {
					ended = session.EndedAt.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{
					strconv.FormatInt(session.ID, 10),
					session.UserName,
					session.Domain,
					session.StartedAt.Local().Format(time.DateTime),
					ended,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Type", "Started", "Ended"},
				rows, 1))
			return nil
		},
	}

	sessionsCmd.AddCommand(newSessionsShowCommand(ctx))
	return sessionsCmd
}

func newSessionsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the transcript of one session",
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

			if _, err := env.store.GetSession(cmd.Context(), sessionID); err != nil {
				return err
			}
			responses, err := env.store.ResponsesForSession(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(responses) == 0 {
				fmt.Fprintf(out, "Session %d has no responses.\n", sessionID)
				return nil
			}

			rows := make([][]string, 0, len(responses))
			for i, response := range responses {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					truncate(response.Question, 48),
					truncate(response.Answer, 48),
					fmt.Sprintf("%.1f", response.Score),
					truncate(response.Feedback.Feedback, 56),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Question", "Answer", "Score", "Feedback"},
				rows, 1, 4))
			return nil
		},
	}
}
