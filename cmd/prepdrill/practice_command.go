package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"prepdrill/internal/store"
)

func newPracticeCommand(ctx *commandContext) *cobra.Command {
	var name string
	var email string
	var interviewType string
	var remoteFlag string

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			choice, err := parseRemoteChoice(remoteFlag)
			if err != nil {
				return err
			}
			env, err := ctx.openEnvironment()
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			if strings.TrimSpace(name) == "" {
				name, err = prompt(reader, out, "Your name: ")
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(interviewType) == "" {
				types := env.catalog.Types()
				if len(types) == 0 {
					return fmt.Errorf("question catalog is empty")
				}
				options := types
				if len(types) > 1 {
					options = append(append([]string{}, types...), "mixed")
				}
				interviewType, err = prompt(reader, out, fmt.Sprintf("Interview type (%s): ", strings.Join(options, ", ")))
				if err != nil {
					return err
				}
			}
			interviewType = strings.ToLower(strings.TrimSpace(interviewType))

			user := store.User{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Domain: interviewType}
			sessionID, err := env.manager.Start(cmd.Context(), user)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Session %d started. Answer each question, or type 'skip' for a new one and 'quit' to finish.\n\n", sessionID)

			for {
				question, ok := env.manager.NextQuestion(interviewType)
				if !ok {
					fmt.Fprintf(out, "No questions available for type %q.\n", interviewType)
					break
				}
				fmt.Fprintf(out, "Q: %s\n", question)
				answer, err := prompt(reader, out, "> ")
				if err != nil {
					if err == io.EOF {
						break
					}
					return err
				}
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "quit", "exit":
					goto done
				case "skip":
					fmt.Fprintln(out)
					continue
				}

				result, err := env.manager.Submit(cmd.Context(), sessionID, question, answer, choice)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Score: %.1f/10\n", result.Score)
				fmt.Fprintf(out, "Feedback: %s\n\n", result.Feedback)
			}

		done:
			if err := env.manager.End(cmd.Context(), sessionID); err != nil {
				return err
			}
			summary, err := env.manager.Summarize(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			printSummary(out, summary, interviewType)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Your email address")
	cmd.Flags().StringVarP(&interviewType, "type", "t", "", "Interview type (e.g. hr, technical)")
	cmd.Flags().StringVar(&remoteFlag, "remote", "", "Remote scoring: on, off, openai, or gemini")
	cmd.Flags().Lookup("remote").NoOptDefVal = "on"
	return cmd
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
