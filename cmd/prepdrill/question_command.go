package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newQuestionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "question <type>",
		Short: "Print one random question for an interview type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.openEnvironment()
			if err != nil {
				return err
			}
			defer env.Close()

			question, ok := env.manager.NextQuestion(args[0])
			if !ok {
				types := env.catalog.Types()
				if len(types) == 0 {
					return fmt.Errorf("question catalog is empty")
				}
				return fmt.Errorf("no questions for type %q (available: %s)", args[0], strings.Join(types, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), question)
			return nil
		},
	}
}
