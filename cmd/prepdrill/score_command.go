package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"prepdrill/internal/logging"
	"prepdrill/internal/scoring"
	"prepdrill/internal/services/gemini"
	"prepdrill/internal/services/openai"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var remoteFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "score <question> <answer>",
		Short: "Score a single answer without recording it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice, err := parseRemoteChoice(remoteFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			registry := scoring.NewRegistry(
				openai.NewClient(cfg.OpenAIProvider()),
				gemini.NewClient(cfg.GeminiProvider()),
			)
			evaluator := scoring.NewEvaluator(registry, cfg.Scoring.RemoteEnabled, cfg.Scoring.Provider, logger)
			result := evaluator.Evaluate(cmd.Context(), args[0], args[1], choice)

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoded, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				fmt.Fprintln(out, string(encoded))
				return nil
			}
			fmt.Fprintf(out, "Score: %.1f/10\n", result.Score)
			fmt.Fprintf(out, "Feedback: %s\n", result.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteFlag, "remote", "", "Remote scoring: on, off, openai, or gemini")
	cmd.Flags().Lookup("remote").NoOptDefVal = "on"
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")
	return cmd
}
