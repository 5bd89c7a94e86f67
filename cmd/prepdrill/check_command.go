package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prepdrill/internal/scoring"
	"prepdrill/internal/services/gemini"
	"prepdrill/internal/services/openai"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [provider]",
		Short: "Verify remote provider credentials",
		Long:  "Sends a short probe request to each configured provider and reports whether the credentials work.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			providers := []scoring.RemoteScorer{
				openai.NewClient(cfg.OpenAIProvider()),
				gemini.NewClient(cfg.GeminiProvider()),
			}
			if len(args) == 1 {
				name := strings.ToLower(strings.TrimSpace(args[0]))
				var filtered []scoring.RemoteScorer
				for _, provider := range providers {
					if provider.Name() == name {
						filtered = append(filtered, provider)
					}
				}
				if len(filtered) == 0 {
					return fmt.Errorf("unknown provider %q (expected openai or gemini)", args[0])
				}
				providers = filtered
			}

			out := cmd.OutOrStdout()
			failures := 0
			for _, provider := range providers {
				reply, err := provider.Validate(cmd.Context())
				if err != nil {
					failures++
					fmt.Fprintf(out, "%-8s FAIL  %v\n", provider.Name(), err)
					continue
				}
				fmt.Fprintf(out, "%-8s OK    %s\n", provider.Name(), strings.TrimSpace(reply))
			}
			if failures > 0 {
				return fmt.Errorf("%d provider check(s) failed", failures)
			}
			return nil
		},
	}
}
