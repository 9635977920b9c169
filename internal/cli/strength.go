package cli

import (
	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits/internal/output"
)

func newStrengthCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strength [PATTERN...]",
		Short: "Print how specific each pattern is",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := root.set("strength", args)
			if err != nil {
				return err
			}

			report := output.StrengthReport{Patterns: []output.StrengthEntry{}}
			for _, p := range set.Patterns() {
				report.Patterns = append(report.Patterns, output.StrengthEntry{
					Pattern:  p.String(),
					Strength: p.Strength(),
				})
			}

			pr, err := root.printer(cmd)
			if err != nil {
				return err
			}
			return pr.Strengths(report)
		},
	}
}
