package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits/internal/output"
)

func newBestCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best TARGET [PATTERN...]",
		Short: "Print the most specific pattern that matches a target",
		Long: `Print the most specific of the given patterns that matches TARGET. When no
patterns are given, the patterns from the config file are used. Ties go to the
pattern listed first. Exits 1 when no pattern matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			set, err := root.set("best", args[1:])
			if err != nil {
				return err
			}

			report := output.BestReport{Target: target}
			if best, ok := set.Best(target); ok {
				report.Matched = true
				report.Best = best.String()
				strength := best.Strength()
				report.Strength = &strength
			}

			pr, err := root.printer(cmd)
			if err != nil {
				return err
			}
			if err := pr.Best(report); err != nil {
				return err
			}
			if !report.Matched {
				return &NoMatchError{Msg: fmt.Sprintf("no pattern matches %q", target)}
			}
			return nil
		},
	}
	return cmd
}
