package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits/internal/output"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var cf candidateFlags

	cmd := &cobra.Command{
		Use:   "match PATTERN [CANDIDATE...]",
		Short: "Check that every candidate matches a pattern",
		Long: `Check candidates against PATTERN. Exits 0 when every candidate matches and 1
otherwise. At least one candidate is required.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.compile("match", args[0])
			if err != nil {
				return err
			}
			candidates, err := cf.collect(cmd, args[1:])
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no candidates given")
			}

			report := output.MatchReport{Pattern: p.String(), AllMatch: true}
			for _, c := range candidates {
				ok := p.Match(c)
				report.AllMatch = report.AllMatch && ok
				report.Results = append(report.Results, output.MatchResult{Candidate: c, Matched: ok})
			}

			pr, err := root.printer(cmd)
			if err != nil {
				return err
			}
			if err := pr.Match(report); err != nil {
				return err
			}
			if !report.AllMatch {
				return &NoMatchError{Msg: fmt.Sprintf("not every candidate matches %q", p.String())}
			}
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}
