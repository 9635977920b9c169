package cli

import (
	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits"
	"github.com/armn3t/go-spirits/internal/logging"
	"github.com/armn3t/go-spirits/internal/output"
)

func newFindCmd(root *rootOptions) *cobra.Command {
	var cf candidateFlags

	cmd := &cobra.Command{
		Use:   "find PATTERN [CANDIDATE...]",
		Short: "Print the candidates that match a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.compile("find", args[0])
			if err != nil {
				return err
			}
			candidates, err := cf.collect(cmd, args[1:])
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.Get("find"), "find")
			var matches []string
			if root.cfg.Parallel {
				matches, err = spirits.FindMatchesParallel(cmd.Context(), p, candidates)
				if err != nil {
					return err
				}
			} else {
				matches = p.FindMatches(candidates...)
			}
			done()

			pr, err := root.printer(cmd)
			if err != nil {
				return err
			}
			return pr.Find(output.FindReport{Pattern: p.String(), Matches: matches})
		},
	}
	cf.register(cmd)
	return cmd
}
