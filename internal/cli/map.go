package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits/internal/logging"
	"github.com/armn3t/go-spirits/internal/output"
)

func newMapCmd(root *rootOptions) *cobra.Command {
	var (
		cf       candidateFlags
		patterns []string
	)

	cmd := &cobra.Command{
		Use:   "map [CANDIDATE...]",
		Short: "Group candidates by the patterns they match",
		Long: `Group candidates by pattern. Patterns come from --pattern flags or, when none
are given, from the config file. Every pattern is listed, including those that
match nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := root.set("map", patterns)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				return fmt.Errorf("no patterns given (use --pattern or the config file)")
			}
			candidates, err := cf.collect(cmd, args)
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.Get("map"), "map")
			report := output.GroupReport{}
			if root.cfg.Parallel {
				report.Groups, err = set.GroupsParallel(cmd.Context(), candidates)
				if err != nil {
					return err
				}
			} else {
				report.Groups = set.Groups(candidates)
			}
			done()

			pr, err := root.printer(cmd)
			if err != nil {
				return err
			}
			return pr.Groups(report)
		},
	}
	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "Pattern to group by (repeatable)")
	cf.register(cmd)
	return cmd
}
