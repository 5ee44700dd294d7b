package cli

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navstep/pkg/navstep/steps"
)

func newPlanCmd(flags *globalFlags) *cobra.Command {
	var (
		from         []string
		to           []string
		pushMultiple bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the steps between two stacks",
		Long: `Print the intermediate stacks a router writes when moving from --from to --to.
Screens are comma separated, root first.`,
		Example: "  navstep plan --from A,B,C --to A,D,E --push-multiple=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			multi := resolvePushMultiple(cmd, cfg, pushMultiple)

			plan := steps.Plan(from, to, multi)

			out := cmd.OutOrStdout()
			printHeader(out, "%s -> %s (push multiple: %t, common prefix: %d)",
				formatStack(from), formatStack(to), multi, steps.CommonPrefix(from, to))

			prev := from
			for i, step := range plan {
				printStep(out, i+1, steps.Classify(prev, step), step)
				prev = step
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&from, "from", []string{}, "Starting stack")
	cmd.Flags().StringSliceVar(&to, "to", []string{}, "Target stack")
	cmd.Flags().BoolVar(&pushMultiple, "push-multiple", true, "Allow several screens to be pushed in one step")

	return cmd
}
