package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navstep/pkg/navstep"
	"github.com/BrandonKowalski/navstep/pkg/navstep/router"
	"github.com/BrandonKowalski/navstep/pkg/navstep/steps"
)

func newSimulateCmd(flags *globalFlags) *cobra.Command {
	var (
		from         []string
		to           []string
		then         []string
		thenAfter    time.Duration
		delay        time.Duration
		pushMultiple bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a navigation against a live router",
		Long: `Drive a router from --from to --to and print every stack write as it lands.
With --then, a second navigation is issued after --then-after to show how a
newer navigation supersedes the rest of the first one.`,
		Example: "  navstep simulate --from A --to A,B,C,D --then A,X --then-after 1s --push-multiple=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				cfg.StepDelay = delay
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			opts := cfg.RouterOptions()
			opts.CanPushMultiple = resolvePushMultiple(cmd, cfg, pushMultiple)
			opts.Logger = navstep.GetLogger()

			r := router.New(opts, from...)
			defer r.Close()

			out := cmd.OutOrStdout()
			printHeader(out, "start %s (push multiple: %t, delay: %s)",
				formatStack(from), opts.CanPushMultiple, cfg.StepDelay)

			var (
				mu     sync.Mutex
				writes int
				prev   = from
			)
			started := time.Now()
			r.Path().OnChange(func(stack []string) {
				mu.Lock()
				defer mu.Unlock()
				writes++
				printStep(out, writes, steps.Classify(prev, stack), stack)
				_, _ = dimColor.Fprintf(out, "     at %s\n", time.Since(started).Round(time.Millisecond))
				prev = stack
			})

			ctx := cmd.Context()
			done := make(chan struct{})
			r.NavigateTo(to, func() { close(done) })

			if len(then) == 0 {
				select {
				case <-done:
				case <-ctx.Done():
					return ctx.Err()
				}
			} else {
				select {
				case <-done:
				case <-time.After(thenAfter):
				case <-ctx.Done():
					return ctx.Err()
				}
				mu.Lock()
				printHeader(out, "navigate %s", formatStack(then))
				mu.Unlock()
				if err := r.NavigateAwait(ctx, func(stack *[]string) { *stack = then }); err != nil {
					return err
				}
			}

			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintf(out, "final %s after %d writes\n", formatStack(r.Path().Elements()), writes)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&from, "from", []string{}, "Starting stack")
	cmd.Flags().StringSliceVar(&to, "to", []string{}, "Target stack")
	cmd.Flags().StringSliceVar(&then, "then", []string{}, "Second target stack issued after --then-after")
	cmd.Flags().DurationVar(&thenAfter, "then-after", 0, "Delay before the --then navigation")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override the delay between steps")
	cmd.Flags().BoolVar(&pushMultiple, "push-multiple", true, "Allow several screens to be pushed in one step")

	return cmd
}
