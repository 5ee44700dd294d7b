// Package cli implements the navstep developer command line: it prints
// navigation plans and plays them back against a live router.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navstep/pkg/navstep"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// NewRootCmd builds the navstep command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "navstep",
		Version: version,
		Short:   "Plan and replay step-by-step navigation stack transitions",
		Long: `navstep computes how a navigation stack moves from one state to another
one visible pop or push at a time, and replays the result with the same delays
a router would use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			navstep.Init(navstep.Options{
				LogOutput: cmd.ErrOrStderr(),
				LogLevel:  flags.logLevel,
			})
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newPlanCmd(flags))
	rootCmd.AddCommand(newSimulateCmd(flags))

	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig returns the file configuration, or the defaults with
// environment overrides when no file was given. The configured log level
// applies unless --log-level was given.
func loadConfig(flags *globalFlags) (navstep.Config, error) {
	var cfg navstep.Config
	if flags.configPath != "" {
		loaded, err := navstep.LoadConfig(flags.configPath)
		if err != nil {
			return navstep.Config{}, err
		}
		cfg = loaded
	} else {
		cfg = navstep.DefaultConfig()
		if err := cfg.ApplyEnv(); err != nil {
			return navstep.Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return navstep.Config{}, err
		}
	}

	if flags.logLevel == "" && cfg.LogLevel != "" {
		navstep.SetRawLogLevel(cfg.LogLevel)
	}
	return cfg, nil
}

// resolvePushMultiple lets an explicit --push-multiple win over the config.
func resolvePushMultiple(cmd *cobra.Command, cfg navstep.Config, flagValue bool) bool {
	if cmd.Flags().Changed("push-multiple") {
		return flagValue
	}
	return cfg.CanPushMultiple()
}

var (
	popColor    = color.New(color.FgYellow, color.Bold)
	pushColor   = color.New(color.FgGreen, color.Bold)
	noneColor   = color.New(color.FgHiBlack)
	headerColor = color.New(color.FgBlue, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
)
