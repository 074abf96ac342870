// Package cli implements the courgette command line.
package cli

import (
	"github.com/ariel-frischer/courgette/internal/config"
	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	defines    []string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "courgette",
		Short: "Resolve per-worker cucumber options for parallel test runs",
		Long: `Courgette resolves the option set each parallel cucumber worker runs with.

Declared options come from an options file (courgette.yml by default). Any
courgette.* or cucumber.* property can be overridden per process with an
environment variable (COURGETTE_THREADS=8) or a -D flag (-D courgette.threads=8).
Report and rerun destinations are relocated to per-worker temp files so that
workers running at the same time never write to the same path.`,
		Example: `  # Options for one feature, as a worker would run it
  courgette options classpath:features/orders.feature

  # Options for the aggregate run
  courgette options --json

  # Plan several workers with an override
  courgette plan -D cucumber.tags=@smoke features/a.feature features/b.feature

  # Show the resolved configuration
  courgette config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultOptionsPath, "Path to the options file")
	cmd.PersistentFlags().StringArrayVarP(&flags.defines, "define", "D", nil, "Set a property (key=value, repeatable)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $COURGETTE_LOG_LEVEL or info")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine(), "See: "+c.CommandPath()+" --help")
	})

	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newPlanCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		clierrors.FprintError(cmd.ErrOrStderr(), toCLIError(err))
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntime
	}
	switch cliErr.Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitConfiguration
	default:
		return ExitRuntime
	}
}

func toCLIError(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}
	return clierrors.Wrap(err, clierrors.Runtime)
}
