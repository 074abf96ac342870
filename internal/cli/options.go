package cli

import (
	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/ariel-frischer/courgette/internal/plan"
	"github.com/ariel-frischer/courgette/internal/runopts"
	"github.com/spf13/cobra"
)

type optionsOptions struct {
	jsonOutput bool
}

func newOptionsCmd(root *rootFlags) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:   "options [feature-uri]",
		Short: "Print the resolved option set for one feature or the whole suite",
		Long: `Resolve the option set a worker runs with.

With a feature URI the worker-mode set is printed: reports and the rerun file are
relocated to per-worker temp paths and the feature's resource path is the only
positional argument. Without one the aggregate set is printed: the declared
feature paths are kept and the rerun file goes to the report target directory.`,
		Example: `  courgette options classpath:features/orders.feature
  courgette options --json
  courgette options -D courgette.report_target_dir=build features/a.feature`,
		Args: cobra.MaximumNArgs(1),
		RunE: timed(root, "options", func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, root, opts, args)
		}),
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runOptions(cmd *cobra.Command, root *rootFlags, opts *optionsOptions, args []string) error {
	rc, err := loadRunContext(cmd, root)
	if err != nil {
		return err
	}

	planner := rc.planner(0)
	var ws *runopts.WorkerOptionSet
	if len(args) == 1 {
		var workers []*runopts.WorkerOptionSet
		workers, err = planner.Workers(cmd.Context(), plan.FeaturesFromURIs(args))
		if err == nil {
			ws = workers[0]
		}
	} else {
		ws, err = planner.Aggregate()
	}
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "resolving options")
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), newWorkerView(ws))
	}
	printWorker(cmd.OutOrStdout(), ws)
	return nil
}
