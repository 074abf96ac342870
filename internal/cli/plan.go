package cli

import (
	"fmt"

	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/ariel-frischer/courgette/internal/plan"
	"github.com/spf13/cobra"
)

const planUsage = "courgette plan <feature-uri>..."

type planOptions struct {
	jsonOutput  bool
	maxParallel int
}

func newPlanCmd(root *rootFlags) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <feature-uri>...",
		Short: "Build the worker option set of every feature",
		Long: `Build one worker option set per feature concurrently, bounded by the
resolved thread count, and print them in argument order. Every worker shares
one session, so the printed temp paths are exactly the ones a run would use.`,
		Example: `  courgette plan features/a.feature features/b.feature
  courgette plan --json --parallel 2 classpath:features/*.feature`,
		RunE: timed(root, "plan", func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, root, opts, args)
		}),
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&opts.maxParallel, "parallel", 0, "Override the thread count used to build workers")

	return cmd
}

func runPlan(cmd *cobra.Command, root *rootFlags, opts *planOptions, args []string) error {
	if len(args) == 0 {
		return clierrors.FeatureRequired(planUsage)
	}
	if opts.maxParallel < 0 {
		return clierrors.NewArgumentErrorWithUsage("--parallel must not be negative", planUsage)
	}

	rc, err := loadRunContext(cmd, root)
	if err != nil {
		return err
	}

	workers, err := rc.planner(opts.maxParallel).Workers(cmd.Context(), plan.FeaturesFromURIs(args))
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "building workers")
	}

	if opts.jsonOutput {
		views := make([]workerView, len(workers))
		for i, ws := range workers {
			views[i] = newWorkerView(ws)
		}
		return writeJSON(cmd.OutOrStdout(), views)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s, %d worker(s)\n\n", rc.session.ID, len(workers))
	for i, ws := range workers {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printWorker(out, ws)
	}
	return nil
}
