package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ariel-frischer/courgette/internal/build"
	"github.com/ariel-frischer/courgette/internal/output"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information",
		Long:    "Display version, commit, build date, and Go version information for courgette",
		Example: `  # Show version info
  courgette version

  # Plain output (for scripts)
  courgette version --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
			} else {
				printPrettyVersion(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "courgette %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printPrettyVersion(out io.Writer) {
	output.PrintHeading(out, "courgette")
	output.PrintSeparator(out)
	output.PrintLabeled(out, 2, 9, "Version", build.Version)
	output.PrintLabeled(out, 2, 9, "Commit", build.ShortCommit())
	output.PrintLabeled(out, 2, 9, "Built", build.BuildDate)
	output.PrintLabeled(out, 2, 9, "Go", runtime.Version())
	output.PrintLabeled(out, 2, 9, "Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
}
