package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ariel-frischer/courgette/internal/config"
	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/ariel-frischer/courgette/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the options file",
		Long:  "Show the resolved run configuration, list overridable properties, or write a default options file.",
	}

	cmd.AddCommand(newConfigShowCmd(root))
	cmd.AddCommand(newConfigKeysCmd(root))
	cmd.AddCommand(newConfigInitCmd(root))

	return cmd
}

func newConfigShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved run configuration as YAML",
		Long: `Print the run configuration after every property override has been applied.
The reportportal companion file is validated when the integration is enabled.`,
		Example: `  courgette config show
  COURGETTE_THREADS=8 courgette config show`,
		Args: cobra.NoArgs,
		RunE: timed(root, "config show", func(cmd *cobra.Command, args []string) error {
			rc, err := loadRunContext(cmd, root)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(rc.cfg)
			if err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "rendering configuration")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", rc.cfg.Source)
			_, err = out.Write(data)
			return err
		}),
	}
}

func newConfigKeysCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every overridable property",
		Long: `List the properties consulted when resolving the run configuration, with
their type and the value currently set through the environment or -D, if any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := loadProperties(root)
			if err != nil {
				return err
			}
			printPropertyKeys(cmd, props)
			return nil
		},
	}
}

func printPropertyKeys(cmd *cobra.Command, props config.PropertySource) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tCURRENT\tDESCRIPTION")
	for _, schema := range config.SortedProperties() {
		typ := schema.Type.String()
		if len(schema.AllowedValues) > 0 {
			typ = strings.Join(schema.AllowedValues, "|")
		}
		current := "-"
		if v, ok := props.Lookup(schema.Key); ok {
			current = output.Value(v)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", schema.Key, typ, current, schema.Description)
	}
	w.Flush()
}

type configInitOptions struct {
	force bool
}

func newConfigInitCmd(root *rootFlags) *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default options file",
		Example: `  courgette config init
  courgette config init --config ci/courgette.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, root.configPath, opts.force)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing options file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return clierrors.NewConfigError(
			fmt.Sprintf("options file already exists: %s", path),
			"Use --force to overwrite it",
		)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Runtime, "creating options directory")
		}
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing options file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Created "+path)
	return nil
}
