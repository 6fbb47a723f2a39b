package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".codesweep.yaml"

const starterConfig = `# codesweep configuration
# Every key is optional; an absent file means defaults everywhere.

# Directory names to skip, in addition to the built-in set
# (.git, node_modules, vendor, .venv, dist, build, __pycache__).
# exclude_dirs:
#   - generated

# Rule IDs to disable. Run "codesweep rules" for the full list.
# skip_rules:
#   - python/no-print

# Per-language line length overrides.
# line_length:
#   python: 100
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a starter .codesweep.yaml",
		Long:  "Create a commented .codesweep.yaml in the given directory (default: current directory).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			dest := filepath.Join(dir, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
				}
			}

			if err := os.WriteFile(dest, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .codesweep.yaml")
	return cmd
}
