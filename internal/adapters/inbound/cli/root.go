package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	appconfig "github.com/codesweep/codesweep/internal/adapters/outbound/config"
	"github.com/codesweep/codesweep/internal/adapters/outbound/discovery"
	"github.com/codesweep/codesweep/internal/adapters/outbound/fsio"
	"github.com/codesweep/codesweep/internal/adapters/outbound/gitinfo"
	"github.com/codesweep/codesweep/internal/adapters/outbound/tui"
	"github.com/codesweep/codesweep/internal/application"
	"github.com/codesweep/codesweep/internal/domain"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitError carries a nonzero report exit status through cobra to Execute.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd() *cobra.Command {
	var (
		checkMode  bool
		fixMode    bool
		extensions []string
		jobs       int
		verbose    bool
		jsonOutput bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "codesweep [path]",
		Short: "Sweep code trees for style and quality issues",
		Long: "codesweep scans a directory tree (or a single file), runs per-language rule sets\n" +
			"over every recognized file, and reports what it finds. --check fails on issues,\n" +
			"--fix rewrites files in place to resolve the fixable subset.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ModeFromFlags(checkMode, fixMode)
			if err != nil {
				return err
			}

			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			svc := application.NewSessionService(
				discovery.New(),
				fsio.New(),
				appconfig.New(),
				gitinfo.New(),
				log,
			)

			report, err := svc.Run(cmd.Context(), domain.SessionConfig{
				Mode:       mode,
				TargetPath: target,
				Extensions: domain.NormalizeExtensions(extensions),
				Jobs:       jobs,
				Verbose:    verbose,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				reporter := tui.NewReporter(tui.Options{Color: !noColor, Verbose: verbose})
				fmt.Fprint(cmd.OutOrStdout(), reporter.Render(report))
			}

			if code := report.ExitCode(); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkMode, "check", false, "Exit nonzero when any issue is found; never writes")
	cmd.Flags().BoolVar(&fixMode, "fix", false, "Rewrite files in place to resolve fixable issues")
	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "Extension allowlist, comma-separated (e.g. .py,.js)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Max parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and clean-file lines")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Render the report as indented JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := newRootCmd().Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintf(os.Stderr, "codesweep: %v\n", err)
	return 1
}
