package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/fpgactl/internal/app"
	"github.com/vk/fpgactl/internal/hcl"
)

// state carries the flag values and output writer shared by every
// subcommand of a single invocation.
type state struct {
	outW io.Writer

	root      string
	logFormat string
	logLevel  string
}

// newApp resolves the project root and constructs the App a subcommand
// will operate on. When --root is not given the root is discovered by
// walking up from the working directory to the nearest project.hcl.
func (s *state) newApp() (*app.App, error) {
	root := s.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &ExitError{Code: 1, Message: err.Error()}
		}
		root, err = app.FindProjectRoot(cwd)
		if err != nil {
			return nil, &ExitError{Code: 1, Message: err.Error()}
		}
	}

	logFormat := strings.ToLower(s.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(s.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		Root:      root,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return app.NewApp(s.outW, cfg, hcl.NewLoader()), nil
}

func newRootCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fpgactl",
		Short: "Dependency-aware build orchestrator for hierarchical HDL projects",
		Long: `fpgactl resolves the dependency graph of a modular HDL project and
drives simulation, lint and FPGA implementation flows over the
aggregated sources.

Each module directory carries a manifest.hcl declaring its RTL
sources, constraints, dependencies and simulation targets; the root
project.hcl lists the module directories that make up the project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&s.root, "root", "C", "", "Project root directory. Defaults to the nearest parent containing project.hcl.")
	cmd.PersistentFlags().StringVar(&s.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	cmd.AddCommand(
		newSimCmd(s),
		newLintCmd(s),
		newListCmd(s),
		newSynthCmd(s),
		newImplCmd(s),
		newBitCmd(s),
		newNewCmd(s),
		newCleanCmd(s),
	)
	return cmd
}

// Execute runs the CLI with the given arguments, writing all output to
// outW. It is the single entrypoint used by main and by tests.
func Execute(args []string, outW io.Writer) error {
	s := &state{outW: outW}
	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(outW)
	return root.Execute()
}
