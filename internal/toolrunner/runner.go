package toolrunner

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/vk/fpgactl/internal/ctxlog"
)

// Runner executes external EDA tools with output streamed to the CLI.
type Runner struct {
	outW io.Writer
}

// New creates a runner that streams tool output to outW.
func New(outW io.Writer) *Runner {
	return &Runner{outW: outW}
}

// ToolNotFoundError indicates that a required external tool is not on PATH.
type ToolNotFoundError struct {
	Name string
	Hint string
}

func (e *ToolNotFoundError) Error() string {
	msg := fmt.Sprintf("'%s' not found on PATH", e.Name)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

// LookTool finds a tool on PATH, attaching an install hint to the error
// when it is missing.
func LookTool(name, hint string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ToolNotFoundError{Name: name, Hint: hint}
	}
	return path, nil
}

// Run executes one command with output streamed to the runner's writer,
// echoing the command line first. A non-zero exit is returned as an error
// carrying the exit code.
func (r *Runner) Run(ctx context.Context, cwd string, argv []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Running external tool.", "argv", argv, "cwd", cwd)

	fmt.Fprintf(r.outW, ">> %s\n", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = cwd
	cmd.Stdout = r.outW
	cmd.Stderr = r.outW

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("command '%s' exited with code %d", argv[0], exitErr.ExitCode())
		}
		return fmt.Errorf("command '%s' failed to start: %w", argv[0], err)
	}
	return nil
}
