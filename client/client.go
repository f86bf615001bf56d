package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Command is one invocation of an external binary.
type Command struct {
	Name string
	Args []string
}

// String renders the command for logs, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Result is the captured outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExternalCommandError reports a process that exited nonzero.
type ExternalCommandError struct {
	Command  Command
	ExitCode int
	Stderr   string
}

func (e *ExternalCommandError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command.Name, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Runner runs external commands. Run captures output; Stream copies it to
// the given writers as the process produces it. Both block until exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
	Stream(ctx context.Context, cmd Command, stdout, stderr io.Writer) error
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	Logger *zap.Logger
	Dir    string
}

// NewExecRunner creates a runner logging every invocation to logger.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{Logger: logger}
}

func (r *ExecRunner) command(ctx context.Context, cmd Command) *exec.Cmd {
	r.Logger.Info("exec", zap.String("command", cmd.String()))
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.Dir
	return c
}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	var stdout, stderr bytes.Buffer
	c := r.command(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	runErr := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	err := r.exitError(cmd, c, runErr, res.Stderr, &res)
	return res, err
}

func (r *ExecRunner) Stream(ctx context.Context, cmd Command, stdout, stderr io.Writer) error {
	var captured bytes.Buffer
	c := r.command(ctx, cmd)
	c.Stdout = stdout
	c.Stderr = io.MultiWriter(stderr, &captured)

	return r.exitError(cmd, c, c.Run(), captured.String(), nil)
}

func (r *ExecRunner) exitError(cmd Command, c *exec.Cmd, err error, stderr string, res *Result) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if res != nil {
			res.ExitCode = code
		}
		r.Logger.Debug("command failed", zap.String("command", cmd.Name), zap.Int("exit_code", code))
		return &ExternalCommandError{Command: cmd, ExitCode: code, Stderr: stderr}
	}
	return fmt.Errorf("failed to run %s: %w", c.Path, err)
}
