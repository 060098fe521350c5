package hostexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrEmptyCommand is reported when Run is called without a program.
var ErrEmptyCommand = errors.New("empty command")

// Runner launches host programs.
type Runner interface {
	Run(ctx context.Context, argv []string) Result
}

// Result captures one finished (or unstartable) invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is set when the program could not be launched or was killed.
	// A clean non-zero exit leaves it nil.
	Err error
}

// Succeeded reports whether the program ran and exited with status 0.
func (r Result) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// CommandRunner executes programs directly, never through a shell.
// The child inherits the current process environment.
type CommandRunner struct {
	// Timeout bounds each invocation when positive.
	Timeout time.Duration
	Log     logrus.FieldLogger
}

// NewRunner returns a CommandRunner with the given per-command timeout.
func NewRunner(timeout time.Duration, log logrus.FieldLogger) *CommandRunner {
	return &CommandRunner{Timeout: timeout, Log: log}
}

// Run executes argv[0] with the remaining arguments. It always returns a Result.
func (r *CommandRunner) Run(ctx context.Context, argv []string) Result {
	log := r.logger()
	if len(argv) == 0 || argv[0] == "" {
		return Result{ExitCode: -1, Err: ErrEmptyCommand}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	// argv comes from fixed host paths assembled by the caller; no shell is involved.
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) // #nosec G204
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case ctx.Err() != nil:
		res.ExitCode = -1
		res.Err = fmt.Errorf("%s: %w", argv[0], ctx.Err())
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = fmt.Errorf("launch %s: %w", argv[0], err)
	}

	entry := log.WithFields(logrus.Fields{"argv": argv, "exit_code": res.ExitCode})
	if res.Err != nil {
		entry.WithError(res.Err).Warn("command did not complete")
	} else {
		entry.Debug("command finished")
	}

	return res
}

func (r *CommandRunner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}
