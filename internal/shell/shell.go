package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes external commands for the maintenance actions.
// Implementations decide where the output goes; the menus only see
// errors.
type Runner interface {
	// Run streams the command's combined output to the session writer.
	Run(ctx context.Context, dir, name string, args ...string) error
	// RunInteractive hands the real terminal to the command, for
	// programs like menuconfig that drive the tty themselves.
	RunInteractive(ctx context.Context, dir, name string, args ...string) error
	// Output runs the command and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// Exec is the production Runner backed by os/exec.
type Exec struct {
	out    io.Writer
	logger *zap.Logger
}

// NewExec returns a Runner that streams command output to out.
func NewExec(out io.Writer, logger *zap.Logger) *Exec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exec{out: out, logger: logger}
}

func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.out
	cmd.Stderr = e.out
	return e.wait(cmd)
}

func (e *Exec) RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return e.wait(cmd)
}

func (e *Exec) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	start := time.Now()
	out, err := cmd.Output()
	if err != nil {
		e.logger.Error("command failed",
			zap.String("cmd", commandLine(name, args)),
			zap.String("dir", dir),
			zap.Error(err))
		return "", fmt.Errorf("%s: %w", name, err)
	}
	e.logger.Info("command finished",
		zap.String("cmd", commandLine(name, args)),
		zap.String("dir", dir),
		zap.Duration("took", time.Since(start)))
	return strings.TrimSpace(string(out)), nil
}

func (e *Exec) wait(cmd *exec.Cmd) error {
	e.logger.Info("running command",
		zap.String("cmd", strings.Join(cmd.Args, " ")),
		zap.String("dir", cmd.Dir))

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		e.logger.Error("command failed",
			zap.String("cmd", strings.Join(cmd.Args, " ")),
			zap.String("dir", cmd.Dir),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("%s: %w", cmd.Args[0], err)
	}
	e.logger.Info("command finished",
		zap.String("cmd", strings.Join(cmd.Args, " ")),
		zap.String("dir", cmd.Dir),
		zap.Duration("took", time.Since(start)))
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
