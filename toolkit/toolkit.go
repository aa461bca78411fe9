// Package toolkit drives the system PDF toolchain: poppler's pdftoppm for
// rasterization and ghostscript for rewriting. Both stay external binary
// invocations, neither has an in-process equivalent worth carrying.
package toolkit

import (
	"context"
	"fmt"
	"os/exec"

	execute "github.com/alexellis/go-execute/v2"
	"go.uber.org/zap"

	"pdfpress/shared/log"
)

type Runner struct {
	popplerBin     string
	ghostscriptBin string

	logger *zap.Logger
}

func NewRunner(popplerBin, ghostscriptBin string, logger *zap.Logger) *Runner {
	return &Runner{popplerBin: popplerBin, ghostscriptBin: ghostscriptBin, logger: logger}
}

// PopplerAvailable reports whether pdftoppm resolves on PATH. Checked once at
// startup so a missing toolkit shows up in the logs before the first request.
func (r *Runner) PopplerAvailable() bool {
	_, err := exec.LookPath(r.popplerBin)
	return err == nil
}

func (r *Runner) GhostscriptAvailable() bool {
	_, err := exec.LookPath(r.ghostscriptBin)
	return err == nil
}

func (r *Runner) run(ctx context.Context, command string, args []string, cwd string) error {
	logger := log.LoggerWithTrace(ctx, r.logger)
	logger.Debug("executing", zap.String("command", command), zap.Strings("args", args), zap.String("dir", cwd))

	task := execute.ExecTask{
		Command: command,
		Args:    args,
		Cwd:     cwd,
	}

	result, err := task.Execute(ctx)
	if err != nil {
		logger.Error("command execution failed", zap.String("command", command), zap.Error(err))
		return err
	}

	if result.ExitCode != 0 {
		logger.Warn("command exited with non-zero code",
			zap.String("command", command), zap.Int("code", result.ExitCode), zap.String("stderr", result.Stderr))
		return fmt.Errorf("%s exited with code %d: %s", command, result.ExitCode, result.Stderr)
	}

	return nil
}
