// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	env    []string
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a new Runner. The extra env entries override the process environment.
func NewRunner(logger ports.Logger, env ...string) *Runner {
	return &Runner{
		logger: logger,
		env:    env,
	}
}

// Run executes name with args and returns its standard output.
// Standard error is streamed to the logger at debug level and, on failure,
// attached to the returned error.
func (r *Runner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // fixed binaries with derived args
	cmd.Env = resolveEnvironment(os.Environ(), r.env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, &logWriter{logger: r.logger})

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}

		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", name)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return nil, zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	for line := range strings.SplitSeq(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line != "" {
			w.logger.Debug(line)
		}
	}
	return len(p), nil
}

// resolveEnvironment applies overrides on top of the system environment.
// Each key keeps the position of its first appearance.
func resolveEnvironment(sysEnv, overrides []string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	keys := make(map[string]int, len(sysEnv))
	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range append(append([]string{}, sysEnv...), overrides...) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, exists := keys[k]; exists {
			result[i] = entry
			continue
		}
		keys[k] = len(result)
		result = append(result, entry)
	}
	return result
}
