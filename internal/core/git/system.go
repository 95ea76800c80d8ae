package git

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultInitTimeout bounds a single system git invocation.
const DefaultInitTimeout = 30 * time.Second

// Compile-time interface compliance check.
var _ Initializer = (*systemInitializer)(nil)

// systemInitializer runs `git init` with the system git binary.
type systemInitializer struct {
	logger *slog.Logger
}

func (s *systemInitializer) Init(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultInitTimeout)
	defer cancel()

	out, err := execGit(ctx, path, "init")
	if err != nil {
		return fmt.Errorf("init %s: %w: %w", path, ErrInitRepository, err)
	}

	s.logger.Debug("repository initialized", "path", path, "output", out)
	return nil
}

// @MX:ANCHOR: [AUTO] execGit is the only place the system git binary is invoked
// @MX:REASON: [AUTO] environment and error shape for every git subprocess are fixed here
// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
