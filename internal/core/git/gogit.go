package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gogit "github.com/go-git/go-git/v5"
)

// Compile-time interface compliance check.
var _ Initializer = (*goGitInitializer)(nil)

// goGitInitializer initializes repositories in-process with go-git.
type goGitInitializer struct {
	logger *slog.Logger
}

func (g *goGitInitializer) Init(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("init %s: %w", path, err)
	}

	_, err := gogit.PlainInit(path, false)
	switch {
	case errors.Is(err, gogit.ErrRepositoryAlreadyExists):
		g.logger.Debug("repository already exists", "path", path)
		return nil
	case err != nil:
		return fmt.Errorf("init %s: %w: %v", path, ErrInitRepository, err)
	}

	g.logger.Debug("repository initialized", "path", path)
	return nil
}
