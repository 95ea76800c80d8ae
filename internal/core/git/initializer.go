package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Backend names accepted by NewInitializer.
const (
	BackendGoGit  = "go-git"
	BackendSystem = "git"
)

// Initializer creates an empty repository in a directory.
// Initializing a directory that already holds a repository succeeds.
type Initializer interface {
	Init(ctx context.Context, path string) error
}

// NewInitializer returns the Initializer for the named backend.
// Returns ErrUnknownBackend for any other name.
func NewInitializer(backend string, logger *slog.Logger) (Initializer, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("module", "git", "backend", backend)

	switch backend {
	case BackendGoGit:
		return &goGitInitializer{logger: logger}, nil
	case BackendSystem:
		return &systemInitializer{logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
