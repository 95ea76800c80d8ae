package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectRoot returns the absolute directory a project called name is
// scaffolded into: <parent>/<name>. An empty parent means the current
// working directory. Returns ErrInvalidRoot for an empty or
// directory-relative name.
func ProjectRoot(parent, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return "", fmt.Errorf("%w: project name %q", ErrInvalidRoot, name)
	}

	if parent == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		parent = dir
	}

	absParent, err := filepath.Abs(parent)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return filepath.Join(absParent, name), nil
}
