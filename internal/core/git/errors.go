// Package git initializes version control for freshly scaffolded projects.
// Two backends are available: an in-process one built on go-git and one that
// shells out to the system git binary.
package git

import "errors"

// Sentinel errors for repository initialization.
var (
	// ErrInitRepository indicates the repository could not be initialized.
	ErrInitRepository = errors.New("git: repository initialization failed")

	// ErrSystemGitNotFound indicates the git binary is not on PATH.
	ErrSystemGitNotFound = errors.New("git: system git not found")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("git: unknown backend")
)
