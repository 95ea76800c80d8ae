// Package project materializes a rendered template into a project directory
// on disk, optionally initializing version control, and reports which
// artifacts were created when a step fails.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrMaterialize indicates a filesystem or version-control step failed.
	ErrMaterialize = errors.New("project materialization failed")

	// ErrInvalidRoot indicates the given project root path is invalid.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrNoVCS indicates version control was requested without a backend.
	ErrNoVCS = errors.New("no version control backend configured")
)

// Operations recorded in ArtifactError.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
	OpChmod = "chmod"
	OpInit  = "init"
	OpAbort = "abort"
)

// ArtifactError reports the artifact whose creation failed.
// It matches ErrMaterialize and the underlying cause with errors.Is.
type ArtifactError struct {
	Artifact string // slash-separated path relative to the project root
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Artifact, e.Err)
}

// Unwrap returns ErrMaterialize and the underlying cause.
func (e *ArtifactError) Unwrap() []error {
	return []error{ErrMaterialize, e.Err}
}
