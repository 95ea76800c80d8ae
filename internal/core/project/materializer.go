package project

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/modu-ai/cppnew/internal/core/git"
	"github.com/modu-ai/cppnew/internal/defs"
	"github.com/modu-ai/cppnew/internal/template"
)

// rootArtifact names the project directory itself in reports and errors.
const rootArtifact = "."

// Options configures a single materialization.
type Options struct {
	VCS bool // initialize a repository and write the ignore file
}

// Materializer writes rendered projects to a filesystem.
type Materializer interface {
	// Materialize creates root and everything in set beneath it. The first
	// failing step aborts the rest; artifacts already created are kept and
	// listed in the returned Report.
	Materialize(ctx context.Context, root string, set template.RenderedFileSet, opts Options) (*Report, error)
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	fs     afero.Fs
	vcs    git.Initializer // may be nil when version control is never requested
	logger *slog.Logger
}

// NewMaterializer creates a Materializer writing to fsys.
func NewMaterializer(fsys afero.Fs, vcs git.Initializer, logger *slog.Logger) Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &materializer{
		fs:     fsys,
		vcs:    vcs,
		logger: logger.With("module", "project"),
	}
}

// @MX:ANCHOR: [AUTO] Materialize is the only code path that mutates the filesystem during scaffolding
// @MX:REASON: [AUTO] step order fixes which artifacts exist after a failure
// Materialize implements Materializer.
func (m *materializer) Materialize(ctx context.Context, root string, set template.RenderedFileSet, opts Options) (*Report, error) {
	root = filepath.Clean(root)
	report := &Report{Root: root}

	m.logger.Info("materializing project",
		"root", root,
		"template", set.Template.String(),
		"vcs", opts.VCS,
	)

	// Step 1: Project root
	if err := m.step(ctx, report, rootArtifact, OpMkdir, func() error {
		return m.fs.MkdirAll(root, defs.DirPerm)
	}); err != nil {
		return report, err
	}

	// Steps 2-4: Files, in order
	for _, f := range set.Files {
		if err := m.writeFile(ctx, report, root, f); err != nil {
			return report, err
		}
	}

	// Step 5: Directories, including empty placeholders
	for _, dir := range set.Dirs {
		if err := m.step(ctx, report, dir, OpMkdir, func() error {
			return m.fs.MkdirAll(m.join(root, dir), defs.DirPerm)
		}); err != nil {
			return report, err
		}
	}

	// Step 6: Version control, then the ignore file
	if opts.VCS {
		if err := m.step(ctx, report, defs.GitDir, OpInit, func() error {
			if m.vcs == nil {
				return ErrNoVCS
			}
			return m.vcs.Init(ctx, root)
		}); err != nil {
			return report, err
		}
		if err := m.writeFile(ctx, report, root, set.IgnoreFile); err != nil {
			return report, err
		}
	}

	m.logger.Info("project materialized", "root", root, "artifacts", len(report.Created))
	return report, nil
}

// writeFile writes f beneath root, creating its parent directory first.
// Shell scripts are made executable.
func (m *materializer) writeFile(ctx context.Context, report *Report, root string, f template.RenderedFile) error {
	dest := m.join(root, f.Path)
	return m.step(ctx, report, f.Path, OpWrite, func() error {
		if err := m.fs.MkdirAll(filepath.Dir(dest), defs.DirPerm); err != nil {
			return err
		}
		perm := fileMode(f.Path)
		if err := afero.WriteFile(m.fs, dest, []byte(f.Content), perm); err != nil {
			return err
		}
		// WriteFile keeps the mode of a file that already exists.
		if err := m.fs.Chmod(dest, perm); err != nil {
			return &ArtifactError{Artifact: f.Path, Op: OpChmod, Err: err}
		}
		return nil
	})
}

// step runs one materialization step, recording success in report.
// A canceled context aborts before the step starts.
func (m *materializer) step(ctx context.Context, report *Report, artifact, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		report.Failed = artifact
		return &ArtifactError{Artifact: artifact, Op: OpAbort, Err: err}
	}

	if err := fn(); err != nil {
		report.Failed = artifact
		m.logger.Debug("materialization step failed",
			"artifact", artifact,
			"op", op,
			"error", err,
		)
		var ae *ArtifactError
		if errors.As(err, &ae) {
			return ae
		}
		return &ArtifactError{Artifact: artifact, Op: op, Err: err}
	}

	report.created(artifact)
	m.logger.Debug("artifact created", "artifact", artifact, "op", op)
	return nil
}

func (m *materializer) join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// fileMode returns the permission bits for a rendered file.
func fileMode(rel string) fs.FileMode {
	if strings.EqualFold(path.Ext(rel), ".sh") {
		return defs.ExecutablePerm
	}
	return defs.FilePerm
}
