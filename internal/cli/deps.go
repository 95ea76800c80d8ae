// Package cli provides the Cobra root command and dependency injection
// wiring for the cppnew CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/modu-ai/cppnew/internal/config"
	"github.com/modu-ai/cppnew/internal/core/git"
	"github.com/modu-ai/cppnew/internal/core/project"
	"github.com/modu-ai/cppnew/internal/template"
)

// Dependencies holds all domain-level services used by the CLI.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Settings     config.Settings
	Logger       *slog.Logger
	Fs           afero.Fs
	Registry     *template.Registry
	Renderer     template.Renderer
	VCS          git.Initializer
	Materializer project.Materializer
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=2, called from root.go and deps_test.go
// InitDependencies loads the user settings and wires all domain dependencies
// on the operating system filesystem. It should be called once during
// application startup.
func InitDependencies() error {
	// Settings decide the log level, so loading them logs through a
	// bootstrap logger at the default level.
	settings, err := config.LoadSettings(newLogger(config.NewDefaultSettings().Log, os.Stderr))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	d, err := NewDependencies(settings, afero.NewOsFs(), os.Stderr)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// NewDependencies wires the domain modules for settings on fsys.
// Log records go to logOut.
func NewDependencies(settings config.Settings, fsys afero.Fs, logOut io.Writer) (*Dependencies, error) {
	logger := newLogger(settings.Log, logOut)

	templates, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	registry, err := template.NewRegistry(templates)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	var vcs git.Initializer
	if settings.VCS.Enabled {
		vcs, err = git.NewInitializer(settings.VCS.Backend, logger)
		if err != nil {
			return nil, fmt.Errorf("configure version control: %w", err)
		}
	}

	return &Dependencies{
		Settings:     settings,
		Logger:       logger,
		Fs:           fsys,
		Registry:     registry,
		Renderer:     template.NewRenderer(logger),
		VCS:          vcs,
		Materializer: project.NewMaterializer(fsys, vcs, logger),
	}, nil
}

// App returns an App writing to out and errOut.
func (d *Dependencies) App(out, errOut io.Writer) *App {
	return &App{
		Out:          out,
		Err:          errOut,
		Registry:     d.Registry,
		Renderer:     d.Renderer,
		Materializer: d.Materializer,
		Settings:     d.Settings,
		Logger:       d.Logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger builds the slog logger described by s. Settings are validated
// on load, so an unparsable level falls back to warn.
func newLogger(s config.LogSettings, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(s.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if s.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
