package config

import "github.com/modu-ai/cppnew/internal/template"

// ProjectConfig is the fully resolved configuration of one scaffolding run.
// Every field holds a concrete value; the zero value is never used directly.
// Fields are unexported so a built configuration cannot be patched in place:
// ApplyOverrides returns a new value instead.
type ProjectConfig struct {
	templateID      template.ID
	projectName     string
	standardVersion string
	minToolVersion  string
	buildOutputDir  string
}

// TemplateID returns the selected template.
func (c ProjectConfig) TemplateID() template.ID { return c.templateID }

// ProjectName returns the project name, which is also the project directory name.
func (c ProjectConfig) ProjectName() string { return c.projectName }

// StandardVersion returns the C++ standard, e.g. "17".
func (c ProjectConfig) StandardVersion() string { return c.standardVersion }

// MinToolVersion returns the minimum required CMake version, e.g. "3.22".
func (c ProjectConfig) MinToolVersion() string { return c.minToolVersion }

// BuildOutputDir returns the directory build.sh installs binaries into.
func (c ProjectConfig) BuildOutputDir() string { return c.buildOutputDir }

// Values returns the placeholder values used to render the selected template.
func (c ProjectConfig) Values() template.Values {
	return template.Values{
		ProjectName:     c.projectName,
		CMakeMinVersion: c.minToolVersion,
		CPPStandard:     c.standardVersion,
		BuildDir:        c.buildOutputDir,
	}
}

// Settings holds user-level preferences loaded from the settings file and
// the environment.
type Settings struct {
	VCS VCSSettings `mapstructure:"vcs"`
	Log LogSettings `mapstructure:"log"`
	UI  UISettings  `mapstructure:"ui"`
}

// VCSSettings controls repository initialization of new projects.
type VCSSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"` // "go-git" or "git"
}

// LogSettings controls diagnostic logging on stderr.
type LogSettings struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// UISettings controls terminal output.
type UISettings struct {
	NoColor bool `mapstructure:"no_color"`
}
