package config

import (
	"github.com/modu-ai/cppnew/internal/core/git"
	"github.com/modu-ai/cppnew/internal/template"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultProjectName     = "MyProject"
	DefaultStandardVersion = "17"
	DefaultMinToolVersion  = "3.22"
	DefaultBuildOutputDir  = "./bin"

	DefaultVCSEnabled = false
	DefaultVCSBackend = VCSBackendGoGit

	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
)

// Supported VCS backends.
const (
	VCSBackendGoGit = git.BackendGoGit
	VCSBackendGit   = git.BackendSystem
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultTemplate is the template used when none is named.
const DefaultTemplate = template.Default

// Defaults returns a ProjectConfig with every field set to its compiled default.
func Defaults() ProjectConfig {
	return ProjectConfig{
		templateID:      DefaultTemplate,
		projectName:     DefaultProjectName,
		standardVersion: DefaultStandardVersion,
		minToolVersion:  DefaultMinToolVersion,
		buildOutputDir:  DefaultBuildOutputDir,
	}
}

// NewDefaultSettings returns Settings with default values.
func NewDefaultSettings() Settings {
	return Settings{
		VCS: VCSSettings{
			Enabled: DefaultVCSEnabled,
			Backend: DefaultVCSBackend,
		},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
