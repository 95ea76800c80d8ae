package config

import (
	"slices"
	"strings"
)

var (
	validLogLevels   = []string{"debug", "info", "warn", "error"}
	validLogFormats  = []string{LogFormatText, LogFormatJSON}
	validVCSBackends = []string{VCSBackendGoGit, VCSBackendGit}
)

// ValidateSettings checks the settings for correctness.
func ValidateSettings(s Settings) error {
	var errs []ValidationError

	if !slices.Contains(validVCSBackends, s.VCS.Backend) {
		errs = append(errs, ValidationError{
			Field:   "vcs.backend",
			Message: "must be one of: " + strings.Join(validVCSBackends, ", "),
			Value:   s.VCS.Backend,
			Wrapped: ErrInvalidSettings,
		})
	}
	if !slices.Contains(validLogLevels, s.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   s.Log.Level,
			Wrapped: ErrInvalidSettings,
		})
	}
	if !slices.Contains(validLogFormats, s.Log.Format) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "must be one of: " + strings.Join(validLogFormats, ", "),
			Value:   s.Log.Format,
			Wrapped: ErrInvalidSettings,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
