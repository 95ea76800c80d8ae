package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every settings environment variable (CPPNEW_VCS_ENABLED, ...).
	EnvPrefix = "CPPNEW"

	// EnvConfigFile overrides the settings file location.
	EnvConfigFile = "CPPNEW_CONFIG"

	settingsDirName  = "cppnew"
	settingsFileName = "config.yaml"
	settingsFileType = "yaml"
)

// SettingsFile returns the settings file location: $CPPNEW_CONFIG if set,
// else $XDG_CONFIG_HOME/cppnew/config.yaml, else ~/.config/cppnew/config.yaml.
// Returns an empty string when no location can be determined.
func SettingsFile() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return filepath.Clean(p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, settingsDirName, settingsFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", settingsDirName, settingsFileName)
}

// SettingsLoader reads Settings through viper.
type SettingsLoader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewSettingsLoader creates a loader reading from fsys.
// A nil fsys reads from the operating system; a nil logger discards output.
func NewSettingsLoader(fsys afero.Fs, logger *slog.Logger) *SettingsLoader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SettingsLoader{fs: fsys, logger: logger.With("module", "config")}
}

// Load merges compiled defaults, the settings file at path (if it exists)
// and CPPNEW_* environment variables, in increasing priority.
// An empty path skips the file. A missing file is not an error.
func (l *SettingsLoader) Load(path string) (Settings, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigType(settingsFileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that AutomaticEnv applies during Unmarshal.
	def := NewDefaultSettings()
	v.SetDefault("vcs.enabled", def.VCS.Enabled)
	v.SetDefault("vcs.backend", def.VCS.Backend)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("ui.no_color", def.UI.NoColor)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				l.logger.Debug("settings file not found, using defaults", "path", path)
			} else {
				return Settings{}, fmt.Errorf("read %s: %w: %w: %v", path, ErrInvalidSettings, ErrInvalidYAML, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w: %v", ErrInvalidSettings, err)
	}

	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.VCS.Backend = strings.ToLower(strings.TrimSpace(s.VCS.Backend))

	if err := ValidateSettings(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings loads Settings from the operating system at SettingsFile().
// logger may be nil.
func LoadSettings(logger *slog.Logger) (Settings, error) {
	return NewSettingsLoader(nil, logger).Load(SettingsFile())
}
