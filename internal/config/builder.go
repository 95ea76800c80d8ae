package config

import (
	"strings"

	"github.com/modu-ai/cppnew/internal/flags"
	"github.com/modu-ai/cppnew/internal/template"
)

// @MX:ANCHOR: [AUTO] ApplyOverrides is the single place command-line tokens reach the configuration
// @MX:REASON: [AUTO] fan_in=3, called from Build, cli new command, builder_test.go
// ApplyOverrides resolves the command-line tokens on top of base and returns
// the result; base is left untouched. tokens is the full token list starting
// with the command name, so a template name is expected at tokens[1].
// An unknown template name yields an error wrapping template.ErrUnknownTemplate.
func ApplyOverrides(base ProjectConfig, tokens []string) (ProjectConfig, error) {
	cfg := base

	if len(tokens) > 1 && !strings.HasPrefix(tokens[1], flags.Prefix) {
		id, err := template.ParseID(tokens[1])
		if err != nil {
			return ProjectConfig{}, err
		}
		cfg.templateID = id
	}

	// An empty name would scaffold into the working directory itself.
	if v, ok := flags.Lookup(tokens, flags.KeyName); ok && v != "" {
		cfg.projectName = v
	}
	if v, ok := flags.Lookup(tokens, flags.KeyStd); ok {
		cfg.standardVersion = v
	}
	if v, ok := flags.Lookup(tokens, flags.KeyCMakeMin); ok {
		cfg.minToolVersion = v
	}

	// The build output directory has no flag; it always keeps the base value.
	return cfg, nil
}

// Build resolves tokens on top of Defaults.
func Build(tokens []string) (ProjectConfig, error) {
	return ApplyOverrides(Defaults(), tokens)
}
