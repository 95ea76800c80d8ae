package cli

import (
	"fmt"
	"strings"

	"github.com/modu-ai/cppnew/internal/config"
	"github.com/modu-ai/cppnew/internal/flags"
	"github.com/modu-ai/cppnew/internal/ui"
	"github.com/modu-ai/cppnew/pkg/version"
)

// flagDefault returns the value a flag falls back to when absent.
func flagDefault(key flags.Key) string {
	d := config.Defaults()
	switch key {
	case flags.KeyName:
		return d.ProjectName()
	case flags.KeyStd:
		return d.StandardVersion()
	case flags.KeyCMakeMin:
		return d.MinToolVersion()
	}
	return ""
}

// usageMarkdown builds the usage text as Markdown.
func (a *App) usageMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# cppnew %s\n\n", version.GetFullVersion())
	b.WriteString("Scaffold a new C++ project built with CMake.\n\n")

	b.WriteString("## Usage\n\n")
	b.WriteString("```\ncppnew <command> [template] [flags...]\n```\n\n")

	b.WriteString("## Commands\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, c := range Commands() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c, c.Description())
	}
	b.WriteString("\n")

	b.WriteString("## Templates\n\n")
	b.WriteString("| Template | Names | Description |\n|---|---|---|\n")
	if a.Registry != nil {
		for _, d := range a.Registry.Describe() {
			names := make([]string, len(d.Aliases))
			for i, alias := range d.Aliases {
				names[i] = "`" + alias + "`"
			}
			desc := d.Description
			if d.ID == config.DefaultTemplate {
				desc += " (used when no template is given)"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", d.ID, strings.Join(names, ", "), desc)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Flags\n\n")
	b.WriteString("| Flag | Description | Default |\n|---|---|---|\n")
	for _, spec := range flags.Table {
		spellings := make([]string, len(spec.Spellings))
		for i, s := range spec.Spellings {
			spellings[i] = "`" + s + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", strings.Join(spellings, ", "), spec.Usage, flagDefault(spec.Key))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Build output goes to `%s` inside the project.\n\n", config.DefaultBuildOutputDir)

	b.WriteString("## Settings\n\n")
	b.WriteString("Read from `$XDG_CONFIG_HOME/cppnew/config.yaml` (or `~/.config/cppnew/config.yaml`), ")
	b.WriteString("overridden by environment variables:\n\n")
	for _, env := range []struct{ name, desc string }{
		{config.EnvConfigFile, "settings file location"},
		{config.EnvPrefix + "_VCS_ENABLED", "initialize a git repository and write `.gitignore`"},
		{config.EnvPrefix + "_VCS_BACKEND", "`go-git` or `git`"},
		{config.EnvPrefix + "_LOG_LEVEL", "`debug`, `info`, `warn` or `error`"},
		{config.EnvPrefix + "_LOG_FORMAT", "`text` or `json`"},
		{config.EnvPrefix + "_UI_NO_COLOR", "disable colored output"},
	} {
		fmt.Fprintf(&b, "- `%s`: %s\n", env.name, env.desc)
	}

	return b.String()
}

// printUsage writes the usage text, rendered for terminals.
func (a *App) printUsage() error {
	md := a.usageMarkdown()
	out, err := ui.RenderMarkdown(a.headless(), md, a.Settings.UI.NoColor)
	if err != nil {
		a.logger().Debug("markdown rendering failed, printing plain usage", "error", err)
		out = md
	}
	_, err = fmt.Fprint(a.Out, out)
	return err
}
