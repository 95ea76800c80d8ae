package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modu-ai/cppnew/internal/config"
	"github.com/modu-ai/cppnew/internal/core/project"
	"github.com/modu-ai/cppnew/internal/flags"
	"github.com/modu-ai/cppnew/internal/template"
)

// runNew scaffolds a project from tokens: new [template] [flags...].
func (a *App) runNew(ctx context.Context, tokens []string) error {
	cfg, err := config.Build(tokens)
	if errors.Is(err, template.ErrUnknownTemplate) {
		a.logger().Debug("unknown template", "token", tokens[1])
		a.println(a.theme().Warn(fmt.Sprintf("There is no template with the name '%s'", tokens[1])))
		return nil
	}
	if err != nil {
		return a.fail(fmt.Errorf("build project config: %w", err))
	}

	for _, tok := range tokens[1:] {
		if strings.HasPrefix(tok, flags.Prefix) && !flags.Recognized(tok) {
			a.logger().Debug("ignoring unrecognized flag", "flag", tok)
		}
	}

	a.logger().Info("scaffolding project",
		"name", cfg.ProjectName(),
		"template", cfg.TemplateID().String(),
		"std", cfg.StandardVersion(),
		"cmake_min", cfg.MinToolVersion(),
	)

	res, err := a.Registry.Lookup(cfg.TemplateID())
	if err != nil {
		return a.fail(fmt.Errorf("load template: %w", err))
	}
	set := a.Renderer.Render(res, cfg.Values())

	root, err := project.ProjectRoot(a.WorkDir, cfg.ProjectName())
	if err != nil {
		return a.fail(err)
	}

	report, err := a.Materializer.Materialize(ctx, root, set, project.Options{VCS: a.Settings.VCS.Enabled})
	if err != nil {
		a.printReport(cfg.ProjectName(), report, err)
		return err
	}

	a.println(a.theme().Success(fmt.Sprintf("Project '%s' was successfully created! (template: '%s')",
		cfg.ProjectName(), cfg.TemplateID())))
	return nil
}

// printReport describes a failed scaffold on Err: what was created before
// the failure and which artifact failed.
func (a *App) printReport(name string, report *project.Report, err error) {
	th := a.theme()
	_, _ = fmt.Fprintln(a.Err, th.Error(fmt.Sprintf("Failed to create project '%s': %v", name, err)))
	if report == nil {
		return
	}
	_, _ = fmt.Fprintln(a.Err, th.Muted("  root:    "+report.Root))
	for _, artifact := range report.Created {
		_, _ = fmt.Fprintln(a.Err, th.Muted("  created: "+artifact))
	}
	if report.Failed != "" {
		_, _ = fmt.Fprintln(a.Err, th.Error("  failed:  "+report.Failed))
	}
}

// fail prints err on Err and returns it.
func (a *App) fail(err error) error {
	_, _ = fmt.Fprintln(a.Err, a.theme().Error("Error: "+err.Error()))
	return err
}
