package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/cppnew/internal/config"
	"github.com/modu-ai/cppnew/internal/core/project"
	"github.com/modu-ai/cppnew/internal/template"
	"github.com/modu-ai/cppnew/internal/ui"
)

// App runs a single invocation against its collaborators.
type App struct {
	Out io.Writer
	Err io.Writer

	Registry     *template.Registry
	Renderer     template.Renderer
	Materializer project.Materializer
	Settings     config.Settings
	Logger       *slog.Logger

	// WorkDir is the parent directory of new projects; empty means the
	// current working directory.
	WorkDir string

	// Headless overrides terminal detection of Out when non-nil.
	Headless *ui.HeadlessManager
}

// @MX:ANCHOR: [AUTO] Dispatch routes every invocation; the cobra root delegates all raw tokens here
// @MX:REASON: [AUTO] fan_in=3, called from root.go, app_test.go, root_test.go
// Dispatch runs the command named by tokens[0]. An empty token list and
// the help command print the usage text. Unknown commands and templates are
// reported on Out and return nil; only a failed scaffold returns an error.
func (a *App) Dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return a.printUsage()
	}

	cmd, err := ParseCommand(tokens[0])
	if err != nil {
		a.logger().Debug("unknown command", "token", tokens[0])
		a.println(a.theme().Warn(fmt.Sprintf("There is no command with the name '%s'", tokens[0])))
		return nil
	}

	switch cmd {
	case CommandHelp:
		return a.printUsage()
	case CommandNew:
		return a.runNew(ctx, tokens)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		a.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

func (a *App) headless() *ui.HeadlessManager {
	if a.Headless == nil {
		a.Headless = ui.NewHeadlessManager(a.Out)
	}
	return a.Headless
}

func (a *App) theme() *ui.Theme {
	return ui.ThemeFor(a.headless(), a.Settings.UI.NoColor)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.Out, s)
}
