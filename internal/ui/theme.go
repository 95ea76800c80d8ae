package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used for one-line command results.
type Theme struct {
	NoColor bool

	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// NewTheme creates a Theme. With noColor every style renders plain text.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.success, t.warn, t.err, t.muted = plain, plain, plain, plain
		return t
	}

	t.success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	t.warn = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	t.err = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	t.muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	return t
}

// ThemeFor returns a Theme for the given output, disabling color when the
// output is headless, noColor is set or NO_COLOR is present.
func ThemeFor(h *HeadlessManager, noColor bool) *Theme {
	return NewTheme(noColor || ColorDisabled() || h.IsHeadless())
}

func (t *Theme) Success(s string) string { return t.success.Render(s) }
func (t *Theme) Warn(s string) string    { return t.warn.Render(s) }
func (t *Theme) Error(s string) string   { return t.err.Render(s) }
func (t *Theme) Muted(s string) string   { return t.muted.Render(s) }
