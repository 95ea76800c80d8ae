package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the column width Markdown is wrapped to.
const DefaultWrapWidth = 80

// RenderMarkdown renders md for a terminal. Headless output and noColor
// return md unchanged.
func RenderMarkdown(h *HeadlessManager, md string, noColor bool) (string, error) {
	if noColor || ColorDisabled() || h.IsHeadless() {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultWrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
