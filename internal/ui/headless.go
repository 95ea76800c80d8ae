// Package ui decides how command output is presented: plain text when the
// output stream is not a terminal or color is disabled, styled text and
// rendered Markdown otherwise.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// EnvNoColor disables styling when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// HeadlessManager manages headless (non-terminal) output detection for a
// single output stream.
type HeadlessManager struct {
	out    io.Writer
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of out. Writers that are not files are always headless.
func NewHeadlessManager(out io.Writer) *HeadlessManager {
	return &HeadlessManager{out: out}
}

// IsHeadless returns true when output should be plain text.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	f, ok := h.out.(fder)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force terminal mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// ColorDisabled reports whether the environment asks for uncolored output.
func ColorDisabled() bool {
	return os.Getenv(EnvNoColor) != ""
}
