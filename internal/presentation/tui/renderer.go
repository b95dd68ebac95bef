package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Question text and titles pass through it, so plain strings survive mostly
// unchanged while authored markdown gets terminal styling.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(78),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
