package main

import (
	"strings"

	"addressbook/cmd/bot/ui"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 80

// newMarkdownRenderer returns a glamour renderer for the theme, or nil if
// one cannot be built. A nil renderer means plain text.
func newMarkdownRenderer(theme ui.Theme, width int) *glamour.TermRenderer {
	style := glamour.WithStandardStyle("light")
	if theme.IsDark {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown renders content, falling back to the raw text if glamour
// fails or panics.
func renderMarkdown(r *glamour.TermRenderer, content string) (result string) {
	defer func() {
		if p := recover(); p != nil {
			result = content
		}
	}()

	if r == nil || content == "" {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
