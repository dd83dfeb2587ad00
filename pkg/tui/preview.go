package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/goliatone/go-lncgen/pkg/render"
)

// Previewer turns a rendered document into terminal output.
type Previewer func(kind, content string) (string, error)

// PlainPreviewer returns documents unchanged.
func PlainPreviewer() Previewer {
	return func(_ string, content string) (string, error) {
		return content, nil
	}
}

// MarkdownPreviewer renders the summary document with glamour, wrapping at
// wordWrap columns. Other kinds are returned unchanged.
func MarkdownPreviewer(wordWrap int) Previewer {
	return func(kind, content string) (string, error) {
		if kind != render.KindSummary {
			return content, nil
		}
		return RenderMarkdown(content, wordWrap)
	}
}

// RenderMarkdown styles Markdown for the current terminal.
func RenderMarkdown(markdown string, wordWrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("tui: markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("tui: render markdown: %w", err)
	}
	return out, nil
}
