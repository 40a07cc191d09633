package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", "notty", "dark", "light" or a style file path
	Width int    // 0 keeps glamour's default
}

// NewGlamourRenderer picks the auto style on a terminal and notty otherwise
func NewGlamourRenderer() *GlamourRenderer {
	style := "notty"
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		style = "auto"
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output. Other formats pass through.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "notty", "dark", "light", "ascii", "dracula", "pink":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
