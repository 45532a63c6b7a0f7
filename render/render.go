// Package render draws each scene of the presentation as terminal text. Renderers only read progress; they never
// drive playback.
package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderContext is everything a renderer may look at for one frame.
type RenderContext struct {
	// Progress is the scene progress in [0, 1].
	Progress float64

	Width  int
	Height int

	// Now is the wall-clock time of the frame and Elapsed the time spent in the scene.
	Now     time.Time
	Elapsed time.Duration
}

// Renderer draws a single scene.
type Renderer interface {
	Render(ctx RenderContext) string
}

// RendererFunc adapts a plain function to a Renderer.
type RendererFunc func(ctx RenderContext) string

func (f RendererFunc) Render(ctx RenderContext) string {
	return f(ctx)
}

var (
	accent = lipgloss.Color("#fbbf24")
	danger = lipgloss.Color("#ef4444")
	muted  = lipgloss.Color("241")
	faint  = lipgloss.Color("238")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	accentStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dangerStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	captionStyle  = mutedStyle.Copy().Italic(true)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(faint).Padding(0, 1)
	selectedStyle = cardStyle.Copy().BorderForeground(accent)
)

// spaced renders s with a space between letters, the terminal version of wide tracking.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// place centers content in the frame, shifted dx columns to the right.
func place(ctx RenderContext, content string, dx int) string {
	if dx > 0 {
		content = lipgloss.NewStyle().PaddingLeft(dx).Render(content)
	} else if dx < 0 {
		content = lipgloss.NewStyle().PaddingRight(-dx).Render(content)
	}
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return content
	}
	return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, content)
}

func stack(lines ...string) string {
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
