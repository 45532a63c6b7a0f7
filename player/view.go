package player

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/cutscene/effect"
	"github.com/robmorgan/cutscene/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("234"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Border(lipgloss.NormalBorder()).Padding(0, 2)
	dotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pointerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	clickStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	holdStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.size()
	now := m.clock.Now()

	switch m.stage {
	case stageStart:
		return m.startScreen(width, height)
	case stageFinished:
		content := lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("T H E   E N D"),
			"",
			helpStyle.Render("r replay · q quit"),
		)
		return m.letterboxed(lipgloss.Place(width, height-2*LetterboxRows-1, lipgloss.Center, lipgloss.Center, content), LetterboxRows, width)
	}

	rows := LetterboxRows
	if m.stage == stageStarting {
		ramp := 1.0
		if d := m.config.Settings.StartDelay; d > 0 {
			ramp = float64(now.Sub(m.startedAt)) / float64(d)
		}
		rows = effect.Letterbox(LetterboxRows, ramp)
		return m.letterboxed(strings.Repeat("\n", max(0, height-2*rows-2)), rows, width)
	}

	contentHeight := max(1, height-2*LetterboxRows-1)
	current := m.scheduler.Scenes()[m.frame.SceneIndex]
	ctx := render.RenderContext{
		Progress: m.frame.Progress,
		Width:    width,
		Height:   contentHeight,
		Now:      now,
		Elapsed:  time.Duration(m.frame.Progress * float64(current.Duration)),
	}
	content := m.renderers.Render(m.frame.SceneID, ctx)

	col := int(math.Round(m.glide.X / 100 * float64(width-1)))
	row := int(math.Round(m.glide.Y / 100 * float64(contentHeight-1)))
	content = overlay(content, m.pointerGlyph(), col, row)

	return m.letterboxed(content, LetterboxRows, width)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) startScreen(width, height int) string {
	show := m.config.Show
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(show.Title),
		subtitleStyle.Render(show.Subtitle),
		"",
		promptStyle.Render("PRESS SPACE TO START"),
		"",
		helpStyle.Render("space/click skip · ← back · [ ] nudge · q quit"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// letterboxed frames content with the cinematic bars and the status line.
func (m *Model) letterboxed(content string, rows, width int) string {
	bar := barStyle.Render(strings.Repeat("█", width))

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(bar + "\n")
	}
	b.WriteString(content)
	b.WriteString("\n")
	for i := 0; i < rows; i++ {
		b.WriteString(bar + "\n")
	}
	b.WriteString(m.statusLine(width))
	return b.String()
}

func (m *Model) statusLine(width int) string {
	scenes := m.scheduler.Scenes()

	var dots []string
	for i := range scenes {
		switch {
		case m.stage == stageFinished || i < m.frame.SceneIndex:
			dots = append(dots, doneStyle.Render("●"))
		case i == m.frame.SceneIndex && m.stage == stagePlaying:
			dots = append(dots, currentStyle.Render("●"))
		default:
			dots = append(dots, dotStyle.Render("○"))
		}
	}

	left := strings.Join(dots, " ")
	if m.stage == stagePlaying {
		left += helpStyle.Render(fmt.Sprintf("  %s %3.0f%%", m.frame.SceneID, m.frame.Progress*100))
	}

	hint := ""
	if m.stage == stagePlaying {
		hint = helpStyle.Render("SPACE skip ▸")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + hint
}

func (m *Model) pointerGlyph() string {
	switch {
	case m.pointer.Clicking:
		return clickStyle.Render("◉")
	case m.pointer.Holding:
		return holdStyle.Render("✦")
	default:
		return pointerStyle.Render("➤")
	}
}
