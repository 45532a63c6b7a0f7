package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/cutscene/config"
	"github.com/robmorgan/cutscene/reveal"
)

var rarityColors = map[string]lipgloss.Color{
	"COMMON":    lipgloss.Color("#9ca3af"),
	"RARE":      lipgloss.Color("#3b82f6"),
	"EPIC":      lipgloss.Color("#a855f7"),
	"LEGENDARY": lipgloss.Color("#fbbf24"),
	"MYTHIC":    lipgloss.Color("#ff0080"),
}

// Achievements scrolls through the unlocked achievements.
type Achievements struct {
	achievements []config.Achievement
	thresholds   []float64
}

func NewAchievements(achievements []config.Achievement, thresholds []float64) *Achievements {
	return &Achievements{achievements: achievements, thresholds: thresholds}
}

func (a *Achievements) Render(ctx RenderContext) string {
	visible := reveal.Count(a.thresholds, ctx.Progress)
	if visible > len(a.achievements) {
		visible = len(a.achievements)
	}
	selected := visible - 1

	var badges []string
	for i, achievement := range a.achievements {
		color, ok := rarityColors[achievement.Rarity]
		if !ok {
			color = muted
		}
		style := cardStyle.Copy().Width(8).Align(lipgloss.Center)
		switch {
		case i >= visible:
			badges = append(badges, style.Render(faintStyle.Render("?")))
		case i == selected:
			badges = append(badges, style.BorderForeground(color).Bold(true).Render(lipgloss.NewStyle().Foreground(color).Render(achievement.Icon)))
		default:
			badges = append(badges, style.Render(lipgloss.NewStyle().Foreground(color).Render(achievement.Icon)))
		}
	}

	lines := []string{
		titleStyle.Render(spaced("ACHIEVEMENTS UNLOCKED")),
		mutedStyle.Render(fmt.Sprintf("%d / %d Unlocked", visible, len(a.achievements))),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		"",
	}

	if visible > 0 {
		current := a.achievements[selected]
		color, ok := rarityColors[current.Rarity]
		if !ok {
			color = muted
		}
		rarity := lipgloss.NewStyle().Foreground(color).Bold(true).Render(current.Rarity)
		if current.Rarity == "LEGENDARY" || current.Rarity == "MYTHIC" {
			rarity = "✦ " + rarity + " ✦"
		}
		lines = append(lines,
			rarity,
			faintStyle.Render("<  ")+titleStyle.Render(current.Name)+faintStyle.Render("  >"),
			captionStyle.Render(current.Desc),
		)
	}

	lines = append(lines, "", faintStyle.Render("[<] [>] Browse"))
	return place(ctx, stack(lines...), 0)
}
