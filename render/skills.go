package render

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/ease"
	"github.com/robmorgan/cutscene/config"
	"github.com/robmorgan/cutscene/effect"
	"github.com/robmorgan/cutscene/reveal"
)

const (
	skillsPerRow = 3
	hudAfter     = 0.03
)

// Skills reveals the skill cards one at a time as their thresholds are reached.
type Skills struct {
	skills     []config.Skill
	thresholds []float64
	bar        progress.Model
}

func NewSkills(skills []config.Skill, thresholds []float64) *Skills {
	return &Skills{
		skills:     skills,
		thresholds: thresholds,
		bar: progress.New(
			progress.WithSolidFill(string(accent)),
			progress.WithWidth(36),
			progress.WithoutPercentage(),
		),
	}
}

func (s *Skills) Render(ctx RenderContext) string {
	visible := reveal.Count(s.thresholds, ctx.Progress)
	selected := reveal.Selected(s.thresholds, ctx.Progress)

	if ctx.Progress <= hudAfter {
		return place(ctx, "", 0)
	}

	header := stack(
		mutedStyle.Render(spaced("CURRENT QUEST")),
		fmt.Sprintf("%d/%d Complete", visible, len(s.skills)),
		"",
		titleStyle.Render(spaced("SKILLS ACQUIRED")),
		accentStyle.Render(spaced("SEMESTER 1")),
	)

	var rows []string
	var row []string
	for i, skill := range s.skills {
		row = append(row, s.card(skill, i < visible, i == selected))
		if len(row) == skillsPerRow || i == len(s.skills)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	// the bar eases toward the next card rather than jumping
	fill := float64(visible) / float64(max(1, len(s.skills)))
	if visible < len(s.thresholds) {
		prev := 0.0
		if visible > 0 {
			prev = s.thresholds[visible-1]
		}
		step := effect.NewTween(0, 1/float64(len(s.skills)), ease.InOutQuad).Between(prev, s.thresholds[visible])
		fill += step.At(ctx.Progress) * 0.5
	}

	footer := stack(
		s.bar.ViewAs(fill),
		mutedStyle.Render(fmt.Sprintf("%d / %d Mastered", visible, len(s.skills))),
	)
	if visible == len(s.skills) && visible > 0 {
		footer = stack(footer, "", accentStyle.Render(spaced("ACHIEVEMENT UNLOCKED")))
	}

	lines := append([]string{header, ""}, rows...)
	lines = append(lines, "", footer, "", faintStyle.Render("[A] Select  [B] Back  [Y] Details"))
	return place(ctx, stack(lines...), 0)
}

func (s *Skills) card(skill config.Skill, visible, selected bool) string {
	style := cardStyle.Copy().Width(22)
	if selected {
		style = selectedStyle.Copy().Width(22)
	}
	if !visible {
		return style.Render(stack(faintStyle.Render("?"), faintStyle.Render("LOCKED"), ""))
	}

	level := mutedStyle.Render(skill.Level)
	if skill.Level == "MASTERED" {
		level = accentStyle.Render(skill.Level)
	}
	return style.Render(stack(
		accentStyle.Render(skill.Icon),
		titleStyle.Render(skill.Name),
		lipgloss.JoinHorizontal(lipgloss.Top, level, mutedStyle.Render(fmt.Sprintf("  %s XP", grouped(skill.XP)))),
	))
}
