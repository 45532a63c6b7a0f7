package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/cutscene/effect"
	"github.com/robmorgan/cutscene/reveal"
)

var (
	// VictoryPhases are the victory boundaries: defeated, victory, experience, continue.
	VictoryPhases = []float64{0.12, 0.35, 0.65}
)

const (
	// RankRevealAt is the progress after which the rank is shown.
	RankRevealAt = 0.45

	xpStart    = 0.12
	xpDuration = 0.6
	clearTime  = "04:32.47"
)

// XP returns the experience counter for progress p. It counts up to target with a cubic ease-out between 0.12 and
// 0.72 and holds there.
func XP(target int, p float64) int {
	if p < xpStart {
		return 0
	}
	return effect.Counter(target, (p-xpStart)/xpDuration)
}

// Victory is the results screen after the boss falls.
type Victory struct {
	xp     int
	rank   string
	combos int
}

func NewVictory(xp int, rank string, combos int) *Victory {
	return &Victory{xp: xp, rank: rank, combos: combos}
}

func (v *Victory) Render(ctx RenderContext) string {
	phase := reveal.Phase(VictoryPhases, ctx.Progress)
	if phase == 0 {
		return place(ctx, dangerStyle.Render(spaced("DEFEATED")), 0)
	}

	rank := faintStyle.Render("?")
	if ctx.Progress > RankRevealAt {
		rank = accentStyle.Render(v.rank)
	}

	var lines []string
	if phase <= 2 {
		stats := lipgloss.JoinHorizontal(lipgloss.Top,
			cardStyle.Render(stack(mutedStyle.Render("TIME"), titleStyle.Render(clearTime))),
			cardStyle.Render(stack(mutedStyle.Render("RANK"), rank)),
			cardStyle.Render(stack(mutedStyle.Render("MAX COMBO"), titleStyle.Render(fmt.Sprintf("x%d", v.combos)))),
		)
		lines = append(lines, accentStyle.Render(spaced("VICTORY")), "", stats)
	}

	if phase >= 2 {
		rewards := lipgloss.JoinHorizontal(lipgloss.Top,
			cardStyle.Copy().BorderForeground(lipgloss.Color("#22c55e")).Render(stack(lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Render("A+"), mutedStyle.Render("GRADE"))),
			cardStyle.Copy().BorderForeground(accent).Render(stack(accentStyle.Render("★"), mutedStyle.Render("NEW SKILL"))),
			cardStyle.Copy().BorderForeground(lipgloss.Color("#a855f7")).Render(stack(lipgloss.NewStyle().Foreground(lipgloss.Color("#c084fc")).Render("◆"), mutedStyle.Render("BONUS"))),
		)
		lines = append(lines,
			"",
			mutedStyle.Render(spaced("EXPERIENCE GAINED")),
			accentStyle.Render(fmt.Sprintf("+%s XP", grouped(XP(v.xp, ctx.Progress)))),
			"",
			rewards,
		)
	}

	if phase >= 3 {
		lines = append(lines, "", faintStyle.Render("[A] "+spaced("CONTINUE")))
	}

	return place(ctx, stack(lines...), 0)
}
