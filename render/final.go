package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/cutscene/reveal"
)

// FinalPhases are the closing boundaries: looking forward, teaser, credits.
var FinalPhases = []float64{0.2, 0.5, 0.8}

const (
	splatterFrom = 0.3
	splatterRate = 30
)

// Final is the closing cinematic and credits.
type Final struct {
	hero   string
	combos int
}

func NewFinal(hero string, combos int) *Final {
	return &Final{hero: hero, combos: combos}
}

// Splatters returns how many paint splatters have landed by progress p.
func Splatters(p float64) int {
	if p <= splatterFrom {
		return 0
	}
	return int(math.Floor((p - splatterFrom) * splatterRate))
}

func (f *Final) Render(ctx RenderContext) string {
	phase := reveal.Phase(FinalPhases, ctx.Progress)

	var lines []string
	switch {
	case phase <= 1:
		lines = []string{
			mutedStyle.Render(spaced("The Journey Continues")),
			"",
			titleStyle.Render(spaced("SEMESTER TWO")),
			"",
			captionStyle.Render("New challenges await..."),
		}
	case phase == 2:
		lines = []string{
			accentStyle.Render("In the DLC: Semester 2"),
			"",
			"Quadratic Equations",
			"Sequencing",
			"Advanced Graphing",
			"",
			captionStyle.Render("The saga is far from over."),
		}
	default:
		stats := lipgloss.JoinHorizontal(lipgloss.Top,
			cardStyle.Render(stack(accentStyle.Render("S+"), mutedStyle.Render("Final Grade"))),
			cardStyle.Render(stack(titleStyle.Render(fmt.Sprintf("x%d", f.combos)), mutedStyle.Render("Max Combo"))),
			cardStyle.Render(stack(titleStyle.Render("100%"), mutedStyle.Render("Complete"))),
		)
		lines = []string{
			mutedStyle.Render(spaced("Presented By")),
			accentStyle.Render(spaced(f.hero)),
			mutedStyle.Render(spaced("Studios")),
			"",
			stats,
			"",
			dangerStyle.Render("KABOOM... KABLOW... KABOOM..."),
		}
	}

	if n := Splatters(ctx.Progress); n > 0 {
		var dots strings.Builder
		for i := 0; i < n; i++ {
			dots.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hue(i, 7).Hex())).Render("●"))
		}
		lines = append(lines, "", dots.String())
	}

	return place(ctx, stack(lines...), 0)
}
