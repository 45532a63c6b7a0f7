package render

import (
	"math"
	"strings"

	"github.com/robmorgan/cutscene/reveal"
)

var (
	// ApproachPhases are the boss approach boundaries: silence, warning, title, reveal.
	ApproachPhases = []float64{0.2, 0.45, 0.7}

	// ShakePoints are the footsteps that shake the screen.
	ShakePoints = []float64{0.2, 0.35, 0.5, 0.65, 0.8, 0.95}
)

// ShakeWindow is how close to a footstep progress has to be for the screen to shake.
const ShakeWindow = 0.04

var bossArt = []string{
	"   ▄▄▄▄▄▄▄   ",
	"  █ ◉   ◉ █  ",
	"  █  ▀▀▀  █  ",
	" ▄█████████▄ ",
	"█████████████",
	"██ ███████ ██",
}

// Approach is the boss walking in.
type Approach struct {
	boss string
}

func NewApproach(boss string) *Approach {
	return &Approach{boss: boss}
}

// ShakeOffset returns the horizontal shake, in columns, for progress p.
func ShakeOffset(p float64) int {
	if !reveal.Near(ShakePoints, p, ShakeWindow) {
		return 0
	}
	intensity := 6 + p*8
	return int(math.Round(math.Sin(p*100) * 0.5 * intensity / 2))
}

func (a *Approach) Render(ctx RenderContext) string {
	phase := reveal.Phase(ApproachPhases, ctx.Progress)

	var lines []string
	if phase >= 1 {
		lines = append(lines, dangerStyle.Render("⚠ "+spaced("WARNING - BOSS APPROACHING")+" ⚠"), "")
	}
	if phase == 2 {
		lines = append(lines, titleStyle.Render(spaced("THE FINAL EXAM")), "")
	}
	if phase >= 3 {
		lines = append(lines, dangerStyle.Render(spaced("THE FINAL EXAM")), accentStyle.Render(spaced(a.boss)), "")
	}

	// the boss rises from the bottom of the frame as progress grows
	rows := int(math.Ceil(float64(len(bossArt)) * math.Min(1, ctx.Progress*1.5)))
	if rows > 0 {
		art := strings.Join(bossArt[:rows], "\n")
		lines = append(lines, dangerStyle.Render(art))
	}

	return place(ctx, stack(lines...), ShakeOffset(ctx.Progress))
}
