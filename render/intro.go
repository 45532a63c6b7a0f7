package render

import (
	"math"
	"strings"

	"github.com/robmorgan/cutscene/reveal"
)

// IntroPhases are the progress boundaries of the intro: black, title, title, "the beginning".
var IntroPhases = []float64{0.15, 0.4, 0.65, 0.88}

// Intro is the opening title card.
type Intro struct {
	title    string
	subtitle string
	tagline  string
}

func NewIntro(title, subtitle, tagline string) *Intro {
	return &Intro{title: title, subtitle: subtitle, tagline: tagline}
}

func (i *Intro) Render(ctx RenderContext) string {
	phase := reveal.Phase(IntroPhases, ctx.Progress)
	drift := int(math.Round(math.Sin(ctx.Progress*math.Pi*2) * 2))

	switch {
	case phase == 0:
		return place(ctx, faintStyle.Render("·"), 0)
	case phase <= 2:
		content := stack(
			mutedStyle.Render(spaced(strings.ToUpper(i.tagline))),
			"",
			accentStyle.Render(spaced("ALGEBRA")),
			titleStyle.Render(spaced("THE SAGA")),
			"",
			captionStyle.Render(i.subtitle),
		)
		return place(ctx, content, drift)
	case phase == 3:
		return place(ctx, titleStyle.Render(spaced("THE BEGINNING")), drift)
	default:
		return place(ctx, faintStyle.Render(i.title), 0)
	}
}
