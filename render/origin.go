package render

import (
	"time"

	"github.com/robmorgan/cutscene/reveal"
)

// TypewriterRate is how long each narration character takes to appear.
const TypewriterRate = 40 * time.Millisecond

// Origin narrates the backstory, one line per equal slice of the scene, typed out a character at a time.
type Origin struct {
	narration []string

	line      int
	lineStart time.Time

	// lastElapsed detects the scene starting over, which restarts typing.
	lastElapsed time.Duration
}

func NewOrigin(narration []string) *Origin {
	return &Origin{narration: narration, line: -1}
}

func (o *Origin) Render(ctx RenderContext) string {
	if len(o.narration) == 0 {
		return place(ctx, "", 0)
	}

	if ctx.Elapsed < o.lastElapsed {
		o.line = -1
	}
	o.lastElapsed = ctx.Elapsed

	line := reveal.Segment(len(o.narration), ctx.Progress)
	if line != o.line {
		o.line = line
		o.lineStart = ctx.Now
	}

	text := []rune(o.narration[line])
	typed := o.Typed(ctx.Now)

	shown := string(text[:typed])
	if typed < len(text) {
		shown += accentStyle.Render("▌")
	}

	content := stack(captionStyle.Render(shown))
	if ctx.Progress > 0.1 {
		content = stack(content, "", faintStyle.Render(spaced("STRAIGHT PEAK PLAYING")))
	}
	return place(ctx, content, 0)
}

// Typed returns how many characters of the current line are visible at now.
func (o *Origin) Typed(now time.Time) int {
	if o.line < 0 {
		return 0
	}
	n := int(now.Sub(o.lineStart) / TypewriterRate)
	if n < 0 {
		return 0
	}
	if l := len([]rune(o.narration[o.line])); n > l {
		return l
	}
	return n
}
