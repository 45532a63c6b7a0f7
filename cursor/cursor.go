// Package cursor turns scene progress into the position and click/hold state of the scripted on-screen cursor.
package cursor

import (
	"math"
	"time"

	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/timers"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	// ClickWindow is how close, in scene progress, a click waypoint must be to trigger a click.
	ClickWindow = 0.02

	// DefaultClickFlash is how long a click stays visible.
	DefaultClickFlash = 150 * time.Millisecond

	// NeutralX and NeutralY are the screen percentages used when a scene has no script.
	NeutralX = 50.0
	NeutralY = 50.0

	clickTimer = "cursor:click"
)

// Waypoint is a timed cursor instruction.
type Waypoint struct {
	// Time is the scene progress, in [0, 1], at which the waypoint takes effect.
	Time float64 `yaml:"time"`

	// X and Y are screen percentages.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	Click bool `yaml:"click,omitempty"`
	Hold  bool `yaml:"hold,omitempty"`
}

// State is what the cursor overlay draws.
type State struct {
	X, Y     float64
	Clicking bool
	Holding  bool
}

// Neutral returns the state shown for scenes without a script.
func Neutral() State {
	return State{X: NeutralX, Y: NeutralY}
}

// Resolve returns the last waypoint whose time is at or before progress. Waypoints are expected in ascending time
// order; if none has been reached the first one is used. The cursor holds each position until the next cue, any
// smoothing between positions is left to the display.
func Resolve(script []Waypoint, progress float64) Waypoint {
	if len(script) == 0 {
		return Waypoint{X: NeutralX, Y: NeutralY}
	}

	target := script[0]
	for _, w := range script {
		if w.Time <= progress {
			target = w
		}
	}
	return target
}

// ClickDue returns the index of the first click waypoint within ClickWindow of progress, or -1.
func ClickDue(script []Waypoint, progress float64) int {
	for idx, w := range script {
		if w.Click && math.Abs(w.Time-progress) < ClickWindow {
			return idx
		}
	}
	return -1
}

// HoldReached reports whether any hold waypoint has been reached at progress.
func HoldReached(script []Waypoint, progress float64) bool {
	for _, w := range script {
		if w.Hold && w.Time <= progress {
			return true
		}
	}
	return false
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClickFlash overrides how long a click stays visible.
func WithClickFlash(d time.Duration) Option {
	return func(i *Interpreter) {
		i.clickFlash = d
	}
}

// Interpreter resolves the cursor for a scene and progress, and owns the transient click flash and the hold latch.
type Interpreter struct {
	scripts    map[string][]Waypoint
	clock      clock.PassiveClock
	clickFlash time.Duration
	timers     *timers.Table

	sceneID string
	holding bool
	last    State

	// clickedAt is the waypoint whose click already fired; it fires again only after progress leaves its window.
	clickedAt int
}

// Create a new interpreter over a static table of scripts keyed by scene id.
func NewInterpreter(scripts map[string][]Waypoint, c clock.PassiveClock, opts ...Option) *Interpreter {
	i := &Interpreter{
		scripts:    scripts,
		clock:      c,
		clickFlash: DefaultClickFlash,
		timers:     timers.NewTable(),
		last:       Neutral(),
		clickedAt:  -1,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Update resolves the cursor for the given scene and progress. Unknown scenes get the neutral state.
func (i *Interpreter) Update(sceneID string, progress float64) State {
	now := i.clock.Now()
	i.timers.Expire(now)

	if sceneID != i.sceneID {
		i.sceneID = sceneID
		i.holding = false
		i.clickedAt = -1
		i.timers.Cancel(clickTimer)
	}

	script, found := i.scripts[sceneID]
	if !found || len(script) == 0 {
		i.last = Neutral()
		return i.last
	}

	target := Resolve(script, progress)

	due := ClickDue(script, progress)
	if due >= 0 && due != i.clickedAt && !i.timers.Active(clickTimer, now) {
		i.clickedAt = due
		i.timers.Set(clickTimer, now, i.clickFlash)

		w := script[due]
		logger.GetProjectLogger().WithFields(logrus.Fields{
			"scene": sceneID,
			"time":  w.Time,
			"x":     w.X,
			"y":     w.Y,
		}).Debug("Cursor click")
	}
	if due < 0 {
		i.clickedAt = -1
	}

	// holds latch for the rest of the scene, even if progress is nudged backwards
	if HoldReached(script, progress) {
		i.holding = true
	}

	i.last = State{
		X:        target.X,
		Y:        target.Y,
		Clicking: i.timers.Active(clickTimer, now),
		Holding:  i.holding,
	}
	return i.last
}

// Current re-evaluates the last resolved state against the clock so an expired click flash clears even if progress
// has not changed.
func (i *Interpreter) Current() State {
	now := i.clock.Now()
	i.timers.Expire(now)

	s := i.last
	s.Clicking = i.timers.Active(clickTimer, now)
	return s
}

// Script returns the waypoints for a scene.
func (i *Interpreter) Script(sceneID string) ([]Waypoint, bool) {
	script, found := i.scripts[sceneID]
	return script, found
}

// Reset drops the hold latch and any pending click flash.
func (i *Interpreter) Reset() {
	i.sceneID = ""
	i.holding = false
	i.clickedAt = -1
	i.last = Neutral()
	i.timers.Clear()
}
