// Package effect holds the display-side motion helpers: eased tweens, oscillators and spring smoothing.
package effect

import (
	"math"
	"time"

	"github.com/fogleman/ease"
)

const TWO_PI = (2 * math.Pi)

// defaultFPS is the frame rate FPS falls back to for a non-positive rate.
const defaultFPS = 60

// FPS returns a time delta for a given number of frames per second. This
// value can be used as the time delta when initializing a Glide.
//
// Example:
//
//	glide := NewGlide(FPS(60), 50, 50)
func FPS(n int) float64 {
	if n <= 0 {
		n = defaultFPS
	}
	return (time.Second / time.Duration(n)).Seconds()
}

// Tween maps normalized progress onto a value between From and To through an easing function.
type Tween struct {
	From float64
	To   float64

	// Start and End bound the slice of progress the tween plays over.
	Start float64
	End   float64

	Ease ease.Function
}

// NewTween creates a tween that plays over the whole of progress.
func NewTween(from, to float64, fn ease.Function) Tween {
	return Tween{From: from, To: to, Start: 0, End: 1, Ease: fn}
}

// Between restricts the tween to the progress range [start, end].
func (t Tween) Between(start, end float64) Tween {
	t.Start = start
	t.End = end
	return t
}

// At returns the tweened value at progress p.
func (t Tween) At(p float64) float64 {
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return t.From + (t.To-t.From)*fn(Normalize(p, t.Start, t.End))
}

// Normalize maps p from [start, end] onto [0, 1], clamped.
func Normalize(p, start, end float64) float64 {
	if end <= start {
		if p >= end {
			return 1
		}
		return 0
	}
	return clamp((p-start)/(end-start), 0, 1)
}

// Counter is the eased count-up used by the victory XP display.
func Counter(target int, p float64) int {
	return int(math.Floor(float64(target) * ease.OutCubic(clamp(p, 0, 1))))
}

// Letterbox returns the height of the cinematic bars, in rows, for a ramp that is p complete.
func Letterbox(rows int, p float64) int {
	return int(math.Round(float64(rows) * ease.OutCubic(clamp(p, 0, 1))))
}

// ShapeFn determines the shape of an oscillator's waveform.
type ShapeFn func(t float64, frequency float64) float64

// Oscillator produces a periodic value in [-Amplitude, Amplitude] from elapsed time.
type Oscillator struct {
	Amplitude float64
	Frequency float64
	ShapeFn   ShapeFn
}

// NewSineWaveOsc creates a sine oscillator at frequency hz.
func NewSineWaveOsc(amplitude, hz float64) Oscillator {
	return Oscillator{Amplitude: amplitude, Frequency: hz, ShapeFn: sineWaveFunc}
}

// NewSawToothOsc creates a sawtooth oscillator at frequency hz.
func NewSawToothOsc(amplitude, hz float64) Oscillator {
	return Oscillator{Amplitude: amplitude, Frequency: hz, ShapeFn: sawtoothFunc}
}

// Value returns the oscillator output after elapsed time.
func (o Oscillator) Value(elapsed time.Duration) float64 {
	if o.ShapeFn == nil {
		return 0
	}
	return o.Amplitude * o.ShapeFn(elapsed.Seconds(), o.Frequency)
}

func sineWaveFunc(t float64, frequency float64) float64 {
	return math.Sin(TWO_PI * frequency * t)
}

// sawtoothFunc ramps from -1 to 1 once per period.
func sawtoothFunc(t float64, frequency float64) float64 {
	phase := math.Mod(t*frequency, 1)
	if phase < 0 {
		phase++
	}
	return 2*phase - 1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
