package effect

import "github.com/charmbracelet/harmonica"

// Glide smooths a 2D point toward a moving target with a critically damped spring.
type Glide struct {
	spring harmonica.Spring

	X, Y       float64
	velX, velY float64
}

// NewGlide creates a glide resting at (x, y). delta is the time step of one update, see FPS.
func NewGlide(delta, x, y float64) *Glide {
	return &Glide{
		spring: harmonica.NewSpring(delta, 8.0, 1.0),
		X:      x,
		Y:      y,
	}
}

// Update moves one step toward (targetX, targetY) and returns the new position.
func (g *Glide) Update(targetX, targetY float64) (float64, float64) {
	g.X, g.velX = g.spring.Update(g.X, g.velX, targetX)
	g.Y, g.velY = g.spring.Update(g.Y, g.velY, targetY)
	return g.X, g.Y
}

// Jump places the glide at (x, y) with no velocity.
func (g *Glide) Jump(x, y float64) {
	g.X, g.Y = x, y
	g.velX, g.velY = 0, 0
}
