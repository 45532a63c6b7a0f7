package combat

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// AttackType grades an attack; heavier types shake harder and trigger slow motion.
type AttackType string

const (
	TypeNormal   AttackType = "NORMAL"
	TypeCritical AttackType = "CRITICAL"
	TypeSuper    AttackType = "SUPER"
	TypeUltimate AttackType = "ULTIMATE"
	TypeFinisher AttackType = "FINISHER"
)

// Heavy reports whether the attack type triggers slow motion and the strongest shake.
func (t AttackType) Heavy() bool {
	return t == TypeUltimate || t == TypeFinisher
}

// Staggers reports whether the boss staggers when hit by the attack type.
func (t AttackType) Staggers() bool {
	return t == TypeSuper || t.Heavy()
}

// Attack is one entry in the fight's fixed attack list.
type Attack struct {
	Name   string     `yaml:"name"`
	Damage int        `yaml:"damage"`
	Type   AttackType `yaml:"type"`

	// Color is a hex colour such as "#ef4444".
	Color string `yaml:"color"`
}

// RGB parses the attack colour.
func (a Attack) RGB() (colorful.Color, error) {
	c, err := colorful.Hex(a.Color)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("attack %q: %w", a.Name, err)
	}
	return c, nil
}

// Shake returns the screen shake magnitude for the attack.
func (a Attack) Shake() float64 {
	if a.Type.Heavy() {
		return 12
	}
	return 6
}

// Flash returns the name of the screen flash for the attack.
func (a Attack) Flash() string {
	switch a.Type {
	case TypeUltimate:
		return "yellow"
	case TypeFinisher:
		return "pink"
	default:
		return "white"
	}
}

// ValidateAttacks checks the attack list lines up with its thresholds and that every colour parses.
func ValidateAttacks(thresholds []float64, attacks []Attack) error {
	if len(thresholds) != len(attacks) {
		return fmt.Errorf("%d attack thresholds for %d attacks", len(thresholds), len(attacks))
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			return fmt.Errorf("attack threshold %d (%v) is before threshold %d (%v)", i, thresholds[i], i-1, thresholds[i-1])
		}
	}
	for _, a := range attacks {
		if _, err := a.RGB(); err != nil {
			return err
		}
	}
	return nil
}
