package scene

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmpty           = errors.New("a presentation needs at least one scene")
	ErrMissingID       = errors.New("scene id must not be empty")
	ErrDuplicateID     = errors.New("scene id is not unique")
	ErrInvalidDuration = errors.New("scene duration must be greater than zero")
)

// Scene is a named, timed segment of the presentation.
type Scene struct {
	// ID is unique within a presentation and keys the cursor scripts and renderers.
	ID string `yaml:"id"`

	// Duration is how long the scene plays at wall-clock rate.
	Duration time.Duration `yaml:"duration"`
}

// Validate checks an ordered scene list before playback is created from it.
func Validate(scenes []Scene) error {
	if len(scenes) == 0 {
		return ErrEmpty
	}

	seen := make(map[string]int, len(scenes))
	for i, s := range scenes {
		if s.ID == "" {
			return fmt.Errorf("scene %d: %w", i, ErrMissingID)
		}
		if j, found := seen[s.ID]; found {
			return fmt.Errorf("scene %d (%s) repeats scene %d: %w", i, s.ID, j, ErrDuplicateID)
		}
		if s.Duration <= 0 {
			return fmt.Errorf("scene %d (%s) has duration %v: %w", i, s.ID, s.Duration, ErrInvalidDuration)
		}
		seen[s.ID] = i
	}

	return nil
}

// TotalDuration returns the running time of the whole presentation.
func TotalDuration(scenes []Scene) time.Duration {
	total := time.Duration(0)
	for _, s := range scenes {
		total += s.Duration
	}
	return total
}

// IndexOf returns the position of the scene with the given id, or -1.
func IndexOf(scenes []Scene, id string) int {
	for i, s := range scenes {
		if s.ID == id {
			return i
		}
	}
	return -1
}
