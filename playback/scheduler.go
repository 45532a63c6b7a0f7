package playback

import (
	"math"
	"time"

	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/scene"
	"github.com/sirupsen/logrus"
)

// State is the mutable part of playback: which scene is showing and how far through it we are.
type State struct {
	SceneIndex int
	Progress   float64
}

// Frame is the snapshot computed by a single tick. Everything that draws or interprets a frame receives the same
// Frame so they agree on the scene and progress.
type Frame struct {
	SceneIndex int
	SceneID    string
	Progress   float64

	// Advanced is set when the tick completed the scene and playback moved on to the next one.
	Advanced bool

	// Finished is set when the tick completed the final scene.
	Finished bool
}

// Scheduler advances a fixed list of scenes at wall-clock rate, independent of how often it is ticked.
type Scheduler struct {
	scenes []scene.Scene
	state  State

	// sceneStart is anchored on the first tick after playback starts or the scene changes.
	sceneStart time.Time
	anchored   bool

	playing  bool
	finished bool
}

// NewScheduler validates the scene list and creates an idle scheduler.
func NewScheduler(scenes []scene.Scene) (*Scheduler, error) {
	if err := scene.Validate(scenes); err != nil {
		return nil, err
	}

	s := make([]scene.Scene, len(scenes))
	copy(s, scenes)

	return &Scheduler{scenes: s}, nil
}

// Start begins playback at the first scene with zero progress.
func (s *Scheduler) Start() {
	s.state = State{}
	s.anchored = false
	s.playing = true
	s.finished = false

	logger.GetProjectLogger().WithFields(logrus.Fields{
		"scenes":   len(s.scenes),
		"duration": scene.TotalDuration(s.scenes),
	}).Info("Playback started")
}

// Tick computes the progress of the current scene at now. When the scene's duration has elapsed the returned frame
// carries progress 1 for that scene, and the scheduler moves on to the next scene with zero progress, or stops if
// it was the last one. Only one scene is completed per tick.
func (s *Scheduler) Tick(now time.Time) Frame {
	if !s.playing {
		return s.snapshot()
	}

	if !s.anchored {
		s.sceneStart = now
		s.anchored = true
	}

	current := s.scenes[s.state.SceneIndex]
	elapsed := now.Sub(s.sceneStart)
	if elapsed < 0 {
		elapsed = 0
	}

	s.state.Progress = math.Min(float64(elapsed)/float64(current.Duration), 1)
	frame := s.snapshot()

	if elapsed >= current.Duration {
		if s.state.SceneIndex < len(s.scenes)-1 {
			s.moveTo(s.state.SceneIndex+1, "completed")
			frame.Advanced = true
		} else {
			s.playing = false
			s.finished = true
			frame.Finished = true
			logger.GetProjectLogger().WithFields(logrus.Fields{"scene": current.ID}).Info("Playback finished")
		}
	}

	return frame
}

// SkipToNext moves to the next scene regardless of elapsed time. It does nothing on the last scene.
func (s *Scheduler) SkipToNext() bool {
	if s.state.SceneIndex >= len(s.scenes)-1 {
		return false
	}
	s.moveTo(s.state.SceneIndex+1, "skipped")
	return true
}

// GoToPrevious moves back one scene. It does nothing on the first scene.
func (s *Scheduler) GoToPrevious() bool {
	if s.state.SceneIndex <= 0 {
		return false
	}
	s.moveTo(s.state.SceneIndex-1, "rewound")
	return true
}

// Nudge moves progress within the current scene by delta, clamped to [0, 1], by shifting the scene clock. A nudge
// to 1 completes the scene on the next tick.
func (s *Scheduler) Nudge(delta float64, now time.Time) {
	if !s.playing {
		return
	}
	if !s.anchored {
		s.sceneStart = now
		s.anchored = true
	}

	duration := s.scenes[s.state.SceneIndex].Duration
	current := math.Min(float64(now.Sub(s.sceneStart))/float64(duration), 1)
	target := math.Max(0, math.Min(current+delta, 1))

	s.sceneStart = now.Add(-time.Duration(target * float64(duration)))
	s.state.Progress = target
}

// Stop ends playback. Further ticks return the last snapshot.
func (s *Scheduler) Stop() {
	s.playing = false
}

// State returns the current scene index and progress.
func (s *Scheduler) State() State {
	return s.state
}

// Playing reports whether ticks advance the presentation.
func (s *Scheduler) Playing() bool {
	return s.playing
}

// Finished reports whether the final scene ran to completion.
func (s *Scheduler) Finished() bool {
	return s.finished
}

// Scenes returns a copy of the scene list.
func (s *Scheduler) Scenes() []scene.Scene {
	out := make([]scene.Scene, len(s.scenes))
	copy(out, s.scenes)
	return out
}

// CurrentScene returns the scene being played.
func (s *Scheduler) CurrentScene() scene.Scene {
	return s.scenes[s.state.SceneIndex]
}

func (s *Scheduler) moveTo(index int, reason string) {
	from := s.scenes[s.state.SceneIndex].ID

	s.state = State{SceneIndex: index}
	s.anchored = false

	logger.GetProjectLogger().WithFields(logrus.Fields{
		"from":   from,
		"to":     s.scenes[index].ID,
		"index":  index,
		"reason": reason,
	}).Info("Scene changed")
}

func (s *Scheduler) snapshot() Frame {
	return Frame{
		SceneIndex: s.state.SceneIndex,
		SceneID:    s.scenes[s.state.SceneIndex].ID,
		Progress:   s.state.Progress,
	}
}
