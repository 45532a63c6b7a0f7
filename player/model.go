// Package player is the interactive terminal front end. It owns the frame loop and hands every playback frame to
// the session and the scene renderers.
package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/cutscene/config"
	"github.com/robmorgan/cutscene/cursor"
	"github.com/robmorgan/cutscene/effect"
	"github.com/robmorgan/cutscene/playback"
	"github.com/robmorgan/cutscene/render"
	"k8s.io/utils/clock"
)

const (
	// NudgeStep is how far [ and ] move progress within a scene.
	NudgeStep = 0.1

	// LetterboxRows is the height of each cinematic bar once fully in.
	LetterboxRows = 3

	fightSceneID = "boss-fight"
)

type stage int

const (
	stageStart stage = iota
	stageStarting
	stagePlaying
	stageFinished
)

// Model is the bubbletea model for a playback session.
type Model struct {
	*Session

	config config.CinematicConfig
	clock  clock.Clock

	renderers *render.Registry
	glide     *effect.Glide

	interval time.Duration

	stage     stage
	startedAt time.Time

	// generation identifies the active frame loop. Frames from an older loop are dropped.
	generation int

	frame    playback.Frame
	pointer  cursor.State
	width    int
	height   int
	quitting bool
}

// New creates a player for the configured show, timed by c.
func New(cfg config.CinematicConfig, c clock.Clock) (*Model, error) {
	session, err := NewSession(cfg, c)
	if err != nil {
		return nil, err
	}

	return &Model{
		Session:   session,
		config:    cfg,
		clock:     c,
		renderers: render.NewRegistry(cfg.Show, session.fight),
		glide:     effect.NewGlide(effect.FPS(cfg.Settings.FPS), cursor.NeutralX, cursor.NeutralY),
		interval:  playback.FrameInterval(cfg.Settings.FPS),
		frame:     playback.Frame{SceneID: cfg.Show.Scenes[0].ID},
		pointer:   cursor.Neutral(),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

type frameMsg struct {
	generation int
	at         time.Time
}

type startMsg struct {
	generation int
}

func frameCmd(generation int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{generation: generation, at: t}
	})
}

func startCmd(generation int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return startMsg{generation: generation}
	})
}

// Frame returns the most recent playback frame.
func (m *Model) Frame() playback.Frame {
	return m.frame
}

// Pointer returns the cursor state for the most recent frame.
func (m *Model) Pointer() cursor.State {
	return m.pointer
}

// Finished reports whether the last scene has completed.
func (m *Model) Finished() bool {
	return m.stage == stageFinished
}
