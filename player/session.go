package player

import (
	"context"
	"math/rand"
	"time"

	"github.com/robmorgan/cutscene/combat"
	"github.com/robmorgan/cutscene/config"
	"github.com/robmorgan/cutscene/cursor"
	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/playback"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Session is one playback of a show: the scheduler and the state machines fed from its frames.
type Session struct {
	scheduler *playback.Scheduler
	cursor    *cursor.Interpreter
	fight     *combat.Fight

	// lastScene is the scene of the previous frame. The fight starts over whenever its scene is entered.
	lastScene string
}

// NewSession builds the playback state for a show. The cursor and fight timers run on c.
func NewSession(cfg config.CinematicConfig, c clock.PassiveClock) (*Session, error) {
	scheduler, err := playback.NewScheduler(cfg.Show.Scenes)
	if err != nil {
		return nil, err
	}

	seed := cfg.Settings.Seed
	if seed == 0 {
		seed = c.Now().UnixNano()
	}

	return &Session{
		scheduler: scheduler,
		cursor:    cursor.NewInterpreter(cfg.Show.CursorScripts, c, cursor.WithClickFlash(cfg.Settings.ClickFlash)),
		fight:     combat.NewFight(cfg.Show.AttackThresholds, cfg.Show.Attacks, c, rand.New(rand.NewSource(seed))),
	}, nil
}

// Step ticks the scheduler at now and hands the resulting frame to the cursor and, during the boss fight, to the
// fight.
func (s *Session) Step(now time.Time) (playback.Frame, cursor.State) {
	f := s.scheduler.Tick(now)
	pointer := s.cursor.Update(f.SceneID, f.Progress)
	if f.SceneID == fightSceneID && s.lastScene != fightSceneID {
		s.fight.Reset()
	}
	s.lastScene = f.SceneID
	if f.SceneID == fightSceneID {
		for _, e := range s.fight.Update(f.Progress) {
			logger.GetProjectLogger().WithFields(logrus.Fields{
				"event":  e.Kind,
				"attack": e.Attack,
			}).Debug("Fight event")
		}
	}
	if f.Finished {
		s.cursor.Reset()
	}
	return f, pointer
}

// Reset drops the cursor and fight state so the show can be played again.
func (s *Session) Reset() {
	s.lastScene = ""
	s.cursor.Reset()
	s.fight.Reset()
}

// Close stops playback and clears every pending timer.
func (s *Session) Close() {
	s.scheduler.Stop()
	s.Reset()
}

// RunHeadless plays the show without a terminal UI, one frame per tick of c, until the last scene completes or ctx
// is cancelled.
func RunHeadless(ctx context.Context, cfg config.CinematicConfig, c clock.WithTicker) error {
	session, err := NewSession(cfg, c)
	if err != nil {
		return err
	}
	defer session.Close()

	loop := playback.NewLoop(c, cfg.Settings.FPS, func(now time.Time) bool {
		f, _ := session.Step(now)
		return !f.Finished
	})

	session.scheduler.Start()
	return loop.Run(ctx)
}
