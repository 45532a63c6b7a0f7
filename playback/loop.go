package playback

import (
	"context"
	"sync"
	"time"

	"github.com/robmorgan/cutscene/logger"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// FrameFunc is called once per frame with the frame's timestamp. Returning false ends the loop.
type FrameFunc func(now time.Time) bool

// Loop drives a FrameFunc from a ticker. Only one frame is in flight at a time, and once the loop returns no
// further frames are delivered.
type Loop struct {
	clock    clock.WithTicker
	interval time.Duration
	onFrame  FrameFunc

	quit chan struct{}
	once sync.Once
}

// Create a new frame loop running at fps frames per second.
func NewLoop(c clock.WithTicker, fps int, onFrame FrameFunc) *Loop {
	return &Loop{
		clock:    c,
		interval: FrameInterval(fps),
		onFrame:  onFrame,
		quit:     make(chan struct{}),
	}
}

// FrameInterval returns the time between frames for the given rate, falling back to DefaultFPS.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run blocks delivering frames until ctx is cancelled, Stop is called or the FrameFunc returns false.
func (l *Loop) Run(ctx context.Context) error {
	logger := logger.GetProjectLogger()

	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	logger.WithFields(logrus.Fields{"interval": l.interval}).Debug("Frame loop started")

	frames := 0
	for {
		select {
		case <-ctx.Done():
			logger.WithFields(logrus.Fields{"frames": frames}).Debug("Frame loop cancelled")
			return ctx.Err()
		case <-l.quit:
			logger.WithFields(logrus.Fields{"frames": frames}).Debug("Frame loop stopped")
			return nil
		case now := <-ticker.C():
			frames++
			if !l.onFrame(now) {
				logger.WithFields(logrus.Fields{"frames": frames}).Debug("Frame loop done")
				return nil
			}
		}
	}
}

// Stop ends the loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.quit)
	})
}
