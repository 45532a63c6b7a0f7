package player

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/cutscene/cursor"
	"github.com/robmorgan/cutscene/logger"
	"github.com/sirupsen/logrus"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Type == tea.MouseLeft {
			return m.advance()
		}
		return m, nil
	case startMsg:
		if msg.generation != m.generation || m.stage != stageStarting {
			return m, nil
		}
		m.stage = stagePlaying
		m.scheduler.Start()
		return m, nil
	case frameMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		return m, m.onFrame()
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, m.quit()
	case " ":
		return m.advance()
	case "enter":
		if m.stage == stageStart {
			return m.advance()
		}
	case "right":
		if m.stage == stagePlaying {
			return m.advance()
		}
	case "left":
		if m.stage == stagePlaying {
			m.scheduler.GoToPrevious()
		}
	case "]":
		if m.stage == stagePlaying {
			m.scheduler.Nudge(NudgeStep, m.clock.Now())
		}
	case "[":
		if m.stage == stagePlaying {
			m.scheduler.Nudge(-NudgeStep, m.clock.Now())
		}
	case "r":
		if m.stage == stageFinished {
			return m, m.replay()
		}
	}
	return m, nil
}

// advance starts playback from the start screen and skips the current scene while playing.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageStart:
		m.stage = stageStarting
		m.startedAt = m.clock.Now()
		m.generation++
		logger.GetProjectLogger().WithFields(logrus.Fields{"delay": m.config.Settings.StartDelay}).Info("Starting presentation")
		return m, tea.Batch(startCmd(m.generation, m.config.Settings.StartDelay), frameCmd(m.generation, m.interval))
	case stagePlaying:
		m.scheduler.SkipToNext()
	}
	return m, nil
}

// onFrame runs one frame: the scheduler tick and everything derived from it.
func (m *Model) onFrame() tea.Cmd {
	if m.stage == stagePlaying {
		m.frame, m.pointer = m.Step(m.clock.Now())
		if m.frame.Finished {
			m.stage = stageFinished
			return nil
		}
	}

	m.glide.Update(m.pointer.X, m.pointer.Y)

	if m.stage == stageStart || m.stage == stageFinished {
		return nil
	}
	return frameCmd(m.generation, m.interval)
}

func (m *Model) replay() tea.Cmd {
	m.Reset()
	m.pointer = cursor.Neutral()
	m.glide.Jump(m.pointer.X, m.pointer.Y)
	m.stage = stageStart
	m.generation++
	_, cmd := m.advance()
	return cmd
}

// quit stops playback and drops every pending frame and timer.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.generation++
	m.Close()
	logger.GetProjectLogger().WithFields(logrus.Fields{"scene": m.frame.SceneID}).Info("Presentation closed")
	return tea.Quit
}
