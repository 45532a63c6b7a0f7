package player

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/cutscene/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newPlayer(t *testing.T) (*Model, *testingclock.FakeClock) {
	t.Helper()

	settings := config.DefaultSettings()
	settings.Seed = 7
	cfg := config.CinematicConfig{Settings: settings, Show: config.DefaultShow()}

	fc := testingclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := New(cfg, fc)
	require.NoError(t, err)
	return m, fc
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// playing presses start and lets the start delay elapse.
func playing(t *testing.T) (*Model, *testingclock.FakeClock) {
	t.Helper()

	m, fc := newPlayer(t)
	_, cmd := m.Update(key(" "))
	require.NotNil(t, cmd)
	require.Equal(t, stageStarting, m.stage)

	fc.Step(m.config.Settings.StartDelay)
	m.Update(startMsg{generation: m.generation})
	require.Equal(t, stagePlaying, m.stage)

	frame(m)
	return m, fc
}

func frame(m *Model) tea.Cmd {
	_, cmd := m.Update(frameMsg{generation: m.generation, at: m.clock.Now()})
	return cmd
}

func TestStartScreen(t *testing.T) {
	t.Parallel()

	m, _ := newPlayer(t)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "LORENZO COOKS")
	assert.Contains(t, m.View(), "PRESS SPACE TO START")

	// frames are ignored until playback starts
	assert.Nil(t, frame(m))
	assert.Equal(t, "intro", m.Frame().SceneID)
	assert.Equal(t, 0.0, m.Frame().Progress)
}

func TestClickStartsPlayback(t *testing.T) {
	t.Parallel()

	m, _ := newPlayer(t)
	_, cmd := m.Update(tea.MouseMsg{Type: tea.MouseLeft})
	assert.NotNil(t, cmd)
	assert.Equal(t, stageStarting, m.stage)
	assert.NotPanics(t, func() { m.View() })
}

func TestStartMsgFromOldGenerationIsIgnored(t *testing.T) {
	t.Parallel()

	m, _ := newPlayer(t)
	m.Update(key(" "))
	m.Update(startMsg{generation: m.generation - 1})
	assert.Equal(t, stageStarting, m.stage)
}

func TestFramesFollowWallClock(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)
	assert.Equal(t, "intro", m.Frame().SceneID)
	assert.Equal(t, 0.0, m.Frame().Progress)

	fc.Step(7 * time.Second)
	cmd := frame(m)
	assert.NotNil(t, cmd)
	assert.InDelta(t, 0.5, m.Frame().Progress, 1e-9)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotEmpty(t, m.View())
}

func TestStaleFramesAreDropped(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)
	fc.Step(7 * time.Second)

	_, cmd := m.Update(frameMsg{generation: m.generation - 1, at: fc.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, m.Frame().Progress)
}

func TestSkipPreviousAndNudge(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)

	m.Update(key(" "))
	frame(m)
	assert.Equal(t, "origin", m.Frame().SceneID)

	m.Update(key("right"))
	frame(m)
	assert.Equal(t, "skills", m.Frame().SceneID)

	m.Update(tea.MouseMsg{Type: tea.MouseLeft})
	frame(m)
	assert.Equal(t, "boss-approach", m.Frame().SceneID)

	m.Update(key("left"))
	frame(m)
	assert.Equal(t, "skills", m.Frame().SceneID)
	assert.Equal(t, 0.0, m.Frame().Progress)

	m.Update(key("]"))
	frame(m)
	assert.InDelta(t, NudgeStep, m.Frame().Progress, 1e-9)

	fc.Step(2200 * time.Millisecond)
	m.Update(key("["))
	frame(m)
	assert.InDelta(t, 0.1, m.Frame().Progress, 1e-9)
}

func TestEnterOnlyStartsPlayback(t *testing.T) {
	t.Parallel()

	m, _ := newPlayer(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, stageStarting, m.stage)

	m.Update(startMsg{generation: m.generation})
	require.Equal(t, stagePlaying, m.stage)
	frame(m)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	frame(m)
	assert.Equal(t, "intro", m.Frame().SceneID)

	m.Update(key(" "))
	frame(m)
	assert.Equal(t, "origin", m.Frame().SceneID)
}

func TestScriptedClick(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)
	m.Update(key(" "))
	m.Update(key(" "))
	frame(m)
	require.Equal(t, "skills", m.Frame().SceneID)

	// the first skill card is clicked at 8% of the 22s scene
	fc.Step(1760 * time.Millisecond)
	frame(m)
	assert.True(t, m.Pointer().Clicking)
	assert.Equal(t, 30.0, m.Pointer().X)
	assert.Equal(t, 48.0, m.Pointer().Y)

	fc.Step(150 * time.Millisecond)
	frame(m)
	assert.False(t, m.Pointer().Clicking)
}

func TestPlayThroughDrivesTheFight(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)
	scenes := m.scheduler.Scenes()

	for i, s := range scenes {
		require.Equal(t, s.ID, m.Frame().SceneID)
		if s.ID == fightSceneID {
			fc.Step(time.Duration(0.65 * float64(s.Duration)))
			frame(m)
			snap := m.fight.Snapshot()
			assert.Equal(t, 6, snap.Combo)
			assert.Equal(t, 5, snap.CurrentAttack)
			fc.Step(s.Duration - time.Duration(0.65*float64(s.Duration)))
		} else {
			fc.Step(s.Duration)
		}

		cmd := frame(m)
		assert.Equal(t, 1.0, m.Frame().Progress)
		if i == len(scenes)-1 {
			assert.Nil(t, cmd)
			assert.True(t, m.Finished())
			assert.True(t, m.Frame().Finished)
			assert.Contains(t, m.View(), "T H E   E N D")
			break
		}
		require.NotNil(t, cmd)
		frame(m)
	}

	_, cmd := m.Update(key("r"))
	assert.NotNil(t, cmd)
	assert.Equal(t, stageStarting, m.stage)
	assert.Equal(t, 0, m.fight.Snapshot().Combo)
}

func TestQuitDropsPendingWork(t *testing.T) {
	t.Parallel()

	m, fc := playing(t)
	generation := m.generation

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())

	fc.Step(5 * time.Second)
	_, cmd = m.Update(frameMsg{generation: generation, at: fc.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, m.Frame().Progress)
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abXd", overlay("abcd", "X", 2, 0))
	assert.Equal(t, "ab\nx  X", overlay("ab\nx", "X", 3, 1))
	assert.Equal(t, "ab", overlay("ab", "X", 0, 4))

	styled := overlay("\x1b[1ma\x1b[0m\x1b[1mb\x1b[0m", "X", 0, 0)
	assert.Contains(t, styled, "X")
	assert.NotContains(t, styled, "a")
	assert.True(t, strings.HasSuffix(styled, "\x1b[1mb\x1b[0m"))
}
