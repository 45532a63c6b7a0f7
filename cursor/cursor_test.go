package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

var bossFight = []Waypoint{
	{Time: 0, X: 35, Y: 55},
	{Time: 0.1, X: 65, Y: 45, Click: true},
	{Time: 0.2, X: 68, Y: 42, Click: true},
	{Time: 0.7, X: 50, Y: 50},
	{Time: 0.8, X: 50, Y: 50, Hold: true},
	{Time: 0.95, X: 50, Y: 50},
}

func newInterpreter() (*Interpreter, *testingclock.FakeClock) {
	fc := testingclock.NewFakeClock(time.Unix(1700000000, 0))
	scripts := map[string][]Waypoint{
		"boss-fight": bossFight,
		"late-start": {{Time: 0.3, X: 10, Y: 20}, {Time: 0.6, X: 30, Y: 40}},
		"empty":      {},
	}
	return NewInterpreter(scripts, fc), fc
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		progress float64
		expected Waypoint
	}{
		{0.0, bossFight[0]},
		{0.05, bossFight[0]},
		{0.1, bossFight[1]},
		{0.15, bossFight[1]},
		{0.5, bossFight[2]},
		{0.8, bossFight[4]},
		{1.0, bossFight[5]},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, Resolve(bossFight, testCase.progress), "progress=%v", testCase.progress)
	}
}

func TestResolveBeforeFirstWaypointUsesFirst(t *testing.T) {
	t.Parallel()

	script := []Waypoint{{Time: 0.3, X: 10, Y: 20}, {Time: 0.6, X: 30, Y: 40}}
	assert.Equal(t, script[0], Resolve(script, 0.1))
	assert.Equal(t, Waypoint{X: NeutralX, Y: NeutralY}, Resolve(nil, 0.5))
}

func TestResolvePicksLargestReachedTime(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		got := Resolve(bossFight, p)

		best := bossFight[0]
		for _, w := range bossFight {
			if w.Time <= p && w.Time >= best.Time {
				best = w
			}
		}
		require.Equal(t, best, got, "progress=%v", p)
	}
}

func TestUnknownSceneIsNeutral(t *testing.T) {
	t.Parallel()

	interp, _ := newInterpreter()
	assert.Equal(t, Neutral(), interp.Update("missing", 0.5))
	assert.Equal(t, Neutral(), interp.Update("empty", 0.5))
}

func TestClickFlashLastsExactly150ms(t *testing.T) {
	t.Parallel()

	interp, fc := newInterpreter()

	state := interp.Update("boss-fight", 0.1)
	require.True(t, state.Clicking)
	require.Equal(t, 65.0, state.X)

	fc.Step(100 * time.Millisecond)
	require.True(t, interp.Update("boss-fight", 0.105).Clicking)

	fc.Step(49 * time.Millisecond)
	require.True(t, interp.Update("boss-fight", 0.11).Clicking)

	// still inside the click window, but the flash has run its course
	fc.Step(1 * time.Millisecond)
	require.False(t, interp.Update("boss-fight", 0.115).Clicking)
	require.False(t, interp.Current().Clicking)
}

func TestClickFlashClearsWithoutProgress(t *testing.T) {
	t.Parallel()

	interp, fc := newInterpreter()
	require.True(t, interp.Update("boss-fight", 0.2).Clicking)

	fc.Step(150 * time.Millisecond)
	state := interp.Current()
	require.False(t, state.Clicking)
	require.Equal(t, 68.0, state.X)
}

func TestClickFiresOncePerPassThroughWindow(t *testing.T) {
	t.Parallel()

	interp, fc := newInterpreter()
	require.True(t, interp.Update("boss-fight", 0.1).Clicking)

	fc.Step(200 * time.Millisecond)
	require.False(t, interp.Update("boss-fight", 0.15).Clicking)
	require.True(t, interp.Update("boss-fight", 0.19).Clicking)

	// rewinding back onto the earlier click waypoint fires it again
	fc.Step(200 * time.Millisecond)
	require.True(t, interp.Update("boss-fight", 0.1).Clicking)
}

func TestNoClickOutsideWindow(t *testing.T) {
	t.Parallel()

	interp, _ := newInterpreter()
	assert.False(t, interp.Update("boss-fight", 0.05).Clicking)
	assert.False(t, interp.Update("boss-fight", 0.125).Clicking)
}

func TestHoldLatchesUntilSceneChange(t *testing.T) {
	t.Parallel()

	interp, _ := newInterpreter()
	require.False(t, interp.Update("boss-fight", 0.75).Holding)
	require.True(t, interp.Update("boss-fight", 0.8).Holding)

	// manual rewind within the scene keeps the latch
	require.True(t, interp.Update("boss-fight", 0.5).Holding)

	// a scene change clears it
	require.False(t, interp.Update("late-start", 0.5).Holding)
	require.False(t, interp.Update("boss-fight", 0.5).Holding)
}

func TestReset(t *testing.T) {
	t.Parallel()

	interp, _ := newInterpreter()
	interp.Update("boss-fight", 0.1)
	interp.Update("boss-fight", 0.85)
	interp.Reset()

	assert.Equal(t, Neutral(), interp.Current())
	state := interp.Update("boss-fight", 0.5)
	assert.False(t, state.Holding)

	script, found := interp.Script("boss-fight")
	assert.True(t, found)
	assert.Len(t, script, len(bossFight))
}
