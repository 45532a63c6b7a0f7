package combat

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

var (
	testThresholds = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	testAttacks    = []Attack{
		{Name: "SUBSTITUTION STRIKE", Damage: 2847, Type: TypeCritical, Color: "#ef4444"},
		{Name: "ELIMINATION BLAST", Damage: 4203, Type: TypeSuper, Color: "#8b5cf6"},
		{Name: "GRAPH THEORY SLASH", Damage: 1654, Type: TypeNormal, Color: "#f5f5f5"},
		{Name: "LINEAR DEVASTATION", Damage: 6156, Type: TypeUltimate, Color: "#fbbf24"},
		{Name: "SLOPE INTERCEPT", Damage: 3892, Type: TypeCritical, Color: "#ef4444"},
		{Name: "FINAL CALCULATION", Damage: 9999, Type: TypeFinisher, Color: "#ff0080"},
	}
)

func newFight() (*Fight, *testingclock.FakeClock) {
	fc := testingclock.NewFakeClock(time.Unix(1700000000, 0))
	return NewFight(testThresholds, testAttacks, fc, rand.New(rand.NewSource(1))), fc
}

func attackEvents(events []Event) []int {
	var fired []int
	for _, e := range events {
		if e.Kind == EventAttack {
			fired = append(fired, e.Attack)
		}
	}
	return fired
}

func TestSweepFiresEachAttackOnceInOrder(t *testing.T) {
	t.Parallel()

	fight, fc := newFight()

	var fired []int
	for i := 0; i <= 1000; i++ {
		fired = append(fired, attackEvents(fight.Update(float64(i)/1000))...)
		fc.Step(32 * time.Millisecond)
	}

	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, fired)
	require.Equal(t, 6, fight.Snapshot().Combo)
	require.Len(t, fight.Snapshot().Splatters, 6)
}

func TestJumpFiresSkippedAttacksInOrder(t *testing.T) {
	t.Parallel()

	fight, _ := newFight()
	require.Equal(t, []int{0, 1, 2}, attackEvents(fight.Update(0.35)))
	require.Equal(t, 3, fight.Snapshot().Combo)
	require.Equal(t, 2, fight.Snapshot().CurrentAttack)
}

func TestRewindDoesNotRefire(t *testing.T) {
	t.Parallel()

	fight, _ := newFight()
	fight.Update(0.25)
	require.Empty(t, attackEvents(fight.Update(0.15)))
	require.Empty(t, attackEvents(fight.Update(0.25)))
	require.Equal(t, 2, fight.Snapshot().Combo)
}

func TestHealthFollowsProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, Health(0))
	assert.InDelta(t, 45.0, Health(0.5), 1e-9)
	assert.Equal(t, 0.0, Health(1))

	fight, _ := newFight()
	fight.Update(0.5)
	assert.InDelta(t, 45.0, fight.Snapshot().BossHealth, 1e-9)
}

func TestAttackCycle(t *testing.T) {
	t.Parallel()

	fight, fc := newFight()
	fight.Update(0.1)

	snap := fight.Snapshot()
	require.Equal(t, PhaseAttacking, snap.Phase)
	require.Equal(t, 6.0, snap.Shake)
	require.Equal(t, "white", snap.Flash)
	require.False(t, snap.SlowMo)
	require.Len(t, snap.DamageNumbers, 1)
	require.Equal(t, 2847, snap.DamageNumbers[0].Value)

	fc.Step(HitDelay)
	events := fight.Update(0.1)
	require.Equal(t, []Event{{Kind: EventHit, Attack: 0}}, events)
	snap = fight.Snapshot()
	require.Equal(t, PhaseResolving, snap.Phase)
	require.True(t, snap.BossHit)
	require.False(t, snap.BossStagger)

	fc.Step(RecoverDelay - HitDelay)
	events = fight.Update(0.1)
	require.Equal(t, []Event{{Kind: EventRecover, Attack: 0}}, events)
	snap = fight.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.Equal(t, 0.0, snap.Shake)
	require.Equal(t, "", snap.Flash)
}

func TestHeavyAttackSlowMotion(t *testing.T) {
	t.Parallel()

	fight, fc := newFight()
	fight.Update(0.35)
	fc.Step(time.Second)
	fight.Update(0.35)

	fight.Update(0.4)
	snap := fight.Snapshot()
	require.True(t, snap.SlowMo)
	require.Equal(t, 12.0, snap.Shake)
	require.Equal(t, "yellow", snap.Flash)

	fc.Step(HitDelay)
	fight.Update(0.4)
	require.True(t, fight.Snapshot().BossStagger)

	fc.Step(SlowMoLength - HitDelay)
	fight.Update(0.4)
	require.False(t, fight.Snapshot().SlowMo)
}

func TestDamageNumbersAreTrimmed(t *testing.T) {
	t.Parallel()

	fight, fc := newFight()
	fight.Update(0.45)
	require.Len(t, fight.Snapshot().DamageNumbers, 4)

	fc.Step(DamageNumTTL)
	fight.Update(0.45)
	numbers := fight.Snapshot().DamageNumbers
	require.Len(t, numbers, 2)
	require.Equal(t, 6156, numbers[1].Value)
	require.NotEqual(t, numbers[0].ID, numbers[1].ID)
}

func TestQTE(t *testing.T) {
	t.Parallel()

	fight, _ := newFight()
	fight.Update(0.7)
	require.False(t, fight.Snapshot().QTEVisible)

	events := fight.Update(0.8)
	require.Contains(t, events, Event{Kind: EventQTEOpen, Attack: -1})
	require.True(t, fight.Snapshot().QTEVisible)

	events = fight.Update(0.88)
	require.Contains(t, events, Event{Kind: EventQTESucceeded, Attack: -1})
	snap := fight.Snapshot()
	require.False(t, snap.QTEVisible)
	require.True(t, snap.QTESucceeded)

	// the window does not reopen after success
	fight.Update(0.8)
	require.False(t, fight.Snapshot().QTEVisible)
}

func TestReset(t *testing.T) {
	t.Parallel()

	fight, _ := newFight()
	fight.Update(0.9)
	fight.Reset()

	snap := fight.Snapshot()
	assert.Equal(t, 0, snap.Combo)
	assert.Equal(t, -1, snap.CurrentAttack)
	assert.Equal(t, 100.0, snap.BossHealth)
	assert.Empty(t, snap.DamageNumbers)
	assert.Len(t, fight.Attacks(), 6)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, attackEvents(fight.Update(1)))
}

func TestSplattersUsePalette(t *testing.T) {
	t.Parallel()

	require.Len(t, splatterPalette, 6)
	require.Len(t, parsePalette("#ffffff", "nope", "#000000"), 2)

	fight, _ := newFight()
	fight.Update(1)
	for _, s := range fight.Snapshot().Splatters {
		assert.Contains(t, splatterPalette, s.Color)
	}
}

func TestValidateAttacks(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateAttacks(testThresholds, testAttacks))
	require.Error(t, ValidateAttacks(testThresholds[:2], testAttacks))
	require.Error(t, ValidateAttacks([]float64{0.2, 0.1}, testAttacks[:2]))
	require.Error(t, ValidateAttacks([]float64{0.1}, []Attack{{Name: "bad", Color: "red"}}))
}
