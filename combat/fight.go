// Package combat is the boss-fight state machine: attacks fire as progress crosses their thresholds, each one at
// most once per playback.
package combat

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/reveal"
	"github.com/robmorgan/cutscene/timers"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	// QTEOpen and QTEClose bound the quick-time event window in scene progress.
	QTEOpen  = 0.78
	QTEClose = 0.88

	HitDelay      = 200 * time.Millisecond
	RecoverDelay  = 500 * time.Millisecond
	SlowMoLength  = 800 * time.Millisecond
	DamageNumTTL  = 2 * time.Second
	keptDamageNum = 2

	timerHit     = "combat:hit"
	timerRecover = "combat:recover"
	timerSlowMo  = "combat:slowmo"
	timerTrim    = "combat:trim"
)

// splatterPalette is what paint splatters are coloured from.
var splatterPalette = parsePalette("#dc2626", "#2563eb", "#16a34a", "#eab308", "#ec4899", "#8b5cf6")

// parsePalette parses hex colours, skipping any that do not parse.
func parsePalette(hexes ...string) []colorful.Color {
	palette := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		palette = append(palette, c)
	}
	return palette
}

// Phase is where the fight is in its idle -> attacking -> resolving -> idle cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAttacking
	PhaseResolving
)

func (p Phase) String() string {
	switch p {
	case PhaseAttacking:
		return "attacking"
	case PhaseResolving:
		return "resolving"
	default:
		return "idle"
	}
}

// EventKind identifies what changed during an update.
type EventKind string

const (
	EventAttack       EventKind = "attack"
	EventHit          EventKind = "hit"
	EventRecover      EventKind = "recover"
	EventSlowMoEnd    EventKind = "slowmo_end"
	EventQTEOpen      EventKind = "qte_open"
	EventQTESucceeded EventKind = "qte_success"
)

// Event is emitted by Update for every transition it made.
type Event struct {
	Kind   EventKind
	Attack int
}

// DamageNumber is the floating number shown when an attack lands.
type DamageNumber struct {
	ID    uuid.UUID
	Value int
	X, Y  float64
	Type  AttackType
	Color colorful.Color
}

// Splatter is a paint splash left on the arena by an attack.
type Splatter struct {
	ID       uuid.UUID
	X, Y     float64
	Color    colorful.Color
	Size     float64
	Rotation float64
}

// Snapshot is the read-only view of the fight handed to the renderer.
type Snapshot struct {
	Phase         Phase
	CurrentAttack int
	Combo         int
	BossHealth    float64
	Shake         float64
	Flash         string
	SlowMo        bool
	BossHit       bool
	BossStagger   bool
	QTEVisible    bool
	QTESucceeded  bool
	DamageNumbers []DamageNumber
	Splatters     []Splatter
}

// Fight tracks one playback of the boss fight.
type Fight struct {
	thresholds []float64
	attacks    []Attack
	clock      clock.PassiveClock
	rng        *rand.Rand
	timers     *timers.Table

	lastFired   int
	current     int
	phase       Phase
	combo       int
	health      float64
	shake       float64
	flash       string
	slowMo      bool
	bossHit     bool
	bossStagger bool
	qteOpen     bool
	qteSuccess  bool

	damageNumbers []DamageNumber
	splatters     []Splatter
}

// Create a new fight. thresholds[i] is the progress at which attacks[i] fires.
func NewFight(thresholds []float64, attacks []Attack, c clock.PassiveClock, rng *rand.Rand) *Fight {
	f := &Fight{
		thresholds: thresholds,
		attacks:    attacks,
		clock:      c,
		rng:        rng,
		timers:     timers.NewTable(),
	}
	f.Reset()
	return f
}

// Health returns the boss health for a progress value. It depends only on progress, not on which attacks landed.
func Health(progress float64) float64 {
	return math.Max(0, 100-progress*110)
}

// Update advances the fight to progress and returns the transitions it made, in order.
func (f *Fight) Update(progress float64) []Event {
	now := f.clock.Now()
	var events []Event

	for _, name := range f.timers.Expire(now) {
		if e, ok := f.expire(name); ok {
			events = append(events, e)
		}
	}

	f.health = Health(progress)

	reached := reveal.Selected(f.thresholds, progress)
	if reached > len(f.attacks)-1 {
		reached = len(f.attacks) - 1
	}
	for i := f.lastFired + 1; i <= reached; i++ {
		f.fire(i, now)
		events = append(events, Event{Kind: EventAttack, Attack: i})
	}

	if reveal.Window(QTEOpen, QTEClose, progress) && !f.qteSuccess {
		if !f.qteOpen {
			f.qteOpen = true
			events = append(events, Event{Kind: EventQTEOpen, Attack: -1})
			logger.GetProjectLogger().WithFields(logrus.Fields{"progress": progress}).Info("QTE opened")
		}
	} else if progress >= QTEClose && f.qteOpen {
		f.qteOpen = false
		f.qteSuccess = true
		events = append(events, Event{Kind: EventQTESucceeded, Attack: -1})
		logger.GetProjectLogger().WithFields(logrus.Fields{"progress": progress}).Info("QTE succeeded")
	}

	return events
}

func (f *Fight) fire(i int, now time.Time) {
	attack := f.attacks[i]
	f.lastFired = i
	f.current = i
	f.phase = PhaseAttacking
	f.combo++
	f.shake = attack.Shake()
	f.flash = attack.Flash()

	if attack.Type.Heavy() {
		f.slowMo = true
		f.timers.Set(timerSlowMo, now, SlowMoLength)
	}

	color, err := attack.RGB()
	if err != nil {
		color = colorful.Color{R: 1, G: 1, B: 1}
	}

	f.damageNumbers = append(f.damageNumbers, DamageNumber{
		ID:    uuid.New(),
		Value: attack.Damage,
		X:     55 + f.rng.Float64()*15,
		Y:     25 + f.rng.Float64()*15,
		Type:  attack.Type,
		Color: color,
	})

	size := 100 + f.rng.Float64()*60
	if attack.Type.Heavy() {
		size = 200
	}
	f.splatters = append(f.splatters, Splatter{
		ID:       uuid.New(),
		X:        50 + f.rng.Float64()*30,
		Y:        20 + f.rng.Float64()*35,
		Color:    splatterPalette[f.rng.Intn(len(splatterPalette))],
		Size:     size,
		Rotation: f.rng.Float64() * 360,
	})

	f.timers.Set(timerHit, now, HitDelay)
	f.timers.Set(timerRecover, now, RecoverDelay)
	f.timers.Set(timerTrim, now, DamageNumTTL)

	logger.GetProjectLogger().WithFields(logrus.Fields{
		"attack": attack.Name,
		"index":  i,
		"damage": attack.Damage,
		"type":   attack.Type,
		"combo":  f.combo,
	}).Info("Attack fired")
}

func (f *Fight) expire(name string) (Event, bool) {
	switch name {
	case timerHit:
		f.phase = PhaseResolving
		f.bossHit = true
		f.bossStagger = f.attacks[f.current].Type.Staggers()
		return Event{Kind: EventHit, Attack: f.current}, true
	case timerRecover:
		f.phase = PhaseIdle
		f.bossHit = false
		f.bossStagger = false
		f.shake = 0
		f.flash = ""
		return Event{Kind: EventRecover, Attack: f.current}, true
	case timerSlowMo:
		f.slowMo = false
		return Event{Kind: EventSlowMoEnd, Attack: f.current}, true
	case timerTrim:
		if len(f.damageNumbers) > keptDamageNum {
			f.damageNumbers = f.damageNumbers[len(f.damageNumbers)-keptDamageNum:]
		}
	}
	return Event{}, false
}

// Snapshot returns the current fight state.
func (f *Fight) Snapshot() Snapshot {
	dn := make([]DamageNumber, len(f.damageNumbers))
	copy(dn, f.damageNumbers)
	sp := make([]Splatter, len(f.splatters))
	copy(sp, f.splatters)

	return Snapshot{
		Phase:         f.phase,
		CurrentAttack: f.current,
		Combo:         f.combo,
		BossHealth:    f.health,
		Shake:         f.shake,
		Flash:         f.flash,
		SlowMo:        f.slowMo,
		BossHit:       f.bossHit,
		BossStagger:   f.bossStagger,
		QTEVisible:    f.qteOpen,
		QTESucceeded:  f.qteSuccess,
		DamageNumbers: dn,
		Splatters:     sp,
	}
}

// Attacks returns the attack list.
func (f *Fight) Attacks() []Attack {
	return f.attacks
}

// Reset prepares the fight for a new playback and drops pending timers.
func (f *Fight) Reset() {
	f.timers.Clear()
	f.lastFired = -1
	f.current = -1
	f.phase = PhaseIdle
	f.combo = 0
	f.health = 100
	f.shake = 0
	f.flash = ""
	f.slowMo = false
	f.bossHit = false
	f.bossStagger = false
	f.qteOpen = false
	f.qteSuccess = false
	f.damageNumbers = nil
	f.splatters = nil
}
