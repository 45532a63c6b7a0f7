package config

import (
	"fmt"
	"time"

	"github.com/robmorgan/cutscene/combat"
	"github.com/robmorgan/cutscene/cursor"
	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/scene"
)

// Skill is a card revealed during the skills scene.
type Skill struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	XP    int    `yaml:"xp"`
	Icon  string `yaml:"icon"`
}

// Achievement is an entry in the achievements roll.
type Achievement struct {
	Name   string `yaml:"name"`
	Desc   string `yaml:"desc"`
	Rarity string `yaml:"rarity"`
	Icon   string `yaml:"icon"`
}

// Show is everything a presentation needs: the scene list, the cursor scripts and the content each scene reveals.
type Show struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Tagline  string `yaml:"tagline"`
	Hero     string `yaml:"hero"`
	Boss     string `yaml:"boss"`

	Scenes        []scene.Scene                `yaml:"scenes"`
	CursorScripts map[string][]cursor.Waypoint `yaml:"cursor_scripts"`

	Narration []string `yaml:"narration"`

	SkillThresholds []float64 `yaml:"skill_thresholds"`
	Skills          []Skill   `yaml:"skills"`

	AttackThresholds []float64       `yaml:"attack_thresholds"`
	Attacks          []combat.Attack `yaml:"attacks"`

	AchievementThresholds []float64     `yaml:"achievement_thresholds"`
	Achievements          []Achievement `yaml:"achievements"`

	VictoryXP int    `yaml:"victory_xp"`
	Rank      string `yaml:"rank"`
}

// Validate checks the show can be played.
func (s Show) Validate() error {
	if err := scene.Validate(s.Scenes); err != nil {
		return err
	}

	for id, script := range s.CursorScripts {
		if scene.IndexOf(s.Scenes, id) < 0 {
			logger.GetProjectLogger().Warnf("Cursor script %q does not match any scene", id)
		}
		for i, w := range script {
			if w.Time < 0 || w.Time > 1 {
				return fmt.Errorf("cursor script %q waypoint %d: time %v is outside [0, 1]", id, i, w.Time)
			}
			if i > 0 && w.Time < script[i-1].Time {
				logger.GetProjectLogger().Warnf("Cursor script %q waypoint %d is out of order", id, i)
			}
		}
	}

	if len(s.SkillThresholds) != len(s.Skills) {
		return fmt.Errorf("%d skill thresholds for %d skills", len(s.SkillThresholds), len(s.Skills))
	}
	if len(s.AchievementThresholds) != len(s.Achievements) {
		return fmt.Errorf("%d achievement thresholds for %d achievements", len(s.AchievementThresholds), len(s.Achievements))
	}

	return combat.ValidateAttacks(s.AttackThresholds, s.Attacks)
}

// DefaultShow returns the built-in presentation.
func DefaultShow() Show {
	return Show{
		Title:    "LORENZO COOKS",
		Subtitle: "Algebra I : I DID IT",
		Tagline:  "A Mathematical Odyssey",
		Hero:     "LORENZO",
		Boss:     "MR BYAS",
		Scenes: []scene.Scene{
			{ID: "intro", Duration: 14 * time.Second},
			{ID: "origin", Duration: 18 * time.Second},
			{ID: "skills", Duration: 22 * time.Second},
			{ID: "boss-approach", Duration: 12 * time.Second},
			{ID: "boss-fight", Duration: 32 * time.Second},
			{ID: "victory", Duration: 16 * time.Second},
			{ID: "achievements", Duration: 24 * time.Second},
			{ID: "final", Duration: 20 * time.Second},
		},
		CursorScripts: defaultCursorScripts(),
		Narration: []string{
			"kaboom",
			"In the halls of knowledge, a warrior rises...",
			"Armed with nothing but determination and a mechanical pencil.",
			"They said algebra was impossible.",
			"They were wrong.",
			"His name... is LORENZO.",
		},
		SkillThresholds: []float64{0.08, 0.18, 0.28, 0.48, 0.68, 0.88},
		Skills: []Skill{
			{Name: "Linear Equations", Level: "MASTERED", XP: 2500, Icon: "f(x)"},
			{Name: "Graphing", Level: "MASTERED", XP: 2200, Icon: "xy"},
			{Name: "Slope-Intercept", Level: "MASTERED", XP: 2800, Icon: "m"},
			{Name: "Systems of Equations", Level: "ADVANCED", XP: 1900, Icon: "sys"},
			{Name: "Substitution", Level: "MASTERED", XP: 2400, Icon: "sub"},
			{Name: "Elimination", Level: "MASTERED", XP: 2600, Icon: "elim"},
		},
		AttackThresholds: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		Attacks: []combat.Attack{
			{Name: "SUBSTITUTION STRIKE", Damage: 2847, Type: combat.TypeCritical, Color: "#ef4444"},
			{Name: "ELIMINATION BLAST", Damage: 4203, Type: combat.TypeSuper, Color: "#8b5cf6"},
			{Name: "GRAPH THEORY SLASH", Damage: 1654, Type: combat.TypeNormal, Color: "#f5f5f5"},
			{Name: "LINEAR DEVASTATION", Damage: 6156, Type: combat.TypeUltimate, Color: "#fbbf24"},
			{Name: "SLOPE INTERCEPT", Damage: 3892, Type: combat.TypeCritical, Color: "#ef4444"},
			{Name: "FINAL CALCULATION", Damage: 9999, Type: combat.TypeFinisher, Color: "#ff0080"},
		},
		AchievementThresholds: []float64{0.12, 0.25, 0.37, 0.50, 0.62, 0.87},
		Achievements: []Achievement{
			{Name: "First Blood", Desc: "Complete your first equation", Rarity: "COMMON", Icon: "I"},
			{Name: "Quick Learner", Desc: "Master 3 skills in one week", Rarity: "RARE", Icon: "II"},
			{Name: "Equation Slayer", Desc: "Solve 100 equations", Rarity: "EPIC", Icon: "III"},
			{Name: "Graph Master", Desc: "Perfect score on graphing test", Rarity: "LEGENDARY", Icon: "IV"},
			{Name: "Untouchable", Desc: "Complete exam with no mistakes", Rarity: "LEGENDARY", Icon: "V"},
			{Name: "The Saga Complete", Desc: "Finish Algebra I Semester", Rarity: "MYTHIC", Icon: "VI"},
		},
		VictoryXP: 15847,
		Rank:      "S",
	}
}

// Cursor positions and actions for each scene, synchronized with what the scene reveals.
func defaultCursorScripts() map[string][]cursor.Waypoint {
	return map[string][]cursor.Waypoint{
		"intro": {
			{Time: 0, X: 50, Y: 60},
			{Time: 0.2, X: 50, Y: 55},
			{Time: 0.5, X: 50, Y: 50},
			{Time: 0.8, X: 52, Y: 52},
		},
		"origin": {
			{Time: 0, X: 50, Y: 70},
			{Time: 0.15, X: 50, Y: 65},
			{Time: 0.35, X: 52, Y: 60},
			{Time: 0.55, X: 50, Y: 55},
			{Time: 0.75, X: 48, Y: 52},
			{Time: 0.95, X: 50, Y: 50},
		},
		"skills": {
			// row 1: linear equations, graphing, slope-intercept
			{Time: 0, X: 30, Y: 42},
			{Time: 0.08, X: 30, Y: 48, Click: true},
			{Time: 0.12, X: 50, Y: 42},
			{Time: 0.18, X: 50, Y: 48, Click: true},
			{Time: 0.22, X: 70, Y: 42},
			{Time: 0.28, X: 70, Y: 48, Click: true},
			// row 2: systems, substitution, elimination
			{Time: 0.4, X: 30, Y: 58},
			{Time: 0.48, X: 30, Y: 64, Click: true},
			{Time: 0.6, X: 50, Y: 58},
			{Time: 0.68, X: 50, Y: 64, Click: true},
			{Time: 0.8, X: 70, Y: 58},
			{Time: 0.88, X: 70, Y: 64, Click: true},
			{Time: 0.95, X: 50, Y: 55},
		},
		"boss-approach": {
			{Time: 0, X: 50, Y: 80},
			{Time: 0.25, X: 50, Y: 75},
			{Time: 0.5, X: 50, Y: 70, Click: true},
			{Time: 0.75, X: 50, Y: 65},
			{Time: 0.95, X: 50, Y: 60, Click: true},
		},
		"boss-fight": {
			{Time: 0, X: 35, Y: 55},
			{Time: 0.1, X: 65, Y: 45, Click: true},
			{Time: 0.2, X: 68, Y: 42, Click: true},
			{Time: 0.3, X: 70, Y: 38, Click: true},
			{Time: 0.4, X: 66, Y: 44, Click: true},
			{Time: 0.5, X: 72, Y: 40, Click: true},
			{Time: 0.6, X: 68, Y: 42, Click: true},
			{Time: 0.7, X: 50, Y: 50},
			{Time: 0.8, X: 50, Y: 50, Hold: true},
			{Time: 0.95, X: 50, Y: 50},
		},
		"victory": {
			{Time: 0, X: 50, Y: 60},
			{Time: 0.3, X: 50, Y: 55},
			{Time: 0.6, X: 52, Y: 53},
			{Time: 0.9, X: 50, Y: 50},
		},
		"achievements": {
			{Time: 0, X: 25, Y: 50},
			{Time: 0.12, X: 30, Y: 50, Click: true},
			{Time: 0.25, X: 40, Y: 50},
			{Time: 0.37, X: 45, Y: 50, Click: true},
			{Time: 0.5, X: 55, Y: 50},
			{Time: 0.62, X: 60, Y: 50, Click: true},
			{Time: 0.75, X: 70, Y: 50},
			{Time: 0.87, X: 75, Y: 50, Click: true},
			{Time: 0.95, X: 50, Y: 50},
		},
		"final": {
			{Time: 0, X: 50, Y: 55},
			{Time: 0.3, X: 50, Y: 52},
			{Time: 0.6, X: 48, Y: 50},
			{Time: 0.9, X: 50, Y: 50},
		},
	}
}
