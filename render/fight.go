package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/cutscene/combat"
	"github.com/robmorgan/cutscene/effect"
)

// FightView is the read side of the boss fight.
type FightView interface {
	Snapshot() combat.Snapshot
	Attacks() []combat.Attack
}

var flashColors = map[string]lipgloss.Color{
	"white":  lipgloss.Color("#f5f5f5"),
	"yellow": lipgloss.Color("#fbbf24"),
	"pink":   lipgloss.Color("#ff0080"),
}

// BossFight draws the arena from the fight snapshot.
type BossFight struct {
	fight FightView
	hero  string
	boss  string

	bossBar   progress.Model
	playerBar progress.Model
	shake     effect.Oscillator
}

func NewBossFight(fight FightView, hero, boss string) *BossFight {
	return &BossFight{
		fight: fight,
		hero:  hero,
		boss:  boss,
		bossBar: progress.New(
			progress.WithGradient("#7f1d1d", "#ef4444"),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
		playerBar: progress.New(
			progress.WithSolidFill("#22c55e"),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
		shake: effect.NewSineWaveOsc(1, 25),
	}
}

func (b *BossFight) Render(ctx RenderContext) string {
	if b.fight == nil {
		return place(ctx, "", 0)
	}
	snap := b.fight.Snapshot()
	attacks := b.fight.Attacks()

	bossName := dangerStyle.Render(b.boss)
	bossHealth := fmt.Sprintf("%3.0f%%", snap.BossHealth)
	lines := []string{
		faintStyle.Render(spaced("THE FINAL EXAM")),
		lipgloss.JoinHorizontal(lipgloss.Center, bossName, "  ", b.bossBar.ViewAs(snap.BossHealth/100), " ", mutedStyle.Render(bossHealth)),
		"",
	}

	art := strings.Join(bossArt, "\n")
	bossStyle := dangerStyle.Copy()
	switch {
	case snap.BossStagger:
		bossStyle = bossStyle.Foreground(lipgloss.Color("#ffffff")).PaddingLeft(3)
	case snap.BossHit:
		bossStyle = bossStyle.Foreground(lipgloss.Color("#ffffff"))
	}
	lines = append(lines, bossStyle.Render(art))

	if len(snap.DamageNumbers) > 0 {
		var numbers []string
		for _, dn := range snap.DamageNumbers {
			label := fmt.Sprintf("-%s", grouped(dn.Value))
			if dn.Type != combat.TypeNormal {
				label += " " + string(dn.Type) + "!"
			}
			numbers = append(numbers, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(dn.Color.Hex())).Render(label))
		}
		lines = append(lines, strings.Join(numbers, "   "))
	} else {
		lines = append(lines, "")
	}

	if snap.CurrentAttack >= 0 && snap.CurrentAttack < len(attacks) && snap.Phase != combat.PhaseIdle {
		attack := attacks[snap.CurrentAttack]
		banner := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(attack.Color)).Render(spaced(attack.Name))
		if color, ok := flashColors[snap.Flash]; ok && snap.Phase == combat.PhaseAttacking {
			banner = lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("#000000")).Bold(true).Padding(0, 2).Render(spaced(attack.Name))
		}
		lines = append(lines, "", banner)
	} else {
		lines = append(lines, "", "")
	}

	if len(snap.Splatters) > 0 {
		var dots []string
		for _, s := range snap.Splatters {
			glyph := "●"
			if s.Size >= 200 {
				glyph = "⬤"
			}
			dots = append(dots, lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color.Hex())).Render(glyph))
		}
		lines = append(lines, strings.Join(dots, " "))
	}

	combo := ""
	if snap.Combo > 0 {
		combo = accentStyle.Render(fmt.Sprintf("  COMBO x%d", snap.Combo))
	}
	lines = append(lines, "",
		lipgloss.JoinHorizontal(lipgloss.Center, accentStyle.Render(b.hero), "  ", b.playerBar.ViewAs(1), combo),
	)

	if snap.SlowMo {
		lines = append(lines, faintStyle.Render(spaced("SLOW MOTION")))
	}
	switch {
	case snap.QTEVisible:
		lines = append(lines, "", mutedStyle.Render(spaced("FINISH HIM")), accentStyle.Render("[ X ]"))
	case snap.QTESucceeded:
		lines = append(lines, "", accentStyle.Render(spaced("PERFECT!")), mutedStyle.Render("+10,000 BONUS"))
	}

	dx := 0
	if snap.Shake > 0 {
		dx = int(math.Round(b.shake.Value(ctx.Elapsed) * snap.Shake / 4))
	}
	return place(ctx, stack(lines...), dx)
}
