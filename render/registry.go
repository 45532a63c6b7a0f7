package render

import (
	"fmt"

	"github.com/robmorgan/cutscene/config"
)

// Registry maps scene ids to their renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry builds the renderers for every scene of the default show layout.
func NewRegistry(show config.Show, fight FightView) *Registry {
	r := &Registry{renderers: map[string]Renderer{}}

	r.Register("intro", NewIntro(show.Title, show.Subtitle, show.Tagline))
	r.Register("origin", NewOrigin(show.Narration))
	r.Register("skills", NewSkills(show.Skills, show.SkillThresholds))
	r.Register("boss-approach", NewApproach(show.Boss))
	r.Register("boss-fight", NewBossFight(fight, show.Hero, show.Boss))
	r.Register("victory", NewVictory(show.VictoryXP, show.Rank, len(show.Attacks)))
	r.Register("achievements", NewAchievements(show.Achievements, show.AchievementThresholds))
	r.Register("final", NewFinal(show.Hero, len(show.Attacks)))

	return r
}

// Register sets the renderer for a scene, replacing any existing one.
func (r *Registry) Register(sceneID string, renderer Renderer) {
	r.renderers[sceneID] = renderer
}

// Lookup returns the renderer for a scene. Unknown scenes get a placeholder that names the scene.
func (r *Registry) Lookup(sceneID string) Renderer {
	if renderer, ok := r.renderers[sceneID]; ok {
		return renderer
	}
	return RendererFunc(func(ctx RenderContext) string {
		return place(ctx, stack(titleStyle.Render(spaced(sceneID)), mutedStyle.Render(fmt.Sprintf("%3.0f%%", ctx.Progress*100))), 0)
	})
}

// Render draws a scene.
func (r *Registry) Render(sceneID string, ctx RenderContext) string {
	return r.Lookup(sceneID).Render(ctx)
}
