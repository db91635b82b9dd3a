package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
)

const (
	hudPaddingX    = 12
	hudPaddingY    = 12
	hudLineSpacing = 16
)

type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

// Lines returns the HUD text for the current world state, top to bottom.
func (h *HUDSystem) Lines(w *ecs.World) []string {
	sess := sessionOf(w)
	e, ok := ecs.First(w, component.PlayerComponent)
	if sess == nil || !ok {
		return nil
	}
	pc, _ := ecs.Get(w, e, component.PlayerComponent)
	if pc == nil || pc.Actor == nil {
		return nil
	}
	p := pc.Actor

	owned := "none"
	if names := p.Upgrades(); len(names) > 0 {
		owned = strings.Join(names, ", ")
	}

	lines := []string{
		fmt.Sprintf("Money: $%d", p.Money),
		fmt.Sprintf("Trees: %d", p.TreesCut),
		fmt.Sprintf("Skill: %.0f  Reach: %.0f", sess.SkillLevel, sess.Reach),
		fmt.Sprintf("Bosses: %d  Next in: %d", sess.BossesDefeated, max(sess.BossEvery-sess.TreesSinceBoss, 0)),
		"Upgrades: " + owned,
	}
	if p.IsCutting() {
		lines = append(lines, "E: swing!")
	} else {
		lines = append(lines, "A/D move  Space jump  E cut  U shop  Esc pause")
	}
	return lines
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for i, line := range h.Lines(w) {
		ebitenutil.DebugPrintAt(screen, line, hudPaddingX, hudPaddingY+i*hudLineSpacing)
	}
}
