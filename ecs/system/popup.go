package system

import (
	"fmt"
	"image/color"

	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

const (
	popupSeconds = 0.9
	popupRise    = 36.0
	tickSeconds  = 1.0 / 60.0
)

// PopupSystem spawns floating feedback text for cut results and purchases
// and tweens it upward while fading out.
type PopupSystem struct{}

func NewPopupSystem() *PopupSystem {
	return &PopupSystem{}
}

func (s *PopupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Items() {
		switch evt.Kind {
		case ecs.EventCutSucceeded:
			if evt.Amount > 0 {
				spawnPopup(w, evt.X, evt.Y, fmt.Sprintf("+%d", evt.Amount), colornames.Gold)
			} else {
				spawnPopup(w, evt.X, evt.Y, "TIMBER!", colornames.White)
			}
		case ecs.EventCutMissed:
			spawnPopup(w, evt.X, evt.Y, "miss", colornames.Red)
		case ecs.EventBossSpawned:
			spawnPopup(w, evt.X, evt.Y-20, evt.Name+"!", colornames.Orange)
		case ecs.EventPurchased:
			spawnPopup(w, evt.X, evt.Y, evt.Name, colornames.Lightgreen)
		}
	}

	ecs.ForEach2(w, component.PopupComponent, component.TransformComponent, func(e ecs.Entity, p *component.Popup, t *component.Transform) {
		rise, done := p.Rise.Update(tickSeconds)
		alpha, _ := p.Fade.Update(tickSeconds)
		t.Y = p.OriginY - float64(rise)
		p.Alpha = float64(alpha)
		if done {
			ecs.DestroyEntity(w, e)
		}
	})
}

func spawnPopup(w *ecs.World, x, y float64, text string, clr color.Color) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.PopupComponent, &component.Popup{
		Text:    text,
		Color:   clr,
		OriginY: y,
		Rise:    gween.New(0, popupRise, popupSeconds, ease.OutQuad),
		Fade:    gween.New(1, 0, popupSeconds, ease.InQuad),
		Alpha:   1,
	})
}
