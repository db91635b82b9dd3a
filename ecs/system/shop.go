package system

import (
	"errors"
	"log"

	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/upgrades"
)

// ShopSystem resolves ShopRequest entities: it charges the player and runs
// the upgrade's effect script against the session tuning.
type ShopSystem struct {
	catalog *upgrades.Catalog
}

func NewShopSystem(catalog *upgrades.Catalog) *ShopSystem {
	return &ShopSystem{catalog: catalog}
}

// SetCatalog swaps the catalog, e.g. after upgrades.yaml was edited.
func (s *ShopSystem) SetCatalog(c *upgrades.Catalog) {
	s.catalog = c
}

func (s *ShopSystem) Catalog() *upgrades.Catalog {
	return s.catalog
}

func (s *ShopSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := sessionOf(w)
	playerEnt, hasPlayer := ecs.First(w, component.PlayerComponent)

	ecs.ForEach(w, component.ShopRequestComponent, func(e ecs.Entity, req *component.ShopRequest) {
		defer ecs.DestroyEntity(w, e)
		if sess == nil || !hasPlayer {
			return
		}
		pc, ok := ecs.Get(w, playerEnt, component.PlayerComponent)
		if !ok || pc.Actor == nil {
			return
		}

		item, err := s.catalog.Find(req.Upgrade)
		if err != nil {
			log.Printf("shop: %v", err)
			return
		}
		if !pc.Actor.BuyUpgrade(item.Upgrade()) {
			log.Printf("shop: cannot buy %s (money %d, cost %d)", item.Name, pc.Actor.Money, item.Cost)
			return
		}

		tuning, err := upgrades.ApplyItem(item, sess.Tuning)
		switch {
		case errors.Is(err, upgrades.ErrNoEffect):
		case err != nil:
			log.Printf("shop: %s effect: %v", item.Name, err)
		default:
			sess.Tuning = tuning
		}

		w.Events().Push(ecs.Event{
			Kind:   ecs.EventPurchased,
			Entity: playerEnt,
			X:      pc.Actor.Pos.X,
			Y:      pc.Actor.Pos.Y - 16,
			Amount: item.Cost,
			Name:   item.Title,
		})
	})
}
