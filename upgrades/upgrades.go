// Package upgrades holds the shop catalog and applies upgrade effect scripts
// to the session tuning.
package upgrades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/timberjack/obj"
	"github.com/milk9111/timberjack/prefabs"
)

var (
	ErrUnknownUpgrade = errors.New("upgrades: unknown upgrade")
	ErrNoEffect       = errors.New("upgrades: upgrade has no effect script")
)

const scriptTimeout = 50 * time.Millisecond

// Tuning is the host-side state upgrade effects may change.
type Tuning struct {
	SkillLevel   float64
	Reach        float64
	RegrowFrames int
}

// Item is one entry of the shop.
type Item struct {
	Name        string
	Title       string
	Cost        int
	Description string
	Script      string
}

func (i Item) Upgrade() obj.Upgrade {
	return obj.Upgrade{Name: i.Name, Cost: i.Cost}
}

type Catalog struct {
	Items []Item
}

func LoadCatalog() (*Catalog, error) {
	spec, err := prefabs.LoadUpgradeCatalogSpec()
	if err != nil {
		return nil, err
	}
	c := &Catalog{Items: make([]Item, 0, len(spec.Upgrades))}
	for _, u := range spec.Upgrades {
		c.Items = append(c.Items, Item{
			Name:        u.Name,
			Title:       u.Title,
			Cost:        u.Cost,
			Description: u.Description,
			Script:      u.Script,
		})
	}
	return c, nil
}

func (c *Catalog) Find(name string) (Item, error) {
	if c != nil {
		for _, it := range c.Items {
			if it.Name == name {
				return it, nil
			}
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
}

// ApplyItem loads the item's effect script and runs it against t.
func ApplyItem(it Item, t Tuning) (Tuning, error) {
	if it.Script == "" {
		return t, ErrNoEffect
	}
	src, err := prefabs.LoadScript(it.Script)
	if err != nil {
		return t, fmt.Errorf("upgrades: load script %s: %w", it.Script, err)
	}
	return Apply(src, t)
}

// Apply runs an effect script. The script sees skill_level, reach and
// regrow_frames as globals and may reassign them.
func Apply(src []byte, t Tuning) (Tuning, error) {
	script := tengo.NewScript(src)
	_ = script.Add("skill_level", t.SkillLevel)
	_ = script.Add("reach", t.Reach)
	_ = script.Add("regrow_frames", t.RegrowFrames)

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return t, fmt.Errorf("upgrades: run effect: %w", err)
	}

	out := Tuning{
		SkillLevel:   compiled.Get("skill_level").Float(),
		Reach:        compiled.Get("reach").Float(),
		RegrowFrames: compiled.Get("regrow_frames").Int(),
	}
	if out.SkillLevel < 0 {
		out.SkillLevel = 0
	}
	if out.Reach < 0 {
		out.Reach = 0
	}
	if out.RegrowFrames < 1 {
		out.RegrowFrames = 1
	}
	return out, nil
}
