package obj

import "sort"

// Upgrade is a purchasable item.
type Upgrade struct {
	Name string
	Cost int
}

// AddMoney credits amount. Callers pass non-negative amounts.
func (p *Player) AddMoney(amount int) {
	p.Money += amount
}

// BuyUpgrade deducts the cost and marks the upgrade owned when the player can
// afford it and does not already own it. It reports whether a purchase was
// made.
func (p *Player) BuyUpgrade(u Upgrade) bool {
	if p.HasUpgrade(u.Name) || p.Money < u.Cost {
		return false
	}
	p.Money -= u.Cost
	if p.upgrades == nil {
		p.upgrades = map[string]struct{}{}
	}
	p.upgrades[u.Name] = struct{}{}
	return true
}

func (p *Player) HasUpgrade(name string) bool {
	_, ok := p.upgrades[name]
	return ok
}

// Upgrades returns the owned upgrade names in sorted order.
func (p *Player) Upgrades() []string {
	names := make([]string, 0, len(p.upgrades))
	for name := range p.upgrades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
