package obj

import (
	"reflect"
	"testing"
)

func TestBuyUpgrade(t *testing.T) {
	cases := []struct {
		name      string
		money     int
		cost      int
		wantBuy   bool
		wantMoney int
	}{
		{"insufficient", 10, 15, false, 10},
		{"exact", 15, 15, true, 0},
		{"surplus", 40, 15, true, 25},
		{"free", 0, 0, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.AddMoney(c.money)
			got := p.BuyUpgrade(Upgrade{Name: "sharp_axe", Cost: c.cost})
			if got != c.wantBuy {
				t.Fatalf("BuyUpgrade = %v, want %v", got, c.wantBuy)
			}
			if p.Money != c.wantMoney {
				t.Fatalf("money = %d, want %d", p.Money, c.wantMoney)
			}
			if p.HasUpgrade("sharp_axe") != c.wantBuy {
				t.Fatalf("owned = %v, want %v", p.HasUpgrade("sharp_axe"), c.wantBuy)
			}
		})
	}
}

func TestBuyOwnedUpgradeDoesNotRecharge(t *testing.T) {
	p := newTestPlayer()
	p.AddMoney(50)
	u := Upgrade{Name: "boots", Cost: 20}
	if !p.BuyUpgrade(u) {
		t.Fatalf("first purchase failed")
	}
	if p.BuyUpgrade(u) {
		t.Fatalf("second purchase of an owned upgrade succeeded")
	}
	if p.Money != 30 {
		t.Fatalf("money = %d, want 30", p.Money)
	}
}

func TestUpgradesSorted(t *testing.T) {
	p := newTestPlayer()
	p.AddMoney(100)
	for _, name := range []string{"gloves", "axe", "boots"} {
		p.BuyUpgrade(Upgrade{Name: name, Cost: 1})
	}
	want := []string{"axe", "boots", "gloves"}
	if got := p.Upgrades(); !reflect.DeepEqual(got, want) {
		t.Fatalf("upgrades = %v, want %v", got, want)
	}
}

func TestMoneyOnlyDropsThroughPurchases(t *testing.T) {
	p := newTestPlayer()
	prev := p.Money
	for i := 0; i < 30; i++ {
		p.BeginCut(TargetTree)
		tick(p, 10+i)
		p.AttemptCut()
		if p.Money < prev {
			t.Fatalf("money decreased from %d to %d without a purchase", prev, p.Money)
		}
		prev = p.Money
	}
}

func TestSnapshot(t *testing.T) {
	p := newTestPlayer()
	p.AddMoney(3)
	p.BeginCut(TargetBoss)
	tick(p, 5)

	s := p.Snapshot()
	if !s.Cutting || s.Target != "boss" || s.Progress != 10 || s.Money != 3 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}
