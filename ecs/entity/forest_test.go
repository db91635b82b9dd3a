package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/obj"
	"github.com/milk9111/timberjack/prefabs"
)

func TestNewForest(t *testing.T) {
	f, err := NewForest(Options{Width: 960, Height: 540, StartMoney: 50})
	if err != nil {
		t.Fatalf("new forest: %v", err)
	}

	if f.Player.Money != 50 {
		t.Fatalf("money = %d, want start money override 50", f.Player.Money)
	}
	if f.Player.Pos.Y != 540-f.Player.Stats.Height {
		t.Fatalf("player should start on the ground, y = %v", f.Player.Pos.Y)
	}
	if f.Boss.Name == "" || f.Boss.Color == nil {
		t.Fatalf("boss template incomplete: %+v", f.Boss)
	}
	if len(f.Catalog.Items) == 0 {
		t.Fatalf("empty catalog")
	}

	sessEnt, ok := ecs.First(f.World, component.SessionComponent)
	if !ok {
		t.Fatalf("missing session")
	}
	sess, _ := ecs.Get(f.World, sessEnt, component.SessionComponent)
	if sess.Reach <= 0 || sess.RegrowFrames <= 0 || sess.BossEvery <= 0 {
		t.Fatalf("session tuning not taken from the forest: %+v", sess)
	}

	trees := 0
	ecs.ForEach2(f.World, component.TreeComponent, component.TransformComponent, func(_ ecs.Entity, tree *component.Tree, tr *component.Transform) {
		trees++
		if tr.Y+tree.Height != 540 {
			t.Fatalf("tree base at %v, want ground 540", tr.Y+tree.Height)
		}
		if tree.Leaves == nil {
			t.Fatalf("tree without leaf color")
		}
	})
	if trees == 0 {
		t.Fatalf("forest has no trees")
	}

	if ecs.Count(f.World, component.InputComponent) != 1 {
		t.Fatalf("player should carry an input component")
	}
}

func TestNewForestMissingPrefab(t *testing.T) {
	if _, err := NewForest(Options{Forest: "nowhere.yaml", StartMoney: NoStartMoney, Width: 960, Height: 540}); err == nil {
		t.Fatalf("expected error for missing forest prefab")
	}
}

func TestStatsFromSpec(t *testing.T) {
	cases := []struct {
		name string
		spec *prefabs.PlayerSpec
		want func(obj.Stats) bool
	}{
		{"nil_uses_defaults", nil, func(s obj.Stats) bool { return s == obj.DefaultStats() }},
		{"unset_fields_keep_defaults", &prefabs.PlayerSpec{MoveSpeed: f64(9)}, func(s obj.Stats) bool {
			return s.MoveSpeed == 9 && s.Gravity == 0.5 && s.CutRate == 2
		}},
		{"explicit_zero_wins", &prefabs.PlayerSpec{StartX: f64(0), SweetSpotMin: f64(0)}, func(s obj.Stats) bool {
			return s.StartX == 0 && s.SweetSpotMin == 0 && s.SweetSpotMax == 65
		}},
		{"start_money", &prefabs.PlayerSpec{StartMoney: intp(7)}, func(s obj.Stats) bool { return s.StartMoney == 7 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StatsFromSpec(c.spec); !c.want(got) {
				t.Fatalf("unexpected stats %+v", got)
			}
		})
	}
}

func f64(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func withPrefabDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })
	return dir
}

func TestNewForestStartMoney(t *testing.T) {
	withPrefabDir(t, map[string]string{"player.yaml": "start_money: 30\n"})

	cases := []struct {
		name     string
		override int
		want     int
	}{
		{"unset_keeps_prefab", NoStartMoney, 30},
		{"zero_overrides", 0, 0},
		{"positive_overrides", 12, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := NewForest(Options{StartMoney: c.override, Width: 960, Height: 540})
			if err != nil {
				t.Fatalf("new forest: %v", err)
			}
			if f.Player.Money != c.want {
				t.Fatalf("money = %d, want %d", f.Player.Money, c.want)
			}
		})
	}
}

func TestReloadPlayerStats(t *testing.T) {
	dir := withPrefabDir(t, map[string]string{"player.yaml": "move_speed: 5\n"})
	p := obj.NewPlayer(StatsFromSpec(&prefabs.PlayerSpec{MoveSpeed: f64(5)}), 540)
	p.AddMoney(25)
	p.Pos.X = 300

	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("move_speed: 8\nsweet_spot_min: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ReloadPlayerStats(p); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.Stats.MoveSpeed != 8 || p.Stats.SweetSpotMin != 0 {
		t.Fatalf("stats not retuned: %+v", p.Stats)
	}
	if p.Money != 25 || p.Pos.X != 300 {
		t.Fatalf("reload reset state: money %d x %v", p.Money, p.Pos.X)
	}
}

func TestReloadPlayerStatsBadYAML(t *testing.T) {
	withPrefabDir(t, map[string]string{"player.yaml": "move_speed: [\n"})
	p := obj.NewPlayer(obj.DefaultStats(), 540)
	if err := ReloadPlayerStats(p); err == nil {
		t.Fatalf("expected error for malformed player.yaml")
	}
	if p.Stats != obj.DefaultStats() {
		t.Fatalf("failed reload changed stats: %+v", p.Stats)
	}
}
