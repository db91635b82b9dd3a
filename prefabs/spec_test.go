package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadPlayerSpecMatchesDefaults(t *testing.T) {
	withDir(t, t.TempDir())
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	cases := []struct {
		name string
		got  *float64
		want float64
	}{
		{"width", spec.Width, 32},
		{"height", spec.Height, 48},
		{"start_x", spec.StartX, 100},
		{"gravity", spec.Gravity, 0.5},
		{"jump_force", spec.JumpForce, -12},
		{"move_speed", spec.MoveSpeed, 5},
		{"cut_rate", spec.CutRate, 2},
		{"sweet_spot_min", spec.SweetSpotMin, 35},
		{"sweet_spot_max", spec.SweetSpotMax, 65},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got == nil || *c.got != c.want {
				t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
			}
		})
	}
}

func TestLoadPlayerSpecKeepsExplicitZero(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("start_x: 0\nstart_money: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.StartX == nil || *spec.StartX != 0 {
		t.Fatalf("start_x = %v, want explicit 0", spec.StartX)
	}
	if spec.StartMoney == nil || *spec.StartMoney != 0 {
		t.Fatalf("start_money = %v, want explicit 0", spec.StartMoney)
	}
	if spec.MoveSpeed != nil {
		t.Fatalf("move_speed = %v, want unset", *spec.MoveSpeed)
	}
}

func TestLoadForestSpec(t *testing.T) {
	withDir(t, t.TempDir())
	spec, err := LoadForestSpec("")
	if err != nil {
		t.Fatalf("load forest: %v", err)
	}
	if len(spec.Trees) == 0 || spec.BossEvery <= 0 || spec.RegrowFrames <= 0 {
		t.Fatalf("unexpected forest: %+v", spec)
	}
	if spec.Boss.Name == "" {
		t.Fatalf("boss has no name")
	}
}

func TestLoadForestSpecRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte("name: bare\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadForestSpec("empty.yaml"); !errors.Is(err, ErrEmptyForest) {
		t.Fatalf("err = %v, want ErrEmptyForest", err)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("move_speed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MoveSpeed == nil || *spec.MoveSpeed != 9 {
		t.Fatalf("move speed = %v, want disk value 9", spec.MoveSpeed)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	withDir(t, t.TempDir())
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestUpgradeCatalogScriptsExist(t *testing.T) {
	withDir(t, t.TempDir())
	spec, err := LoadUpgradeCatalogSpec()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(spec.Upgrades) == 0 {
		t.Fatalf("empty catalog")
	}
	for _, u := range spec.Upgrades {
		if _, err := LoadScript(u.Script); err != nil {
			t.Fatalf("upgrade %s: script %q: %v", u.Name, u.Script, err)
		}
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"sharp_axe":                       "scripts/sharp_axe.tengo",
		"sharp_axe.tengo":                 "scripts/sharp_axe.tengo",
		"scripts/sharp_axe.tengo":         "scripts/sharp_axe.tengo",
		"prefabs/scripts/sharp_axe.tengo": "scripts/sharp_axe.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#228B22"`, color.NRGBA{R: 0x22, G: 0x8B, B: 0x22, A: 0xFF}, false},
		{"rgba", `"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %v, want %v", got.Color, c.want)
			}
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var missing *YAMLColor
	if missing.Or(color.White) != color.White {
		t.Fatalf("nil color should use fallback")
	}
}
