package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec holds the lumberjack's fixed session stats. Rates are per tick.
// Fields left out of the YAML stay nil so an explicit zero can be told apart.
type PlayerSpec struct {
	Name             string   `yaml:"name"`
	Width            *float64 `yaml:"width"`
	Height           *float64 `yaml:"height"`
	StartX           *float64 `yaml:"start_x"`
	MoveSpeed        *float64 `yaml:"move_speed"`
	Gravity          *float64 `yaml:"gravity"`
	JumpForce        *float64 `yaml:"jump_force"`
	CutRate          *float64 `yaml:"cut_rate"`
	SwingStep        *float64 `yaml:"swing_step"`
	SwingLimit       *float64 `yaml:"swing_limit"`
	SweetSpotMin     *float64 `yaml:"sweet_spot_min"`
	SweetSpotMax     *float64 `yaml:"sweet_spot_max"`
	RewardMultiplier *float64 `yaml:"reward_multiplier"`
	StartMoney       *int     `yaml:"start_money"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ForestSpec struct {
	Name         string     `yaml:"name"`
	RegrowFrames int        `yaml:"regrow_frames"`
	Reach        float64    `yaml:"reach"`
	BossEvery    int        `yaml:"boss_every"`
	Ground       *YAMLColor `yaml:"ground"`
	Sky          *YAMLColor `yaml:"sky"`
	Trees        []TreeSpec `yaml:"trees"`
	Boss         BossSpec   `yaml:"boss"`
}

type TreeSpec struct {
	X      float64    `yaml:"x"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Leaves *YAMLColor `yaml:"leaves"`
}

type BossSpec struct {
	Name   string     `yaml:"name"`
	X      float64    `yaml:"x"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

func LoadForestSpec(filename string) (*ForestSpec, error) {
	if filename == "" {
		filename = "forest.yaml"
	}
	spec, err := LoadSpec[ForestSpec](filename)
	if err != nil {
		return nil, err
	}
	if len(spec.Trees) == 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, ErrEmptyForest)
	}
	return &spec, nil
}

type UpgradeSpec struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`
	Script      string `yaml:"script"`
}

type UpgradeCatalogSpec struct {
	Upgrades []UpgradeSpec `yaml:"upgrades"`
}

func LoadUpgradeCatalogSpec() (*UpgradeCatalogSpec, error) {
	spec, err := LoadSpec[UpgradeCatalogSpec]("upgrades.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var channels [4]uint8
	channels[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		channels[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	return nil
}

// Or returns the parsed color, or fallback when the field was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
