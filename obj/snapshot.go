package obj

// Snapshot is a read-only view of a player used for debug export.
type Snapshot struct {
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	VelocityY   float64  `yaml:"velocity_y"`
	FacingRight bool     `yaml:"facing_right"`
	Airborne    bool     `yaml:"airborne"`
	Cutting     bool     `yaml:"cutting"`
	Target      string   `yaml:"target,omitempty"`
	Progress    float64  `yaml:"progress"`
	Money       int      `yaml:"money"`
	TreesCut    int      `yaml:"trees_cut"`
	Upgrades    []string `yaml:"upgrades"`
}

func (p *Player) Snapshot() Snapshot {
	s := Snapshot{
		X:           p.Pos.X,
		Y:           p.Pos.Y,
		VelocityY:   p.VelocityY,
		FacingRight: p.FacingRight,
		Airborne:    p.Airborne,
		Money:       p.Money,
		TreesCut:    p.TreesCut,
		Upgrades:    p.Upgrades(),
	}
	if cut, ok := p.Cutting(); ok {
		s.Cutting = true
		s.Target = cut.Target.String()
		s.Progress = cut.Progress
	}
	return s
}
