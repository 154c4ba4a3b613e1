package core

const (
	// MaxSkill is the worst (highest) gunnery or piloting value.
	MaxSkill = 8
	// MaxHits is the number of hits a crew survives.
	MaxHits = 5
	// DeadHits is the hit count of a dead crew.
	DeadHits = 6
	// DefaultExternalID marks an entity or crew not tied to an outside roster.
	DefaultExternalID = "-1"
	// UnnamedCrew is used when a file gives no pilot name.
	UnnamedCrew = "Unnamed"
)

// Crew is the pilot or crew of a unit.
type Crew struct {
	Name     string
	Nickname string

	Gunnery   int
	GunneryL  int
	GunneryM  int
	GunneryB  int
	Piloting  int
	Artillery int

	Toughness    int
	InitBonus    int
	CommandBonus int

	Hits int
	Dead bool

	PortraitCategory string
	PortraitFile     string

	Ejected    bool
	ExternalID string
	Options    *Options
}

// NewCrew returns a crew whose per-range and artillery skills follow gunnery.
func NewCrew(name string, gunnery, piloting int) *Crew {
	return &Crew{
		Name:       name,
		Gunnery:    gunnery,
		GunneryL:   gunnery,
		GunneryM:   gunnery,
		GunneryB:   gunnery,
		Piloting:   piloting,
		Artillery:  gunnery,
		ExternalID: DefaultExternalID,
		Options:    NewCrewOptions(),
	}
}

// ValidSkill reports whether v is a legal gunnery or piloting value.
func ValidSkill(v int) bool {
	return v >= 0 && v <= MaxSkill
}

// IsDead reports whether the crew is dead, either flagged or by hits.
func (c *Crew) IsDead() bool {
	return c.Dead || c.Hits > MaxHits
}

// Kill marks the crew dead.
func (c *Crew) Kill() {
	c.Dead = true
	c.Hits = DeadHits
}
