package core

// AeroSystems is the state shared by aerospace units.
type AeroSystems struct {
	Movement FlightState

	SI         int
	OSI        int
	HeatSinks  int
	OHeatSinks int
	Fuel       int
	OFuel      int

	Crits AeroCrits
}

func (s *AeroSystems) Flight() *FlightState  { return &s.Movement }
func (s *AeroSystems) SetSI(si int)          { s.SI = si }
func (s *AeroSystems) SetHeatSinks(n int)    { s.HeatSinks = n }
func (s *AeroSystems) SetFuel(points int)    { s.Fuel = points }
func (s *AeroSystems) AeroCrits() *AeroCrits { return &s.Crits }

// Aero is an aerospace fighter or small craft.
type Aero struct {
	Unit
	AeroSystems
	Ordnance BombLoad
}

func NewAero(chassis, model string) *Aero {
	return &Aero{Unit: NewUnit(chassis, model), Ordnance: NewBombLoad()}
}

func (a *Aero) Base() *Unit         { return &a.Unit }
func (a *Aero) Kind() UnitKind      { return KindAero }
func (a *Aero) Bombs() BombLoad     { return a.Ordnance }
func (a *Aero) SetBombs(b BombLoad) { a.Ordnance = b }

// Jumpship is a large craft with a Kearny-Fuchida drive. It has no bomb bays.
type Jumpship struct {
	Unit
	AeroSystems

	KFIntegrity    int
	OKFIntegrity   int
	SailIntegrity  int
	OSailIntegrity int
}

func NewJumpship(chassis, model string) *Jumpship {
	return &Jumpship{Unit: NewUnit(chassis, model)}
}

func (j *Jumpship) Base() *Unit            { return &j.Unit }
func (j *Jumpship) Kind() UnitKind         { return KindJumpship }
func (j *Jumpship) SetKFIntegrity(n int)   { j.KFIntegrity = n }
func (j *Jumpship) SetSailIntegrity(n int) { j.SailIntegrity = n }
