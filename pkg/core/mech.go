package core

// Mech is a BattleMech.
type Mech struct {
	Unit
	Eject EjectionSettings
}

// NewMech returns a mech with the default ejection preferences.
func NewMech(chassis, model string) *Mech {
	return &Mech{
		Unit: NewUnit(chassis, model),
		Eject: EjectionSettings{
			Auto:            true,
			OnAmmoExplosion: true,
			OnEngineHits:    true,
		},
	}
}

func (m *Mech) Base() *Unit                 { return &m.Unit }
func (m *Mech) Kind() UnitKind              { return KindMech }
func (m *Mech) Ejection() *EjectionSettings { return &m.Eject }

// LandAirMech is a mech able to convert to fighter mode.
type LandAirMech struct {
	Mech
	Movement FlightState
	Ordnance BombLoad
}

func NewLandAirMech(chassis, model string) *LandAirMech {
	return &LandAirMech{Mech: *NewMech(chassis, model), Ordnance: NewBombLoad()}
}

func (m *LandAirMech) Kind() UnitKind       { return KindLandAirMech }
func (m *LandAirMech) Flight() *FlightState { return &m.Movement }
func (m *LandAirMech) Bombs() BombLoad      { return m.Ordnance }
func (m *LandAirMech) SetBombs(b BombLoad)  { m.Ordnance = b }
