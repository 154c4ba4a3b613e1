package core

// Reserved chassis names for crews that left their unit. They never come from
// the unit catalog.
const (
	ChassisVehicleCrew = "Vehicle Crew"
	ChassisMechWarrior = "MechWarrior"
)

// EjectedCrew is the crew of a vehicle that abandoned it.
type EjectedCrew struct {
	Unit
}

// MechWarrior is a pilot that ejected from a mech.
type MechWarrior struct {
	Unit
}

func crewLocation() *Location {
	return NewLocation("Crew", "CR", NotApplicable, nil, Points(1), 0)
}

func NewEjectedCrew(model string) *EjectedCrew {
	e := &EjectedCrew{Unit: NewUnit(ChassisVehicleCrew, model)}
	e.AddLocation(crewLocation())
	return e
}

func NewMechWarrior(model string) *MechWarrior {
	e := &MechWarrior{Unit: NewUnit(ChassisMechWarrior, model)}
	e.AddLocation(crewLocation())
	return e
}

func (e *EjectedCrew) Base() *Unit    { return &e.Unit }
func (e *EjectedCrew) Kind() UnitKind { return KindEjectedCrew }
func (e *MechWarrior) Base() *Unit    { return &e.Unit }
func (e *MechWarrior) Kind() UnitKind { return KindMechWarrior }

// IsPlaceholder reports whether e stands for a crew outside its unit.
func IsPlaceholder(e Entity) bool {
	k := e.Kind()
	return k == KindEjectedCrew || k == KindMechWarrior
}

// NewEntity creates an empty entity of the given kind.
func NewEntity(kind UnitKind, chassis, model string) Entity {
	switch kind {
	case KindLandAirMech:
		return NewLandAirMech(chassis, model)
	case KindTank:
		return NewTank(chassis, model)
	case KindAero:
		return NewAero(chassis, model)
	case KindJumpship:
		return NewJumpship(chassis, model)
	case KindBattleArmor:
		return NewBattleArmor(chassis, model)
	case KindProtomech:
		return NewProtomech(chassis, model)
	case KindInfantry:
		return NewInfantry(chassis, model)
	case KindEjectedCrew:
		return NewEjectedCrew(model)
	case KindMechWarrior:
		return NewMechWarrior(model)
	default:
		return NewMech(chassis, model)
	}
}
