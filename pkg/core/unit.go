package core

import (
	"strings"

	"github.com/google/uuid"
)

// UnitKind identifies the concrete entity variant.
type UnitKind uint8

const (
	KindMech UnitKind = iota
	KindLandAirMech
	KindTank
	KindAero
	KindJumpship
	KindBattleArmor
	KindProtomech
	KindInfantry
	KindEjectedCrew
	KindMechWarrior
)

var unitKindNames = map[UnitKind]string{
	KindMech:        "Mech",
	KindLandAirMech: "LandAirMech",
	KindTank:        "Tank",
	KindAero:        "Aero",
	KindJumpship:    "Jumpship",
	KindBattleArmor: "BattleArmor",
	KindProtomech:   "ProtoMech",
	KindInfantry:    "Infantry",
	KindEjectedCrew: "EjectedCrew",
	KindMechWarrior: "MechWarrior",
}

func (k UnitKind) String() string {
	if n, ok := unitKindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// ParseUnitKind resolves a kind name, case-insensitively.
func ParseUnitKind(s string) (UnitKind, bool) {
	for k, n := range unitKindNames {
		if strings.EqualFold(n, s) {
			return k, true
		}
	}
	return 0, false
}

// Entity is any unit the reader can reconstruct. Variant specific state is
// reached through the capability interfaces in capabilities.go.
type Entity interface {
	Base() *Unit
	Kind() UnitKind
}

// MaxC3iNodes is the size of a C3i network.
const MaxC3iNodes = 6

// Unit is the state shared by every entity variant.
type Unit struct {
	Chassis      string
	Model        string
	MovementMode string
	WalkMP       int

	Locations []*Location
	Equipment []*Mounted
	Crew      *Crew

	Commander bool
	Hidden    bool

	OffBoard          bool
	OffBoardDistance  int
	OffBoardDirection int

	DeployRound   int
	DeployZone    int
	NeverDeployed bool

	// Camo fields are nil when the file gives no (or an empty) value.
	CamoCategory *string
	CamoFileName *string

	ExternalID string
	Quirks     *Options

	C3Master string
	C3UUID   string
	C3iUUIDs [MaxC3iNodes]string
}

// NewUnit returns a unit with file defaults applied: no external ID and
// never deployed.
func NewUnit(chassis, model string) Unit {
	return Unit{
		Chassis:       chassis,
		Model:         model,
		ExternalID:    DefaultExternalID,
		NeverDeployed: true,
		Quirks:        NewOptions(GroupQuirks),
	}
}

// DisplayName returns "chassis model", or the chassis alone.
func (u *Unit) DisplayName() string {
	if u.Model == "" {
		return u.Chassis
	}
	return u.Chassis + " " + u.Model
}

// Location returns the location at index i, if it exists.
func (u *Unit) Location(i int) (*Location, bool) {
	if i < 0 || i >= len(u.Locations) {
		return nil, false
	}
	return u.Locations[i], true
}

// AddLocation appends a location and returns its index.
func (u *Unit) AddLocation(l *Location) int {
	u.Locations = append(u.Locations, l)
	return len(u.Locations) - 1
}

// Mount installs equipment of type t in location loc, occupying the given
// 0-based critical slots. Slots outside the location are ignored.
func (u *Unit) Mount(t *EquipmentType, loc int, rear bool, slots ...int) *Mounted {
	m := NewMounted(t, loc)
	m.Rear = rear
	u.Equipment = append(u.Equipment, m)
	if l, ok := u.Location(loc); ok {
		for _, s := range slots {
			if s >= 0 && s < len(l.Slots) {
				l.Slots[s] = NewEquipmentSlot(m)
			}
		}
	}
	return m
}

// AmmoInLocation returns the ammo bins in loc in the order they were mounted.
func (u *Unit) AmmoInLocation(loc int) []*Mounted {
	var out []*Mounted
	for _, m := range u.Equipment {
		if m.Location == loc && m.IsAmmo() {
			out = append(out, m)
		}
	}
	return out
}

// RemoveMount removes m from the equipment list and clears every critical
// slot that references it.
func (u *Unit) RemoveMount(m *Mounted) {
	for i, e := range u.Equipment {
		if e == m {
			u.Equipment = append(u.Equipment[:i], u.Equipment[i+1:]...)
			break
		}
	}
	for _, l := range u.Locations {
		for i, s := range l.Slots {
			if s != nil && s.Mount == m {
				l.Slots[i] = nil
			}
		}
	}
}

// DestroyLocation wipes out location loc: every side becomes Destroyed (rear
// only where the location has rear armor) and all slots and equipment in it
// are destroyed.
func (u *Unit) DestroyLocation(loc int) {
	l, ok := u.Location(loc)
	if !ok {
		return
	}
	l.Armor = Destroyed
	l.Internal = Destroyed
	if l.HasRear {
		l.RearArmor = Destroyed
	}
	for _, s := range l.Slots {
		if s != nil {
			s.Destroyed = true
		}
	}
	for _, m := range u.Equipment {
		if m.Location == loc {
			m.Destroyed = true
		}
	}
}

// EnsureC3UUID assigns a fresh C3 UUID if the unit has none.
func (u *Unit) EnsureC3UUID() {
	if u.C3UUID == "" {
		u.C3UUID = uuid.NewString()
	}
}

// AddC3iLink stores id in the next free C3i slot. It returns false when the
// network is full.
func (u *Unit) AddC3iLink(id string) bool {
	for i := range u.C3iUUIDs {
		if u.C3iUUIDs[i] == "" {
			u.C3iUUIDs[i] = id
			return true
		}
	}
	return false
}

// C3iLinks returns the occupied C3i slots in order.
func (u *Unit) C3iLinks() []string {
	var out []string
	for _, id := range u.C3iUUIDs {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
