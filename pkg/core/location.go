package core

// SlotKind tells a system slot from an equipment slot.
type SlotKind uint8

const (
	SlotSystem SlotKind = iota
	SlotEquipment
)

// CriticalSlot is one critical position inside a location.
type CriticalSlot struct {
	Kind       SlotKind
	System     string
	Mount      *Mounted
	Hit        bool
	Destroyed  bool
	Repairable bool
	Breached   bool
}

// NewSystemSlot returns a slot holding the named system (engine, gyro, ...).
func NewSystemSlot(system string) *CriticalSlot {
	return &CriticalSlot{Kind: SlotSystem, System: system, Repairable: true}
}

// NewEquipmentSlot returns a slot holding part of mount m.
func NewEquipmentSlot(m *Mounted) *CriticalSlot {
	return &CriticalSlot{Kind: SlotEquipment, Mount: m, Repairable: true}
}

// Name returns the system name or the mounted equipment's internal name.
func (s *CriticalSlot) Name() string {
	if s.Kind == SlotEquipment && s.Mount != nil {
		return s.Mount.Name()
	}
	return s.System
}

// Damaged reports whether the slot has taken any damage.
func (s *CriticalSlot) Damaged() bool {
	return s.Hit || s.Destroyed || s.Breached
}

// Location is one hit location of a unit.
type Location struct {
	Name string
	Abbr string

	Armor     ArmorValue
	RearArmor ArmorValue
	Internal  ArmorValue

	OArmor     ArmorValue
	ORearArmor ArmorValue
	OInternal  ArmorValue

	HasRear  bool
	Breached bool
	Slots    []*CriticalSlot
}

// NewLocation creates a location with the given original values. A nil rear
// value means the location has no rear armor.
func NewLocation(name, abbr string, armor ArmorValue, rear *ArmorValue, internal ArmorValue, slots int) *Location {
	l := &Location{
		Name:       name,
		Abbr:       abbr,
		Armor:      armor,
		OArmor:     armor,
		RearArmor:  NotApplicable,
		ORearArmor: NotApplicable,
		Internal:   internal,
		OInternal:  internal,
		Slots:      make([]*CriticalSlot, slots),
	}
	if rear != nil {
		l.HasRear = true
		l.RearArmor = *rear
		l.ORearArmor = *rear
	}
	return l
}

// IsDestroyed reports whether the location has been wiped out.
func (l *Location) IsDestroyed() bool {
	return l.Internal.IsDestroyed()
}

// ArmorChanged reports whether any side differs from its original value.
func (l *Location) ArmorChanged() bool {
	return l.Armor != l.OArmor || l.RearArmor != l.ORearArmor || l.Internal != l.OInternal
}

// Slot returns the slot at a 0-based index, or nil.
func (l *Location) Slot(i int) *CriticalSlot {
	if i < 0 || i >= len(l.Slots) {
		return nil
	}
	return l.Slots[i]
}
