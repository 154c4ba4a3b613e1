package core

// MaxTroopers is the largest battle armor squad a mount can be tracked for.
const MaxTroopers = 6

// Mounted is one piece of equipment installed on a unit.
type Mounted struct {
	Type     *EquipmentType
	Location int
	Rear     bool

	Destroyed  bool
	Hit        bool
	Repairable bool
	Breached   bool
	Missing    bool

	ShotsLeft     int
	OriginalShots int

	// OriginalType is the type the template mounted, before any munition swap.
	OriginalType *EquipmentType

	Quirks    *Options
	RapidFire bool
	// MissingForTrooper marks the mount as lost for individual troopers of a
	// battle armor squad.
	MissingForTrooper []bool
	// BAMountLoc is the battle armor mount position code, -1 when unused.
	BAMountLoc int
	// Linked is the ammunition a one-shot launcher carries.
	Linked *Mounted
}

// NewMounted creates an undamaged mount of t in location loc. Ammo starts full.
func NewMounted(t *EquipmentType, loc int) *Mounted {
	m := &Mounted{
		Type:         t,
		OriginalType: t,
		Location:     loc,
		Repairable:   true,
		Quirks:       NewOptions(GroupWeaponQuirks),
		BAMountLoc:   -1,
	}
	if t != nil && t.Kind == KindAmmo {
		m.ShotsLeft = t.ShotsPerTon
		m.OriginalShots = t.ShotsPerTon
	}
	if t != nil && t.OneShot {
		if at := oneShotAmmo(t); at != nil {
			m.Linked = &Mounted{Type: at, OriginalType: at, Location: loc, Repairable: true, ShotsLeft: 1, OriginalShots: 1, Quirks: NewOptions(GroupWeaponQuirks), BAMountLoc: -1}
		}
	}
	return m
}

// oneShotAmmo finds the standard munition of the family a one-shot launcher fires.
func oneShotAmmo(t *EquipmentType) *EquipmentType {
	for _, at := range EquipmentTypes() {
		if at.Kind == KindAmmo && at.AmmoFamily == t.AmmoFamily && at.Munition == "Standard" {
			return at
		}
	}
	return nil
}

// Name returns the internal name of the mounted type.
func (m *Mounted) Name() string {
	if m.Type == nil {
		return ""
	}
	return m.Type.InternalName
}

// IsAmmo reports whether the mount is an ammunition bin.
func (m *Mounted) IsAmmo() bool { return m.Type.IsAmmo() }

// ChangeAmmoType swaps the munition in an ammo bin. Only munitions of the
// same family are accepted.
func (m *Mounted) ChangeAmmoType(t *EquipmentType) bool {
	if !m.IsAmmo() || !t.IsAmmo() || !m.Type.SameAmmoFamily(t) {
		return false
	}
	m.Type = t
	return true
}

// Damaged reports whether the mount differs from its undamaged state.
func (m *Mounted) Damaged() bool {
	return m.Destroyed || m.Hit || m.Breached || m.Missing
}

// AmmoChanged reports whether the bin or linked ammo differs from its template.
func (m *Mounted) AmmoChanged() bool {
	if m.IsAmmo() {
		return m.ShotsLeft != m.OriginalShots || m.Type != m.OriginalType
	}
	if m.Linked != nil {
		return m.Linked.AmmoChanged()
	}
	return false
}
