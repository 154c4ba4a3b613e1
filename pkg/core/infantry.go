package core

import "fmt"

func (k MountKind) String() string {
	if k == MountAntiPersonnel {
		return "anti-personnel mount"
	}
	return "manipulator"
}

// BattleArmor is a battle armor squad. Location 0 is the squad, 1..n the
// troopers.
type BattleArmor struct {
	Unit
	Troopers int
}

func NewBattleArmor(chassis, model string) *BattleArmor {
	return &BattleArmor{Unit: NewUnit(chassis, model)}
}

func (b *BattleArmor) Base() *Unit    { return &b.Unit }
func (b *BattleArmor) Kind() UnitKind { return KindBattleArmor }

func (k MountKind) accepts(t *EquipmentType) bool {
	if k == MountAntiPersonnel {
		return t.AntiPersonnel
	}
	return t.Manipulator
}

// SwapMount replaces the manipulator or anti-personnel weapon mounted at
// position loc with a new mount of type t. The old mount is removed from the
// equipment list and from every critical slot; the new mount takes over those
// slots.
func (b *BattleArmor) SwapMount(kind MountKind, loc int, t *EquipmentType) error {
	if t == nil {
		return fmt.Errorf("no equipment type for %s at position %d", kind, loc)
	}
	if !kind.accepts(t) {
		return fmt.Errorf("%s cannot be used as %s", t.InternalName, kind)
	}

	var old *Mounted
	for _, m := range b.Equipment {
		if m.BAMountLoc == loc && m.Type != nil && kind.accepts(m.Type) {
			old = m
			break
		}
	}

	location := 0
	type slotRef struct{ loc, idx int }
	var freed []slotRef
	if old != nil {
		location = old.Location
		for li, l := range b.Locations {
			for si, s := range l.Slots {
				if s != nil && s.Mount == old {
					freed = append(freed, slotRef{li, si})
				}
			}
		}
		b.RemoveMount(old)
	}

	m := NewMounted(t, location)
	m.BAMountLoc = loc
	b.Equipment = append(b.Equipment, m)
	for _, r := range freed {
		b.Locations[r.loc].Slots[r.idx] = NewEquipmentSlot(m)
	}
	return nil
}

// Protomech is a ProtoMech.
type Protomech struct {
	Unit
}

func NewProtomech(chassis, model string) *Protomech {
	return &Protomech{Unit: NewUnit(chassis, model)}
}

func (p *Protomech) Base() *Unit              { return &p.Unit }
func (p *Protomech) Kind() UnitKind           { return KindProtomech }
func (p *Protomech) UsesPositionalAmmo() bool { return true }

// Infantry is a conventional infantry platoon.
type Infantry struct {
	Unit
	Troopers int
}

func NewInfantry(chassis, model string) *Infantry {
	return &Infantry{Unit: NewUnit(chassis, model)}
}

func (i *Infantry) Base() *Unit    { return &i.Unit }
func (i *Infantry) Kind() UnitKind { return KindInfantry }
