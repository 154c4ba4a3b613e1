package core

import (
	"sort"
	"strings"
	"sync"
)

// EquipmentKind classifies an equipment type.
type EquipmentKind uint8

const (
	KindWeapon EquipmentKind = iota
	KindAmmo
	KindMisc
	KindBomb
)

func (k EquipmentKind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindAmmo:
		return "ammo"
	case KindMisc:
		return "misc"
	case KindBomb:
		return "bomb"
	}
	return "unknown"
}

// EquipmentType describes a kind of mountable equipment.
type EquipmentType struct {
	InternalName string
	Name         string
	Kind         EquipmentKind
	// AmmoFamily groups munition variants that may replace each other in a
	// bin. On weapons it names the family the weapon fires.
	AmmoFamily    string
	Munition      string
	ShotsPerTon   int
	OneShot       bool
	Manipulator   bool
	AntiPersonnel bool
}

// IsAmmo reports whether the type is ammunition.
func (t *EquipmentType) IsAmmo() bool { return t != nil && t.Kind == KindAmmo }

// SameAmmoFamily reports whether t and other are interchangeable munitions.
func (t *EquipmentType) SameAmmoFamily(other *EquipmentType) bool {
	if t == nil || other == nil || t.AmmoFamily == "" {
		return false
	}
	return t.AmmoFamily == other.AmmoFamily
}

var (
	equipmentMu  sync.RWMutex
	equipmentIdx = map[string]*EquipmentType{}
)

// RegisterEquipment adds t to the registry under its internal and display
// names. Lookups are case-insensitive.
func RegisterEquipment(t *EquipmentType) {
	equipmentMu.Lock()
	defer equipmentMu.Unlock()
	equipmentIdx[strings.ToLower(t.InternalName)] = t
	if t.Name != "" {
		if _, exists := equipmentIdx[strings.ToLower(t.Name)]; !exists {
			equipmentIdx[strings.ToLower(t.Name)] = t
		}
	}
}

// EquipmentByName resolves an internal or display name, or returns nil.
func EquipmentByName(name string) *EquipmentType {
	equipmentMu.RLock()
	defer equipmentMu.RUnlock()
	return equipmentIdx[strings.ToLower(strings.TrimSpace(name))]
}

// EquipmentTypes returns every registered type ordered by internal name.
func EquipmentTypes() []*EquipmentType {
	equipmentMu.RLock()
	defer equipmentMu.RUnlock()
	seen := make(map[*EquipmentType]bool, len(equipmentIdx))
	out := make([]*EquipmentType, 0, len(equipmentIdx))
	for _, t := range equipmentIdx {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalName < out[j].InternalName })
	return out
}
