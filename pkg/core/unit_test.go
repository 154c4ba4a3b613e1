package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMech() *Mech {
	m := NewMech("Atlas", "AS7-D")
	rear := Points(10)
	m.AddLocation(NewLocation("Head", "HD", Points(9), nil, Points(3), 6))
	m.AddLocation(NewLocation("Center Torso", "CT", Points(47), &rear, Points(31), 12))
	m.Locations[0].Slots[0] = NewSystemSlot("Life Support")
	m.Mount(EquipmentByName("ISMediumLaser"), 0, false, 3)
	m.Mount(EquipmentByName("ISAC20 Ammo"), 1, false, 10)
	m.Mount(EquipmentByName("ISAC20 Ammo"), 1, false, 11)
	return m
}

func TestNewUnit_Defaults(t *testing.T) {
	u := NewUnit("Locust", "LCT-1V")
	assert.Equal(t, DefaultExternalID, u.ExternalID)
	assert.True(t, u.NeverDeployed)
	assert.Nil(t, u.CamoCategory)
	assert.Equal(t, "Locust LCT-1V", u.DisplayName())

	u.Model = ""
	assert.Equal(t, "Locust", u.DisplayName())
}

func TestUnit_Mount(t *testing.T) {
	m := newTestMech()
	require.Len(t, m.Equipment, 3)

	slot := m.Locations[0].Slot(3)
	require.NotNil(t, slot)
	assert.Equal(t, SlotEquipment, slot.Kind)
	assert.Equal(t, "ISMediumLaser", slot.Name())
	assert.Equal(t, "Life Support", m.Locations[0].Slot(0).Name())
	assert.Nil(t, m.Locations[0].Slot(42))

	ammo := m.AmmoInLocation(1)
	require.Len(t, ammo, 2)
	assert.Equal(t, 5, ammo[0].ShotsLeft)
	assert.Same(t, m.Equipment[1], ammo[0])
	assert.Same(t, m.Equipment[2], ammo[1])
}

func TestUnit_DestroyLocation(t *testing.T) {
	m := newTestMech()
	m.DestroyLocation(1)

	ct := m.Locations[1]
	assert.True(t, ct.IsDestroyed())
	assert.Equal(t, Destroyed, ct.Armor)
	assert.Equal(t, Destroyed, ct.RearArmor)
	assert.True(t, ct.Slots[10].Destroyed)
	assert.True(t, m.Equipment[1].Destroyed)
	assert.False(t, m.Equipment[0].Destroyed)

	// locations without rear armor keep N/A
	m.DestroyLocation(0)
	assert.Equal(t, NotApplicable, m.Locations[0].RearArmor)

	// out of range is ignored
	m.DestroyLocation(7)
}

func TestUnit_RemoveMount(t *testing.T) {
	m := newTestMech()
	laser := m.Equipment[0]
	m.RemoveMount(laser)

	assert.Len(t, m.Equipment, 2)
	assert.Nil(t, m.Locations[0].Slots[3])
	assert.NotNil(t, m.Locations[0].Slots[0])
}

func TestUnit_C3i(t *testing.T) {
	u := NewUnit("Raven", "RVN-3L")
	for i := 0; i < MaxC3iNodes; i++ {
		assert.True(t, u.AddC3iLink("node"))
	}
	assert.False(t, u.AddC3iLink("overflow"))
	assert.Len(t, u.C3iLinks(), MaxC3iNodes)

	u.EnsureC3UUID()
	id := u.C3UUID
	assert.NotEmpty(t, id)
	u.EnsureC3UUID()
	assert.Equal(t, id, u.C3UUID)
}

func TestMounted_ChangeAmmoType(t *testing.T) {
	bin := NewMounted(EquipmentByName("ISSRM6 Ammo"), 0)
	assert.False(t, bin.AmmoChanged())

	assert.True(t, bin.ChangeAmmoType(EquipmentByName("ISSRM6 Inferno Ammo")))
	assert.Equal(t, "Inferno", bin.Type.Munition)
	assert.True(t, bin.AmmoChanged())

	assert.False(t, bin.ChangeAmmoType(EquipmentByName("ISLRM10 Ammo")))
	assert.False(t, NewMounted(EquipmentByName("ISMediumLaser"), 0).ChangeAmmoType(EquipmentByName("ISSRM6 Ammo")))
}

func TestMounted_OneShotLinkedAmmo(t *testing.T) {
	m := NewMounted(EquipmentByName("ISSRM4 (OS)"), 2)
	require.NotNil(t, m.Linked)
	assert.Equal(t, "ISSRM4 Ammo", m.Linked.Name())
	assert.Equal(t, 1, m.Linked.ShotsLeft)
}

func TestTank_ApplyDamage(t *testing.T) {
	tank := NewTank("Scorpion", "Light Tank")
	tank.Immobilize()
	assert.False(t, tank.Immobilized)
	tank.ApplyDamage()
	assert.True(t, tank.Immobilized)
	assert.False(t, tank.EngineHitTaken)

	tank = NewTank("Scorpion", "Light Tank")
	tank.EngineHit()
	tank.ApplyDamage()
	assert.True(t, tank.EngineHitTaken)
	assert.True(t, tank.Immobilized)
}

func TestTank_LockTurret(t *testing.T) {
	tank := NewTank("Manticore", "Heavy Tank")
	assert.False(t, tank.LockTurret(false, 2))

	tank.Turrets = 1
	assert.True(t, tank.LockTurret(false, 2))
	assert.Equal(t, 2, tank.SecondaryFacing)
	assert.False(t, tank.LockTurret(true, 3))
}

func TestBattleArmor_SwapMount(t *testing.T) {
	ba := NewBattleArmor("Elemental", "Standard")
	ba.AddLocation(NewLocation("Squad", "SQ", NotApplicable, nil, NotApplicable, 0))
	ba.AddLocation(NewLocation("Trooper 1", "T1", Points(10), nil, Points(1), 4))
	claw := ba.Mount(EquipmentByName("BABattleClaw"), 1, false, 2)
	claw.BAMountLoc = 1

	require.NoError(t, ba.SwapMount(MountManipulator, 1, EquipmentByName("BAVibroClaw")))
	require.Len(t, ba.Equipment, 1)
	assert.Equal(t, "BAVibroClaw", ba.Equipment[0].Name())
	assert.Equal(t, 1, ba.Equipment[0].BAMountLoc)
	assert.Same(t, ba.Equipment[0], ba.Locations[1].Slots[2].Mount)

	err := ba.SwapMount(MountManipulator, 1, EquipmentByName("ISMediumLaser"))
	assert.Error(t, err)
	assert.Error(t, ba.SwapMount(MountAntiPersonnel, 2, nil))

	require.NoError(t, ba.SwapMount(MountAntiPersonnel, 2, EquipmentByName("ISBAAPGaussRifle")))
	assert.Len(t, ba.Equipment, 2)
}

func TestNewEntity(t *testing.T) {
	tests := []struct {
		kind UnitKind
	}{
		{KindMech}, {KindLandAirMech}, {KindTank}, {KindAero}, {KindJumpship},
		{KindBattleArmor}, {KindProtomech}, {KindInfantry}, {KindEjectedCrew}, {KindMechWarrior},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := NewEntity(tt.kind, "X", "Y")
			assert.Equal(t, tt.kind, e.Kind())
			assert.NotNil(t, e.Base())
			parsed, ok := ParseUnitKind(tt.kind.String())
			assert.True(t, ok)
			assert.Equal(t, tt.kind, parsed)
		})
	}
}

func TestCapabilities(t *testing.T) {
	var e Entity = NewJumpship("Invader", "")
	_, bombs := e.(BombBays)
	_, kf := e.(KFDrive)
	_, si := e.(StructuralIntegrity)
	assert.False(t, bombs)
	assert.True(t, kf)
	assert.True(t, si)

	e = NewLandAirMech("Phoenix Hawk LAM", "PHX-HK2")
	_, bombs = e.(BombBays)
	_, eject := e.(AutoEjector)
	_, air := e.(Airborne)
	assert.True(t, bombs)
	assert.True(t, eject)
	assert.True(t, air)

	e = NewMech("Atlas", "AS7-D")
	_, motive := e.(MotiveSystem)
	assert.False(t, motive)

	e = NewTank("Scorpion", "")
	p, ok := e.(PositionalAmmo)
	require.True(t, ok)
	assert.True(t, p.UsesPositionalAmmo())
}

func TestPlaceholders(t *testing.T) {
	assert.True(t, IsPlaceholder(NewEjectedCrew("")))
	assert.True(t, IsPlaceholder(NewMechWarrior("")))
	assert.False(t, IsPlaceholder(NewMech("Atlas", "")))
	assert.Equal(t, ChassisVehicleCrew, NewEjectedCrew("").Chassis)
	assert.Len(t, NewMechWarrior("").Locations, 1)
}
