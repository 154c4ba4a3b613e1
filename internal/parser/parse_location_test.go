package parser

import (
	"testing"

	"github.com/megamek/mulkit/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAtlas(t *testing.T) core.Entity {
	t.Helper()
	c := newTestCatalog()
	s, ok := c.Find("Atlas", "AS7-D")
	require.True(t, ok)
	e, err := c.Load(s)
	require.NoError(t, err)
	return e
}

func armorOf(e core.Entity) [][3]core.ArmorValue {
	out := [][3]core.ArmorValue{}
	for _, l := range e.Base().Locations {
		out = append(out, [3]core.ArmorValue{l.Armor, l.RearArmor, l.Internal})
	}
	return out
}

func TestParseLocation_OutOfRange(t *testing.T) {
	pristine := loadAtlas(t)

	for _, idx := range []string{"999", "-1", "8", "head"} {
		t.Run(idx, func(t *testing.T) {
			e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
				<location index="`+idx+`" isDestroyed="true"><armor points="1"/></location>
			</entity>`)

			assert.Equal(t, armorOf(pristine), armorOf(e))
			assert.Equal(t, 1, res.WarningCount(), res.Warnings())
		})
	}
}

func TestParseLocation_DestroyedBeforeChildren(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
		<location index="2" isDestroyed="true">
			<armor points="5"/>
			<armor points="3" type="Internal"/>
			<slot index="11" type="ISAC20 Ammo" isHit="false" isDestroyed="false"/>
		</location>
	</entity>`)

	rt := e.Base().Locations[2]
	assert.Equal(t, core.Destroyed, rt.Armor)
	assert.Equal(t, core.Destroyed, rt.Internal)
	assert.Equal(t, core.Destroyed, rt.RearArmor)
	assert.True(t, rt.Slots[10].Destroyed)
	assert.True(t, rt.Slots[10].Mount.Destroyed)
	for _, m := range e.Base().Equipment {
		if m.Location == 2 {
			assert.True(t, m.Destroyed, m.Name())
		}
	}
	assert.Equal(t, 2, res.WarningCount(), res.Warnings())
}

func TestParseArmor(t *testing.T) {
	tests := []struct {
		name   string
		loc    int
		armor  string
		check  func(l *core.Location) core.ArmorValue
		expect core.ArmorValue
		warns  int
	}{
		{"front reduced", 1, `<armor points="20"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(20), 0},
		{"front equal to original", 1, `<armor points="47"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(47), 0},
		{"front above original", 1, `<armor points="48"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(47), 1},
		{"rear", 1, `<armor points="2" type="Rear"/>`, func(l *core.Location) core.ArmorValue { return l.RearArmor }, core.Points(2), 0},
		{"rear on location without rear", 0, `<armor points="2" type="Rear"/>`, func(l *core.Location) core.ArmorValue { return l.RearArmor }, core.NotApplicable, 1},
		{"internal", 1, `<armor points="10" type="Internal"/>`, func(l *core.Location) core.ArmorValue { return l.Internal }, core.Points(10), 0},
		{"internal above original", 1, `<armor points="32" type="Internal"/>`, func(l *core.Location) core.ArmorValue { return l.Internal }, core.Points(31), 1},
		{"destroyed sentinel", 1, `<armor points="Destroyed"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Destroyed, 0},
		{"N/A sentinel", 1, `<armor points="N/A"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.NotApplicable, 0},
		{"garbage", 1, `<armor points="many"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(47), 1},
		{"over range", 1, `<armor points="5000"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(47), 1},
		{"unknown side", 1, `<armor points="3" type="Top"/>`, func(l *core.Location) core.ArmorValue { return l.Armor }, core.Points(47), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D"><location index="`+itoa(tt.loc)+`">`+tt.armor+`</location></entity>`)
			assert.Equal(t, tt.expect, tt.check(e.Base().Locations[tt.loc]))
			assert.Equal(t, tt.warns, res.WarningCount(), res.Warnings())
		})
	}
}

func itoa(i int) string {
	return string(rune('0' + i))
}

func TestParseSlot_Indexed(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
		<location index="2">
			<slot index="1" type="ISAC20" isHit="true" isDestroyed="false" isRepairable="false"/>
			<slot index="11" type="ISAC20 Ammo" isHit="false" isDestroyed="false" shots="3"/>
		</location>
		<location index="0">
			<slot index="3" type="Cockpit" isHit="true" isDestroyed="true"/>
			<slot index="4" type="Empty"/>
		</location>
	</entity>`)

	u := e.Base()
	rt := u.Locations[2]
	assert.True(t, rt.Slots[0].Hit)
	assert.False(t, rt.Slots[0].Repairable)
	assert.True(t, rt.Slots[0].Mount.Hit)
	assert.False(t, rt.Slots[0].Mount.Repairable)
	assert.Equal(t, 3, rt.Slots[10].Mount.ShotsLeft)
	assert.Equal(t, 5, rt.Slots[11].Mount.ShotsLeft)

	cockpit := u.Locations[0].Slots[2]
	assert.True(t, cockpit.Hit)
	assert.True(t, cockpit.Destroyed)
	assert.False(t, res.HasWarnings(), res.Warnings())
}

func TestParseSlot_Problems(t *testing.T) {
	tests := []struct {
		name string
		slot string
		warn string
	}{
		{"index zero", `<slot index="0" type="Cockpit"/>`, "out of range"},
		{"index past end", `<slot index="7" type="Cockpit"/>`, "out of range"},
		{"bad index", `<slot index="first" type="Cockpit"/>`, "invalid slot index"},
		{"empty slot named", `<slot index="4" type="ISMediumLaser"/>`, "no critical slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D"><location index="0">`+tt.slot+`</location></entity>`)
			assert.Equal(t, 1, res.WarningCount(), res.Warnings())
			assert.Contains(t, res.Warnings(), tt.warn)
		})
	}
}

func TestParseSlot_TypeMismatchStillForcesFlags(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
		<location index="4"><slot index="5" type="ISLargeLaser" isHit="true" isDestroyed="true"/></location>
	</entity>`)

	slot := e.Base().Locations[4].Slots[4]
	assert.Equal(t, "ISMediumLaser", slot.Name())
	assert.True(t, slot.Destroyed)
	assert.True(t, slot.Mount.Destroyed)
	assert.Equal(t, 1, res.WarningCount())
	assert.Contains(t, res.Warnings(), "ISLargeLaser")
}

func TestParseSlot_Munition(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
		<location index="3">
			<slot index="10" type="ISSRM6 Ammo" munition="ISSRM6 Inferno Ammo" shots="7"/>
			<slot index="6" type="ISLRM20 Ammo" munition="ISAC20 Ammo"/>
		</location>
		<location index="4"><slot index="5" type="ISMediumLaser" munition="ISAC20 Ammo" shots="4"/></location>
	</entity>`)

	lt := e.Base().Locations[3]
	srm := lt.Slots[9].Mount
	assert.Equal(t, "ISSRM6 Inferno Ammo", srm.Name())
	assert.Equal(t, 7, srm.ShotsLeft)

	lrm := lt.Slots[5].Mount
	assert.Equal(t, "ISLRM20 Ammo", lrm.Name())
	assert.Equal(t, 3, res.WarningCount(), res.Warnings())
	assert.Contains(t, res.Warnings(), "illegal munition")
	assert.Contains(t, res.Warnings(), "takes no ammo")
	assert.Contains(t, res.Warnings(), "shots given")
}

func TestParseSlot_OneShotAndWeaponFlags(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Locust" model="LCT-1V">
		<location index="2"><slot index="1" type="ISSRM4 (OS)" shots="0"/></location>
		<location index="4"><slot index="5" type="ISMachine Gun" rfmg="true" quirks="imp_accuracy::jam_prone"/></location>
	</entity>`)

	u := e.Base()
	srm := u.Locations[2].Slots[0].Mount
	require.NotNil(t, srm.Linked)
	assert.Equal(t, 0, srm.Linked.ShotsLeft)

	mg := u.Locations[4].Slots[4].Mount
	assert.True(t, mg.RapidFire)
	assert.True(t, mg.Quirks.Has("imp_accuracy"))
	assert.False(t, mg.Quirks.Has("jam_prone"))
	assert.Equal(t, 1, res.WarningCount(), res.Warnings())
	assert.Contains(t, res.Warnings(), "jam_prone")
}

func TestParseSlot_PositionalAmmoOrder(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Condor Heavy Hover Tank">
		<location index="5"><slot index="N/A" type="ISAC5 Ammo" shots="9"/></location>
		<location index="0">
			<slot index="N/A" type="ISAC5 Ammo" shots="1"/>
			<slot index="N/A" type="ISLRM10 Ammo" shots="2" isHit="true"/>
			<slot index="N/A" type="ISSRM6 Ammo" shots="3"/>
			<slot index="N/A" type="ISSRM6 Ammo" shots="4"/>
		</location>
	</entity>`)

	bins := e.Base().AmmoInLocation(0)
	require.Len(t, bins, 3)
	assert.Equal(t, "ISAC5 Ammo", bins[0].Name())
	assert.Equal(t, 1, bins[0].ShotsLeft)
	assert.Equal(t, "ISLRM10 Ammo", bins[1].Name())
	assert.Equal(t, 2, bins[1].ShotsLeft)
	assert.True(t, bins[1].Hit)
	assert.Equal(t, "ISSRM6 Ammo", bins[2].Name())
	assert.Equal(t, 3, bins[2].ShotsLeft)

	// the turret holds no ammo and the fourth body tag has no bin left
	assert.Equal(t, 2, res.WarningCount(), res.Warnings())
}

func TestParseLocation_Breached(t *testing.T) {
	e, _ := parseOne(t, `<entity chassis="Atlas" model="AS7-D"><location index="1" isBreached="true"/></entity>`)
	assert.True(t, e.Base().Locations[1].Breached)
	assert.False(t, e.Base().Locations[2].Breached)
}

func TestParseSlot_TrooperMissing(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Minotaur">
		<location index="2"><slot index="N/A" type="ISSRM6 Ammo" trooperMiss="1:3:"/></location>
	</entity>`)

	bin := e.Base().AmmoInLocation(2)[0]
	assert.Equal(t, []bool{true, false, true}, bin.MissingForTrooper)
	assert.False(t, res.HasWarnings(), res.Warnings())
}

func TestParseSlot_TrooperMissingOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		miss   string
		expect []bool
		warns  int
	}{
		{"huge number", "50000000", nil, 1},
		{"one past the squad", "7", nil, 1},
		{"mixed", "2:40", []bool{false, true}, 1},
		{"largest squad", "6", []bool{false, false, false, false, false, true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
				<location index="2"><slot index="1" type="ISAC20" trooperMiss="`+tt.miss+`"/></location>
			</entity>`)

			ac := e.Base().Locations[2].Slots[0].Mount
			require.NotNil(t, ac)
			assert.Equal(t, tt.expect, ac.MissingForTrooper)
			assert.Equal(t, tt.warns, res.WarningCount(), res.Warnings())
		})
	}
}

func TestParseLocation_DestroyedKeepsDestroyedArmor(t *testing.T) {
	for _, points := range []string{"N/A", "5", "Destroyed"} {
		t.Run(points, func(t *testing.T) {
			e, _ := parseOne(t, `<entity chassis="Atlas" model="AS7-D">
				<location index="2" isDestroyed="true"><armor points="`+points+`"/></location>
			</entity>`)

			assert.Equal(t, core.Destroyed, e.Base().Locations[2].Armor)
		})
	}
}
