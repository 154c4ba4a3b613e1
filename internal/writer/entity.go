package writer

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/pkg/core"
)

const (
	slotIndexNote = "Slot indices start at 1: index 1 is the first critical slot of a location."
	tankAmmoNote  = "Vehicle ammo bins are matched by their order within a location. Keep the N/A slots in this order."
)

func (lw *listWriter) entity(e core.Entity) {
	u := e.Base()
	lw.start(mul.TagEntity, entityAttrs(e)...)

	if u.Crew != nil {
		a := pilotAttrs(u.Crew)
		if ej, ok := e.(core.AutoEjector); ok {
			s := ej.Ejection()
			a.addBool(mul.AttrAutoEject, s.Auto)
			a.addBool(mul.AttrCondEjectAmmo, s.OnAmmoExplosion)
			a.addBool(mul.AttrCondEjectEngine, s.OnEngineHits)
			a.addBool(mul.AttrCondEjectCTDest, s.OnCTDestroyed)
			a.addBool(mul.AttrCondEjectHeadshot, s.OnHeadshot)
		}
		lw.empty(mul.TagPilot, a...)
	}

	switch v := e.(type) {
	case *core.Tank:
		lw.tankState(v)
	case *core.Aero:
		lw.aeroState(&v.AeroSystems)
	case *core.Jumpship:
		lw.aeroState(&v.AeroSystems)
		if v.KFIntegrity != v.OKFIntegrity {
			lw.empty(mul.TagKF, intAttr(mul.AttrIntegrity, v.KFIntegrity))
		}
		if v.SailIntegrity != v.OSailIntegrity {
			lw.empty(mul.TagSail, intAttr(mul.AttrIntegrity, v.SailIntegrity))
		}
	case *core.BattleArmor:
		lw.baMounts(v)
	}

	if bb, ok := e.(core.BombBays); ok {
		lw.bombs(bb.Bombs())
	}

	if links := u.C3iLinks(); len(links) > 0 {
		lw.start(mul.TagC3iSet)
		for _, id := range links {
			var a attrs
			a.add(mul.AttrLink, id)
			lw.empty(mul.TagC3iLink, a...)
		}
		lw.end(mul.TagC3iSet)
	}

	lw.locations(e)
	lw.end(mul.TagEntity)
}

func entityAttrs(e core.Entity) attrs {
	u := e.Base()
	var a attrs
	a.add(mul.AttrChassis, u.Chassis)
	if u.Model != "" {
		a.add(mul.AttrModel, u.Model)
	}
	if u.MovementMode != "" {
		a.add(mul.AttrType, u.MovementMode)
	}
	if u.Commander {
		a.addBool(mul.AttrCommander, true)
	}
	if u.Hidden {
		a.addBool(mul.AttrHidden, true)
	}
	if u.OffBoard {
		a.addBool(mul.AttrOffboard, true)
		a.addInt(mul.AttrOffboardDistance, u.OffBoardDistance)
		a.addInt(mul.AttrOffboardDirection, u.OffBoardDirection)
	}
	if u.DeployRound != 0 {
		a.addInt(mul.AttrDeployment, u.DeployRound)
	}
	if u.DeployZone != 0 {
		a.addInt(mul.AttrDeploymentZone, u.DeployZone)
	}
	a.addBool(mul.AttrNeverDeployed, u.NeverDeployed)

	if air, ok := e.(core.Airborne); ok {
		if f := air.Flight(); f.Velocity != 0 || f.Altitude != 0 {
			a.addInt(mul.AttrVelocity, f.Velocity)
			a.addInt(mul.AttrAltitude, f.Altitude)
		}
	}

	if u.CamoCategory != nil {
		a.add(mul.AttrCamoCategory, *u.CamoCategory)
	}
	if u.CamoFileName != nil {
		a.add(mul.AttrCamoFileName, *u.CamoFileName)
	}
	a.add(mul.AttrExternalID, u.ExternalID)
	if q := u.Quirks.Encode(core.GroupQuirks); q != "" {
		a.add(mul.AttrQuirks, q)
	}
	if u.C3Master != "" {
		a.add(mul.AttrC3Master, u.C3Master)
	}
	if u.C3UUID != "" {
		a.add(mul.AttrC3UUID, u.C3UUID)
	}
	return a
}

// pilotAttrs renders a crew. Hits past the survivable maximum, or a dead
// crew, are written as "Dead".
func pilotAttrs(c *core.Crew) attrs {
	var a attrs
	a.add(mul.AttrName, c.Name)
	if c.Nickname != "" {
		a.add(mul.AttrNick, c.Nickname)
	}
	a.addInt(mul.AttrGunnery, c.Gunnery)
	for _, s := range []struct {
		attr  string
		value int
	}{
		{mul.AttrGunneryL, c.GunneryL},
		{mul.AttrGunneryM, c.GunneryM},
		{mul.AttrGunneryB, c.GunneryB},
	} {
		if s.value != c.Gunnery {
			a.addInt(s.attr, s.value)
		}
	}
	a.addInt(mul.AttrPiloting, c.Piloting)
	if c.Artillery != c.Gunnery {
		a.addInt(mul.AttrArtillery, c.Artillery)
	}
	if c.Toughness != 0 {
		a.addInt(mul.AttrToughness, c.Toughness)
	}
	if c.InitBonus != 0 {
		a.addInt(mul.AttrInitBonus, c.InitBonus)
	}
	if c.CommandBonus != 0 {
		a.addInt(mul.AttrCommandBonus, c.CommandBonus)
	}

	switch {
	case c.IsDead():
		a.add(mul.AttrHits, mul.Dead)
	case c.Hits > 0:
		a.addInt(mul.AttrHits, c.Hits)
	}

	if c.Options != nil {
		for _, g := range []struct {
			attr  string
			group core.OptionGroup
		}{
			{mul.AttrAdvantages, core.GroupAdvantages},
			{mul.AttrEdge, core.GroupEdge},
			{mul.AttrImplants, core.GroupImplants},
		} {
			if v := c.Options.Encode(g.group); v != "" {
				a.add(g.attr, v)
			}
		}
	}

	if c.Ejected {
		a.addBool(mul.AttrEjected, true)
	}
	if c.PortraitCategory != "" {
		a.add(mul.AttrPortraitCategory, c.PortraitCategory)
	}
	if c.PortraitFile != "" {
		a.add(mul.AttrPortraitFile, c.PortraitFile)
	}
	if c.ExternalID != core.DefaultExternalID {
		a.add(mul.AttrExternalID, c.ExternalID)
	}
	return a
}

func intAttr(name string, v int) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: strconv.Itoa(v)}
}

func (lw *listWriter) tankState(t *core.Tank) {
	if t.MotiveDamage != 0 || t.MotivePenalty != 0 {
		var a attrs
		a.addInt(mul.AttrMotiveDamage, t.MotiveDamage)
		a.addInt(mul.AttrMotivePenalty, t.MotivePenalty)
		lw.empty(mul.TagMotive, a...)
	}
	if t.TurretLocked[0] {
		lw.empty(mul.TagTurretLock, intAttr(mul.AttrDirection, t.SecondaryFacing))
	}
	if t.TurretLocked[1] {
		lw.empty(mul.TagTurret2, intAttr(mul.AttrDirection, t.SecondaryFacing))
	}

	var a attrs
	if t.SensorHits > 0 {
		a.addInt(mul.AttrSensors, t.SensorHits)
	}
	if t.EngineHitTaken {
		a.add(mul.AttrEngine, mul.Hit)
	}
	if t.DriverHit {
		a.add(mul.AttrDriver, mul.Hit)
	}
	if t.CommanderHit {
		a.add(mul.AttrCommander, mul.Hit)
	}
	if len(a) > 0 {
		lw.empty(mul.TagTCriticals, a...)
	}
}

func (lw *listWriter) aeroState(s *core.AeroSystems) {
	if s.SI != s.OSI {
		lw.empty(mul.TagStructural, intAttr(mul.AttrIntegrity, s.SI))
	}
	if s.HeatSinks != s.OHeatSinks {
		lw.empty(mul.TagHeat, intAttr(mul.AttrSinks, s.HeatSinks))
	}
	if s.Fuel != s.OFuel {
		lw.empty(mul.TagFuel, intAttr(mul.AttrLeft, s.Fuel))
	}

	c := s.Crits
	if c == (core.AeroCrits{}) {
		return
	}
	var a attrs
	for _, ctr := range []struct {
		attr  string
		value int
	}{
		{mul.AttrAvionics, c.Avionics},
		{mul.AttrSensors, c.Sensors},
		{mul.AttrEngine, c.Engine},
		{mul.AttrFCS, c.FCS},
		{mul.AttrCIC, c.CIC},
		{mul.AttrLeftThrust, c.LeftThrust},
		{mul.AttrRightThrust, c.RightThrust},
	} {
		if ctr.value != 0 {
			a.addInt(ctr.attr, ctr.value)
		}
	}
	if c.LifeSupport {
		a.add(mul.AttrLifeSupport, mul.Hit)
	}
	if c.Gear {
		a.add(mul.AttrGear, mul.Hit)
	}
	lw.empty(mul.TagACriticals, a...)
}

func (lw *listWriter) bombs(load core.BombLoad) {
	if load.Total() == 0 {
		return
	}
	lw.start(mul.TagBombs)
	for i, n := range load {
		if n <= 0 {
			continue
		}
		var a attrs
		a.add(mul.AttrType, core.BombTypeName(i))
		a.addInt(mul.AttrLoad, n)
		lw.empty(mul.TagBomb, a...)
	}
	lw.end(mul.TagBombs)
}

// baMounts records what sits in each manipulator and anti-personnel mount,
// and which troopers lost it. Squad locations have no critical slots to carry
// trooperMiss.
func (lw *listWriter) baMounts(b *core.BattleArmor) {
	for _, m := range b.Equipment {
		if m.BAMountLoc < 0 || m.Type == nil {
			continue
		}
		var a attrs
		switch {
		case m.Type.Manipulator:
			a.addInt(mul.AttrBAMEAMountLoc, m.BAMountLoc)
			a.add(mul.AttrBAMEATypeName, m.Type.InternalName)
			addTrooperMiss(&a, m)
			lw.empty(mul.TagBAMEA, a...)
		case m.Type.AntiPersonnel:
			a.addInt(mul.AttrBAAPMMountNum, m.BAMountLoc)
			a.add(mul.AttrBAAPMTypeName, m.Type.InternalName)
			addTrooperMiss(&a, m)
			lw.empty(mul.TagBAAPM, a...)
		}
	}
}

// locations writes the locations that differ from the undamaged unit.
// Wiped out locations are written with isDestroyed and nothing else.
func (lw *listWriter) locations(e core.Entity) {
	u := e.Base()
	positional := false
	if pa, ok := e.(core.PositionalAmmo); ok {
		positional = pa.UsesPositionalAmmo()
	}

	slots := make([][]attrs, len(u.Locations))
	anySlots := false
	for i, l := range u.Locations {
		if l.IsDestroyed() {
			continue
		}
		if positional {
			slots[i] = positionalSlots(u, i)
		} else {
			slots[i] = indexedSlots(l)
		}
		anySlots = anySlots || len(slots[i]) > 0
	}

	if anySlots {
		lw.comment(slotIndexNote)
	}
	if e.Kind() == core.KindTank {
		lw.comment(tankAmmoNote)
	}

	for i, l := range u.Locations {
		var a attrs
		a.addInt(mul.AttrIndex, i)

		if l.IsDestroyed() {
			a.addBool(mul.AttrIsDestroyed, true)
			lw.empty(mul.TagLocation, a...)
			continue
		}

		armor := armorLines(l)
		if len(armor) == 0 && len(slots[i]) == 0 && !l.Breached {
			continue
		}
		if l.Breached {
			a.addBool(mul.AttrIsBreached, true)
		}
		lw.start(mul.TagLocation, a...)
		lw.comment(l.Name)
		for _, line := range armor {
			lw.empty(mul.TagArmor, line...)
		}
		for _, line := range slots[i] {
			lw.empty(mul.TagSlot, line...)
		}
		lw.end(mul.TagLocation)
	}
}

func armorLines(l *core.Location) []attrs {
	var out []attrs
	sides := []struct {
		side      string
		cur, orig core.ArmorValue
		present   bool
	}{
		{"", l.Armor, l.OArmor, true},
		{mul.ArmorRear, l.RearArmor, l.ORearArmor, l.HasRear},
		{mul.ArmorInternal, l.Internal, l.OInternal, true},
	}
	for _, s := range sides {
		if !s.present || s.cur == s.orig {
			continue
		}
		var a attrs
		a.add(mul.AttrPoints, mul.FormatArmor(s.cur))
		if s.side != "" {
			a.add(mul.AttrType, s.side)
		}
		out = append(out, a)
	}
	return out
}

// indexedSlots lists the damaged slots and those holding ammo or a one-shot
// launcher. Rapid fire, weapon quirks and missing troopers go on the first
// slot of a mount.
func indexedSlots(l *core.Location) []attrs {
	var out []attrs
	seen := make(map[*core.Mounted]bool)
	for i, s := range l.Slots {
		if s == nil {
			continue
		}
		m := s.Mount
		first := m != nil && !seen[m]
		if m != nil {
			seen[m] = true
		}

		extras := first && (m.RapidFire || m.Quirks.Len() > 0 || trooperMiss(m.MissingForTrooper) != "")
		tracked := m != nil && (m.IsAmmo() || m.Linked != nil)
		if !s.Damaged() && !tracked && !extras {
			continue
		}

		var a attrs
		a.addInt(mul.AttrIndex, i+1)
		a.add(mul.AttrType, slotTypeName(s))
		a.addBool(mul.AttrIsHit, s.Hit)
		a.addBool(mul.AttrIsDestroyed, s.Destroyed)
		a.addBool(mul.AttrIsRepairable, s.Repairable)
		if s.Breached {
			a.addBool(mul.AttrIsBreached, true)
		}
		if m != nil {
			mountDetails(&a, m, first)
		}
		out = append(out, a)
	}
	return out
}

// positionalSlots lists every ammo bin of a location in mount order, since
// readers match them by position.
func positionalSlots(u *core.Unit, loc int) []attrs {
	var out []attrs
	for _, m := range u.AmmoInLocation(loc) {
		var a attrs
		a.add(mul.AttrIndex, mul.NotApplicable)
		a.add(mul.AttrType, mountTypeName(m))
		a.addBool(mul.AttrIsHit, m.Hit)
		a.addBool(mul.AttrIsDestroyed, m.Destroyed)
		a.addBool(mul.AttrIsRepairable, m.Repairable)
		if m.Breached {
			a.addBool(mul.AttrIsBreached, true)
		}
		mountDetails(&a, m, true)
		out = append(out, a)
	}
	return out
}

func slotTypeName(s *core.CriticalSlot) string {
	if s.Kind == core.SlotEquipment && s.Mount != nil {
		return mountTypeName(s.Mount)
	}
	return s.System
}

// mountTypeName names the mount by the type it was built with, so a reader
// starting from the undamaged unit finds it.
func mountTypeName(m *core.Mounted) string {
	if m.OriginalType != nil {
		return m.OriginalType.InternalName
	}
	return m.Name()
}

func mountDetails(a *attrs, m *core.Mounted, first bool) {
	ammo := m
	if !m.IsAmmo() {
		ammo = m.Linked
	}
	if ammo != nil {
		if ammo.Type != ammo.OriginalType {
			a.add(mul.AttrMunition, ammo.Name())
		}
		a.addInt(mul.AttrShots, ammo.ShotsLeft)
	}
	if !first {
		return
	}
	if m.RapidFire {
		a.addBool(mul.AttrRapidFire, true)
	}
	if m.Quirks.Len() > 0 {
		a.add(mul.AttrQuirks, m.Quirks.Encode(core.GroupWeaponQuirks))
	}
	addTrooperMiss(a, m)
}

func addTrooperMiss(a *attrs, m *core.Mounted) {
	if miss := trooperMiss(m.MissingForTrooper); miss != "" {
		a.add(mul.AttrTrooperMiss, miss)
	}
}

// trooperMiss encodes the 1-based numbers of troopers missing the mount.
func trooperMiss(missing []bool) string {
	var parts []string
	for i, gone := range missing {
		if gone {
			parts = append(parts, strconv.Itoa(i+1))
		}
	}
	return strings.Join(parts, ":")
}
