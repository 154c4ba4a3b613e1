package parser

import (
	"strconv"
	"strings"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parseLocation applies a <location> block. Destruction is applied before
// the children so they see the wiped out state.
func (p *Parser) parseLocation(ec parseContext, el *xmltree.Element) {
	u := ec.unit()

	raw := stringAttr(el, mul.AttrIndex)
	idx, err := strconv.Atoi(raw)
	if err != nil {
		ec.warn("invalid location index %q", raw)
		return
	}
	l, ok := u.Location(idx)
	if !ok {
		ec.warn("location index %d out of range (0..%d)", idx, len(u.Locations)-1)
		return
	}

	if v, ok := boolAttr(el, mul.AttrIsDestroyed); ok && v {
		u.DestroyLocation(idx)
	}
	if v, ok := boolAttr(el, mul.AttrIsBreached); ok && v {
		l.Breached = true
	}

	lc := ec.withLocation(idx)
	for _, child := range el.Children {
		switch child.Name {
		case mul.TagArmor:
			p.parseArmor(lc, child)
		case mul.TagSlot:
			p.parseSlot(lc, child)
		}
	}
}

// parseArmor sets one side of the current location. Values above the
// original for that side are rejected.
func (p *Parser) parseArmor(lc parseContext, el *xmltree.Element) {
	l := lc.location()

	raw := stringAttr(el, mul.AttrPoints)
	v, err := mul.ParseArmor(raw)
	if err != nil {
		lc.warn("location %d: invalid armor value %q: %v", lc.loc, raw, err)
		return
	}

	var target, orig *core.ArmorValue
	side := stringAttr(el, mul.AttrType)
	switch {
	case side == "":
		target, orig = &l.Armor, &l.OArmor
	case strings.EqualFold(side, mul.ArmorRear):
		if !l.HasRear {
			lc.warn("location %d has no rear armor", lc.loc)
			return
		}
		target, orig = &l.RearArmor, &l.ORearArmor
	case strings.EqualFold(side, mul.ArmorInternal):
		target, orig = &l.Internal, &l.OInternal
	default:
		lc.warn("location %d: unknown armor type %q", lc.loc, side)
		return
	}

	if l.IsDestroyed() && !v.IsDestroyed() {
		lc.warn("location %d is destroyed, armor value %s ignored", lc.loc, mul.FormatArmor(v))
		return
	}
	if v.Exceeds(*orig) {
		lc.warn("location %d: armor value %s exceeds the original %s", lc.loc, mul.FormatArmor(v), mul.FormatArmor(*orig))
		return
	}
	*target = v
}

// slotFlags are the damage flags a <slot> element carries.
type slotFlags struct {
	hit, destroyed, repairable, breached bool
}

func readSlotFlags(el *xmltree.Element) slotFlags {
	f := slotFlags{repairable: true}
	f.hit, _ = boolAttr(el, mul.AttrIsHit)
	f.destroyed, _ = boolAttr(el, mul.AttrIsDestroyed)
	if v, ok := boolAttr(el, mul.AttrIsRepairable); ok {
		f.repairable = v
	}
	f.breached, _ = boolAttr(el, mul.AttrIsBreached)
	return f
}

func (f slotFlags) applyToMount(m *core.Mounted) {
	m.Hit = f.hit
	m.Destroyed = f.destroyed
	m.Repairable = f.repairable
	m.Breached = f.breached
}

// parseSlot applies a <slot> element. The index is 1-based; "N/A" addresses
// the next ammo bin of the location in mount order.
func (p *Parser) parseSlot(lc parseContext, el *xmltree.Element) {
	raw := stringAttr(el, mul.AttrIndex)
	declared := stringAttr(el, mul.AttrType)
	flags := readSlotFlags(el)
	// a wiped out location stays wiped out
	if lc.location().IsDestroyed() {
		flags.destroyed = true
	}

	if strings.EqualFold(raw, mul.NotApplicable) {
		p.parsePositionalAmmo(lc, el, declared, flags)
		return
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		lc.warn("location %d: invalid slot index %q", lc.loc, raw)
		return
	}
	l := lc.location()
	if n < 1 || n > len(l.Slots) {
		lc.warn("location %d: slot index %d out of range (1..%d)", lc.loc, n, len(l.Slots))
		return
	}
	slot := l.Slot(n - 1)
	if slot == nil {
		if !strings.EqualFold(declared, mul.Empty) {
			lc.warn("location %d: no critical slot at index %d for %q", lc.loc, n, declared)
		}
		return
	}

	if declared != "" && !sameType(slot, declared) {
		lc.warn("location %d slot %d: found %q where the file has %q", lc.loc, n, slot.Name(), declared)
	}

	slot.Hit = flags.hit
	slot.Destroyed = flags.destroyed
	slot.Repairable = flags.repairable
	slot.Breached = flags.breached

	if slot.Kind != core.SlotEquipment || slot.Mount == nil {
		return
	}
	m := slot.Mount
	flags.applyToMount(m)
	p.applyMountDetails(lc, el, m)
}

// parsePositionalAmmo patches the next ammo bin of the current location.
func (p *Parser) parsePositionalAmmo(lc parseContext, el *xmltree.Element, declared string, flags slotFlags) {
	bins := lc.unit().AmmoInLocation(lc.loc)
	if lc.ammo.next >= len(bins) {
		lc.warn("location %d: no ammo bin left for %q", lc.loc, declared)
		return
	}
	m := bins[lc.ammo.next]
	lc.ammo.next++

	if declared != "" && !sameMountType(m, declared) {
		lc.warn("location %d: ammo bin %d holds %q where the file has %q", lc.loc, lc.ammo.next, m.Name(), declared)
	}
	flags.applyToMount(m)
	p.applyMountDetails(lc, el, m)
}

// applyMountDetails restores munition, shots, quirks and per-mount flags.
func (p *Parser) applyMountDetails(lc parseContext, el *xmltree.Element, m *core.Mounted) {
	ammo := m
	if !m.IsAmmo() {
		ammo = m.Linked
	}

	if munition := stringAttr(el, mul.AttrMunition); munition != "" {
		t := core.EquipmentByName(munition)
		switch {
		case ammo == nil:
			lc.warn("munition %q given for %q, which takes no ammo", munition, m.Name())
		case t == nil || !ammo.ChangeAmmoType(t):
			lc.warn("illegal munition %q for %q", munition, ammo.Name())
		}
	}

	if v, ok := lc.intAttr(el, mul.AttrShots); ok {
		switch {
		case ammo == nil:
			lc.warn("shots given for %q, which takes no ammo", m.Name())
		case v < 0:
			lc.warn("invalid shot count %d for %q", v, ammo.Name())
		default:
			ammo.ShotsLeft = v
		}
	}

	if v := stringAttr(el, mul.AttrQuirks); v != "" {
		for _, unknown := range m.Quirks.Apply(v) {
			lc.warn("unknown weapon quirk %q on %q", unknown, m.Name())
		}
	}

	if v, ok := boolAttr(el, mul.AttrRapidFire); ok {
		m.RapidFire = v
	}

	applyTrooperMiss(lc, el, m)
}

// applyTrooperMiss reads the colon separated trooper numbers that lost the
// mount. Numbers past the squad size are dropped.
func applyTrooperMiss(pc parseContext, el *xmltree.Element, m *core.Mounted) {
	v := stringAttr(el, mul.AttrTrooperMiss)
	if v == "" {
		return
	}
	limit := core.MaxTroopers
	if ba, ok := pc.entity.(*core.BattleArmor); ok && ba.Troopers > 0 && ba.Troopers < limit {
		limit = ba.Troopers
	}
	for _, part := range strings.Split(v, ":") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			pc.warn("invalid trooper number %q on %q", part, m.Name())
			continue
		}
		if n > limit {
			pc.warn("trooper number %d on %q exceeds the squad size %d", n, m.Name(), limit)
			continue
		}
		for len(m.MissingForTrooper) < n {
			m.MissingForTrooper = append(m.MissingForTrooper, false)
		}
		m.MissingForTrooper[n-1] = true
	}
}

func sameType(slot *core.CriticalSlot, declared string) bool {
	if slot.Kind == core.SlotEquipment && slot.Mount != nil {
		return sameMountType(slot.Mount, declared)
	}
	return strings.EqualFold(slot.System, declared)
}

// sameMountType matches the mount's current or original type by internal or
// display name. Ammo bins that were swapped to another munition still match
// their template type.
func sameMountType(m *core.Mounted, declared string) bool {
	for _, t := range []*core.EquipmentType{m.Type, m.OriginalType} {
		if t != nil && (strings.EqualFold(t.InternalName, declared) || strings.EqualFold(t.Name, declared)) {
			return true
		}
	}
	return false
}
