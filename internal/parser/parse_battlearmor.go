package parser

import (
	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parseBAMount swaps the equipment at a battle armor manipulator or
// anti-personnel weapon mount.
func (p *Parser) parseBAMount(ec parseContext, el *xmltree.Element, kind core.MountKind) {
	mm, ok := ec.entity.(core.ManipulatorMounts)
	if !ok {
		ec.warn("<%s> ignored: %s is not battle armor", el.Name, ec.entity.Kind())
		return
	}

	locAttr, typeAttr := mul.AttrBAMEAMountLoc, mul.AttrBAMEATypeName
	if kind == core.MountAntiPersonnel {
		locAttr, typeAttr = mul.AttrBAAPMMountNum, mul.AttrBAAPMTypeName
	}

	loc, ok := ec.intAttr(el, locAttr)
	if !ok {
		ec.warn("<%s> needs a numeric %s", el.Name, locAttr)
		return
	}
	name := stringAttr(el, typeAttr)
	t := core.EquipmentByName(name)
	if t == nil {
		ec.warn("<%s>: unknown equipment %q", el.Name, name)
		return
	}
	if err := mm.SwapMount(kind, loc, t); err != nil {
		ec.warn("<%s>: %v", el.Name, err)
		return
	}
	for _, m := range ec.unit().Equipment {
		if m.BAMountLoc == loc && m.Type == t {
			applyTrooperMiss(ec, el, m)
			break
		}
	}
}
