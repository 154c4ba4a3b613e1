package parser

import (
	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// intElement reads a required numeric attribute of a single value element.
func intElement(ec parseContext, el *xmltree.Element, attr string) (int, bool) {
	v, ok := ec.intAttr(el, attr)
	if !ok {
		ec.warn("<%s> needs a numeric %s", el.Name, attr)
	}
	return v, ok
}

func (p *Parser) parseStructural(ec parseContext, el *xmltree.Element) {
	si, ok := ec.entity.(core.StructuralIntegrity)
	if !ok {
		ec.warn("<%s> ignored: %s has no structural integrity", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := intElement(ec, el, mul.AttrIntegrity); ok {
		si.SetSI(v)
	}
}

func (p *Parser) parseHeatSinks(ec parseContext, el *xmltree.Element) {
	hs, ok := ec.entity.(core.HeatSinkBank)
	if !ok {
		ec.warn("<%s> ignored: %s has no tracked heat sinks", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := intElement(ec, el, mul.AttrSinks); ok {
		hs.SetHeatSinks(v)
	}
}

func (p *Parser) parseFuel(ec parseContext, el *xmltree.Element) {
	ft, ok := ec.entity.(core.FuelTank)
	if !ok {
		ec.warn("<%s> ignored: %s has no fuel", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := intElement(ec, el, mul.AttrLeft); ok {
		ft.SetFuel(v)
	}
}

func (p *Parser) parseKF(ec parseContext, el *xmltree.Element) {
	kf, ok := ec.entity.(core.KFDrive)
	if !ok {
		ec.warn("<%s> ignored: %s has no K-F drive", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := intElement(ec, el, mul.AttrIntegrity); ok {
		kf.SetKFIntegrity(v)
	}
}

func (p *Parser) parseSail(ec parseContext, el *xmltree.Element) {
	s, ok := ec.entity.(core.SolarSail)
	if !ok {
		ec.warn("<%s> ignored: %s has no sail", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := intElement(ec, el, mul.AttrIntegrity); ok {
		s.SetSailIntegrity(v)
	}
}

func (p *Parser) parseAeroCriticals(ec parseContext, el *xmltree.Element) {
	ac, ok := ec.entity.(core.AeroCriticals)
	if !ok {
		ec.warn("<%s> ignored: %s is not an aerospace unit", el.Name, ec.entity.Kind())
		return
	}
	c := ac.AeroCrits()
	counters := []struct {
		attr  string
		field *int
	}{
		{mul.AttrAvionics, &c.Avionics},
		{mul.AttrSensors, &c.Sensors},
		{mul.AttrEngine, &c.Engine},
		{mul.AttrFCS, &c.FCS},
		{mul.AttrCIC, &c.CIC},
		{mul.AttrLeftThrust, &c.LeftThrust},
		{mul.AttrRightThrust, &c.RightThrust},
	}
	for _, ctr := range counters {
		if v, ok := ec.intAttr(el, ctr.attr); ok {
			*ctr.field = v
		}
	}
	if isHit(el, mul.AttrLifeSupport) {
		c.LifeSupport = true
	}
	if isHit(el, mul.AttrGear) {
		c.Gear = true
	}
}

// parseBombs replaces the bomb load with the <bomb> children.
func (p *Parser) parseBombs(ec parseContext, el *xmltree.Element) {
	bb, ok := ec.entity.(core.BombBays)
	if !ok {
		ec.warn("<%s> ignored: %s cannot carry bombs", el.Name, ec.entity.Kind())
		return
	}
	load := core.NewBombLoad()
	for _, b := range el.ChildrenNamed(mul.TagBomb) {
		name := stringAttr(b, mul.AttrType)
		idx := core.BombIndex(name)
		if idx < 0 {
			ec.warn("unknown bomb type %q", name)
			continue
		}
		n, ok := ec.intAttr(b, mul.AttrLoad)
		if !ok || n <= 0 {
			continue
		}
		load[idx] += n
	}
	bb.SetBombs(load)
}
