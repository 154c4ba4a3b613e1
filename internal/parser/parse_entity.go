package parser

import (
	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parseEntity reconstructs one entity and appends it to list. An entity
// that cannot be resolved is skipped with a warning.
func (p *Parser) parseEntity(pc parseContext, el *xmltree.Element, list *[]core.Entity) {
	e, ok := p.resolveEntity(pc, el)
	if !ok {
		return
	}
	ec := pc.withEntity(e)

	p.parseEntityAttributes(ec, el)

	for _, child := range el.Children {
		switch child.Name {
		case mul.TagPilot:
			if crew, ok := p.parsePilot(ec, child); ok {
				p.attachCrew(ec, child, crew)
			}
		case mul.TagLocation:
			p.parseLocation(ec, child)
		case mul.TagMotive:
			p.parseMotive(ec, child)
		case mul.TagTurretLock:
			p.parseTurretLock(ec, child, false)
		case mul.TagTurret2:
			p.parseTurretLock(ec, child, true)
		case mul.TagStructural:
			p.parseStructural(ec, child)
		case mul.TagHeat:
			p.parseHeatSinks(ec, child)
		case mul.TagFuel:
			p.parseFuel(ec, child)
		case mul.TagKF:
			p.parseKF(ec, child)
		case mul.TagSail:
			p.parseSail(ec, child)
		case mul.TagACriticals:
			p.parseAeroCriticals(ec, child)
		case mul.TagTCriticals:
			p.parseTankCriticals(ec, child)
		case mul.TagBombs:
			p.parseBombs(ec, child)
		case mul.TagC3iSet:
			p.parseC3i(ec, child)
		case mul.TagBAMEA:
			p.parseBAMount(ec, child, core.MountManipulator)
		case mul.TagBAAPM:
			p.parseBAMount(ec, child, core.MountAntiPersonnel)
		}
	}

	*list = append(*list, e)
}

// resolveEntity creates the entity named by the chassis and model
// attributes. The reserved crew chassis never reach the catalog.
func (p *Parser) resolveEntity(pc parseContext, el *xmltree.Element) (core.Entity, bool) {
	chassis := stringAttr(el, mul.AttrChassis)
	model := stringAttr(el, mul.AttrModel)

	switch chassis {
	case "":
		pc.warn("entity without a chassis skipped")
		return nil, false
	case core.ChassisVehicleCrew:
		return core.NewEjectedCrew(model), true
	case core.ChassisMechWarrior:
		return core.NewMechWarrior(model), true
	}

	name := chassis
	if model != "" {
		name += " " + model
	}
	if p.units == nil {
		pc.warn("could not find a unit for %q: no catalog", name)
		return nil, false
	}
	s, ok := p.units.Find(chassis, model)
	if !ok {
		pc.warn("could not find a unit for %q", name)
		return nil, false
	}
	e, err := p.units.Load(s)
	if err != nil {
		pc.warn("unable to load unit %q: %v", name, err)
		return nil, false
	}
	return e, true
}

func (p *Parser) parseEntityAttributes(ec parseContext, el *xmltree.Element) {
	u := ec.unit()

	if v, ok := boolAttr(el, mul.AttrCommander); ok {
		u.Commander = v
	}
	if v, ok := boolAttr(el, mul.AttrHidden); ok {
		u.Hidden = v
	}

	if v, ok := boolAttr(el, mul.AttrOffboard); ok && v {
		distance, dOK := ec.intAttr(el, mul.AttrOffboardDistance)
		direction, dirOK := ec.intAttr(el, mul.AttrOffboardDirection)
		if dOK && dirOK {
			u.OffBoard = true
			u.OffBoardDistance = distance
			u.OffBoardDirection = direction
		} else {
			ec.warn("off-board deployment without a valid distance and direction ignored")
		}
	}

	if v, ok := ec.intAttr(el, mul.AttrDeployment); ok {
		u.DeployRound = v
	}
	if v, ok := ec.intAttr(el, mul.AttrDeploymentZone); ok {
		u.DeployZone = v
	}

	// absent means the unit never deployed
	if v, ok := boolAttr(el, mul.AttrNeverDeployed); ok {
		u.NeverDeployed = v
	} else {
		u.NeverDeployed = true
	}

	if air, ok := ec.entity.(core.Airborne); ok {
		f := air.Flight()
		if v, ok := ec.intAttr(el, mul.AttrVelocity); ok {
			f.Velocity = v
			f.NextVelocity = v
		}
		if v, ok := ec.intAttr(el, mul.AttrAltitude); ok {
			f.Altitude = v
		}
	}

	u.CamoCategory = optionalString(el, mul.AttrCamoCategory)
	u.CamoFileName = optionalString(el, mul.AttrCamoFileName)

	if v := stringAttr(el, mul.AttrExternalID); v != "" {
		u.ExternalID = v
	}

	if v := stringAttr(el, mul.AttrQuirks); v != "" {
		for _, name := range u.Quirks.Apply(v) {
			ec.warn("unknown quirk %q", name)
		}
	}

	if v := stringAttr(el, mul.AttrC3Master); v != "" {
		u.C3Master = v
	}
	if v := stringAttr(el, mul.AttrC3UUID); v != "" {
		u.C3UUID = v
	}
}

// optionalString maps an absent or empty attribute to nil.
func optionalString(el *xmltree.Element, name string) *string {
	v := el.Value(name)
	if v == "" {
		return nil
	}
	return &v
}
