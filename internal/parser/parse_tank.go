package parser

import (
	"strings"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parseMotive applies motive damage. Damage reaching the original walking
// MP immobilizes the vehicle at once.
func (p *Parser) parseMotive(ec parseContext, el *xmltree.Element) {
	ms, ok := ec.entity.(core.MotiveSystem)
	if !ok {
		ec.warn("<%s> ignored: %s has no motive system", el.Name, ec.entity.Kind())
		return
	}
	damage, dOK := ec.intAttr(el, mul.AttrMotiveDamage)
	penalty, pOK := ec.intAttr(el, mul.AttrMotivePenalty)
	if !dOK || !pOK {
		ec.warn("<%s> needs numeric %s and %s", el.Name, mul.AttrMotiveDamage, mul.AttrMotivePenalty)
		return
	}
	ms.SetMotiveDamage(damage, penalty)
	if damage >= ms.OriginalWalkMP() {
		ms.Immobilize()
		ms.ApplyDamage()
	}
}

func (p *Parser) parseTurretLock(ec parseContext, el *xmltree.Element, secondary bool) {
	tm, ok := ec.entity.(core.TurretMount)
	if !ok {
		ec.warn("<%s> ignored: %s has no turret", el.Name, ec.entity.Kind())
		return
	}
	dir, ok := ec.intAttr(el, mul.AttrDirection)
	if !ok {
		ec.warn("<%s> needs a numeric %s", el.Name, mul.AttrDirection)
		return
	}
	if !tm.LockTurret(secondary, dir) {
		ec.warn("<%s> ignored: no such turret", el.Name)
	}
}

// parseTankCriticals applies vehicle critical hits. An engine hit takes
// effect immediately.
func (p *Parser) parseTankCriticals(ec parseContext, el *xmltree.Element) {
	tc, ok := ec.entity.(core.TankCriticals)
	if !ok {
		ec.warn("<%s> ignored: %s is not a vehicle", el.Name, ec.entity.Kind())
		return
	}
	if v, ok := ec.intAttr(el, mul.AttrSensors); ok {
		tc.SetSensorHits(v)
	}
	if isHit(el, mul.AttrEngine) {
		tc.EngineHit()
		tc.ApplyDamage()
	}
	if isHit(el, mul.AttrDriver) {
		tc.SetDriverHit(true)
	}
	if isHit(el, mul.AttrCommander) {
		tc.SetCommanderHit(true)
	}
}

func isHit(el *xmltree.Element, attr string) bool {
	return strings.EqualFold(stringAttr(el, attr), mul.Hit)
}
