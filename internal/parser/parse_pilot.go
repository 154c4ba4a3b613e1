package parser

import (
	"strconv"
	"strings"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parsePilot builds a crew from a <pilot> element. Missing or out of range
// gunnery and piloting reject the whole pilot.
func (p *Parser) parsePilot(pc parseContext, el *xmltree.Element) (*core.Crew, bool) {
	gunnery, ok := requiredSkill(pc, el, mul.AttrGunnery)
	if !ok {
		return nil, false
	}
	piloting, ok := requiredSkill(pc, el, mul.AttrPiloting)
	if !ok {
		return nil, false
	}

	name := stringAttr(el, mul.AttrName)
	if name == "" {
		name = core.UnnamedCrew
	}
	crew := core.NewCrew(name, gunnery, piloting)
	crew.Nickname = stringAttr(el, mul.AttrNick)

	for _, s := range []struct {
		attr  string
		field *int
	}{
		{mul.AttrGunneryL, &crew.GunneryL},
		{mul.AttrGunneryM, &crew.GunneryM},
		{mul.AttrGunneryB, &crew.GunneryB},
		{mul.AttrArtillery, &crew.Artillery},
	} {
		if v, ok := pc.intAttr(el, s.attr); ok {
			if core.ValidSkill(v) {
				*s.field = v
			} else {
				pc.warn("pilot %s: invalid %s value %d", name, s.attr, v)
			}
		}
	}

	if v, ok := pc.intAttr(el, mul.AttrToughness); ok {
		crew.Toughness = v
	}
	if v, ok := pc.intAttr(el, mul.AttrInitBonus); ok {
		crew.InitBonus = v
	}
	if v, ok := pc.intAttr(el, mul.AttrCommandBonus); ok {
		crew.CommandBonus = v
	}

	if hits := stringAttr(el, mul.AttrHits); hits != "" {
		if strings.EqualFold(hits, mul.Dead) {
			crew.Kill()
		} else if n, err := strconv.Atoi(hits); err != nil || n < 0 || n > core.MaxHits {
			pc.warn("pilot %s: invalid hits value %q", name, hits)
		} else {
			crew.Hits = n
		}
	}

	for _, attr := range []string{mul.AttrAdvantages, mul.AttrEdge, mul.AttrImplants} {
		if v := stringAttr(el, attr); v != "" {
			for _, unknown := range crew.Options.Apply(v) {
				pc.warn("pilot %s: unknown option %q", name, unknown)
			}
		}
	}

	if v, ok := boolAttr(el, mul.AttrEjected); ok {
		crew.Ejected = v
	}
	crew.PortraitCategory = el.Value(mul.AttrPortraitCategory)
	crew.PortraitFile = el.Value(mul.AttrPortraitFile)
	if v := stringAttr(el, mul.AttrExternalID); v != "" {
		crew.ExternalID = v
	}

	return crew, true
}

func requiredSkill(pc parseContext, el *xmltree.Element, attr string) (int, bool) {
	s := stringAttr(el, attr)
	if s == "" {
		pc.warn("pilot without %s skill skipped", attr)
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || !core.ValidSkill(v) {
		pc.warn("pilot with invalid %s value %q skipped", attr, s)
		return 0, false
	}
	return v, true
}

// attachCrew puts crew on the current entity and applies the ejection
// preferences for units that have them.
func (p *Parser) attachCrew(ec parseContext, el *xmltree.Element, crew *core.Crew) {
	ec.unit().Crew = crew

	ej, ok := ec.entity.(core.AutoEjector)
	if !ok {
		return
	}
	s := ej.Ejection()
	flags := []struct {
		attr  string
		field *bool
	}{
		{mul.AttrAutoEject, &s.Auto},
		{mul.AttrCondEjectAmmo, &s.OnAmmoExplosion},
		{mul.AttrCondEjectEngine, &s.OnEngineHits},
		{mul.AttrCondEjectCTDest, &s.OnCTDestroyed},
		{mul.AttrCondEjectHeadshot, &s.OnHeadshot},
	}
	for _, f := range flags {
		if v, ok := boolAttr(el, f.attr); ok {
			*f.field = v
		}
	}
}
