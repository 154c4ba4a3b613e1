package parser

import (
	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
)

// parseC3i fills the entity's free C3i slots in document order.
func (p *Parser) parseC3i(ec parseContext, el *xmltree.Element) {
	u := ec.unit()
	for _, link := range el.ChildrenNamed(mul.TagC3iLink) {
		id := stringAttr(link, mul.AttrLink)
		if id == "" {
			continue
		}
		if !u.AddC3iLink(id) {
			ec.warn("C3i network full, link %s dropped", id)
		}
	}
}
