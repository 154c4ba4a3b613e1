package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
)

// parseContext carries the state of a single Parse call. Sub-parsers get it
// by value; narrowing to an entity or location returns a new context.
type parseContext struct {
	logger *slog.Logger
	res    *Result

	entity core.Entity
	loc    int
	ammo   *ammoCursor
}

// ammoCursor counts the "N/A" indexed slots seen in one location.
type ammoCursor struct {
	next int
}

func newParseContext(logger *slog.Logger, res *Result) parseContext {
	return parseContext{logger: logger, res: res, loc: -1}
}

func (pc parseContext) withEntity(e core.Entity) parseContext {
	pc.entity = e
	pc.loc = -1
	pc.ammo = nil
	return pc
}

func (pc parseContext) withLocation(loc int) parseContext {
	pc.loc = loc
	pc.ammo = &ammoCursor{}
	return pc
}

func (pc parseContext) unit() *core.Unit {
	return pc.entity.Base()
}

func (pc parseContext) location() *core.Location {
	l, _ := pc.unit().Location(pc.loc)
	return l
}

// warn appends one line to the warning log.
func (pc parseContext) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if pc.entity != nil {
		msg = pc.unit().DisplayName() + ": " + msg
	}
	pc.res.warnings = append(pc.res.warnings, msg)
	pc.logger.Warn(msg)
}

// intAttr reads an optional integer attribute. A malformed value is logged
// and reported as absent.
func (pc parseContext) intAttr(el *xmltree.Element, name string) (int, bool) {
	s, ok := el.Attr(name)
	if !ok || strings.TrimSpace(s) == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		pc.warn("invalid %s value %q in <%s>", name, s, el.Name)
		return 0, false
	}
	return v, true
}

// boolAttr reads an optional boolean attribute.
func boolAttr(el *xmltree.Element, name string) (bool, bool) {
	s, ok := el.Attr(name)
	if !ok || strings.TrimSpace(s) == "" {
		return false, false
	}
	return mul.ParseBool(s), true
}

// stringAttr returns a trimmed attribute value, or "" when absent.
func stringAttr(el *xmltree.Element, name string) string {
	return strings.TrimSpace(el.Value(name))
}
