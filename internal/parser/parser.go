// Package parser reconstructs entities from MUL unit list files.
package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/xmltree"
	"github.com/megamek/mulkit/pkg/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Resolver turns chassis and model names into fresh entities.
type Resolver interface {
	Find(chassis, model string) (catalog.Summary, bool)
	Load(s catalog.Summary) (core.Entity, error)
}

// Parser reads unit lists. It holds no per-call state, so one Parser may
// serve concurrent Parse calls.
type Parser struct {
	logger *slog.Logger
	units  Resolver

	files    metric.Int64Counter
	entities metric.Int64Counter
	warnings metric.Int64Counter
	duration metric.Float64Histogram
}

// NewParser creates a parser resolving units through units.
// Uses the global OTel meter for metrics (no-op if not configured).
func NewParser(logger *slog.Logger, units Resolver) (*Parser, error) {
	p := &Parser{
		logger: logger,
		units:  units,
	}

	m := meter()
	var err error

	p.files, err = m.Int64Counter(
		"mul.files.parsed",
		metric.WithDescription("Unit list files parsed, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating files counter: %w", err)
	}

	p.entities, err = m.Int64Counter(
		"mul.entities.loaded",
		metric.WithDescription("Entities reconstructed, by list"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating entities counter: %w", err)
	}

	p.warnings, err = m.Int64Counter(
		"mul.warnings",
		metric.WithDescription("Recoverable anomalies found while parsing"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating warnings counter: %w", err)
	}

	p.duration, err = m.Float64Histogram(
		"mul.parse.duration",
		metric.WithDescription("Time spent parsing one unit list"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return p, nil
}

// ParseFile opens and parses the unit list at path.
func (p *Parser) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return newResult(), fmt.Errorf("error opening unit list: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads a unit list. Only a malformed document returns an error; in
// that case the returned Result is empty. Every other problem is recorded in
// the Result's warning log.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	ctx := context.Background()
	start := time.Now()
	res := newResult()

	root, err := xmltree.Read(r)
	if err != nil {
		p.files.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "malformed")))
		return res, fmt.Errorf("error reading unit list: %w", err)
	}

	pc := newParseContext(p.logger, res)
	p.parseRoot(pc, root)

	p.files.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	for list, n := range map[string]int{
		mul.TagUnit:       len(res.entities),
		mul.TagSurvivors:  len(res.survivors),
		mul.TagSalvage:    len(res.salvage),
		mul.TagDevastated: len(res.devastated),
	} {
		if n > 0 {
			p.entities.Add(ctx, int64(n), metric.WithAttributes(attribute.String("list", list)))
		}
	}
	if res.HasWarnings() {
		p.warnings.Add(ctx, int64(res.WarningCount()))
	}
	elapsed := time.Since(start)
	p.duration.Record(ctx, float64(elapsed.Microseconds())/1000)

	p.logger.Info("Parsed unit list",
		"root", root.Name,
		"entities", len(res.entities),
		"survivors", len(res.survivors),
		"salvage", len(res.salvage),
		"devastated", len(res.devastated),
		"pilots", len(res.pilots),
		"kills", len(res.kills),
		"warnings", res.WarningCount(),
		"duration", elapsed,
	)
	return res, nil
}

func (p *Parser) parseRoot(pc parseContext, root *xmltree.Element) {
	switch root.Name {
	case mul.TagRecord, mul.TagUnit, mul.TagEntity:
	default:
		pc.warn("not a unit list: root element is <%s>", root.Name)
		return
	}

	if v, ok := root.Attr(mul.AttrVersion); ok && v != "" {
		pc.res.Version = v
	} else {
		pc.warn("no version specified, correct parsing not guaranteed")
	}

	switch root.Name {
	case mul.TagRecord:
		p.parseRecord(pc, root)
	case mul.TagUnit:
		p.parseUnit(pc, root, &pc.res.entities)
	case mul.TagEntity:
		p.parseEntity(pc, root, &pc.res.entities)
	}
}

// parseRecord walks the sections of a campaign record.
func (p *Parser) parseRecord(pc parseContext, record *xmltree.Element) {
	for _, child := range record.Children {
		switch child.Name {
		case mul.TagUnit:
			p.parseUnit(pc, child, &pc.res.entities)
		case mul.TagEntity:
			p.parseEntity(pc, child, &pc.res.entities)
		case mul.TagSurvivors:
			p.parseUnit(pc, child, &pc.res.survivors)
		case mul.TagSalvage:
			p.parseUnit(pc, child, &pc.res.salvage)
		case mul.TagDevastated:
			p.parseUnit(pc, child, &pc.res.devastated)
		case mul.TagKills:
			p.parseKills(pc, child)
		case mul.TagPilot:
			if crew, ok := p.parsePilot(pc, child); ok {
				pc.res.pilots = append(pc.res.pilots, crew)
			}
		}
	}
}

// parseUnit reads every entity of a container into list.
func (p *Parser) parseUnit(pc parseContext, container *xmltree.Element, list *[]core.Entity) {
	for _, child := range container.Children {
		if child.Name == mul.TagEntity {
			p.parseEntity(pc, child, list)
		}
	}
}

func (p *Parser) parseKills(pc parseContext, kills *xmltree.Element) {
	for _, k := range kills.ChildrenNamed(mul.TagKill) {
		killed := stringAttr(k, mul.AttrKilled)
		killer := stringAttr(k, mul.AttrKiller)
		if killed == "" || killer == "" {
			pc.warn("kill record without killed or killer id")
			continue
		}
		pc.res.addKill(killed, killer)
	}
}
