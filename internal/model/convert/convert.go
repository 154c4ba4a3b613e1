// Package convert provides functions to convert between GORM models and the
// catalog and parser types
package convert

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/model"
	"github.com/megamek/mulkit/internal/parser"
	"gorm.io/datatypes"
)

// TemplateKey is the lookup key of a template name.
func TemplateKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TemplateToRow converts a catalog template to a GORM model.UnitTemplate.
// The whole template is kept as JSON in Definition.
func TemplateToRow(t *catalog.Template) (model.UnitTemplate, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return model.UnitTemplate{}, fmt.Errorf("failed to encode template %s: %w", t.Name(), err)
	}
	return model.UnitTemplate{
		Key:        TemplateKey(t.Name()),
		Name:       t.Name(),
		Chassis:    t.Chassis,
		Model:      t.Model,
		Kind:       t.Kind,
		Definition: datatypes.JSON(data),
	}, nil
}

// RowToTemplate decodes the template stored in a row.
func RowToTemplate(row model.UnitTemplate) (*catalog.Template, error) {
	var t catalog.Template
	if err := json.Unmarshal(row.Definition, &t); err != nil {
		return nil, fmt.Errorf("failed to decode template %s: %w", row.Name, err)
	}
	return &t, nil
}

// ResultToParseRun summarizes a parse result for the parse_runs table.
func ResultToParseRun(source string, res *parser.Result, d time.Duration) model.ParseRun {
	return model.ParseRun{
		Source:      source,
		FileVersion: res.Version,
		Entities:    len(res.Entities()),
		Survivors:   len(res.Survivors()),
		Salvage:     len(res.Salvage()),
		Devastated:  len(res.Devastated()),
		Pilots:      len(res.Pilots()),
		Kills:       len(res.KilledIDs()),
		Warnings:    res.WarningCount(),
		DurationMs:  float32(d.Microseconds()) / 1000,
		WarningLog:  res.Warnings(),
	}
}
