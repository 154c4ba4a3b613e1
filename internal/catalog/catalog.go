// Package catalog resolves unit names to templates and builds entities from
// them.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/megamek/mulkit/internal/cache"
	"github.com/megamek/mulkit/pkg/core"
)

// ErrNotFound is returned when a name is not in the catalog.
var ErrNotFound = errors.New("unit not found in catalog")

// Source is a persistent template store consulted on cache misses.
type Source interface {
	GetTemplate(name string) (*Template, error)
}

// Summary identifies a catalog entry returned by Lookup.
type Summary struct {
	Name     string
	template *Template
}

// Catalog is the master unit list. It is safe for concurrent use.
type Catalog struct {
	logger    *slog.Logger
	templates *cache.NameCache[*Template]
	source    Source
}

// New creates an empty catalog. source may be nil.
func New(logger *slog.Logger, source Source) *Catalog {
	return &Catalog{
		logger:    logger,
		templates: cache.NewNameCache[*Template](),
		source:    source,
	}
}

// Add registers a template after checking that it builds.
func (c *Catalog) Add(t *Template) error {
	if _, err := t.Build(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	c.templates.Add(t.Name(), t)
	return nil
}

// LoadFile reads a JSON array of templates and adds them all. Invalid
// templates are logged and skipped; the number added is returned.
func (c *Catalog) LoadFile(path string) (int, error) {
	templates, err := ReadTemplates(path)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, t := range templates {
		if err := c.Add(t); err != nil {
			c.logger.Warn("Skipping catalog entry", "name", t.Name(), "error", err)
			continue
		}
		added++
	}
	c.logger.Debug("Loaded catalog file", "path", path, "templates", added)
	return added, nil
}

// ReadTemplates decodes a JSON catalog file.
func ReadTemplates(path string) ([]*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	var templates []*Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("error decoding catalog file %s: %w", path, err)
	}
	return templates, nil
}

// Lookup finds the entry for an exact unit name.
func (c *Catalog) Lookup(name string) (Summary, bool) {
	if t, ok := c.templates.Get(name); ok {
		return Summary{Name: t.Name(), template: t}, true
	}
	if c.source == nil {
		return Summary{}, false
	}
	t, err := c.source.GetTemplate(name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Error("Catalog source lookup failed", "name", name, "error", err)
		}
		return Summary{}, false
	}
	c.templates.Add(t.Name(), t)
	return Summary{Name: t.Name(), template: t}, true
}

// Find tries "chassis model" first, then the bare chassis.
func (c *Catalog) Find(chassis, model string) (Summary, bool) {
	if model != "" {
		if s, ok := c.Lookup(chassis + " " + model); ok {
			return s, true
		}
	}
	return c.Lookup(chassis)
}

// Load builds a fresh entity for a looked up entry and gives it a C3 UUID.
func (c *Catalog) Load(s Summary) (core.Entity, error) {
	if s.template == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Name)
	}
	e, err := s.template.Build()
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", s.Name, err)
	}
	e.Base().EnsureC3UUID()
	return e, nil
}

// Names returns the cached catalog keys.
func (c *Catalog) Names() []string {
	return c.templates.Keys()
}

// Len returns the number of cached templates.
func (c *Catalog) Len() int {
	return c.templates.Len()
}

// CacheStats returns the cache hits and misses of name lookups so far.
func (c *Catalog) CacheStats() (hits, misses int) {
	return c.templates.Stats()
}
