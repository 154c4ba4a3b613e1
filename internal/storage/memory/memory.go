// Package memory implements storage.Backend with in-process maps. Nothing
// survives Close.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/model"
	"github.com/megamek/mulkit/internal/model/convert"
)

// Backend stores templates and parse runs in memory
type Backend struct {
	templates map[string]catalog.Template // keyed by convert.TemplateKey
	runs      []model.ParseRun

	idCounter uint
	mu        sync.RWMutex
}

// New creates a new memory backend
func New() *Backend {
	return &Backend{
		templates: make(map[string]catalog.Template),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// PutTemplate adds or replaces a template
func (b *Backend) PutTemplate(t *catalog.Template) error {
	if t == nil || t.Chassis == "" {
		return fmt.Errorf("template has no chassis")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.templates[convert.TemplateKey(t.Name())] = *t
	return nil
}

// PutTemplates adds or replaces several templates
func (b *Backend) PutTemplates(ts []*catalog.Template) error {
	for _, t := range ts {
		if err := b.PutTemplate(t); err != nil {
			return err
		}
	}
	return nil
}

// GetTemplate looks a template up by name, ignoring case
func (b *Backend) GetTemplate(name string) (*catalog.Template, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	t, ok := b.templates[convert.TemplateKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
	}
	return &t, nil
}

// ListTemplates returns the stored template names, sorted
func (b *Backend) ListTemplates() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.templates))
	for _, t := range b.templates {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names, nil
}

// RecordParse appends a parse run and assigns its ID
func (b *Backend) RecordParse(run model.ParseRun) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.idCounter++
	run.ID = b.idCounter
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	b.runs = append(b.runs, run)
	return nil
}

// ParseRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (b *Backend) ParseRuns(limit int) ([]model.ParseRun, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := len(b.runs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.ParseRun, 0, n)
	for i := len(b.runs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, b.runs[i])
	}
	return out, nil
}
