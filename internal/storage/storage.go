// Package storage defines the persistent store for catalog templates and
// parse history.
package storage

import (
	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/model"
)

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Catalog templates. GetTemplate returns an error wrapping
	// catalog.ErrNotFound for unknown names.
	PutTemplate(t *catalog.Template) error
	PutTemplates(ts []*catalog.Template) error
	GetTemplate(name string) (*catalog.Template, error)
	ListTemplates() ([]string, error)

	// Parse history
	RecordParse(run model.ParseRun) error
	ParseRuns(limit int) ([]model.ParseRun, error)
}

var _ catalog.Source = Backend(nil)
