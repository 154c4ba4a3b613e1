// Package gormstorage implements storage.Backend on top of any GORM
// dialect. The sqlite and postgres backends embed it.
package gormstorage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/database"
	"github.com/megamek/mulkit/internal/model"
	"github.com/megamek/mulkit/internal/model/convert"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize caps the rows per INSERT in PutTemplates.
const batchSize = 200

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB     *gorm.DB
	Logger *slog.Logger
}

// Backend implements storage.Backend with a GORM connection.
type Backend struct {
	deps Dependencies
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Backend{deps: deps}
}

// DB returns the underlying connection.
func (b *Backend) DB() *gorm.DB {
	return b.deps.DB
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return fmt.Errorf("no database connection")
	}
	return database.Migrate(b.deps.DB)
}

// Close closes the connection pool.
func (b *Backend) Close() error {
	if b.deps.DB == nil {
		return nil
	}
	sqlDB, err := b.deps.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// upsert replaces every column but the key when the key already exists.
var upsert = clause.OnConflict{
	Columns:   []clause.Column{{Name: "lookup_key"}},
	DoUpdates: clause.AssignmentColumns([]string{"updated_at", "name", "chassis", "model", "kind", "definition"}),
}

// PutTemplate inserts or replaces a template.
func (b *Backend) PutTemplate(t *catalog.Template) error {
	return b.PutTemplates([]*catalog.Template{t})
}

// PutTemplates inserts or replaces templates in batches.
func (b *Backend) PutTemplates(ts []*catalog.Template) error {
	rows := make([]model.UnitTemplate, 0, len(ts))
	seen := make(map[string]int, len(ts))
	for _, t := range ts {
		if t == nil || t.Chassis == "" {
			return fmt.Errorf("template has no chassis")
		}
		row, err := convert.TemplateToRow(t)
		if err != nil {
			return err
		}
		// a batch may not hit the same key twice in one statement
		if i, ok := seen[row.Key]; ok {
			rows[i] = row
			continue
		}
		seen[row.Key] = len(rows)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}

	err := b.deps.DB.Clauses(upsert).CreateInBatches(&rows, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to store templates: %w", err)
	}
	b.deps.Logger.Debug("Stored templates", "count", len(rows))
	return nil
}

// GetTemplate looks a template up by name, ignoring case.
func (b *Backend) GetTemplate(name string) (*catalog.Template, error) {
	var row model.UnitTemplate
	err := b.deps.DB.Where("lookup_key = ?", convert.TemplateKey(name)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query template %s: %w", name, err)
	}
	return convert.RowToTemplate(row)
}

// ListTemplates returns the stored template names, sorted.
func (b *Backend) ListTemplates() ([]string, error) {
	var names []string
	err := b.deps.DB.Model(&model.UnitTemplate{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return names, nil
}

// RecordParse stores a parse run.
func (b *Backend) RecordParse(run model.ParseRun) error {
	if err := b.deps.DB.Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record parse run: %w", err)
	}
	return nil
}

// ParseRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (b *Backend) ParseRuns(limit int) ([]model.ParseRun, error) {
	var runs []model.ParseRun
	q := b.deps.DB.Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to query parse runs: %w", err)
	}
	return runs, nil
}
