// Package postgres implements the storage.Backend interface using
// GORM/PostgreSQL. When Postgres is unreachable the database manager falls
// back to SQLite.
package postgres

import (
	"fmt"
	"log/slog"

	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/database"
	gormstorage "github.com/megamek/mulkit/internal/storage/gorm"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Dependencies holds all dependencies for the Postgres storage backend.
type Dependencies struct {
	DB         *gorm.DB // injected connection; Config is ignored when set
	Config     config.DBConfig
	SqlitePath string // fallback database, empty for in-memory
	Logger     *slog.Logger
	DBLogger   zerolog.Logger
}

// Backend implements storage.Backend using GORM/PostgreSQL. Init must be
// called before any other method.
type Backend struct {
	*gormstorage.Backend
	deps    Dependencies
	manager *database.Manager
}

// New creates a new Postgres storage backend.
func New(deps Dependencies) *Backend {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Backend{deps: deps}
}

// Init connects if no DB was injected, then migrates the schema.
func (b *Backend) Init() error {
	db := b.deps.DB
	if db == nil {
		b.manager = database.NewManager(b.deps.DBLogger, b.deps.Config, b.deps.SqlitePath)
		if err := b.manager.Connect(); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if b.manager.ShouldSaveLocal {
			b.deps.Logger.Warn("Postgres unavailable, using SQLite", "path", b.deps.SqlitePath)
		}
		db = b.manager.DB
	}

	b.Backend = gormstorage.New(gormstorage.Dependencies{DB: db, Logger: b.deps.Logger})
	if err := b.Backend.Init(); err != nil {
		return fmt.Errorf("failed to setup DB: %w", err)
	}
	return nil
}

// Close closes the connection.
func (b *Backend) Close() error {
	if b.Backend == nil {
		return nil
	}
	return b.Backend.Close()
}

// UsingFallback reports whether Init fell back to SQLite.
func (b *Backend) UsingFallback() bool {
	return b.manager != nil && b.manager.ShouldSaveLocal
}
