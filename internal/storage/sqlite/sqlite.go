// Package sqlitestorage implements the storage.Backend interface with a
// SQLite database. It wraps the GORM backend via composition and adds
// optional dumps of an in-memory database to disk via VACUUM INTO.
package sqlitestorage

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/megamek/mulkit/internal/database"
	gormstorage "github.com/megamek/mulkit/internal/storage/gorm"
	"gorm.io/gorm"
)

// Config holds configuration for the SQLite storage backend.
type Config struct {
	Path         string // empty for an in-memory database
	DumpPath     string // Path for VACUUM INTO dumps of an in-memory database
	DumpInterval time.Duration
}

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	db       *gorm.DB
	cfg      Config
	log      *slog.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New opens the SQLite database and creates the backend.
func New(cfg Config, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := database.GetSqliteDB(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite DB: %w", err)
	}

	return &Backend{
		Backend:  gormstorage.New(gormstorage.Dependencies{DB: db, Logger: logger}),
		db:       db,
		cfg:      cfg,
		log:      logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Init migrates the schema and starts the dump goroutine.
func (b *Backend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}

	if b.dumps() && b.cfg.DumpInterval > 0 {
		b.wg.Add(1)
		go b.dumpLoop()
	}

	return nil
}

// Close stops the dump goroutine, writes a final dump and closes the
// database.
func (b *Backend) Close() error {
	close(b.stopChan)
	b.wg.Wait()
	if b.dumps() {
		if err := database.DumpMemoryDBToDisk(b.db, b.cfg.DumpPath); err != nil {
			b.log.Error("Final dump failed", "path", b.cfg.DumpPath, "error", err)
		}
	}
	return b.Backend.Close()
}

func (b *Backend) dumps() bool {
	return b.cfg.Path == "" && b.cfg.DumpPath != ""
}

// dumpLoop periodically dumps the in-memory SQLite database to disk.
func (b *Backend) dumpLoop() {
	defer b.wg.Done()
	ticker := time.NewTicker(b.cfg.DumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			start := time.Now()
			if err := database.DumpMemoryDBToDisk(b.db, b.cfg.DumpPath); err != nil {
				b.log.Error("Error dumping to disk", "path", b.cfg.DumpPath, "error", err)
			} else {
				b.log.Debug("Dumped to disk", "path", b.cfg.DumpPath, "duration", time.Since(start))
			}
		}
	}
}
