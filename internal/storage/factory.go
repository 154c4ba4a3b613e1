package storage

import (
	"fmt"
	"log/slog"

	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/storage/memory"
	"github.com/megamek/mulkit/internal/storage/postgres"
	sqlitestorage "github.com/megamek/mulkit/internal/storage/sqlite"
	"github.com/rs/zerolog"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, logger *slog.Logger, zlog zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return postgres.New(postgres.Dependencies{
			Config:     cfg.DB,
			SqlitePath: cfg.SQLite.Path,
			Logger:     logger,
			DBLogger:   zlog,
		}), nil
	case "sqlite":
		return sqlitestorage.New(sqlitestorage.Config{
			Path:         cfg.SQLite.Path,
			DumpPath:     cfg.SQLite.DumpPath,
			DumpInterval: cfg.SQLite.DumpInterval,
		}, logger)
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
