package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/influx"
	"github.com/megamek/mulkit/internal/logging"
	intOtel "github.com/megamek/mulkit/internal/otel"
	"github.com/megamek/mulkit/internal/parser"
	"github.com/megamek/mulkit/internal/storage"
	"github.com/megamek/mulkit/internal/worker"
	"github.com/rs/zerolog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// ProgramName names the log files and the OTel service default.
const ProgramName = "mulkit"

// app holds the state shared by the subcommands for one run.
type app struct {
	start time.Time

	slogManager *logging.SlogManager
	logger      *slog.Logger
	zlog        zerolog.Logger
	logFile     *os.File
	logFilePath string
	otel        *intOtel.Provider

	backend storage.Backend
	catalog *catalog.Catalog
	influx  *influx.Manager
}

// newApp loads the configuration in configDir and sets up logging, storage,
// the catalog and the optional InfluxDB writer.
func newApp(configDir string) (*app, error) {
	a := &app{
		start:       time.Now(),
		slogManager: logging.NewSlogManager(),
	}
	a.slogManager.Setup(nil, "info", nil)
	a.logger = a.slogManager.Logger()

	if err := config.Load(configDir); err != nil {
		a.logger.Debug("Failed to load config, using defaults", "error", err)
	}

	a.setupLogging()

	backend, err := storage.NewBackend(config.GetStorageConfig(), a.slogManager.Component("storage"), a.zlog)
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := backend.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	a.backend = backend

	a.catalog = catalog.New(a.slogManager.Component("catalog"), backend)
	if file := config.GetString("catalog.file"); file != "" {
		n, err := a.catalog.LoadFile(file)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.logger.Info("Loaded catalog file", "path", file, "templates", n)
	}

	if influxCfg := config.GetInfluxConfig(); influxCfg.Enabled {
		backup := filepath.Join(config.GetString("logsDir"), "influx_backup.lp.gz")
		a.influx = influx.NewManager(a.zlog, influxCfg, backup)
		if err := a.influx.Connect(context.Background()); err != nil {
			a.logger.Warn("InfluxDB disabled", "error", err)
			a.influx = nil
		}
	}

	return a, nil
}

// setupLogging opens the run's log file, starts OTel when enabled and
// re-points slog and zerolog at the file.
func (a *app) setupLogging() {
	level := config.GetString("logLevel")
	logsDir := config.GetString("logsDir")

	var out io.Writer
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		a.logger.Warn("Failed to create logs directory", "error", err, "path", logsDir)
	} else {
		a.logFilePath = logging.LogFilePath(logsDir, ProgramName, a.start)
		f, err := os.OpenFile(a.logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			a.logger.Error("Failed to create/open log file!", "error", err, "path", a.logFilePath)
		} else {
			a.logFile = f
			out = f
		}
	}

	otelCfg := config.GetOTelConfig()
	if otelCfg.Enabled {
		provider, err := intOtel.New(intOtel.Config{
			Enabled:      otelCfg.Enabled,
			ServiceName:  otelCfg.ServiceName,
			BatchTimeout: otelCfg.BatchTimeout,
			LogWriter:    out,
			Endpoint:     otelCfg.Endpoint,
			Insecure:     otelCfg.Insecure,
		})
		if err != nil {
			a.logger.Error("Failed to initialize OTel provider", "error", err)
		} else {
			a.otel = provider
		}
	}

	var otelLogProvider *sdklog.LoggerProvider
	if a.otel != nil {
		otelLogProvider = a.otel.LoggerProvider()
	}
	a.slogManager.Setup(out, level, otelLogProvider)
	a.logger = a.slogManager.Logger()

	zlevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		zlevel = zerolog.InfoLevel
	}
	zout := io.Writer(os.Stderr)
	if out != nil {
		zout = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	a.zlog = zerolog.New(zout).Level(zlevel).With().Timestamp().Logger()

	if a.logFilePath != "" {
		a.logger.Info("Logging to file", "path", a.logFilePath)
	}
}

// parseFiles parses paths on workers goroutines and records every run in
// storage and InfluxDB.
func (a *app) parseFiles(ctx context.Context, paths []string, workers int) ([]worker.Outcome, error) {
	recorders := []worker.Recorder{a.backend}
	if a.influx != nil {
		recorders = append(recorders, a.influx)
	}
	m, err := worker.NewManager(worker.Dependencies{
		Logger:    a.slogManager.Component("parser"),
		Units:     a.catalog,
		Recorders: recorders,
	}, workers)
	if err != nil {
		return nil, err
	}
	return m.ParseFiles(ctx, paths), nil
}

// parse parses a single file.
func (a *app) parse(ctx context.Context, path string) (*parser.Result, error) {
	out, err := a.parseFiles(ctx, []string{path}, 1)
	if err != nil {
		return nil, err
	}
	return out[0].Result, out[0].Err
}

// Close releases everything newApp opened.
func (a *app) Close() {
	if a.catalog != nil {
		hits, misses := a.catalog.CacheStats()
		a.logger.Debug("Catalog cache", "templates", a.catalog.Len(), "hits", hits, "misses", misses)
	}
	if a.influx != nil {
		if err := a.influx.Close(); err != nil {
			a.logger.Error("Failed to close InfluxDB writer", "error", err)
		}
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("Failed to close storage backend", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.slogManager.Flush(ctx)
	if a.otel != nil {
		_ = a.otel.Shutdown(ctx)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
