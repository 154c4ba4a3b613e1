// Package worker parses batches of unit lists on a pool of goroutines and
// hands each parse run to the configured recorders.
package worker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/megamek/mulkit/internal/model"
	"github.com/megamek/mulkit/internal/model/convert"
	"github.com/megamek/mulkit/internal/parser"
)

// Recorder stores the summary of a parse run. storage.Backend and
// influx.Manager both satisfy it.
type Recorder interface {
	RecordParse(run model.ParseRun) error
}

// Dependencies holds all dependencies for the worker manager
type Dependencies struct {
	Logger    *slog.Logger
	Units     parser.Resolver
	Recorders []Recorder
}

// Outcome is the result of parsing one file.
type Outcome struct {
	Path   string
	Result *parser.Result
	Run    model.ParseRun
	Err    error

	index int
}

// Manager manages worker goroutines
type Manager struct {
	deps    Dependencies
	parser  *parser.Parser
	workers int
}

// NewManager creates a worker manager running up to workers parses at once.
func NewManager(deps Dependencies, workers int) (*Manager, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	p, err := parser.NewParser(deps.Logger, deps.Units)
	if err != nil {
		return nil, err
	}
	return &Manager{deps: deps, parser: p, workers: workers}, nil
}

// ParseFiles parses every path and returns the outcomes in input order.
// Paths not yet started when ctx is cancelled get ctx.Err().
func (m *Manager) ParseFiles(ctx context.Context, paths []string) []Outcome {
	jobs := make(chan int)
	done := &outcomes{}

	var wg sync.WaitGroup
	for w := 0; w < min(m.workers, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				done.push(m.parseOne(i, paths[i]))
			}
		}()
	}

	for i, path := range paths {
		if ctx.Err() != nil {
			done.push(Outcome{Path: path, Err: ctx.Err(), index: i})
			continue
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			done.push(Outcome{Path: path, Err: ctx.Err(), index: i})
		}
	}
	close(jobs)
	wg.Wait()

	return done.sorted()
}

func (m *Manager) parseOne(i int, path string) Outcome {
	start := time.Now()
	res, err := m.parser.ParseFile(path)
	if err != nil {
		m.deps.Logger.Error("Failed to parse unit list", "path", path, "error", err)
		return Outcome{Path: path, Err: err, index: i}
	}

	run := convert.ResultToParseRun(path, res, time.Since(start))
	for _, r := range m.deps.Recorders {
		if err := r.RecordParse(run); err != nil {
			m.deps.Logger.Error("Failed to record parse run", "path", path, "error", err)
		}
	}
	return Outcome{Path: path, Result: res, Run: run, index: i}
}

// outcomes collects results from the workers.
type outcomes struct {
	mu    sync.Mutex
	items []Outcome
}

func (o *outcomes) push(items ...Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, items...)
}

func (o *outcomes) sorted() []Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	sort.Slice(o.items, func(a, b int) bool { return o.items[a].index < o.items[b].index })
	return o.items
}
