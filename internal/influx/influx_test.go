package influx

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() model.ParseRun {
	return model.ParseRun{
		CreatedAt:   time.Unix(1700000000, 0),
		Source:      "/tmp/lists/Lance A.mul",
		FileVersion: "0.49.19",
		Entities:    4,
		Survivors:   3,
		Salvage:     1,
		Pilots:      2,
		Kills:       1,
		Warnings:    2,
		DurationMs:  1.5,
	}
}

func TestParsePoint(t *testing.T) {
	p := ParsePoint(testRun())

	assert.Equal(t, Measurement, p.Name())
	tags := map[string]string{}
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, map[string]string{"source": "Lance A.mul", "version": "0.49.19"}, tags)

	fields := map[string]any{}
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, int64(4), fields["entities"])
	assert.Equal(t, int64(0), fields["devastated"])
	assert.Equal(t, int64(2), fields["warnings"])
	assert.InDelta(t, 1.5, fields["duration_ms"], 0.001)
	assert.Equal(t, time.Unix(1700000000, 0), p.Time())
}

func TestParsePoint_NoVersion(t *testing.T) {
	run := testRun()
	run.FileVersion = ""
	run.CreatedAt = time.Time{}

	p := ParsePoint(run)
	assert.Len(t, p.TagList(), 1)
	assert.False(t, p.Time().IsZero())
}

func TestConnect_Disabled(t *testing.T) {
	m := NewManager(zerolog.Nop(), config.InfluxConfig{}, "")
	assert.Error(t, m.Connect(context.Background()))
	assert.NoError(t, m.Close())
}

func TestWritePoint_NotConnected(t *testing.T) {
	m := NewManager(zerolog.Nop(), config.InfluxConfig{}, "")
	assert.Error(t, m.RecordParse(testRun()))
}

func TestConnect_FallsBackToBackup(t *testing.T) {
	backup := filepath.Join(t.TempDir(), "influx", "backup.lp.gz")
	cfg := config.InfluxConfig{
		Enabled:  true,
		Protocol: "http",
		Host:     "127.0.0.1",
		Port:     "1",
		Org:      "mulkit",
		Bucket:   "mulkit",
	}
	m := NewManager(zerolog.Nop(), cfg, backup)
	assert.Equal(t, "http://127.0.0.1:1", m.URL())

	require.NoError(t, m.Connect(context.Background()))
	assert.False(t, m.IsValid)
	require.NotNil(t, m.BackupWriter)

	require.NoError(t, m.RecordParse(testRun()))
	require.NoError(t, m.Close())

	f, err := os.Open(backup)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)

	line := string(data)
	assert.True(t, strings.HasPrefix(line, `mul_parse,source=Lance\ A.mul,version=0.49.19 `), line)
	assert.Contains(t, line, "entities=4i")
	assert.True(t, strings.HasSuffix(line, "1700000000000000000\n"), line)
}

func TestRecordParse_ConcurrentBackup(t *testing.T) {
	const workers, perWorker = 8, 200
	backup := filepath.Join(t.TempDir(), "backup.lp.gz")
	cfg := config.InfluxConfig{Enabled: true, Protocol: "http", Host: "127.0.0.1", Port: "1"}
	m := NewManager(zerolog.Nop(), cfg, backup)
	require.NoError(t, m.Connect(context.Background()))
	require.False(t, m.IsValid)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				assert.NoError(t, m.RecordParse(testRun()))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, m.Close())
	assert.Error(t, m.RecordParse(testRun()))

	f, err := os.Open(backup)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, Measurement+","), line)
	}
}

func TestConnect_NoBackupPath(t *testing.T) {
	cfg := config.InfluxConfig{Enabled: true, Protocol: "http", Host: "127.0.0.1", Port: "1"}
	m := NewManager(zerolog.Nop(), cfg, "")
	assert.Error(t, m.Connect(context.Background()))
	m.Client.Close()
}
