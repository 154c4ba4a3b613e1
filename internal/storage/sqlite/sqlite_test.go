package sqlitestorage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/database"
	"github.com/megamek/mulkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func wasp() *catalog.Template {
	return &catalog.Template{
		Chassis: "Wasp",
		Model:   "WSP-1A",
		Kind:    "mech",
		Locations: []catalog.LocationTemplate{
			{Name: "Head", Abbr: "HD", Armor: intp(6), Internal: intp(3)},
		},
	}
}

func TestFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.db")
	b, err := New(Config{Path: path}, nil)
	require.NoError(t, err)
	require.NoError(t, b.Init())

	require.NoError(t, b.PutTemplate(wasp()))
	require.NoError(t, b.RecordParse(model.ParseRun{Source: "lance.mul"}))
	require.NoError(t, b.Close())

	reopened, err := New(Config{Path: path}, nil)
	require.NoError(t, err)
	require.NoError(t, reopened.Init())
	defer reopened.Close()

	got, err := reopened.GetTemplate("wasp wsp-1a")
	require.NoError(t, err)
	assert.Equal(t, "Wasp", got.Chassis)

	runs, err := reopened.ParseRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestMemoryBackend_DumpsOnClose(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.db")
	b, err := New(Config{DumpPath: dump, DumpInterval: 10 * time.Millisecond}, nil)
	require.NoError(t, err)
	require.NoError(t, b.Init())

	require.NoError(t, b.PutTemplate(wasp()))
	require.NoError(t, b.Close())

	_, err = os.Stat(dump)
	require.NoError(t, err)

	db, err := database.GetSqliteDB(dump)
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.UnitTemplate{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(1))
}

func TestFileBackend_NoDump(t *testing.T) {
	b, err := New(Config{Path: filepath.Join(t.TempDir(), "a.db"), DumpPath: "ignored.db"}, nil)
	require.NoError(t, err)
	assert.False(t, b.dumps())
	require.NoError(t, b.Init())
	require.NoError(t, b.Close())
	_, err = os.Stat("ignored.db")
	assert.True(t, os.IsNotExist(err))
}
