package report

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordDoc = `<record version="0.49.19">
  <unit>
    <entity chassis="Atlas" model="AS7-D" externalId="a1">
      <pilot name="Morgan Kell" gunnery="2" piloting="3" hits="2"/>
      <location index="0"><armor points="5"/></location>
      <location index="1"><armor points="0" type="Rear"/></location>
      <location index="2" isDestroyed="true"/>
    </entity>
    <entity chassis="Daishi" model="Prime"/>
  </unit>
  <salvage>
    <entity chassis="Locust" model="LCT-1V" externalId="s1"/>
  </salvage>
  <kills>
    <kill killed="s1" killer="a1"/>
  </kills>
  <pilot name="Patrick Kell" gunnery="3" piloting="4" hits="Dead"/>
</record>`

var at = time.Date(3025, 4, 1, 12, 30, 0, 0, time.UTC)

func parseRecord(t *testing.T) *parser.Result {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := catalog.New(logger, nil)
	_, err := c.LoadFile(filepath.Join("..", "catalog", "testdata", "templates.json"))
	require.NoError(t, err)

	p, err := parser.NewParser(logger, c)
	require.NoError(t, err)
	res, err := p.Parse(strings.NewReader(recordDoc))
	require.NoError(t, err)
	return res
}

func TestBuild(t *testing.T) {
	rep := Build("lists/Kell Hounds.mul", parseRecord(t), at)

	assert.Equal(t, "0.49.19", rep.Version)
	assert.Equal(t, at, rep.GeneratedAt)

	require.Len(t, rep.Units, 1)
	atlas := rep.Units[0]
	assert.Equal(t, "Atlas AS7-D", atlas.Name)
	assert.Equal(t, "Mech", atlas.Kind)
	assert.Equal(t, "a1", atlas.ExternalID)
	require.NotNil(t, atlas.Crew)
	assert.Equal(t, "Morgan Kell", atlas.Crew.Name)
	assert.Equal(t, 2, atlas.Crew.Hits)
	assert.False(t, atlas.Crew.Dead)

	head := atlas.Locations[0]
	assert.Equal(t, "5/9", head.Armor)
	assert.Equal(t, "3/3", head.Internal)
	assert.Empty(t, head.Rear)

	ct := atlas.Locations[1]
	assert.Equal(t, "47/47", ct.Armor)
	assert.Equal(t, "0/14", ct.Rear)

	rt := atlas.Locations[2]
	assert.True(t, rt.Destroyed)
	assert.Equal(t, "Destroyed", rt.Armor)
	assert.Equal(t, "Destroyed", rt.Rear)
	assert.Equal(t, "Destroyed", rt.Internal)

	require.Len(t, rep.Salvage, 1)
	assert.Equal(t, "Locust LCT-1V", rep.Salvage[0].Name)
	assert.Empty(t, rep.Survivors)

	assert.Equal(t, []KillJSON{{Killed: "s1", Killer: "a1"}}, rep.Kills)

	require.Len(t, rep.Pilots, 1)
	assert.Equal(t, "Patrick Kell", rep.Pilots[0].Name)
	assert.True(t, rep.Pilots[0].Dead)

	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "Daishi")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		compress bool
		want     string
	}{
		{"plain", "/data/lance.mul", false, "lance_30250401_123000.json"},
		{"compressed", "lance.mul", true, "lance_30250401_123000.json.gz"},
		{"spaces and colons", "Kell Hounds: 1st.mul", false, "Kell_Hounds__1st_30250401_123000.json"},
		{"empty", "", false, "unitlist_30250401_123000.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.source, at, tt.compress))
		})
	}
}

func TestExport_JSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := Build("lance.mul", parseRecord(t), at)

	path, err := Export(config.ExportConfig{OutputDir: dir}, rep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lance_30250401_123000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rep.Units[0].Name, got.Units[0].Name)
	assert.Equal(t, rep.Kills, got.Kills)
}

func TestExport_Gzip(t *testing.T) {
	dir := t.TempDir()
	rep := Build("lance.mul", parseRecord(t), at)

	path, err := Export(config.ExportConfig{OutputDir: dir, CompressOutput: true}, rep)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json.gz"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, "0.49.19", got.Version)
	assert.Len(t, got.Warnings, 1)
}

func TestExport_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Export(config.ExportConfig{OutputDir: filepath.Join(file, "sub")}, Report{Source: "x.mul"})
	assert.Error(t, err)
}
