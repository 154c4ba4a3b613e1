// Package report exports a JSON summary of a parsed unit list.
package report

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/parser"
	"github.com/megamek/mulkit/pkg/core"
)

// Report is the root JSON structure
type Report struct {
	Source      string     `json:"source"`
	Version     string     `json:"version,omitempty"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Units       []UnitJSON `json:"units"`
	Survivors   []UnitJSON `json:"survivors,omitempty"`
	Salvage     []UnitJSON `json:"salvage,omitempty"`
	Devastated  []UnitJSON `json:"devastated,omitempty"`
	Pilots      []CrewJSON `json:"pilots,omitempty"`
	Kills       []KillJSON `json:"kills,omitempty"`
	Warnings    []string   `json:"warnings"`
}

// UnitJSON is one entity with its damage state
type UnitJSON struct {
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	ExternalID string         `json:"externalId"`
	Crew       *CrewJSON      `json:"crew,omitempty"`
	Locations  []LocationJSON `json:"locations,omitempty"`
}

// LocationJSON holds armor as "current/original", "N/A" or "Destroyed"
type LocationJSON struct {
	Name         string `json:"name"`
	Armor        string `json:"armor"`
	Rear         string `json:"rear,omitempty"`
	Internal     string `json:"internal"`
	Destroyed    bool   `json:"destroyed,omitempty"`
	Breached     bool   `json:"breached,omitempty"`
	DamagedSlots int    `json:"damagedSlots,omitempty"`
}

// CrewJSON is a pilot or crew
type CrewJSON struct {
	Name       string `json:"name"`
	Gunnery    int    `json:"gunnery"`
	Piloting   int    `json:"piloting"`
	Hits       int    `json:"hits"`
	Dead       bool   `json:"dead,omitempty"`
	Ejected    bool   `json:"ejected,omitempty"`
	ExternalID string `json:"externalId"`
}

// KillJSON credits a killed entity to its killer
type KillJSON struct {
	Killed string `json:"killed"`
	Killer string `json:"killer"`
}

// Build summarizes res.
func Build(source string, res *parser.Result, generatedAt time.Time) Report {
	rep := Report{
		Source:      source,
		Version:     res.Version,
		GeneratedAt: generatedAt,
		Units:       units(res.Units()),
		Survivors:   units(res.Survivors()),
		Salvage:     units(res.Salvage()),
		Devastated:  units(res.Devastated()),
		Warnings:    make([]string, 0, res.WarningCount()),
	}
	for _, c := range res.Pilots() {
		rep.Pilots = append(rep.Pilots, crew(c))
	}
	kills := res.Kills()
	for _, id := range res.KilledIDs() {
		rep.Kills = append(rep.Kills, KillJSON{Killed: id, Killer: kills[id]})
	}
	for _, line := range strings.Split(res.Warnings(), "\n") {
		if line != "" {
			rep.Warnings = append(rep.Warnings, line)
		}
	}
	return rep
}

func units(entities []core.Entity) []UnitJSON {
	out := make([]UnitJSON, 0, len(entities))
	for _, e := range entities {
		u := e.Base()
		j := UnitJSON{
			Name:       u.DisplayName(),
			Kind:       e.Kind().String(),
			ExternalID: u.ExternalID,
		}
		if u.Crew != nil {
			c := crew(u.Crew)
			j.Crew = &c
		}
		for _, l := range u.Locations {
			j.Locations = append(j.Locations, location(l))
		}
		out = append(out, j)
	}
	return out
}

func location(l *core.Location) LocationJSON {
	j := LocationJSON{
		Name:      l.Name,
		Armor:     armorText(l.Armor, l.OArmor),
		Internal:  armorText(l.Internal, l.OInternal),
		Destroyed: l.IsDestroyed(),
		Breached:  l.Breached,
	}
	if l.HasRear {
		j.Rear = armorText(l.RearArmor, l.ORearArmor)
	}
	for _, s := range l.Slots {
		if s != nil && s.Damaged() {
			j.DamagedSlots++
		}
	}
	return j
}

func armorText(cur, orig core.ArmorValue) string {
	switch {
	case cur.IsDestroyed():
		return "Destroyed"
	case cur.IsNotApplicable():
		return "N/A"
	case orig.IsNormal():
		return strconv.Itoa(cur.Points) + "/" + strconv.Itoa(orig.Points)
	default:
		return strconv.Itoa(cur.Points)
	}
}

func crew(c *core.Crew) CrewJSON {
	return CrewJSON{
		Name:       c.Name,
		Gunnery:    c.Gunnery,
		Piloting:   c.Piloting,
		Hits:       c.Hits,
		Dead:       c.IsDead(),
		Ejected:    c.Ejected,
		ExternalID: c.ExternalID,
	}
}

// FileName derives the export file name from the source path and time.
func FileName(source string, at time.Time, compress bool) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	name = strings.NewReplacer(" ", "_", ":", "_").Replace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "unitlist"
	}
	filename := fmt.Sprintf("%s_%s.json", name, at.Format("20060102_150405"))
	if compress {
		filename += ".gz"
	}
	return filename
}

// Export writes rep into cfg.OutputDir and returns the file path.
func Export(cfg config.ExportConfig, rep Report) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(cfg.OutputDir, FileName(rep.Source, rep.GeneratedAt, cfg.CompressOutput))

	var err error
	if cfg.CompressOutput {
		err = writeGzipJSON(outputPath, rep)
	} else {
		err = writeJSON(outputPath, rep)
	}
	if err != nil {
		return "", err
	}
	return outputPath, nil
}

func writeJSON(path string, data Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func writeGzipJSON(path string, data Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	if err := json.NewEncoder(gzWriter).Encode(data); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return gzWriter.Close()
}
