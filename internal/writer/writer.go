// Package writer serializes entities back to the MUL unit list format.
package writer

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/megamek/mulkit/internal/mul"
	"github.com/megamek/mulkit/internal/parser"
	"github.com/megamek/mulkit/pkg/core"
)

// Kill is one entry of a record's kill table.
type Kill struct {
	Killed string
	Killer string
}

// Record is the content of a <record> document.
type Record struct {
	Units      []core.Entity
	Survivors  []core.Entity
	Salvage    []core.Entity
	Devastated []core.Entity
	Kills      []Kill
	Pilots     []*core.Crew
}

// RecordOf collects the sections of a parse result. Kills keep the order
// they were read in.
func RecordOf(res *parser.Result) Record {
	r := Record{
		Units:      res.Units(),
		Survivors:  res.Survivors(),
		Salvage:    res.Salvage(),
		Devastated: res.Devastated(),
		Pilots:     res.Pilots(),
	}
	kills := res.Kills()
	for _, killed := range res.KilledIDs() {
		r.Kills = append(r.Kills, Kill{Killed: killed, Killer: kills[killed]})
	}
	return r
}

// Write emits a <unit> list holding one <entity> per element of entities.
func Write(w io.Writer, entities []core.Entity) error {
	lw := newListWriter(w)
	lw.header()
	lw.start(mul.TagUnit, xml.Attr{Name: xml.Name{Local: mul.AttrVersion}, Value: mul.Version})
	for _, e := range entities {
		lw.entity(e)
	}
	lw.end(mul.TagUnit)
	return lw.finish()
}

// WriteRecord emits a <record> document. Empty sections are left out.
func WriteRecord(w io.Writer, r Record) error {
	lw := newListWriter(w)
	lw.header()
	lw.start(mul.TagRecord, xml.Attr{Name: xml.Name{Local: mul.AttrVersion}, Value: mul.Version})

	sections := []struct {
		tag  string
		list []core.Entity
	}{
		{mul.TagUnit, r.Units},
		{mul.TagSurvivors, r.Survivors},
		{mul.TagSalvage, r.Salvage},
		{mul.TagDevastated, r.Devastated},
	}
	for _, s := range sections {
		if len(s.list) == 0 {
			continue
		}
		lw.start(s.tag)
		for _, e := range s.list {
			lw.entity(e)
		}
		lw.end(s.tag)
	}

	if len(r.Kills) > 0 {
		lw.start(mul.TagKills)
		for _, k := range r.Kills {
			var a attrs
			a.add(mul.AttrKilled, k.Killed)
			a.add(mul.AttrKiller, k.Killer)
			lw.empty(mul.TagKill, a...)
		}
		lw.end(mul.TagKills)
	}

	for _, crew := range r.Pilots {
		lw.empty(mul.TagPilot, pilotAttrs(crew)...)
	}

	lw.end(mul.TagRecord)
	return lw.finish()
}

// SaveFile writes a <unit> list to path. The file is flushed and closed
// before SaveFile returns.
func SaveFile(path string, entities []core.Entity) error {
	return saveFile(path, func(w io.Writer) error { return Write(w, entities) })
}

// SaveRecordFile writes a <record> document to path.
func SaveRecordFile(path string, r Record) error {
	return saveFile(path, func(w io.Writer) error { return WriteRecord(w, r) })
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create unit list file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// listWriter wraps the token encoder and keeps the first error.
type listWriter struct {
	w   io.Writer
	enc *xml.Encoder
	err error
}

func newListWriter(w io.Writer) *listWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	return &listWriter{w: w, enc: enc}
}

func (lw *listWriter) header() {
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, xml.Header)
	}
}

func (lw *listWriter) token(t xml.Token) {
	if lw.err == nil {
		lw.err = lw.enc.EncodeToken(t)
	}
}

func (lw *listWriter) start(name string, a ...xml.Attr) {
	lw.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: a})
}

func (lw *listWriter) end(name string) {
	lw.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (lw *listWriter) empty(name string, a ...xml.Attr) {
	lw.start(name, a...)
	lw.end(name)
}

func (lw *listWriter) comment(text string) {
	lw.token(xml.Comment(" " + text + " "))
}

func (lw *listWriter) finish() error {
	if lw.err == nil {
		lw.err = lw.enc.Flush()
	}
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, "\n")
	}
	return lw.err
}

// attrs builds an attribute list in the order values are added.
type attrs []xml.Attr

func (a *attrs) add(name, value string) {
	*a = append(*a, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (a *attrs) addInt(name string, v int) {
	a.add(name, strconv.Itoa(v))
}

func (a *attrs) addBool(name string, v bool) {
	a.add(name, strconv.FormatBool(v))
}
