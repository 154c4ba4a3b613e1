package parser

import (
	"strings"

	"github.com/megamek/mulkit/pkg/core"
)

// Result holds everything read from one unit list. Lists keep document order.
type Result struct {
	Version string

	entities   []core.Entity
	survivors  []core.Entity
	salvage    []core.Entity
	devastated []core.Entity
	pilots     []*core.Crew
	kills      map[string]string
	killOrder  []string

	warnings []string
}

func newResult() *Result {
	return &Result{kills: make(map[string]string)}
}

// Entities returns the generic list followed by the survivors, without
// ejected crew placeholders.
func (r *Result) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(r.entities)+len(r.survivors))
	for _, list := range [][]core.Entity{r.entities, r.survivors} {
		for _, e := range list {
			if !core.IsPlaceholder(e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// Units returns the generic list as read, placeholders included.
func (r *Result) Units() []core.Entity { return r.entities }

func (r *Result) Survivors() []core.Entity  { return r.survivors }
func (r *Result) Salvage() []core.Entity    { return r.salvage }
func (r *Result) Devastated() []core.Entity { return r.devastated }

// Pilots returns the crews listed on their own, outside any entity.
func (r *Result) Pilots() []*core.Crew { return r.pilots }

// Kills returns a copy of the killed-to-killer external ID table.
func (r *Result) Kills() map[string]string {
	out := make(map[string]string, len(r.kills))
	for k, v := range r.kills {
		out[k] = v
	}
	return out
}

// KilledIDs returns the killed external IDs in document order.
func (r *Result) KilledIDs() []string { return r.killOrder }

func (r *Result) HasWarnings() bool { return len(r.warnings) > 0 }

// Warnings returns the warning log, one line per anomaly.
func (r *Result) Warnings() string {
	if len(r.warnings) == 0 {
		return ""
	}
	return strings.Join(r.warnings, "\n") + "\n"
}

// WarningCount returns the number of logged anomalies.
func (r *Result) WarningCount() int { return len(r.warnings) }

func (r *Result) addKill(killed, killer string) {
	if _, seen := r.kills[killed]; !seen {
		r.killOrder = append(r.killOrder, killed)
	}
	r.kills[killed] = killer
}
