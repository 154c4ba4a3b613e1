package catalog

import (
	"fmt"
	"strings"

	"github.com/megamek/mulkit/pkg/core"
)

// Template is the undamaged definition of a unit, as stored in a catalog
// file or storage backend.
type Template struct {
	Chassis  string `json:"chassis"`
	Model    string `json:"model,omitempty"`
	Kind     string `json:"kind"`
	Movement string `json:"movement,omitempty"`
	WalkMP   int    `json:"walkMP,omitempty"`

	Crew      *CrewTemplate      `json:"crew,omitempty"`
	Locations []LocationTemplate `json:"locations"`
	Equipment []MountTemplate    `json:"equipment,omitempty"`

	Turrets  int `json:"turrets,omitempty"`
	Troopers int `json:"troopers,omitempty"`

	SI        int `json:"si,omitempty"`
	HeatSinks int `json:"heatSinks,omitempty"`
	Fuel      int `json:"fuel,omitempty"`
	KF        int `json:"kf,omitempty"`
	Sail      int `json:"sail,omitempty"`
}

// CrewTemplate is the default crew of a unit.
type CrewTemplate struct {
	Name     string `json:"name"`
	Gunnery  int    `json:"gunnery"`
	Piloting int    `json:"piloting"`
}

// LocationTemplate describes one location. A nil armor value means the side
// has no armor (N/A); a nil rear value means the location has no rear side.
type LocationTemplate struct {
	Name     string   `json:"name"`
	Abbr     string   `json:"abbr"`
	Armor    *int     `json:"armor"`
	Rear     *int     `json:"rear,omitempty"`
	Internal *int     `json:"internal"`
	Slots    []string `json:"slots,omitempty"`
}

// MountTemplate places equipment in a location.
type MountTemplate struct {
	Type       string `json:"type"`
	Location   int    `json:"location"`
	Rear       bool   `json:"rear,omitempty"`
	Slots      []int  `json:"slots,omitempty"`
	BAMountLoc *int   `json:"baMountLoc,omitempty"`
}

// Name is the catalog key of the template: "chassis model", or the chassis
// when there is no model.
func (t *Template) Name() string {
	if t.Model == "" {
		return t.Chassis
	}
	return t.Chassis + " " + t.Model
}

func armorOf(p *int) core.ArmorValue {
	if p == nil {
		return core.NotApplicable
	}
	return core.Points(*p)
}

// Build creates a fresh, undamaged entity from the template.
func (t *Template) Build() (core.Entity, error) {
	if strings.TrimSpace(t.Chassis) == "" {
		return nil, fmt.Errorf("template has no chassis")
	}
	kind, ok := core.ParseUnitKind(t.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown unit kind %q for %s", t.Kind, t.Name())
	}

	e := core.NewEntity(kind, t.Chassis, t.Model)
	u := e.Base()
	u.MovementMode = t.Movement
	u.WalkMP = t.WalkMP

	// placeholders come with their own location
	u.Locations = nil
	for _, lt := range t.Locations {
		var rear *core.ArmorValue
		if lt.Rear != nil {
			r := core.Points(*lt.Rear)
			rear = &r
		}
		l := core.NewLocation(lt.Name, lt.Abbr, armorOf(lt.Armor), rear, armorOf(lt.Internal), len(lt.Slots))
		for i, s := range lt.Slots {
			if s != "" {
				l.Slots[i] = core.NewSystemSlot(s)
			}
		}
		u.AddLocation(l)
	}

	for i, mt := range t.Equipment {
		et := core.EquipmentByName(mt.Type)
		if et == nil {
			return nil, fmt.Errorf("%s: equipment %d: unknown type %q", t.Name(), i, mt.Type)
		}
		if _, ok := u.Location(mt.Location); !ok {
			return nil, fmt.Errorf("%s: equipment %d: location %d out of range", t.Name(), i, mt.Location)
		}
		m := u.Mount(et, mt.Location, mt.Rear, mt.Slots...)
		if mt.BAMountLoc != nil {
			m.BAMountLoc = *mt.BAMountLoc
		}
	}

	if t.Crew != nil {
		u.Crew = core.NewCrew(t.Crew.Name, t.Crew.Gunnery, t.Crew.Piloting)
	}

	switch v := e.(type) {
	case *core.Tank:
		v.Turrets = t.Turrets
	case *core.BattleArmor:
		v.Troopers = t.Troopers
	case *core.Infantry:
		v.Troopers = t.Troopers
	case *core.Aero:
		v.SI, v.OSI = t.SI, t.SI
		v.HeatSinks, v.OHeatSinks = t.HeatSinks, t.HeatSinks
		v.Fuel, v.OFuel = t.Fuel, t.Fuel
	case *core.Jumpship:
		v.SI, v.OSI = t.SI, t.SI
		v.HeatSinks, v.OHeatSinks = t.HeatSinks, t.HeatSinks
		v.Fuel, v.OFuel = t.Fuel, t.Fuel
		v.KFIntegrity, v.OKFIntegrity = t.KF, t.KF
		v.SailIntegrity, v.OSailIntegrity = t.Sail, t.Sail
	}
	return e, nil
}
