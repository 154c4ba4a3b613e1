package core

import (
	"sort"
	"strings"
)

// OptionGroup names a family of crew or unit options.
type OptionGroup string

const (
	GroupAdvantages   OptionGroup = "advantages"
	GroupEdge         OptionGroup = "edge"
	GroupImplants     OptionGroup = "md_implants"
	GroupQuirks       OptionGroup = "quirks"
	GroupWeaponQuirks OptionGroup = "weapon_quirks"
)

// optionDefs maps each known option name to its group.
var optionDefs = map[string]OptionGroup{}

func defineOptions(g OptionGroup, names ...string) {
	for _, n := range names {
		optionDefs[n] = g
	}
}

func init() {
	defineOptions(GroupAdvantages,
		"blood_stalker", "dodge_maneuver", "gunnery_ballistic", "gunnery_laser",
		"gunnery_missile", "hot_dog", "iron_man", "jumping_jack", "maneuvering_ace",
		"melee_specialist", "multi_tasker", "oblique_attacker", "pain_resistance",
		"sandblaster", "sniper", "specialist", "tactical_genius", "weapon_specialist",
	)
	defineOptions(GroupEdge,
		"edge", "edge_when_explosion", "edge_when_headhit", "edge_when_ko",
		"edge_when_masc_fails", "edge_when_tac",
	)
	defineOptions(GroupImplants,
		"boost_comm_implant", "bvdni", "comm_implant", "cyber_imp_audio",
		"cyber_imp_laser", "cyber_imp_visual", "pain_shunt", "vdni",
	)
	defineOptions(GroupQuirks,
		"battle_computer", "command_mech", "cramped_cockpit", "easy_maintain",
		"hard_pilot", "imp_target_short", "improved_sensors", "no_eject",
		"poor_performance", "rugged_1", "sensor_ghosts", "ubiquitous_is",
	)
	defineOptions(GroupWeaponQuirks,
		"ammo_feed_problems", "imp_accuracy", "imp_cooling", "inacc_weapon",
		"jettison_capable", "mod_weapons", "poor_cooling", "stable_weapon",
	)
}

// Options is a set of enabled options with optional values, restricted to
// the groups it was created for.
type Options struct {
	groups []OptionGroup
	values map[string]string
}

// NewOptions returns an empty set accepting options of the given groups.
func NewOptions(groups ...OptionGroup) *Options {
	return &Options{groups: groups, values: make(map[string]string)}
}

// NewCrewOptions returns the option set carried by a crew.
func NewCrewOptions() *Options {
	return NewOptions(GroupAdvantages, GroupEdge, GroupImplants)
}

func (o *Options) accepts(g OptionGroup) bool {
	for _, og := range o.groups {
		if og == g {
			return true
		}
	}
	return false
}

// Set enables an option. It returns false if name is not defined in one of
// the set's groups.
func (o *Options) Set(name, value string) bool {
	g, ok := optionDefs[name]
	if !ok || !o.accepts(g) {
		return false
	}
	o.values[name] = value
	return true
}

func (o *Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

func (o *Options) Value(name string) string {
	return o.values[name]
}

func (o *Options) Len() int {
	return len(o.values)
}

// Apply decodes a colon-delimited option list. Each entry is an option name,
// optionally followed by a space and a value. Empty entries are skipped.
// Names that are not defined are returned and left unset.
func (o *Options) Apply(encoded string) (unknown []string) {
	for _, entry := range strings.Split(encoded, ":") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, _ := strings.Cut(entry, " ")
		if !o.Set(name, strings.TrimSpace(value)) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Encode renders the enabled options of group g as "name::name value", sorted
// by name. An empty group returns "".
func (o *Options) Encode(g OptionGroup) string {
	names := make([]string, 0, len(o.values))
	for n := range o.values {
		if optionDefs[n] == g {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if v := o.values[n]; v != "" {
			parts = append(parts, n+" "+v)
		} else {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "::")
}
