package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSkill(t *testing.T) {
	tests := []struct {
		value    int
		expected bool
	}{
		{-1, false},
		{0, true},
		{4, true},
		{MaxSkill, true},
		{MaxSkill + 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ValidSkill(tt.value), "skill %d", tt.value)
	}
}

func TestNewCrew(t *testing.T) {
	c := NewCrew("Natasha Kerensky", 2, 3)
	assert.Equal(t, 2, c.GunneryL)
	assert.Equal(t, 2, c.GunneryM)
	assert.Equal(t, 2, c.GunneryB)
	assert.Equal(t, 2, c.Artillery)
	assert.Equal(t, DefaultExternalID, c.ExternalID)
	assert.False(t, c.IsDead())

	c.Hits = MaxHits
	assert.False(t, c.IsDead())
	c.Kill()
	assert.True(t, c.IsDead())
	assert.Equal(t, DeadHits, c.Hits)
}

func TestOptions_Apply(t *testing.T) {
	tests := []struct {
		name        string
		options     *Options
		encoded     string
		wantSet     map[string]string
		wantUnknown []string
	}{
		{
			name:    "double colon list with values",
			options: NewCrewOptions(),
			encoded: "dodge_maneuver::weapon_specialist Medium Laser::edge 3",
			wantSet: map[string]string{"dodge_maneuver": "", "weapon_specialist": "Medium Laser", "edge": "3"},
		},
		{
			name:    "empty entries skipped",
			options: NewCrewOptions(),
			encoded: ":::vdni::",
			wantSet: map[string]string{"vdni": ""},
		},
		{
			name:        "unknown names reported",
			options:     NewCrewOptions(),
			encoded:     "sniper::laser_eyes",
			wantSet:     map[string]string{"sniper": ""},
			wantUnknown: []string{"laser_eyes"},
		},
		{
			name:        "option from another group is rejected",
			options:     NewOptions(GroupQuirks),
			encoded:     "command_mech::sniper",
			wantSet:     map[string]string{"command_mech": ""},
			wantUnknown: []string{"sniper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := tt.options.Apply(tt.encoded)
			assert.Equal(t, tt.wantUnknown, unknown)
			assert.Equal(t, len(tt.wantSet), tt.options.Len())
			for name, value := range tt.wantSet {
				assert.True(t, tt.options.Has(name), name)
				assert.Equal(t, value, tt.options.Value(name))
			}
		})
	}
}

func TestOptions_Encode(t *testing.T) {
	o := NewCrewOptions()
	o.Apply("weapon_specialist Medium Laser::dodge_maneuver::edge 2::vdni")

	assert.Equal(t, "dodge_maneuver::weapon_specialist Medium Laser", o.Encode(GroupAdvantages))
	assert.Equal(t, "edge 2", o.Encode(GroupEdge))
	assert.Equal(t, "vdni", o.Encode(GroupImplants))
	assert.Equal(t, "", o.Encode(GroupQuirks))

	again := NewCrewOptions()
	assert.Empty(t, again.Apply(o.Encode(GroupAdvantages)))
	assert.True(t, again.Has("weapon_specialist"))
}
