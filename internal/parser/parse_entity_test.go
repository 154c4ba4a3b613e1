package parser

import (
	"testing"

	"github.com/megamek/mulkit/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, entity string) (core.Entity, *Result) {
	t.Helper()
	res := mustParse(t, unitDoc(entity))
	require.Len(t, res.Units(), 1, res.Warnings())
	return res.Units()[0], res
}

func TestEntityAttributes_NeverDeployed(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		expected bool
	}{
		{"absent defaults to true", ``, true},
		{"explicit false", ` neverDeployed="false"`, false},
		{"explicit true", ` neverDeployed="true"`, true},
		{"empty defaults to true", ` neverDeployed=""`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := parseOne(t, `<entity chassis="Atlas" model="AS7-D"`+tt.attr+`/>`)
			assert.Equal(t, tt.expected, e.Base().NeverDeployed)
		})
	}
}

func TestEntityAttributes_All(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D" type="Biped"
		commander="true" hidden="true"
		offboard="true" offboard_distance="17" offboard_direction="2"
		deployment="3" deploymentZone="5"
		camoCategory="Clans" camoFileName="wolf.png"
		externalId="42" quirks="command_mech::battle_computer"
		c3MasterIs="77" c3UUID="11111111-2222-3333-4444-555555555555"/>`)

	u := e.Base()
	assert.True(t, u.Commander)
	assert.True(t, u.Hidden)
	assert.True(t, u.OffBoard)
	assert.Equal(t, 17, u.OffBoardDistance)
	assert.Equal(t, 2, u.OffBoardDirection)
	assert.Equal(t, 3, u.DeployRound)
	assert.Equal(t, 5, u.DeployZone)
	require.NotNil(t, u.CamoCategory)
	assert.Equal(t, "Clans", *u.CamoCategory)
	require.NotNil(t, u.CamoFileName)
	assert.Equal(t, "wolf.png", *u.CamoFileName)
	assert.Equal(t, "42", u.ExternalID)
	assert.True(t, u.Quirks.Has("command_mech"))
	assert.True(t, u.Quirks.Has("battle_computer"))
	assert.Equal(t, "77", u.C3Master)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", u.C3UUID)
	assert.False(t, res.HasWarnings(), res.Warnings())
}

func TestEntityAttributes_Defaults(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D" camoCategory="" camoFileName=""/>`)

	u := e.Base()
	assert.Nil(t, u.CamoCategory)
	assert.Nil(t, u.CamoFileName)
	assert.Equal(t, core.DefaultExternalID, u.ExternalID)
	assert.NotEmpty(t, u.C3UUID)
	assert.False(t, u.OffBoard)
	assert.False(t, res.HasWarnings())
}

func TestEntityAttributes_Malformed(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Atlas" model="AS7-D" deployment="soon" deploymentZone="4"
		offboard="true" offboard_distance="far" offboard_direction="1" quirks="command_mech::flux_capacitor"/>`)

	u := e.Base()
	assert.Equal(t, 0, u.DeployRound)
	assert.Equal(t, 4, u.DeployZone)
	assert.False(t, u.OffBoard)
	assert.True(t, u.Quirks.Has("command_mech"))
	assert.Equal(t, 4, res.WarningCount(), res.Warnings())
	assert.Contains(t, res.Warnings(), "flux_capacitor")
}

func TestEntityAttributes_Flight(t *testing.T) {
	e, res := parseOne(t, `<entity chassis="Stuka" model="STU-K5" velocity="5" altitude="3"/>`)
	aero := e.(*core.Aero)
	assert.Equal(t, 5, aero.Movement.Velocity)
	assert.Equal(t, 5, aero.Movement.NextVelocity)
	assert.Equal(t, 3, aero.Movement.Altitude)
	assert.False(t, res.HasWarnings())

	// ground units ignore flight attributes
	e, res = parseOne(t, `<entity chassis="Atlas" model="AS7-D" velocity="5" altitude="3"/>`)
	assert.Equal(t, core.KindMech, e.Kind())
	assert.False(t, res.HasWarnings())
}
