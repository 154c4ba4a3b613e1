// Package mul holds the tag, attribute and sentinel names of the MUL unit
// list format, and the armor value mapping used at the file boundary.
package mul

import (
	"strconv"
	"strings"

	"github.com/megamek/mulkit/pkg/core"
)

// Version is written on the root element of generated files.
const Version = "0.49.19"

// Element names.
const (
	TagRecord     = "record"
	TagUnit       = "unit"
	TagEntity     = "entity"
	TagSurvivors  = "survivors"
	TagSalvage    = "salvage"
	TagDevastated = "devastated"
	TagKills      = "kills"
	TagKill       = "kill"
	TagPilot      = "pilot"

	TagLocation   = "location"
	TagArmor      = "armor"
	TagSlot       = "slot"
	TagMotive     = "motive"
	TagTurretLock = "turretlock"
	TagTurret2    = "turret2lock"
	TagStructural = "structural"
	TagHeat       = "heat"
	TagFuel       = "fuel"
	TagKF         = "KF"
	TagSail       = "sail"
	TagACriticals = "acriticals"
	TagTCriticals = "tcriticals"
	TagBombs      = "bombs"
	TagBomb       = "bomb"
	TagC3iSet     = "c3iset"
	TagC3iLink    = "c3i_link"
	TagBAMEA      = "modularEquipmentMount"
	TagBAAPM      = "antiPersonnelMount"
)

// Root and entity attributes.
const (
	AttrVersion = "version"

	AttrChassis           = "chassis"
	AttrModel             = "model"
	AttrType              = "type"
	AttrCommander         = "commander"
	AttrHidden            = "hidden"
	AttrOffboard          = "offboard"
	AttrOffboardDistance  = "offboard_distance"
	AttrOffboardDirection = "offboard_direction"
	AttrDeployment        = "deployment"
	AttrDeploymentZone    = "deploymentZone"
	AttrNeverDeployed     = "neverDeployed"
	AttrVelocity          = "velocity"
	AttrAltitude          = "altitude"
	AttrCamoCategory      = "camoCategory"
	AttrCamoFileName      = "camoFileName"
	AttrExternalID        = "externalId"
	AttrQuirks            = "quirks"
	AttrC3Master          = "c3MasterIs"
	AttrC3UUID            = "c3UUID"

	AttrKilled = "killed"
	AttrKiller = "killer"
)

// Pilot attributes.
const (
	AttrName              = "name"
	AttrNick              = "nick"
	AttrGunnery           = "gunnery"
	AttrGunneryL          = "gunneryL"
	AttrGunneryM          = "gunneryM"
	AttrGunneryB          = "gunneryB"
	AttrPiloting          = "piloting"
	AttrArtillery         = "artillery"
	AttrToughness         = "toughness"
	AttrInitBonus         = "initB"
	AttrCommandBonus      = "commandB"
	AttrHits              = "hits"
	AttrAdvantages        = "advantages"
	AttrEdge              = "edge"
	AttrImplants          = "implants"
	AttrEjected           = "ejected"
	AttrPortraitCategory  = "portraitCat"
	AttrPortraitFile      = "portraitFile"
	AttrAutoEject         = "autoeject"
	AttrCondEjectAmmo     = "condejectammo"
	AttrCondEjectEngine   = "condejectengine"
	AttrCondEjectCTDest   = "condejectctdest"
	AttrCondEjectHeadshot = "condejectheadshot"
)

// Location, armor and slot attributes.
const (
	AttrIndex        = "index"
	AttrIsDestroyed  = "isDestroyed"
	AttrIsBreached   = "isBreached"
	AttrPoints       = "points"
	AttrIsHit        = "isHit"
	AttrIsRepairable = "isRepairable"
	AttrMunition     = "munition"
	AttrShots        = "shots"
	AttrRapidFire    = "rfmg"
	AttrTrooperMiss  = "trooperMiss"
)

// Attributes of the variant specific elements.
const (
	AttrMotiveDamage  = "motiveDamage"
	AttrMotivePenalty = "motivePenalty"
	AttrDirection     = "direction"
	AttrIntegrity     = "integrity"
	AttrSinks         = "sinks"
	AttrLeft          = "left"

	AttrAvionics    = "avionics"
	AttrSensors     = "sensors"
	AttrEngine      = "engine"
	AttrFCS         = "fcs"
	AttrCIC         = "cic"
	AttrLeftThrust  = "leftThrust"
	AttrRightThrust = "rightThrust"
	AttrLifeSupport = "lifeSupport"
	AttrGear        = "gear"
	AttrDriver      = "driver"

	AttrLoad = "load"
	AttrLink = "link"

	AttrBAMEAMountLoc = "baMEAMountLoc"
	AttrBAMEATypeName = "baMEATypeName"
	AttrBAAPMMountNum = "baAPMMountNum"
	AttrBAAPMTypeName = "baAPMTypeName"
)

// Sentinel values.
const (
	NotApplicable = "N/A"
	Destroyed     = "Destroyed"
	Dead          = "Dead"
	Empty         = "Empty"
	Hit           = "hit"

	ArmorRear     = "Rear"
	ArmorInternal = "Internal"
)

// FormatArmor renders an armor value as it appears in a file.
func FormatArmor(v core.ArmorValue) string {
	switch v.State {
	case core.ArmorNotApplicable:
		return NotApplicable
	case core.ArmorDestroyed:
		return Destroyed
	}
	return strconv.Itoa(v.Points)
}

// ParseArmor reads an armor value: "N/A", "Destroyed" or a count within
// 0..core.MaxArmorPoints.
func ParseArmor(s string) (core.ArmorValue, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, NotApplicable):
		return core.NotApplicable, nil
	case strings.EqualFold(s, Destroyed):
		return core.Destroyed, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return core.ArmorValue{}, err
	}
	if n < 0 || n > core.MaxArmorPoints {
		return core.ArmorValue{}, &RangeError{Value: n, Max: core.MaxArmorPoints}
	}
	return core.Points(n), nil
}

// RangeError reports a number outside its permitted range.
type RangeError struct {
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return strconv.Itoa(e.Value) + " is outside 0.." + strconv.Itoa(e.Max)
}

// ParseBool reads the boolean attribute forms found in unit files.
func ParseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
