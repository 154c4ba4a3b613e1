// Package core holds the unit model populated by the MUL reader and consumed
// by the list writer. It carries unit state only, not game rules.
package core

// ArmorState distinguishes real point counts from the two sentinel states a
// location side can be in.
type ArmorState uint8

const (
	ArmorNormal ArmorState = iota
	ArmorNotApplicable
	ArmorDestroyed
)

// MaxArmorPoints bounds any armor or internal value read from a file.
const MaxArmorPoints = 2000

// ArmorValue is the armor or internal structure of one side of a location:
// Normal(n), NotApplicable or Destroyed.
type ArmorValue struct {
	State  ArmorState
	Points int
}

var (
	NotApplicable = ArmorValue{State: ArmorNotApplicable}
	Destroyed     = ArmorValue{State: ArmorDestroyed}
)

// Points returns a normal armor value of n points.
func Points(n int) ArmorValue {
	return ArmorValue{State: ArmorNormal, Points: n}
}

func (a ArmorValue) IsNormal() bool        { return a.State == ArmorNormal }
func (a ArmorValue) IsDestroyed() bool     { return a.State == ArmorDestroyed }
func (a ArmorValue) IsNotApplicable() bool { return a.State == ArmorNotApplicable }

// Exceeds reports whether a is more than the original value orig allows.
// Sentinels never exceed; a normal count exceeds a sentinel original.
func (a ArmorValue) Exceeds(orig ArmorValue) bool {
	if a.State != ArmorNormal {
		return false
	}
	if orig.State != ArmorNormal {
		return true
	}
	return a.Points > orig.Points
}
