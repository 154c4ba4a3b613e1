package core

import "strings"

// bombTypes lists external ordnance by internal name. The index of a name is
// its slot in BombLoad.
var bombTypes = []string{
	"HEBomb",
	"ClusterBomb",
	"LGBomb",
	"RLBomb",
	"TAGBomb",
	"AAAMissile Ammo",
	"ASMissile Ammo",
	"ASEWMissile Ammo",
	"ArrowIVMissile Ammo",
	"InfernoBomb",
	"ThunderBomb",
	"TorpedoBomb",
}

// NumBombTypes is the number of ordnance kinds a bay can carry.
var NumBombTypes = len(bombTypes)

// BombLoad holds the number of each ordnance kind carried, indexed like
// BombTypeName.
type BombLoad []int

// NewBombLoad returns an empty load.
func NewBombLoad() BombLoad {
	return make(BombLoad, NumBombTypes)
}

// BombIndex resolves an ordnance internal name, or returns -1.
func BombIndex(name string) int {
	for i, b := range bombTypes {
		if strings.EqualFold(b, name) {
			return i
		}
	}
	return -1
}

// BombTypeName returns the internal name of ordnance kind i.
func BombTypeName(i int) string {
	if i < 0 || i >= len(bombTypes) {
		return ""
	}
	return bombTypes[i]
}

// Total returns the number of ordnance items carried.
func (b BombLoad) Total() int {
	n := 0
	for _, v := range b {
		n += v
	}
	return n
}
