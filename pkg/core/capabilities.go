package core

// Capability interfaces let readers reach variant state without knowing the
// concrete type. A variant implements only the ones that apply to it.

// AutoEjector is implemented by units whose pilot can eject automatically.
type AutoEjector interface {
	Ejection() *EjectionSettings
}

// Airborne is implemented by units that track velocity and altitude.
type Airborne interface {
	Flight() *FlightState
}

// MotiveSystem is implemented by ground vehicles with a damageable drive.
type MotiveSystem interface {
	SetMotiveDamage(damage, penalty int)
	OriginalWalkMP() int
	Immobilize()
	ApplyDamage()
}

// TurretMount is implemented by vehicles with one or two turrets.
type TurretMount interface {
	// LockTurret sets the secondary facing and locks the primary or
	// secondary turret. It returns false if that turret does not exist.
	LockTurret(secondary bool, facing int) bool
}

// TankCriticals is implemented by vehicles that track vehicle critical hits.
type TankCriticals interface {
	SetSensorHits(n int)
	EngineHit()
	SetDriverHit(hit bool)
	SetCommanderHit(hit bool)
	ApplyDamage()
}

// StructuralIntegrity is implemented by aerospace units.
type StructuralIntegrity interface {
	SetSI(si int)
}

// HeatSinkBank is implemented by units with a tracked heat sink count.
type HeatSinkBank interface {
	SetHeatSinks(n int)
}

// FuelTank is implemented by units that track fuel points.
type FuelTank interface {
	SetFuel(points int)
}

// KFDrive is implemented by units with a Kearny-Fuchida drive.
type KFDrive interface {
	SetKFIntegrity(n int)
}

// SolarSail is implemented by units with a jump sail.
type SolarSail interface {
	SetSailIntegrity(n int)
}

// AeroCriticals is implemented by units tracking aerospace critical hits.
type AeroCriticals interface {
	AeroCrits() *AeroCrits
}

// BombBays is implemented by units that carry external ordnance.
type BombBays interface {
	Bombs() BombLoad
	SetBombs(b BombLoad)
}

// MountKind picks which battle armor mount a swap targets.
type MountKind uint8

const (
	MountManipulator MountKind = iota
	MountAntiPersonnel
)

// ManipulatorMounts is implemented by battle armor with swappable
// manipulator and anti-personnel weapon mounts.
type ManipulatorMounts interface {
	// SwapMount replaces the equipment at mount position loc with type t.
	SwapMount(kind MountKind, loc int, t *EquipmentType) error
}

// PositionalAmmo is implemented by variants without indexed ammo slots,
// whose bins are addressed by mount order instead.
type PositionalAmmo interface {
	UsesPositionalAmmo() bool
}

// EjectionSettings are a pilot's auto-eject preferences.
type EjectionSettings struct {
	Auto            bool
	OnAmmoExplosion bool
	OnEngineHits    bool
	OnCTDestroyed   bool
	OnHeadshot      bool
}

// FlightState is the movement state of an airborne unit.
type FlightState struct {
	Velocity     int
	NextVelocity int
	Altitude     int
}

// AeroCrits are the critical hit counters of an aerospace unit.
type AeroCrits struct {
	Avionics    int
	Sensors     int
	Engine      int
	FCS         int
	CIC         int
	LeftThrust  int
	RightThrust int
	LifeSupport bool
	Gear        bool
}
