package core

// Tank is a combat vehicle.
type Tank struct {
	Unit

	MotiveDamage   int
	MotivePenalty  int
	Immobilized    bool
	EngineHitTaken bool

	SensorHits   int
	DriverHit    bool
	CommanderHit bool

	// Turrets is 0, 1 or 2 (dual turret).
	Turrets         int
	TurretLocked    [2]bool
	SecondaryFacing int

	pendingImmobile bool
	pendingEngine   bool
}

func NewTank(chassis, model string) *Tank {
	return &Tank{Unit: NewUnit(chassis, model)}
}

func (t *Tank) Base() *Unit              { return &t.Unit }
func (t *Tank) Kind() UnitKind           { return KindTank }
func (t *Tank) UsesPositionalAmmo() bool { return true }
func (t *Tank) OriginalWalkMP() int      { return t.WalkMP }

func (t *Tank) SetMotiveDamage(damage, penalty int) {
	t.MotiveDamage = damage
	t.MotivePenalty = penalty
}

// Immobilize marks the vehicle to be immobilized on the next ApplyDamage.
func (t *Tank) Immobilize() { t.pendingImmobile = true }

// EngineHit marks an engine critical to be applied on the next ApplyDamage.
func (t *Tank) EngineHit() { t.pendingEngine = true }

// ApplyDamage commits pending immobilization and engine damage.
func (t *Tank) ApplyDamage() {
	if t.pendingEngine {
		t.EngineHitTaken = true
		t.Immobilized = true
	}
	if t.pendingImmobile {
		t.Immobilized = true
	}
	t.pendingEngine = false
	t.pendingImmobile = false
}

func (t *Tank) SetSensorHits(n int)      { t.SensorHits = n }
func (t *Tank) SetDriverHit(hit bool)    { t.DriverHit = hit }
func (t *Tank) SetCommanderHit(hit bool) { t.CommanderHit = hit }

func (t *Tank) LockTurret(secondary bool, facing int) bool {
	idx := 0
	if secondary {
		idx = 1
	}
	if t.Turrets <= idx {
		return false
	}
	t.SecondaryFacing = facing
	t.TurretLocked[idx] = true
	return true
}
