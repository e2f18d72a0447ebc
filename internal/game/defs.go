package game

import "time"

// Defs holds the rule constants for one game.
type Defs struct {
	InitialEnergy    float64  // e0
	InitialTorpedoes int      // p0
	StartDate        StarDate // t0
	EndDate          StarDate // t9

	// Galaxy population. A quadrant holds enemies when a draw falls below
	// EnemyChance; the draw is then scaled by EnemyScale and every threshold
	// it is still below adds one more cruiser.
	EnemyChance     float64
	EnemyScale      float64
	EnemyThresholds []float64

	// A quadrant holds a base when a draw exceeds NoBaseChance.
	NoBaseChance float64

	// Stars per quadrant are floor(draw*StarSpread + StarMin).
	StarSpread float64
	StarMin    float64

	EnemyStrength    float64 // s9
	MaxEnemySlots    int
	PlacementRetries int

	TorpedoRange     int
	MaxWarp          float64
	DamagedWarpLimit float64
	LowEnergyRatio   float64

	StormChance   float64
	StormDelay    time.Duration
	HitAttenuator float64 // distance exponent for every hit
	EnemyFireRate float64 // share of an enemy's strength spent per volley
}

// DefaultDefs returns the classic parameter set.
func DefaultDefs() Defs {
	return Defs{
		InitialEnergy:    4000,
		InitialTorpedoes: 10,
		StartDate:        3421,
		EndDate:          3451,

		EnemyChance:     0.2075,
		EnemyScale:      64,
		EnemyThresholds: []float64{6.28, 3.28, 1.8, 0.08, 0.03, 0.01},

		NoBaseChance: 0.96,

		StarSpread: 8,
		StarMin:    1,

		EnemyStrength:    400,
		MaxEnemySlots:    8,
		PlacementRetries: 10000,

		TorpedoRange:     15,
		MaxWarp:          12,
		DamagedWarpLimit: 0.2,
		LowEnergyRatio:   0.1,

		StormChance:   0.25,
		StormDelay:    100 * time.Millisecond,
		HitAttenuator: 0.4,
		EnemyFireRate: 0.4,
	}
}
