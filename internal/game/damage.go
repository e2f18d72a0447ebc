package game

// System is one damageable ship subsystem.
type System int

const (
	SystemWarpEngines System = iota
	SystemShortRangeSensors
	SystemLongRangeSensors
	SystemPhasers
	SystemPhotonTorpedoes
	SystemGalacticRecords

	systemCount
)

var systemNames = [systemCount]string{
	"WARP ENGINES",
	"SHORT RANGE SENSORS",
	"LONG RANGE SENSORS",
	"PHASERS",
	"PHOTON TORPEDOES",
	"GALACTIC RECORDS",
}

func (s System) String() string {
	if s < 0 || s >= systemCount {
		return "UNKNOWN SYSTEM"
	}
	return systemNames[s]
}

// DamageTable holds the repair time, in stardates, left on each system.
// Zero means operational.
type DamageTable [systemCount]int

func (d *DamageTable) Severity(s System) int {
	return d[s]
}

func (d *DamageTable) IsDamaged(s System) bool {
	return d[s] > 0
}

func (d *DamageTable) Add(s System, years int) {
	d[s] += years
}

// RepairAll clears every entry.
func (d *DamageTable) RepairAll() {
	*d = DamageTable{}
}

// Tick advances repairs by one stardate and returns the systems that came
// back online.
func (d *DamageTable) Tick() []System {
	var fixed []System
	for s := range d {
		if d[s] == 0 {
			continue
		}
		d[s]--
		if d[s] == 0 {
			fixed = append(fixed, System(s))
		}
	}
	return fixed
}

// FieldRepair looks for a damaged system, starting after skip and wrapping
// around, and sets it one stardate from fixed. skip itself is never chosen.
func (d *DamageTable) FieldRepair(skip System) (System, bool) {
	for i := 1; i < int(systemCount); i++ {
		s := System((int(skip) + i) % int(systemCount))
		if d[s] > 0 {
			d[s] = 1
			return s, true
		}
	}
	return 0, false
}
