package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamageTick(t *testing.T) {
	var d DamageTable
	d.Add(SystemPhasers, 1)
	d.Add(SystemWarpEngines, 3)

	fixed := d.Tick()

	assert.Equal(t, []System{SystemPhasers}, fixed)
	assert.Equal(t, 2, d.Severity(SystemWarpEngines))
	assert.False(t, d.IsDamaged(SystemPhasers))
	assert.Empty(t, (&DamageTable{}).Tick())
}

func TestFieldRepair(t *testing.T) {
	tests := []struct {
		name    string
		damaged []System
		skip    System
		want    System
		wantOK  bool
	}{
		{"searches forward", []System{SystemGalacticRecords}, SystemPhasers, SystemGalacticRecords, true},
		{"wraps around", []System{SystemWarpEngines}, SystemPhasers, SystemWarpEngines, true},
		{"nearest after skip", []System{SystemShortRangeSensors, SystemPhotonTorpedoes}, SystemPhasers, SystemPhotonTorpedoes, true},
		{"skip itself is never chosen", []System{SystemPhasers}, SystemPhasers, 0, false},
		{"nothing damaged", nil, SystemWarpEngines, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DamageTable
			for _, s := range tt.damaged {
				d.Add(s, 5)
			}

			got, ok := d.FieldRepair(tt.skip)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, 1, d.Severity(got))
			}
		})
	}
}

func TestRepairAll(t *testing.T) {
	var d DamageTable
	for s := range systemCount {
		d.Add(s, int(s)+1)
	}
	d.RepairAll()
	for s := range systemCount {
		assert.Zero(t, d.Severity(s), s.String())
	}
}

func TestSystemNames(t *testing.T) {
	assert.Equal(t, "WARP ENGINES", SystemWarpEngines.String())
	assert.Equal(t, "GALACTIC RECORDS", SystemGalacticRecords.String())
	assert.Equal(t, "UNKNOWN SYSTEM", System(99).String())
}
