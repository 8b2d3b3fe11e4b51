package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from ProductionStatus
		to   ProductionStatus
		want bool
	}{
		{"queued to printing", ProductionQueued, ProductionPrinting, true},
		{"printing to pressing", ProductionPrinting, ProductionPressing, true},
		{"sewing to quality check", ProductionSewing, ProductionQualityCheck, true},
		{"ready to released", ProductionReady, ProductionReleased, true},
		{"skip ahead forbidden", ProductionQueued, ProductionSewing, false},
		{"same status forbidden", ProductionPrinting, ProductionPrinting, false},
		{"step back allowed", ProductionQualityCheck, ProductionSewing, true},
		{"step back two forbidden", ProductionQualityCheck, ProductionPressing, false},
		{"cancel from queued", ProductionQueued, ProductionCancelled, true},
		{"cancel from quality check", ProductionQualityCheck, ProductionCancelled, true},
		{"cancel released forbidden", ProductionReleased, ProductionCancelled, false},
		{"cancel cancelled forbidden", ProductionCancelled, ProductionCancelled, false},
		{"resurrect forbidden", ProductionCancelled, ProductionQueued, false},
		{"released is terminal", ProductionReleased, ProductionReady, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestParseProductionStatus(t *testing.T) {
	t.Parallel()

	got, ok := ParseProductionStatus("quality_check")
	assert.True(t, ok)
	assert.Equal(t, ProductionQualityCheck, got)

	_, ok = ParseProductionStatus("folding")
	assert.False(t, ok)
}

func TestParseCoverage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CoverageUpper, ParseCoverage("UPPER"))
	assert.Equal(t, CoverageLower, ParseCoverage(" lower "))
	assert.Equal(t, CoverageSet, ParseCoverage("Set"))
	// неизвестные значения трактуются как полный комплект
	assert.Equal(t, CoverageSet, ParseCoverage("sleeves"))
	assert.Equal(t, CoverageSet, ParseCoverage(""))
}
