package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	t.Parallel()

	base := time.Second
	for i := 0; i < 100; i++ {
		got := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	t.Parallel()

	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt int
		base    time.Duration
		max     time.Duration
		// нижняя и верхняя границы с учётом джиттера
		min     time.Duration
		ceiling time.Duration
	}{
		{name: "first attempt", attempt: 0, base: time.Second, max: 8 * time.Second, min: time.Second, ceiling: 1500 * time.Millisecond},
		{name: "doubles per attempt", attempt: 2, base: time.Second, max: 8 * time.Second, min: 4 * time.Second, ceiling: 6 * time.Second},
		{name: "capped at max", attempt: 10, base: time.Second, max: 8 * time.Second, min: 8 * time.Second, ceiling: 12 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for i := 0; i < 50; i++ {
				got := ExponentialBackoff(tt.base, tt.max, tt.attempt, DefaultJitter)
				assert.GreaterOrEqual(t, got, tt.min)
				assert.LessOrEqual(t, got, tt.ceiling)
			}
		})
	}
}
