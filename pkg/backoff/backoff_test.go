package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	tests := []struct {
		name    string
		base    time.Duration
		max     time.Duration
		attempt int
		want    time.Duration
	}{
		{"first attempt", time.Second, 10 * time.Second, 0, time.Second},
		{"second attempt", time.Second, 10 * time.Second, 1, 2 * time.Second},
		{"third attempt", time.Second, 10 * time.Second, 2, 4 * time.Second},
		{"capped", time.Second, 10 * time.Second, 4, 10 * time.Second},
		{"huge attempt saturates", time.Second, 10 * time.Second, 200, 10 * time.Second},
		{"negative attempt", time.Second, 10 * time.Second, -1, time.Second},
		{"zero base", 0, 10 * time.Second, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Exponential(tt.base, tt.max, tt.attempt))
		})
	}
}

func TestExponentialJitterBounds(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	for attempt := 0; attempt < 6; attempt++ {
		lower := min(base*time.Duration(1<<attempt), max)
		upper := min(lower+DefaultJitter, max)
		for i := 0; i < 200; i++ {
			d := ExponentialJitter(base, max, attempt, DefaultJitter)
			assert.GreaterOrEqual(t, d, lower, "attempt %d", attempt)
			assert.LessOrEqual(t, d, upper, "attempt %d", attempt)
		}
	}
}

func TestExponentialJitterWithoutJitter(t *testing.T) {
	assert.Equal(t, 4*time.Second, ExponentialJitter(time.Second, 10*time.Second, 2, 0))
}
