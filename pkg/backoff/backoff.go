package backoff

import (
	"math"
	"math/rand/v2"
	"time"
)

// DefaultJitter is the upper bound of the random amount added to every delay.
const DefaultJitter = time.Second

// Exponential returns base*2^attempt capped at max. attempt is 0-indexed.
func Exponential(base, max time.Duration, attempt int) time.Duration {
	if base < 0 {
		base = 0
	}
	if max < 0 {
		max = 0
	}
	if attempt < 0 {
		attempt = 0
	}

	mul := math.Pow(2, float64(attempt))
	d := float64(base) * mul
	if d >= float64(max) || d >= math.MaxInt64 {
		return max
	}
	return time.Duration(d)
}

// ExponentialJitter returns min(base*2^attempt + rand[0, jitter), max).
// Jitter only ever adds to the exponential delay.
func ExponentialJitter(base, max time.Duration, attempt int, jitter time.Duration) time.Duration {
	d := Exponential(base, max, attempt)
	if d >= max {
		return max
	}
	if jitter > 0 {
		d += rand.N(jitter)
	}
	return min(d, max)
}
