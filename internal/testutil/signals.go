// Package testutil provides deterministic irregular-sampling fixtures and
// tolerance checks shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// UniformPositions returns n positions drawn uniformly from [0, span) with a
// fixed seed. The result is unsorted, like a random observation schedule.
func UniformPositions(seed int64, span float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = span * rng.Float64()
	}
	return out
}

// Map returns f applied to each element of x.
func Map(x []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
	}
	return out
}

// Sinusoid samples amplitude*sin(2*pi*freq*t + phase) at the given times.
func Sinusoid(times []float64, freq, amplitude, phase float64) []float64 {
	return Map(times, func(t float64) float64 {
		return amplitude * math.Sin(2*math.Pi*freq*t+phase)
	})
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Arange returns [0, 1, ..., n-1] as float64.
func Arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
