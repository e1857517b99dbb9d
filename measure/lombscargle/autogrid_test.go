package lombscargle

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lombscargle/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestAutoGridDefaults(t *testing.T) {
	times := []float64{0, 1, 3, 4, 10}

	g, err := AutoGrid(times)
	require.NoError(t, err)

	// df = 1/(10*5), fmin = df/2, fmax = 5 * 0.5 * 5/10.
	require.InDelta(t, 0.02, g.Df, 1e-15)
	require.InDelta(t, 0.01, g.F0, 1e-15)
	require.Equal(t, 1+int(math.Round((1.25-0.01)/0.02)), g.N)
	require.Equal(t, 0, g.FreqFactor)
}

func TestAutoGridOptions(t *testing.T) {
	times := testutil.UniformPositions(4, 100, 30)
	g, err := AutoGrid(times,
		WithSamplesPerPeak(10),
		WithMinFrequency(0),
		WithMaxFrequency(2),
		WithNyquistFactor(1))
	require.NoError(t, err)

	require.Zero(t, g.F0)
	require.Greater(t, g.Df, 0.0)
	last := g.Frequency(g.N - 1)
	require.InDelta(t, 2, last, g.Df)
}

func TestAutoGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		opts  []GridOption
		want  error
	}{
		{name: "empty", want: ErrEmptyInput},
		{name: "single", times: []float64{3}, want: ErrZeroBaseline},
		{name: "constant", times: []float64{2, 2, 2}, want: ErrZeroBaseline},
		{name: "nan", times: []float64{0, math.NaN()}, want: ErrNonFinite},
		{name: "samples per peak", times: []float64{0, 1}, opts: []GridOption{WithSamplesPerPeak(0)}, want: ErrInvalidOption},
		{name: "nyquist", times: []float64{0, 1}, opts: []GridOption{WithNyquistFactor(-1)}, want: ErrInvalidOption},
		{name: "negative min", times: []float64{0, 1}, opts: []GridOption{WithMinFrequency(-1)}, want: ErrInvalidFrequencies},
		{
			name:  "max below min",
			times: []float64{0, 1},
			opts:  []GridOption{WithMinFrequency(2), WithMaxFrequency(1)},
			want:  ErrInvalidFrequencies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AutoGrid(tt.times, tt.opts...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
