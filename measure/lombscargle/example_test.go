package lombscargle_test

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-lombscargle/measure/lombscargle"
)

func ExamplePower() {
	// Irregular samples of a 0.25 Hz sinusoid.
	t := make([]float64, 64)
	y := make([]float64, len(t))
	for i := range t {
		t[i] = float64(i) + 0.4*math.Sin(float64(i*i))
		y[i] = math.Sin(2 * math.Pi * 0.25 * t[i])
	}

	grid, _ := lombscargle.AutoGrid(t, lombscargle.WithMaxFrequency(0.5))
	power, err := lombscargle.Power(context.Background(), lombscargle.Samples{T: t, Y: y}, grid)
	if err != nil {
		fmt.Println(err)
		return
	}

	best := 0
	for k, p := range power {
		if p > power[best] {
			best = k
		}
	}

	fmt.Printf("peak at %.2f Hz\n", grid.Frequency(best))

	// Output:
	// peak at 0.25 Hz
}

func ExampleAutoGrid() {
	g, _ := lombscargle.AutoGrid([]float64{0, 2, 5, 10}, lombscargle.WithMinFrequency(0))
	fmt.Printf("f0=%.2f df=%.2f n=%d\n", g.F0, g.Df, g.N)

	// Output:
	// f0=0.00 df=0.02 n=51
}
