package extirpolate

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-lombscargle/internal/testutil"
)

func BenchmarkExtirpolateTo(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			x := testutil.UniformPositions(1, 4096, size)
			y := testutil.Map(x, math.Sin)
			dst := make([]float64, 4096)

			b.SetBytes(int64(size * 16))
			b.ResetTimer()

			for range b.N {
				if err := ExtirpolateTo(dst, x, y, DefaultSpread); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
