package dualsim_test

import (
	"testing"

	"github.com/katalvlaran/tightsim/dualsim"
)

func BenchmarkCompute_Random(b *testing.B) {
	data := randomGraph(b, 1, 2000, 0.002, 4)
	q := graphOf(b, []int{0, 1, 2, 1}, e(0, 1), e(1, 2), e(2, 3), e(3, 0))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dualsim.Compute(data, q); err != nil {
			b.Fatal(err)
		}
	}
}
