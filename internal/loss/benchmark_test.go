// Package loss provides benchmarks for loss functions.
package loss

import (
	"math/rand"
	"testing"
)

// BenchmarkMSEForward benchmarks MSE over a 1000-element output.
func BenchmarkMSEForward(b *testing.B) {
	yPred := make([]float64, 1000)
	yTrue := make([]float64, 1000)
	for i := range yPred {
		yPred[i] = rand.Float64()
		yTrue[i] = rand.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MSE{}.Forward(yPred, yTrue)
	}
}
