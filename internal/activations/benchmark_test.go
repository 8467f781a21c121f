// Package activations provides benchmarks for activation functions.
package activations

import (
	"math/rand"
	"testing"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	for i := range slice {
		slice[i] = rand.Float64()
	}
}

// BenchmarkSigmoidActivate benchmarks the Sigmoid activation function.
func BenchmarkSigmoidActivate(b *testing.B) {
	sigmoid := Sigmoid{}
	inputs := make([]float64, 1000)
	fillRandom(inputs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range inputs {
			sigmoid.Activate(x)
		}
	}
}

// BenchmarkRegistryLookup benchmarks resolving an activation by name.
func BenchmarkRegistryLookup(b *testing.B) {
	r := DefaultRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Lookup("tanh")
	}
}
