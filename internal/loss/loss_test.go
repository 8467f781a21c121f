// Package loss provides unit tests for loss functions.
package loss

import (
	"math"
	"testing"
)

// TestMSEForward tests MSE forward pass.
func TestMSEForward(t *testing.T) {
	mse := MSE{}

	tests := []struct {
		name     string
		yPred    []float64
		yTrue    []float64
		expected float64
	}{
		{"Perfect prediction", []float64{1.0, 2.0, 3.0}, []float64{1.0, 2.0, 3.0}, 0.0},
		{"Single error", []float64{1.0, 2.0}, []float64{1.5, 2.0}, 0.125},           // (0.5^2 + 0) / 2
		{"Multiple errors", []float64{1.0, 2.0, 3.0}, []float64{0.0, 1.0, 2.0}, 1.0}, // (1+1+1)/3
		{"Large errors", []float64{10.0}, []float64{0.0}, 100.0},
		{"Empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mse.Forward(tt.yPred, tt.yTrue)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("MSE.Forward() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// TestMSEForwardLengthMismatch tests error handling.
func TestMSEForwardLengthMismatch(t *testing.T) {
	mse := MSE{}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MSE.Forward should panic on length mismatch")
		}
	}()
	mse.Forward([]float64{1, 2}, []float64{1})
}

// TestSSEForward tests the halved sum of squares.
func TestSSEForward(t *testing.T) {
	got := SSE{}.Forward([]float64{1, 2, 3}, []float64{0, 0, 0})
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("SSE.Forward() = %v, want 7", got)
	}
}
