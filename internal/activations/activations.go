// Package activations provides elementwise activation functions paired with
// their derivatives.
//
// Derivatives are expressed in terms of the activation's own output: for
// y = Activate(x), Derivative(y) returns f'(x). Backpropagation only keeps a
// layer's post-activation values, so this is the form it can evaluate.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Name is the registry key the activation is serialized under.
	Name() string

	// Activate computes y = f(x)
	Activate(x float64) float64

	// Derivative computes f'(x) given y = f(x)
	Derivative(y float64) float64
}

// Sigmoid activation function.
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Activate computes 1 / (1 + e^-x)
func (Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative computes y * (1 - y)
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1 - y)
}

// Tanh activation function.
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Activate computes tanh(x)
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - y^2
func (Tanh) Derivative(y float64) float64 {
	return 1 - y*y
}

// ReLU activation function.
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if y > 0, else 0
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// LeakyReLU activation function to prevent dying neurons.
// Alpha must be positive so the sign of y still tells which branch produced it.
type LeakyReLU struct {
	Alpha float64 // Slope for x <= 0
}

// NewLeakyReLU creates a LeakyReLU with the given alpha value.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return &LeakyReLU{Alpha: alpha}
}

// Name returns "leakyrelu".
func (*LeakyReLU) Name() string { return "leakyrelu" }

// Activate computes x if x > 0, else alpha*x
func (l *LeakyReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Alpha * x
}

// Derivative returns 1 if y > 0, else alpha
func (l *LeakyReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return l.Alpha
}

// Linear is the identity activation.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return "linear" }

// Activate returns x
func (Linear) Activate(x float64) float64 { return x }

// Derivative returns 1
func (Linear) Derivative(float64) float64 { return 1 }
