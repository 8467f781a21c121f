// Package loss provides loss functions used to report training progress.
//
// The network's update rule is fixed (target − output, added to the
// parameters); a Loss only measures how far predictions are from targets.
package loss

import "gonum.org/v1/gonum/floats"

// Loss measures the discrepancy between a prediction and a target.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}
	d := floats.Distance(yPred, yTrue, 2)
	return d * d / float64(n)
}

// SSE (sum of squared errors halved) loss, the quantity the network's
// update rule descends.
type SSE struct{}

// Forward computes 0.5 * sum((y_pred - y_true)^2)
func (s SSE) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("SSE: prediction and target must have same length")
	}
	d := floats.Distance(yPred, yTrue, 2)
	return 0.5 * d * d
}
