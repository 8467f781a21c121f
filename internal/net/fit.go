package net

import (
	"fmt"

	"github.com/FlavioCFOliveira/feedforward/internal/loss"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
)

// Fit trains the network for the given number of epochs, one Train call per
// sample in dataset order. After each epoch the mean MSE of the predictions
// made by that epoch's training forward passes is handed to the callbacks. Fit
// returns the last epoch's loss.
//
// A callback implementing Stopper ends training after the epoch in which it
// asks to stop.
func (n *Network) Fit(ds *Dataset, epochs int, callbacks ...Callback) (float64, error) {
	if len(ds.Samples) != len(ds.Labels) {
		return 0, fmt.Errorf("dataset has %d samples and %d labels", len(ds.Samples), len(ds.Labels))
	}

	for _, c := range callbacks {
		c.OnTrainBegin(n)
	}
	defer func() {
		for _, c := range callbacks {
			c.OnTrainEnd(n)
		}
	}()

	var mse loss.MSE
	var epochLoss float64
	for epoch := 0; epoch < epochs; epoch++ {
		for _, c := range callbacks {
			c.OnEpochBegin(epoch, n)
		}

		var total float64
		for i := range ds.Samples {
			if err := n.Train(ds.Samples[i], ds.Labels[i]); err != nil {
				return epochLoss, fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
			// the output cache still holds this sample's pre-update prediction
			total += mse.Forward(n.lastPrediction(), ds.Labels[i])
		}
		if len(ds.Samples) > 0 {
			epochLoss = total / float64(len(ds.Samples))
		}

		stop := false
		for _, c := range callbacks {
			c.OnEpochEnd(epoch, epochLoss, n)
			if s, ok := c.(Stopper); ok && s.ShouldStop() {
				stop = true
			}
		}
		if stop {
			break
		}
	}
	return epochLoss, nil
}

// Evaluate returns the mean MSE of the network's predictions over ds.
func (n *Network) Evaluate(ds *Dataset) (float64, error) {
	if len(ds.Samples) == 0 {
		return 0, nil
	}
	var mse loss.MSE
	var total float64
	for i := range ds.Samples {
		pred, err := n.Predict(ds.Samples[i])
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if len(pred) != len(ds.Labels[i]) {
			return 0, fmt.Errorf("sample %d: label length %d, output length %d", i, len(ds.Labels[i]), len(pred))
		}
		total += mse.Forward(pred, ds.Labels[i])
	}
	return total / float64(len(ds.Samples)), nil
}

func (n *Network) lastPrediction() []float64 {
	return matrix.ToSlice(n.layers[len(n.layers)-1].LastOutput())
}
