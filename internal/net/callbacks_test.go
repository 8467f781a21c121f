package net

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/feedforward/internal/schedule"
)

// recorder counts callback invocations.
type recorder struct {
	BaseCallback
	begins, ends int
	losses       []float64
}

func (r *recorder) OnTrainBegin(n *Network) { r.begins++ }
func (r *recorder) OnTrainEnd(n *Network)   { r.ends++ }
func (r *recorder) OnEpochEnd(epoch int, loss float64, n *Network) {
	r.losses = append(r.losses, loss)
}

func orDataset() *Dataset {
	return &Dataset{
		Samples: [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Labels:  [][]float64{{0}, {1}, {1}, {1}},
	}
}

func TestFitCallsCallbacks(t *testing.T) {
	n := seeded(t, 11, 2, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0.5)
	rec := &recorder{}

	last, err := n.Fit(orDataset(), 200, rec, Logger{Interval: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.begins)
	assert.Equal(t, 1, rec.ends)
	require.Len(t, rec.losses, 200)
	assert.Equal(t, rec.losses[199], last)
	// OR is linearly separable, a single sigmoid unit learns it
	assert.Less(t, last, rec.losses[0])
}

func TestFitLabelMismatch(t *testing.T) {
	n := seeded(t, 12, 2, LayerSpec{1, "sigmoid"})

	_, err := n.Fit(&Dataset{Samples: [][]float64{{1, 1}}}, 1)
	assert.Error(t, err)

	_, err = n.Fit(&Dataset{Samples: [][]float64{{1, 1}}, Labels: [][]float64{{1, 0}}}, 1)
	assert.Error(t, err)
}

// TestFitEarlyStopping tests that a stopped callback ends training.
func TestFitEarlyStopping(t *testing.T) {
	n := seeded(t, 13, 2, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0) // loss never improves
	rec := &recorder{}
	es := NewEarlyStopping(3, 0)

	_, err := n.Fit(orDataset(), 100, rec, es)
	require.NoError(t, err)
	assert.True(t, es.ShouldStop())
	// first epoch sets the best loss, three more exhaust patience
	assert.Len(t, rec.losses, 4)
}

func TestEarlyStoppingDisabled(t *testing.T) {
	n := seeded(t, 13, 2, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0)
	rec := &recorder{}
	es := NewEarlyStopping(0, 0)

	_, err := n.Fit(orDataset(), 5, rec, es)
	require.NoError(t, err)
	assert.False(t, es.ShouldStop())
	assert.Len(t, rec.losses, 5)
}

func TestModelCheckpoint(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "best.json")
	n := seeded(t, 14, 2, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0.5)

	_, err := n.Fit(orDataset(), 5, NewModelCheckpoint(filename))
	require.NoError(t, err)

	loaded, err := Load(filename, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.OutputSize())
}

func TestSchedulerCallback(t *testing.T) {
	n := seeded(t, 15, 2, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0.4)

	_, err := n.Fit(orDataset(), 3, NewSchedulerCallback(schedule.NewExponentialLR(n, 0.5)))
	require.NoError(t, err)
	assert.InDelta(t, 0.05, n.LearningRate(), 1e-12)
}
