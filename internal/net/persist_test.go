package net

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
)

var probes = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0.25, -3}}

func requireSamePredictions(t *testing.T, want, got *Network) {
	t.Helper()
	for _, x := range probes {
		a, err := want.Predict(x)
		require.NoError(t, err)
		b, err := got.Predict(x)
		require.NoError(t, err)
		assert.Equal(t, a, b, "input %v", x)
	}
}

// TestJSONRoundTrip tests Unmarshal(Marshal(n)) predicts identically.
func TestJSONRoundTrip(t *testing.T) {
	n := seeded(t, 8, 2, LayerSpec{3, "tanh"}, LayerSpec{2, "leakyrelu"}, LayerSpec{1, "sigmoid"})
	n.SetLearningRate(0.05)
	require.NoError(t, n.Train([]float64{1, 0}, []float64{1}))

	data, err := json.Marshal(n)
	require.NoError(t, err)

	got, err := Unmarshal(data, nil)
	require.NoError(t, err)
	assert.Equal(t, n.InputSize(), got.InputSize())
	assert.Equal(t, 0.05, got.LearningRate())
	requireSamePredictions(t, n, got)

	for i, l := range got.Layers() {
		assert.Nil(t, l.LastOutput(), "layer %d cache must not be restored", i)
		assert.Equal(t, n.Layers()[i].Activation().Name(), l.Activation().Name())
	}

	// the copy trains independently of the original
	require.NoError(t, got.Train([]float64{0, 1}, []float64{0}))
	assert.False(t, matrix.Equal(n.Layers()[0].Weights(), got.Layers()[0].Weights(), 0))
}

func TestDocumentFormat(t *testing.T) {
	n := fixedSingleLayer(t)
	data, err := json.Marshal(n)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"inputNodes": 2,
		"learningRate": 0.1,
		"layers": [{
			"nodes": 1,
			"activation": "sigmoid",
			"weights": {"rows": 1, "cols": 2, "matrix": [[0.5, -0.5]]},
			"bias": {"rows": 1, "cols": 1, "matrix": [[0.1]]}
		}]
	}`, string(data))
}

func TestEncodeDecode(t *testing.T) {
	n := seeded(t, 9, 2, LayerSpec{2, "relu"}, LayerSpec{1, "linear"})

	var buf bytes.Buffer
	require.NoError(t, n.Encode(&buf))

	got, err := Decode(&buf, activations.DefaultRegistry())
	require.NoError(t, err)
	requireSamePredictions(t, n, got)
}

func TestSaveLoad(t *testing.T) {
	n := seeded(t, 10, 2, LayerSpec{3, "sigmoid"}, LayerSpec{1, "sigmoid"})
	filename := filepath.Join(t.TempDir(), "network.json")

	require.NoError(t, n.Save(filename))
	got, err := Load(filename, nil)
	require.NoError(t, err)
	requireSamePredictions(t, n, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

// TestDecodeInvalid tests documents that must be rejected.
func TestDecodeInvalid(t *testing.T) {
	const w = `{"rows":1,"cols":2,"matrix":[[1,2]]}`
	const b = `{"rows":1,"cols":1,"matrix":[[0]]}`

	docs := map[string]string{
		"not json":         `nope`,
		"missing input":    `{"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":` + w + `,"bias":` + b + `}]}`,
		"missing rate":     `{"inputNodes":2,"layers":[{"nodes":1,"activation":"sigmoid","weights":` + w + `,"bias":` + b + `}]}`,
		"no layers":        `{"inputNodes":2,"learningRate":0.1,"layers":[]}`,
		"missing weights":  `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","bias":` + b + `}]}`,
		"non numeric grid": `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":{"rows":1,"cols":2,"matrix":[[1,"a"]]},"bias":` + b + `}]}`,
		"node count":       `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":3,"activation":"sigmoid","weights":` + w + `,"bias":` + b + `}]}`,
		"bias shape":       `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":` + w + `,"bias":{"rows":2,"cols":1,"matrix":[[0],[0]]}}]}`,
		"input mismatch":   `{"inputNodes":3,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":` + w + `,"bias":` + b + `}]}`,
		"unknown act":      `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":1,"activation":"gelu","weights":` + w + `,"bias":` + b + `}]}`,
		"missing nodes":    `{"inputNodes":2,"learningRate":0.1,"layers":[{"activation":"sigmoid","weights":{"rows":0,"cols":2,"matrix":[]},"bias":{"rows":0,"cols":1,"matrix":[]}}]}`,
		"zero nodes":       `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":0,"activation":"sigmoid","weights":{"rows":0,"cols":2,"matrix":[]},"bias":{"rows":0,"cols":1,"matrix":[]}}]}`,
		"zero input":       `{"inputNodes":0,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":{"rows":1,"cols":0,"matrix":[[]]},"bias":` + b + `}]}`,
		"null weight":      `{"inputNodes":2,"learningRate":0.1,"layers":[{"nodes":1,"activation":"sigmoid","weights":{"rows":1,"cols":2,"matrix":[[1,null]]},"bias":` + b + `}]}`,
	}
	for name, doc := range docs {
		_, err := Unmarshal([]byte(doc), nil)
		assert.ErrorIs(t, err, ErrInvalidSerializedState, name)
	}

	_, err := Unmarshal([]byte(docs["unknown act"]), nil)
	assert.ErrorIs(t, err, activations.ErrUnknownActivation)
}

// TestDecodeTrailingData tests that Decode and Unmarshal agree on input
// holding more than one document.
func TestDecodeTrailingData(t *testing.T) {
	data, err := json.Marshal(fixedSingleLayer(t))
	require.NoError(t, err)

	for name, in := range map[string]string{
		"second document": string(data) + string(data),
		"stray brace":     string(data) + "}",
		"garbage":         string(data) + " x",
	} {
		_, err := Unmarshal([]byte(in), nil)
		assert.ErrorIs(t, err, ErrInvalidSerializedState, name)
		_, err = Decode(strings.NewReader(in), nil)
		assert.ErrorIs(t, err, ErrInvalidSerializedState, name)
	}

	got, err := Decode(strings.NewReader(string(data)+"\n\t "), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.InputSize())
}
