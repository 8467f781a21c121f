package net

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/layer"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
)

// ErrInvalidSerializedState is returned when a network document is missing
// required fields or describes inconsistent shapes. It is the same sentinel
// the matrix package uses for malformed grids.
var ErrInvalidSerializedState = matrix.ErrInvalidSerializedState

// document is the serialized form of a Network. Cached layer outputs are
// transient and never written.
type document struct {
	InputNodes   *int          `json:"inputNodes"`
	Layers       []layerConfig `json:"layers"`
	LearningRate *float64      `json:"learningRate"`
}

// layerConfig holds what is needed to rebuild one dense layer.
type layerConfig struct {
	Nodes      *int           `json:"nodes"`
	Activation string         `json:"activation"`
	Weights    *matrix.Matrix `json:"weights"`
	Bias       *matrix.Matrix `json:"bias"`
}

func (n *Network) document() document {
	doc := document{
		InputNodes:   &n.inputSize,
		Layers:       make([]layerConfig, len(n.layers)),
		LearningRate: &n.learningRate,
	}
	for i, l := range n.layers {
		nodes := l.Nodes()
		doc.Layers[i] = layerConfig{
			Nodes:      &nodes,
			Activation: l.Activation().Name(),
			Weights:    l.Weights(),
			Bias:       l.Bias(),
		}
	}
	return doc
}

// MarshalJSON encodes the network's structure and parameters.
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.document())
}

// Encode writes the network to w as indented JSON.
func (n *Network) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n.document()); err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	return nil
}

// Decode reads a network written by Encode, resolving activation names
// through reg (nil means activations.DefaultRegistry()). Like Unmarshal it
// expects r to hold exactly one document.
func Decode(r io.Reader, reg *activations.Registry) (*Network, error) {
	dec := json.NewDecoder(r)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSerializedState, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after network document", ErrInvalidSerializedState)
	}
	return doc.build(reg)
}

// Unmarshal decodes a network from JSON bytes.
func Unmarshal(data []byte, reg *activations.Registry) (*Network, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSerializedState, err)
	}
	return doc.build(reg)
}

func (doc document) build(reg *activations.Registry) (*Network, error) {
	if reg == nil {
		reg = activations.DefaultRegistry()
	}
	if doc.InputNodes == nil || doc.LearningRate == nil || len(doc.Layers) == 0 {
		return nil, fmt.Errorf("%w: inputNodes, learningRate and layers are required", ErrInvalidSerializedState)
	}
	if *doc.InputNodes <= 0 {
		return nil, fmt.Errorf("%w: inputNodes must be positive, got %d", ErrInvalidSerializedState, *doc.InputNodes)
	}

	layers := make([]*layer.Dense, len(doc.Layers))
	for i, cfg := range doc.Layers {
		l, err := cfg.createLayer(reg)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = l
	}

	n, err := FromLayers(*doc.InputNodes, *doc.LearningRate, layers...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSerializedState, err)
	}
	return n, nil
}

// createLayer creates a new layer from the configuration.
func (c layerConfig) createLayer(reg *activations.Registry) (*layer.Dense, error) {
	if c.Weights == nil || c.Bias == nil {
		return nil, fmt.Errorf("%w: weights and bias are required", ErrInvalidSerializedState)
	}
	if c.Nodes == nil || *c.Nodes <= 0 {
		return nil, fmt.Errorf("%w: nodes must be present and positive", ErrInvalidSerializedState)
	}
	if c.Weights.Rows() != *c.Nodes {
		return nil, fmt.Errorf("%w: %d nodes but %d weight rows", ErrInvalidSerializedState, *c.Nodes, c.Weights.Rows())
	}
	act, err := reg.Lookup(c.Activation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSerializedState, err)
	}
	l, err := layer.NewDenseFrom(c.Weights, c.Bias, act)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSerializedState, err)
	}
	return l, nil
}

// Save writes the network to a file as JSON.
func (n *Network) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := n.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Load loads a network from a file written by Save.
func Load(filename string, reg *activations.Registry) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file, reg)
}
