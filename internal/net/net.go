// Package net provides the feedforward network: forward inference and
// online backpropagation training over a stack of dense layers.
package net

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/layer"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
)

// Defaults applied by New to zero-valued Config fields.
const (
	DefaultInputSize    = 1
	DefaultLearningRate = 0.1
)

// ErrInvalidConfig is returned by New for an unusable layer layout.
var ErrInvalidConfig = errors.New("net: invalid config")

// LayerSpec describes one dense layer: its node count and activation name.
type LayerSpec struct {
	Nodes      int
	Activation string
}

// Config configures a new Network.
type Config struct {
	// InputSize is the length of the input vector. Zero means DefaultInputSize.
	InputSize int

	// Layers lists the layers from input to output. At least one is required.
	Layers []LayerSpec

	// LearningRate scales every update. Zero means DefaultLearningRate;
	// use SetLearningRate after New for an actual zero.
	LearningRate float64

	// Registry resolves activation names. Nil means activations.DefaultRegistry().
	Registry *activations.Registry

	// Rand seeds parameter initialization. Nil uses the math/rand package source.
	Rand *rand.Rand
}

// Network is an ordered stack of dense layers trained one example at a time.
//
// A Network is not safe for concurrent use: Predict and Train both write the
// layers' cached outputs, and Train writes weights and biases.
type Network struct {
	layers       []*layer.Dense
	inputSize    int
	learningRate float64
}

// New creates a network whose layer parameters are drawn uniformly from [-1, 1).
func New(cfg Config) (*Network, error) {
	if cfg.InputSize == 0 {
		cfg.InputSize = DefaultInputSize
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}
	if cfg.Registry == nil {
		cfg.Registry = activations.DefaultRegistry()
	}
	if cfg.InputSize < 0 {
		return nil, fmt.Errorf("%w: input size %d", ErrInvalidConfig, cfg.InputSize)
	}
	if len(cfg.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidConfig)
	}

	layers := make([]*layer.Dense, 0, len(cfg.Layers))
	prev := cfg.InputSize
	for i, spec := range cfg.Layers {
		if spec.Nodes <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d nodes", ErrInvalidConfig, i, spec.Nodes)
		}
		act, err := cfg.Registry.Lookup(spec.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, layer.NewDense(prev, spec.Nodes, act, cfg.Rand))
		prev = spec.Nodes
	}

	return &Network{
		layers:       layers,
		inputSize:    cfg.InputSize,
		learningRate: cfg.LearningRate,
	}, nil
}

// FromLayers assembles a network from existing layers, checking that each
// layer's input size matches the previous layer's node count.
func FromLayers(inputSize int, learningRate float64, layers ...*layer.Dense) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidConfig)
	}
	prev := inputSize
	for i, l := range layers {
		if l.InSize() != prev {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs, previous stage yields %d",
				ErrInvalidConfig, i, l.InSize(), prev)
		}
		prev = l.Nodes()
	}
	return &Network{layers: layers, inputSize: inputSize, learningRate: learningRate}, nil
}

// inputColumn packs x into the inputSize×1 column the first layer consumes.
// Short inputs are zero-padded and extra values are ignored.
func (n *Network) inputColumn(x []float64) *matrix.Matrix {
	return matrix.Column(matrix.FromSlice(x, 1), n.inputSize)
}

// forward runs every layer in order and returns the network input column
// and the output of the last layer.
func (n *Network) forward(x []float64) (in, out *matrix.Matrix, err error) {
	in = n.inputColumn(x)
	out = in
	for i, l := range n.layers {
		out, err = l.Forward(out)
		if err != nil {
			return nil, nil, fmt.Errorf("layer %d forward: %w", i, err)
		}
	}
	return in, out, nil
}

// Predict runs a forward pass and returns the output layer's values.
// Weights are not modified; each layer's cached output is overwritten.
func (n *Network) Predict(x []float64) ([]float64, error) {
	_, out, err := n.forward(x)
	if err != nil {
		return nil, err
	}
	return matrix.ToSlice(out), nil
}

// Train performs one online backpropagation step on a single example.
//
// The output error is target − output and every update is added to the
// parameters. Layers are walked from last to first; a hidden layer's error is
// Wᵀ·e of the layer after it, taken after that layer has been updated. Each
// layer's update is computed in full before any of it is applied.
func (n *Network) Train(x, target []float64) error {
	in, out, err := n.forward(x)
	if err != nil {
		return err
	}

	errSignal, err := matrix.Subtract(matrix.FromSlice(target, 1), out)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		if i < len(n.layers)-1 {
			next := n.layers[i+1]
			errSignal, err = matrix.MatrixProduct(matrix.Transpose(next.Weights()), errSignal)
			if err != nil {
				return fmt.Errorf("layer %d error: %w", i, err)
			}
		}

		prev := in
		if i > 0 {
			prev = n.layers[i-1].LastOutput()
		}
		if _, err := l.Update(errSignal, prev, n.learningRate); err != nil {
			return fmt.Errorf("layer %d update: %w", i, err)
		}
	}
	return nil
}

// SetLearningRate replaces the learning rate used by subsequent Train calls.
// Zero disables learning and negative values invert it; no validation is done.
func (n *Network) SetLearningRate(lr float64) {
	n.learningRate = lr
}

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// InputSize returns the expected input vector length.
func (n *Network) InputSize() int {
	return n.inputSize
}

// OutputSize returns the length of Predict's result.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Nodes()
}

// Layers returns the network's layers slice.
func (n *Network) Layers() []*layer.Dense {
	return n.layers
}

// Summary writes a table of the layers and their parameter counts.
func (n *Network) Summary(w io.Writer) {
	fmt.Fprintln(w, "Model: Feedforward")
	fmt.Fprintln(w, "_________________________________________________________________")
	fmt.Fprintf(w, "%-25s %-20s %-10s\n", "Layer (activation)", "Output Shape", "Param #")
	fmt.Fprintln(w, "=================================================================")

	totalParams := 0
	for i, l := range n.layers {
		params := l.Nodes()*l.InSize() + l.Nodes()
		totalParams += params
		name := fmt.Sprintf("dense_%d (%s)", i, l.Activation().Name())
		fmt.Fprintf(w, "%-25s %-20s %-10d\n", name, fmt.Sprintf("(%d)", l.Nodes()), params)
	}
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Total params: %d\n", totalParams)
}
