// Package layer provides the dense layer the network engine stacks.
package layer

import (
	"fmt"
	"math/rand"

	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
)

// Dense is a fully connected layer computing act(W·x + b).
//
// lastOutput is scratch state: it holds the post-activation values of the
// most recent Forward call and is overwritten on every call. It means nothing
// outside the Predict/Train call that produced it.
type Dense struct {
	weights *matrix.Matrix // nodes × inSize
	bias    *matrix.Matrix // nodes × 1
	act     activations.Activation
	nodes   int
	inSize  int

	lastOutput *matrix.Matrix
}

// NewDense creates a layer with weights and bias drawn uniformly from [-1, 1).
// A nil rng uses the math/rand package source.
func NewDense(in, nodes int, act activations.Activation, rng *rand.Rand) *Dense {
	weights := matrix.New(nodes, in)
	bias := matrix.New(nodes, 1)
	weights.RandomFill(rng, -1, 1)
	bias.RandomFill(rng, -1, 1)

	return &Dense{
		weights: weights,
		bias:    bias,
		act:     act,
		nodes:   nodes,
		inSize:  in,
	}
}

// NewDenseFrom builds a layer around existing parameters. The layer takes
// ownership of weights and bias. bias must be weights.Rows() × 1.
func NewDenseFrom(weights, bias *matrix.Matrix, act activations.Activation) (*Dense, error) {
	if bias.Rows() != weights.Rows() || bias.Cols() != 1 {
		return nil, fmt.Errorf("bias %dx%d for weights %dx%d: %w",
			bias.Rows(), bias.Cols(), weights.Rows(), weights.Cols(), matrix.ErrShapeMismatch)
	}
	return &Dense{
		weights: weights,
		bias:    bias,
		act:     act,
		nodes:   weights.Rows(),
		inSize:  weights.Cols(),
	}, nil
}

// Forward computes act(W·x + b) for a column input x and caches the result
// as the layer's last output.
func (d *Dense) Forward(x *matrix.Matrix) (*matrix.Matrix, error) {
	pre, err := matrix.MatrixProduct(d.weights, x)
	if err != nil {
		return nil, err
	}
	if err := pre.Add(d.bias); err != nil {
		return nil, err
	}
	act := d.act
	pre.Map(func(v float64, _, _ int) float64 { return act.Activate(v) })

	d.lastOutput = pre
	return pre, nil
}

// Update applies one online backpropagation step to the layer.
//
// errSignal is the layer's error (targets − outputs for the output layer,
// the back-propagated error otherwise) and prev is the input the last Forward
// consumed. The gradient is act'(lastOutput) ⊙ errSignal · lr; the weights
// gain gradient·prevᵀ and the bias gains gradient. Both deltas are computed
// before either is applied, so on error the layer is unchanged. The scaled
// gradient is returned for inspection.
func (d *Dense) Update(errSignal, prev *matrix.Matrix, lr float64) (*matrix.Matrix, error) {
	if d.lastOutput == nil {
		return nil, fmt.Errorf("layer: Update before Forward")
	}
	act := d.act
	gradient := matrix.StaticMap(d.lastOutput, act.Derivative)
	if err := gradient.MulElem(errSignal); err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	gradient.Scale(lr)

	delta, err := matrix.MatrixProduct(gradient, matrix.Transpose(prev))
	if err != nil {
		return nil, fmt.Errorf("weight delta: %w", err)
	}
	// shapes are now known to match the parameters
	if err := d.weights.Add(delta); err != nil {
		return nil, err
	}
	if err := d.bias.Add(gradient); err != nil {
		return nil, err
	}
	return gradient, nil
}

// Weights returns the weight matrix. It is owned by the layer.
func (d *Dense) Weights() *matrix.Matrix {
	return d.weights
}

// Bias returns the bias column. It is owned by the layer.
func (d *Dense) Bias() *matrix.Matrix {
	return d.bias
}

// LastOutput returns the post-activation values of the latest Forward call,
// or nil before the first one.
func (d *Dense) LastOutput() *matrix.Matrix {
	return d.lastOutput
}

// SetWeight sets a single weight at (row, col).
func (d *Dense) SetWeight(row, col int, val float64) {
	d.weights.Set(row, col, val)
}

// SetBias sets a single bias.
func (d *Dense) SetBias(idx int, val float64) {
	d.bias.Set(idx, 0, val)
}

// InSize returns the input size of the layer.
func (d *Dense) InSize() int {
	return d.inSize
}

// Nodes returns the number of output nodes.
func (d *Dense) Nodes() int {
	return d.nodes
}

// Activation returns the activation function used by this layer.
func (d *Dense) Activation() activations.Activation {
	return d.act
}
