// Package goneuron re-exports the feedforward network API for callers
// outside this module.
package goneuron

import (
	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/matrix"
	"github.com/FlavioCFOliveira/feedforward/internal/net"
	"github.com/FlavioCFOliveira/feedforward/internal/schedule"
)

// Re-export common types and functions for easier access
type (
	Network    = net.Network
	Config     = net.Config
	LayerSpec  = net.LayerSpec
	Dataset    = net.Dataset
	Callback   = net.Callback
	Activation = activations.Activation
	Registry   = activations.Registry
	Matrix     = matrix.Matrix
)

// Errors
var (
	ErrShapeMismatch          = matrix.ErrShapeMismatch
	ErrIncompatibleProduct    = matrix.ErrIncompatibleProduct
	ErrInvalidSerializedState = matrix.ErrInvalidSerializedState
	ErrUnknownActivation      = activations.ErrUnknownActivation
	ErrInvalidConfig          = net.ErrInvalidConfig
)

// New creates a network from cfg.
func New(cfg Config) (*Network, error) {
	return net.New(cfg)
}

// Layer is shorthand for a LayerSpec.
func Layer(nodes int, activation string) LayerSpec {
	return LayerSpec{Nodes: nodes, Activation: activation}
}

// Activations
var (
	Sigmoid = activations.Sigmoid{}
	Tanh    = activations.Tanh{}
	ReLU    = activations.ReLU{}
	Linear  = activations.Linear{}
)

func LeakyReLU(alpha float64) Activation {
	return activations.NewLeakyReLU(alpha)
}

// Registries
func DefaultRegistry() *Registry {
	return activations.DefaultRegistry()
}

func NewRegistry() *Registry {
	return activations.NewRegistry()
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func ModelCheckpoint(filename string) *net.ModelCheckpoint {
	return net.NewModelCheckpoint(filename)
}

func EarlyStopping(patience int, minDelta float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, minDelta)
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}

func SchedulerCallback(scheduler schedule.Scheduler) net.Callback {
	return net.NewSchedulerCallback(scheduler)
}

func ReduceLROnPlateau(n *Network, factor float64, patience int, threshold, minLR float64) *schedule.ReduceLROnPlateau {
	return schedule.NewReduceLROnPlateau(n, factor, patience, threshold, minLR)
}

// Data
func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	return net.LoadCSV(filename, labelCols, hasHeader)
}

// Model Persistence
func Load(filename string, reg *Registry) (*Network, error) {
	return net.Load(filename, reg)
}

func Unmarshal(data []byte, reg *Registry) (*Network, error) {
	return net.Unmarshal(data, reg)
}
