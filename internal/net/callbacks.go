package net

import (
	"fmt"
	"math"

	"github.com/FlavioCFOliveira/feedforward/internal/schedule"
)

// Callback defines the interface for training callbacks used by Fit.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, loss float64, n *Network)
}

// Stopper is implemented by callbacks that can end Fit early.
type Stopper interface {
	ShouldStop() bool
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                        {}
func (c BaseCallback) OnTrainEnd(n *Network)                          {}
func (c BaseCallback) OnEpochBegin(epoch int, n *Network)             {}
func (c BaseCallback) OnEpochEnd(epoch int, loss float64, n *Network) {}

// EarlyStopping stops training when the epoch loss has stopped improving
// for Patience consecutive epochs. A Patience of zero or less disables it.
type EarlyStopping struct {
	BaseCallback
	Patience  int
	Threshold float64

	bestLoss     float64
	numBadEpochs int
	Stopped      bool
}

func NewEarlyStopping(patience int, threshold float64) *EarlyStopping {
	return &EarlyStopping{
		Patience:  patience,
		Threshold: threshold,
		bestLoss:  math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Patience <= 0 {
		return
	}
	if loss < c.bestLoss-c.Threshold {
		c.bestLoss = loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		fmt.Printf("\nEarly stopping at epoch %d: loss %.6f did not improve for %d epochs\n", epoch, loss, c.Patience)
		c.Stopped = true
	}
}

// ShouldStop reports whether patience has run out.
func (c *EarlyStopping) ShouldStop() bool {
	return c.Stopped
}

// ModelCheckpoint saves the model after every epoch if it's the best so far.
type ModelCheckpoint struct {
	BaseCallback
	Filename string

	bestLoss float64
}

func NewModelCheckpoint(filename string) *ModelCheckpoint {
	return &ModelCheckpoint{
		Filename: filename,
		bestLoss: math.MaxFloat64,
	}
}

func (c *ModelCheckpoint) OnEpochEnd(epoch int, loss float64, n *Network) {
	if loss < c.bestLoss {
		c.bestLoss = loss
		if err := n.Save(c.Filename); err != nil {
			fmt.Printf("Error saving checkpoint: %v\n", err)
		} else {
			fmt.Printf("Checkpoint saved: loss %.6f is new best\n", loss)
		}
	}
}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: loss = %.6f\n", epoch, loss)
	}
}

// SchedulerCallback steps a learning rate schedule at the end of every epoch.
type SchedulerCallback struct {
	BaseCallback
	scheduler schedule.Scheduler
}

func NewSchedulerCallback(scheduler schedule.Scheduler) *SchedulerCallback {
	return &SchedulerCallback{scheduler: scheduler}
}

func (c *SchedulerCallback) OnEpochEnd(epoch int, loss float64, n *Network) {
	c.scheduler.Step(loss)
}
