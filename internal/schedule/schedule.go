// Package schedule provides learning rate schedules applied between epochs.
//
// A schedule only ever calls SetLearningRate on its target; the update rule
// itself stays plain online gradient steps.
package schedule

import "math"

// RateSetter is anything whose learning rate can be read and replaced.
type RateSetter interface {
	LearningRate() float64
	SetLearningRate(lr float64)
}

// Scheduler defines the interface for learning rate schedulers.
type Scheduler interface {
	// Step is called once per finished epoch with that epoch's loss.
	Step(loss float64)
	LR() float64
}

// StepLR decays the learning rate by gamma every stepSize epochs.
type StepLR struct {
	target    RateSetter
	stepSize  int
	gamma     float64
	lastEpoch int
}

func NewStepLR(target RateSetter, stepSize int, gamma float64) *StepLR {
	return &StepLR{target: target, stepSize: stepSize, gamma: gamma}
}

func (s *StepLR) Step(float64) {
	s.lastEpoch++
	if s.stepSize > 0 && s.lastEpoch%s.stepSize == 0 {
		s.target.SetLearningRate(s.target.LearningRate() * s.gamma)
	}
}

func (s *StepLR) LR() float64 { return s.target.LearningRate() }

// ExponentialLR decays the learning rate by gamma every epoch.
type ExponentialLR struct {
	target RateSetter
	gamma  float64
}

func NewExponentialLR(target RateSetter, gamma float64) *ExponentialLR {
	return &ExponentialLR{target: target, gamma: gamma}
}

func (s *ExponentialLR) Step(float64) {
	s.target.SetLearningRate(s.target.LearningRate() * s.gamma)
}

func (s *ExponentialLR) LR() float64 { return s.target.LearningRate() }

// ReduceLROnPlateau multiplies the learning rate by factor once the loss has
// not improved by more than threshold for patience epochs. The rate never
// drops below minLR.
type ReduceLROnPlateau struct {
	target    RateSetter
	factor    float64
	patience  int
	threshold float64
	Cooldown  int
	minLR     float64

	bestLoss        float64
	numBadEpochs    int
	cooldownCounter int
}

func NewReduceLROnPlateau(target RateSetter, factor float64, patience int, threshold, minLR float64) *ReduceLROnPlateau {
	return &ReduceLROnPlateau{
		target:    target,
		factor:    factor,
		patience:  patience,
		threshold: threshold,
		minLR:     minLR,
		bestLoss:  math.MaxFloat64,
	}
}

func (s *ReduceLROnPlateau) Step(loss float64) {
	if s.cooldownCounter > 0 {
		s.cooldownCounter--
		return
	}

	if loss < s.bestLoss-s.threshold {
		s.bestLoss = loss
		s.numBadEpochs = 0
	} else {
		s.numBadEpochs++
	}

	if s.numBadEpochs >= s.patience {
		s.target.SetLearningRate(math.Max(s.target.LearningRate()*s.factor, s.minLR))
		s.numBadEpochs = 0
		s.cooldownCounter = s.Cooldown
	}
}

func (s *ReduceLROnPlateau) LR() float64 { return s.target.LearningRate() }
