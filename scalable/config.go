package scalable

import (
	"fmt"

	"github.com/forestrie/go-fastbloom/bloom"
)

const (
	DefaultInitialCapacity = 8192
	DefaultTightening      = 0.85
)

// Config holds the construction parameters of a Filter.
//
// ErrorRate is required. InitialCapacity and Tightening are optional: the zero
// value selects DefaultInitialCapacity and DefaultTightening respectively.
type Config struct {
	// ErrorRate is the target false positive probability of the whole
	// filter, however many layers it grows to. Must be in (0, 1).
	ErrorRate float64

	// InitialCapacity is the number of elements the first layer is sized
	// for. Each later layer is larger, see GrowthFactor.
	InitialCapacity int

	// Tightening is the ratio r in (0, 1) by which each successive layer's
	// share of the error budget shrinks, see LayerErrorRate.
	Tightening float64
}

// DefaultConfig returns a Config for errorRate with the default capacity and
// tightening.
func DefaultConfig(errorRate float64) Config {
	return Config{
		ErrorRate:       errorRate,
		InitialCapacity: DefaultInitialCapacity,
		Tightening:      DefaultTightening,
	}
}

func (c Config) withDefaults() Config {
	if c.InitialCapacity == 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.Tightening == 0 {
		c.Tightening = DefaultTightening
	}
	return c
}

// Validate checks every field is in range. Optional fields left at zero are
// accepted.
func (c Config) Validate() error {
	c = c.withDefaults()
	if bloom.CheckErrorRate(c.ErrorRate) != nil {
		return fmt.Errorf("%w: error rate %v must be in (0, 1)", ErrInvalidArgument, c.ErrorRate)
	}
	if c.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity %d must be positive", ErrInvalidArgument, c.InitialCapacity)
	}
	if !(c.Tightening > 0 && c.Tightening < 1) {
		return fmt.Errorf("%w: tightening %v must be in (0, 1)", ErrInvalidArgument, c.Tightening)
	}
	return nil
}
