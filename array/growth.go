package array

import (
	"fmt"
	"math"
)

// DefaultIncrement is the growth step used by [New]: capacity grows by 15
// slots each time the array is full.
const DefaultIncrement = 15

// DefaultCapacity is the initial capacity used by [DefaultConfig].
const DefaultCapacity = 16

// Growth is the policy applied to capacity when an append or insert finds
// the array full.
//
// Additive growth adds Increment slots. Multiplicative growth treats
// Increment as tenths of a multiplier, so Increment 15 grows capacity by
// 1.5x and Increment 20 doubles it.
type Growth struct {
	Increment      int  `yaml:"increment"`
	Multiplicative bool `yaml:"multiplicative"`
}

// DefaultGrowth returns the additive policy with [DefaultIncrement].
func DefaultGrowth() Growth {
	return Growth{Increment: DefaultIncrement}
}

// normalize clamps Increment to at least 1; a zero or negative step would
// never satisfy the resize condition.
func (g Growth) normalize() Growth {
	if g.Increment < 1 {
		g.Increment = 1
	}
	return g
}

// Next returns the capacity that follows capacity under g.
//
// The result is always at least capacity+1, even when a multiplicative
// policy rounds down to no growth (e.g. 1 * 15 / 10 == 1). An error
// wrapping [ErrAllocationFailed] is returned if the result would overflow
// int.
func (g Growth) Next(capacity int) (int, error) {
	g = g.normalize()
	if capacity < 0 {
		capacity = 0
	}
	if capacity == math.MaxInt {
		return 0, fmt.Errorf("%w: capacity %d cannot grow", ErrAllocationFailed, capacity)
	}

	if !g.Multiplicative {
		if capacity > math.MaxInt-g.Increment {
			return 0, fmt.Errorf("%w: capacity %d + %d overflows", ErrAllocationFailed, capacity, g.Increment)
		}
		return capacity + g.Increment, nil
	}

	if capacity > math.MaxInt/g.Increment {
		return 0, fmt.Errorf("%w: capacity %d * %d/10 overflows", ErrAllocationFailed, capacity, g.Increment)
	}
	next := capacity * g.Increment / 10
	if next <= capacity {
		next = capacity + 1
	}
	return next, nil
}

// String returns "+n" for additive growth and "xf" for multiplicative
// growth, e.g. "+15" or "x1.5".
func (g Growth) String() string {
	g = g.normalize()
	if g.Multiplicative {
		return fmt.Sprintf("x%g", float64(g.Increment)/10)
	}
	return fmt.Sprintf("+%d", g.Increment)
}
