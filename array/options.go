package array

import "go.uber.org/zap"

// Option is a functional option for configuring an [Array] at construction
// time via [New], [NewExtended] or [NewFromConfig].
type Option func(*settings)

// settings holds the optional configuration shared by all constructors.
type settings struct {
	logger      *zap.Logger
	maxCapacity int
	growth      *Growth
}

func newSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger sets the logger that receives diagnostic events: rejected
// indices and rejected growth at Warn level, reallocations at Debug level.
// A nil logger is ignored. The default discards everything.
//
// Arrays derived from this one (Clone, Subview) inherit the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxCapacity bounds growth. Once capacity reaches n, further growth
// fails with [ErrAllocationFailed]; a step that would overshoot n is
// clamped to n. Zero or a negative value means unbounded.
func WithMaxCapacity(n int) Option {
	return func(s *settings) {
		if n < 0 {
			n = 0
		}
		s.maxCapacity = n
	}
}

// WithGrowth replaces the growth policy of [New] and [NewFromConfig].
// [NewExtended] ignores it in favour of its explicit parameters.
func WithGrowth(g Growth) Option {
	return func(s *settings) {
		s.growth = &g
	}
}
