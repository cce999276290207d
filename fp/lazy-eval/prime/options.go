package prime

import (
	"fmt"
	"strings"
)

// Bound selects what the bounded finder derives its divisor limit from.
type Bound int

const (
	// BoundIndex limits the divisors of the candidate at position j of
	// [2..n] to [2, round(sqrt(j+1))].
	BoundIndex Bound = iota
	// BoundValue limits the divisors of candidate v to
	// [2, round(sqrt(v))].
	BoundValue
)

func (b Bound) String() string {
	switch b {
	case BoundIndex:
		return "index"
	case BoundValue:
		return "value"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound maps "index" and "value" to their Bound. The empty string
// is BoundIndex.
func ParseBound(s string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "index":
		return BoundIndex, nil
	case "value":
		return BoundValue, nil
	default:
		return BoundIndex, fmt.Errorf("unknown bound %q, want index or value", s)
	}
}

type options struct {
	bound Bound
}

type Option func(*options)

// WithBound sets the divisor limit rule. The default is BoundIndex.
func WithBound(b Bound) Option {
	return func(o *options) {
		o.bound = b
	}
}

func newOptions(opts []Option) options {
	o := options{bound: BoundIndex}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// limit returns the exclusive divisor limit for the candidate at
// position index with the given value.
func (o options) limit(index, value int) int {
	if o.bound == BoundValue {
		return divisorLimit(value)
	}
	return divisorLimit(index + 1)
}
