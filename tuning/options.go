package tuning

import (
	"fmt"
	"log/slog"
)

const (
	DefaultMaxShellRadius = 64
	DefaultMaxIterations  = 100000
)

// selects how the upward drift vector is kept apart from the downward one
type BracketRule uint8

const (
	// reject a candidate sharing any coefficient with the negated downward
	// vector
	BracketRuleCoordinate BracketRule = iota
	// reject only the exact negation of the downward vector
	BracketRuleNegation
)

func (r BracketRule) String() string {
	switch r {
	case BracketRuleCoordinate:
		return "coordinate"
	case BracketRuleNegation:
		return "negation"
	}
	return fmt.Sprintf("BracketRule(%d)", uint8(r))
}

// ParseBracketRule maps "coordinate" or "negation" to a BracketRule.
func ParseBracketRule(s string) (BracketRule, error) {
	switch s {
	case "", "coordinate":
		return BracketRuleCoordinate, nil
	case "negation":
		return BracketRuleNegation, nil
	}
	return 0, fmt.Errorf("%w: unknown bracket rule %q", ErrInvalidParameter, s)
}

// Options bounds and tunes the search and convergence loop.
type Options struct {
	MaxShellRadius int
	MaxIterations  int
	BracketRule    BracketRule
	Logger         *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the bounds used when no option is given.
func DefaultOptions() Options {
	return Options{
		MaxShellRadius: DefaultMaxShellRadius,
		MaxIterations:  DefaultMaxIterations,
		BracketRule:    BracketRuleCoordinate,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithMaxShellRadius bounds both searches to shells 1..r. Panics if r < 1.
func WithMaxShellRadius(r int) Option {
	if r < 1 {
		panic("tuning: WithMaxShellRadius(r) requires r >= 1")
	}
	return func(o *Options) { o.MaxShellRadius = r }
}

// WithMaxIterations bounds the convergence loop. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("tuning: WithMaxIterations(n) requires n >= 0")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithBracketRule selects the exclusion rule of the upward bracket search.
func WithBracketRule(r BracketRule) Option {
	return func(o *Options) { o.BracketRule = r }
}

// WithLogger sends debug output of the search to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
