// SPDX-License-Identifier: MIT

package mwis

import "fmt"

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Solve runs; option constructors never panic.
type Option func(*Options)

// Options holds the parameters of Solve.
//
// Fields:
//   - FirstCity       — how city 1 is decided when the walk stops on it.
//   - MemoryMode      — FullTable or TwoCells.
//   - AllowNegative   — admit negative populations into the recurrence.
//   - ReturnSelection — reconstruct the selection (requires FullTable).
type Options struct {
	FirstCity       FirstCityPolicy
	MemoryMode      MemoryMode
	AllowNegative   bool
	ReturnSelection bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - FirstCity = FirstCityResolved
//   - MemoryMode = FullTable
//   - AllowNegative = false
//   - ReturnSelection = true
func DefaultOptions() Options {
	return Options{
		FirstCity:       FirstCityResolved,
		MemoryMode:      FullTable,
		AllowNegative:   false,
		ReturnSelection: true,
	}
}

// WithFirstCityPolicy selects the first-city policy.
func WithFirstCityPolicy(p FirstCityPolicy) Option {
	return func(o *Options) {
		switch p {
		case FirstCityResolved, FirstCityOptimistic:
			o.FirstCity = p
		default:
			o.err = fmt.Errorf("%w: unknown first-city policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithMemoryMode selects the table storage. TwoCells implies value only
// unless WithSelection(true) is also given, which is an error.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		switch m {
		case FullTable:
			o.MemoryMode = m
		case TwoCells:
			o.MemoryMode = m
			o.ReturnSelection = false
		default:
			o.err = fmt.Errorf("%w: unknown memory mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithNegativeAllowed admits negative populations. The recurrence stays
// arithmetically consistent, but dp[1] = p₁ is forced, so the result is the
// best selection that agrees with that base case rather than a true optimum.
func WithNegativeAllowed(allow bool) Option {
	return func(o *Options) {
		o.AllowNegative = allow
	}
}

// WithSelection toggles reconstruction of the selected cities.
func WithSelection(want bool) Option {
	return func(o *Options) {
		o.ReturnSelection = want
	}
}

// resolveOptions applies opts over DefaultOptions and checks combinations.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.ReturnSelection && o.MemoryMode != FullTable {
		return o, ErrSelectionNeedsTable
	}
	return o, nil
}
