// SPDX-License-Identifier: MIT

// validate.go - input validation stage run by Solve before the forward pass.
//
// Contract:
//   - len(p) ≥ 1 (else ErrEmptyInput).
//   - p[i] ≥ 0 unless opts.AllowNegative (else ErrNegativePopulation).
//   - Σ|p[i]| ≤ MaxInt64 (else ErrOverflow); this bounds every table cell.
//
// Complexity: O(n) time, O(1) space.

package mwis

import (
	"fmt"
	"math"
)

// Validate checks p against opts. Errors name the offending 1-based city.
func Validate(p Populations, opts Options) error {
	if len(p) == 0 {
		return ErrEmptyInput
	}

	var total int64
	for i, v := range p {
		if v < 0 && !opts.AllowNegative {
			return fmt.Errorf("%w: city %d has population %d", ErrNegativePopulation, i+1, v)
		}
		if v == math.MinInt64 {
			return fmt.Errorf("%w: city %d", ErrOverflow, i+1)
		}
		if v < 0 {
			v = -v
		}
		if total > math.MaxInt64-v {
			return fmt.Errorf("%w: at city %d", ErrOverflow, i+1)
		}
		total += v
	}

	return nil
}
