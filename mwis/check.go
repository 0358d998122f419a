// SPDX-License-Identifier: MIT

package mwis

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Check verifies that cities (1-based) form an independent set on the path
// of len(p) cities and returns their total population.
//
// Errors: ErrEmptyInput, ErrCityOutOfRange, ErrDuplicateCity, ErrAdjacentCities.
//
// Complexity: O(n + len(cities)).
func Check(p Populations, cities []int) (int64, error) {
	n := len(p)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	seen := mapset.NewThreadUnsafeSetWithSize[int](len(cities))
	var total int64
	for _, c := range cities {
		if c < 1 || c > n {
			return 0, fmt.Errorf("%w: city %d not in 1..%d", ErrCityOutOfRange, c, n)
		}
		if !seen.Add(c) {
			return 0, fmt.Errorf("%w: city %d", ErrDuplicateCity, c)
		}
		total += p[c-1]
	}
	for _, c := range cities {
		if seen.Contains(c + 1) {
			return 0, fmt.Errorf("%w: cities %d and %d", ErrAdjacentCities, c, c+1)
		}
	}

	return total, nil
}
