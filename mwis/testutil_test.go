// SPDX-License-Identifier: MIT

package mwis_test

import (
	"math/rand"

	"github.com/katalvlaran/antenna/mwis"
)

// bruteForce enumerates every subset of cities and returns the best total
// over subsets with no two adjacent members. Intended for n ≤ 20.
func bruteForce(p mwis.Populations) int64 {
	n := len(p)
	var best int64
	for mask := 0; mask < 1<<n; mask++ {
		if mask&(mask>>1) != 0 {
			continue // two neighbours chosen
		}
		var sum int64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += p[i]
			}
		}
		if sum > best {
			best = sum
		}
	}
	return best
}

// randomPopulations draws n values in [0, limit) from rng.
func randomPopulations(rng *rand.Rand, n int, limit int64) mwis.Populations {
	p := make(mwis.Populations, n)
	for i := range p {
		p[i] = rng.Int63n(limit)
	}
	return p
}

// sumCities totals p over 1-based city numbers.
func sumCities(p mwis.Populations, cities []int) int64 {
	var sum int64
	for _, c := range cities {
		sum += p[c-1]
	}
	return sum
}
