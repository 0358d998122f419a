// SPDX-License-Identifier: MIT

// Package mwis computes a maximum-weight independent set on a path graph:
// cities laid out on a line, each with a population, where an antenna may
// be placed in any city except two neighbours.
//
// 🚀 What is solved?
//
//	Given populations p₁…pₙ pick a subset S ⊆ {1..n} with no i, i+1 both in S
//	maximizing Σ p_i over S. The classic recurrence over prefixes is
//
//	  dp[0] = 0
//	  dp[1] = p₁
//	  dp[i] = max(dp[i-1], p_i + dp[i-2])        i = 2..n
//
//	and one optimal S is recovered by walking the table backwards.
//
// ✨ Key features:
//   - Forward:     the DP table in one linear pass (O(n) time & memory)
//   - MaxValue:    the optimum only, two rolling cells (O(1) memory)
//   - Reconstruct: backward walk with a three-state mark per city
//   - Check:       independent validation of any proposed selection
//   - explicit first-city policy (see FirstCityPolicy)
//
// Indexing:
//
//	Populations are zero-indexed: city c (1-based, as reported to users)
//	is p[c-1]. Table is indexed by prefix length: Table[k] is the optimum
//	over the first k cities, so len(Table) == len(p)+1 and Table[0] == 0.
//
// ⚙️ Usage:
//
//	res, err := mwis.Solve(mwis.Populations{3, 2, 5, 10, 7})
//	if err != nil {
//	  // ErrEmptyInput, ErrNegativePopulation, ErrOverflow, ...
//	}
//	fmt.Println(res.Value, res.Cities()) // 15 [1 3 5]
//
// Ties:
//
//	When dp[i-1] == p_i + dp[i-2] the forward pass keeps dp[i-1] ("exclude
//	current") and the backward walk tests the exclude branch first, so both
//	halves agree on which optimum is reported.
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) (FullTable) or O(1) (TwoCells, value only)
package mwis
