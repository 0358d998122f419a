// SPDX-License-Identifier: MIT

package mwis

// Forward fills the DP table for p.
//
// Algorithm:
//  1. Let n = len(p). Allocate Table t of length n+1.
//  2. t[0] = 0, t[1] = p[0].
//  3. For k = 2..n:
//     exclude = t[k-1]
//     include = p[k-1] + t[k-2]
//     t[k] = include if include > exclude, else exclude
//  4. t[n] is the optimum.
//
// Ties keep exclude; Reconstruct relies on this.
//
// Forward does not validate p; call Validate first (Solve does).
// An empty p yields Table{0}.
//
// Complexity: O(n) time, O(n) memory.
func Forward(p Populations) Table {
	n := len(p)
	t := make(Table, n+1)
	if n == 0 {
		return t
	}

	t[1] = p[0]
	for k := 2; k <= n; k++ {
		exclude := t[k-1]
		include := p[k-1] + t[k-2]
		if include > exclude {
			t[k] = include
		} else {
			t[k] = exclude
		}
	}

	return t
}

// MaxValue returns Forward(p).Value() using two rolling cells.
//
// Complexity: O(n) time, O(1) memory.
func MaxValue(p Populations) int64 {
	if len(p) == 0 {
		return 0
	}

	// prev2 = dp[k-2], prev1 = dp[k-1]
	prev2, prev1 := int64(0), p[0]
	for k := 2; k <= len(p); k++ {
		include := p[k-1] + prev2
		curr := prev1
		if include > prev1 {
			curr = include
		}
		prev2, prev1 = prev1, curr
	}

	return prev1
}
