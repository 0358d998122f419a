// SPDX-License-Identifier: MIT

// reconstruct.go - backward walk over a forward table.
//
// Contract:
//   - len(t) == len(p)+1 and len(p) ≥ 1.
//   - t[0] == 0 and t[1] == p[0] (the base cases of Forward).
//   - For every prefix k visited, t[k] == t[k-1] or t[k] == t[k-2]+p[k-1];
//     otherwise ErrInconsistentTable.
//
// Walk, for k = n down to 2:
//   - t[k] == t[k-1]          → city k Excluded, k -= 1
//   - t[k] == t[k-2] + p[k-1] → city k Selected, city k-1 Excluded, k -= 2
//
// The exclude test comes first so ties resolve the way Forward does.
// After the walk every city except possibly city 1 is Selected or Excluded;
// city 1 is settled by the FirstCityPolicy.
//
// Complexity: O(n) time, O(n) space for the marks.

package mwis

import "fmt"

// Reconstruct recovers one optimal selection from t.
// The returned marks are zero-indexed: marks[c-1] is the mark of city c.
func Reconstruct(t Table, p Populations, policy FirstCityPolicy) ([]Mark, error) {
	n := len(p)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(t) != n+1 {
		return nil, fmt.Errorf("%w: table has %d cells, want %d", ErrDimensionMismatch, len(t), n+1)
	}
	if t[0] != 0 || t[1] != p[0] {
		return nil, fmt.Errorf("%w: base cases t[0]=%d t[1]=%d", ErrInconsistentTable, t[0], t[1])
	}

	marks := make([]Mark, n)
	switch policy {
	case FirstCityOptimistic:
		marks[0] = Selected
	case FirstCityResolved:
		// decided after the walk
	default:
		return nil, fmt.Errorf("%w: unknown first-city policy %d", ErrOptionViolation, int(policy))
	}

	k := n
	for k >= 2 {
		switch {
		case t[k] == t[k-1]:
			marks[k-1] = Excluded
			k--
		case t[k] == t[k-2]+p[k-1]:
			marks[k-1] = Selected
			marks[k-2] = Excluded
			k -= 2
		default:
			return nil, fmt.Errorf("%w: prefix %d (t=%d, t[-1]=%d, t[-2]+p=%d)",
				ErrInconsistentTable, k, t[k], t[k-1], t[k-2]+p[k-1])
		}
	}

	// Only reachable when the walk stopped at prefix 1 under FirstCityResolved.
	if marks[0] == Unknown {
		if t[1] != t[0] {
			marks[0] = Selected
		} else {
			marks[0] = Excluded
		}
	}

	return marks, nil
}
