// SPDX-License-Identifier: MIT

package mwis

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrEmptyInput indicates a population sequence with no cities.
	ErrEmptyInput = errors.New("mwis: population sequence must be non-empty")

	// ErrNegativePopulation indicates a negative population while
	// Options.AllowNegative is false.
	ErrNegativePopulation = errors.New("mwis: negative population")

	// ErrOverflow indicates the total population does not fit in int64.
	ErrOverflow = errors.New("mwis: population total overflows int64")

	// ErrDimensionMismatch indicates a table whose length is not len(p)+1.
	ErrDimensionMismatch = errors.New("mwis: table/population length mismatch")

	// ErrInconsistentTable indicates a table cell that neither recurrence
	// branch explains, i.e. the table was not produced by Forward for p.
	ErrInconsistentTable = errors.New("mwis: table inconsistent with populations")

	// ErrSelectionNeedsTable indicates ReturnSelection with MemoryMode=TwoCells.
	ErrSelectionNeedsTable = errors.New("mwis: selection requires MemoryMode=FullTable")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("mwis: invalid option supplied")

	// ErrCityOutOfRange indicates a city number outside 1..n.
	ErrCityOutOfRange = errors.New("mwis: city out of range")

	// ErrDuplicateCity indicates a city listed more than once in a selection.
	ErrDuplicateCity = errors.New("mwis: duplicate city")

	// ErrAdjacentCities indicates two neighbouring cities in a selection.
	ErrAdjacentCities = errors.New("mwis: adjacent cities selected")
)

// Populations holds one non-negative weight per city, zero-indexed:
// city c (1-based) is Populations[c-1]. Treated as read-only by this package.
type Populations []int64

// Table is the forward DP table indexed by prefix length.
// Table[k] is the best coverage using only the first k cities.
type Table []int64

// Value returns the optimum over all cities, Table[len(t)-1].
func (t Table) Value() int64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// Mark is the reconstruction state of a single city.
type Mark uint8

const (
	// Unknown: not yet decided by the backward walk.
	Unknown Mark = iota
	// Selected: an antenna is placed in the city.
	Selected
	// Excluded: the city is left without an antenna.
	Excluded
)

// String implements fmt.Stringer.
func (m Mark) String() string {
	switch m {
	case Unknown:
		return "unknown"
	case Selected:
		return "selected"
	case Excluded:
		return "excluded"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// FirstCityPolicy decides how city 1 is treated when the backward walk
// stops on it without deciding it.
//
//   - FirstCityResolved   — city 1 starts Unknown. If the walk stops at
//     prefix 1 it is selected iff Table[1] != Table[0], the same
//     exclude-on-tie rule used for every other city.
//
//   - FirstCityOptimistic — city 1 starts Selected and keeps that mark
//     unless the walk excludes it. This reproduces the classic lab
//     solution, which reports city 1 even when its population is zero.
//
// Both policies report a selection whose total equals Table.Value().
// They differ only when the walk stops at prefix 1 and p[0] == 0.
type FirstCityPolicy int

const (
	// FirstCityResolved decides city 1 from the table (default).
	FirstCityResolved FirstCityPolicy = iota

	// FirstCityOptimistic assumes city 1 is selected unless excluded.
	FirstCityOptimistic
)

// String implements fmt.Stringer.
func (p FirstCityPolicy) String() string {
	switch p {
	case FirstCityResolved:
		return "resolved"
	case FirstCityOptimistic:
		return "optimistic"
	default:
		return fmt.Sprintf("FirstCityPolicy(%d)", int(p))
	}
}

// ParseFirstCityPolicy maps "resolved" / "optimistic" to a policy.
func ParseFirstCityPolicy(s string) (FirstCityPolicy, error) {
	switch s {
	case "resolved":
		return FirstCityResolved, nil
	case "optimistic":
		return FirstCityOptimistic, nil
	default:
		return 0, fmt.Errorf("%w: unknown first-city policy %q", ErrOptionViolation, s)
	}
}

// MemoryMode controls how the forward pass stores its table.
//
//   - FullTable — keep all n+1 cells. Required for reconstruction.
//   - TwoCells  — keep only dp[i-1] and dp[i-2]; value only, O(1) memory.
type MemoryMode int

const (
	// FullTable stores every prefix optimum.
	FullTable MemoryMode = iota

	// TwoCells keeps a rolling pair of cells.
	TwoCells
)

// Result is the outcome of Solve.
type Result struct {
	// Value is the maximum coverable population.
	Value int64

	// Table is the forward DP table (nil in TwoCells mode).
	Table Table

	// Marks holds the final mark per city, zero-indexed like Populations
	// (nil when no selection was requested).
	Marks []Mark

	// Selected is the set of chosen 1-based city numbers. Never nil.
	Selected mapset.Set[int]
}

// Cities returns the selected 1-based city numbers in ascending order.
func (r Result) Cities() []int {
	cities := make([]int, 0, len(r.Marks))
	for i, m := range r.Marks {
		if m == Selected {
			cities = append(cities, i+1)
		}
	}
	return cities
}

// Len returns the number of selected cities.
func (r Result) Len() int {
	if r.Selected == nil {
		return 0
	}
	return r.Selected.Cardinality()
}
