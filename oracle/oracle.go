// SPDX-License-Identifier: MIT

// Package oracle cross-checks mwis results with general-purpose solvers.
//
// The path problem is encoded propositionally with one variable x_c per city:
//
//	hard:  ¬x_c ∨ ¬x_{c+1}        for c = 1..n-1   (no neighbours)
//	soft:  x_c  with weight p_c   for p_c > 0       (coverage)
//
// Optimum minimizes the weight of violated soft clauses with gophersat's
// MaxSAT front end, so the best coverage is Σp − cost. Independent checks a
// concrete selection against the hard clauses under assumptions with gini.
//
// Both are exponential in the worst case and meant for verification, not as
// a replacement for the linear DP.
package oracle

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/katalvlaran/antenna/mwis"
)

// Sentinel errors for oracle checks.
var (
	// ErrNegativeWeight indicates a negative population; MaxSAT weights are positive.
	ErrNegativeWeight = errors.New("oracle: negative population cannot be a clause weight")

	// ErrWeightRange indicates a population or total too large for the solver's int weights.
	ErrWeightRange = errors.New("oracle: population exceeds solver weight range")

	// ErrUnsat indicates the solver found no model, which cannot happen for
	// a well-formed encoding (the empty selection always satisfies it).
	ErrUnsat = errors.New("oracle: encoding unsatisfiable")

	// ErrMismatch indicates the DP result disagrees with the oracle.
	ErrMismatch = errors.New("oracle: result mismatch")
)

// cityVar names the MaxSAT variable of 1-based city c.
func cityVar(c int) string {
	return "x" + strconv.Itoa(c)
}

// Optimum returns the best coverage of p and one selection achieving it,
// as ascending 1-based city numbers.
func Optimum(p mwis.Populations) (int64, []int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil, mwis.ErrEmptyInput
	}

	var total int64
	constrs := make([]maxsat.Constr, 0, 2*n)
	for i, w := range p {
		switch {
		case w < 0:
			return 0, nil, fmt.Errorf("%w: city %d has %d", ErrNegativeWeight, i+1, w)
		case w > math.MaxInt32 || total > math.MaxInt32-w:
			return 0, nil, fmt.Errorf("%w: city %d has %d", ErrWeightRange, i+1, w)
		case w > 0:
			// Weight 0 would make the clause hard; empty cities need no soft clause.
			constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(cityVar(i + 1))}, int(w)))
			total += w
		}
	}
	if total == 0 {
		return 0, []int{}, nil
	}
	for c := 1; c < n; c++ {
		constrs = append(constrs, maxsat.HardClause(maxsat.Var(cityVar(c)).Negation(), maxsat.Var(cityVar(c+1)).Negation()))
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return 0, nil, ErrUnsat
	}

	cities := make([]int, 0, n/2+1)
	for c := 1; c <= n; c++ {
		if model[cityVar(c)] && p[c-1] > 0 {
			cities = append(cities, c)
		}
	}

	return total - int64(cost), cities, nil
}

// Independent reports whether cities (1-based) contain no two neighbours on
// a path of n cities. Out-of-range cities are an error.
func Independent(n int, cities []int) (bool, error) {
	if n <= 0 {
		return false, mwis.ErrEmptyInput
	}

	g := gini.NewV(n)
	// Register every city variable, even those without neighbours.
	for c := 1; c <= n; c++ {
		g.Add(z.Var(c).Pos())
		g.Add(z.Var(c).Neg())
		g.Add(0)
	}
	for c := 1; c < n; c++ {
		g.Add(z.Var(c).Neg())
		g.Add(z.Var(c + 1).Neg())
		g.Add(0)
	}

	chosen := make([]bool, n+1)
	for _, c := range cities {
		if c < 1 || c > n {
			return false, fmt.Errorf("%w: city %d not in 1..%d", mwis.ErrCityOutOfRange, c, n)
		}
		chosen[c] = true
	}
	assumptions := make([]z.Lit, 0, n)
	for c := 1; c <= n; c++ {
		if chosen[c] {
			assumptions = append(assumptions, z.Var(c).Pos())
		} else {
			assumptions = append(assumptions, z.Var(c).Neg())
		}
	}
	g.Assume(assumptions...)

	return g.Solve() == 1, nil
}

// Verify checks res against p: the reported value must equal the MaxSAT
// optimum, and when a selection is present it must be independent and
// sum to that value.
func Verify(p mwis.Populations, res mwis.Result) error {
	want, _, err := Optimum(p)
	if err != nil {
		return err
	}
	if res.Value != want {
		return fmt.Errorf("%w: value %d, oracle optimum %d", ErrMismatch, res.Value, want)
	}
	if res.Marks == nil {
		return nil
	}

	cities := res.Cities()
	ok, err := Independent(len(p), cities)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: selection %v has neighbours", ErrMismatch, cities)
	}

	var sum int64
	for _, c := range cities {
		sum += p[c-1]
	}
	if sum != want {
		return fmt.Errorf("%w: selection %v sums to %d, want %d", ErrMismatch, cities, sum, want)
	}

	return nil
}
