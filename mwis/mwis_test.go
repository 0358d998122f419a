// SPDX-License-Identifier: MIT

package mwis_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antenna/mwis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_EmptyInput verifies that an empty sequence is rejected.
func TestSolve_EmptyInput(t *testing.T) {
	_, err := mwis.Solve(nil)
	assert.ErrorIs(t, err, mwis.ErrEmptyInput, "nil populations should error")

	_, err = mwis.Solve(mwis.Populations{})
	assert.ErrorIs(t, err, mwis.ErrEmptyInput, "empty populations should error")
}

// TestSolve_NegativeRejected ensures negatives fail validation by default.
func TestSolve_NegativeRejected(t *testing.T) {
	_, err := mwis.Solve(mwis.Populations{4, -1, 3})
	assert.ErrorIs(t, err, mwis.ErrNegativePopulation)
	assert.Contains(t, err.Error(), "city 2")
}

// TestSolve_NegativeAllowed checks the permissive mode keeps the recurrence
// consistent: the reported cities always add up to the table value.
func TestSolve_NegativeAllowed(t *testing.T) {
	p := mwis.Populations{-4, 6, -1, -3, 5}
	res, err := mwis.Solve(p, mwis.WithNegativeAllowed(true))
	require.NoError(t, err)
	assert.Equal(t, mwis.Table{0, -4, 6, 6, 6, 11}, res.Table)
	assert.Equal(t, int64(11), res.Value)
	assert.Equal(t, []int{2, 5}, res.Cities())
	assert.Equal(t, res.Value, sumCities(p, res.Cities()))
}

// TestSolve_Overflow verifies the range check on the total population.
func TestSolve_Overflow(t *testing.T) {
	_, err := mwis.Solve(mwis.Populations{math.MaxInt64, 1})
	assert.ErrorIs(t, err, mwis.ErrOverflow)

	_, err = mwis.Solve(mwis.Populations{math.MinInt64}, mwis.WithNegativeAllowed(true))
	assert.ErrorIs(t, err, mwis.ErrOverflow)

	_, err = mwis.Solve(mwis.Populations{math.MaxInt64})
	assert.NoError(t, err, "a single maximal value still fits")
}

// TestSolve_TwoCities covers populations [5, 10].
func TestSolve_TwoCities(t *testing.T) {
	res, err := mwis.Solve(mwis.Populations{5, 10})
	require.NoError(t, err)
	assert.Equal(t, mwis.Table{0, 5, 10}, res.Table)
	assert.Equal(t, int64(10), res.Value)
	assert.Equal(t, []int{2}, res.Cities())
	assert.True(t, res.Selected.Contains(2))
	assert.Equal(t, 1, res.Len())
}

// TestSolve_FiveCities covers populations [3, 2, 5, 10, 7].
func TestSolve_FiveCities(t *testing.T) {
	p := mwis.Populations{3, 2, 5, 10, 7}
	res, err := mwis.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, mwis.Table{0, 3, 3, 8, 13, 15}, res.Table)
	assert.Equal(t, int64(15), res.Value)
	assert.Equal(t, []int{1, 3, 5}, res.Cities())
	assert.Equal(t, bruteForce(p), res.Value)
}

// TestSolve_SingleCity covers n = 1 under both first-city policies.
func TestSolve_SingleCity(t *testing.T) {
	for _, policy := range []mwis.FirstCityPolicy{mwis.FirstCityResolved, mwis.FirstCityOptimistic} {
		res, err := mwis.Solve(mwis.Populations{7}, mwis.WithFirstCityPolicy(policy))
		require.NoError(t, err, policy.String())
		assert.Equal(t, int64(7), res.Value, policy.String())
		assert.Equal(t, []int{1}, res.Cities(), policy.String())
	}

	// A zero-population single city is only reported by the optimistic policy.
	res, err := mwis.Solve(mwis.Populations{0})
	require.NoError(t, err)
	assert.Empty(t, res.Cities(), "resolved policy leaves an empty city out")

	res, err = mwis.Solve(mwis.Populations{0}, mwis.WithFirstCityPolicy(mwis.FirstCityOptimistic))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Cities(), "optimistic policy keeps city 1")
}

// TestSolve_AllZero covers n = 4 with every population zero.
func TestSolve_AllZero(t *testing.T) {
	p := mwis.Populations{0, 0, 0, 0}

	res, err := mwis.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Value)
	assert.Empty(t, res.Cities())
	assert.Equal(t, []mwis.Mark{mwis.Excluded, mwis.Excluded, mwis.Excluded, mwis.Excluded}, res.Marks)

	res, err = mwis.Solve(p, mwis.WithFirstCityPolicy(mwis.FirstCityOptimistic))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Value)
	assert.Equal(t, []int{1}, res.Cities())
}

// TestSolve_TieExcludesCurrent checks that equal branches keep the earlier city.
func TestSolve_TieExcludesCurrent(t *testing.T) {
	// dp[2]: exclude = 4, include = 4 + 0 → tie, keep city 1.
	res, err := mwis.Solve(mwis.Populations{4, 4})
	require.NoError(t, err)
	assert.Equal(t, mwis.Table{0, 4, 4}, res.Table)
	assert.Equal(t, []int{1}, res.Cities())
}

// TestSolve_TwoCells ensures the rolling mode matches the full table value
// and carries no table or selection.
func TestSolve_TwoCells(t *testing.T) {
	p := mwis.Populations{2, 7, 9, 3, 1}
	ref, err := mwis.Solve(p)
	require.NoError(t, err)

	res, err := mwis.Solve(p, mwis.WithMemoryMode(mwis.TwoCells))
	require.NoError(t, err)
	assert.Equal(t, ref.Value, res.Value)
	assert.Nil(t, res.Table)
	assert.Empty(t, res.Cities())
	assert.Equal(t, 0, res.Len())
}

// TestSolve_OptionViolations checks invalid option values and combinations.
func TestSolve_OptionViolations(t *testing.T) {
	p := mwis.Populations{1, 2}

	_, err := mwis.Solve(p, mwis.WithFirstCityPolicy(mwis.FirstCityPolicy(9)))
	assert.ErrorIs(t, err, mwis.ErrOptionViolation)

	_, err = mwis.Solve(p, mwis.WithMemoryMode(mwis.MemoryMode(9)))
	assert.ErrorIs(t, err, mwis.ErrOptionViolation)

	_, err = mwis.Solve(p, mwis.WithMemoryMode(mwis.TwoCells), mwis.WithSelection(true))
	assert.ErrorIs(t, err, mwis.ErrSelectionNeedsTable)
}

// TestSolve_WithoutSelection skips reconstruction but keeps the table.
func TestSolve_WithoutSelection(t *testing.T) {
	res, err := mwis.Solve(mwis.Populations{1, 5, 1}, mwis.WithSelection(false))
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Value)
	assert.Len(t, res.Table, 4)
	assert.Nil(t, res.Marks)
	assert.Equal(t, 0, res.Len())
}

// TestSolve_BruteForce compares Solve against exhaustive enumeration and
// checks the selection invariants for random inputs up to 16 cities.
func TestSolve_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	policies := []mwis.FirstCityPolicy{mwis.FirstCityResolved, mwis.FirstCityOptimistic}

	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(16)
		limit := int64(1 + rng.Intn(20)) // small range to provoke ties
		p := randomPopulations(rng, n, limit)
		want := bruteForce(p)

		for _, policy := range policies {
			res, err := mwis.Solve(p, mwis.WithFirstCityPolicy(policy))
			require.NoError(t, err)
			require.Equal(t, want, res.Value, "p=%v policy=%s", p, policy)

			cities := res.Cities()
			total, err := mwis.Check(p, cities)
			require.NoError(t, err, "p=%v cities=%v", p, cities)
			require.Equal(t, res.Value, total, "p=%v cities=%v", p, cities)
			require.Equal(t, len(cities), res.Len())

			for _, m := range res.Marks {
				require.NotEqual(t, mwis.Unknown, m, "every city must be decided")
			}
		}
	}
}

// TestSolve_Deterministic verifies repeated runs agree on table and selection.
func TestSolve_Deterministic(t *testing.T) {
	p := mwis.Populations{6, 6, 6, 6, 6, 6, 6}
	first, err := mwis.Solve(p)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := mwis.Solve(p)
		require.NoError(t, err)
		assert.Equal(t, first.Table, again.Table)
		assert.Equal(t, first.Cities(), again.Cities())
		assert.True(t, first.Selected.Equal(again.Selected))
	}
}

// TestSolve_DoesNotMutateInput ensures populations stay read-only.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	p := mwis.Populations{3, 1, 4, 1, 5}
	orig := append(mwis.Populations(nil), p...)
	_, err := mwis.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, orig, p)
}

// TestParseFirstCityPolicy maps flag strings to policies.
func TestParseFirstCityPolicy(t *testing.T) {
	p, err := mwis.ParseFirstCityPolicy("optimistic")
	require.NoError(t, err)
	assert.Equal(t, mwis.FirstCityOptimistic, p)

	p, err = mwis.ParseFirstCityPolicy("resolved")
	require.NoError(t, err)
	assert.Equal(t, mwis.FirstCityResolved, p)

	_, err = mwis.ParseFirstCityPolicy("greedy")
	assert.ErrorIs(t, err, mwis.ErrOptionViolation)
}
