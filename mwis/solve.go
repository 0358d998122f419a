// SPDX-License-Identifier: MIT

package mwis

import mapset "github.com/deckarep/golang-set/v2"

// Solve validates p, runs the forward pass and, unless disabled,
// reconstructs one optimal selection.
//
// Steps:
//  1. resolve options (ErrOptionViolation, ErrSelectionNeedsTable)
//  2. Validate(p)     (ErrEmptyInput, ErrNegativePopulation, ErrOverflow)
//  3. Forward(p) or MaxValue(p) depending on MemoryMode
//  4. Reconstruct when ReturnSelection is set
//
// The returned Result never shares memory with p. Solve is deterministic:
// equal inputs yield equal tables and selections.
//
// Example:
//
//	res, err := Solve(Populations{5, 10})
//	// res.Value == 10, res.Cities() == [2]
func Solve(p Populations, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = Validate(p, o); err != nil {
		return Result{}, err
	}

	res := Result{Selected: mapset.NewSet[int]()}
	if o.MemoryMode == TwoCells {
		res.Value = MaxValue(p)
		return res, nil
	}

	res.Table = Forward(p)
	res.Value = res.Table.Value()
	if !o.ReturnSelection {
		return res, nil
	}

	res.Marks, err = Reconstruct(res.Table, p, o.FirstCity)
	if err != nil {
		return Result{}, err
	}
	for i, m := range res.Marks {
		if m == Selected {
			res.Selected.Add(i + 1)
		}
	}

	return res, nil
}
