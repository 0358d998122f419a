// SPDX-License-Identifier: MIT

// Package antenna places mobile-network antennas on a line of cities so that
// no two neighbouring cities both carry one and the covered population is
// as large as possible: the maximum-weight independent set on a path graph.
//
// 🚀 What is inside?
//
//	mwis/        — forward DP table, backward reconstruction, validation
//	input/       — city file reader (count, then one population per city)
//	oracle/      — MaxSAT / SAT cross-checks of a solved placement
//	report/      — console rendering of a placement
//	cmd/antenna/ — command-line front end
//
// Quick ASCII example:
//
//	 3 ── 2 ── 5 ── 10 ── 7
//	 ▲         ▲          ▲      covered = 3 + 5 + 7 = 15
//
//	go install github.com/katalvlaran/antenna/cmd/antenna@latest
//	antenna cities.txt
package antenna
