// SPDX-License-Identifier: MIT

// Command antenna places antennas on a line of cities so that no two
// neighbouring cities both get one and the covered population is maximal.
//
// Usage:
//
//	antenna [flags] <input_file>
//
// The input file holds the number of cities followed by one population per
// city, whitespace-separated:
//
//	5
//	3 2 5 10 7
//
// Output:
//
//	=== DP Solution ===
//	Maximum population covered: 15
//	Selected cities for antenna placement:
//	1 3 5
//
// Flags:
//
//	-first-city resolved|optimistic  how city 1 is decided (default resolved)
//	-allow-negative                  admit negative populations
//	-verify                          cross-check the result with a MaxSAT solver
//	-log-level debug|info|warn|error diagnostics on stderr (default warn)
//
// Exit status is 0 on success and 1 on any usage, read, parse, validation
// or verification error. Nothing is printed to stdout on failure.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
