// SPDX-License-Identifier: MIT

// Package report renders a solved antenna placement for the console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/antenna/mwis"
)

// Header lines of the console report.
const (
	TitleLine     = "=== DP Solution ==="
	ValuePrefix   = "Maximum population covered: "
	SelectionLine = "Selected cities for antenna placement:"
)

// Format renders res as:
//
//	=== DP Solution ===
//	Maximum population covered: 15
//	Selected cities for antenna placement:
//	1 3 5
//
// Cities are 1-based, ascending, space-separated; an empty selection
// yields an empty last line.
func Format(res mwis.Result) string {
	var sb strings.Builder
	sb.WriteString(TitleLine)
	sb.WriteByte('\n')
	sb.WriteString(ValuePrefix)
	sb.WriteString(strconv.FormatInt(res.Value, 10))
	sb.WriteByte('\n')
	sb.WriteString(SelectionLine)
	sb.WriteByte('\n')
	for i, c := range res.Cities() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Write renders res to w in a single write.
func Write(w io.Writer, res mwis.Result) error {
	if _, err := io.WriteString(w, Format(res)); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
