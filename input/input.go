// SPDX-License-Identifier: MIT

// Package input reads the city file consumed by the antenna solver.
//
// Format: whitespace-separated integer tokens, the city count N first,
// followed by N populations. Line breaks carry no meaning; the usual layout
// is two lines:
//
//	5
//	3 2 5 10 7
//
// Tokens after the N-th population are ignored.
//
// Errors:
//   - ErrOpen              — the file could not be opened or read.
//   - ErrMissingCount      — no tokens at all.
//   - ErrBadCount          — the first token is not a non-negative integer.
//   - ErrMissingPopulation — fewer than N populations follow.
//   - ErrBadPopulation     — a population token is not an integer.
//
// Count and population errors are *ParseError values carrying the city
// number (0 for the count) and source position. Range checks beyond
// "is an integer" belong to mwis.Validate.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/antenna/mwis"
)

// Sentinel errors for reading city files.
var (
	ErrOpen              = errors.New("input: cannot read file")
	ErrMissingCount      = errors.New("input: missing number of cities")
	ErrBadCount          = errors.New("input: malformed number of cities")
	ErrMissingPopulation = errors.New("input: missing population")
	ErrBadPopulation     = errors.New("input: malformed population")
)

// ParseError reports the offending token. City is 1-based; 0 means the count.
type ParseError struct {
	City  int
	Pos   lexer.Position
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	what := "number of cities"
	if e.City > 0 {
		what = fmt.Sprintf("population for city %d", e.City)
	}
	if e.Token == "" {
		return fmt.Sprintf("%s: error reading %s: %v", e.Pos, what, e.Err)
	}
	return fmt.Sprintf("%s: error reading %s (got %q): %v", e.Pos, what, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// file is the token stream of a city file.
type file struct {
	EndPos lexer.Position

	Fields []*field `parser:"@@*"`
}

// field is one whitespace-delimited token with its position.
type field struct {
	Pos  lexer.Position
	Text string `parser:"@Field"`
}

var fileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var fileParser = participle.MustBuild[file](
	participle.Lexer(fileLexer),
	participle.Elide("Whitespace"),
)

// ReadFile opens path and parses it.
func ReadFile(path string) (mwis.Populations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a city file from r. filename only labels error positions.
func Parse(filename string, r io.Reader) (mwis.Populations, error) {
	ast, err := fileParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return populate(filename, ast)
}

// populate converts the token stream into populations.
func populate(filename string, ast *file) (mwis.Populations, error) {
	end := ast.EndPos
	if end.Filename == "" {
		end.Filename = filename
	}
	if end.Line == 0 {
		end.Line, end.Column = 1, 1
	}
	if len(ast.Fields) == 0 {
		return nil, &ParseError{City: 0, Pos: end, Err: ErrMissingCount}
	}

	head := ast.Fields[0]
	n, err := strconv.Atoi(head.Text)
	if err != nil || n < 0 {
		cause := ErrBadCount
		if err != nil {
			cause = fmt.Errorf("%w: %w", ErrBadCount, numError(err))
		}
		return nil, &ParseError{City: 0, Pos: head.Pos, Token: head.Text, Err: cause}
	}

	// Capacity is bounded by the tokens actually present, not by n.
	values := ast.Fields[1:]
	p := make(mwis.Populations, 0, min(n, len(values)))
	for c := 1; c <= n; c++ {
		if c > len(values) {
			return nil, &ParseError{City: c, Pos: end, Err: ErrMissingPopulation}
		}
		tok := values[c-1]
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &ParseError{
				City:  c,
				Pos:   tok.Pos,
				Token: tok.Text,
				Err:   fmt.Errorf("%w: %w", ErrBadPopulation, numError(err)),
			}
		}
		p = append(p, v)
	}

	return p, nil
}

// numError strips strconv's echo of the input, which ParseError already shows.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
