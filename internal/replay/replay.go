// Package replay reads scripted touches and feeds them to a board.
//
// A script holds one entry per line. An entry is either a pixel coordinate
// pair ("450 150" or "450,150", in board pixel space) or one or more square
// names ("e2 e4"), which touch the center of each square. Text after '#' is
// ignored.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/hailam/chessboard/internal/board"
)

// Sentinel errors for script failures.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrSyntax indicates an entry that is neither a coordinate pair nor a square name.
	ErrSyntax = errors.New("syntax error")

	// ErrOffBoard indicates a coordinate pair outside the board extent.
	ErrOffBoard = errors.New("coordinate off the board")
)

// LineError wraps a script error with its location.
type LineError struct {
	Err  error  // The underlying error
	Line int    // 1-based line number
	Text string // The offending entry
}

// Error returns a formatted error message including the line and entry.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Touch is one scripted touch in board pixel space.
type Touch struct {
	X, Y float64
	Line int
}

// Parse reads a script, resolving square names against b's geometry and
// validating coordinates against its extent.
func Parse(r io.Reader, b *board.Board) ([]Touch, error) {
	var touches []Touch

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}

		if x, err := strconv.ParseFloat(fields[0], 64); err == nil {
			if len(fields) != 2 {
				return nil, &LineError{Err: ErrSyntax, Line: n, Text: strings.TrimSpace(text)}
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, &LineError{Err: ErrSyntax, Line: n, Text: fields[1]}
			}
			if !b.Contains(x, y) {
				return nil, &LineError{Err: ErrOffBoard, Line: n, Text: strings.TrimSpace(text)}
			}
			touches = append(touches, Touch{X: x, Y: y, Line: n})
			continue
		}

		for _, f := range fields {
			sq, err := parseSquare(f)
			if err != nil {
				return nil, &LineError{Err: err, Line: n, Text: f}
			}
			x, y := b.Position(sq)
			half := b.Length() / 2
			touches = append(touches, Touch{X: x + half, Y: y + half, Line: n})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return touches, nil
}

// parseSquare parses a square name such as "e4".
func parseSquare(s string) (board.Square, error) {
	s = strings.ToLower(s)
	if len(s) != 2 {
		return board.NoSquare, ErrSyntax
	}
	column := int(s[0]-'a') + 1
	row := int(s[1]-'1') + 1
	if column < 1 || column > board.Columns || row < 1 || row > board.Rows {
		return board.NoSquare, ErrSyntax
	}
	return board.NewSquare(column, row), nil
}

// Run applies touches to b in order, calling frame after each one.
// It stops at the first error frame returns.
func Run(b *board.Board, touches []Touch, frame func(i int, t Touch) error) error {
	for i, t := range touches {
		b.Touch(t.X, t.Y)
		if frame == nil {
			continue
		}
		if err := frame(i, t); err != nil {
			return err
		}
	}
	return nil
}
