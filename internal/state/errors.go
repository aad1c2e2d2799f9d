package state

import (
	"fmt"
	"github.com/pkg/errors"
)

// ErrIllegalMove is returned (wrapped with the reason) by Board.Act when a move
// allowed by the geometry is rejected by the rules at application time. Only
// Spargo and Margo do that: suicide and repeated positions are only detected
// by trying the move.
var ErrIllegalMove = errors.New("illegal move")

// ErrInvalidMove is returned (wrapped) when a move index or a move text doesn't resolve
// to a move of the variant.
var ErrInvalidMove = errors.New("invalid move")

// ParseError is returned by ParseBoard for an unexpected character in the board text.
// Line and Column are 1-based.
type ParseError struct {
	Line, Column int
	Char         rune
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Unexpected %q at line %d, column %d.", e.Char, e.Line, e.Column)
}

// CoordinateError is returned when a move index, or a move text, doesn't resolve to a
// cell of the pyramid.
//
// It matches ErrInvalidMove with errors.Is.
type CoordinateError struct {
	// Index of the move, if the error comes from a move index.
	Index, Limit int

	// Text of the move, if the error comes from parsing a move.
	Text string
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("Invalid move: %s.", e.Text)
	}
	return fmt.Sprintf("Invalid move: index %d outside of [0, %d).", e.Index, e.Limit)
}

// Is allows errors.Is(err, ErrInvalidMove).
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidMove
}
