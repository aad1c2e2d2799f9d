package state

// This file holds the text notation of moves: "3E" is the lowest available cell
// labelled row 3, column E (see notation.go). Variants with more than one kind of
// move at a cell use a prefix: "B3E", "W3E", "R3E" for the colour placed, "x3E" for
// a removal in Sandbox. Spook also has "PASS".

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// PassText is the text of Spook's pass move.
const PassText = "PASS"

// MoveKind selects which of the moves at a cell MoveIndex returns.
type MoveKind uint8

const (
	// DefaultMove is the move of the active player at the cell: placing its
	// colour for most variants, removing or moving the ghost when that is what the
	// variant's phase is about. For Spaiji and Sandbox, where the colour is chosen,
	// it is the same as PlaceBlack.
	DefaultMove MoveKind = iota
	PlaceBlack
	PlaceWhite
	PlaceRed
	RemovePiece
)

var sandboxPrefixes = [4]string{"B", "W", "R", "x"}

// PositionName returns the cell label of the position, like "3E".
func PositionName(pos Pos) string {
	h, r, c := int(pos.H), int(pos.R), int(pos.C)
	return RowName(h, r) + string(ColumnName(h, c))
}

// MoveIndex returns the move of the given kind at pos. It panics if the variant has
// no such kind of move: see ParseMove for a version that returns errors.
func (b *Board) MoveIndex(pos Pos, kind MoveKind) int {
	section, ok := b.moveSection(kind)
	if !ok {
		exceptions.Panicf("%s has no move of kind %d", b.Variant, kind)
	}
	return section*b.pyramid.Volume() + b.pyramid.Index(pos)
}

// moveSection returns which block of Volume() moves holds the moves of the given kind.
func (b *Board) moveSection(kind MoveKind) (section int, ok bool) {
	ownColour := func(colour Piece) (int, bool) {
		return 0, colour == b.ActivePlayer()
	}
	switch b.Variant {
	case Spaiji:
		switch kind {
		case DefaultMove, PlaceBlack:
			return 0, true
		case PlaceWhite:
			return 1, true
		}
	case Sandbox:
		switch kind {
		case DefaultMove, PlaceBlack:
			return 0, true
		case PlaceWhite:
			return 1, true
		case PlaceRed:
			return 2, true
		case RemovePiece:
			return 3, true
		}
	case Sparks, Spire, Sploof:
		switch kind {
		case DefaultMove:
			return 0, true
		case PlaceRed:
			return 1, true
		case PlaceBlack:
			return ownColour(Black)
		case PlaceWhite:
			return ownColour(White)
		case RemovePiece:
			if b.Variant == Sploof {
				return 1, true
			}
			return 0, b.Variant == Sparks && !b.sparks.adding
		}
	default:
		return 0, kind == DefaultMove || (kind == RemovePiece && b.Variant == Spook)
	}
	return 0, false
}

// kindFromPrefix maps a move text prefix to a MoveKind.
func kindFromPrefix(prefix string) (MoveKind, bool) {
	switch prefix {
	case "":
		return DefaultMove, true
	case "B", "b":
		return PlaceBlack, true
	case "W", "w":
		return PlaceWhite, true
	case "R", "r":
		return PlaceRed, true
	case "x", "X":
		return RemovePiece, true
	}
	return DefaultMove, false
}

// ParseMove parses the text of a move, as returned by DisplayMove, and returns its index.
//
// The cell label is resolved to the lowest cell with that label where the move is
// valid. An error wrapping ErrInvalidMove (a *CoordinateError) is returned if no such
// move is available.
func (b *Board) ParseMove(text string) (int, error) {
	text = strings.TrimSpace(text)
	invalid := &CoordinateError{Text: text}
	if b.Variant == Spook && strings.EqualFold(text, PassText) {
		move := b.pyramid.Volume()
		if !b.ValidMoves()[move] {
			return -1, errors.WithMessage(invalid, "passing not allowed now")
		}
		return move, nil
	}

	// Split prefix, row and column.
	digitsStart := strings.IndexFunc(text, unicode.IsDigit)
	if digitsStart < 0 || len(text)-digitsStart < 2 {
		return -1, invalid
	}
	prefix, rowText, columnText := text[:digitsStart], text[digitsStart:len(text)-1], text[len(text)-1:]
	kind, ok := kindFromPrefix(prefix)
	if !ok {
		return -1, invalid
	}
	section, ok := b.moveSection(kind)
	if !ok {
		return -1, invalid
	}
	rowNum, err := strconv.Atoi(rowText)
	column := unicode.ToUpper(rune(columnText[0]))
	if err != nil || rowNum < 1 || column < 'A' || column > 'Z' {
		return -1, invalid
	}

	offset := section * b.pyramid.Volume()
	validMoves := b.ValidMoves()
	for pos := range b.pyramid.labelledPositions(rowNum, int(column-'A')) {
		move := offset + b.pyramid.Index(pos)
		if validMoves[move] {
			return move, nil
		}
	}
	return -1, invalid
}

// labelledPositions enumerates the positions with the given row number and column
// (0 for 'A'), from the lowest level up. Positions with the same label are stacked
// two levels apart from each other.
func (g Geometry) labelledPositions(rowNum, column int) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		row := rowNum - 1
		h, r, c := row%2, row/2, column/2
		if column%2 != h {
			// Row and column labels of different levels, e.g. "5D".
			return
		}
		for g.ContainsHRC(h, r, c) {
			if !yield(Pos{int8(h), int8(r), int8(c)}) {
				return
			}
			h += 2
			r--
			c--
		}
	}
}
