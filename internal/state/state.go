// Package state holds the rules of the Shibumi family of games: the pyramid
// geometry shared by all of them, the neighbourhood and connectivity analysis
// built on top of it, and the state machines of each variant.
//
// A Board is immutable once built: Board.Act returns a new Board and never touches
// the original, so boards can be shared freely across goroutines exploring
// different branches of a search.
package state

import (
	"fmt"
)

// Piece is the content of one cell of the pyramid.
type Piece uint8

const (
	Empty Piece = iota
	Black
	White
	Red

	// Unusable marks the cells outside the pyramid footprint. They never hold a piece.
	Unusable

	// NumPieces is the number of distinct cell values.
	NumPieces
)

const (
	// DefaultSize is the number of levels of the standard Shibumi board.
	DefaultSize = 4

	// MinSize and MaxSize of a pyramid supported by this package.
	MinSize = 2
	MaxSize = 8

	// DefaultMaxMoves after which a match is considered a draw by the front-ends.
	DefaultMaxMoves = 200
)

var (
	// PieceLetters used in the text notation.
	PieceLetters = [NumPieces]byte{'.', 'B', 'W', 'R', ' '}

	// LetterToPiece is the reverse of PieceLetters.
	LetterToPiece = map[byte]Piece{'.': Empty, 'B': Black, 'W': White, 'R': Red, ' ': Unusable}

	pieceNames = [NumPieces]string{"Empty", "Black", "White", "Red", "Unusable"}
)

// String returns the piece name.
func (p Piece) String() string {
	if p >= NumPieces {
		return fmt.Sprintf("Piece(%d)", p)
	}
	return pieceNames[p]
}

// Letter used to display the piece.
func (p Piece) Letter() byte {
	return PieceLetters[p]
}

// IsOccupied returns whether the cell holds a piece.
func (p Piece) IsOccupied() bool {
	return p != Empty && p != Unusable
}

// IsColour returns whether p is one of the playing colours: Black, White or Red.
func (p Piece) IsColour() bool {
	return p == Black || p == White || p == Red
}

// Opponent returns the other player of a two-player game between Black and White.
// Anything else returns Empty: Spook pairs Red with Black, see Board.Opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}
