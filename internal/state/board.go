package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"strings"
)

// Board is the state of a match of one of the variants: the pyramid, whose turn it
// is and the extra state each variant carries.
//
// A Board is immutable: Act returns a new Board. Information derived from it, like
// the valid moves or the winner, is calculated lazily the first time it is needed,
// see Derived.
type Board struct {
	Variant Variant

	// MoveNumber counts the moves taken since the board was created or parsed,
	// starting at 1. MaxMoves is the move number at which a match is considered
	// finished (a draw, if nobody won), see IsFinished.
	MoveNumber, MaxMoves int

	pyramid *Pyramid
	active  Piece

	spaiji spaijiState
	sparks sparksState
	spire  spireState
	sploof sploofState
	spook  spookState

	// history of previous positions of the match, used by Spargo's superko rule.
	history *HashNode

	derived *derivedCache
}

// NewBoard creates the board at the start of a match of the given variant, in
// the variant's default size.
func NewBoard(variant Variant) *Board {
	return NewBoardWithSize(variant, variant.DefaultSize())
}

// NewBoardWithSize creates the board at the start of a match of the given variant,
// with a pyramid of the given number of levels.
func NewBoardWithSize(variant Variant, size int) *Board {
	b := newBoard(variant, NewPyramid(size))
	switch variant {
	case Spline, Sandbox:
		// Empty pyramid, nothing else to set.
	case Spargo, Margo:
		b.spargoInit()
	case Spaiji:
		b.spaijiInit()
	case Sparks:
		b.sparksInit()
	case Spire:
		b.spireInit()
	case Sploof:
		b.sploofInit()
	case Spook:
		b.spookInit()
	default:
		exceptions.Panicf("unknown variant %s", variant)
	}
	b.history = b.historyStart()
	return b
}

func newBoard(variant Variant, pyramid *Pyramid) *Board {
	if variant >= NumVariants {
		exceptions.Panicf("unknown variant %s", variant)
	}
	return &Board{
		Variant:    variant,
		MoveNumber: 1,
		MaxMoves:   DefaultMaxMoves,
		pyramid:    pyramid,
		derived:    &derivedCache{},
	}
}

// ParseBoard parses a board of the given variant from its text notation, as
// returned by Board.String, using the variant's default size.
func ParseBoard(variant Variant, text string) (*Board, error) {
	return ParseBoardWithSize(variant, variant.DefaultSize(), text)
}

// ParseBoardWithSize is like ParseBoard, for a pyramid of the given number of levels.
//
// It returns a *ParseError for malformed board layouts. The history of previous
// positions, used by Spargo, is not part of the notation: it starts with the parsed
// position.
func ParseBoardWithSize(variant Variant, size int, text string) (*Board, error) {
	lines := splitLines(text)
	var metadata string
	if variant.hasMetadata() && len(lines) > 0 {
		if last := lines[len(lines)-1]; strings.HasPrefix(last, ">") || strings.HasPrefix(last, "<") {
			metadata = last
			lines = lines[:len(lines)-1]
		}
	}
	pyramid, err := ParsePyramid(size, lines)
	if err != nil {
		return nil, err
	}
	b := newBoard(variant, pyramid)
	switch variant {
	case Spline, Sandbox:
	case Spargo, Margo:
		b.spargoParse(metadata)
	case Spaiji:
		b.spaijiParse(metadata)
	case Sparks:
		b.sparksParse(metadata)
	case Spire:
		b.spireParse(metadata)
	case Sploof:
		err = b.sploofParse(metadata)
	case Spook:
		b.spookParse(metadata)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse %s board metadata %q", variant, metadata)
	}
	b.history = b.historyStart()
	return b, nil
}

// MustParseBoard is like ParseBoard, but panics on errors. Meant for tests and fixed layouts.
func MustParseBoard(variant Variant, text string) *Board {
	b, err := ParseBoard(variant, text)
	if err != nil {
		panic(err)
	}
	return b
}

// hasMetadata returns whether the variant writes a metadata line after the pyramid levels.
func (v Variant) hasMetadata() bool {
	return v != Spline && v != Sandbox
}

// clone returns a shallow copy of the board for a next move: the pyramid is deep
// copied, and the derived information is reset.
func (b *Board) clone() *Board {
	newB := &Board{}
	*newB = *b
	newB.pyramid = b.pyramid.Clone()
	newB.derived = &derivedCache{}
	return newB
}

// Size returns the number of levels of the pyramid.
func (b *Board) Size() int {
	return b.pyramid.Size
}

// Geometry of the board's pyramid.
func (b *Board) Geometry() Geometry {
	return b.pyramid.Geometry
}

// Pyramid returns the cells of the board. It is shared with the Board and
// must not be modified, use Pyramid.Clone if needed.
func (b *Board) Pyramid() *Pyramid {
	return b.pyramid
}

// At returns the piece at the given position, or Unusable if it is outside the pyramid.
func (b *Board) At(pos Pos) Piece {
	return b.pyramid.At(pos)
}

// ActivePlayer returns the player to move. It is Empty for Sandbox.
func (b *Board) ActivePlayer() Piece {
	switch b.Variant {
	case Spline:
		if (b.pyramid.Count(Black)+b.pyramid.Count(White))%2 == 0 {
			return Black
		}
		return White
	case Sandbox:
		return Empty
	default:
		return b.active
	}
}

// Opponent returns the other player of the variant: White and Black face each other,
// except for Spook where Red and Black do.
func (b *Board) Opponent(player Piece) Piece {
	if b.Variant == Spook {
		switch player {
		case Red:
			return Black
		case Black:
			return Red
		default:
			return Empty
		}
	}
	return player.Opponent()
}

// NumMoves returns the size of the move space: moves are integers in [0, NumMoves).
func (b *Board) NumMoves() int {
	volume := b.pyramid.Volume()
	switch b.Variant {
	case Spaiji, Sparks, Spire, Sploof:
		return 2 * volume
	case Spook:
		return volume + 1
	case Sandbox:
		return 4 * volume
	default:
		return volume
	}
}

// MoveCount returns the number of moves already made in the match, as far as the
// board can tell.
func (b *Board) MoveCount() int {
	switch b.Variant {
	case Sparks:
		return b.sparks.moveCount
	case Spook:
		return b.spook.moveCount
	default:
		return b.pyramid.Count(Black) + b.pyramid.Count(White)
	}
}

// PieceCount returns the "count" of the player: the number of pieces on the board
// for most variants, the score (largest group) for Spaiji and the stock of pieces
// for Sploof.
func (b *Board) PieceCount(player Piece) int {
	switch b.Variant {
	case Spaiji:
		return b.pyramid.GroupScores()[player]
	case Sploof:
		return b.sploofStock(player)
	default:
		return b.pyramid.Count(player)
	}
}

// ValidColours returns the colours the active player may place this turn.
func (b *Board) ValidColours() []Piece {
	switch b.Variant {
	case Sandbox:
		return []Piece{Black, White, Red}
	case Spire:
		if b.spire.redAllowed {
			return []Piece{b.active, Red}
		}
		return []Piece{b.active}
	case Sparks:
		var colours []Piece
		if !b.sparks.adding || b.sparks.hasCoal {
			colours = append(colours, b.active)
		}
		if b.sparks.adding && b.sparks.hasSpark {
			colours = append(colours, Red)
		}
		return colours
	case Spaiji:
		if b.spaiji.anchor.IsValid() {
			return []Piece{b.pyramid.At(b.spaiji.anchor).Opponent()}
		}
		return []Piece{Black, White}
	default:
		return []Piece{b.ActivePlayer()}
	}
}

// Act returns a new board with the given move applied. Use ValidMoves or Actions
// to find the valid moves.
//
// It returns an error wrapping ErrInvalidMove if the move is not valid, or for
// Spargo and Margo an error wrapping ErrIllegalMove when the rules forbid the move.
// The board itself is never changed.
func (b *Board) Act(move int) (*Board, error) {
	if move < 0 || move >= b.NumMoves() {
		return nil, &CoordinateError{Index: move, Limit: b.NumMoves()}
	}
	if b.Variant == Spargo || b.Variant == Margo {
		// Valid moves of Spargo are found by trying them, so only the geometry is checked here.
		pos := b.pyramid.MustCoordinates(move)
		if b.pyramid.At(pos) != Empty || !b.pyramid.IsSupported(pos) {
			return nil, errors.Wrapf(ErrInvalidMove, "%s: position %s not available", b.DisplayMove(move), pos)
		}
	} else if !b.ValidMoves()[move] {
		return nil, errors.Wrapf(ErrInvalidMove, "%s (move %d) is not valid now", b.DisplayMove(move), move)
	}
	newB, err := b.apply(move)
	if err != nil {
		return nil, err
	}
	return newB, nil
}

// MustAct is like Act, but panics on errors.
func (b *Board) MustAct(move int) *Board {
	newB, err := b.Act(move)
	if err != nil {
		panic(err)
	}
	return newB
}

// apply the move to a clone of the board, without checking its validity. Only
// Spargo returns errors.
func (b *Board) apply(move int) (newB *Board, err error) {
	newB = b.clone()
	newB.MoveNumber++
	switch b.Variant {
	case Spline:
		newB.pyramid.Set(b.pyramid.MustCoordinates(move), b.ActivePlayer())
	case Spargo, Margo:
		err = newB.spargoApply(move)
	case Spaiji:
		newB.spaijiApply(move)
	case Sparks:
		newB.sparksApply(move)
	case Spire:
		newB.spireApply(move)
	case Sploof:
		newB.sploofApply(move)
	case Spook:
		newB.spookApply(move)
	case Sandbox:
		newB.sandboxApply(move)
	}
	if err != nil {
		return nil, err
	}
	return newB, nil
}

// fillValidMoves fills the mask of valid moves, with NumMoves entries.
func (b *Board) fillValidMoves(mask []bool) {
	switch b.Variant {
	case Spline:
		if b.splineWinner() == Empty {
			b.pyramid.FillSupportedMoves(mask)
		}
	case Spargo, Margo:
		b.spargoValidMoves(mask)
	case Spaiji:
		b.spaijiValidMoves(mask)
	case Sparks:
		b.sparksValidMoves(mask)
	case Spire:
		b.spireValidMoves(mask)
	case Sploof:
		b.sploofValidMoves(mask)
	case Spook:
		b.spookValidMoves(mask)
	case Sandbox:
		b.sandboxValidMoves(mask)
	}
}

// String returns the text notation of the board: the pyramid levels, followed by
// the metadata line of the variant if it has one. ParseBoard reads it back.
func (b *Board) String() string {
	text := b.pyramid.String()
	switch b.Variant {
	case Spline, Sandbox:
		return text
	case Spargo, Margo:
		return text + b.spargoMetadata() + "\n"
	case Spaiji:
		return text + b.spaijiMetadata() + "\n"
	case Sparks:
		return text + b.sparksMetadata() + "\n"
	case Spire:
		return text + b.spireMetadata() + "\n"
	case Sploof:
		return text + b.sploofMetadata() + "\n"
	case Spook:
		return text + b.spookMetadata() + "\n"
	}
	return text
}

// DisplayMove returns the text of the move, the inverse of ParseMove.
func (b *Board) DisplayMove(move int) string {
	volume := b.pyramid.Volume()
	if b.Variant == Spook && move == volume {
		return PassText
	}
	pos := b.pyramid.MustCoordinates(move % volume)
	position := PositionName(pos)
	var prefix string
	switch b.Variant {
	case Spaiji:
		prefix = string(splitColours[move/volume].Letter())
	case Sandbox:
		prefix = sandboxPrefixes[move/volume]
	case Sparks:
		if !b.sparks.adding {
			return position
		}
		prefix = string(b.redOrActive(move).Letter())
	case Spire, Sploof:
		prefix = string(b.redOrActive(move).Letter())
	}
	return prefix + position
}

// split colours of the move spaces of Spaiji.
var splitColours = [2]Piece{Black, White}

func (b *Board) redOrActive(move int) Piece {
	if move >= b.pyramid.Volume() {
		return Red
	}
	return b.active
}

// debugString describes the board for logging.
func (b *Board) debugString() string {
	return fmt.Sprintf("%s board, %s to move (move #%d):\n%s", b.Variant, b.ActivePlayer(), b.MoveNumber, b)
}
