package state

// This file holds the function that orchestrates the building of information
// derived from the game state: valid moves, the winner and the end of the match.

import (
	"fmt"
	"sync"
)

// Derived holds information that is generated from the Board state.
type Derived struct {
	// ValidMoves is a mask with Board.NumMoves entries: the moves that can be played.
	ValidMoves []bool

	// Actions lists the valid moves in increasing order.
	Actions []int

	// Winner of the match by the rules of the variant, or Empty.
	Winner Piece

	// Ended is true when the rules end the match: someone won, or there are no
	// moves left.
	Ended bool

	// nextBoards are the cached generated boards for all possible actions taken.
	// If set, it has the same length as Actions.
	//
	// It is returned by Board.TakeAllActions.
	nextBoards []*Board
	nextOnce   sync.Once
}

// derivedCache builds Derived once per Board, on first use. Boards are shared
// across goroutines during searches, hence the sync.Once.
type derivedCache struct {
	once    sync.Once
	derived *Derived
}

// Derived returns the information derived from the board, building it on first use.
func (b *Board) Derived() *Derived {
	b.derived.once.Do(func() {
		b.derived.derived = b.buildDerived()
	})
	return b.derived.derived
}

// buildDerived builds the information derived from the board.
func (b *Board) buildDerived() *Derived {
	d := &Derived{ValidMoves: make([]bool, b.NumMoves())}
	b.fillValidMoves(d.ValidMoves)
	for move, valid := range d.ValidMoves {
		if valid {
			d.Actions = append(d.Actions, move)
		}
	}
	d.Winner = b.winner(len(d.Actions))
	d.Ended = d.Winner != Empty || len(d.Actions) == 0
	return d
}

// winner returns the winner by the rules of the variant, given the number of
// valid moves, or Empty if there is none (yet).
func (b *Board) winner(numActions int) Piece {
	noMoves := numActions == 0
	switch b.Variant {
	case Spline:
		return b.splineWinner()
	case Spargo, Margo:
		if noMoves {
			return b.spargoWinner()
		}
	case Spaiji:
		if noMoves {
			return b.spaijiWinner()
		}
	case Sparks:
		if apex := b.sparksApex(); apex != Empty {
			return apex
		}
		if noMoves {
			return b.Opponent(b.active)
		}
	case Spire:
		if noMoves {
			return b.Opponent(b.active)
		}
	case Sploof:
		if noMoves {
			// The player that ran out of moves loses, even with a line.
			return b.Opponent(b.active)
		}
		return b.sploofLineWinner()
	case Spook:
		return b.spookWinner()
	}
	return Empty
}

// ValidMoves returns the mask of valid moves, with NumMoves entries. The returned
// slice is shared and must not be modified.
func (b *Board) ValidMoves() []bool {
	return b.Derived().ValidMoves
}

// Actions returns the valid moves, in increasing order. The returned slice is
// shared and must not be modified.
func (b *Board) Actions() []int {
	return b.Derived().Actions
}

// NumActions returns the number of valid moves.
func (b *Board) NumActions() int {
	return len(b.Derived().Actions)
}

// IsValid returns whether the given move can be played.
func (b *Board) IsValid(move int) bool {
	return move >= 0 && move < b.NumMoves() && b.ValidMoves()[move]
}

// TakeAllActions returns the boards generated by taking all actions available to
// the current player, in the order of Actions. The result is cached.
//
// For Spargo, it panics if a valid move fails, which would be a bug.
func (b *Board) TakeAllActions() []*Board {
	d := b.Derived()
	d.nextOnce.Do(func() {
		d.nextBoards = make([]*Board, len(d.Actions))
		for actionIdx, move := range d.Actions {
			newB, err := b.apply(move)
			if err != nil {
				panic(fmt.Sprintf("valid move %s failed: %+v", b.DisplayMove(move), err))
			}
			d.nextBoards[actionIdx] = newB
		}
	})
	return d.nextBoards
}

// Winner returns the player that won by the rules of the variant, or Empty if the
// match is not decided.
func (b *Board) Winner() Piece {
	return b.Derived().Winner
}

// IsWin returns whether player won.
func (b *Board) IsWin(player Piece) bool {
	winner := b.Winner()
	return winner != Empty && winner == player
}

// IsEnded returns whether the rules end the match: someone won or there are no
// moves left.
func (b *Board) IsEnded() bool {
	return b.Derived().Ended
}

// IsFinished returns whether the match is over, either by the rules or because
// MaxMoves was reached.
func (b *Board) IsFinished() bool {
	return b.IsEnded() || b.MoveNumber >= b.MaxMoves
}

// Draw returns whether the match finished without a winner.
func (b *Board) Draw() bool {
	return b.IsFinished() && b.Winner() == Empty
}

// FinishReason describes why the match is over.
func (b *Board) FinishReason() string {
	if !b.IsFinished() {
		return "game not finished yet"
	}
	if winner := b.Winner(); winner != Empty {
		return fmt.Sprintf("%s won", winner)
	}
	if !b.IsEnded() {
		return fmt.Sprintf("max number of moves %d was reached", b.MaxMoves)
	}
	if b.Variant == Spargo || b.Variant == Margo {
		return "no moves left and both players have the same number of pieces"
	}
	return "no moves left"
}
