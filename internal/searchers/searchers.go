// Package searchers defines the Searcher interface implemented by the search
// algorithms (alpha-beta pruning, MCTS, ...) and a few simple searchers.
package searchers

import (
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/pkg/errors"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the next move to take on the given board, along with the updated Board (after taking the
	// move) and the expected score of taking that move, from the point of view of the player to move on board.
	//
	// Optionally, it can also return the score for each of the actions available on the board, in the
	// order of Board.Actions.
	// Some algorithms (e.g.: alpha-beta pruning) don't provide good approximations to those, so they return it nil.
	Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error)
}

// ErrNoActions is returned by searchers when asked to search a board without valid moves.
var ErrNoActions = errors.New("no valid moves to search")

// CheckActions returns an error wrapping ErrNoActions if board has no valid moves.
func CheckActions(board *Board) error {
	if board.NumActions() == 0 {
		return errors.Wrapf(ErrNoActions, "%s board at move #%d", board.Variant, board.MoveNumber)
	}
	return nil
}
