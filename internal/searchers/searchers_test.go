package searchers_test

import (
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

func TestRandomSearcher(t *testing.T) {
	for _, variant := range Variants {
		b := NewBoard(variant)
		searcher := searchers.NewRandomSearcher(7)
		for range 10 {
			if b.IsEnded() {
				break
			}
			move, next, score, actionsScores, err := searcher.Search(b)
			require.NoError(t, err)
			assert.True(t, b.IsValid(move), "%s: move %d", variant, move)
			assert.Equal(t, float32(0), score)
			assert.Nil(t, actionsScores)
			assert.Equal(t, b.MoveNumber+1, next.MoveNumber)
			b = next
		}
	}

	// Same seed, same moves.
	b := NewBoard(Spline)
	move1, _, _, _, err := searchers.NewRandomSearcher(11).Search(b)
	require.NoError(t, err)
	move2, _, _, _, err := searchers.NewRandomSearcher(11).Search(b)
	require.NoError(t, err)
	assert.Equal(t, move1, move2)
}

func TestNoActions(t *testing.T) {
	b := MustParse(t, Spline, `  A C E G
7 . . . . 7

5 W W W W 5

3 . B B . 3

1 . B B . 1
  A C E G
`)
	_, _, _, _, err := searchers.NewRandomSearcher(1).Search(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, searchers.ErrNoActions))
}

// preferSecond always plays the first action, but scores the second one the best.
type preferSecond struct{}

func (preferSecond) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	actionsScores = make([]float32, board.NumActions())
	for ii := range actionsScores {
		actionsScores[ii] = -1
	}
	actionsScores[1] = 1
	move = board.Actions()[0]
	nextBoard = board.TakeAllActions()[0]
	score = actionsScores[0]
	return
}

func TestRandomizedSearcher(t *testing.T) {
	b := NewBoard(Spline)
	base := preferSecond{}
	assert.Equal(t, searchers.Searcher(base), searchers.NewRandomizedSearcher(base, 0, 0))

	randomized := searchers.NewRandomizedSearcher(base, 0.01, 0)
	move, next, score, _, err := randomized.Search(b)
	require.NoError(t, err)
	assert.Equal(t, b.Actions()[1], move)
	assert.Equal(t, float32(1), score)
	assert.Same(t, b.TakeAllActions()[1], next)

	// No randomness after the given move.
	randomized = searchers.NewRandomizedSearcher(base, 0.01, 1)
	move, _, _, _, err = randomized.Search(b)
	require.NoError(t, err)
	assert.Equal(t, b.Actions()[0], move)
}

// flatSearcher plays the first action, and scores all actions the same.
type flatSearcher struct{}

func (flatSearcher) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	actionsScores = make([]float32, board.NumActions())
	return board.Actions()[0], board.TakeAllActions()[0], 0, actionsScores, nil
}

func TestRandomizedSearcherPrefersCaptures(t *testing.T) {
	b := MustParse(t, Spargo, `  A C E G
7 . . . . 7

5 . . . . 5

3 . . . . 3

1 W B . . 1
  A C E G
>B
`)
	capture, err := b.ParseMove("3A")
	require.NoError(t, err)
	require.NotEqual(t, capture, b.Actions()[0])

	// With equal scores and a low temperature, the piece balance decides.
	randomized := searchers.NewRandomizedSearcher(flatSearcher{}, 0.001, 0)
	for range 5 {
		move, next, _, _, err := randomized.Search(b)
		require.NoError(t, err)
		assert.Equal(t, capture, move)
		assert.Equal(t, 0, next.PieceCount(White))
	}
}
