package alphabeta_test

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	"github.com/janpfeifer/shibumiGo/internal/searchers/alphabeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

// Black to move, and can complete the bottom row at 1G.
const winningText = `  A C E G
7 . . . . 7

5 . . . . 5

3 W W . W 3

1 B B B . 1
  A C E G
`

// Black to move, and must block White at 3G.
const blockingText = `  A C E G
7 . . . B 7

5 . . . . 5

3 W W W . 3

1 B . B . 1
  A C E G
`

func TestWinningMove(t *testing.T) {
	b := MustParse(t, Spline, winningText)
	require.Equal(t, Black, b.ActivePlayer())
	winningMove, err := b.ParseMove("1G")
	require.NoError(t, err)

	scorer := ai.NewMaterial(Spline)
	for _, ab := range []*alphabeta.Searcher{
		alphabeta.New(scorer).WithMaxDepth(1),
		alphabeta.New(scorer).WithMaxDepth(3),
		alphabeta.New(scorer).WithMaxDepth(3).WithParallelism(4),
		alphabeta.New(scorer).WithMaxTime(100 * time.Millisecond),
	} {
		move, next, score, _, err := ab.Search(b)
		require.NoError(t, err)
		assert.Equal(t, winningMove, move)
		assert.Equal(t, ai.WinGameScore, score)
		assert.True(t, next.IsWin(Black))
	}
}

func TestBlockingMove(t *testing.T) {
	b := MustParse(t, Spline, blockingText)
	require.Equal(t, Black, b.ActivePlayer())
	blockingMove, err := b.ParseMove("3G")
	require.NoError(t, err)

	scorer := ai.NewMaterial(Spline)
	for _, ab := range []*alphabeta.Searcher{
		alphabeta.New(scorer).WithMaxDepth(2),
		alphabeta.New(scorer).WithMaxDepth(3),
	} {
		move, _, score, actionsScores, err := ab.Search(b)
		require.NoError(t, err)
		assert.Equal(t, blockingMove, move)
		assert.Greater(t, score, -ai.WinGameScore)
		assert.Nil(t, actionsScores)
	}

	// In parallel, every move gets its exact score: all but the blocking one lose.
	move, _, _, actionsScores, err := alphabeta.New(scorer).WithMaxDepth(2).WithParallelism(3).Search(b)
	require.NoError(t, err)
	assert.Equal(t, blockingMove, move)
	require.Len(t, actionsScores, b.NumActions())
	for idx, action := range b.Actions() {
		if action == blockingMove {
			assert.Greater(t, actionsScores[idx], -ai.WinGameScore)
		} else {
			assert.Equalf(t, -ai.WinGameScore, actionsScores[idx], "move %s", b.DisplayMove(action))
		}
	}
}

// White to remove: taking out 3C leaves a red piece in its place, and then White
// adds its coal on top, all in the same turn.
const sparksTopText = `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 B W B W 1
  A C E G
   B D F
 6 R B R 6

 4 W R W 4

 2 R W R 2
   B D F
    C E
  5 B R 5

  3 W R 3
    C E
<W
`

func TestSameSideMovesAgain(t *testing.T) {
	b := MustParse(t, Sparks, sparksTopText)
	require.Equal(t, White, b.ActivePlayer())
	p := b.Pyramid()
	removeMove, topMove := p.Index(Pos{H: 2, R: 0, C: 0}), p.Index(Pos{H: 3, R: 0, C: 0})
	require.True(t, b.IsValid(removeMove))

	scorer := ai.NewMaterial(Sparks)
	for _, ab := range []*alphabeta.Searcher{
		alphabeta.New(scorer).WithMaxDepth(2),
		alphabeta.New(scorer).WithMaxDepth(3),
		alphabeta.New(scorer).WithMaxDepth(2).WithParallelism(4),
	} {
		move, next, score, _, err := ab.Search(b)
		require.NoError(t, err)
		assert.Equal(t, removeMove, move)
		assert.Equal(t, ai.WinGameScore, score)
		require.Equal(t, White, next.ActivePlayer())
		assert.True(t, MustAct(t, next, topMove).IsWin(White))
	}
}

func TestAllVariants(t *testing.T) {
	for _, variant := range Variants {
		b := NewBoard(variant)
		ab := alphabeta.New(ai.NewMaterial(variant)).WithMaxDepth(2).WithRandomness(0.1)
		for range 4 {
			if b.IsFinished() || b.NumActions() == 0 {
				break
			}
			move, next, _, _, err := ab.Search(b)
			require.NoError(t, err)
			require.Truef(t, b.IsValid(move), "%s: move %d", variant, move)
			assert.Equal(t, MustAct(t, b, move).String(), next.String())
			b = next
		}
	}
}

func TestNewFromParams(t *testing.T) {
	scorer := ai.NewMaterial(Spline)
	params := parameters.NewFromConfigString("max_depth=2")
	s, err := alphabeta.NewFromParams(scorer, params)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Len(t, params, 1)

	params = parameters.NewFromConfigString("ab,max_depth=2,randomness=0.1,parallelism=2")
	s, err = alphabeta.NewFromParams(scorer, params)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Empty(t, params)
	var _ searchers.Searcher = s

	_, err = alphabeta.NewFromParams(scorer, parameters.NewFromConfigString("ab,max_depth=x"))
	require.Error(t, err)
	_, err = alphabeta.NewFromParams(scorer, parameters.NewFromConfigString("ab,randomness=-1"))
	require.Error(t, err)
}
