package state_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

const sparksAddingText = `  A C E G
7 W B W B 7

5 B W B W 5

3 W W W B 3

1 B R B W 1
  A C E G
`

func TestSparksStart(t *testing.T) {
	b := NewBoard(Sparks)
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 B W B W 1
  A C E G
<W
`, b.String())
	assert.Equal(t, White, b.ActivePlayer())
	assert.Equal(t, 0, b.MoveCount())

	// Pieces are taken out first.
	for move, want := range map[int]struct {
		display string
		valid   bool
	}{16: {"2B", false}, 0: {"1A", false}, 1: {"1C", true}} {
		assert.Equal(t, want.display, b.DisplayMove(move))
		assert.Equal(t, want.valid, b.ValidMoves()[move], "move %s", want.display)
	}
}

func TestSparksAddingMoves(t *testing.T) {
	type moveCheck struct {
		move    int
		display string
		valid   bool
	}
	testCases := []struct {
		name, text string
		checks     []moveCheck
	}{
		{"coal and spark", sparksAddingText + ">B, R\n", []moveCheck{
			{46, "R2B", true}, {16, "B2B", true}, {0, "B1A", false}, {1, "B1C", false}}},
		{"spark only", sparksAddingText + ">R\n", []moveCheck{
			{46, "R2B", true}, {16, "B2B", false}, {0, "B1A", false}, {1, "B1C", false}}},
		{"coal only", `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 B R B W 1
  A C E G
>W
`, []moveCheck{
			{46, "R2B", false}, {16, "W2B", true}, {0, "W1A", false}, {1, "W1C", false}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParse(t, Sparks, tc.text)
			assert.Equal(t, tc.text, b.String())
			for _, check := range tc.checks {
				assert.Equal(t, check.display, b.DisplayMove(check.move))
				assert.Equal(t, check.valid, b.ValidMoves()[check.move], "move %s", check.display)
			}
		})
	}
}

func TestSparksPinned(t *testing.T) {
	b := MustParse(t, Sparks, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W R 3

1 B W B R 1
  A C E G
   B D F
 6 . . . 6

 4 B . . 4

 2 W . . 2
   B D F
<W
`)
	mask := b.ValidMoves()
	assert.True(t, mask[16])
	assert.Equal(t, "2B", b.DisplayMove(16))
	assert.False(t, mask[0])
	assert.False(t, mask[4], "3A is pinned")
	// Red pieces can't be taken.
	assert.False(t, mask[35])
	AssertRange(t, mask, 30, 60, false)
}

func TestSparksTurn(t *testing.T) {
	b := MustPlay(t, NewBoard(Sparks), "1C")
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 B R B W 1
  A C E G
>W
`, b.String())
	assert.Equal(t, []Piece{White}, b.ValidColours())

	b = MustPlay(t, b, "2B")
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 B R B W 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 W . . 2
   B D F
<B
`, b.String())
	assert.Equal(t, Black, b.ActivePlayer())
	assert.Equal(t, 2, b.MoveCount())

	// Taking from under a piece: it drops, and as it is not red both coal and
	// spark are added.
	b = MustPlay(t, b, "3C")
	assert.Equal(t, sparksAddingText+">B, R\n", b.String())
	assert.Equal(t, 3, b.MoveCount())
	assert.Equal(t, []Piece{Black, Red}, b.ValidColours())

	blackB := MustPlay(t, b, "B4D")
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W W W B 3

1 B R B W 1
  A C E G
   B D F
 6 . . . 6

 4 . B . 4

 2 . . . 2
   B D F
>R
`, blackB.String())
	assert.Equal(t, 4, blackB.MoveCount())

	redB := MustPlay(t, b, "R4D")
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W W W B 3

1 B R B W 1
  A C E G
   B D F
 6 . . . 6

 4 . R . 4

 2 . . . 2
   B D F
>B
`, redB.String())
	redB = MustPlay(t, redB, "B6D")
	assert.Equal(t, White, redB.ActivePlayer())
	assert.True(t, strings.HasSuffix(redB.String(), "\n<W\n"))
}

func TestSparksSparkDrops(t *testing.T) {
	b := MustParse(t, Sparks, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B W B 3

1 W R B W 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 B R . 2
   B D F
<W
`)
	b = MustPlay(t, b, "3E")
	// A red piece dropped in the hole: no spark to add this turn.
	assert.Equal(t, `  A C E G
7 W B W B 7

5 B W B W 5

3 W B R B 3

1 W R B W 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 B . . 2
   B D F
>W
`, b.String())
	assert.Equal(t, 1, b.MoveCount())
}

func TestSparksWinner(t *testing.T) {
	b := MustParse(t, Sparks, `  A C E G
7 R R R R 7

5 R W B B 5

3 R W W B 3

1 R R R R 1
  A C E G
   B D F
 6 R W B 2

 4 B W B 4

 2 R R W 2
   B D F
    C E
  5 W B 5

  3 B R 3
    C E
     D
   4 W 4
     D
<B
`)
	assert.True(t, b.IsWin(White))
	assert.False(t, b.IsWin(Black))

	b = MustParse(t, Sparks, `  A C E G
7 R R R R 7

5 R W B B 5

3 R W W B 3

1 R R R R 1
  A C E G
   B D F
 6 R W B 2

 4 B W B 4

 2 R R W 2
   B D F
    C E
  5 W B 5

  3 W R 3
    C E
>B
`)
	assert.Equal(t, Empty, b.Winner())
	b2 := MustAct(t, b, 29)
	assert.Equal(t, Empty, b.Winner())
	assert.True(t, b2.IsWin(Black))
	assert.True(t, b2.IsEnded())
}

func TestSparksAllPinned(t *testing.T) {
	b := MustParse(t, Sparks, `  A C E G
7 W B W R 7

5 B R R R 5

3 R B W B 3

1 R B B W 1
  A C E G
   B D F
 6 R R W 2

 4 B B R 4

 2 R W R 2
   B D F
    C E
  5 R W 5

  3 W . 3
    C E
<B
`)
	assert.Equal(t, 8, b.PieceCount(White))
	assert.Equal(t, 12, b.PieceCount(Red))
	assert.Equal(t, 8, b.PieceCount(Black))
	require.Empty(t, b.Actions())
	assert.True(t, b.IsWin(White))
	assert.False(t, b.IsWin(Black))
}
