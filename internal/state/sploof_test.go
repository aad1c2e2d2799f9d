package state_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

const sploofLevelsText = `  A C E G
7 R R R R 7

5 . . . . 5

3 R W B R 3

1 R R R R 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 W B . 2
   B D F
`

func TestSploofStart(t *testing.T) {
	b := NewBoard(Sploof)
	assert.Equal(t, `  A C E G
7 R R R R 7

5 R . . R 5

3 R . . R 3

1 R R R R 1
  A C E G
>W(2,2)
`, b.String())
	assert.Equal(t, White, b.ActivePlayer())
	assert.Equal(t, 2, b.PieceCount(White))
	assert.Equal(t, 2, b.PieceCount(Black))
	assert.Equal(t, "R1A", b.DisplayMove(30))
	assert.Equal(t, "W1A", b.DisplayMove(0))
}

func TestSploofValidMoves(t *testing.T) {
	b := MustParse(t, Sploof, sploofLevelsText+">W(2,2)\n")
	mask := b.ValidMoves()
	AssertRange(t, mask, 0, 8, false)   // Occupied.
	AssertRange(t, mask, 8, 12, true)   // Empty.
	AssertRange(t, mask, 12, 18, false) // Occupied.
	AssertRange(t, mask, 18, 19, true)  // Supported.
	AssertRange(t, mask, 19, 30, false) // Unsupported.
	AssertRange(t, mask, 30, 31, true)  // Unpinned red.
	AssertRange(t, mask, 31, 32, false) // Pinned.
	AssertRange(t, mask, 32, 35, true)
	AssertRange(t, mask, 35, 37, false) // Not red.
	AssertRange(t, mask, 37, 38, true)
	AssertRange(t, mask, 38, 42, false) // Empty.
	AssertRange(t, mask, 42, 46, true)
	AssertRange(t, mask, 46, 48, false) // Not red.
	AssertRange(t, mask, 48, 60, false)
	assert.Equal(t, 30, b.MoveIndex(Pos{}, PlaceRed))
	assert.Equal(t, 30, b.MoveIndex(Pos{}, RemovePiece))
}

func TestSploofEmptyStock(t *testing.T) {
	b := MustParse(t, Sploof, `  A C E G
7 R R . . 7

5 R . . R 5

3 R W W R 3

1 R R R R 1
  A C E G
>W(0,6)
`)
	mask := b.ValidMoves()
	AssertRange(t, mask, 0, 30, false) // No stock to place.
	AssertRange(t, mask, 30, 35, true)
	AssertRange(t, mask, 35, 37, false)
	AssertRange(t, mask, 37, 39, true)
	AssertRange(t, mask, 39, 41, false)
	AssertRange(t, mask, 41, 44, true)
	AssertRange(t, mask, 44, 60, false)
}

func TestSploofMoves(t *testing.T) {
	start := MustParse(t, Sploof, sploofLevelsText+">W(2,2)\n")
	b := MustAct(t, start, 8)
	assert.Equal(t, `  A C E G
7 R R R R 7

5 W . . . 5

3 R W B R 3

1 R R R R 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 W B . 2
   B D F
>B(2,1)
`, b.String())
	assert.Equal(t, Black, b.ActivePlayer())
	assert.Equal(t, 1, b.PieceCount(White))

	// Removing a red piece lets the one above drop, and earns 2 pieces.
	b = MustAct(t, start, 30)
	assert.Equal(t, `  A C E G
7 R R R R 7

5 . . . . 5

3 R W B R 3

1 W R R R 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 . B . 2
   B D F
>B(2,4)
`, b.String())
	assert.Equal(t, 4, b.PieceCount(White))

	move, err := start.ParseMove("R1G")
	require.NoError(t, err)
	assert.Equal(t, 33, move)
	assert.Equal(t, "W5A", start.DisplayMove(8))
}

func TestSploofParse(t *testing.T) {
	b := MustParse(t, Sploof, sploofLevelsText+">W(4,3)\n")
	assert.Equal(t, 4, b.PieceCount(White))
	assert.Equal(t, 3, b.PieceCount(Black))

	b = MustParse(t, Sploof, sploofLevelsText+">B(0,12)\n")
	assert.Equal(t, Black, b.ActivePlayer())
	assert.Equal(t, 12, b.PieceCount(White))

	for _, metadata := range []string{">W", ">W(1)", ">W(a,2)", ">W(1,2,3)"} {
		_, err := ParseBoard(Sploof, sploofLevelsText+metadata+"\n")
		assert.Errorf(t, err, "metadata %q", metadata)
	}
}

func TestSploofWinner(t *testing.T) {
	testCases := []struct {
		name, text string
		winner     Piece
	}{
		{"no valid moves", `  A C E G
7 W . W . 7

5 . W B W 5

3 W B W . 3

1 . W . W 1
  A C E G
>W(0,18)
`, Black},
		{"base row", `  A C E G
7 R R R R 7

5 R B B R 5

3 W W W W 3

1 R R R R 1
  A C E G
   B D F
 6 . B . 6

 4 . . . 4

 2 . . . 2
   B D F
>B(1,0)
`, White},
		{"base column", `  A C E G
7 R R W R 7

5 R B W R 5

3 R B W R 3

1 R R W R 1
  A C E G
   B D F
 6 . . . 6

 4 B . . 4

 2 . . . 2
   B D F
>B(1,0)
`, White},
		{"cut off row", `  A C E G
7 R R R R 7

5 R . B R 5

3 W W W W 3

1 R R R R 1
  A C E G
   B D F
 6 . . . 6

 4 . . B 4

 2 . . B 2
   B D F
>B(1,0)
`, Empty},
		{"cut off column", `  A C E G
7 R R W R 7

5 R . W R 5

3 R B W R 3

1 R R W R 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 . B B 2
   B D F
>B(1,0)
`, Empty},
		{"diagonal", `  A C E G
7 R R R . 7

5 R B B R 5

3 R B W R 3

1 R R R W 1
  A C E G
   B D F
 6 . . . 6

 4 . W . 4

 2 . . W 2
   B D F
>B(1,0)
`, White},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParse(t, Sploof, tc.text)
			assert.Equal(t, tc.winner, b.Winner())
		})
	}
}

func TestSploofStalledPlayerLoses(t *testing.T) {
	b := MustParse(t, Sploof, `  A C E G
7 . . W W 7

5 . . W W 5

3 . . W W 3

1 B . R B 1
  A C E G
   B D F
 6 . . W 6

 4 . . . 4

 2 . . W 2
   B D F
>B(16,0)
`)
	b = MustAct(t, b, 32)
	// White completes a column with the piece that dropped, but has no stock and no
	// red piece to take: Black wins.
	assert.True(t, b.Pyramid().HasLine(White))
	assert.Empty(t, b.Actions())
	assert.Equal(t, Black, b.Winner())
}
