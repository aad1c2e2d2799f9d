package state_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

const stackedText = `  A C E G
7 . . . . 7

5 . . . . 5

3 B W . . 3

1 W B . . 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 R . . 2
   B D F
`

func TestPyramidSupport(t *testing.T) {
	p := NewPyramid(4)
	top := Pos{1, 0, 0}
	assert.True(t, p.IsSupported(Pos{0, 3, 3}))
	assert.False(t, p.IsSupported(top))
	for _, pos := range []Pos{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}} {
		p.Set(pos, Black)
		assert.False(t, p.IsSupported(top))
	}
	p.Set(Pos{0, 1, 1}, White)
	assert.True(t, p.IsSupported(top))

	mask := p.SupportedMoves()
	assert.Len(t, mask, 30)
	assert.False(t, mask[0])
	assert.True(t, mask[2])
	assert.True(t, mask[16])
	assert.False(t, mask[17])
	require.NoError(t, p.CheckSupport())

	// Writing an unsupported piece is only caught by CheckSupport.
	p.Set(Pos{1, 2, 2}, Red)
	require.Error(t, p.CheckSupport())

	assert.Panics(t, func() { p.Set(Pos{3, 1, 0}, Red) })
	assert.Panics(t, func() { p.Set(Pos{0, 0, 0}, Unusable) })
}

func TestPyramidRemove(t *testing.T) {
	b := MustParse(t, Sandbox, stackedText)
	p := b.Pyramid().Clone()
	assert.True(t, p.Equal(b.Pyramid()))
	assert.False(t, p.IsFree(Pos{0, 0, 0}))
	assert.False(t, p.IsPinned(Pos{0, 0, 0}))
	assert.True(t, p.IsFree(Pos{1, 0, 0}))

	// The red piece drops in the hole left by the removed piece.
	removed := p.Remove(Pos{0, 1, 1})
	assert.Equal(t, White, removed)
	assert.Equal(t, Red, p.At(Pos{0, 1, 1}))
	assert.Equal(t, Empty, p.At(Pos{1, 0, 0}))
	assert.True(t, p.IsLevelEmpty(1))
	assert.Equal(t, 4, p.NumOccupied())
	require.NoError(t, p.CheckSupport())
	assert.False(t, p.Equal(b.Pyramid()))
	// Original board untouched.
	assert.Equal(t, Red, b.At(Pos{1, 0, 0}))

	assert.Equal(t, Empty, p.Remove(Pos{0, 3, 3}))
	assert.Equal(t, 4, p.NumOccupied())
}

func TestPyramidPinned(t *testing.T) {
	b := MustParse(t, Sandbox, `  A C E G
7 . . . . 7

5 B B B . 5

3 B W B . 3

1 W B W . 1
  A C E G
   B D F
 6 . . . 6

 4 R W . 4

 2 R . . 2
   B D F
`)
	p := b.Pyramid()
	assert.True(t, p.IsPinned(Pos{0, 1, 1}))
	assert.False(t, p.IsPinned(Pos{0, 1, 2}))
	assert.False(t, p.IsFree(Pos{0, 1, 2}))
	assert.True(t, p.IsFree(Pos{0, 0, 2}))
	assert.True(t, p.IsFree(Pos{1, 1, 1}))

	pos, found := p.Find(Red)
	require.True(t, found)
	assert.Equal(t, Pos{1, 0, 0}, pos)
	_, found = NewPyramid(4).Find(Red)
	assert.False(t, found)
	assert.Equal(t, 2, p.Count(Red))
}

func TestPyramidLevels(t *testing.T) {
	b := MustParse(t, Sandbox, stackedText)
	levels := b.Pyramid().Levels()
	require.Len(t, levels, 4)
	for _, level := range levels {
		require.Len(t, level, 4)
		for _, row := range level {
			require.Len(t, row, 4)
		}
	}
	assert.Equal(t, []Piece{White, Black, Empty, Empty}, levels[0][0])
	assert.Equal(t, []Piece{Red, Empty, Empty, Unusable}, levels[1][0])
	assert.Equal(t, []Piece{Unusable, Unusable, Unusable, Unusable}, levels[1][3])
	assert.Equal(t, []Piece{Empty, Unusable, Unusable, Unusable}, levels[3][0])
}
