package state_test

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
)

func TestVolume(t *testing.T) {
	assert.Equal(t, 5, Volume(2))
	assert.Equal(t, 30, Volume(4))
	assert.Equal(t, 91, Volume(6))
	assert.Equal(t, 204, Volume(8))
}

func TestGeometryIndex(t *testing.T) {
	g := NewGeometry(4)
	assert.Equal(t, 4, g.LevelSize(0))
	assert.Equal(t, 1, g.LevelSize(3))
	assert.Equal(t, 0, g.LevelStart(0))
	assert.Equal(t, 16, g.LevelStart(1))
	assert.Equal(t, 25, g.LevelStart(2))
	assert.Equal(t, 29, g.LevelStart(3))

	assert.Equal(t, 6, g.Index(Pos{0, 1, 2}))
	assert.Equal(t, 20, g.Index(Pos{1, 1, 1}))
	assert.Equal(t, 29, g.Index(Pos{3, 0, 0}))

	// Coordinates is the inverse of Index, and Positions follows the index order.
	count := 0
	for idx, pos := range g.Positions() {
		require.Equal(t, count, idx)
		assert.Equal(t, idx, g.Index(pos))
		got, err := g.Coordinates(idx)
		require.NoError(t, err)
		assert.Equal(t, pos, got)
		assert.True(t, g.Contains(pos))
		count++
	}
	assert.Equal(t, g.Volume(), count)
}

func TestGeometryBounds(t *testing.T) {
	g := NewGeometry(4)
	assert.False(t, g.Contains(Pos{1, 3, 0}))
	assert.False(t, g.Contains(Pos{4, 0, 0}))
	assert.False(t, g.Contains(Pos{0, -1, 0}))
	assert.False(t, g.Contains(NoPos))
	assert.False(t, NoPos.IsValid())
	assert.True(t, Pos{}.IsValid())

	_, err := g.Coordinates(30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
	assert.Equal(t, "Invalid move: index 30 outside of [0, 30).", err.Error())
	_, err = g.Coordinates(-1)
	require.Error(t, err)

	assert.Panics(t, func() { NewGeometry(1) })
	assert.Panics(t, func() { NewGeometry(MaxSize + 1) })
	assert.Panics(t, func() { g.MustCoordinates(31) })
}

func TestPosDistance(t *testing.T) {
	assert.Equal(t, 0, Pos{1, 1, 1}.Distance(Pos{1, 1, 1}))
	assert.Equal(t, 1, Pos{0, 1, 1}.Distance(Pos{0, 1, 2}))
	assert.Equal(t, 3, Pos{1, 0, 0}.Distance(Pos{0, 1, 1}))
}
