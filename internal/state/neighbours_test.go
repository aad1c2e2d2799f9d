package state_test

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

func TestCandidateNeighbours(t *testing.T) {
	p := NewPyramid(4)
	assert.Equal(t, []Pos{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, p.NeighboursSlice(Pos{0, 0, 0}))
	assert.Equal(t, []Pos{
		{0, 0, 1}, {0, 1, 0}, {0, 1, 2}, {0, 2, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}, p.NeighboursSlice(Pos{0, 1, 1}))
	assert.Equal(t, []Pos{{2, 0, 0}, {2, 0, 1}, {2, 1, 0}, {2, 1, 1}}, p.NeighboursSlice(Pos{3, 0, 0}))
	assert.Equal(t, []Pos{{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1}},
		slices.Collect(p.CandidateNeighbours(Pos{0, 1, 1}, 1, 1)))
	assert.Empty(t, slices.Collect(p.CandidateNeighbours(Pos{0, 1, 1}, -1, -1)))
	assert.Panics(t, func() { p.CandidateNeighbours(Pos{}, -2, 0) })
	assert.Panics(t, func() { p.CandidateNeighbours(Pos{}, 1, 0) })
}

func TestNeighboursOverpass(t *testing.T) {
	b := MustParse(t, Sandbox, `  A C E G
7 . . . . 7

5 . B W . 5

3 . W B . 3

1 . B W . 1
  A C E G
   B D F
 6 . . . 6

 4 . R . 4

 2 . R . 2
   B D F
`)
	p := b.Pyramid()
	// The bridge of two red pieces over the gap between 3C and 3E cuts their contact.
	assert.Equal(t, []Pos{
		{0, 0, 1}, {0, 1, 0}, {0, 2, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}, p.NeighboursSlice(Pos{0, 1, 1}))
	assert.NotContains(t, p.NeighboursSlice(Pos{0, 1, 2}), Pos{0, 1, 1})
	// Same level contacts at the edge of the bridge are kept.
	assert.Contains(t, p.NeighboursSlice(Pos{0, 0, 1}), Pos{0, 0, 2})
	assert.Contains(t, p.NeighboursSlice(Pos{0, 2, 1}), Pos{0, 2, 2})
}

func TestNeighboursCovered(t *testing.T) {
	b := MustParse(t, Sandbox, `  A C E G
7 . . . . 7

5 B W B . 5

3 W B W . 3

1 B W B . 1
  A C E G
   B D F
 6 . . . 6

 4 R R . 4

 2 R R . 2
   B D F
    C E
  5 . . 5

  3 W . 3
    C E
`)
	p := b.Pyramid()
	// The centre of the 3x3 block is buried: no contact is visible.
	assert.Empty(t, p.NeighboursSlice(Pos{0, 1, 1}))
	assert.Equal(t, []Pos{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 0, 1}, {1, 1, 0}, {2, 0, 0}},
		p.NeighboursSlice(Pos{1, 0, 0}))
	assert.Equal(t, []Pos{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		slices.Collect(p.NeighboursInRange(Pos{1, 0, 0}, -1, -1)))

	// Neighbourhood is symmetric.
	for _, pos := range p.Positions() {
		for neighbour := range p.Neighbours(pos) {
			assert.Containsf(t, p.NeighboursSlice(neighbour), pos, "%s neighbour of %s, but not the reverse", neighbour, pos)
		}
	}
}
