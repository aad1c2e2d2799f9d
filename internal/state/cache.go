package state

// This file holds the cache of the static neighbourhood geometry: the candidate
// neighbours of each cell depend only on the size of the pyramid and on the cell,
// so they are computed once per size and shared read-only by every board.

import (
	"sync"
)

// candidatesTable holds, for each cell index, the candidate neighbours per height
// difference. Index 0 is dh=-1, 1 is dh=0 and 2 is dh=+1.
type candidatesTable [][3][]Pos

var (
	candidatesOnce   [MaxSize + 1]sync.Once
	candidatesTables [MaxSize + 1]candidatesTable
)

// candidatesFor returns the cached candidates table for a pyramid of the given geometry.
func candidatesFor(g Geometry) candidatesTable {
	candidatesOnce[g.Size].Do(func() {
		candidatesTables[g.Size] = buildCandidatesTable(g)
	})
	return candidatesTables[g.Size]
}

// neighbourDeltas per height difference, for dh=-1, 0 and +1 respectively.
//
// Same level spheres touch along rows and columns. A sphere rests on the 4 cells
// (r..r+1, c..c+1) one level below, and is touched by the 4 cells (r-1..r, c-1..c)
// one level up.
var neighbourDeltas = [3][4][2]int8{
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	{{-1, 0}, {0, -1}, {0, 1}, {1, 0}},
	{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}},
}

func buildCandidatesTable(g Geometry) candidatesTable {
	table := make(candidatesTable, g.Volume())
	for idx, pos := range g.Positions() {
		for dhIdx := range 3 {
			h := pos.H + int8(dhIdx) - 1
			var candidates []Pos
			for _, delta := range neighbourDeltas[dhIdx] {
				candidate := Pos{h, pos.R + delta[0], pos.C + delta[1]}
				if g.Contains(candidate) {
					candidates = append(candidates, candidate)
				}
			}
			table[idx][dhIdx] = candidates
		}
	}
	return table
}
