package state

// This file holds the analysis of connected pieces: liberties of groups, largest
// groups per colour, lines and clusters of the same colour.

import (
	"github.com/janpfeifer/shibumiGo/internal/generics"
	"slices"
)

// lineLength used by HasLine.
const lineLength = 4

// HasFreedom returns whether the piece at pos is connected, through pieces of the
// same colour, to an empty cell of the base level.
//
// group collects the visited pieces of the group: when it returns false, group
// holds the whole group. When it returns true, the search may have stopped early
// and group may be partial.
func (p *Pyramid) HasFreedom(pos Pos, group generics.Set[Pos]) bool {
	colour := p.At(pos)
	group.Insert(pos)
	for neighbour := range p.Neighbours(pos) {
		piece := p.At(neighbour)
		if neighbour.H == 0 && piece == Empty {
			return true
		}
		if piece == colour && !group.Has(neighbour) {
			if p.HasFreedom(neighbour, group) {
				return true
			}
		}
	}
	return false
}

// GroupScores returns, per colour, the size of its largest connected group.
//
// Groups are collected by flood filling from the first corner of the base, if the
// pyramid is complete, or from every cell on the border of the base otherwise.
// Pieces not reachable through other pieces from there don't count.
func (p *Pyramid) GroupScores() (scores [NumPieces]int) {
	size := p.Size
	var unvisited []Pos
	if p.isOccupiedHRC(size-1, 0, 0) {
		unvisited = append(unvisited, Pos{})
	} else {
		for r := range size {
			for c := range size {
				if r == 0 || r == size-1 || c == 0 || c == size-1 {
					unvisited = append(unvisited, Pos{0, int8(r), int8(c)})
				}
			}
		}
	}

	groupOf := make(map[Pos]int, p.Volume())
	var groupSizes []int
	for len(unvisited) > 0 {
		pos := unvisited[len(unvisited)-1]
		unvisited = unvisited[:len(unvisited)-1]
		colour := p.At(pos)
		if !colour.IsOccupied() {
			continue
		}
		groupIdx, found := groupOf[pos]
		if !found {
			groupIdx = len(groupSizes)
			groupOf[pos] = groupIdx
			groupSizes = append(groupSizes, 1)
		}
		for neighbour := range p.Neighbours(pos) {
			if _, seen := groupOf[neighbour]; seen {
				continue
			}
			piece := p.At(neighbour)
			if !piece.IsOccupied() {
				continue
			}
			if piece != colour {
				// Other colours are visited after the current group is complete.
				unvisited = slices.Insert(unvisited, 0, neighbour)
				continue
			}
			groupOf[neighbour] = groupIdx
			groupSizes[groupIdx]++
			unvisited = append(unvisited, neighbour)
		}
	}

	for pos, groupIdx := range groupOf {
		colour := p.At(pos)
		scores[colour] = max(scores[colour], groupSizes[groupIdx])
	}
	return
}

// HasLine returns whether colour has a line of 4:
//
// On the base level any complete row or column counts, except inner rows (columns)
// crossed over by a bridge of two pieces on the level above.
// Looking from above, the colour on top of each position also counts for diagonal
// lines, projected on a grid of (2*size-1)² points.
func (p *Pyramid) HasLine(colour Piece) bool {
	size := p.Size
	for i := range size {
		var rowCount, columnCount int
		for j := range size {
			if p.AtHRC(0, i, j) == colour {
				rowCount++
			}
			if p.AtHRC(0, j, i) == colour {
				columnCount++
			}
		}
		if i > 0 && i < size-1 {
			if p.isBaseRowCut(i) {
				rowCount = 0
			}
			if p.isBaseColumnCut(i) {
				columnCount = 0
			}
		}
		if rowCount == lineLength || columnCount == lineLength {
			return true
		}
	}

	// Colour on top of each point, seen from above.
	expandedSize := 2*size - 1
	top := make([][]bool, expandedSize)
	for ii := range top {
		top[ii] = make([]bool, expandedSize)
	}
	for idx, pos := range p.Positions() {
		if piece := p.cells[idx]; piece.IsOccupied() {
			top[int(pos.H)+2*int(pos.R)][int(pos.H)+2*int(pos.C)] = piece == colour
		}
	}
	for i := range expandedSize - lineLength + 1 {
		for j := range expandedSize - lineLength + 1 {
			diagonal, antiDiagonal := true, true
			for k := range lineLength {
				diagonal = diagonal && top[i+k][j+k]
				antiDiagonal = antiDiagonal && top[i+lineLength-1-k][j+k]
			}
			if diagonal || antiDiagonal {
				return true
			}
		}
	}
	return false
}

// isBaseRowCut returns whether the base row is crossed by two pieces side by side
// on the level above, one on each side of the row.
func (p *Pyramid) isBaseRowCut(row int) bool {
	for c := range p.LevelSize(1) {
		if p.isOccupiedHRC(1, row-1, c) && p.isOccupiedHRC(1, row, c) {
			return true
		}
	}
	return false
}

// isBaseColumnCut is the column version of isBaseRowCut.
func (p *Pyramid) isBaseColumnCut(column int) bool {
	for r := range p.LevelSize(1) {
		if p.isOccupiedHRC(1, r, column-1) && p.isOccupiedHRC(1, r, column) {
			return true
		}
	}
	return false
}

// QuadrantMatches returns the largest number of pieces of the given colour in any of
// the 2x2 clusters that a piece placed at pos would join: the four same level
// quadrants around pos, and the 4 cells supporting it.
//
// Placements that would form a cluster of 3 are those with 2 or more matches.
func (p *Pyramid) QuadrantMatches(pos Pos, colour Piece) (matches int) {
	h, r, c := int(pos.H), int(pos.R), int(pos.C)
	count := func(h, r, c int) int {
		if p.AtHRC(h, r, c) == colour {
			return 1
		}
		return 0
	}
	for _, dr := range [2]int{-1, 1} {
		for _, dc := range [2]int{-1, 1} {
			matches = max(matches, count(h, r+dr, c)+count(h, r, c+dc)+count(h, r+dr, c+dc))
		}
	}
	if h > 0 {
		below := count(h-1, r, c) + count(h-1, r+1, c) + count(h-1, r, c+1) + count(h-1, r+1, c+1)
		matches = max(matches, below)
	}
	return
}
