package state

import (
	"github.com/gomlx/exceptions"
	"iter"
)

// CandidateNeighbours enumerates the cells that geometrically touch pos, for height
// differences from dhStart to dhEnd (inclusive, each in [-1, 1]), ignoring occlusion.
//
// The order is stable: lower levels first, and within a level the order of
// neighbourDeltas.
func (p *Pyramid) CandidateNeighbours(pos Pos, dhStart, dhEnd int) iter.Seq[Pos] {
	if dhStart < -1 || dhEnd > 1 || dhStart > dhEnd {
		exceptions.Panicf("invalid neighbours height range [%d, %d]", dhStart, dhEnd)
	}
	table := candidatesFor(p.Geometry)
	return func(yield func(Pos) bool) {
		candidatesPerDh := &table[p.Index(pos)]
		for dh := dhStart; dh <= dhEnd; dh++ {
			for _, candidate := range candidatesPerDh[dh+1] {
				if !yield(candidate) {
					return
				}
			}
		}
	}
}

// Neighbours enumerates the cells touching pos at any height, after removing the
// contacts hidden by other pieces:
//
//   - Overpass: two cells side by side on the same level don't touch if both
//     cells straddling the gap between them, one level up, are occupied.
//   - Covering: cells on adjacent levels don't touch if the lower one is covered
//     by a piece two levels above it, resting centered over it.
func (p *Pyramid) Neighbours(pos Pos) iter.Seq[Pos] {
	return p.NeighboursInRange(pos, -1, 1)
}

// NeighboursInRange is like Neighbours, but only for the height differences from
// dhStart to dhEnd (inclusive).
func (p *Pyramid) NeighboursInRange(pos Pos, dhStart, dhEnd int) iter.Seq[Pos] {
	candidates := p.CandidateNeighbours(pos, dhStart, dhEnd)
	return func(yield func(Pos) bool) {
		for candidate := range candidates {
			if p.isContactHidden(pos, candidate) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// NeighboursSlice collects Neighbours into a slice.
func (p *Pyramid) NeighboursSlice(pos Pos) []Pos {
	neighbours := make([]Pos, 0, 12)
	for neighbour := range p.Neighbours(pos) {
		neighbours = append(neighbours, neighbour)
	}
	return neighbours
}

// isContactHidden returns whether the contact between the two touching cells is
// occluded. The filter is symmetric.
func (p *Pyramid) isContactHidden(a, b Pos) bool {
	if a.H == b.H {
		return p.isOverpassed(a, b)
	}
	lower := a
	if b.H < a.H {
		lower = b
	}
	return p.isCovered(lower)
}

// isOverpassed checks whether the same level contact a-b is cut by a bridge
// one level up.
func (p *Pyramid) isOverpassed(a, b Pos) bool {
	h := int(a.H) + 1
	if a.R == b.R {
		// Contact along the row: bridged by the two cells above the gap, in the
		// rows before and after.
		r, c := int(a.R), min(int(a.C), int(b.C))
		return p.isOccupiedHRC(h, r-1, c) && p.isOccupiedHRC(h, r, c)
	}
	// Contact along the column.
	r, c := min(int(a.R), int(b.R)), int(a.C)
	return p.isOccupiedHRC(h, r, c-1) && p.isOccupiedHRC(h, r, c)
}

// isCovered checks whether there is a piece resting centered over pos, two levels up.
func (p *Pyramid) isCovered(pos Pos) bool {
	return p.isOccupiedHRC(int(pos.H)+2, int(pos.R)-1, int(pos.C)-1)
}
