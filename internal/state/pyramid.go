package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"slices"
)

// Pyramid holds the cells of a pyramid board, one Piece per cell, indexed by
// Geometry.Index.
//
// Pyramid is mutable: game states (Board) clone it before changing anything.
type Pyramid struct {
	Geometry
	cells []Piece
}

// NewPyramid creates an empty pyramid with the given number of levels.
func NewPyramid(size int) *Pyramid {
	g := NewGeometry(size)
	return &Pyramid{Geometry: g, cells: make([]Piece, g.Volume())}
}

// Clone returns a deep copy of the pyramid.
func (p *Pyramid) Clone() *Pyramid {
	return &Pyramid{Geometry: p.Geometry, cells: slices.Clone(p.cells)}
}

// Equal returns whether both pyramids have the same size and contents.
func (p *Pyramid) Equal(p2 *Pyramid) bool {
	return p.Size == p2.Size && slices.Equal(p.cells, p2.cells)
}

// At returns the piece at the given position, or Unusable if pos is outside the pyramid.
func (p *Pyramid) At(pos Pos) Piece {
	if !p.Contains(pos) {
		return Unusable
	}
	return p.cells[p.Index(pos)]
}

// AtHRC is like At, but takes the coordinates separately.
func (p *Pyramid) AtHRC(h, r, c int) Piece {
	if !p.ContainsHRC(h, r, c) {
		return Unusable
	}
	return p.cells[p.Index(Pos{int8(h), int8(r), int8(c)})]
}

// AtIndex returns the piece at the given cell index.
func (p *Pyramid) AtIndex(index int) Piece {
	return p.cells[index]
}

// IsOccupied returns whether there is a piece at pos.
func (p *Pyramid) IsOccupied(pos Pos) bool {
	return p.At(pos).IsOccupied()
}

// isOccupiedHRC is like IsOccupied, but takes the coordinates separately.
func (p *Pyramid) isOccupiedHRC(h, r, c int) bool {
	return p.AtHRC(h, r, c).IsOccupied()
}

// Set the piece at the given position. Use Empty to clear a cell.
//
// It panics if the position is outside the pyramid or if piece is Unusable:
// Unusable cells are never written.
func (p *Pyramid) Set(pos Pos, piece Piece) {
	if !p.Contains(pos) {
		exceptions.Panicf("position %s outside of pyramid of size %d", pos, p.Size)
	}
	if piece == Unusable || piece >= NumPieces {
		exceptions.Panicf("invalid piece %s set at %s", piece, pos)
	}
	p.cells[p.Index(pos)] = piece
}

// IsSupported returns whether a piece could rest at pos: either it is at the
// base level, or the 4 cells below it are occupied.
func (p *Pyramid) IsSupported(pos Pos) bool {
	h, r, c := int(pos.H), int(pos.R), int(pos.C)
	if h == 0 {
		return true
	}
	for dr := range 2 {
		for dc := range 2 {
			if !p.isOccupiedHRC(h-1, r+dr, c+dc) {
				return false
			}
		}
	}
	return true
}

// FillSupportedMoves sets mask[index] to true for every empty and supported
// cell and to false for every other cell. It only touches the first Volume()
// entries of mask.
//
// This is the legality floor of every variant: they only narrow it.
func (p *Pyramid) FillSupportedMoves(mask []bool) {
	for idx, pos := range p.Positions() {
		mask[idx] = p.cells[idx] == Empty && p.IsSupported(pos)
	}
}

// SupportedMoves returns a newly allocated mask, see FillSupportedMoves.
func (p *Pyramid) SupportedMoves() []bool {
	mask := make([]bool, p.Volume())
	p.FillSupportedMoves(mask)
	return mask
}

// restingOn enumerates the positions one level up that rest over pos, in the order
// used when pieces drop into a hole.
func (p *Pyramid) restingOn(pos Pos) []Pos {
	above := make([]Pos, 0, 4)
	h := pos.H + 1
	for _, delta := range [4][2]int8{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}} {
		abovePos := Pos{h, pos.R + delta[0], pos.C + delta[1]}
		if p.Contains(abovePos) {
			above = append(above, abovePos)
		}
	}
	return above
}

// countResting counts the pieces resting on pos.
func (p *Pyramid) countResting(pos Pos) (count int) {
	for _, abovePos := range p.restingOn(pos) {
		if p.IsOccupied(abovePos) {
			count++
		}
	}
	return
}

// IsPinned returns whether 2 or more pieces rest on top of pos. Such a piece can
// not be pulled out of the pyramid.
func (p *Pyramid) IsPinned(pos Pos) bool {
	return p.countResting(pos) >= 2
}

// IsFree returns whether no piece rests on top of pos.
func (p *Pyramid) IsFree(pos Pos) bool {
	return p.countResting(pos) == 0
}

// Remove the piece at pos, returning what was removed.
//
// If a piece rests on top of pos, it drops into the hole, and the procedure
// repeats for the position it left. Support of every piece is preserved.
func (p *Pyramid) Remove(pos Pos) (removed Piece) {
	removed = p.At(pos)
	if !removed.IsOccupied() {
		return Empty
	}
	for {
		p.cells[p.Index(pos)] = Empty
		var dropped bool
		for _, abovePos := range p.restingOn(pos) {
			if piece := p.At(abovePos); piece.IsOccupied() {
				p.cells[p.Index(pos)] = piece
				pos = abovePos
				dropped = true
				break
			}
		}
		if !dropped {
			return
		}
	}
}

// Count the number of cells holding the given piece.
func (p *Pyramid) Count(piece Piece) (count int) {
	for _, cell := range p.cells {
		if cell == piece {
			count++
		}
	}
	return
}

// NumOccupied returns the number of occupied cells.
func (p *Pyramid) NumOccupied() (count int) {
	for _, cell := range p.cells {
		if cell.IsOccupied() {
			count++
		}
	}
	return
}

// IsLevelEmpty returns whether there are no pieces at height h.
func (p *Pyramid) IsLevelEmpty(h int) bool {
	for _, cell := range p.cells[p.LevelStart(h):p.LevelStart(h+1)] {
		if cell != Empty {
			return false
		}
	}
	return true
}

// Find returns the position of the first cell holding piece, in index order, and whether it was found.
func (p *Pyramid) Find(piece Piece) (Pos, bool) {
	for idx, pos := range p.Positions() {
		if p.cells[idx] == piece {
			return pos, true
		}
	}
	return NoPos, false
}

// Levels returns a dense size×size×size copy of the pyramid, with the cells outside
// of each level marked as Unusable. It is meant for display hosts and debugging.
func (p *Pyramid) Levels() [][][]Piece {
	levels := make([][][]Piece, p.Size)
	for h := range p.Size {
		levels[h] = make([][]Piece, p.Size)
		for r := range p.Size {
			levels[h][r] = make([]Piece, p.Size)
			for c := range p.Size {
				levels[h][r][c] = p.AtHRC(h, r, c)
			}
		}
	}
	return levels
}

// CheckSupport returns an error if any occupied cell above the base level lacks support.
func (p *Pyramid) CheckSupport() error {
	for idx, pos := range p.Positions() {
		if p.cells[idx].IsOccupied() && !p.IsSupported(pos) {
			return errors.Errorf("piece %s at %s is not supported", p.cells[idx], pos)
		}
	}
	return nil
}
