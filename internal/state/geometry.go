package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"iter"
)

// Pos is a cell position in the pyramid: height (level), row and column.
// At height h the level has (size-h)² cells, with row and column in [0, size-h).
type Pos struct {
	H, R, C int8
}

// NoPos is used where a position is optional, e.g. Spaiji's anchor.
var NoPos = Pos{-1, -1, -1}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", pos.H, pos.R, pos.C)
}

// IsValid returns whether pos is not NoPos.
func (pos Pos) IsValid() bool {
	return pos.H >= 0
}

// Distance returns the manhattan distance of two positions, counting height as
// one more axis.
func (pos Pos) Distance(pos2 Pos) int {
	return absInt(int(pos.H)-int(pos2.H)) + absInt(int(pos.R)-int(pos2.R)) + absInt(int(pos.C)-int(pos2.C))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Volume returns the total number of cells of a pyramid with the given number of levels.
func Volume(size int) int {
	return size * (size + 1) * (2*size + 1) / 6
}

// Geometry of a pyramid of a given size. It maps cells positions to flat indices,
// level by level, from the base up, row-major within a level.
type Geometry struct {
	Size   int
	volume int
}

// NewGeometry returns the Geometry of pyramid of the given size. It panics if
// the size is not within [MinSize, MaxSize].
func NewGeometry(size int) Geometry {
	if size < MinSize || size > MaxSize {
		exceptions.Panicf("pyramid size %d not supported, it must be between %d and %d", size, MinSize, MaxSize)
	}
	return Geometry{Size: size, volume: Volume(size)}
}

// Volume returns the number of cells of the pyramid.
func (g Geometry) Volume() int {
	return g.volume
}

// LevelSize returns the width of the level at height h.
func (g Geometry) LevelSize(h int) int {
	return g.Size - h
}

// LevelStart returns the index of the first cell of the level at height h.
func (g Geometry) LevelStart(h int) int {
	return g.volume - Volume(g.Size-h)
}

// Contains returns whether the position is within the pyramid.
func (g Geometry) Contains(pos Pos) bool {
	return g.ContainsHRC(int(pos.H), int(pos.R), int(pos.C))
}

// ContainsHRC is like Contains, but takes the coordinates separately.
func (g Geometry) ContainsHRC(h, r, c int) bool {
	if h < 0 || h >= g.Size {
		return false
	}
	levelSize := g.Size - h
	return r >= 0 && r < levelSize && c >= 0 && c < levelSize
}

// Index returns the flat index of the cell at the given position.
// It doesn't check that the position is within the pyramid, see Contains.
func (g Geometry) Index(pos Pos) int {
	levelSize := g.Size - int(pos.H)
	return g.LevelStart(int(pos.H)) + int(pos.R)*levelSize + int(pos.C)
}

// Coordinates is the inverse of Index. It returns an error for indices outside of
// [0, Volume).
func (g Geometry) Coordinates(index int) (Pos, error) {
	if index < 0 || index >= g.volume {
		return NoPos, &CoordinateError{Index: index, Limit: g.volume}
	}
	for h := range g.Size {
		levelSize := g.Size - h
		levelArea := levelSize * levelSize
		if index < levelArea {
			return Pos{int8(h), int8(index / levelSize), int8(index % levelSize)}, nil
		}
		index -= levelArea
	}
	exceptions.Panicf("index not resolved to a position in a pyramid of size %d", g.Size)
	return NoPos, nil
}

// MustCoordinates is like Coordinates but panics on invalid indices.
func (g Geometry) MustCoordinates(index int) Pos {
	pos, err := g.Coordinates(index)
	if err != nil {
		panic(err)
	}
	return pos
}

// Positions iterates over all positions of the pyramid, in index order.
func (g Geometry) Positions() iter.Seq2[int, Pos] {
	return func(yield func(int, Pos) bool) {
		idx := 0
		for h := range g.Size {
			levelSize := g.Size - h
			for r := range levelSize {
				for c := range levelSize {
					if !yield(idx, Pos{int8(h), int8(r), int8(c)}) {
						return
					}
					idx++
				}
			}
		}
	}
}
