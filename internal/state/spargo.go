package state

// Spargo (and Margo, its 6 levels version) is Go on the pyramid: groups that lose
// their last freedom are captured, except for pieces still holding up others.

import (
	"cmp"
	"github.com/janpfeifer/shibumiGo/internal/generics"
	"github.com/pkg/errors"
	"slices"
)

func (b *Board) spargoInit() {
	b.active = Black
}

func (b *Board) spargoParse(metadata string) {
	b.active = Black
	if metadata != "" && metadata != ">B" {
		b.active = White
	}
}

func (b *Board) spargoMetadata() string {
	return ">" + string(b.active.Letter())
}

// comparePos orders positions by height, row and then column.
func comparePos(a, b Pos) int {
	if c := cmp.Compare(a.H, b.H); c != 0 {
		return c
	}
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	return cmp.Compare(a.C, b.C)
}

// spargoApply places the active player's piece at move and captures the opponent
// groups left without freedom.
func (b *Board) spargoApply(move int) error {
	p := b.pyramid
	pos := p.MustCoordinates(move)
	player := b.active
	opponent := player.Opponent()
	p.Set(pos, player)

	captured := generics.MakeSet[Pos]()
	for neighbour := range p.Neighbours(pos) {
		if p.At(neighbour) != opponent || captured.Has(neighbour) {
			continue
		}
		group := generics.MakeSet[Pos]()
		if !p.HasFreedom(neighbour, group) {
			for groupPos := range group {
				captured.Insert(groupPos)
			}
		}
	}

	// Remove from the top down: pieces holding others up stay as "zombies".
	capturedPositions := generics.SortedSet(captured, comparePos)
	slices.Reverse(capturedPositions)
	for _, capturedPos := range capturedPositions {
		isSupporting := false
		for above := range p.CandidateNeighbours(capturedPos, 1, 1) {
			if p.IsOccupied(above) {
				isSupporting = true
				break
			}
		}
		if !isSupporting {
			p.Set(capturedPos, Empty)
		}
	}

	if !p.HasFreedom(pos, generics.MakeSet[Pos]()) {
		return errors.Wrap(ErrIllegalMove, "added piece has no freedom")
	}
	b.active = opponent
	if !b.pushHistory() {
		return errors.Wrap(ErrIllegalMove, "cannot repeat a position")
	}
	return nil
}

// spargoValidMoves tries every supported position: the ones that fail are not valid.
func (b *Board) spargoValidMoves(mask []bool) {
	b.pyramid.FillSupportedMoves(mask)
	for move, valid := range mask {
		if !valid {
			continue
		}
		if _, err := b.apply(move); err != nil {
			mask[move] = false
		}
	}
}

// spargoWinner is the player with more pieces, once the match has ended.
func (b *Board) spargoWinner() Piece {
	blacks, whites := b.pyramid.Count(Black), b.pyramid.Count(White)
	switch {
	case blacks > whites:
		return Black
	case whites > blacks:
		return White
	default:
		return Empty
	}
}
