package state

// Spook: players fill the pyramid with their colours, then a ghost (shown as a
// white piece) is placed on top. From then on each turn the ghost captures the
// pieces it touches, chaining captures of a same colour.

import (
	"k8s.io/klog/v2"
)

// spookState tracks the phase of the match in restricted:
//
//   - Unusable: still adding pieces, there is no ghost yet.
//   - Empty: the ghost may capture either colour.
//   - Red or Black: the ghost already captured this turn, and may only continue
//     capturing that colour (or pass).
type spookState struct {
	restricted Piece
	moveCount  int
}

// Ghost is the colour used to represent Spook's ghost.
const Ghost = White

func (b *Board) spookInit() {
	b.active = Red
	b.spook = spookState{restricted: Unusable}
}

// spookParse reads ">R" while adding, and ">R(B,R)", ">B(R)" or ">R(B)" once the
// ghost is on the board.
func (b *Board) spookParse(metadata string) {
	b.spookInit()
	if len(metadata) >= 2 && metadata[1] != 'R' {
		b.active = Black
	}
	ghostCount := b.pyramid.Count(Ghost)
	numPieces := b.pyramid.Count(Black) + b.pyramid.Count(Red)
	if ghostCount == 0 {
		b.spook.moveCount = numPieces
		return
	}
	b.spook.moveCount = 2*b.pyramid.Volume() - numPieces - 3
	b.spook.restricted = Empty
	if len(metadata) > 4 {
		switch metadata[3 : len(metadata)-1] {
		case "B":
			b.spook.restricted = Black
		case "R":
			b.spook.restricted = Red
		}
	}
}

func (b *Board) spookMetadata() string {
	text := ">" + string(b.active.Letter())
	switch b.spook.restricted {
	case Unusable:
	case Empty:
		text += "(B,R)"
	default:
		text += "(" + string(b.spook.restricted.Letter()) + ")"
	}
	return text
}

func (b *Board) spookGhost() (Pos, bool) {
	return b.pyramid.Find(Ghost)
}

func (b *Board) spookValidMoves(mask []bool) {
	if b.spookWinner() != Empty {
		return
	}
	p := b.pyramid
	volume := p.Volume()
	restricted := b.spook.restricted
	if restricted == Unusable {
		p.FillSupportedMoves(mask[:volume])
		return
	}

	// After a first capture the player may stop.
	mask[volume] = restricted != Empty
	ghost, found := b.spookGhost()
	if !found {
		return
	}
	var numNeighbours, numCaptures int
	for neighbour := range p.CandidateNeighbours(ghost, -1, 1) {
		piece := p.At(neighbour)
		if !piece.IsOccupied() {
			continue
		}
		numNeighbours++
		if restricted != Empty && restricted != piece {
			continue
		}
		if neighbour.H == ghost.H {
			if !p.IsFree(neighbour) {
				continue
			}
		} else {
			// Captures up or down only start a turn.
			if restricted != Empty || p.IsPinned(neighbour) {
				continue
			}
		}
		mask[p.Index(neighbour)] = true
		numCaptures++
	}

	switch {
	case numNeighbours == 0:
		// A lonely ghost moves to any supported cell next to some piece.
		p.FillSupportedMoves(mask[:volume])
		for idx, pos := range p.Positions() {
			if pos.H > 0 {
				break
			}
			if mask[idx] && !b.spookTouchesPieces(pos) {
				mask[idx] = false
			}
		}
	case numCaptures == 0:
		// Nothing to capture: remove any opponent piece that is not pinned.
		opponent := b.Opponent(b.active)
		for idx, pos := range p.Positions() {
			if p.cells[idx] == opponent && !p.IsPinned(pos) {
				mask[idx] = true
			}
		}
	}
}

// spookTouchesPieces returns whether a Black or Red piece is next to pos, on
// the same level or above.
func (b *Board) spookTouchesPieces(pos Pos) bool {
	for neighbour := range b.pyramid.CandidateNeighbours(pos, 0, 1) {
		if piece := b.pyramid.At(neighbour); piece == Red || piece == Black {
			return true
		}
	}
	return false
}

func (b *Board) spookApply(move int) {
	p := b.pyramid
	volume := p.Volume()
	player := b.active
	nextPlayer := b.Opponent(player)
	b.spook.moveCount++

	switch {
	case b.spook.restricted == Unusable:
		pos := p.MustCoordinates(move)
		p.Set(pos, player)
		if b.spook.moveCount == volume-2 {
			b.spookPlaceGhost(nextPlayer)
		}

	case move == volume:
		// Pass.
		b.spook.restricted = Empty

	default:
		pos := p.MustCoordinates(move)
		removed := p.Remove(pos)
		ghost, _ := b.spookGhost()
		b.spook.restricted = Empty
		if ghost == pos {
			// The ghost was resting on the captured piece and dropped into its place.
			if klog.V(2).Enabled() {
				klog.Infof("Spook: ghost dropped to %s", PositionName(pos))
			}
			break
		}
		isNeighbourCaptured := false
		if p.At(pos) == Empty {
			isNeighbourCaptured = removed != Empty && ghost.Distance(pos) == 1
			if isNeighbourCaptured || removed == Empty {
				b.spookMoveGhost(ghost, pos)
			}
		}
		if isNeighbourCaptured {
			// The turn continues if there is more of the same colour to capture.
			for neighbour := range p.CandidateNeighbours(pos, 0, 1) {
				if p.At(neighbour) == removed && p.IsFree(neighbour) {
					nextPlayer = player
					b.spook.restricted = removed
					break
				}
			}
		}
	}
	b.active = nextPlayer
}

// spookPlaceGhost completes the last cell below the top with the colour of
// the next player, and places the ghost on top.
func (b *Board) spookPlaceGhost(nextPlayer Piece) {
	p := b.pyramid
	h := b.Size() - 2
	for r := range 2 {
		for c := range 2 {
			pos := Pos{int8(h), int8(r), int8(c)}
			if p.At(pos) == Empty {
				p.Set(pos, nextPlayer)
				p.Set(Pos{int8(h + 1), 0, 0}, Ghost)
				b.spook.restricted = Empty
				return
			}
		}
	}
}

// spookMoveGhost moves the ghost from ghost to the empty cell pos. Pieces that
// rested on the ghost drop into its old cell, and if that leaves pos without
// support the ghost falls back into its old cell.
func (b *Board) spookMoveGhost(ghost, pos Pos) {
	p := b.pyramid
	p.Remove(ghost)
	if !p.IsSupported(pos) {
		pos = ghost
	}
	p.Set(pos, Ghost)
}

// spookWinner: once the ghost is free to capture either colour, a player wins
// when the opponent has no pieces left.
func (b *Board) spookWinner() Piece {
	if b.spook.restricted != Empty {
		return Empty
	}
	for _, player := range [2]Piece{Red, Black} {
		if b.pyramid.Count(b.Opponent(player)) == 0 {
			return player
		}
	}
	return Empty
}
