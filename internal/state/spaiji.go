package state

// Spaiji: each turn the player places one piece of each colour, the second one
// touching the first. At the end, the largest group of each colour is compared.

import (
	"strconv"
	"strings"
	"unicode"
)

// spaijiState holds the position of the first piece placed in the current turn,
// or NoPos if the turn hasn't started.
type spaijiState struct {
	anchor Pos
}

func (b *Board) spaijiInit() {
	b.active = White
	b.spaiji.anchor = NoPos
}

// spaijiParse reads ">W" or, in the middle of a turn, ">W(1E)".
func (b *Board) spaijiParse(metadata string) {
	b.spaijiInit()
	if len(metadata) < 2 {
		return
	}
	if metadata[1] == 'B' {
		b.active = Black
	}
	start, end := strings.IndexByte(metadata, '('), strings.IndexByte(metadata, ')')
	if start < 0 || end < start+3 {
		return
	}
	label := metadata[start+1 : end]
	rowNum, err := strconv.Atoi(label[:len(label)-1])
	column := unicode.ToUpper(rune(label[len(label)-1]))
	if err != nil || rowNum < 1 || column < 'A' || column > 'Z' {
		return
	}
	// The anchor is the top piece with the given label.
	for pos := range b.pyramid.labelledPositions(rowNum, int(column-'A')) {
		if !b.pyramid.IsOccupied(pos) {
			break
		}
		b.spaiji.anchor = pos
	}
}

func (b *Board) spaijiMetadata() string {
	text := ">" + string(b.active.Letter())
	if b.spaiji.anchor.IsValid() {
		text += "(" + PositionName(b.spaiji.anchor) + ")"
	}
	return text
}

func (b *Board) spaijiApply(move int) {
	volume := b.pyramid.Volume()
	pos := b.pyramid.MustCoordinates(move % volume)
	b.pyramid.Set(pos, splitColours[move/volume])
	if !b.spaiji.anchor.IsValid() {
		b.spaiji.anchor = pos
		return
	}
	b.spaiji.anchor = NoPos
	b.active = b.active.Opponent()
}

// spaijiValidMoves: the first piece of the turn can go in any supported cell that
// leaves room for the second one, in either colour. The second one must touch the
// first and have the other colour.
func (b *Board) spaijiValidMoves(mask []bool) {
	p := b.pyramid
	volume := p.Volume()
	firstHalf, secondHalf := mask[:volume], mask[volume:]
	p.FillSupportedMoves(firstHalf)
	if !b.spaiji.anchor.IsValid() {
		for move, valid := range firstHalf {
			if !valid {
				continue
			}
			newB, _ := b.apply(move)
			if newB.NumActions() == 0 {
				// No neighbour left to complete the turn.
				firstHalf[move] = false
			}
		}
		copy(secondHalf, firstHalf)
		return
	}

	supported := make([]bool, volume)
	copy(supported, firstHalf)
	clear(firstHalf)
	target := firstHalf
	if p.At(b.spaiji.anchor) == Black {
		target = secondHalf
	}
	for neighbour := range p.Neighbours(b.spaiji.anchor) {
		if idx := p.Index(neighbour); supported[idx] {
			target[idx] = true
		}
	}
}

// spaijiWinner compares the largest groups of each colour, ties go to Black.
func (b *Board) spaijiWinner() Piece {
	scores := b.pyramid.GroupScores()
	if scores[White] > scores[Black] {
		return White
	}
	return Black
}
