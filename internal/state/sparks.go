package state

// Sparks: each turn the player first removes one of its own pieces, and then adds
// its colour (the "coal") and a red piece (the "spark"). Whoever reaches the top of
// the pyramid wins.

// sparksState tracks the phase of the turn: removing first, then adding, with the
// pieces still to be added.
type sparksState struct {
	adding, hasCoal, hasSpark bool
	moveCount                 int
}

// sparksInit sets the starting layout, a checkerboard of both colours on the base.
func (b *Board) sparksInit() {
	for r := range b.Size() {
		for c := range b.Size() {
			colour := Black
			if (r+c)%2 == 1 {
				colour = White
			}
			b.pyramid.Set(Pos{0, int8(r), int8(c)}, colour)
		}
	}
	b.active = White
	b.sparks = sparksState{}
}

// sparksParse reads "<W" while removing, or ">B, R", ">B", ">R" while adding.
func (b *Board) sparksParse(metadata string) {
	b.active = White
	b.sparks = sparksState{}
	if len(metadata) < 2 {
		return
	}
	b.sparks.adding = metadata[0] == '>'
	if b.sparks.adding {
		b.sparks.hasSpark = metadata[len(metadata)-1] == 'R'
		b.sparks.hasCoal = metadata[1] != 'R'
	}
	if metadata[1] != 'W' {
		b.active = Black
	}
}

func (b *Board) sparksMetadata() string {
	if !b.sparks.adding {
		return "<" + string(b.active.Letter())
	}
	text := ">"
	if b.sparks.hasCoal {
		text += string(b.active.Letter())
	}
	if b.sparks.hasSpark {
		if b.sparks.hasCoal {
			text += ", "
		}
		text += "R"
	}
	return text
}

func (b *Board) sparksValidMoves(mask []bool) {
	p := b.pyramid
	volume := p.Volume()
	if b.sparks.adding {
		if b.sparks.hasCoal {
			p.FillSupportedMoves(mask[:volume])
		}
		if b.sparks.hasSpark {
			p.FillSupportedMoves(mask[volume:])
		}
		return
	}
	for idx, pos := range p.Positions() {
		mask[idx] = p.cells[idx] == b.active && !p.IsPinned(pos)
	}
}

func (b *Board) sparksApply(move int) {
	p := b.pyramid
	volume := p.Volume()
	pos := p.MustCoordinates(move % volume)
	b.sparks.moveCount++
	if b.sparks.adding {
		if move < volume {
			p.Set(pos, b.active)
			b.sparks.hasCoal = false
		} else {
			p.Set(pos, Red)
			b.sparks.hasSpark = false
		}
		if !b.sparks.hasCoal && !b.sparks.hasSpark {
			b.active = b.active.Opponent()
			b.sparks.adding = false
		}
		return
	}

	p.Remove(pos)
	if replacedBy := p.At(pos); replacedBy == Empty {
		// Nothing slid into the hole: it is filled by a red piece.
		p.Set(pos, Red)
		b.sparks.hasSpark = false
	} else {
		b.sparks.hasSpark = replacedBy != Red
	}
	b.sparks.hasCoal = true
	b.sparks.adding = true
}

// sparksApex returns the colour on top of the pyramid, if Black or White.
func (b *Board) sparksApex() Piece {
	apex := b.pyramid.AtHRC(b.Size()-1, 0, 0)
	if apex == Black || apex == White {
		return apex
	}
	return Empty
}
