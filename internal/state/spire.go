package state

// Spire: players place their colour, and may place one red piece per turn, but no
// colour may ever cluster: a placement can't complete 3 of the same colour in a
// 2x2 square. The player left without placements loses.

type spireState struct {
	redAllowed bool
}

func (b *Board) spireInit() {
	b.active = Black
	b.spire.redAllowed = true
}

// spireParse reads ">B,R" or ">B".
func (b *Board) spireParse(metadata string) {
	b.spireInit()
	if len(metadata) < 2 {
		return
	}
	if metadata[1] != 'B' {
		b.active = White
	}
	b.spire.redAllowed = len(metadata) > 2
}

func (b *Board) spireMetadata() string {
	text := ">" + string(b.active.Letter())
	if b.spire.redAllowed {
		text += ",R"
	}
	return text
}

func (b *Board) spireValidMoves(mask []bool) {
	p := b.pyramid
	volume := p.Volume()
	own, red := mask[:volume], mask[volume:]
	p.FillSupportedMoves(own)
	if b.spire.redAllowed {
		copy(red, own)
	}
	for idx, pos := range p.Positions() {
		if own[idx] && p.QuadrantMatches(pos, b.active) >= 2 {
			own[idx] = false
		}
		if red[idx] && p.QuadrantMatches(pos, Red) >= 2 {
			red[idx] = false
		}
	}
}

func (b *Board) spireApply(move int) {
	volume := b.pyramid.Volume()
	pos := b.pyramid.MustCoordinates(move % volume)
	if move >= volume {
		b.pyramid.Set(pos, Red)
		b.spire.redAllowed = false
		return
	}
	b.pyramid.Set(pos, b.active)
	b.active = b.active.Opponent()
	b.spire.redAllowed = true
}
