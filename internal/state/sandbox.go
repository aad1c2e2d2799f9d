package state

// Sandbox has no rules beyond the physics of the pyramid: any colour can be placed
// on any supported cell, and any piece removed. It is used to set up diagrams.

func (b *Board) sandboxValidMoves(mask []bool) {
	p := b.pyramid
	volume := p.Volume()
	p.FillSupportedMoves(mask[:volume])
	copy(mask[volume:2*volume], mask[:volume])
	copy(mask[2*volume:3*volume], mask[:volume])
	removals := mask[3*volume:]
	for idx := range volume {
		removals[idx] = p.cells[idx].IsOccupied()
	}
}

func (b *Board) sandboxApply(move int) {
	volume := b.pyramid.Volume()
	pos := b.pyramid.MustCoordinates(move % volume)
	switch move / volume {
	case 0:
		b.pyramid.Set(pos, Black)
	case 1:
		b.pyramid.Set(pos, White)
	case 2:
		b.pyramid.Set(pos, Red)
	default:
		b.pyramid.Remove(pos)
	}
}
