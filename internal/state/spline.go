package state

// Spline: players alternate placing their colour, the first to complete a line
// across any level of the pyramid wins.

func (b *Board) splineWinner() Piece {
	for _, player := range [2]Piece{Black, White} {
		if b.pyramid.hasLevelLine(player) {
			return player
		}
	}
	return Empty
}

// hasLevelLine returns whether colour fills a whole row, column or diagonal of any
// of the levels. The single cell of the top level counts as a line.
func (p *Pyramid) hasLevelLine(colour Piece) bool {
	for h := range p.Size {
		levelSize := p.LevelSize(h)
		isLine := func(r, c, dr, dc int) bool {
			for range levelSize {
				if p.AtHRC(h, r, c) != colour {
					return false
				}
				r += dr
				c += dc
			}
			return true
		}
		for i := range levelSize {
			if isLine(i, 0, 0, 1) || isLine(0, i, 1, 0) {
				return true
			}
		}
		if isLine(0, 0, 1, 1) || (levelSize > 1 && isLine(levelSize-1, 0, -1, 1)) {
			return true
		}
	}
	return false
}
