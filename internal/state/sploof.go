package state

// Sploof: players spend their stock placing pieces, or pull red pieces out of the
// pyramid to earn more. The first to make a line of 4 wins.

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// sploofInitialStock of each player.
const sploofInitialStock = 2

// sploofState holds the stock of the player to move and of its opponent.
type sploofState struct {
	playerStock, opponentStock int
}

// sploofInit sets the starting layout: red pieces around the border of the base.
func (b *Board) sploofInit() {
	size := b.Size()
	for r := range size {
		for c := range size {
			if r == 0 || r == size-1 || c == 0 || c == size-1 {
				b.pyramid.Set(Pos{0, int8(r), int8(c)}, Red)
			}
		}
	}
	b.active = White
	b.sploof = sploofState{sploofInitialStock, sploofInitialStock}
}

// sploofParse reads ">W(2,1)": the player to move, its stock and the opponent's stock.
func (b *Board) sploofParse(metadata string) error {
	b.active = White
	b.sploof = sploofState{sploofInitialStock, sploofInitialStock}
	if metadata == "" {
		return nil
	}
	if len(metadata) < 2 || metadata[1] != 'W' {
		b.active = Black
	}
	start, end := strings.IndexByte(metadata, '('), strings.LastIndexByte(metadata, ')')
	if start < 0 || end < start {
		return errors.New("missing stocks")
	}
	fields := strings.Split(metadata[start+1:end], ",")
	if len(fields) != 2 {
		return errors.Errorf("expected 2 stocks, got %d", len(fields))
	}
	var stocks [2]int
	for ii, field := range fields {
		stock, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return errors.Wrapf(err, "invalid stock %q", field)
		}
		stocks[ii] = stock
	}
	b.sploof = sploofState{stocks[0], stocks[1]}
	return nil
}

func (b *Board) sploofMetadata() string {
	return ">" + string(b.active.Letter()) + "(" + strconv.Itoa(b.sploof.playerStock) + "," + strconv.Itoa(b.sploof.opponentStock) + ")"
}

// sploofStock returns the stock of the player.
func (b *Board) sploofStock(player Piece) int {
	if player == b.active {
		return b.sploof.playerStock
	}
	return b.sploof.opponentStock
}

// sploofValidMoves: placements while there is stock, and removal of any red piece
// that isn't pinned.
func (b *Board) sploofValidMoves(mask []bool) {
	p := b.pyramid
	volume := p.Volume()
	if b.sploof.playerStock > 0 {
		p.FillSupportedMoves(mask[:volume])
	}
	removals := mask[volume:]
	for idx, pos := range p.Positions() {
		removals[idx] = p.cells[idx] == Red && !p.IsPinned(pos)
	}
}

func (b *Board) sploofApply(move int) {
	volume := b.pyramid.Volume()
	pos := b.pyramid.MustCoordinates(move % volume)
	stock := b.sploof.playerStock
	if move < volume {
		b.pyramid.Set(pos, b.active)
		stock--
	} else {
		b.pyramid.Remove(pos)
		stock += 2
	}
	b.sploof = sploofState{playerStock: b.sploof.opponentStock, opponentStock: stock}
	b.active = b.active.Opponent()
}

// sploofLineWinner returns who has a line, regardless of whose turn it is.
func (b *Board) sploofLineWinner() Piece {
	for _, player := range [2]Piece{Black, White} {
		if b.pyramid.HasLine(player) {
			return player
		}
	}
	return Empty
}
