// Package statetest provides helper functions to create tests using the pyramid boards.
package statetest

import (
	"fmt"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// MustParse parses the board text of the given variant, failing the test on errors.
func MustParse(t *testing.T, variant Variant, text string) *Board {
	t.Helper()
	b, err := ParseBoard(variant, text)
	require.NoErrorf(t, err, "failed to parse %s board:\n%s", variant, text)
	return b
}

// MustAct plays the move, failing the test on errors.
func MustAct(t *testing.T, b *Board, move int) *Board {
	t.Helper()
	newB, err := b.Act(move)
	require.NoErrorf(t, err, "failed to play %s (move %d) on:\n%s", b.DisplayMove(move), move, b)
	return newB
}

// MustPlay parses the move text and plays it, failing the test on errors.
func MustPlay(t *testing.T, b *Board, moveText string) *Board {
	t.Helper()
	move, err := b.ParseMove(moveText)
	require.NoErrorf(t, err, "failed to parse move %q on:\n%s", moveText, b)
	return MustAct(t, b, move)
}

// AssertRange checks that mask[start:end] are all set to want.
func AssertRange(t *testing.T, mask []bool, start, end int, want bool) {
	t.Helper()
	for ii := start; ii < end; ii++ {
		assert.Equalf(t, want, mask[ii], "mask[%d]", ii)
	}
}

// Mask creates a mask of the given size with the listed indices set.
func Mask(size int, indices ...int) []bool {
	mask := make([]bool, size)
	for _, idx := range indices {
		mask[idx] = true
	}
	return mask
}

// PrintBoard prints the board, for debugging tests.
func PrintBoard(b *Board) {
	fmt.Printf("%s, %s to move (move #%d):\n%s", b.Variant, b.ActivePlayer(), b.MoveNumber, b)
}
