package state

// This file contains the history of previous positions of a match, used to check
// for repeated positions.

import (
	"hash/fnv"
	"k8s.io/klog/v2"
)

// HashNode represents the list (but during exploration it may become a tree) of
// the previous positions in a line of the game, used to check for repeated positions.
//
// Each Board points to the node of its own position, so branches explored from the
// same Board share their common history.
type HashNode struct {
	Hash     uint64
	Snapshot string
	Prev     *HashNode
}

// snapshot encodes the pyramid contents and the player to move.
func (b *Board) snapshot() string {
	buf := make([]byte, 0, len(b.pyramid.cells)+1)
	for _, piece := range b.pyramid.cells {
		buf = append(buf, piece.Letter())
	}
	buf = append(buf, b.active.Letter())
	return string(buf)
}

func hashSnapshot(snapshot string) uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(snapshot))
	return hasher.Sum64()
}

// historyStart returns the history of a new or parsed board: only its own position,
// for the variants that track repeats.
func (b *Board) historyStart() *HashNode {
	if b.Variant != Spargo && b.Variant != Margo {
		return nil
	}
	snapshot := b.snapshot()
	return &HashNode{Hash: hashSnapshot(snapshot), Snapshot: snapshot}
}

// pushHistory appends the board's current position to its history. It returns
// false, without changing the history, if the position was already seen.
func (b *Board) pushHistory() bool {
	snapshot := b.snapshot()
	hash := hashSnapshot(snapshot)
	for hn := b.history; hn != nil; hn = hn.Prev {
		if hn.Hash == hash && hn.Snapshot == snapshot {
			if klog.V(2).Enabled() {
				klog.Infof("Repeated position rejected: %s", b.debugString())
			}
			return false
		}
	}
	b.history = &HashNode{Hash: hash, Snapshot: snapshot, Prev: b.history}
	return true
}

// CountHistory returns the number of positions in the board's history, including
// its own. It is 0 for variants that don't track it.
func (b *Board) CountHistory() (count int) {
	for hn := b.history; hn != nil; hn = hn.Prev {
		count++
	}
	return
}
