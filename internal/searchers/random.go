package searchers

import (
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"math/rand/v2"
	"time"
)

// randomSearcher picks one of the valid moves uniformly at random.
type randomSearcher struct {
	rng *rand.Rand
}

// NewRandomSearcher returns a Searcher that plays uniformly random moves. If seed is
// not zero, the sequence of moves is reproducible.
//
// It is not safe for concurrent use: create one per player.
func NewRandomSearcher(seed uint64) Searcher {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &randomSearcher{rng: rand.New(rand.NewPCG(seed, seed^0x5eed))}
}

// Search implements the Searcher interface. The score returned is always 0.
func (s *randomSearcher) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	if err = CheckActions(board); err != nil {
		return
	}
	start := time.Now()
	actionIdx := s.rng.IntN(board.NumActions())
	move = board.Actions()[actionIdx]
	nextBoard, err = board.Act(move)
	RecordSearch("random", time.Since(start), 1, 0)
	return
}
