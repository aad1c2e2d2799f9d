package ai

import (
	"github.com/janpfeifer/shibumiGo/internal/generics"
	. "github.com/janpfeifer/shibumiGo/internal/state"
)

// BatchScorerProxy is a trivial implementation of a BatchValueScorer, with no efficiency gains.
type BatchScorerProxy struct {
	ValueScorer
}

// BatchScore calls Score for each board of the batch.
func (s BatchScorerProxy) BatchScore(boards []*Board) (scores []float32) {
	scores = generics.SliceMap(boards, func(board *Board) float32 {
		return s.Score(board)
	})
	return
}

func (s BatchScorerProxy) String() string {
	return s.ValueScorer.String()
}

// AsBatch returns scorer as a BatchValueScorer, wrapping it with BatchScorerProxy if needed.
func AsBatch(scorer ValueScorer) BatchValueScorer {
	if batchScorer, ok := scorer.(BatchValueScorer); ok {
		return batchScorer
	}
	return BatchScorerProxy{scorer}
}

// Assert BatchScorerProxy implements BatchValueScorer
var _ BatchValueScorer = &BatchScorerProxy{}
