package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"slices"
)

// PolicyProxy implement a PolicyScorer that wraps a common ValueScorer.
// It scores the policy by using the score of the state of each action taken.
//
// It allows the scorer to work with MCTS (Monte Carlo Tree Search) searcher.
type PolicyProxy struct {
	ValueScorer
	batchScorer BatchValueScorer
	scale       float32
}

// NewPolicyProxy returns a proxy PolicyScorer that takes a ValueScorer to score the board states
// for each action, passes the output to a Softmax and return that probability as a policy.
// It also takes scale as a multiplier before the Softmax.
func NewPolicyProxy(scorer ValueScorer, scale float32) PolicyScorer {
	return &PolicyProxy{
		ValueScorer: scorer,
		batchScorer: AsBatch(scorer),
		scale:       scale,
	}
}

// PolicyScore implements PolicyScorer.
func (p *PolicyProxy) PolicyScore(board *Board) []float32 {
	nextBoards := board.TakeAllActions()
	if len(nextBoards) == 0 {
		return nil
	}
	scores := p.batchScorer.BatchScore(nextBoards)
	for ii, next := range nextBoards {
		// Scores of the next boards are from the point of view of whoever moves there.
		scores[ii] = p.scale * ScoreFrom(board, next, scores[ii])
	}
	return Softmax(scores)
}

// Softmax returns the Softmax of the given logits in a numerically stable way.
func Softmax(logits []float32) (probs []float32) {
	probs = make([]float32, len(logits))
	var sum float32

	// Subtract maxValue from all logits keep the probability the same, but makes for more numerically stable
	// logits.
	maxValue := slices.Max(logits)
	// Normalize value for numeric logits (smaller exponentials)
	for ii, value := range logits {
		probs[ii] = math32.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
