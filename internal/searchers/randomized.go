package searchers

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"k8s.io/klog/v2"
	"math"
	"math/rand/v2"
	"slices"
)

// MaterialBonus is added to the score of a move, before sampling, for each
// piece the move gains for the player to move over its opponent, as measured by
// Board.PieceCount: captures in Spargo and Spook, growing the largest group in
// Spaiji, or saving stock in Sploof.
const MaterialBonus = 0.25

// NewRandomizedSearcher adds randomness to the move taken by an existing Searcher.
//
// The move is sampled from softmax((score + MaterialBonus*gain) / randomness), where
// score is the one returned by the base Searcher for the move and gain the change in
// piece balance it causes. Winning moves chosen by the base Searcher are always kept.
//
// Args:
//
//   - searcher: Baseline Searcher. It must return actionsScores for randomness to
//     have any effect.
//   - randomness (>=0): Temperature of the sampling. Zero means no randomness.
//   - maxMoveRandomness: starting at this move number no more randomness is used,
//     so it can be used only for the openings. Zero means no limit.
func NewRandomizedSearcher(searcher Searcher, randomness float64, maxMoveRandomness int) Searcher {
	if randomness <= 0 {
		return searcher
	}
	return &randomizedSearcher{base: searcher, temperature: randomness, maxMoveRandomness: maxMoveRandomness}
}

type randomizedSearcher struct {
	base              Searcher
	temperature       float64
	maxMoveRandomness int
}

var _ Searcher = &randomizedSearcher{}

func (rs *randomizedSearcher) enabled(board *Board) bool {
	return rs.maxMoveRandomness <= 0 || board.MoveNumber < rs.maxMoveRandomness
}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	move, nextBoard, score, actionsScores, err = rs.base.Search(board)
	if err != nil || !rs.enabled(board) || nextBoard.IsFinished() || len(actionsScores) <= 1 {
		return
	}
	actions := board.Actions()
	if len(actionsScores) != len(actions) {
		exceptions.Panicf("randomizedSearcher: searcher returned %d actionsScores, but board has %d actions", len(actionsScores), len(actions))
	}

	idx := sample(rs.logits(board, actionsScores), rand.Float64())
	if idx < 0 || actions[idx] == move {
		return
	}
	if klog.V(2).Enabled() {
		klog.Infof("randomizedSearcher: %s instead of %s (scores %.3f, %.3f)",
			board.DisplayMove(actions[idx]), board.DisplayMove(move),
			actionsScores[idx], score)
	}
	move = actions[idx]
	nextBoard = board.TakeAllActions()[idx]
	score = actionsScores[idx]
	return
}

// logits returns the sampling logit of each action of board.
func (rs *randomizedSearcher) logits(board *Board, actionsScores []float32) []float64 {
	logits := make([]float64, len(actionsScores))
	player := board.ActivePlayer()
	opponent := board.Opponent(player)
	hasBalance := player.IsColour() && opponent.IsColour()
	balance := func(b *Board) int {
		return b.PieceCount(player) - b.PieceCount(opponent)
	}
	var before int
	if hasBalance {
		before = balance(board)
	}
	for ii, next := range board.TakeAllActions() {
		value := float64(actionsScores[ii])
		if hasBalance {
			value += MaterialBonus * float64(balance(next)-before)
		}
		logits[ii] = value / rs.temperature
	}
	return logits
}

// sample draws an index from softmax(logits), given chance uniform in [0, 1).
// It returns -1 if rounding errors leave chance unspent.
func sample(logits []float64, chance float64) int {
	for idx, p := range softmax(logits) {
		if chance < p {
			return idx
		}
		chance -= p
	}
	return -1
}

func softmax(values []float64) (probs []float64) {
	probs = make([]float64, len(values))
	// Shifting by the max keeps the probabilities, with smaller exponentials.
	maxValue := slices.Max(values)
	var sum float64
	for ii, value := range values {
		probs[ii] = math.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
