// Package ai (Artificial Intelligence) defines standard interfaces that AIs for the games
// have to implement, and a heuristic scorer that works for all variants.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/shibumiGo/internal/state"
)

// WinGameScore for the winning side. For the losing side it is -WinGameScore.
// We make these +1 and -1, so it's easy to put a tanh(x) on the output of a scorer to get a
// value from +1 to -1.
const WinGameScore = float32(1)

// SquashScore converts any score to a value between +WinGameScore and -WinGameScore
// by using the tanh(x) function -- a type of S curve.
func SquashScore(x float32) float32 {
	return math32.Tanh(x) * WinGameScore
}

// ValueScorer or aka. as a "value scorer" returns a score (value) for a given board.
//
// A value score represents how likely the player to move (Board.ActivePlayer) is to win:
// +1 represents a sure win, -1 a sure loss, and 0 a draw.
type ValueScorer interface {
	Score(board *Board) float32
	String() string
}

// BatchValueScorer is a ValueScorer that handles batches.
type BatchValueScorer interface {
	ValueScorer

	// BatchScore aggregate board scoring in batches, presumably more efficient.
	BatchScore(boards []*Board) []float32
}

// PolicyScorer represents an AI capable of scoring both the board and individual actions.
type PolicyScorer interface {
	ValueScorer

	// PolicyScore returns a score (probability) for each of the action of the board.
	// In the article/paper, this is $P[s] = { p(s, a), \forall a \in s }$, where s is the state (board)
	// and $a$ is an action valid in the state $s$.
	PolicyScore(board *Board) []float32
}

// IsEndGameAndScore returns whether it's the end of the game, and the hard-coded score of a win/loss/draw
// for the player to move if it is finished.
// If isEnd is false, the score should be ignored.
func IsEndGameAndScore(b *Board) (isEnd bool, score float32) {
	if !b.IsFinished() {
		return false, 0
	}
	if b.Draw() {
		return true, 0
	}
	if b.IsWin(b.ActivePlayer()) {
		// Current player wins.
		return true, WinGameScore
	}
	// Opponent player wins.
	return true, -WinGameScore
}

// SameSide returns whether the player to move on next is the same as on board.
// Some variants let a player move more than once in a row (Spaiji's two pieces,
// Sparks' remove and add, Spire's red piece, Spook's chained captures), so scores
// of the next board only flip sign if the turn actually passed.
func SameSide(board, next *Board) bool {
	return board.ActivePlayer() == next.ActivePlayer()
}

// ScoreFrom converts the score of next, from the point of view of the player to move
// on next, to the point of view of the player to move on board.
func ScoreFrom(board, next *Board, nextScore float32) float32 {
	if SameSide(board, next) {
		return nextScore
	}
	return -nextScore
}

// OneHotEncoding returns a slice of float32 with one element set to 1, and all others to 0.
func OneHotEncoding(total, selected int) (vec []float32) {
	vec = make([]float32, total)
	if total > 0 {
		vec[selected] = 1
	}
	return
}
