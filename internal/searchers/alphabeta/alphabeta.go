// Package alphabeta implements the Alpha-Beta pruning searcher.
//
// Scores are always from the point of view of the player to move. Because some variants let
// the same player move more than once in a row, the sign of a child score is only flipped
// (and the alpha-beta window swapped) when the turn passes to the opponent.
package alphabeta

import (
	"fmt"
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/generics"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/janpfeifer/shibumiGo/internal/ui/cli"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Searcher implements the searchers.Searcher interface.
// It is used by players.SearcherScorer, along with the scorer, to implement an AI player (players.Player interface).
type Searcher struct {
	maxDepth          int
	maxTime           time.Duration
	randomness        float32
	maxMoveRandomness int
	parallelism       int
	scorer            ai.BatchValueScorer
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes "played" during search: execution of an action in a board, following by the creation of the new board.
	Nodes atomic.Int64

	// Evals is the number of boards passed to the scorer. Notice end-game situations are not scored and don't
	// count here.
	Evals atomic.Int64

	LeafEvals atomic.Int64
	Prunes    atomic.Int64
}

func (s *Stats) String() string {
	return fmt.Sprintf("nodes=%d, evals=%d, leafEvals=%d, prunes=%d",
		s.Nodes.Load(), s.Evals.Load(), s.LeafEvals.Load(), s.Prunes.Load())
}

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// There are many other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the scorer used for the search.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
func New(scorer ai.ValueScorer) *Searcher {
	return &Searcher{
		scorer:      ai.AsBatch(scorer),
		maxDepth:    DefaultMaxDepth,
		parallelism: 1,
	}
}

// DefaultMaxDepth for search.
const DefaultMaxDepth = 3

// maxIterativeDepth limits the depth when searching limited by time.
const maxIterativeDepth = 32

// WithMaxDepth sets a default max depth of search: the unit here are plies (ply singular). Each
// move counts as one ply, even if the same player moves again. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// This overrides WithMaxTime.
//
// The default is 3 (DefaultMaxDepth).
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	ab.maxDepth = maxDepth
	if maxDepth > 0 {
		ab.maxTime = 0
	} else {
		ab.maxDepth = 0
		// If disabling maxDepth, set maxTime to some default, if it is not set.
		if ab.maxTime == 0 {
			ab.maxTime = 3 * time.Second
		}
	}
	return ab
}

// WithRandomness adds a gaussian noise scaled to randomness to the scores returned by the scorer.
// Scores vary from -1 to 1 (+/- ai.WinGameScore), so a value of 1.0 here would be a lot.
//
// This can be useful to make the AI play worse, to make it more fun.
//
// If noise is added, the scores are also further squashed by an S curve.
//
// Set to 0 to disable randomness, this is the default.
//
// See also WithMaxMoveRandomness.
func (ab *Searcher) WithRandomness(randomness float32) *Searcher {
	ab.randomness = randomness
	return ab
}

// WithMaxMoveRandomness sets a move limit after which randomness is disabled.
//
// This is desirable if, for instance, using randomness only to generate different openings.
func (ab *Searcher) WithMaxMoveRandomness(maxMoveRandomness int) *Searcher {
	ab.maxMoveRandomness = maxMoveRandomness
	return ab
}

// WithMaxTime sets a default max duration of thinking per search. The search is iteratively
// deepened one ply at a time, and a depth already started is always completed, so the
// time limit is a soft one.
// This overrides WithMaxDepth.
//
// The default is no time-limit, and instead be limited by WithMaxDepth.
func (ab *Searcher) WithMaxTime(maxTime time.Duration) *Searcher {
	ab.maxTime = maxTime
	if maxTime > 0 {
		ab.maxDepth = 0
	} else {
		ab.maxTime = 0
		// If disabling maxTime, set maxDepth to default, if it is not set.
		if ab.maxDepth == 0 {
			ab.maxDepth = DefaultMaxDepth
		}
	}
	return ab
}

// WithParallelism sets the number of goroutines used to search the moves of the root board.
// With parallelism > 1 each root move is searched with a full window, which prunes less but
// yields exact scores for every move, returned as actionsScores by Search.
//
// The default is 1: no parallelism.
func (ab *Searcher) WithParallelism(parallelism int) *Searcher {
	ab.parallelism = max(parallelism, 1)
	return ab
}

// Search implements the Searcher interface.
//
// Without parallelism it returns actionsScores always nil, because it wouldn't be a good approximation for the
// non-best move. This is because of the pruning aspect of the algorithm: bad moves are cut short, so alpha-beta
// pruning score estimation for bad moves will not be a good one.
func (ab *Searcher) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	if err = searchers.CheckActions(board); err != nil {
		return
	}
	start := time.Now()
	stats := &Stats{}
	var bestIdx int
	if ab.maxTime > 0 {
		for depth := 1; depth <= maxIterativeDepth; depth++ {
			bestIdx, score, actionsScores = ab.searchToMaxDepth(board, depth, stats)
			elapsed := time.Since(start)
			klog.V(2).Infof("alpha-beta depth %d: move=%s, score=%.3f, elapsed=%s",
				depth, board.DisplayMove(board.Actions()[bestIdx]), score, elapsed)
			// The next depth is expected to take a few times longer than this one.
			if math.Abs(float64(score)) >= float64(ai.WinGameScore) || elapsed*3 > ab.maxTime {
				break
			}
		}
	} else {
		bestIdx, score, actionsScores = ab.searchToMaxDepth(board, ab.maxDepth, stats)
	}
	move = board.Actions()[bestIdx]
	nextBoard = board.TakeAllActions()[bestIdx]
	elapsed := time.Since(start)
	searchers.RecordSearch("ab", elapsed, int(stats.Nodes.Load()), int(stats.Evals.Load()))

	if klog.V(3).Enabled() {
		muLogBoard.Lock()
		defer muLogBoard.Unlock()

		ui := cli.New(true, false)
		fmt.Println()
		ui.PrintPlayer(board)
		fmt.Printf(" - Move #%d\n\n", board.MoveNumber)
		ui.PrintBoard(nextBoard)
		fmt.Println()
		fmt.Printf("Best move found: %s - shallow score=%.2f, αβ-score=%.2f\n\n",
			board.DisplayMove(move), ab.scorer.Score(nextBoard), score)
	}
	if klog.V(2).Enabled() {
		seconds := elapsed.Seconds()
		klog.Infof("Counts: %s", stats)
		klog.Infof("  nodes/s=%.1f, evals/s=%.1f",
			float64(stats.Nodes.Load())/seconds, float64(stats.Evals.Load())/seconds)
	}
	return
}

var muLogBoard sync.Mutex

// searchToMaxDepth executes alpha-beta pruning algorithm to the given depth.
// It returns the index of the best action, its score and, if searching in parallel, the scores of all actions.
func (ab *Searcher) searchToMaxDepth(board *Board, maxDepth int, stats *Stats) (bestIdx int, bestScore float32, actionsScores []float32) {
	addNoise := ab.randomness > 0 && (ab.maxMoveRandomness <= 0 || board.MoveNumber <= ab.maxMoveRandomness)
	if ab.parallelism <= 1 || maxDepth <= 1 {
		alpha := float32(-math.MaxFloat32)
		beta := float32(math.MaxFloat32)
		bestIdx, bestScore = ab.recursion(board, maxDepth, alpha, beta, addNoise, stats)
		return
	}
	return ab.parallelRoot(board, maxDepth, addNoise, stats)
}

// parallelRoot searches each of the moves of the root board in its own goroutine, with a full window.
func (ab *Searcher) parallelRoot(board *Board, maxDepth int, addNoise bool, stats *Stats) (bestIdx int, bestScore float32, actionsScores []float32) {
	newBoards, scores := ab.executeAndScoreActions(board, stats)
	if idx, found := pickWinning(scores); found {
		return idx, ai.WinGameScore, scores
	}
	var g errgroup.Group
	g.SetLimit(ab.parallelism)
	for idx, next := range newBoards {
		if next.IsFinished() {
			continue
		}
		g.Go(func() error {
			alpha := float32(-math.MaxFloat32)
			beta := float32(math.MaxFloat32)
			_, childScore := ab.recursion(next, maxDepth-1, alpha, beta, addNoise, stats)
			scores[idx] = ai.ScoreFrom(board, next, childScore)
			return nil
		})
	}
	_ = g.Wait()
	bestIdx = generics.ArgMax(scores)
	return bestIdx, scores[bestIdx], scores
}

// pickWinning returns the index of one of the winning moves, chosen at random, if there are any.
func pickWinning(scores []float32) (bestIdx int, found bool) {
	winningMoves := 0
	for idx, score := range scores {
		if score == ai.WinGameScore {
			winningMoves++
			if winningMoves == 1 || rand.IntN(winningMoves) == 0 {
				bestIdx = idx
			}
		}
	}
	return bestIdx, winningMoves > 0
}

// recursion of the alpha-beta pruning algorithm, with depthLeft plies to go.
// It returns the index of the best action of board and its score, from the point of view of board.ActivePlayer().
func (ab *Searcher) recursion(board *Board, depthLeft int, alpha, beta float32, addNoise bool, stats *Stats) (
	bestIdx int, bestScore float32) {
	isLeaf := depthLeft <= 1

	// Sub-actions and boards available at this state: in principle we would only need to score the leaf
	// nodes, but we score intermediary nodes to guide the alpha-beta pruning search: it prunes more
	// if we search for the better nodes first and find high values for alpha, making it faster overall.
	newBoards, scores := ab.executeAndScoreActions(board, stats)

	// If there is only one action, and it leads to and end-game, then there is nothing else to explore.
	if len(newBoards) == 1 && newBoards[0].IsFinished() {
		return 0, scores[0]
	}

	// If there is a winning move, the scorer was not used (no evals), and we take the winning move (or one of them at random),
	// no need to explore deeper.
	if idx, found := pickWinning(scores); found {
		return idx, ai.WinGameScore
	}

	// Leaf nodes take the score returned by the scorer.
	if isLeaf {
		stats.LeafEvals.Add(int64(len(scores)))
		// Add noise to leaf nodes if randomness was configured:
		if addNoise {
			// Randomize only non end-of-game actions
			for ii := range scores {
				if !newBoards[ii].IsFinished() {
					noise := float32(rand.NormFloat64()) * ab.randomness
					scores[ii] = ai.SquashScore(scores[ii]+noise) * ai.MaxHeuristicScore
				}
			}
		}
		bestIdx = generics.ArgMax(scores)
		return bestIdx, scores[bestIdx]
	}

	// Find order from the best scoring first.
	bestScore = float32(-math.MaxFloat32)
	ordering := generics.SliceOrdering(scores, true) // Reverse order by score.
	for _, idx := range ordering {
		next := newBoards[idx]
		// Only follows recursion if this action doesn't end the match.
		if !next.IsFinished() {
			if ai.SameSide(board, next) {
				_, scores[idx] = ab.recursion(next, depthLeft-1, alpha, beta, addNoise, stats)
			} else {
				// Runs alphaBeta for opponent player, so the window is reversed.
				_, score := ab.recursion(next, depthLeft-1, -beta, -alpha, addNoise, stats)
				scores[idx] = -score
			}
		}

		// Save bestScore for this board.
		if scores[idx] > bestScore {
			bestScore = scores[idx]
			bestIdx = idx
		}

		// Update the alpha for pruning.
		if bestScore > alpha {
			alpha = bestScore
		}

		// Prune: the opponent will never take this path, so we can stop here.
		if alpha >= beta {
			stats.Prunes.Add(1)
			return
		}

		// If bestScore is a win, it can stop early.
		if bestScore >= ai.WinGameScore {
			return
		}
	}
	return
}

// executeAndScoreActions returns the boards after executing each of the board actions,
// and their scores (from the point of view of board.ActivePlayer()) according to the scorer.
//
// It returns without using the scorer if any of the actions lead to board.ActivePlayer() winning.
func (ab *Searcher) executeAndScoreActions(board *Board, stats *Stats) (newBoards []*Board, scores []float32) {
	newBoards = board.TakeAllActions()
	scores = make([]float32, len(newBoards))
	stats.Nodes.Add(int64(len(newBoards)))

	// Pre-score actions that lead to end-game.
	boardsToScore := make([]*Board, 0, len(newBoards))
	hasWinning := false
	for ii, next := range newBoards {
		if isEnd, score := ai.IsEndGameAndScore(next); isEnd {
			scores[ii] = ai.ScoreFrom(board, next, score)
			if scores[ii] > 0 {
				hasWinning = true
			}
		} else {
			boardsToScore = append(boardsToScore, next)
		}
	}

	// Player wins, no need to score the other actions.
	if hasWinning || len(boardsToScore) == 0 {
		return
	}

	// Score non-game ending boards.
	stats.Evals.Add(int64(len(boardsToScore)))
	scored := ab.scorer.BatchScore(boardsToScore)
	scoredIdx := 0
	for ii, next := range newBoards {
		if !next.IsFinished() {
			scores[ii] = ai.ScoreFrom(board, next, scored[scoredIdx])
			scoredIdx++
		}
	}
	return
}
