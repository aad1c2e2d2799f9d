// Package mcts is a Monte Carlo Tree Search implementation of searchers.Searcher, following
// the Alpha-Zero algorithm.
//
// References used, since the original paper doesn't actually provide the formulas:
//
//   - https://suragnair.github.io/posts/alphazero.html by Surag Nair
//   - Paper here: https://github.com/suragnair/alpha-zero-general/blob/master/pretrained_models/writeup.pdf
//   - https://web.stanford.edu/class/archive/cs/cs221/cs221.1196/sections/Section5.pdf
//
// AlphaZero original paper, that mostly talks about its successes but not the actual
// formula:
//
//   - Mastering Chess and Shogi by Self-Play with a General Reinforcement Learning Algorithm
//     https://arxiv.org/abs/1712.01815
//
// Scores stored in each node are from the point of view of the player to move on the node's
// board. A sampled score is only negated when moving to a board where the opponent plays,
// since in some variants the same player moves several times in a row.
package mcts

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/janpfeifer/shibumiGo/internal/ui/cli"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"time"
)

// Searcher implements searchers.Searcher using MCTS.
type Searcher struct {
	// maxTime defines the maximum number of time to spend thinking.
	// Either maxTime or maxTraverses must be defined.
	maxTime time.Duration

	// maxTraverses, minTraverses define the limit number of traverses to do during the search, if not zero.
	// Either maxTime or maxTraverses must be defined.
	maxTraverses, minTraverses int

	// cPuct is the degree of exploration of alpha-zero.
	cPuct float32

	// temperature (usually represented as the greek letter τ) is an exponent applied
	// to the counts used in the policy distribution (π) formula. If set to zero, it will
	// always take the best estimate action. AlphaZero Go uses 1 for the first 30 moves.
	// Larger models will make the play more random.
	temperature float32

	// maxRandDepth defines the move after which temperature is disabled and
	// it simply takes the best move, as opposed to randomly using th policy distribution.
	// A value <= 0 means there is no maxRandDepth.
	maxRandDepth int

	// scorer to use during search.
	scorer ai.PolicyScorer
}

// Assert Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

type searchStats struct {
	// Number of cache nodes generated during search: used for performance measures.
	numCacheNodes int

	// Number of boards scored.
	numEvals int
}

// cacheNode holds information about the possible actions of a board.
type cacheNode struct {
	board *Board

	// actionsProbs are the model actions probabilities.
	actionsProbs []float32

	// Children cacheNodes.
	cacheNodes []*cacheNode

	// N is the count per action of which paths have been traversed.
	N []int

	// sumN holds the sum of all values of N.
	sumN int

	// sumScores of the score of taking the corresponding action at the current board.
	// If N[a] > 0, we have $Q(s, a) = sumScores[a]/N[a]$.
	sumScores []float32
}

// newCacheNode for the given board position, and update stats.
func (mcts *Searcher) newCacheNode(b *Board, stats *searchStats) (*cacheNode, error) {
	if b.IsFinished() {
		return nil, errors.Errorf("can't create cacheNode for a finished board state")
	}
	numActions := b.NumActions()
	if numActions == 0 {
		return nil, errors.Wrapf(searchers.ErrNoActions, "mcts at move #%d", b.MoveNumber)
	}
	cn := &cacheNode{
		board:      b,
		cacheNodes: make([]*cacheNode, numActions),
		N:          make([]int, numActions),
		sumScores:  make([]float32, numActions),
	}
	stats.numCacheNodes++
	cn.actionsProbs = mcts.scorer.PolicyScore(b)
	if len(cn.actionsProbs) != numActions {
		return nil, errors.Errorf("policy scorer returned %d probabilities for %d actions", len(cn.actionsProbs), numActions)
	}

	// Sanity check:
	var sumProbs float32
	for _, prob := range cn.actionsProbs {
		if prob < 0 {
			klog.Errorf("Board has negative action probability %g !?", prob)
			cn.printDebug()
			return nil, errors.Errorf("board scorer returned negative probability %g for board position", prob)
		}
		sumProbs += prob
	}
	if math32.Abs(sumProbs-1.0) > 1e-3 {
		cn.printDebug()
		return nil, errors.Errorf("sum of probabilities=%g != 1.0", sumProbs)
	}
	return cn, nil
}

func (cn *cacheNode) printDebug() {
	ui := cli.New(true, false)
	fmt.Println()
	ui.PrintBoard(cn.board)
	fmt.Printf("Available actions: %v\n", cn.board.Actions())
	fmt.Printf("Probabilities: %v\n", cn.actionsProbs)
}

// SearchSubtree rooted on cn, expanding one board.
//
// It returns the new sampled score for the player to move on the cacheNode's board.
//
// Notice it doesn't return the score estimate (Q) of all samples in the sub-tree, but simply
// the score of the individual new sample (the value returned by the scorer on the leaf-node
// of the recursion).
//
// This is the core of the AlphaZero/MCTS algorithm, based on the estimated
// upper bounds of each possible action.
func (mcts *Searcher) SearchSubtree(cn *cacheNode, stats *searchStats) (score float32, err error) {
	// Find the action with the best upper confidence (U in the description).
	bestAction := -1
	bestUpperConfidence := math32.Inf(-1)
	globalFactor := mcts.cPuct * math32.Sqrt(float32(cn.sumN))
	for actionIdx, numVisits := range cn.N {
		var Q float32 // 0 if we haven't subsampled it yet.
		if numVisits > 0 {
			Q = cn.sumScores[actionIdx] / float32(numVisits)
		}
		upperConfidence := Q + globalFactor*cn.actionsProbs[actionIdx]/float32(1+numVisits)
		if upperConfidence > bestUpperConfidence {
			bestAction = actionIdx
			bestUpperConfidence = upperConfidence
		}
	}

	// Notice TakeAllActions is cached in the board.
	newBoard := cn.board.TakeAllActions()[bestAction]

	// For the first time an action is considered, or if it ends the match, just get the
	// plain score estimate for the new board.
	if isEnd, endScore := ai.IsEndGameAndScore(newBoard); isEnd || cn.N[bestAction] == 0 {
		if !isEnd {
			endScore = mcts.scorer.Score(newBoard)
			stats.numEvals++
		}
		score = ai.ScoreFrom(cn.board, newBoard, endScore)
		cn.N[bestAction]++
		cn.sumN++
		cn.sumScores[bestAction] += score
		return
	}

	// If not the first time we sample the action, make sure we have a corresponding
	// cacheNode for it, expanding the tree.
	if cn.cacheNodes[bestAction] == nil {
		cn.cacheNodes[bestAction], err = mcts.newCacheNode(newBoard, stats)
		if err != nil {
			return
		}
	}

	// Recursively sample value of the best action.
	score, err = mcts.SearchSubtree(cn.cacheNodes[bestAction], stats)
	if err != nil {
		return
	}
	score = ai.ScoreFrom(cn.board, newBoard, score)
	cn.sumScores[bestAction] += score
	cn.N[bestAction]++
	cn.sumN++
	return
}

// Search implements searchers.Searcher API.
//
// It returns the expected best action, board, and score estimate of the given best action.
// The actionsScores are the estimated Q values of each action (0 for actions never visited).
func (mcts *Searcher) Search(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	var root *cacheNode
	move, nextBoard, score, root, err = mcts.searchImpl(board)
	if err != nil {
		return
	}
	actionsScores = make([]float32, len(root.N))
	for actionIdx, nVisits := range root.N {
		if nVisits > 0 {
			actionsScores[actionIdx] = root.sumScores[actionIdx] / float32(nVisits)
		}
	}
	return
}

// SearchWithPolicy search and returns the policy (actionsProbabilities) derived from the search.
func (mcts *Searcher) SearchWithPolicy(board *Board) (move int, nextBoard *Board, score float32, policy []float32, err error) {
	var root *cacheNode
	move, nextBoard, score, root, err = mcts.searchImpl(board)
	if err != nil {
		return
	}
	policy = derivedPolicy(root)
	return
}

func (mcts *Searcher) searchImpl(board *Board) (move int, nextBoard *Board, score float32, root *cacheNode, err error) {
	if err = searchers.CheckActions(board); err != nil {
		return
	}
	var stats searchStats
	root, err = mcts.newCacheNode(board, &stats)
	if err != nil {
		return
	}

	// Keep sampling until the time is over.
	numTraverses := 0
	startTime := time.Now()
	for {
		_, err = mcts.SearchSubtree(root, &stats)
		if err != nil {
			return
		}
		numTraverses++

		if mcts.maxTraverses > 0 && numTraverses >= mcts.maxTraverses {
			break
		}
		if mcts.minTraverses > 0 && numTraverses < mcts.minTraverses {
			continue
		}
		if mcts.maxTime > 0 && time.Since(startTime) > mcts.maxTime {
			break
		}
	}
	elapsed := time.Since(startTime)
	searchers.RecordSearch("mcts", elapsed, stats.numCacheNodes, stats.numEvals)

	// Log performance.
	if klog.V(1).Enabled() {
		cacheNodeRate := float64(stats.numCacheNodes) / elapsed.Seconds()
		klog.Infof("Search at move #%d: %d traverses, %.2f nodes/s", board.MoveNumber, numTraverses, cacheNodeRate)
	}

	bestActionIdx := mcts.selectAction(root)
	move = board.Actions()[bestActionIdx]
	nextBoard = board.TakeAllActions()[bestActionIdx]
	if root.N[bestActionIdx] > 0 {
		score = root.sumScores[bestActionIdx] / float32(root.N[bestActionIdx])
	}
	return
}

// selectAction given the root of the MCTS expanded search.
// If temperature is 0, or maxRandDepth is reached, it is greedy.
// Otherwise, it picks randomly from a probability distribution based on the number of visits of
// each sub-tree.
func (mcts *Searcher) selectAction(root *cacheNode) int {
	board := root.board
	if mcts.temperature == 0 || (mcts.maxRandDepth > 0 && board.MoveNumber > mcts.maxRandDepth) {
		// Greedily pick best action and its estimate.
		bestActionIdx, mostVisits := -1, -1
		for actionIdx, nVisits := range root.N {
			if nVisits > mostVisits {
				mostVisits = nVisits
				bestActionIdx = actionIdx
			}
		}
		return bestActionIdx
	}

	// Calculate policy probability distribution based on visits (not the one returned by the model)
	actionsProbs := derivedPolicy(root)
	temp := mcts.temperature
	if temp != 1 {
		var sumProbs float32
		for actionIdx, prob := range actionsProbs {
			actionsProbs[actionIdx] = math32.Pow(prob, 1/temp)
			sumProbs += actionsProbs[actionIdx]
		}
		for actionIdx, prob := range actionsProbs {
			actionsProbs[actionIdx] = prob / sumProbs
		}
	}
	// Pick random action from probability distribution.
	r := rand.Float32()
	var sumProb float32
	for actionIdx, prob := range actionsProbs {
		sumProb += prob
		if r <= sumProb {
			return actionIdx
		}
	}
	// Due to rounding errors we may get here, in this case return last action.
	return len(actionsProbs) - 1
}

// derivedPolicy returns the policy based on the visits of the root cacheNode.
func derivedPolicy(root *cacheNode) []float32 {
	actionsProbs := make([]float32, len(root.N))
	for actionIdx, nVisits := range root.N {
		actionsProbs[actionIdx] = float32(nVisits) / float32(root.sumN)
	}
	return actionsProbs
}
