package alphabeta

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	"github.com/pkg/errors"
	"time"
)

// NewFromParams creates an alpha-beta Searcher if params has the key "ab". It returns nil, nil otherwise.
//
// Parameters used: "ab", "max_depth", "max_time", "randomness", "max_move_randomness" and "parallelism".
func NewFromParams(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error) {
	isAB, err := parameters.PopParamOr(params, "ab", false)
	if err != nil {
		return nil, err
	}
	if !isAB {
		return nil, nil
	}
	ab := New(scorer)
	maxDepth, err := parameters.PopParamOr(params, "max_depth", DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	maxTime, err := parameters.PopParamOr(params, "max_time", time.Duration(0))
	if err != nil {
		return nil, err
	}
	if maxTime > 0 {
		ab.WithMaxTime(maxTime)
	} else {
		if maxDepth <= 0 {
			return nil, errors.Errorf("ab: max_depth must be positive, got %d", maxDepth)
		}
		ab.WithMaxDepth(maxDepth)
	}
	randomness, err := parameters.PopParamOr(params, "randomness", float32(0))
	if err != nil {
		return nil, err
	}
	if randomness < 0 {
		return nil, errors.Errorf("ab: negative randomness (%f given) not possible", randomness)
	}
	ab.WithRandomness(randomness)
	maxMoveRandomness, err := parameters.PopParamOr(params, "max_move_randomness", 0)
	if err != nil {
		return nil, err
	}
	ab.WithMaxMoveRandomness(maxMoveRandomness)
	parallelism, err := parameters.PopParamOr(params, "parallelism", 1)
	if err != nil {
		return nil, err
	}
	ab.WithParallelism(parallelism)
	return ab, nil
}
