package mcts

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	"github.com/pkg/errors"
	"time"
)

// NewFromParams creates an MCTS Searcher if params has the key "mcts". It returns nil, nil otherwise.
//
// If scorer is not an ai.PolicyScorer, it is wrapped with ai.NewPolicyProxy, scaled by "policy_scale".
func NewFromParams(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error) {
	isMCTS, err := parameters.PopParamOr(params, "mcts", false)
	if err != nil {
		return nil, err
	}
	if !isMCTS {
		return nil, nil
	}
	scale, err := parameters.PopParamOr(params, "policy_scale", float32(5))
	if err != nil {
		return nil, err
	}
	policyScorer, ok := scorer.(ai.PolicyScorer)
	if !ok {
		policyScorer = ai.NewPolicyProxy(scorer, scale)
	}
	mcts := &Searcher{
		scorer:       policyScorer,
		maxTime:      5 * time.Second,
		maxTraverses: 1000,
		minTraverses: 10,
		cPuct:        1.1,
		temperature:  1.0,
		maxRandDepth: 10,
	}
	mcts.cPuct, err = parameters.PopParamOr(params, "c_puct", mcts.cPuct)
	if err != nil {
		return nil, err
	}
	if mcts.cPuct < 0 {
		return nil, errors.Errorf("negative c_puct value (%f given) not possible", mcts.cPuct)
	}
	mcts.maxTime, err = parameters.PopParamOr(params, "max_time", mcts.maxTime)
	if err != nil {
		return nil, err
	}
	mcts.maxTraverses, err = parameters.PopParamOr(params, "max_traverses", mcts.maxTraverses)
	if err != nil {
		return nil, err
	}
	mcts.minTraverses, err = parameters.PopParamOr(params, "min_traverses", mcts.minTraverses)
	if err != nil {
		return nil, err
	}
	if mcts.maxTime <= 0 && mcts.maxTraverses <= 0 {
		return nil, errors.New("mcts requires either max_time or max_traverses to be set")
	}
	mcts.temperature, err = parameters.PopParamOr(params, "temperature", mcts.temperature)
	if err != nil {
		return nil, err
	}
	if mcts.temperature < 0 {
		return nil, errors.Errorf("negative temperature (%f given) not possible", mcts.temperature)
	}
	mcts.maxRandDepth, err = parameters.PopParamOr(params, "max_rand_depth", mcts.maxRandDepth)
	if err != nil {
		return nil, err
	}
	return mcts, nil
}
