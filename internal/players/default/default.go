// Package _default registers the default players that can be included in any
// front-end for shibumiGo.
//
// Currently, it includes the material heuristic scorer, and the alpha-beta pruning,
// MCTS and random searchers.
package _default

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/players"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	"github.com/janpfeifer/shibumiGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/shibumiGo/internal/searchers/mcts"
	"github.com/janpfeifer/shibumiGo/internal/state"
)

func init() {
	players.RegisterScorer(newMaterial)
	players.RegisterSearcher(alphabeta.NewFromParams)
	players.RegisterSearcher(mcts.NewFromParams)
	players.RegisterSearcher(newRandom)
}

// newMaterial builds the ai.Material scorer if "material" is set.
func newMaterial(variant state.Variant, params parameters.Params) (ai.ValueScorer, error) {
	isMaterial, err := parameters.PopParamOr(params, "material", false)
	if err != nil || !isMaterial {
		return nil, err
	}
	return ai.NewMaterialFromParams(variant, params)
}

// newRandom builds the random searcher if "random" is set. The optional "seed" makes it reproducible.
func newRandom(_ ai.ValueScorer, params parameters.Params) (searchers.Searcher, error) {
	isRandom, err := parameters.PopParamOr(params, "random", false)
	if err != nil || !isRandom {
		return nil, err
	}
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	return searchers.NewRandomSearcher(uint64(seed)), nil
}
