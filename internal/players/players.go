// Package players provides a factory of AI players from configuration strings.
// It also allows scorer and searcher providers to register themselves.
package players

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	. "github.com/janpfeifer/shibumiGo/internal/state"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen, the next board position (after the move is taken)
	// and optionally the current board scores predicted.
	Play(board *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error)

	// Finalize is called at the end of a match.
	Finalize()
}

// ScorerBuilder creates a scorer for the variant if params selects it. Otherwise, it returns nil, nil.
// Builders pop from params the parameters they use.
type ScorerBuilder func(variant Variant, params parameters.Params) (ai.ValueScorer, error)

// SearcherBuilder creates a searcher using the scorer if params selects it. Otherwise, it returns nil, nil.
// Builders pop from params the parameters they use.
type SearcherBuilder func(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error)

var (
	// RegisteredScorers is a list of scorer builders, tried in order by New.
	RegisteredScorers []ScorerBuilder

	// RegisteredSearchers is a list of searcher builders, tried in order by New.
	RegisteredSearchers []SearcherBuilder
)

// RegisterScorer adds a scorer builder to the list of builders tried by New.
func RegisterScorer(builder ScorerBuilder) {
	RegisteredScorers = append(RegisteredScorers, builder)
}

// RegisterSearcher adds a searcher builder to the list of builders tried by New.
func RegisterSearcher(builder SearcherBuilder) {
	RegisteredSearchers = append(RegisteredSearchers, builder)
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "material,ab,max_depth=2"
)
