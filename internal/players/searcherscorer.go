package players

import (
	"github.com/janpfeifer/shibumiGo/internal/ai"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/searchers"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SearcherScorer is a standard set up for an AI: a searcher and a scorer.
// It implements the Player interface.
type SearcherScorer struct {
	Searcher searchers.Searcher
	Scorer   ai.ValueScorer
	Config   string
}

// New creates a new AI player for the variant given the configuration string.
//
// Args:
//
//   - config: a comma-separated list of parameters with optional values associated. At least a
//     "searcher" (e.g. "ab", "mcts" or "random") must be defined, and optionally a "scorer" (e.g. "material"),
//     which is the default. If empty, the default is given by DefaultPlayerConfig.
//     E.g.: "material,ab,max_depth=2"
//
// Typical parameters:
//
//   - material (bool): Configure to use the heuristic scorer. Its weights can be changed with
//     "piece_weight", "height_weight" and "mobility_weight".
//   - ab (bool): If to use Alpha-Beta pruning search algorithm.
//   - mcts (bool): Use MCTS (Monte Carlo Tree Search) algorithm.
//   - random (bool): Play random moves.
//   - max_depth (int): Max depth of search, default is 3. If max_time is set, this parameter is ignored.
//   - max_time (time.Duration): Max time duration in search, default is 0s, which means it is not time-limited but rather max_depth limited.
//   - explore (float): Adds a layer of randomness in the search: the first level choice is
//     distributed according to a softmax of the scores of each move, divided by this value.
//     So lower values (closer to 0) means less randomness, higher value means more randomness,
//     hence more exploration. Default is 0. Only works with searchers that return the scores of
//     every move, like "mcts".
//   - explore_until (int): Move number after which "explore" is disabled.
//
// More details on the config are dependent on the module used.
func New(variant Variant, config string) (*SearcherScorer, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	params := parameters.NewFromConfigString(config)

	player := &SearcherScorer{Config: config}

	if len(RegisteredSearchers) == 0 {
		return nil, errors.New("no registered searchers. Perhaps you need to import _ \"github.com/janpfeifer/shibumiGo/internal/players/default\" to your binary ?")
	}

	// Find scorer.
	for _, builder := range RegisteredScorers {
		s, err := builder(variant, params)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create scorer for %q", config)
		}
		if s == nil {
			// Not this type of scorer.
			continue
		}
		if player.Scorer != nil {
			return nil, errors.Errorf("multiple scorers defined in parameters %q", config)
		}
		player.Scorer = s
	}
	if player.Scorer == nil {
		player.Scorer = ai.NewMaterial(variant)
	}

	// Find searcher.
	for _, builder := range RegisteredSearchers {
		s, err := builder(player.Scorer, params)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create searcher for %q", config)
		}
		if s == nil {
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined in parameters %q", config)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.Errorf("no searchers defined in parameters %q", config)
	}

	explore, err := parameters.PopParamOr(params, "explore", 0.0)
	if err != nil {
		return nil, err
	}
	exploreUntil, err := parameters.PopParamOr(params, "explore_until", 0)
	if err != nil {
		return nil, err
	}
	player.Searcher = searchers.NewRandomizedSearcher(player.Searcher, explore, exploreUntil)

	// Check that all parameters were processed.
	if err := params.CheckEmpty("AI player"); err != nil {
		return nil, err
	}
	return player, nil
}

// Assert that SearchScorer is a Player.
var _ Player = &SearcherScorer{}

// Play implements the Player interface: it chooses a move given a Board.
func (s *SearcherScorer) Play(b *Board) (move int, nextBoard *Board, score float32, actionsScores []float32, err error) {
	move, nextBoard, score, actionsScores, err = s.Searcher.Search(b)
	if err != nil {
		err = errors.WithMessagef(err, "AI (%s) failed at move #%d", s.Config, b.MoveNumber)
		return
	}
	if klog.V(2).Enabled() {
		klog.Infof("Move #%d: AI (%s) playing %s, score=%.3f",
			b.MoveNumber, s.Scorer, b.DisplayMove(move), score)
	}
	return
}

// Finalize is called at the end of a match.
func (s *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("Player (scorer=%s) finalized", s.Scorer)
	}
	s.Scorer = nil
	s.Searcher = nil
}
