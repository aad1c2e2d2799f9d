package ai

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	. "github.com/janpfeifer/shibumiGo/internal/state"
)

// MaxHeuristicScore bounds the scores of Material, so they never get confused with
// the score of a won (or lost) match.
const MaxHeuristicScore = float32(0.95)

// Material is a heuristic ValueScorer that works for every variant: a weighted sum of
// simple features of the board, from the point of view of the player to move, squashed
// to (-MaxHeuristicScore, MaxHeuristicScore).
//
// Features:
//
//   - Pieces: difference of Board.PieceCount between the player and its opponent. That
//     is the pieces on the board for most variants, the group score for Spaiji and the
//     stock for Sploof.
//   - Height: difference of the sum of the levels (counting from 1) of each player's
//     pieces.
//   - Mobility: log(1+n), where n is the number of valid moves of the player.
type Material struct {
	PieceWeight, HeightWeight, MobilityWeight float32
}

// Assert Material is a ValueScorer.
var _ ValueScorer = (*Material)(nil)

// NewMaterial returns the Material scorer with the default weights for the variant.
func NewMaterial(variant Variant) *Material {
	switch variant {
	case Spargo, Margo, Spaiji, Spook:
		// Pieces decide the winner.
		return &Material{PieceWeight: 0.3, MobilityWeight: 0.05}
	case Sploof:
		return &Material{PieceWeight: 0.2, HeightWeight: 0.05, MobilityWeight: 0.05}
	case Spline:
		return &Material{HeightWeight: 0.1, MobilityWeight: 0.05}
	case Sparks, Spire:
		// Running out of moves loses.
		return &Material{HeightWeight: 0.05, MobilityWeight: 0.2}
	default:
		return &Material{}
	}
}

// NewMaterialFromParams returns a Material scorer for the variant, with weights
// overridden by the parameters "piece_weight", "height_weight" and "mobility_weight",
// which are popped from params.
func NewMaterialFromParams(variant Variant, params parameters.Params) (*Material, error) {
	m := NewMaterial(variant)
	for key, weight := range map[string]*float32{
		"piece_weight": &m.PieceWeight, "height_weight": &m.HeightWeight, "mobility_weight": &m.MobilityWeight,
	} {
		value, err := parameters.PopParamOr(params, key, *weight)
		if err != nil {
			return nil, err
		}
		*weight = value
	}
	return m, nil
}

// String implements ValueScorer.
func (m *Material) String() string {
	return fmt.Sprintf("Material(pieces=%g, height=%g, mobility=%g)", m.PieceWeight, m.HeightWeight, m.MobilityWeight)
}

// Score implements ValueScorer.
func (m *Material) Score(board *Board) float32 {
	if isEnd, score := IsEndGameAndScore(board); isEnd {
		return score
	}
	player := board.ActivePlayer()
	if player == Empty {
		return 0
	}
	opponent := board.Opponent(player)
	var x float32
	if m.PieceWeight != 0 {
		x += m.PieceWeight * float32(board.PieceCount(player)-board.PieceCount(opponent))
	}
	if m.HeightWeight != 0 {
		x += m.HeightWeight * float32(heightSum(board.Pyramid(), player)-heightSum(board.Pyramid(), opponent))
	}
	if m.MobilityWeight != 0 {
		x += m.MobilityWeight * math32.Log(1+float32(board.NumActions()))
	}
	return SquashScore(x) * MaxHeuristicScore
}

// heightSum of the pieces of player, with the base counting as 1.
func heightSum(p *Pyramid, player Piece) (sum int) {
	for _, pos := range p.Positions() {
		if p.At(pos) == player {
			sum += int(pos.H) + 1
		}
	}
	return
}
