package state_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
	. "github.com/janpfeifer/shibumiGo/internal/state/statetest"
)

// TestRandomMatches plays random matches of every variant, checking the pyramid
// physics and the notation along the way.
func TestRandomMatches(t *testing.T) {
	const maxSteps = 150
	rng := rand.New(rand.NewPCG(42, 7))
	for _, variant := range Variants {
		t.Run(variant.String(), func(t *testing.T) {
			for range 3 {
				b := NewBoard(variant)
				for step := 0; step < maxSteps && !b.IsEnded(); step++ {
					actions := b.Actions()
					require.NotEmpty(t, actions)
					require.Equal(t, len(actions), b.NumActions())
					actionIdx := rng.IntN(len(actions))
					next := b.TakeAllActions()[actionIdx]
					played := MustAct(t, b, actions[actionIdx])
					require.Equal(t, played.String(), next.String())
					require.Equal(t, b.MoveNumber+1, next.MoveNumber)
					b = next

					require.NoError(t, b.Pyramid().CheckSupport(), "after %d moves:\n%s", step+1, b)
					parsed := MustParse(t, variant, b.String())
					require.Truef(t, parsed.Pyramid().Equal(b.Pyramid()), "parsed:\n%s\noriginal:\n%s", parsed, b)
				}
				if b.IsEnded() {
					assert.True(t, b.IsFinished())
					assert.NotEqual(t, "game not finished yet", b.FinishReason())
				}
			}
		})
	}
}

func TestPlayersAndColours(t *testing.T) {
	for _, variant := range Variants {
		b := NewBoard(variant)
		players := variant.Players()
		if variant == Sandbox {
			assert.Empty(t, players)
			continue
		}
		require.Len(t, players, 2)
		assert.Equal(t, players[0], b.ActivePlayer(), "first player of %s", variant)
		assert.Equal(t, players[1], b.Opponent(players[0]))
		assert.Equal(t, players[0], b.Opponent(players[1]))
		assert.Equal(t, Empty, b.Winner())
		assert.False(t, b.IsEnded())
	}
}
