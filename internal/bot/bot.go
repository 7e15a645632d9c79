// Package bot provides the baseline agents used by the simulator and the CLI.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/internal/game"
)

// Kinds lists the agent names accepted by New.
var Kinds = []string{"cheat", "rand", "discard"}

// New creates an agent by name for one seat of state.
func New(kind string, state *game.GameState, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch kind {
	case "cheat":
		return NewCheatBot(state, logger), nil
	case "rand":
		return NewRandBot(rng, logger), nil
	case "discard":
		return NewDiscardBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown agent type %q (want one of %v)", kind, Kinds)
	}
}

// Seats creates one agent of the given kind per player. Agents that need
// randomness share rng.
func Seats(kind string, state *game.GameState, rng *rand.Rand, logger *log.Logger) ([]game.Agent, error) {
	agents := make([]game.Agent, state.Players())
	for i := range agents {
		a, err := New(kind, state, rng, logger.With("seat", i))
		if err != nil {
			return nil, err
		}
		agents[i] = a
	}
	return agents, nil
}
