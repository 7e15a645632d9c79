package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

// RandBot picks a uniformly random legal move
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) ChooseMove(view game.View, legal []hanabi.Move) hanabi.Move {
	move := legal[r.rng.IntN(len(legal))]
	r.logger.Debug("rand-bot move", "player", view.Viewer, "move", move)
	return move
}
