package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

// DiscardBot never plays: it discards its oldest card, or clues when
// discarding is not allowed
type DiscardBot struct {
	logger *log.Logger
}

// NewDiscardBot creates a new DiscardBot instance
func NewDiscardBot(logger *log.Logger) *DiscardBot {
	return &DiscardBot{logger: logger}
}

func (d *DiscardBot) ChooseMove(view game.View, legal []hanabi.Move) hanabi.Move {
	for _, m := range legal {
		if m.Kind == hanabi.DiscardMove {
			return m
		}
	}
	for _, m := range legal {
		if m.Kind == hanabi.ClueMove {
			return m
		}
	}
	return legal[0]
}
