package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/hanabi"
)

// GameOption configures a GameState during creation.
type GameOption func(*gameConfig)

type gameConfig struct {
	rules  Rules
	logger *log.Logger
	deck   []hanabi.Card // fixed draw order, bypasses the shuffle
	id     string
}

// WithRules replaces DefaultRules.
func WithRules(r Rules) GameOption {
	return func(c *gameConfig) {
		c.rules = r
	}
}

// WithLogger sets the logger used for move and lifecycle messages. The default
// discards everything.
func WithLogger(l *log.Logger) GameOption {
	return func(c *gameConfig) {
		c.logger = l
	}
}

// WithDeck deals from cards in the given order instead of a shuffled full
// deck; cards[0] is dealt first. The seed is then only recorded.
func WithDeck(cards []hanabi.Card) GameOption {
	return func(c *gameConfig) {
		c.deck = append([]hanabi.Card(nil), cards...)
	}
}

// WithID tags the game with an identifier for logs and replays.
func WithID(id string) GameOption {
	return func(c *gameConfig) {
		c.id = id
	}
}
