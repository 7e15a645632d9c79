package bot

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

// HandSource exposes every hand, including the one an honest player cannot
// see. *game.GameState implements it.
type HandSource interface {
	Hand(player int) []hanabi.Card
}

// CheatBot looks at its own cards. It is the reference driver for batch
// simulations: strong enough to reach high scores, simple enough to trust.
//
// In order of preference it:
//   - plays a playable card
//   - clues the next player when hints are full
//   - discards a useless card while the discard budget lasts or no hints remain
//   - clues the next player
//   - discards a card another player also holds
//   - discards a non-critical card
//   - discards its oldest card
type CheatBot struct {
	hands  HandSource
	logger *log.Logger
}

// NewCheatBot creates a CheatBot that reads hands from src
func NewCheatBot(src HandSource, logger *log.Logger) *CheatBot {
	return &CheatBot{hands: src, logger: logger}
}

func (c *CheatBot) ChooseMove(view game.View, legal []hanabi.Move) hanabi.Move {
	move, reason := c.choose(view)
	if !slices.Contains(legal, move) {
		c.logger.Debug("cheat-bot fallback", "player", view.Viewer, "wanted", move)
		return legal[0]
	}
	c.logger.Debug("cheat-bot move", "player", view.Viewer, "move", move, "reason", reason)
	return move
}

func (c *CheatBot) choose(view game.View) (hanabi.Move, string) {
	me := view.Viewer
	hand := c.hands.Hand(me)
	hints := view.Counters.Hints

	for i, card := range hand {
		if view.IsPlayable(card) {
			return hanabi.Play(i), "playable"
		}
	}

	if hints == game.MaxHints {
		return c.clue(view), "hints full"
	}

	// Cards beyond a perfect game that can be thrown away without losing
	// anything: the surplus of the deck over one copy per card, minus what is
	// held at the start.
	budget := view.Ledger.Total() + view.Discards.Total() + view.Score() -
		hanabi.MaxScore - view.Players*view.HandSize
	if view.Discards.Total() < budget || hints == 0 {
		if i := slices.IndexFunc(hand, view.IsUseless); i >= 0 {
			return hanabi.Discard(i), "useless"
		}
	}

	if hints > 0 {
		return c.clue(view), "spend hint"
	}

	for i, card := range hand {
		if c.heldByOther(view, card) {
			return hanabi.Discard(i), "duplicate"
		}
	}

	for i, card := range hand {
		if !view.IsCritical(card) {
			return hanabi.Discard(i), "non-critical"
		}
	}
	return hanabi.Discard(0), "oldest"
}

// clue names a colour the next player holds, so the clue is legal under every
// rule variant.
func (c *CheatBot) clue(view game.View) hanabi.Move {
	next := view.NextPlayer(view.Viewer)
	for _, card := range view.Hands[next].Cards {
		if card.Valid() {
			return hanabi.ClueColour(next, card.Colour)
		}
	}
	return hanabi.ClueColour(next, hanabi.Red)
}

func (c *CheatBot) heldByOther(view game.View, card hanabi.Card) bool {
	for p := range view.Players {
		if p != view.Viewer && slices.Contains(c.hands.Hand(p), card) {
			return true
		}
	}
	return false
}
