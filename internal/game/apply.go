package game

import (
	"fmt"

	"github.com/lox/hanabiforbots/hanabi"
)

// Apply validates and performs move for player. On error the state is
// unchanged and the error is a *MoveError wrapping one of the rule-violation
// sentinels.
func (g *GameState) Apply(player int, move hanabi.Move) (Outcome, error) {
	if err := g.validate(player, move); err != nil {
		return Outcome{}, &MoveError{Player: player, Move: move, Err: err}
	}

	move.Player = player
	out := Outcome{Turn: g.turn, Player: player, Move: move}

	switch move.Kind {
	case hanabi.ClueMove:
		g.clue(move.Clue, &out)
	case hanabi.DiscardMove:
		g.discard(player, move.Index, &out)
	case hanabi.PlayMove:
		g.play(player, move.Index, &out)
	}

	g.advance(&out)
	g.history = append(g.history, out)
	return out, nil
}

func (g *GameState) validate(player int, move hanabi.Move) error {
	switch g.phase {
	case PhaseSetup:
		return ErrNotStarted
	case PhaseFinished:
		return ErrGameFinished
	}
	if player != g.current {
		return fmt.Errorf("%w: player %d moved, player %d to act", ErrNotPlayersTurn, player, g.current)
	}

	switch move.Kind {
	case hanabi.ClueMove:
		clue := move.Clue
		if g.hints == 0 {
			return ErrNoHintsAvailable
		}
		if clue.Target == player {
			return ErrSelfClue
		}
		if clue.Target < 0 || clue.Target >= g.players {
			return fmt.Errorf("%w: %d", ErrInvalidClueTarget, clue.Target)
		}
		if !clue.Valid() {
			return ErrInvalidClue
		}
		if g.rules.RequireClueMatch && len(g.hands[clue.Target].Matching(clue)) == 0 {
			return ErrClueMatchesNothing
		}

	case hanabi.DiscardMove:
		if err := g.checkIndex(player, move.Index); err != nil {
			return err
		}
		if !g.rules.DiscardAtMaxHints && g.hints == MaxHints {
			return ErrHintsFull
		}

	case hanabi.PlayMove:
		if err := g.checkIndex(player, move.Index); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %d", ErrUnknownMove, move.Kind)
	}
	return nil
}

func (g *GameState) checkIndex(player, index int) error {
	if n := g.hands[player].Len(); index < 0 || index >= n {
		return fmt.Errorf("%w: index %d, hand has %d cards", ErrInvalidHandIndex, index, n)
	}
	return nil
}

func (g *GameState) clue(clue hanabi.Clue, out *Outcome) {
	g.hints--
	out.ClueMatches = g.hands[clue.Target].Matching(clue)
	g.logger.Debug("clue",
		"turn", g.turn,
		"player", g.current,
		"target", clue.Target,
		"value", clue.Value(),
		"matches", out.ClueMatches,
		"hints", g.hints)
}

func (g *GameState) discard(player, index int, out *Outcome) {
	card := g.take(player, index)
	g.retire(card, true)
	out.Card = card
	out.HintGained = g.gainHint()
	out.Drew = g.hands[player].DrawFrom(g.deck)
	g.logger.Debug("discard",
		"turn", g.turn,
		"player", player,
		"card", card,
		"hints", g.hints)
}

func (g *GameState) play(player, index int, out *Outcome) {
	card := g.take(player, index)
	out.Card = card

	pile := g.Pile(card.Colour)
	if pile.Accepts(card) {
		if err := pile.Push(card); err != nil {
			panic(fmt.Sprintf("game: pile accepted %v but rejected push: %v", card, err))
		}
		g.retire(card, false)
		out.Played = true
		if pile.Complete() && g.rules.BonusHintOnComplete {
			out.BonusHint = g.gainHint()
			out.HintGained = out.BonusHint
		}
	} else {
		// A misplay is a discard that costs a strike and earns no token.
		g.retire(card, true)
		g.strikes++
		out.Strike = true
	}

	out.Drew = g.hands[player].DrawFrom(g.deck)
	g.logger.Debug("play",
		"turn", g.turn,
		"player", player,
		"card", card,
		"success", out.Played,
		"strikes", g.strikes)
}

// take removes a card from a hand. Indices are validated before any move
// mutates state, so a failure here is a bug.
func (g *GameState) take(player, index int) hanabi.Card {
	card, err := g.hands[player].RemoveAt(index)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	return card
}

// retire takes a card out of circulation. Every ledger change after setup
// goes through here.
func (g *GameState) retire(card hanabi.Card, discarded bool) {
	g.ledger.Decrement(card)
	if discarded {
		g.discards.Add(card)
	}
}

func (g *GameState) gainHint() bool {
	if g.hints >= MaxHints {
		return false
	}
	g.hints++
	return true
}

// advance moves the turn on and detects the end of the game. The countdown
// starts on the move that empties the deck, or at Start when the deal does.
func (g *GameState) advance(out *Outcome) {
	g.turn++
	g.current = (g.current + 1) % g.players

	if g.lastRound {
		g.countdown--
	} else if g.deck.IsEmpty() {
		g.lastRound = true
		g.countdown = g.players
		g.logger.Debug("deck empty", "turnsLeft", g.countdown)
	}

	score := g.Score()
	switch {
	case g.strikes >= MaxStrikes:
		if g.rules.ZeroOnStrikeout {
			score = 0
		}
		g.finish(Result{Reason: LossByStrikes, Score: score})
	case g.lastRound && g.countdown == 0:
		reason := LossByTurns
		if score == hanabi.MaxScore {
			reason = Win
		}
		g.finish(Result{Reason: reason, Score: score})
	case score == hanabi.MaxScore:
		g.finish(Result{Reason: Win, Score: score})
	}

	out.Counters = g.Counters()
	out.PileHeights = g.PileHeights()
	out.Finished = g.phase == PhaseFinished
	out.Result = g.result
}

func (g *GameState) finish(r Result) {
	g.phase = PhaseFinished
	g.result = r
	g.logger.Info("game over",
		"reason", r.Reason,
		"score", r.Score,
		"turns", g.turn,
		"strikes", g.strikes)
}
