package game

import "github.com/lox/hanabiforbots/hanabi"

// board holds the public information deduction questions are answered from.
type board struct {
	heights  [hanabi.NumColours]int
	discards *hanabi.DiscardPile
	ledger   hanabi.CardSet
}

func (b board) score() int {
	s := 0
	for _, h := range b.heights {
		s += h
	}
	return s
}

func (b board) playable(card hanabi.Card) bool {
	return card.Valid() && b.heights[card.Colour-1]+1 == int(card.Rank)
}

func (b board) playableCards() []hanabi.Card {
	var out []hanabi.Card
	for i, h := range b.heights {
		if h < hanabi.NumRanks {
			out = append(out, hanabi.NewCard(hanabi.Colour(i+1), hanabi.Rank(h+1)))
		}
	}
	return out
}

// useless cards are already played or can never be played.
func (b board) useless(card hanabi.Card) bool {
	return card.Valid() && (b.heights[card.Colour-1] >= int(card.Rank) || b.discards.IsDead(card))
}

// critical cards are still needed and have a single copy left in circulation.
func (b board) critical(card hanabi.Card) bool {
	return card.Valid() && !b.useless(card) && b.ledger.Count(card) == 1
}

func (b board) maxScore() int {
	return b.discards.MaxScore(hanabi.NumColours)
}

func (g *GameState) board() board {
	return board{heights: g.PileHeights(), discards: &g.discards, ledger: g.ledger.Set()}
}

// Score returns the number of cards on the piles.
func (g *GameState) Score() int { return g.board().score() }

// MaxScore returns the highest score still reachable given the discards.
func (g *GameState) MaxScore() int { return g.board().maxScore() }

// Pace is the number of further discards the team can afford while still
// reaching MaxScore. Negative pace means MaxScore is out of reach.
func (g *GameState) Pace() int {
	return g.Score() + g.DeckRemaining() + g.players - g.MaxScore()
}

// PlayableCards returns the next card of every incomplete pile.
func (g *GameState) PlayableCards() []hanabi.Card { return g.board().playableCards() }

// IsPlayable reports whether card would land on its pile right now.
func (g *GameState) IsPlayable(card hanabi.Card) bool { return g.board().playable(card) }

// IsUseless reports whether card is already played or dead.
func (g *GameState) IsUseless(card hanabi.Card) bool { return g.board().useless(card) }

// IsCritical reports whether losing card would lower the maximum score.
func (g *GameState) IsCritical(card hanabi.Card) bool { return g.board().critical(card) }

// HasCard reports whether player holds a copy of card.
func (g *GameState) HasCard(player int, card hanabi.Card) bool {
	if player < 0 || player >= g.players {
		return false
	}
	return g.hands[player].Contains(card)
}

// LegalMoves lists every move the current player may make: discards, then
// clues, then plays. It is empty unless the game is in progress.
func (g *GameState) LegalMoves() []hanabi.Move {
	if g.phase != PhaseInProgress {
		return nil
	}
	player := g.current
	n := g.hands[player].Len()

	var moves []hanabi.Move
	if g.rules.DiscardAtMaxHints || g.hints < MaxHints {
		for i := range n {
			moves = append(moves, hanabi.Discard(i))
		}
	}
	if g.hints > 0 {
		for target := range g.players {
			if target == player {
				continue
			}
			for _, c := range hanabi.Colours(hanabi.NumColours) {
				moves = g.appendClue(moves, hanabi.ClueColour(target, c))
			}
			for r := hanabi.One; r <= hanabi.Five; r++ {
				moves = g.appendClue(moves, hanabi.ClueRank(target, r))
			}
		}
	}
	for i := range n {
		moves = append(moves, hanabi.Play(i))
	}
	return moves
}

func (g *GameState) appendClue(moves []hanabi.Move, m hanabi.Move) []hanabi.Move {
	if g.rules.RequireClueMatch && len(g.hands[m.Clue.Target].Matching(m.Clue)) == 0 {
		return moves
	}
	return append(moves, m)
}
