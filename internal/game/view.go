package game

import "github.com/lox/hanabiforbots/hanabi"

// Spectator is the viewer id that sees every hand.
const Spectator = -1

// HandView is one player's hand as seen by the viewer. Hidden hands carry
// zero-value cards, which keeps Size and positions intact.
type HandView struct {
	Player int
	Cards  []hanabi.Card
	Hidden bool
}

// Size returns the number of cards in the hand.
func (h HandView) Size() int { return len(h.Cards) }

// View is a read-only snapshot of the game from one seat. It shares no memory
// with the GameState.
type View struct {
	Viewer        int
	Phase         Phase
	Players       int
	HandSize      int
	CurrentPlayer int
	Hands         []HandView
	PileHeights   [hanabi.NumColours]int
	DeckRemaining int
	Counters      Counters
	Ledger        hanabi.CardSet
	Discards      hanabi.DiscardPile
	History       []Outcome
	Result        Result
}

// View returns the game as seen by viewer: every other player's cards are
// visible and the viewer's own cards are hidden. Pass Spectator to see all.
func (g *GameState) View(viewer int) View {
	v := View{
		Viewer:        viewer,
		Phase:         g.phase,
		Players:       g.players,
		HandSize:      g.handSize,
		CurrentPlayer: g.current,
		Hands:         make([]HandView, g.players),
		PileHeights:   g.PileHeights(),
		DeckRemaining: g.DeckRemaining(),
		Counters:      g.Counters(),
		Ledger:        g.ledger.Set(),
		Discards:      g.discards.Clone(),
		History:       g.History(),
		Result:        g.result,
	}
	for p, h := range g.hands {
		hv := HandView{Player: p, Cards: h.Cards()}
		if p == viewer {
			hv.Hidden = true
			for i := range hv.Cards {
				hv.Cards[i] = hanabi.Card{}
			}
		}
		v.Hands[p] = hv
	}
	return v
}

func (v View) board() board {
	return board{heights: v.PileHeights, discards: &v.Discards, ledger: v.Ledger}
}

// Score returns the number of cards on the piles.
func (v View) Score() int { return v.board().score() }

// MaxScore returns the highest score still reachable given the discards.
func (v View) MaxScore() int { return v.board().maxScore() }

// IsPlayable reports whether card would land on its pile.
func (v View) IsPlayable(card hanabi.Card) bool { return v.board().playable(card) }

// IsUseless reports whether card is already played or dead.
func (v View) IsUseless(card hanabi.Card) bool { return v.board().useless(card) }

// IsCritical reports whether card is needed and has one copy left.
func (v View) IsCritical(card hanabi.Card) bool { return v.board().critical(card) }

// PlayableCards returns the next card of every incomplete pile.
func (v View) PlayableCards() []hanabi.Card { return v.board().playableCards() }

// NextPlayer returns the seat after player.
func (v View) NextPlayer(player int) int { return (player + 1) % v.Players }
