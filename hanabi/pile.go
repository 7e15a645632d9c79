package hanabi

import (
	"errors"
	"fmt"
)

// ErrPileOrder is returned when a card is pushed onto a pile that does not
// accept it.
var ErrPileOrder = errors.New("card does not continue pile")

// Pile is one colour's firework: played cards in ascending rank starting at
// One. Its height always equals its top rank.
type Pile struct {
	colour Colour
	cards  []Card
}

// NewPile creates an empty pile for colour.
func NewPile(colour Colour) *Pile {
	return &Pile{colour: colour, cards: make([]Card, 0, NumRanks)}
}

// Colour returns the pile's colour.
func (p *Pile) Colour() Colour { return p.colour }

// Height returns the number of cards played on the pile.
func (p *Pile) Height() int { return len(p.cards) }

// Next returns the only card the pile accepts. ok is false for a complete pile.
func (p *Pile) Next() (card Card, ok bool) {
	if p.Complete() {
		return Card{}, false
	}
	return NewCard(p.colour, Rank(len(p.cards)+1)), true
}

// Accepts reports whether card is the next sequential card for this pile.
func (p *Pile) Accepts(card Card) bool {
	return card.Colour == p.colour && int(card.Rank) == len(p.cards)+1
}

// Push plays card onto the pile.
func (p *Pile) Push(card Card) error {
	if !p.Accepts(card) {
		return fmt.Errorf("%w: %v on %s pile of height %d", ErrPileOrder, card, p.colour, len(p.cards))
	}
	p.cards = append(p.cards, card)
	return nil
}

// Top returns the highest card on the pile.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Complete reports whether the pile holds ranks One through Five.
func (p *Pile) Complete() bool { return len(p.cards) == NumRanks }

// Cards returns a copy of the played cards, lowest first.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

func (p *Pile) String() string {
	if top, ok := p.Top(); ok {
		return top.String()
	}
	return p.colour.Letter() + "0"
}
