package hanabi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange is returned when a hand index does not name a card.
var ErrIndexOutOfRange = errors.New("hand index out of range")

// Hand is a player's ordered cards. New cards are appended at the end.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// DrawFrom moves the next deck card into the hand. An empty deck is not an
// error; the hand simply stays short and DrawFrom reports false.
func (h *Hand) DrawFrom(d *Deck) bool {
	card, ok := d.Draw()
	if !ok {
		return false
	}
	h.cards = append(h.cards, card)
	return true
}

// RemoveAt removes and returns the card at index i, closing the gap.
func (h *Hand) RemoveAt(i int) (Card, error) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, fmt.Errorf("%w: index %d, hand has %d cards", ErrIndexOutOfRange, i, len(h.cards))
	}
	card := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return card, nil
}

// At returns the card at index i.
func (h *Hand) At(i int) (Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, false
	}
	return h.cards[i], true
}

// Len returns the number of cards held.
func (h *Hand) Len() int { return len(h.cards) }

// Cards returns a copy of the cards in hand order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Contains reports whether the hand holds a copy of card.
func (h *Hand) Contains(card Card) bool {
	return h.Index(card) >= 0
}

// Index returns the position of the first copy of card, or -1.
func (h *Hand) Index(card Card) int {
	for i, c := range h.cards {
		if c == card {
			return i
		}
	}
	return -1
}

// Matching returns the indices of cards touched by clue.
func (h *Hand) Matching(clue Clue) []int {
	var idx []int
	for i, c := range h.cards {
		if clue.Matches(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
