package hanabi

import (
	"errors"
	"fmt"

	"github.com/lox/hanabiforbots/internal/randutil"
)

var (
	// ErrConfig reports a deck built with an impossible colour or rank count.
	ErrConfig = errors.New("invalid deck configuration")
	// ErrDeckShuffled is returned when Shuffle is called a second time.
	ErrDeckShuffled = errors.New("deck already shuffled")
	// ErrDeckDrawn is returned when Shuffle is called after a card was drawn.
	ErrDeckDrawn = errors.New("deck already drawn from")
)

// Deck is an ordered draw pile. It is built once, shuffled once and then only
// shrinks.
type Deck struct {
	cards    []Card
	next     int
	shuffled bool
}

// NewDeck builds the canonical composition for the given number of colours
// and ranks, in colour then rank order. When ledger is non-nil every created
// card is recorded in it.
func NewDeck(colours, ranks int, ledger *Ledger) (*Deck, error) {
	if colours <= 0 || colours > NumColours {
		return nil, fmt.Errorf("%w: colours must be 1-%d, got %d", ErrConfig, NumColours, colours)
	}
	if ranks <= 0 || ranks > NumRanks {
		return nil, fmt.Errorf("%w: ranks must be 1-%d, got %d", ErrConfig, NumRanks, ranks)
	}

	composition := Canonical(colours, ranks)
	d := &Deck{cards: composition.Cards()}
	if ledger != nil {
		for _, c := range d.cards {
			ledger.Record(c)
		}
	}
	return d, nil
}

// NewDeckFromCards creates an already-ordered deck; cards[0] is drawn first.
// The deck counts as shuffled.
func NewDeckFromCards(cards []Card, ledger *Ledger) *Deck {
	d := &Deck{cards: make([]Card, len(cards)), shuffled: true}
	copy(d.cards, cards)
	if ledger != nil {
		for _, c := range d.cards {
			ledger.Record(c)
		}
	}
	return d
}

// Shuffle permutes the deck with Fisher-Yates driven by seed. It must be
// called exactly once, before the first draw.
func (d *Deck) Shuffle(seed int64) error {
	if d.shuffled {
		return ErrDeckShuffled
	}
	if d.next > 0 {
		return ErrDeckDrawn
	}
	rng := randutil.New(seed)
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.shuffled = true
	return nil
}

// Draw removes and returns the next card. ok is false once the deck is empty,
// which is an ordinary condition late in a game.
func (d *Deck) Draw() (card Card, ok bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card = d.cards[d.next]
	d.next++
	return card, true
}

// Peek returns the next card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[d.next], true
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int { return len(d.cards) - d.next }

// IsEmpty reports whether no cards are left.
func (d *Deck) IsEmpty() bool { return d.Remaining() == 0 }

// Cards returns the undrawn cards in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.next:])
	return out
}
