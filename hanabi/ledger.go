package hanabi

import (
	"errors"
	"fmt"
)

// ErrLedgerUnderflow is the panic value raised when a card is removed from
// circulation more often than it was created.
var ErrLedgerUnderflow = errors.New("ledger underflow")

// Ledger counts the cards still in circulation: those in the deck or in some
// hand. A card leaves circulation when it is played or discarded.
//
// The ledger is the only place circulation counts change.
type Ledger struct {
	set CardSet
}

// NewLedger returns a ledger with every count at zero.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record notes the creation of a card during deck construction.
func (l *Ledger) Record(card Card) {
	l.set.Add(card)
}

// Decrement takes a card out of circulation. A missing card means the
// engine's bookkeeping is broken, so it panics rather than returning an error.
func (l *Ledger) Decrement(card Card) {
	if !l.set.Remove(card) {
		panic(fmt.Errorf("%w: %v has no copies left", ErrLedgerUnderflow, card))
	}
}

// Count returns how many copies of card are still in circulation.
func (l *Ledger) Count(card Card) int { return l.set.Count(card) }

// Total returns the number of cards still in circulation.
func (l *Ledger) Total() int { return l.set.Total() }

// Set returns a copy of the underlying counts.
func (l *Ledger) Set() CardSet { return l.set }
