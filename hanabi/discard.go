package hanabi

// DiscardPile records cards that were discarded or misplayed. Once every copy
// of a card is in the pile, that card and all higher ranks of its colour can
// never be played; those cards are dead.
type DiscardPile struct {
	cards CardSet
	dead  [NumColours + 1]Rank // lowest dead rank per colour, NoRank if none
	order []Card
}

// Add puts a card on the pile.
func (d *DiscardPile) Add(card Card) {
	d.cards.Add(card)
	d.order = append(d.order, card)
	if d.cards.Count(card) == Multiplicity(card.Rank) {
		if low := d.dead[card.Colour]; low == NoRank || card.Rank < low {
			d.dead[card.Colour] = card.Rank
		}
	}
}

// Count returns how many copies of card were discarded.
func (d DiscardPile) Count(card Card) int { return d.cards.Count(card) }

// Total returns the number of discarded cards.
func (d DiscardPile) Total() int { return d.cards.Total() }

// Set returns a copy of the discarded counts.
func (d DiscardPile) Set() CardSet { return d.cards }

// Cards returns the discarded cards in the order they were discarded.
func (d DiscardPile) Cards() []Card {
	out := make([]Card, len(d.order))
	copy(out, d.order)
	return out
}

// IsDead reports whether card can no longer be played because all copies of it
// or of a lower rank in its colour have been discarded.
func (d DiscardPile) IsDead(card Card) bool {
	low := d.dead[card.Colour]
	return low != NoRank && card.Rank >= low
}

// MaxScore returns the best score reachable given the discards alone. Each
// colour contributes ranks up to, but excluding, its lowest dead rank.
func (d DiscardPile) MaxScore(colours int) int {
	score := 0
	for _, c := range Colours(colours) {
		if low := d.dead[c]; low == NoRank {
			score += NumRanks
		} else {
			score += int(low) - 1
		}
	}
	return score
}

// Clone returns an independent copy of the pile.
func (d DiscardPile) Clone() DiscardPile {
	c := d
	c.order = append([]Card(nil), d.order...)
	return c
}
