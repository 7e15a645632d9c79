package hanabi

import (
	"fmt"
	"strings"
)

// CardSet is a multiset of cards indexed by colour and rank. The zero value is
// an empty set ready for use. Index 0 of each dimension is unused so that
// colours and ranks index directly.
type CardSet struct {
	counts [NumColours + 1][NumRanks + 1]int
	total  int
}

// Canonical returns the full deck composition for the given number of colours
// and ranks.
func Canonical(colours, ranks int) CardSet {
	var s CardSet
	for _, c := range Colours(colours) {
		for r := One; int(r) <= ranks && r <= Five; r++ {
			for range Multiplicity(r) {
				s.Add(NewCard(c, r))
			}
		}
	}
	return s
}

// Add adds one copy of card.
func (s *CardSet) Add(card Card) {
	if !card.Valid() {
		panic(fmt.Sprintf("cardset: invalid card %v", card))
	}
	s.counts[card.Colour][card.Rank]++
	s.total++
}

// Remove removes one copy of card and reports whether a copy was present.
func (s *CardSet) Remove(card Card) bool {
	if !card.Valid() || s.counts[card.Colour][card.Rank] == 0 {
		return false
	}
	s.counts[card.Colour][card.Rank]--
	s.total--
	return true
}

// Count returns the number of copies of card in the set.
func (s CardSet) Count(card Card) int {
	if !card.Valid() {
		return 0
	}
	return s.counts[card.Colour][card.Rank]
}

// Total returns the number of cards in the set.
func (s CardSet) Total() int { return s.total }

// Cards expands the set into a slice ordered by colour then rank.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.total)
	for c := Red; c <= Purple; c++ {
		for r := One; r <= Five; r++ {
			for range s.counts[c][r] {
				out = append(out, NewCard(c, r))
			}
		}
	}
	return out
}

func (s CardSet) String() string {
	var b strings.Builder
	for c := Red; c <= Purple; c++ {
		for r := One; r <= Five; r++ {
			if n := s.counts[c][r]; n > 0 {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%s×%d", NewCard(c, r), n)
			}
		}
	}
	return b.String()
}
