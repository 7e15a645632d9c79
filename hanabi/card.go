package hanabi

import (
	"fmt"
	"strings"
)

// Colour identifies a firework colour. The zero value is NoColour and stands
// for a card whose colour is hidden from the viewer.
type Colour uint8

const (
	NoColour Colour = iota
	Red
	Green
	Blue
	Yellow
	Purple
)

// Rank is a card value from One to Five. The zero value is NoRank.
type Rank uint8

const (
	NoRank Rank = iota
	One
	Two
	Three
	Four
	Five
)

const (
	NumColours = 5
	NumRanks   = 5
	// MaxScore is the score of a game in which every pile is complete.
	MaxScore = NumColours * NumRanks
)

var colourNames = [...]string{"?", "red", "green", "blue", "yellow", "purple"}

// Colours returns the first n colours in canonical order.
func Colours(n int) []Colour {
	n = max(0, min(n, NumColours))
	out := make([]Colour, n)
	for i := range out {
		out[i] = Colour(i + 1)
	}
	return out
}

// Valid reports whether c is one of the five real colours.
func (c Colour) Valid() bool { return c >= Red && c <= Purple }

func (c Colour) String() string {
	if int(c) < len(colourNames) {
		return colourNames[c]
	}
	return "?"
}

// Letter returns the single-letter form used in compact card notation.
func (c Colour) Letter() string {
	if !c.Valid() {
		return "?"
	}
	return strings.ToUpper(colourNames[c][:1])
}

// ParseColour accepts a full colour name or its first letter, in any case.
func ParseColour(s string) (Colour, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Red; c <= Purple; c++ {
		if s == colourNames[c] || s == colourNames[c][:1] {
			return c, nil
		}
	}
	return NoColour, fmt.Errorf("unknown colour %q", s)
}

// Valid reports whether r is between One and Five.
func (r Rank) Valid() bool { return r >= One && r <= Five }

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('0' + r))
}

// ParseRank parses a rank digit.
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '1' || s[0] > '5' {
		return NoRank, fmt.Errorf("invalid rank %q", s)
	}
	return Rank(s[0] - '0'), nil
}

// Multiplicity returns how many copies of a rank each colour has in a full
// deck: three ones, two each of twos to fours, a single five.
func Multiplicity(r Rank) int {
	switch r {
	case One:
		return 3
	case Two, Three, Four:
		return 2
	case Five:
		return 1
	default:
		return 0
	}
}

// Card is an immutable colour/rank pair. Copies of the same card are
// indistinguishable.
type Card struct {
	Colour Colour
	Rank   Rank
}

// NewCard creates a card.
func NewCard(c Colour, r Rank) Card {
	return Card{Colour: c, Rank: r}
}

// Hidden reports whether the card is the zero value used for unknown cards.
func (c Card) Hidden() bool {
	return c == Card{}
}

// Valid reports whether both colour and rank are real values.
func (c Card) Valid() bool {
	return c.Colour.Valid() && c.Rank.Valid()
}

// String returns the compact form, e.g. "R3". Hidden cards render as "??".
func (c Card) String() string {
	return c.Colour.Letter() + c.Rank.String()
}

// ParseCard parses the compact form produced by String.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	colour, err := ParseColour(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	rank, err := ParseRank(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(colour, rank), nil
}

// MustParseCards parses a list of cards and panics on error. Intended for
// tests and fixed decks.
func MustParseCards(strs ...string) []Card {
	cards := make([]Card, len(strs))
	for i, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		cards[i] = c
	}
	return cards
}
