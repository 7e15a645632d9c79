package hanabi

import "fmt"

// ClueKind says whether a clue names a colour or a rank.
type ClueKind uint8

const (
	ColourClue ClueKind = iota + 1
	RankClue
)

func (k ClueKind) String() string {
	switch k {
	case ColourClue:
		return "colour"
	case RankClue:
		return "rank"
	default:
		return "unknown"
	}
}

// Clue tells Target which of their cards share one colour or one rank.
type Clue struct {
	Target int
	Kind   ClueKind
	Colour Colour // set for ColourClue
	Rank   Rank   // set for RankClue
}

// Valid reports whether the clue names a real colour or rank.
func (c Clue) Valid() bool {
	switch c.Kind {
	case ColourClue:
		return c.Colour.Valid()
	case RankClue:
		return c.Rank.Valid()
	default:
		return false
	}
}

// Matches reports whether card is touched by the clue.
func (c Clue) Matches(card Card) bool {
	switch c.Kind {
	case ColourClue:
		return card.Colour == c.Colour
	case RankClue:
		return card.Rank == c.Rank
	default:
		return false
	}
}

// Value renders the clued colour or rank.
func (c Clue) Value() string {
	if c.Kind == ColourClue {
		return c.Colour.String()
	}
	return c.Rank.String()
}

func (c Clue) String() string {
	return fmt.Sprintf("%d %s", c.Target, c.Value())
}
