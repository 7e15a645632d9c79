package hanabi

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveKind enumerates the three legal actions.
type MoveKind uint8

const (
	ClueMove MoveKind = iota + 1
	PlayMove
	DiscardMove
)

func (k MoveKind) String() string {
	switch k {
	case ClueMove:
		return "clue"
	case PlayMove:
		return "play"
	case DiscardMove:
		return "discard"
	default:
		return "unknown"
	}
}

// Move is a tagged union over clue, play and discard. Player is filled in by
// the engine when the move is applied; Index is used by play and discard, Clue
// only by clue moves.
type Move struct {
	Kind   MoveKind
	Player int
	Index  int
	Clue   Clue
}

// Play returns a move playing the card at index.
func Play(index int) Move { return Move{Kind: PlayMove, Index: index} }

// Discard returns a move discarding the card at index.
func Discard(index int) Move { return Move{Kind: DiscardMove, Index: index} }

// ClueColour returns a move telling target about their cards of colour c.
func ClueColour(target int, c Colour) Move {
	return Move{Kind: ClueMove, Clue: Clue{Target: target, Kind: ColourClue, Colour: c}}
}

// ClueRank returns a move telling target about their cards of rank r.
func ClueRank(target int, r Rank) Move {
	return Move{Kind: ClueMove, Clue: Clue{Target: target, Kind: RankClue, Rank: r}}
}

// String renders the move in the notation accepted by ParseMove.
func (m Move) String() string {
	switch m.Kind {
	case PlayMove, DiscardMove:
		return fmt.Sprintf("%s %d", m.Kind, m.Index)
	case ClueMove:
		return fmt.Sprintf("clue %s", m.Clue)
	default:
		return "unknown"
	}
}

// ParseMove parses "play <i>", "discard <i>", "clue <player> <colour>" and
// "clue <player> <rank>".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Move{}, fmt.Errorf("empty move")
	}

	switch fields[0] {
	case "play", "p", "discard", "d":
		if len(fields) != 2 {
			return Move{}, fmt.Errorf("%s needs a hand index", fields[0])
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return Move{}, fmt.Errorf("invalid hand index %q: %w", fields[1], err)
		}
		if fields[0][0] == 'p' {
			return Play(idx), nil
		}
		return Discard(idx), nil

	case "clue", "c", "hint", "h":
		if len(fields) != 3 {
			return Move{}, fmt.Errorf("clue needs a target and a value")
		}
		target, err := strconv.Atoi(fields[1])
		if err != nil {
			return Move{}, fmt.Errorf("invalid clue target %q: %w", fields[1], err)
		}
		if rank, err := ParseRank(fields[2]); err == nil {
			return ClueRank(target, rank), nil
		}
		colour, err := ParseColour(fields[2])
		if err != nil {
			return Move{}, fmt.Errorf("invalid clue value %q", fields[2])
		}
		return ClueColour(target, colour), nil
	}

	return Move{}, fmt.Errorf("unknown move %q", fields[0])
}
