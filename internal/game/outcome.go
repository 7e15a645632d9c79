package game

import (
	"fmt"

	"github.com/lox/hanabiforbots/hanabi"
)

// Phase is the lifecycle stage of a game.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// FinishReason says why a game ended.
type FinishReason uint8

const (
	NotFinished FinishReason = iota
	Win
	LossByStrikes
	LossByTurns
)

func (r FinishReason) String() string {
	switch r {
	case NotFinished:
		return "not finished"
	case Win:
		return "win"
	case LossByStrikes:
		return "strikes"
	case LossByTurns:
		return "turns"
	default:
		return "unknown"
	}
}

// ParseFinishReason is the inverse of FinishReason.String.
func ParseFinishReason(s string) (FinishReason, error) {
	for r := NotFinished; r <= LossByTurns; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return NotFinished, fmt.Errorf("unknown finish reason %q", s)
}

// Result is the final verdict of a finished game.
type Result struct {
	Reason FinishReason
	Score  int
}

func (r Result) String() string {
	return fmt.Sprintf("%s (score %d)", r.Reason, r.Score)
}

// Counters are the shared numbers every player can see.
type Counters struct {
	Hints   int
	Strikes int
	Turn    int
	// Countdown is the number of moves left once the deck has run out. It is
	// only meaningful when CountdownActive is set.
	Countdown       int
	CountdownActive bool
}

// Outcome reports everything a move changed. It is also the entry type of the
// move history.
type Outcome struct {
	Turn   int // turn the move was made on, starting at 0
	Player int
	Move   hanabi.Move

	// Card is the card that left the player's hand on a play or discard.
	Card       hanabi.Card
	Played     bool // play landed on its pile
	Strike     bool
	HintGained bool // a discard or completed pile returned a token
	BonusHint  bool // the token came from completing a pile
	Drew       bool

	// ClueMatches holds the indices of the target's cards touched by a clue.
	ClueMatches []int

	Counters    Counters
	PileHeights [hanabi.NumColours]int

	Finished bool
	Result   Result
}
