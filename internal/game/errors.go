package game

import (
	"errors"
	"fmt"

	"github.com/lox/hanabiforbots/hanabi"
)

// Setup errors.
var (
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 5")
	ErrAlreadyStarted     = errors.New("game already started")
)

// Rule violations. Apply wraps these in a *MoveError.
var (
	ErrNotStarted         = errors.New("game not started")
	ErrGameFinished       = errors.New("game already finished")
	ErrNotPlayersTurn     = errors.New("not player's turn")
	ErrInvalidHandIndex   = errors.New("invalid hand index")
	ErrNoHintsAvailable   = errors.New("no hint tokens available")
	ErrSelfClue           = errors.New("cannot clue yourself")
	ErrInvalidClueTarget  = errors.New("clue target is not a player")
	ErrInvalidClue        = errors.New("clue must name a colour or a rank")
	ErrClueMatchesNothing = errors.New("clue touches no cards")
	ErrHintsFull          = errors.New("cannot discard with all hint tokens available")
	ErrUnknownMove        = errors.New("unknown move kind")
)

// MoveError describes a rejected move.
type MoveError struct {
	Player int
	Move   hanabi.Move
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("player %d: %s rejected: %v", e.Player, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
