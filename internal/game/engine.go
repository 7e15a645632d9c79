package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Observer is notified after every applied move, e.g. to render or record it.
type Observer func(out Outcome)

// Engine runs a game to completion, asking one agent per seat for moves.
type Engine struct {
	state     *GameState
	agents    []Agent
	logger    *log.Logger
	observers []Observer
}

// NewEngine wires agents to the seats of state.
func NewEngine(state *GameState, agents []Agent, logger *log.Logger) (*Engine, error) {
	if len(agents) != state.Players() {
		return nil, fmt.Errorf("need %d agents, got %d", state.Players(), len(agents))
	}
	for i, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("agent for seat %d is nil", i)
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		state:  state,
		agents: agents,
		logger: logger.WithPrefix("engine"),
	}, nil
}

// Observe registers fn to be called after every move.
func (e *Engine) Observe(fn Observer) {
	e.observers = append(e.observers, fn)
}

// State returns the game being driven.
func (e *Engine) State() *GameState { return e.state }

// Run starts the game if needed and plays until it finishes or ctx is done.
//
// A move the engine rejects is logged and replaced by the first legal move so
// a misbehaving agent cannot stall the game.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.state.Phase() == PhaseSetup {
		if err := e.state.Start(); err != nil {
			return Result{}, err
		}
	}

	for !e.state.IsFinished() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("game interrupted at turn %d: %w", e.state.Counters().Turn, err)
		}
		if _, err := e.Step(); err != nil {
			return Result{}, err
		}
	}
	return e.state.Result(), nil
}

// Step asks the current player's agent for one move and applies it.
func (e *Engine) Step() (Outcome, error) {
	player := e.state.CurrentPlayer()
	legal := e.state.LegalMoves()
	if len(legal) == 0 {
		return Outcome{}, fmt.Errorf("no legal moves for player %d", player)
	}

	move := e.agents[player].ChooseMove(e.state.View(player), legal)
	out, err := e.state.Apply(player, move)
	if err != nil {
		var moveErr *MoveError
		if !errors.As(err, &moveErr) {
			return Outcome{}, err
		}
		e.logger.Warn("agent move rejected, using fallback",
			"player", player,
			"move", move,
			"error", moveErr.Err,
			"fallback", legal[0])
		out, err = e.state.Apply(player, legal[0])
		if err != nil {
			return Outcome{}, fmt.Errorf("fallback move also failed: %w", err)
		}
	}

	for _, fn := range e.observers {
		fn(out)
	}
	return out, nil
}
