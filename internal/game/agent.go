package game

import "github.com/lox/hanabiforbots/hanabi"

// Agent chooses moves for one seat. Agents receive an immutable view and the
// list of legal moves; the engine alone mutates state.
type Agent interface {
	ChooseMove(view View, legal []hanabi.Move) hanabi.Move
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(view View, legal []hanabi.Move) hanabi.Move

func (f AgentFunc) ChooseMove(view View, legal []hanabi.Move) hanabi.Move {
	return f(view, legal)
}
