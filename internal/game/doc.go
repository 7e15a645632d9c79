// Package game implements the Hanabi rules engine.
//
// The main type is GameState, which owns the deck, hands, firework piles,
// discard pile, card ledger and counters of a single game and is the only
// thing allowed to change them.
//
// # Basic Usage
//
//	g, err := game.NewGame(3, 42)
//	if err != nil { ... }
//	if err := g.Start(); err != nil { ... }
//	out, err := g.Apply(g.CurrentPlayer(), hanabi.Discard(0))
//	if out.Finished {
//	    fmt.Println(out.Result.Score)
//	}
//
// Rule violations are returned as *MoveError values that unwrap to one of the
// Err* sentinels; state is untouched when Apply returns an error. Broken
// internal bookkeeping panics.
//
// # Deterministic Games
//
// The seed given to NewGame drives the only shuffle, so two games with the
// same player count, seed and moves end in the same state. WithDeck replaces
// the shuffled deck with a fixed order for tests.
//
// # Driving Agents
//
// Engine runs a game to completion by asking one Agent per seat for moves.
// Agents receive a View, which hides the acting player's own cards.
//
// GameState performs no locking; a caller sharing one across goroutines must
// serialise access itself.
package game
