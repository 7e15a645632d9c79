package game

import (
	"testing"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/stretchr/testify/require"
)

// dealOrder builds a fixed two-player deck: p0 and p1 receive the given hands
// and rest is drawn afterwards in order.
func dealOrder(p0, p1 []string, rest ...string) []hanabi.Card {
	var order []string
	for i := range p0 {
		order = append(order, p0[i], p1[i])
	}
	order = append(order, rest...)
	return hanabi.MustParseCards(order...)
}

func startedGame(t *testing.T, players int, seed int64, opts ...GameOption) *GameState {
	t.Helper()
	g, err := NewGame(players, seed, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g
}

func mustApply(t *testing.T, g *GameState, move hanabi.Move) Outcome {
	t.Helper()
	out, err := g.Apply(g.CurrentPlayer(), move)
	require.NoError(t, err, "turn %d: %s", g.Counters().Turn, move)
	return out
}

func filler(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "P1"
	}
	return out
}

// cardsInHands sums the hand sizes of every player.
func cardsInHands(g *GameState) int {
	n := 0
	for p := range g.Players() {
		n += len(g.Hand(p))
	}
	return n
}
