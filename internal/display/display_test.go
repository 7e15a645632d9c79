package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/game"
)

func plain() *Renderer {
	return New(&bytes.Buffer{}, true)
}

func startedGame(t *testing.T) *game.GameState {
	t.Helper()
	cards := hanabi.MustParseCards(
		"R1", "R2", "G1", "R3", "B1", "G2", "Y1", "B4", "P1", "R5",
		"Y3", "Y3",
	)
	g, err := game.NewGame(2, 0, game.WithDeck(cards))
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g
}

func TestCard(t *testing.T) {
	t.Parallel()
	d := plain()
	assert.Equal(t, "R3", d.Card(hanabi.NewCard(hanabi.Red, hanabi.Three)))
	assert.Equal(t, "??", d.Card(hanabi.Card{}))
}

func TestViewHidesViewerHand(t *testing.T) {
	t.Parallel()
	g := startedGame(t)
	out := plain().View(g.View(0))

	assert.Contains(t, out, "Turn 0")
	assert.Contains(t, out, "Hints 8/8")
	assert.Contains(t, out, "Deck 2")
	assert.Contains(t, out, "P0 (you)")
	assert.Contains(t, out, "?? ?? ?? ?? ??")
	assert.Contains(t, out, "R2 R3 G2 B4 R5")
	assert.NotContains(t, out, "R1 G1 B1 Y1 P1")
	assert.Contains(t, out, "R0 G0 B0 Y0 P0")
	assert.Contains(t, out, "Discards  none")
	assert.NotContains(t, out, "\x1b[", "plain output has no escape codes")
}

func TestViewSpectator(t *testing.T) {
	t.Parallel()
	g := startedGame(t)
	_, err := g.Apply(0, hanabi.Play(0))
	require.NoError(t, err)
	_, err = g.Apply(1, hanabi.Discard(1))
	require.NoError(t, err)

	out := plain().View(g.View(game.Spectator))
	assert.Contains(t, out, "G1 B1 Y1 P1 Y3")
	assert.Contains(t, out, "R1 G0 B0 Y0 P0")
	assert.Contains(t, out, "Discards  R3")
	assert.Contains(t, out, "Final turns")
	assert.NotContains(t, out, "(you)")
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	g := startedGame(t)
	d := plain()

	out, err := g.Apply(0, hanabi.ClueColour(1, hanabi.Red))
	require.NoError(t, err)
	assert.Equal(t, "P0 clues P1 red: cards [0 1 4]", d.Outcome(out))

	out, err = g.Apply(1, hanabi.Discard(3))
	require.NoError(t, err)
	assert.Equal(t, "P1 discards B4 +hint", d.Outcome(out))

	out, err = g.Apply(0, hanabi.Play(0))
	require.NoError(t, err)
	assert.Equal(t, "P0 plays R1 ok", d.Outcome(out))

	out, err = g.Apply(1, hanabi.Play(1))
	require.NoError(t, err)
	assert.Equal(t, "P1 misplays R3 strike 1", d.Outcome(out))
}

func TestObserverWritesLines(t *testing.T) {
	t.Parallel()
	g := startedGame(t)
	var buf bytes.Buffer
	observe := plain().Observer(&buf)

	for !g.IsFinished() {
		out, err := g.Apply(g.CurrentPlayer(), hanabi.Discard(0))
		require.NoError(t, err)
		observe(out)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, g.Counters().Turn+1, len(lines), "one line per move plus the result")
	assert.Contains(t, lines[len(lines)-1], "Game over: turns, score 0/25")
}
