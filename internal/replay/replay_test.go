package replay

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/randutil"
)

var recordedAt = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func playedGame(t *testing.T, seed int64, opts ...game.GameOption) *game.GameState {
	t.Helper()
	g, err := game.NewGame(3, seed, append([]game.GameOption{game.WithID("test-game")}, opts...)...)
	require.NoError(t, err)
	logger := log.New(io.Discard)
	agents, err := bot.Seats("rand", g, randutil.New(seed), logger)
	require.NoError(t, err)
	e, err := game.NewEngine(g, agents, logger)
	require.NoError(t, err)
	_, err = e.Run(context.Background())
	require.NoError(t, err)
	return g
}

func TestFromGame(t *testing.T) {
	t.Parallel()
	g := playedGame(t, 11)
	rec := FromGame(g, recordedAt)

	assert.Equal(t, Variant, rec.Variant)
	assert.Equal(t, "test-game", rec.Game)
	assert.Equal(t, 3, rec.Players)
	assert.Equal(t, int64(11), rec.Seed)
	assert.Empty(t, rec.Deck)
	assert.Len(t, rec.Moves, g.Counters().Turn)
	assert.Equal(t, g.Result().Reason.String(), rec.Result.Reason)
	assert.Equal(t, g.Result().Score, rec.Result.Score)
	assert.True(t, rec.Rules.DiscardAtMaxHints)
	assert.True(t, rec.Rules.BonusHintOnComplete)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	rec := FromGame(playedGame(t, 12), recordedAt)

	data, err := EncodeToBytes(rec)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `variant = "hanabi"`)
	assert.Contains(t, text, "[[move]]")
	assert.Contains(t, text, "[rules]")

	back, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, rec.Time.Equal(back.Time))
	back.Time = rec.Time
	assert.Equal(t, rec, back)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	rec := FromGame(playedGame(t, 13), recordedAt)
	require.NoError(t, Verify(rec))

	tampered := *rec
	tampered.Result.Score = rec.Result.Score + 1
	assert.ErrorIs(t, Verify(&tampered), ErrMismatch)

	short := *rec
	short.Moves = rec.Moves[:len(rec.Moves)-1]
	short.Result = rec.Result
	assert.ErrorIs(t, Verify(&short), ErrMismatch)
}

func TestPlayRejectsBadMoves(t *testing.T) {
	t.Parallel()
	rec := FromGame(playedGame(t, 14), recordedAt)

	wrongSeat := *rec
	wrongSeat.Moves = append([]Move{{Player: 1, Action: rec.Moves[0].Action}}, rec.Moves[1:]...)
	_, err := Play(&wrongSeat, nil, nil)
	assert.ErrorIs(t, err, game.ErrNotPlayersTurn)

	garbled := *rec
	garbled.Moves = []Move{{Player: 0, Action: "juggle 3"}}
	_, err = Play(&garbled, nil, nil)
	assert.Error(t, err)
}

func TestShortDeckIsAnError(t *testing.T) {
	t.Parallel()
	in := `variant = "hanabi"
players = 2
seed = 0
deck = ["R1", "R2"]

[result]
reason = "turns"
score = 0
turns = 0
`
	rec, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = rec.NewGame()
		assert.ErrorIs(t, err, ErrShortDeck)

		_, err = Play(rec, nil, nil)
		assert.ErrorIs(t, err, ErrShortDeck)

		assert.ErrorIs(t, Verify(rec), ErrShortDeck)
	})

	bad := *rec
	bad.Deck = []string{"R1", "Z9"}
	_, err = bad.NewGame()
	assert.Error(t, err)
}

func TestPlayObserves(t *testing.T) {
	t.Parallel()
	rec := FromGame(playedGame(t, 15), recordedAt)
	var seen []game.Outcome
	g, err := Play(rec, nil, func(out game.Outcome) { seen = append(seen, out) })
	require.NoError(t, err)
	assert.Len(t, seen, len(rec.Moves))
	assert.Equal(t, g.History(), seen)
}

func TestFixedDeckRoundTrip(t *testing.T) {
	t.Parallel()
	order := append(hanabi.MustParseCards(
		"R1", "G1", "B1", "R2", "G2", "B2", "R3", "G3", "B3",
		"Y1", "Y2", "Y3", "P1", "P2", "P3",
	), hanabi.MustParseCards("Y4", "Y5")...)
	g := playedGame(t, 0, game.WithDeck(order))
	rec := FromGame(g, recordedAt)
	require.Len(t, rec.Deck, len(order))
	assert.Equal(t, "R1", rec.Deck[0])

	data, err := EncodeToBytes(rec)
	require.NoError(t, err)
	back, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.NoError(t, Verify(back))
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
	}{
		{"bad toml", "players = ["},
		{"wrong variant", "variant = \"holdem\"\nplayers = 2\n"},
		{"unknown key", "variant = \"hanabi\"\nplayers = 2\nchips = 100\n"},
	}
	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.in))
		assert.Error(t, err, tt.name)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	rec := FromGame(playedGame(t, 16), recordedAt)
	path := filepath.Join(t.TempDir(), "replays", rec.Game+".toml")

	require.NoError(t, Save(path, rec))
	back, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Verify(back))
	assert.Equal(t, rec.Moves, back.Moves)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
