package game

import (
	"errors"
	"testing"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardAtMaxHintsKeepsEight(t *testing.T) {
	t.Parallel()
	g := startedGame(t, 2, 42)
	card := g.Hand(0)[0]
	before := g.Ledger().Count(card)

	out := mustApply(t, g, hanabi.Discard(0))

	assert.Equal(t, card, out.Card)
	assert.False(t, out.HintGained)
	assert.True(t, out.Drew)
	assert.Equal(t, 8, out.Counters.Hints)
	assert.Equal(t, 8, g.Counters().Hints)
	assert.Len(t, g.Hand(0), 5)
	assert.Equal(t, 39, g.DeckRemaining())
	assert.Equal(t, before-1, g.Ledger().Count(card))
	assert.Equal(t, 1, g.Discards().Count(card))
}

func TestDiscardRestoresHint(t *testing.T) {
	t.Parallel()
	g := startedGame(t, 2, 42)

	mustApply(t, g, hanabi.ClueRank(1, hanabi.One))
	require.Equal(t, 7, g.Counters().Hints)

	out := mustApply(t, g, hanabi.Discard(2))
	assert.True(t, out.HintGained)
	assert.Equal(t, 8, g.Counters().Hints)
}

func TestDiscardAtMaxHintsRejectedByVariant(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.DiscardAtMaxHints = false
	g := startedGame(t, 2, 42, WithRules(rules))

	_, err := g.Apply(0, hanabi.Discard(0))
	assert.ErrorIs(t, err, ErrHintsFull)

	mustApply(t, g, hanabi.ClueColour(1, hanabi.Red))
	mustApply(t, g, hanabi.Discard(0))
	assert.Equal(t, 8, g.Counters().Hints)
}

func TestClueConsumesHintAndReportsMatches(t *testing.T) {
	t.Parallel()
	cards := dealOrder(
		[]string{"R1", "G1", "B1", "Y1", "P1"},
		[]string{"R2", "R3", "G2", "B4", "R5"},
		filler(5)...,
	)
	g := startedGame(t, 2, 0, WithDeck(cards))

	out := mustApply(t, g, hanabi.ClueColour(1, hanabi.Red))
	assert.Equal(t, []int{0, 1, 4}, out.ClueMatches)
	assert.Equal(t, 7, out.Counters.Hints)
	assert.Equal(t, hanabi.Card{}, out.Card)
	assert.Equal(t, 0, out.Move.Player)
	assert.Len(t, g.Hand(1), 5, "clues do not move cards")
	assert.Equal(t, 1, g.CurrentPlayer())
}

func TestSuccessfulPlay(t *testing.T) {
	t.Parallel()
	cards := dealOrder(
		[]string{"R1", "G1", "B1", "Y1", "P1"},
		[]string{"R2", "R3", "G2", "B4", "R5"},
		"Y2", "Y3",
	)
	g := startedGame(t, 2, 0, WithDeck(cards))
	r1 := hanabi.NewCard(hanabi.Red, hanabi.One)

	out := mustApply(t, g, hanabi.Play(0))
	assert.True(t, out.Played)
	assert.False(t, out.Strike)
	assert.Equal(t, r1, out.Card)
	assert.Equal(t, 1, out.PileHeights[hanabi.Red-1])
	assert.Equal(t, 0, g.Ledger().Count(r1))
	assert.Equal(t, 0, g.Discards().Total())
	assert.Equal(t, hanabi.MustParseCards("G1", "B1", "Y1", "P1", "Y2"), g.Hand(0))
}

func TestIllegalPlayIsStrike(t *testing.T) {
	t.Parallel()
	cards := dealOrder(
		[]string{"R3", "G1", "B1", "Y1", "P1"},
		[]string{"R2", "R3", "G2", "B4", "R5"},
		"Y2", "Y3",
	)
	g := startedGame(t, 2, 0, WithDeck(cards))
	r3 := hanabi.NewCard(hanabi.Red, hanabi.Three)
	ledgerBefore := g.Ledger().Count(r3)

	out := mustApply(t, g, hanabi.Play(0))

	assert.False(t, out.Played)
	assert.True(t, out.Strike)
	assert.Equal(t, 1, g.Counters().Strikes)
	assert.Equal(t, ledgerBefore-1, g.Ledger().Count(r3))
	assert.Equal(t, 1, g.Discards().Count(r3))
	assert.Equal(t, 0, g.Pile(hanabi.Red).Height())
	assert.Equal(t, 8, g.Counters().Hints, "misplay earns no hint")
	assert.NotContains(t, g.Hand(0)[:4], r3)
}

func TestThreeStrikesEndsGame(t *testing.T) {
	t.Parallel()
	cards := dealOrder(
		[]string{"R1", "R4", "G3", "G4", "B3"},
		[]string{"B4", "Y3", "Y4", "P3", "P4"},
		filler(10)...,
	)
	g := startedGame(t, 2, 0, WithDeck(cards))

	mustApply(t, g, hanabi.Play(0)) // R1 lands
	mustApply(t, g, hanabi.Play(0)) // B4 strike
	mustApply(t, g, hanabi.Play(0)) // R4 strike
	out := mustApply(t, g, hanabi.Play(0))

	assert.True(t, out.Finished)
	assert.Equal(t, 3, out.Counters.Strikes)
	assert.Equal(t, Result{Reason: LossByStrikes, Score: 0}, out.Result)
	assert.Equal(t, PhaseFinished, g.Phase())
	assert.Equal(t, 1, g.Score(), "piles keep their cards")

	for _, m := range []hanabi.Move{hanabi.Play(0), hanabi.Discard(0), hanabi.ClueRank(0, hanabi.One)} {
		_, err := g.Apply(g.CurrentPlayer(), m)
		assert.ErrorIs(t, err, ErrGameFinished)
	}
	assert.Len(t, g.History(), 4)
}

func TestStrikeoutScoreVariant(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.ZeroOnStrikeout = false
	cards := dealOrder(
		[]string{"R1", "R4", "G3", "G4", "B3"},
		[]string{"B4", "Y3", "Y4", "P3", "P4"},
		filler(10)...,
	)
	g := startedGame(t, 2, 0, WithDeck(cards), WithRules(rules))
	for range 4 {
		mustApply(t, g, hanabi.Play(0))
	}
	assert.Equal(t, Result{Reason: LossByStrikes, Score: 1}, g.Result())
}

func TestFinalRoundsAfterDeckEmpties(t *testing.T) {
	t.Parallel()
	for players := MinPlayers; players <= MaxPlayers; players++ {
		hand := HandSize(players)
		cards := hanabi.MustParseCards(filler(players*hand + 1)...)
		g := startedGame(t, players, 0, WithDeck(cards))

		out := mustApply(t, g, hanabi.Discard(0))
		require.Equal(t, 0, g.DeckRemaining())
		require.True(t, out.Counters.CountdownActive)
		require.Equal(t, players, out.Counters.Countdown)

		for i := range players {
			require.False(t, g.IsFinished(), "players=%d finished early after %d final moves", players, i)
			out = mustApply(t, g, hanabi.Discard(0))
			assert.False(t, out.Drew)
		}
		assert.True(t, out.Finished)
		assert.Equal(t, LossByTurns, g.Result().Reason)
		assert.Equal(t, 0, g.Result().Score)

		_, err := g.Apply(g.CurrentPlayer(), hanabi.Discard(0))
		assert.ErrorIs(t, err, ErrGameFinished)
	}
}

func TestFinalRoundsWhenDealEmptiesDeck(t *testing.T) {
	t.Parallel()
	for players := MinPlayers; players <= MaxPlayers; players++ {
		cards := hanabi.MustParseCards(filler(players * HandSize(players))...)
		g := startedGame(t, players, 0, WithDeck(cards))

		c := g.Counters()
		require.True(t, c.CountdownActive, "players=%d", players)
		require.Equal(t, players, c.Countdown)

		var out Outcome
		for i := range players {
			require.False(t, g.IsFinished(), "players=%d finished early after %d moves", players, i)
			out = mustApply(t, g, hanabi.Discard(0))
		}
		assert.True(t, out.Finished)
		assert.Equal(t, players, g.Counters().Turn)
		assert.Equal(t, LossByTurns, g.Result().Reason)
	}
}

func TestFinalScoreIsSumOfPiles(t *testing.T) {
	t.Parallel()
	cards := dealOrder(
		[]string{"R1", "P1", "P1", "P1", "P1"},
		[]string{"G1", "P1", "P1", "P1", "P1"},
		"B1",
	)
	g := startedGame(t, 2, 0, WithDeck(cards))

	mustApply(t, g, hanabi.Play(0)) // R1, draws B1, deck empty
	mustApply(t, g, hanabi.Play(0)) // G1
	out := mustApply(t, g, hanabi.Play(4))

	assert.True(t, out.Finished)
	assert.Equal(t, Result{Reason: LossByTurns, Score: 3}, out.Result)
}

// fullRun is R1..R5, G1..G5, ... P5.
func fullRun() []string {
	var out []string
	for _, c := range hanabi.Colours(hanabi.NumColours) {
		for r := hanabi.One; r <= hanabi.Five; r++ {
			out = append(out, hanabi.NewCard(c, r).String())
		}
	}
	return out
}

func TestWinBeforeDeckEmpties(t *testing.T) {
	t.Parallel()
	// Dealt round-robin and drawn in turn, two players alternately playing
	// their oldest card play the run in order.
	cards := hanabi.MustParseCards(append(fullRun(), filler(11)...)...)
	g := startedGame(t, 2, 0, WithDeck(cards))

	var out Outcome
	for i := range hanabi.MaxScore {
		require.False(t, g.IsFinished(), "finished after %d plays", i)
		out = mustApply(t, g, hanabi.Play(0))
		require.True(t, out.Played, "play %d: %v", i, out.Card)
	}

	assert.True(t, out.Finished)
	assert.Equal(t, Result{Reason: Win, Score: 25}, out.Result)
	assert.Positive(t, g.DeckRemaining())
	assert.False(t, out.Counters.CountdownActive)
}

func TestBonusHintOnCompletedPile(t *testing.T) {
	t.Parallel()
	newGame := func(rules Rules) *GameState {
		cards := dealOrder(
			[]string{"R1", "R2", "R3", "R4", "R5"},
			[]string{"P1", "P1", "P1", "P2", "P2"},
			filler(10)...,
		)
		return startedGame(t, 2, 0, WithDeck(cards), WithRules(rules))
	}

	t.Run("token returned", func(t *testing.T) {
		g := newGame(DefaultRules())
		var out Outcome
		for i := range 5 {
			out = mustApply(t, g, hanabi.Play(0))
			if i < 4 {
				mustApply(t, g, hanabi.ClueRank(0, hanabi.Two))
			}
		}
		assert.True(t, out.Played)
		assert.True(t, out.BonusHint)
		assert.True(t, g.Pile(hanabi.Red).Complete())
		assert.Equal(t, 5, g.Counters().Hints)
	})

	t.Run("capped at eight", func(t *testing.T) {
		g := newGame(DefaultRules())
		var out Outcome
		for i := range 5 {
			out = mustApply(t, g, hanabi.Play(0))
			if i < 4 {
				mustApply(t, g, hanabi.Discard(0))
			}
		}
		assert.True(t, g.Pile(hanabi.Red).Complete())
		assert.False(t, out.BonusHint)
		assert.Equal(t, 8, g.Counters().Hints)
	})

	t.Run("variant disabled", func(t *testing.T) {
		rules := DefaultRules()
		rules.BonusHintOnComplete = false
		g := newGame(rules)
		var out Outcome
		for i := range 5 {
			out = mustApply(t, g, hanabi.Play(0))
			if i < 4 {
				mustApply(t, g, hanabi.ClueRank(0, hanabi.Two))
			}
		}
		assert.False(t, out.BonusHint)
		assert.Equal(t, 4, g.Counters().Hints)
	})
}

func TestRuleViolationsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()
	g := startedGame(t, 3, 11)

	tests := []struct {
		name   string
		player int
		move   hanabi.Move
		want   error
	}{
		{"wrong player", 1, hanabi.Play(0), ErrNotPlayersTurn},
		{"player out of range", 9, hanabi.Play(0), ErrNotPlayersTurn},
		{"index too large", 0, hanabi.Play(5), ErrInvalidHandIndex},
		{"negative index", 0, hanabi.Discard(-1), ErrInvalidHandIndex},
		{"self clue", 0, hanabi.ClueColour(0, hanabi.Red), ErrSelfClue},
		{"unknown target", 0, hanabi.ClueColour(3, hanabi.Red), ErrInvalidClueTarget},
		{"clue without value", 0, hanabi.Move{Kind: hanabi.ClueMove, Clue: hanabi.Clue{Target: 1}}, ErrInvalidClue},
		{"unknown kind", 0, hanabi.Move{}, ErrUnknownMove},
	}

	for _, tt := range tests {
		before := g.View(Spectator)
		_, err := g.Apply(tt.player, tt.move)
		require.Error(t, err, tt.name)
		assert.ErrorIs(t, err, tt.want, tt.name)

		var moveErr *MoveError
		require.True(t, errors.As(err, &moveErr), tt.name)
		assert.Equal(t, tt.player, moveErr.Player)
		assert.Equal(t, before, g.View(Spectator), "%s changed state", tt.name)
	}
}

func TestNoHintsAvailable(t *testing.T) {
	t.Parallel()
	g := startedGame(t, 2, 3)
	for range MaxHints {
		target := 1 - g.CurrentPlayer()
		mustApply(t, g, hanabi.ClueRank(target, hanabi.One))
	}
	require.Equal(t, 0, g.Counters().Hints)

	_, err := g.Apply(g.CurrentPlayer(), hanabi.ClueRank(1-g.CurrentPlayer(), hanabi.Two))
	assert.ErrorIs(t, err, ErrNoHintsAvailable)
	assert.Equal(t, 0, g.Counters().Hints)
}

func TestApplyBeforeStart(t *testing.T) {
	t.Parallel()
	g, err := NewGame(2, 1)
	require.NoError(t, err)
	_, err = g.Apply(0, hanabi.Discard(0))
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestRequireClueMatch(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.RequireClueMatch = true
	cards := dealOrder(
		[]string{"R1", "G1", "B1", "Y1", "P1"},
		[]string{"R2", "R3", "G2", "B4", "R5"},
		filler(5)...,
	)
	g := startedGame(t, 2, 0, WithDeck(cards), WithRules(rules))

	_, err := g.Apply(0, hanabi.ClueColour(1, hanabi.Purple))
	assert.ErrorIs(t, err, ErrClueMatchesNothing)
	for _, m := range g.LegalMoves() {
		assert.False(t, m.Kind == hanabi.ClueMove && m.Clue.Kind == hanabi.ColourClue && m.Clue.Colour == hanabi.Purple)
	}
	mustApply(t, g, hanabi.ClueColour(1, hanabi.Green))
}
