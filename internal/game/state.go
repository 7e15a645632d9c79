package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/hanabiforbots/hanabi"
)

// GameState is the authoritative state of one Hanabi game.
type GameState struct {
	id       string
	players  int
	handSize int
	seed     int64
	rules    Rules
	logger   *log.Logger
	fixed    []hanabi.Card

	phase     Phase
	deck      *hanabi.Deck
	ledger    *hanabi.Ledger
	hands     []*hanabi.Hand
	piles     [hanabi.NumColours]*hanabi.Pile
	discards  hanabi.DiscardPile
	hints     int
	strikes   int
	turn      int
	current   int
	countdown int
	lastRound bool
	history   []Outcome
	result    Result
}

// NewGame creates a game for players seats in the Setup phase. Start must be
// called before the first move.
func NewGame(players int, seed int64, opts ...GameOption) (*GameState, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, players)
	}

	cfg := &gameConfig{rules: DefaultRules()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	g := &GameState{
		id:       cfg.id,
		players:  players,
		handSize: HandSize(players),
		seed:     seed,
		rules:    cfg.rules,
		logger:   cfg.logger.WithPrefix("game"),
		fixed:    cfg.deck,
	}
	if g.id != "" {
		g.logger = g.logger.With("game", g.id)
	}
	g.clear()
	return g, nil
}

func (g *GameState) clear() {
	g.phase = PhaseSetup
	g.deck = nil
	g.ledger = hanabi.NewLedger()
	g.hands = make([]*hanabi.Hand, g.players)
	for i := range g.hands {
		g.hands[i] = hanabi.NewHand()
	}
	for i, c := range hanabi.Colours(hanabi.NumColours) {
		g.piles[i] = hanabi.NewPile(c)
	}
	g.discards = hanabi.DiscardPile{}
	g.hints = MaxHints
	g.strikes = 0
	g.turn = 0
	g.current = 0
	g.countdown = 0
	g.lastRound = false
	g.history = nil
	g.result = Result{}
}

// Start builds and shuffles the deck, deals every hand and moves the game to
// InProgress. It runs once per game; a malformed deck panics.
func (g *GameState) Start() error {
	if g.phase != PhaseSetup {
		return ErrAlreadyStarted
	}

	if g.fixed != nil {
		for _, c := range g.fixed {
			if !c.Valid() {
				panic(fmt.Sprintf("game: fixed deck contains invalid card %#v", c))
			}
		}
		g.deck = hanabi.NewDeckFromCards(g.fixed, g.ledger)
	} else {
		deck, err := hanabi.NewDeck(hanabi.NumColours, hanabi.NumRanks, g.ledger)
		if err != nil {
			panic(fmt.Sprintf("game: building deck: %v", err))
		}
		if deck.Remaining() != hanabi.Canonical(hanabi.NumColours, hanabi.NumRanks).Total() {
			panic(fmt.Sprintf("game: deck has %d cards", deck.Remaining()))
		}
		if err := deck.Shuffle(g.seed); err != nil {
			panic(fmt.Sprintf("game: shuffling deck: %v", err))
		}
		g.deck = deck
	}

	if need := g.players * g.handSize; g.deck.Remaining() < need {
		panic(fmt.Sprintf("game: deck of %d cards cannot deal %d hands of %d", g.deck.Remaining(), g.players, g.handSize))
	}
	for range g.handSize {
		for _, h := range g.hands {
			h.DrawFrom(g.deck)
		}
	}

	g.phase = PhaseInProgress
	if g.deck.IsEmpty() {
		g.lastRound = true
		g.countdown = g.players
	}
	g.logger.Debug("game started",
		"players", g.players,
		"handSize", g.handSize,
		"seed", g.seed,
		"deck", g.deck.Remaining())
	return nil
}

// Reset returns the game to Setup with a new seed, keeping players, rules and
// options. The next Start deals a fresh game.
func (g *GameState) Reset(seed int64) {
	g.seed = seed
	g.clear()
}

// FixedDeck returns the draw order given with WithDeck, or nil for a
// shuffled game.
func (g *GameState) FixedDeck() []hanabi.Card {
	if g.fixed == nil {
		return nil
	}
	out := make([]hanabi.Card, len(g.fixed))
	copy(out, g.fixed)
	return out
}

// ID returns the identifier given with WithID.
func (g *GameState) ID() string { return g.id }

// Players returns the number of seats.
func (g *GameState) Players() int { return g.players }

// HandSize returns the number of cards dealt to each player.
func (g *GameState) HandSize() int { return g.handSize }

// Seed returns the shuffle seed.
func (g *GameState) Seed() int64 { return g.seed }

// Rules returns the active rule variant.
func (g *GameState) Rules() Rules { return g.rules }

// Phase returns the lifecycle stage.
func (g *GameState) Phase() Phase { return g.phase }

// IsFinished reports whether the game has ended.
func (g *GameState) IsFinished() bool { return g.phase == PhaseFinished }

// Result returns the final result; Reason is NotFinished while play goes on.
func (g *GameState) Result() Result { return g.result }

// CurrentPlayer returns the seat whose turn it is.
func (g *GameState) CurrentPlayer() int { return g.current }

// Counters returns hints, strikes, turn and the final-round countdown.
func (g *GameState) Counters() Counters {
	return Counters{
		Hints:           g.hints,
		Strikes:         g.strikes,
		Turn:            g.turn,
		Countdown:       g.countdown,
		CountdownActive: g.lastRound,
	}
}

// DeckRemaining returns the number of undrawn cards.
func (g *GameState) DeckRemaining() int {
	if g.deck == nil {
		return 0
	}
	return g.deck.Remaining()
}

// PileHeights returns the height of each pile, indexed by colour-1.
func (g *GameState) PileHeights() [hanabi.NumColours]int {
	var h [hanabi.NumColours]int
	for i, p := range g.piles {
		h[i] = p.Height()
	}
	return h
}

// Pile returns the pile of colour c.
func (g *GameState) Pile(c hanabi.Colour) *hanabi.Pile {
	return g.piles[c-1]
}

// Hand returns a copy of a player's cards. This is the omniscient view; use
// View to respect hidden information.
func (g *GameState) Hand(player int) []hanabi.Card {
	if player < 0 || player >= g.players {
		return nil
	}
	return g.hands[player].Cards()
}

// Ledger returns the per-card count of cards still in circulation.
func (g *GameState) Ledger() hanabi.CardSet { return g.ledger.Set() }

// Discards returns a copy of the discard pile.
func (g *GameState) Discards() hanabi.DiscardPile { return g.discards.Clone() }

// History returns the applied moves in order.
func (g *GameState) History() []Outcome {
	out := make([]Outcome, len(g.history))
	copy(out, g.history)
	return out
}
