// Package replay records finished games as TOML and plays them back.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/lox/hanabiforbots/hanabi"
	"github.com/lox/hanabiforbots/internal/fileutil"
	"github.com/lox/hanabiforbots/internal/game"
)

// ErrMismatch is returned by Verify when a replay ends differently from the
// recorded result.
var ErrMismatch = errors.New("replay: result mismatch")

// ErrShortDeck is returned for a recorded deck too small to deal every hand.
var ErrShortDeck = errors.New("replay: deck too short to deal")

// FromGame captures the setup and move history of g.
func FromGame(g *game.GameState, when time.Time) *Record {
	rec := &Record{
		Variant: Variant,
		Game:    g.ID(),
		Time:    when.UTC().Truncate(time.Second),
		Players: g.Players(),
		Seed:    g.Seed(),
		Rules:   rulesFrom(g.Rules()),
	}
	for _, c := range g.FixedDeck() {
		rec.Deck = append(rec.Deck, c.String())
	}
	for _, out := range g.History() {
		rec.Moves = append(rec.Moves, Move{Player: out.Player, Action: out.Move.String()})
	}
	res := g.Result()
	rec.Result = Result{Reason: res.Reason.String(), Score: res.Score, Turns: g.Counters().Turn}
	return rec
}

// Encode writes rec in TOML.
func Encode(w io.Writer, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("replay: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rec)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a record and rejects unknown keys.
func Decode(r io.Reader) (*Record, error) {
	var rec Record
	md, err := toml.NewDecoder(r).Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("replay: unknown keys %v", undecoded)
	}
	if rec.Variant != Variant {
		return nil, fmt.Errorf("replay: unsupported variant %q", rec.Variant)
	}
	return &rec, nil
}

// Save writes rec to path atomically.
func Save(path string, rec *Record) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, rec)
	})
}

// Load reads a record from path.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// NewGame builds an unstarted game with the recorded setup.
func (r *Record) NewGame(opts ...game.GameOption) (*game.GameState, error) {
	opts = append([]game.GameOption{game.WithRules(r.Rules.game()), game.WithID(r.Game)}, opts...)
	if len(r.Deck) > 0 {
		cards := make([]hanabi.Card, len(r.Deck))
		for i, s := range r.Deck {
			c, err := hanabi.ParseCard(s)
			if err != nil {
				return nil, fmt.Errorf("replay: deck card %d: %w", i, err)
			}
			cards[i] = c
		}
		if need := r.Players * game.HandSize(r.Players); len(cards) < need {
			return nil, fmt.Errorf("%w: %d cards for %d players need %d", ErrShortDeck, len(cards), r.Players, need)
		}
		opts = append(opts, game.WithDeck(cards))
	}
	return game.NewGame(r.Players, r.Seed, opts...)
}

// Play deals the recorded game and re-applies every move. observe, if not
// nil, sees each outcome in order.
func Play(rec *Record, logger *log.Logger, observe game.Observer) (*game.GameState, error) {
	var opts []game.GameOption
	if logger != nil {
		opts = append(opts, game.WithLogger(logger))
	}
	g, err := rec.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Start(); err != nil {
		return nil, err
	}

	for i, m := range rec.Moves {
		move, err := hanabi.ParseMove(m.Action)
		if err != nil {
			return g, fmt.Errorf("replay: move %d: %w", i, err)
		}
		out, err := g.Apply(m.Player, move)
		if err != nil {
			return g, fmt.Errorf("replay: move %d: %w", i, err)
		}
		if observe != nil {
			observe(out)
		}
	}
	return g, nil
}

// Verify replays rec and checks that it ends with the recorded result.
func Verify(rec *Record) error {
	g, err := Play(rec, nil, nil)
	if err != nil {
		return err
	}
	got := g.Result()
	want := rec.Result
	if !g.IsFinished() {
		return fmt.Errorf("%w: game unfinished after %d moves", ErrMismatch, len(rec.Moves))
	}
	if got.Reason.String() != want.Reason || got.Score != want.Score || g.Counters().Turn != want.Turns {
		return fmt.Errorf("%w: recorded %s/%d in %d turns, replayed %s/%d in %d turns",
			ErrMismatch, want.Reason, want.Score, want.Turns, got.Reason, got.Score, g.Counters().Turn)
	}
	return nil
}
