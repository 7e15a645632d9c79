package replay

import (
	"time"

	"github.com/lox/hanabiforbots/internal/game"
)

// Variant identifies replay files written by this package.
const Variant = "hanabi"

// Record is one complete game: enough to deal it again and re-apply every
// move.
type Record struct {
	Variant string    `toml:"variant"`
	Game    string    `toml:"game,omitempty"`
	Time    time.Time `toml:"time"`
	Players int       `toml:"players"`
	Seed    int64     `toml:"seed"`
	Deck    []string  `toml:"deck,omitempty"` // fixed draw order, empty when shuffled by seed
	Rules   Rules     `toml:"rules"`
	Moves   []Move    `toml:"move"`
	Result  Result    `toml:"result"`
}

// Rules mirrors game.Rules with stable file keys.
type Rules struct {
	DiscardAtMaxHints   bool `toml:"discard_at_max_hints"`
	BonusHintOnComplete bool `toml:"bonus_hint_on_complete"`
	ZeroOnStrikeout     bool `toml:"zero_on_strikeout"`
	RequireClueMatch    bool `toml:"require_clue_match"`
}

// Move is one applied move in hanabi.ParseMove notation.
type Move struct {
	Player int    `toml:"player"`
	Action string `toml:"action"`
}

// Result is the recorded end of the game.
type Result struct {
	Reason string `toml:"reason"`
	Score  int    `toml:"score"`
	Turns  int    `toml:"turns"`
}

func rulesFrom(r game.Rules) Rules {
	return Rules{
		DiscardAtMaxHints:   r.DiscardAtMaxHints,
		BonusHintOnComplete: r.BonusHintOnComplete,
		ZeroOnStrikeout:     r.ZeroOnStrikeout,
		RequireClueMatch:    r.RequireClueMatch,
	}
}

func (r Rules) game() game.Rules {
	return game.Rules{
		DiscardAtMaxHints:   r.DiscardAtMaxHints,
		BonusHintOnComplete: r.BonusHintOnComplete,
		ZeroOnStrikeout:     r.ZeroOnStrikeout,
		RequireClueMatch:    r.RequireClueMatch,
	}
}
