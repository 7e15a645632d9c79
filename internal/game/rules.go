package game

const (
	// MaxHints is the number of hint tokens; the game starts with all of them.
	MaxHints = 8
	// MaxStrikes misplays end the game.
	MaxStrikes = 3

	MinPlayers = 2
	MaxPlayers = 5
)

// Rules holds the rule-variant switches on which published rule sets
// disagree.
type Rules struct {
	// DiscardAtMaxHints allows discarding while all hint tokens are available.
	// The discard then gains nothing.
	DiscardAtMaxHints bool
	// BonusHintOnComplete returns a hint token when a pile is completed with
	// its five.
	BonusHintOnComplete bool
	// ZeroOnStrikeout scores a game lost to strikes as zero instead of the sum
	// of the piles.
	ZeroOnStrikeout bool
	// RequireClueMatch rejects clues that touch none of the target's cards.
	RequireClueMatch bool
}

// DefaultRules returns the rules this engine plays by unless told otherwise.
func DefaultRules() Rules {
	return Rules{
		DiscardAtMaxHints:   true,
		BonusHintOnComplete: true,
		ZeroOnStrikeout:     true,
		RequireClueMatch:    false,
	}
}

// HandSize returns the number of cards dealt to each player.
func HandSize(players int) int {
	if players <= 3 {
		return 5
	}
	return 4
}
