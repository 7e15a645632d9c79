// Package hanabi provides the building blocks of a Hanabi game: cards, the
// canonical deck composition, card multisets, hands, firework piles, clues and
// moves.
//
// The types here carry no turn logic. The authoritative game state machine
// lives in internal/game and is assembled from these pieces.
//
// # Deterministic Shuffling
//
// A deck is built once, shuffled once with an integer seed and then only drawn
// from. The same seed always produces the same order:
//
//	d, _ := hanabi.NewDeck(hanabi.NumColours, hanabi.NumRanks, nil)
//	_ = d.Shuffle(42)
//	card, ok := d.Draw()
package hanabi
