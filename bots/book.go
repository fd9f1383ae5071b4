package bots

import (
	"math/rand"
	"strings"

	"github.com/notnil/chess"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// WeightedMove is a book candidate in short algebraic notation. Weights skew
// selection toward established replies.
type WeightedMove struct {
	SAN    string
	Weight int
}

// BookEntry describes one known move history.
type BookEntry struct {
	Name      string
	Variation string
	Moves     []WeightedMove
}

// OpeningBook maps comma-joined move histories ("e4,e5,Nf3") to weighted
// candidate replies.
type OpeningBook struct {
	entries map[string]BookEntry
}

// NewOpeningBook returns a book loaded with the built-in lines.
func NewOpeningBook() *OpeningBook {
	return &OpeningBook{entries: mainLines}
}

// NewOpeningBookWith builds a book from a custom table.
func NewOpeningBookWith(entries map[string]BookEntry) *OpeningBook {
	return &OpeningBook{entries: entries}
}

// HistoryKey builds the lookup key from the moves played so far. The empty
// history maps to "".
func HistoryKey(game *chess.Game) string {
	moves := game.Moves()
	if len(moves) == 0 {
		return ""
	}
	positions := game.Positions()
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = chess.AlgebraicNotation{}.Encode(positions[i], move)
	}
	return strings.Join(parts, ",")
}

// Lookup returns the entry stored for a history key.
func (b *OpeningBook) Lookup(key string) (BookEntry, bool) {
	entry, ok := b.entries[key]
	return entry, ok
}

// ShouldUse reports whether the book applies: the game started from the
// standard position, fewer than maxPly moves have been played, and the
// current history has candidate replies. Games rebuilt from an arbitrary
// FEN have no usable history and never match.
func (b *OpeningBook) ShouldUse(game *chess.Game, maxPly int) bool {
	if len(game.Moves()) >= maxPly {
		return false
	}
	positions := game.Positions()
	if len(positions) == 0 || positions[0].String() != startingFEN {
		return false
	}
	entry, ok := b.Lookup(HistoryKey(game))
	return ok && len(entry.Moves) > 0
}

// Reply picks a candidate for the current history. Selection is a roulette
// wheel over the candidate weights, so frequencies approach the configured
// proportions.
func (b *OpeningBook) Reply(game *chess.Game, rng *rand.Rand) (string, bool) {
	entry, ok := b.Lookup(HistoryKey(game))
	if !ok || len(entry.Moves) == 0 {
		return "", false
	}
	return pickWeighted(entry.Moves, rng), true
}

func pickWeighted(moves []WeightedMove, rng *rand.Rand) string {
	total := 0
	for _, c := range moves {
		total += c.Weight
	}
	if total <= 0 {
		return moves[0].SAN
	}
	r := rng.Float64() * float64(total)
	for _, c := range moves {
		r -= float64(c.Weight)
		if r <= 0 {
			return c.SAN
		}
	}
	return moves[len(moves)-1].SAN
}
