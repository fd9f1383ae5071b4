package bots

import (
	"context"
	"math/rand"
	"time"

	"github.com/notnil/chess"
)

// RandomBot plays a uniformly random legal move. Useful as a baseline
// opponent and for exercising the game loop in tests.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot() *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (b *RandomBot) BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil, nil
	}
	return moves[b.rng.Intn(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
