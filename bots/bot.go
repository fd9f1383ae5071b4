package bots

import (
	"context"
	"fmt"

	"github.com/notnil/chess"
)

// ChessBot picks moves for the side to move. Implementations never modify
// the game they are given.
type ChessBot interface {
	BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error)
	Name() string
}

var (
	_ ChessBot = (*MinimaxBot)(nil)
	_ ChessBot = (*RandomBot)(nil)
)

// NewBot builds a bot by name. Known names are "minimax" and "random".
func NewBot(name string, config BotConfig) (ChessBot, error) {
	switch name {
	case "minimax":
		return NewMinimaxBot(config), nil
	case "random":
		return NewRandomBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot %q", name)
	}
}
