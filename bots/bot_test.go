package bots

import (
	"context"
	"testing"

	"github.com/notnil/chess"
)

func TestNewBotRoster(t *testing.T) {
	bot, err := NewBot("minimax", DefaultBotConfig())
	if err != nil {
		t.Fatalf("minimax bot: %v", err)
	}
	if _, ok := bot.(*MinimaxBot); !ok {
		t.Fatalf("expected a *MinimaxBot, got %T", bot)
	}

	bot, err = NewBot("random", DefaultBotConfig())
	if err != nil {
		t.Fatalf("random bot: %v", err)
	}
	if _, ok := bot.(*RandomBot); !ok {
		t.Fatalf("expected a *RandomBot, got %T", bot)
	}

	if _, err := NewBot("grandmaster", DefaultBotConfig()); err == nil {
		t.Fatalf("expected an error for an unknown bot name")
	}
}

func TestConfigureRejectsInvalidPatch(t *testing.T) {
	bot := NewMinimaxBot(DefaultBotConfig())
	depth := 0
	if err := bot.Configure(BotConfigPatch{SearchDepth: &depth}); err == nil {
		t.Fatalf("expected an error for zero search depth")
	}
	if bot.Config().SearchDepth != DefaultSearchDepth {
		t.Fatalf("rejected patch must leave the config untouched, got depth %d", bot.Config().SearchDepth)
	}
}

func TestRandomBotPlaysLegalMove(t *testing.T) {
	bot := NewRandomBot()
	game := chess.NewGame()

	move, err := bot.BestMove(context.Background(), game)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move == nil {
		t.Fatalf("expected a move in the start position")
	}
	if err := game.Move(move); err != nil {
		t.Fatalf("random bot produced an illegal move %s: %v", move, err)
	}
}

func TestRandomBotTerminalPosition(t *testing.T) {
	game := chess.NewGame()
	for _, san := range []string{"f3", "e5", "g4", "Qh4#"} {
		mustMove(t, game, san)
	}

	bot := NewRandomBot()
	move, err := bot.BestMove(context.Background(), game)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != nil {
		t.Fatalf("expected no move in a finished game, got %s", move)
	}
}
