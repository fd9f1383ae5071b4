package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lcasviana/chess/bots"
	"github.com/lcasviana/chess/internal/bootstrap"
	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
	repo "github.com/lcasviana/chess/internal/repository"
	"github.com/lcasviana/chess/internal/statuses"
	"github.com/lcasviana/chess/worker"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func testConfig() *bootstrap.Config {
	return &bootstrap.Config{
		SearchDepth:      1,
		BookDisabled:     true,
		RandomizationOff: true,
	}
}

func newTestUseCase() (*MatchUseCase, *repo.MemoryMatchStore) {
	store := repo.NewMemoryMatchStore()
	uc := NewMatchUseCase(testConfig(), zap.NewNop().Sugar(), store, nil)
	return uc, store
}

func TestCreateDefaultsToWhite(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	m := resp.Match
	if m.PlayerColor != match.ColorWhite {
		t.Fatalf("expected white, got %q", m.PlayerColor)
	}
	if m.Status != statuses.StatusActive {
		t.Fatalf("expected active match, got %q", m.Status)
	}
	if m.FEN != startFEN {
		t.Fatalf("expected start position, got %q", m.FEN)
	}
	if resp.BotMove != nil {
		t.Fatalf("engine should wait for the player, got %+v", resp.BotMove)
	}

	stored, err := uc.Get(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.ID != m.ID {
		t.Fatalf("stored match mismatch: %+v", stored)
	}
}

func TestCreateAsBlackGetsOpeningMove(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), match.CreateRequest{PlayerColor: match.ColorBlack})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.BotMove == nil {
		t.Fatalf("expected an opening move from the engine")
	}
	m := resp.Match
	if len(m.Moves) != 1 {
		t.Fatalf("expected one move in history, got %v", m.Moves)
	}
	if !strings.Contains(m.FEN, " b ") {
		t.Fatalf("expected black to move, got %q", m.FEN)
	}
}

func TestCreateRejectsBadColor(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), match.CreateRequest{PlayerColor: "green"})
	if !errors.Is(err, cherrors.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestCreateRejectsBadConfig(t *testing.T) {
	uc, _ := newTestUseCase()

	depth := 0
	_, err := uc.Create(context.Background(), match.CreateRequest{
		Config: &bots.BotConfigPatch{SearchDepth: &depth},
	})
	if !errors.Is(err, cherrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMoveFullExchange(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	resp, err := uc.Move(context.Background(), created.Match.ID, match.MoveRequest{Move: "e4"})
	if err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if resp.BotMove == nil {
		t.Fatalf("expected an engine reply")
	}
	if len(resp.Match.Moves) != 2 {
		t.Fatalf("expected two moves in history, got %v", resp.Match.Moves)
	}
	if resp.Match.Moves[0] != "e4" {
		t.Fatalf("expected e4 first, got %v", resp.Match.Moves)
	}
	if resp.Match.Status != statuses.StatusActive {
		t.Fatalf("expected active match, got %q", resp.Match.Status)
	}
	if resp.Match.PGN == "" {
		t.Fatalf("expected PGN to be recorded")
	}

	stored, err := uc.Get(context.Background(), created.Match.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(stored.Moves) != 2 {
		t.Fatalf("expected history persisted, got %v", stored.Moves)
	}
}

func TestMoveAcceptsCoordinateNotation(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	resp, err := uc.Move(context.Background(), created.Match.ID, match.MoveRequest{Move: "g1f3"})
	if err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if resp.Match.Moves[0] != "Nf3" {
		t.Fatalf("expected coordinate move stored as Nf3, got %v", resp.Match.Moves)
	}
}

func TestMoveRejectsIllegal(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = uc.Move(context.Background(), created.Match.ID, match.MoveRequest{Move: "Ke2"})
	if !errors.Is(err, cherrors.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}

func TestMoveRejectsEmpty(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = uc.Move(context.Background(), created.Match.ID, match.MoveRequest{Move: "  "})
	if !errors.Is(err, cherrors.ErrEmptyMove) {
		t.Fatalf("expected ErrEmptyMove, got %v", err)
	}
}

func TestMoveUnknownMatch(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Move(context.Background(), "absent", match.MoveRequest{Move: "e4"})
	if !errors.Is(err, cherrors.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestMoveOutOfTurn(t *testing.T) {
	uc, store := newTestUseCase()

	m := &match.Match{
		ID:          "out-of-turn",
		PlayerColor: match.ColorBlack,
		FEN:         startFEN,
		Moves:       []string{},
		Status:      statuses.StatusActive,
	}
	if err := store.Save(context.Background(), m); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	_, err := uc.Move(context.Background(), m.ID, match.MoveRequest{Move: "e5"})
	if !errors.Is(err, cherrors.ErrNotPlayersTurn) {
		t.Fatalf("expected ErrNotPlayersTurn, got %v", err)
	}
}

func TestMoveCheckmateEndsMatch(t *testing.T) {
	uc, store := newTestUseCase()

	m := &match.Match{
		ID:          "mate-in-one",
		PlayerColor: match.ColorWhite,
		Moves:       []string{"e4", "f6", "d4", "g5"},
		Status:      statuses.StatusActive,
	}
	if err := store.Save(context.Background(), m); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	resp, err := uc.Move(context.Background(), m.ID, match.MoveRequest{Move: "Qh5#"})
	if err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if resp.BotMove != nil {
		t.Fatalf("no engine reply expected after mate, got %+v", resp.BotMove)
	}
	got := resp.Match
	if got.Status != statuses.StatusFinished {
		t.Fatalf("expected finished match, got %q", got.Status)
	}
	if got.Result != "1-0" {
		t.Fatalf("expected 1-0, got %q", got.Result)
	}
	if got.Reason != "checkmate" {
		t.Fatalf("expected checkmate, got %q", got.Reason)
	}
	if got.FinishedAt == nil {
		t.Fatalf("expected FinishedAt to be set")
	}

	_, err = uc.Move(context.Background(), m.ID, match.MoveRequest{Move: "a3"})
	if !errors.Is(err, cherrors.ErrMatchFinished) {
		t.Fatalf("expected ErrMatchFinished, got %v", err)
	}
}

func TestResign(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	m, err := uc.Resign(context.Background(), created.Match.ID)
	if err != nil {
		t.Fatalf("Resign returned error: %v", err)
	}
	if m.Status != statuses.StatusFinished {
		t.Fatalf("expected finished match, got %q", m.Status)
	}
	if m.Result != "0-1" {
		t.Fatalf("white resigning should lose, got %q", m.Result)
	}
	if m.Reason != "resignation" {
		t.Fatalf("expected resignation, got %q", m.Reason)
	}

	if _, err := uc.Resign(context.Background(), created.Match.ID); !errors.Is(err, cherrors.ErrMatchFinished) {
		t.Fatalf("expected ErrMatchFinished on second resign, got %v", err)
	}
}

func TestResignAsBlack(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{PlayerColor: match.ColorBlack})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	m, err := uc.Resign(context.Background(), created.Match.ID)
	if err != nil {
		t.Fatalf("Resign returned error: %v", err)
	}
	if m.Result != "1-0" {
		t.Fatalf("black resigning should lose, got %q", m.Result)
	}
}

func TestDelete(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := uc.Delete(context.Background(), created.Match.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.Match.ID); !errors.Is(err, cherrors.ErrMatchNotFound) {
		t.Fatalf("expected match gone, got %v", err)
	}
	if err := uc.Delete(context.Background(), created.Match.ID); !errors.Is(err, cherrors.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	uc, _ := newTestUseCase()

	for i := 0; i < 2; i++ {
		if _, err := uc.Create(context.Background(), match.CreateRequest{}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(listed))
	}
}

func TestAnalyze(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Analyze(context.Background(), worker.Request{FEN: startFEN})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected engine error: %s", resp.Error)
	}
	if resp.Move == nil {
		t.Fatalf("expected a move for the start position")
	}
}

func TestMoveSurvivesRestart(t *testing.T) {
	store := repo.NewMemoryMatchStore()
	log := zap.NewNop().Sugar()

	first := NewMatchUseCase(testConfig(), log, store, nil)
	created, err := first.Create(context.Background(), match.CreateRequest{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// A fresh use case over the same store stands in for a restarted
	// service: the engine is rebuilt from the persisted match.
	second := NewMatchUseCase(testConfig(), log, store, nil)
	resp, err := second.Move(context.Background(), created.Match.ID, match.MoveRequest{Move: "d4"})
	if err != nil {
		t.Fatalf("Move after restart returned error: %v", err)
	}
	if resp.BotMove == nil {
		t.Fatalf("expected an engine reply after restart")
	}
}
