// Package worker serializes access to a single chess engine instance. The
// manager owns its bot; callers submit one request at a time and overlapping
// submissions are refused rather than queued.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/bots"
)

var (
	ErrRequestPending = errors.New("worker: a request is already pending")
	ErrClosed         = errors.New("worker: manager is closed")
)

// Request asks for one engine move. FEN is required. History optionally
// carries the short algebraic moves that led to the position, which keeps
// the opening book usable; without it the engine sees a bare position.
// Config overrides stick for this and later requests.
type Request struct {
	FEN     string               `json:"fen"`
	History []string             `json:"history,omitempty"`
	Config  *bots.BotConfigPatch `json:"config,omitempty"`
}

// MovePayload is the wire form of a chosen move.
type MovePayload struct {
	UCI   string `json:"uci"`
	SAN   string `json:"san"`
	From  string `json:"from"`
	To    string `json:"to"`
	Promo string `json:"promo,omitempty"`
}

// Response carries the engine's answer. Move is nil when the position is
// already decided or when Error is set. Score is from the side to move.
type Response struct {
	Move  *MovePayload `json:"move"`
	Score float64      `json:"score"`
	Error string       `json:"error,omitempty"`
}

// Manager owns one bot and runs at most one search at a time.
type Manager struct {
	bot     *bots.MinimaxBot
	log     *zap.SugaredLogger
	pending atomic.Bool
	closed  atomic.Bool
}

func NewManager(config bots.BotConfig, log *zap.SugaredLogger) *Manager {
	return &Manager{
		bot: bots.NewMinimaxBot(config),
		log: log,
	}
}

func (m *Manager) BotName() string {
	return m.bot.Name()
}

// Submit runs one search and returns its response. A submission that
// overlaps a running one fails fast with ErrRequestPending; callers retry
// once the previous response arrives. Position and engine problems are
// reported inside the response, not as a Go error.
func (m *Manager) Submit(ctx context.Context, req Request) (Response, error) {
	if m.closed.Load() {
		return Response{}, ErrClosed
	}
	if !m.pending.CompareAndSwap(false, true) {
		return Response{}, ErrRequestPending
	}
	defer m.pending.Store(false)

	return m.handle(ctx, req), nil
}

// Close refuses further submissions. A search already running finishes and
// its caller still receives the response.
func (m *Manager) Close() {
	m.closed.Store(true)
}

func (m *Manager) handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Errorw("engine panic", "panic", r, "fen", req.FEN)
			resp = Response{Error: fmt.Sprintf("engine failure: %v", r)}
		}
	}()

	if req.Config != nil {
		if err := m.bot.Configure(*req.Config); err != nil {
			return Response{Error: err.Error()}
		}
	}

	game, err := m.rebuild(req.FEN, req.History)
	if err != nil {
		return Response{Error: err.Error()}
	}

	start := time.Now()
	result, err := m.bot.Search(ctx, game)
	if err != nil {
		return Response{Error: err.Error()}
	}

	stats := m.bot.LastStats()
	m.log.Infow("search finished",
		"fen", req.FEN,
		"score", result.Score,
		"nodes", stats.Nodes,
		"cache_hits", stats.CacheHits,
		"cutoffs", stats.Cutoffs,
		"book", stats.BookHit,
		"elapsed", time.Since(start),
	)

	if result.Move == nil {
		return Response{Score: result.Score}
	}
	return Response{Move: payload(game, result.Move), Score: result.Score}
}

// rebuild prefers replaying the move history so the game keeps the context
// the opening book needs. A history that fails to replay or does not reach
// the requested position degrades to the bare FEN instead of failing.
func (m *Manager) rebuild(fen string, history []string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid fen: %w", err)
	}
	fromFEN := chess.NewGame(opt)
	if len(history) == 0 {
		return fromFEN, nil
	}

	replayed := chess.NewGame()
	notation := chess.AlgebraicNotation{}
	for _, san := range history {
		move, err := notation.Decode(replayed.Position(), san)
		if err != nil {
			m.log.Warnw("history replay failed, using fen only", "san", san, "err", err)
			return fromFEN, nil
		}
		if err := replayed.Move(move); err != nil {
			m.log.Warnw("history replay failed, using fen only", "san", san, "err", err)
			return fromFEN, nil
		}
	}
	if replayed.FEN() != fen {
		m.log.Warnw("history does not reach the requested fen, using fen only", "fen", fen)
		return fromFEN, nil
	}
	return replayed, nil
}

func payload(game *chess.Game, move *chess.Move) *MovePayload {
	p := &MovePayload{
		UCI:  move.String(),
		SAN:  chess.AlgebraicNotation{}.Encode(game.Position(), move),
		From: move.S1().String(),
		To:   move.S2().String(),
	}
	if move.Promo() != chess.NoPieceType {
		p.Promo = move.Promo().String()
	}
	return p
}
