package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/internal/bootstrap"
	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
	"github.com/lcasviana/chess/internal/statuses"
	"github.com/lcasviana/chess/worker"
)

// MatchStore holds active matches.
type MatchStore interface {
	Save(ctx context.Context, m *match.Match) error
	Get(ctx context.Context, id string) (*match.Match, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*match.Match, error)
}

// MatchArchive holds finished matches.
type MatchArchive interface {
	Archive(ctx context.Context, m *match.Match) error
	Find(ctx context.Context, id string) (*match.Match, error)
	ListByResult(ctx context.Context, result string) ([]*match.Match, error)
}

// MatchUseCase drives human versus engine games. Each match gets its own
// engine worker; a shared worker serves standalone analysis requests.
type MatchUseCase struct {
	cfg     *bootstrap.Config
	log     *zap.SugaredLogger
	store   MatchStore
	archive MatchArchive

	mu       sync.Mutex
	engines  map[string]*worker.Manager
	analyzer *worker.Manager

	// locks serializes updates per match so concurrent moves cannot
	// overwrite each other's history.
	locks sync.Map
}

// NewMatchUseCase wires the stores. archive may be nil when MongoDB is
// not configured; finished matches are then only kept in the store.
func NewMatchUseCase(cfg *bootstrap.Config, log *zap.SugaredLogger, store MatchStore, archive MatchArchive) *MatchUseCase {
	return &MatchUseCase{
		cfg:      cfg,
		log:      log,
		store:    store,
		archive:  archive,
		engines:  make(map[string]*worker.Manager),
		analyzer: worker.NewManager(cfg.EngineConfig(), log),
	}
}

func (u *MatchUseCase) Create(ctx context.Context, req match.CreateRequest) (*match.CreateResponse, error) {
	color := req.PlayerColor
	if color == "" {
		color = match.ColorWhite
	}
	if color != match.ColorWhite && color != match.ColorBlack {
		return nil, fmt.Errorf("%w: %q", cherrors.ErrInvalidColor, req.PlayerColor)
	}

	engineCfg := u.cfg.EngineConfig()
	if req.Config != nil {
		engineCfg = engineCfg.Merge(*req.Config)
		if err := engineCfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", cherrors.ErrInvalidConfig, err)
		}
	}

	game := chess.NewGame()
	m := &match.Match{
		ID:          uuid.New().String(),
		PlayerColor: color,
		FEN:         game.FEN(),
		Moves:       []string{},
		Status:      statuses.StatusActive,
		Config:      req.Config,
		CreatedAt:   time.Now(),
	}

	manager := worker.NewManager(engineCfg, u.log)
	m.BotName = manager.BotName()

	u.mu.Lock()
	u.engines[m.ID] = manager
	u.mu.Unlock()

	resp := &match.CreateResponse{Match: m}

	// The engine opens when the player takes black.
	if color == match.ColorBlack {
		engineResp, err := u.engineReply(ctx, m, manager, game)
		if err != nil {
			u.dropManager(m.ID)
			return nil, err
		}
		resp.BotMove = engineResp.Move
	}

	if err := u.store.Save(ctx, m); err != nil {
		u.dropManager(m.ID)
		return nil, err
	}

	u.log.Infow("match created", "match_id", m.ID, "player_color", color, "bot", m.BotName)
	return resp, nil
}

func (u *MatchUseCase) Get(ctx context.Context, id string) (*match.Match, error) {
	return u.store.Get(ctx, id)
}

func (u *MatchUseCase) List(ctx context.Context) ([]*match.Match, error) {
	return u.store.List(ctx)
}

func (u *MatchUseCase) Delete(ctx context.Context, id string) error {
	defer u.lock(id)()

	if err := u.store.Delete(ctx, id); err != nil {
		return err
	}
	u.dropManager(id)
	u.locks.Delete(id)
	u.log.Infow("match deleted", "match_id", id)
	return nil
}

// Move applies one player move and, while the game stays open, answers
// with the engine's reply.
func (u *MatchUseCase) Move(ctx context.Context, id string, req match.MoveRequest) (*match.MoveResponse, error) {
	text := strings.TrimSpace(req.Move)
	if text == "" {
		return nil, cherrors.ErrEmptyMove
	}

	defer u.lock(id)()

	m, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != statuses.StatusActive {
		return nil, cherrors.ErrMatchFinished
	}

	game, err := replay(m.Moves)
	if err != nil {
		u.log.Errorw("stored history does not replay", "match_id", id, "error", err)
		return nil, fmt.Errorf("%w: corrupt match history", cherrors.ErrInternal)
	}

	if colorName(game.Position().Turn()) != m.PlayerColor {
		return nil, cherrors.ErrNotPlayersTurn
	}

	move := resolveMove(game, text)
	if move == nil {
		return nil, fmt.Errorf("%w: %q", cherrors.ErrIllegalMove, text)
	}

	san := (chess.AlgebraicNotation{}).Encode(game.Position(), move)
	if err := game.Move(move); err != nil {
		return nil, fmt.Errorf("%w: %q", cherrors.ErrIllegalMove, text)
	}
	m.Moves = append(m.Moves, san)
	u.record(m, game)

	resp := &match.MoveResponse{Match: m}

	if m.Status == statuses.StatusActive {
		engineResp, err := u.engineReply(ctx, m, u.manager(m), game)
		if err != nil {
			return nil, err
		}
		resp.BotMove = engineResp.Move
		resp.Score = engineResp.Score
	}

	if m.Status != statuses.StatusActive {
		u.finish(ctx, m)
	}

	if err := u.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return resp, nil
}

// Resign ends the match with a loss for the player.
func (u *MatchUseCase) Resign(ctx context.Context, id string) (*match.Match, error) {
	defer u.lock(id)()

	m, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != statuses.StatusActive {
		return nil, cherrors.ErrMatchFinished
	}

	m.Status = statuses.StatusFinished
	m.Reason = "resignation"
	if m.PlayerColor == match.ColorWhite {
		m.Result = string(chess.BlackWon)
	} else {
		m.Result = string(chess.WhiteWon)
	}
	u.finish(ctx, m)

	if err := u.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Analyze runs the shared engine on an arbitrary position.
func (u *MatchUseCase) Analyze(ctx context.Context, req worker.Request) (worker.Response, error) {
	resp, err := u.analyzer.Submit(ctx, req)
	if errors.Is(err, worker.ErrRequestPending) {
		return worker.Response{}, cherrors.ErrEngineBusy
	}
	return resp, err
}

func (u *MatchUseCase) Archived(ctx context.Context, id string) (*match.Match, error) {
	if u.archive == nil {
		return nil, cherrors.ErrMatchNotFound
	}
	return u.archive.Find(ctx, id)
}

func (u *MatchUseCase) ArchivedList(ctx context.Context, result string) ([]*match.Match, error) {
	if u.archive == nil {
		return []*match.Match{}, nil
	}
	return u.archive.ListByResult(ctx, result)
}

// engineReply asks the match's worker for a move and applies it.
func (u *MatchUseCase) engineReply(ctx context.Context, m *match.Match, manager *worker.Manager, game *chess.Game) (worker.Response, error) {
	resp, err := manager.Submit(ctx, worker.Request{FEN: game.FEN(), History: m.Moves})
	if errors.Is(err, worker.ErrRequestPending) {
		return worker.Response{}, cherrors.ErrEngineBusy
	} else if err != nil {
		return worker.Response{}, err
	}
	if resp.Error != "" {
		return worker.Response{}, fmt.Errorf("%w: %s", cherrors.ErrInternal, resp.Error)
	}
	if resp.Move == nil {
		return resp, nil
	}

	move := resolveMove(game, resp.Move.SAN)
	if move == nil {
		return worker.Response{}, fmt.Errorf("%w: engine move %q does not apply", cherrors.ErrInternal, resp.Move.SAN)
	}
	if err := game.Move(move); err != nil {
		return worker.Response{}, fmt.Errorf("%w: engine move %q does not apply", cherrors.ErrInternal, resp.Move.SAN)
	}
	m.Moves = append(m.Moves, resp.Move.SAN)
	u.record(m, game)
	return resp, nil
}

// record refreshes the derived fields after a move and marks decided
// games finished.
func (u *MatchUseCase) record(m *match.Match, game *chess.Game) {
	m.FEN = game.FEN()
	m.PGN = strings.TrimSpace(game.String())
	if game.Outcome() != chess.NoOutcome {
		m.Status = statuses.StatusFinished
		m.Result = game.Outcome().String()
		m.Reason = methodText(game.Method())
	}
}

// finish archives the match and releases its engine.
func (u *MatchUseCase) finish(ctx context.Context, m *match.Match) {
	now := time.Now()
	m.FinishedAt = &now

	if u.archive != nil {
		if err := u.archive.Archive(ctx, m); err != nil {
			u.log.Errorw("archive failed", "match_id", m.ID, "error", err)
		}
	}
	u.dropManager(m.ID)
	u.log.Infow("match finished", "match_id", m.ID, "result", m.Result, "reason", m.Reason)
}

// manager returns the engine for a match, rebuilding it after a restart
// from the settings persisted with the match.
func (u *MatchUseCase) manager(m *match.Match) *worker.Manager {
	u.mu.Lock()
	defer u.mu.Unlock()

	mgr, ok := u.engines[m.ID]
	if !ok {
		engineCfg := u.cfg.EngineConfig()
		if m.Config != nil {
			engineCfg = engineCfg.Merge(*m.Config)
		}
		mgr = worker.NewManager(engineCfg, u.log)
		u.engines[m.ID] = mgr
	}
	return mgr
}

// lock takes the per-match mutex and returns its release.
func (u *MatchUseCase) lock(id string) func() {
	v, _ := u.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (u *MatchUseCase) dropManager(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if mgr, ok := u.engines[id]; ok {
		mgr.Close()
		delete(u.engines, id)
	}
}

// replay rebuilds a game from its move history.
func replay(moves []string) (*chess.Game, error) {
	game := chess.NewGame()
	notation := chess.AlgebraicNotation{}
	for i, san := range moves {
		move, err := notation.Decode(game.Position(), san)
		if err != nil {
			return nil, fmt.Errorf("decode move %d %q: %w", i+1, san, err)
		}
		if err := game.Move(move); err != nil {
			return nil, fmt.Errorf("apply move %d %q: %w", i+1, san, err)
		}
	}
	return game, nil
}

// resolveMove accepts short algebraic or coordinate notation.
func resolveMove(game *chess.Game, text string) *chess.Move {
	notation := chess.AlgebraicNotation{}
	if move, err := notation.Decode(game.Position(), text); err == nil {
		return move
	}
	for _, valid := range game.ValidMoves() {
		if valid.String() == text {
			return valid
		}
	}
	return nil
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return match.ColorWhite
	}
	return match.ColorBlack
}

func methodText(method chess.Method) string {
	switch method {
	case chess.Checkmate:
		return "checkmate"
	case chess.Stalemate:
		return "stalemate"
	case chess.ThreefoldRepetition:
		return "threefold repetition"
	case chess.FivefoldRepetition:
		return "fivefold repetition"
	case chess.FiftyMoveRule:
		return "fifty move rule"
	case chess.SeventyFiveMoveRule:
		return "seventy five move rule"
	case chess.InsufficientMaterial:
		return "insufficient material"
	case chess.Resignation:
		return "resignation"
	case chess.DrawOffer:
		return "draw offer"
	default:
		return ""
	}
}
