package match

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/internal/adapters"
	"github.com/lcasviana/chess/internal/bootstrap"
	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
	"github.com/lcasviana/chess/internal/httpresponse"
	repo "github.com/lcasviana/chess/internal/repository"
	"github.com/lcasviana/chess/internal/statuses"
	matchuc "github.com/lcasviana/chess/internal/usecase/match"
	"github.com/lcasviana/chess/worker"
)

type MatchHandler struct {
	cfg     *bootstrap.Config
	log     *zap.SugaredLogger
	matchUC *matchuc.MatchUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// One live play connection per match. A newcomer replaces the old one.
var activeConns = make(map[string]*websocket.Conn)
var activeConnsMu sync.RWMutex

type JsonOKResponse struct {
	Text string `json:"text"`
}

// NewMatchHandler picks the stores from what is configured: Redis keeps
// active matches when available, plain memory otherwise; MongoDB, when
// configured, archives finished games.
func NewMatchHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, redisAdapter *adapters.AdapterRedis) *MatchHandler {
	var store matchuc.MatchStore = repo.NewMemoryMatchStore()
	if redisAdapter != nil {
		store = repo.NewRedisMatchStore(log, redisAdapter.GetClient())
	}

	var archive matchuc.MatchArchive
	if mongoAdapter != nil {
		archive = repo.NewMongoMatchArchive(log, mongoAdapter.Database)
	}

	return &MatchHandler{
		cfg:     cfg,
		log:     log,
		matchUC: matchuc.NewMatchUseCase(cfg, log, store, archive),
	}
}

func (h *MatchHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req match.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Error("create decode error: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.matchUC.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, resp)
}

func (h *MatchHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.matchUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, m)
}

func (h *MatchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	listed, err := h.matchUC.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, listed)
}

func (h *MatchHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.matchUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, JsonOKResponse{Text: "match deleted"})
}

func (h *MatchHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req match.MoveRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Error("move decode error: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.matchUC.Move(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *MatchHandler) HandleResign(w http.ResponseWriter, r *http.Request) {
	m, err := h.matchUC.Resign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, m)
}

// HandleAnalyze runs the engine on a caller supplied position. The reply
// is the bare engine protocol, not the service envelope: {move, score}
// on success, {move: null, error} when the position is unusable.
func (h *MatchHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req worker.Request
	if err := decodeBody(r, &req); err != nil {
		h.log.Error("analyze decode error: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err)
		return
	}
	if req.FEN == "" {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, errors.New("fen is required"))
		return
	}

	resp, err := h.matchUC.Analyze(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("analyze encode error: ", err)
	}
}

func (h *MatchHandler) HandleArchiveGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.matchUC.Archived(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, m)
}

func (h *MatchHandler) HandleArchiveList(w http.ResponseWriter, r *http.Request) {
	listed, err := h.matchUC.ArchivedList(r.Context(), r.URL.Query().Get("result"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, listed)
}

type playError struct {
	Error string `json:"error"`
}

// HandlePlay upgrades to a websocket and plays the match over it: each
// message carries one player move, each reply the applied move and the
// engine's answer.
func (h *MatchHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	m, err := h.matchUC.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if m.Status != statuses.StatusActive {
		h.writeError(w, cherrors.ErrMatchFinished)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade error: ", err)
		return
	}

	activeConnsMu.Lock()
	if old, ok := activeConns[id]; ok {
		old.WriteJSON(playError{Error: "replaced by a new connection"})
		old.Close()
	}
	activeConns[id] = conn
	activeConnsMu.Unlock()

	defer func() {
		conn.Close()
		activeConnsMu.Lock()
		if activeConns[id] == conn {
			delete(activeConns, id)
		}
		activeConnsMu.Unlock()
	}()

	for {
		var req match.MoveRequest
		if err := conn.ReadJSON(&req); err != nil {
			h.log.Info("play connection closed: ", err)
			return
		}

		resp, err := h.matchUC.Move(r.Context(), id, req)
		if err != nil {
			if writeErr := conn.WriteJSON(playError{Error: err.Error()}); writeErr != nil {
				h.log.Error("play write error: ", writeErr)
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			h.log.Error("play write error: ", err)
			return
		}

		if resp.Match.Status != statuses.StatusActive {
			return
		}
	}
}

func (h *MatchHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, cherrors.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cherrors.ErrMatchFinished), errors.Is(err, cherrors.ErrNotPlayersTurn):
		status = http.StatusConflict
	case errors.Is(err, cherrors.ErrIllegalMove),
		errors.Is(err, cherrors.ErrEmptyMove),
		errors.Is(err, cherrors.ErrInvalidColor),
		errors.Is(err, cherrors.ErrInvalidConfig):
		status = http.StatusBadRequest
	case errors.Is(err, cherrors.ErrEngineBusy):
		status = http.StatusServiceUnavailable
	}

	h.log.Error(err)
	httpresponse.WriteErrorWithStatus(w, status, err)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
