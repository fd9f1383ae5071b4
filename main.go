package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/internal/adapters"
	"github.com/lcasviana/chess/internal/bootstrap"
	matchDelivery "github.com/lcasviana/chess/internal/delivery/match"
	ownMiddleware "github.com/lcasviana/chess/internal/middleware"
)

type mainDeliveryHandler struct {
	match *matchDelivery.MatchHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Warnw("no usable .env file, falling back to defaults", "error", err)
		cfg = bootstrap.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	if databaseAdapters.mongoAdapter != nil {
		defer databaseAdapters.mongoAdapter.Close(ctx)
	}
	if databaseAdapters.redisAdapter != nil {
		defer databaseAdapters.redisAdapter.Close(ctx)
	}

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(cfg, logger, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{Addr: cfg.Addr(), Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("server shutdown failed", "error", err)
		}
	}()

	logger.Infof("Server is running on %s", cfg.Addr())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("failed to start server", "error", err)
	}
	logger.Info("Server stopped")
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/api/match", h.match.HandleCreate)
	r.Get("/api/match", h.match.HandleList)
	r.Get("/api/match/{id}", h.match.HandleGet)
	r.Delete("/api/match/{id}", h.match.HandleDelete)
	r.Post("/api/match/{id}/move", h.match.HandleMove)
	r.Post("/api/match/{id}/resign", h.match.HandleResign)
	r.Get("/api/match/{id}/play", h.match.HandlePlay)
	r.Post("/api/analyze", h.match.HandleAnalyze)
	r.Get("/api/archive", h.match.HandleArchiveList)
	r.Get("/api/archive/{id}", h.match.HandleArchiveGet)
}

// initDatabaseAdapters connects only what the configuration names. With
// neither database the service still runs, holding matches in memory.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	databaseAdapters := &dataBaseAdapters{}

	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg)
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Fatalw("failed to initialize MongoDB", "error", err)
		}
		databaseAdapters.mongoAdapter = mongoAdapter
	}

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatalw("failed to initialize Redis", "error", err)
		}
		databaseAdapters.redisAdapter = redisAdapter
	}

	if databaseAdapters.mongoAdapter == nil && databaseAdapters.redisAdapter == nil {
		log.Info("no databases configured, matches are kept in memory")
	}

	return databaseAdapters
}

func initializeDeliveryHandlers(cfg *bootstrap.Config, log *zap.SugaredLogger, databaseAdapters *dataBaseAdapters) *mainDeliveryHandler {
	matchDeliveryHandler := matchDelivery.NewMatchHandler(cfg, log, databaseAdapters.mongoAdapter, databaseAdapters.redisAdapter)

	return &mainDeliveryHandler{
		match: matchDeliveryHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
