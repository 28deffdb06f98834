package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizpace/backend/internal/api"
	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/infrastructure/config"
	"github.com/quizpace/backend/internal/scorer"
	"github.com/quizpace/backend/internal/service"
	"github.com/quizpace/backend/internal/store"

	_ "github.com/quizpace/backend/docs" // generated swagger docs
)

// @title           QuizPace API
// @version         1.0
// @description     Timed quiz practice — build question banks and run sessions under a per-question countdown.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var sc practicesession.Scorer
	if cfg.ScoringURL != "" {
		logger.Info("using remote scorer", "url", cfg.ScoringURL)
		sc = scorer.NewRemoteScorer(cfg.ScoringURL)
	} else {
		sc = scorer.NewLocalScorer(db)
	}

	sessions := service.NewSessionService(db, sc, logger,
		practicesession.WithAutoAdvanceDelay(cfg.AutoAdvanceDelay),
	)
	defer sessions.Shutdown()

	handler := api.NewHandler(db, sessions, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
