package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
	"github.com/Vovarama1992/support-ai-bridge/internal/config"
	"github.com/Vovarama1992/support-ai-bridge/internal/knowledge"
	"github.com/Vovarama1992/support-ai-bridge/internal/support"
	"github.com/Vovarama1992/support-ai-bridge/pkg/logx"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("config error")
	}

	logx.Init(logx.Options{
		Environment: cfg.Server.Environment(),
		Level:       cfg.Server.LogLevel,
	})

	// --- DB ---
	db, err := sql.Open("postgres", cfg.Server.DatabaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("db open error")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.DBPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logx.Fatal().Err(err).Msg("db ping error")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.Origins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Knowledge module wiring ---
	knowledgeRepo := knowledge.NewRepo(db)
	builder := knowledge.NewBuilder(knowledgeRepo)
	knowledge.RegisterRoutes(r, knowledge.NewHandler(builder, knowledgeRepo))

	// --- Support module wiring ---
	generator := ai.NewGenerator(cfg.AI)
	notifier := support.NewWebhookNotifier(cfg.Support.HandoffWebhookURL, cfg.Support.HandoffTimeout)
	supportService := support.NewService(support.NewRepo(db), builder, generator, notifier, cfg.Support)
	support.RegisterRoutes(r, support.NewHandler(supportService))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("port", cfg.Server.Port).Str("env", cfg.Server.Environment().String()).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("shutdown error")
	}
	logx.Info().Msg("server stopped")
}
