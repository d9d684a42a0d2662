package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/repository/memory"
	"github.com/iamasit07/connect4-ai/internal/repository/postgres"
	"github.com/iamasit07/connect4-ai/internal/repository/redis"
	"github.com/iamasit07/connect4-ai/internal/service/cleanup"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-ai/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()
	config.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Paused game store
	var store game.SessionStore
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, keeping the paused game in memory")
		store = memory.NewSessionStore()
	} else {
		defer redisClient.Close()
		store = redis.NewSessionStore(redisClient, cfg.SessionTTL)
	}

	// 2. Tally and history
	var (
		tally   game.TallyRepository
		history game.HistoryRepository
	)
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, tally and history are kept in memory")
		tally = memory.NewTallyRepo()
		history = memory.NewHistoryRepo()
	} else {
		db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolOptions{
			MaxOpenConns:       cfg.DBMaxOpenConns,
			MaxIdleConns:       cfg.DBMaxIdleConns,
			ConnMaxLifetimeMin: cfg.DBConnMaxLifetimeMin,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("database unreachable")
		}
		defer db.Close()

		log.Info().Msg("running database migrations")
		if err := postgres.RunMigrations(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		tally = postgres.NewTallyRepo(db)
		history = postgres.NewGameRepo(db)
	}

	// 3. Game service
	gameService := game.NewService(store, tally, history, game.Options{
		SearchDepth:       cfg.SearchDepth,
		DefaultDifficulty: cfg.DefaultDifficulty,
	})
	defer gameService.Wait()

	// 4. HTTP
	gin.SetMode(gin.ReleaseMode)
	router := transportHttp.NewRouter(transportHttp.NewGameHandler(gameService), cfg.AllowedOrigins)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	worker := cleanup.NewWorker(history, time.Duration(cfg.HistoryRetentionDays)*24*time.Hour, cfg.CleanupInterval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Int("depth", cfg.SearchDepth).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("server is shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server exited gracefully")
}
