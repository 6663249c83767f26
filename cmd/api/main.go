package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/iamasit07/connect4-engine/internal/repository/redis"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/cleanup"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-engine/internal/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	// 1. Config and logging
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		log.Info().Msg("No .env file found")
	}

	// 2. Engine options, plus the Redis move cache when available
	engineOpts, err := bot.ConfigOptions(cfg.SearchDepth, cfg.Difficulty, cfg.TieBreak, cfg.RandomSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid engine configuration")
	}

	redisClient, redisEnabled := redis.InitRedis(cfg)
	if redisEnabled {
		defer redisClient.Close()
		cache := redis.NewMoveCache(redis.NewRedisCache(redisClient), cfg.MoveCacheTTL)
		engineOpts = append(engineOpts, bot.WithCache(cache))
	}

	// 3. Engine and sessions
	engine := bot.NewEngine(engineOpts...)
	log.Info().
		Int("depth", engine.Depth()).
		Str("tie_break", engine.TieBreak().String()).
		Bool("human_first", cfg.HumanFirst).
		Msg("engine ready")

	sessionManager := game.NewSessionManager()
	gameService := game.NewService(engine, sessionManager, bot.ParseDifficulty(cfg.Difficulty), engine.Depth(), cfg.HumanFirst)

	// 4. Background workers
	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.SessionIdleTimeout)
	go cleanupWorker.Start(ctx)

	// 5. Handlers
	wsHandler := websocket.NewHandler(gameService, cfg.AllowedOrigins)
	gamesHandler := transportHttp.NewGamesHandler(sessionManager)
	healthHandler := transportHttp.NewHealthHandler(sessionManager, redisEnabled)

	// 6. Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/api/health", healthHandler.Health)
	router.GET("/api/games", gamesHandler.GetActiveGames)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server is shutting down...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
