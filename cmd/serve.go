package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/cache"
	"github.com/Dosada05/tournament-progression/config"
	"github.com/Dosada05/tournament-progression/db"
	"github.com/Dosada05/tournament-progression/handlers"
	"github.com/Dosada05/tournament-progression/repositories"
	api "github.com/Dosada05/tournament-progression/routes"
	"github.com/Dosada05/tournament-progression/services"
	"github.com/Dosada05/tournament-progression/storage"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Args:  cobra.ExactArgs(0),
	Short: "Start the HTTP API and the WebSocket hub",
}

func init() {
	migrate := serveCmd.Flags().Bool("migrate", false, "apply pending migrations before serving")

	serveCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return serve(*migrate)
	}
}

func serve(runMigrations bool) error {
	logger := slog.Default()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()

	if runMigrations {
		if _, err := db.Migrate(ctx, dbConn, logger); err != nil {
			return err
		}
	}

	// Кэш таблиц групп (Redis) опционален.
	var standingsCache services.StandingsCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()
		standingsCache = cache.NewRedisStandings(client, cfg.StandingsCacheTTL)
		logger.Info("standings cache enabled", slog.Duration("ttl", cfg.StandingsCacheTTL))
	} else {
		logger.Warn("REDIS_URL is not set, standings cache disabled")
	}

	// Объектное хранилище (Cloudflare R2): логотипы и архив итогов.
	var uploader storage.FileUploader
	if cfg.R2.Complete() {
		uploader, err = storage.NewR2Uploader(ctx, cfg.R2, logger)
		if err != nil {
			return fmt.Errorf("initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 configuration incomplete, logo uploads and placement archives disabled")
	}

	wsHub := brackets.NewHub(logger)

	// Инициализация репозиториев
	tx := repositories.NewPostgresTransactor(dbConn, logger)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	groupRepo := repositories.NewPostgresGroupRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	// Инициализация сервисов
	groupService := services.NewGroupService(tx, tournamentRepo, groupRepo, matchRepo, wsHub, standingsCache, logger)
	tournamentService := services.NewTournamentService(tx, tournamentRepo, teamRepo, matchRepo, groupService, logger)
	matchService := services.NewMatchService(tx, tournamentRepo, groupRepo, matchRepo, wsHub, standingsCache, logger)
	bracketService := services.NewBracketService(tx, tournamentRepo, matchRepo, uploader, wsHub, logger)
	teamService := services.NewTeamService(teamRepo, uploader, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Options{
		JWTSecret:      []byte(cfg.JWTSecretKey),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	}, api.Handlers{
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Team:       handlers.NewTeamHandler(teamService),
		Group:      handlers.NewGroupHandler(groupService),
		Match:      handlers.NewMatchHandler(matchService),
		Bracket:    handlers.NewBracketHandler(bracketService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, tournamentService, cfg.CORSAllowedOrigins, logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wsHub.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	// Ожидание сигнала завершения
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			_ = server.Close()
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application exited")
	return nil
}
