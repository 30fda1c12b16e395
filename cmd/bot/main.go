package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlebot/internal/clock"
	"wordlebot/internal/config"
	"wordlebot/internal/handler"
	"wordlebot/internal/repository/kv"
	"wordlebot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Wordle Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Build the game clock: real time in the reference timezone, or a
	// pinned instant when the fake-date mode is configured
	gameClock, err := buildClock(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build game clock", zap.Error(err))
	}

	// Connect to database with retries
	db, err := connectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established",
		zap.String("driver", cfg.Database.Driver),
	)

	// Run migrations
	if err := runMigrations(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	store := kv.NewSQLStore(db)
	userRepo := kv.NewUserRepo(store)
	historyRepo := kv.NewHistoryRepo(store)
	statsRepo := kv.NewStatsRepo(store)

	// Initialize services
	sessionService := service.NewSessionService(userRepo)
	gameService := service.NewGameService(historyRepo, statsRepo, gameClock, logger)
	replayService := service.NewReplayService(historyRepo, statsRepo, gameClock, logger)
	statsService := service.NewStatsService(statsRepo, historyRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, sessionService, gameService, replayService, statsService, gameClock, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// buildClock returns the production clock, or a fixed one when
// GAME_FAKE_DATE is set
func buildClock(cfg *config.Config, logger *zap.Logger) (clock.Clock, error) {
	reference, err := clock.NewReference()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference timezone: %w", err)
	}

	fakeTime, ok, err := cfg.FakeTime(reference.Now().Location())
	if err != nil {
		return nil, err
	}
	if ok {
		logger.Warn("Running with a pinned fake date",
			zap.Time("fake_now", fakeTime),
		)
		return clock.NewFixed(fakeTime), nil
	}

	return reference, nil
}

// connectDatabase opens the configured database with retries
func connectDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open(cfg.Database.Driver, cfg.DSN())
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		if cfg.Database.Driver == "postgres" {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(5 * time.Minute)
		} else {
			// sqlite serializes writers; one connection avoids lock errors
			db.SetMaxOpenConns(1)
		}

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations for the configured driver
func runMigrations(db *sql.DB, driverName string, logger *zap.Logger) error {
	var driver database.Driver
	var err error

	if driverName == "postgres" {
		driver, err = postgresdb.WithInstance(db, &postgresdb.Config{})
	} else {
		driver, err = sqlitedb.WithInstance(db, &sqlitedb.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		driverName,
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
