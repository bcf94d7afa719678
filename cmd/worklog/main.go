package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"worklog/internal/cli"
	"worklog/internal/db"
	"worklog/internal/repository"
	"worklog/internal/service"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logger := newLogger()

	// Determine DB path: env var or default ~/.worklog/worklog.db
	dbPath := os.Getenv("WORKLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".worklog", "worklog.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository and services
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, logger),
		Stats:    service.NewStatsService(sessionRepo, logger),
		Backup:   service.NewBackupService(sessionRepo, uow, logger),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds the process logger. Level comes from WORKLOG_LOG
// (debug, info, warn, error); output goes to stderr so it never mixes
// with command output or the TUI.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch os.Getenv("WORKLOG_LOG") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
