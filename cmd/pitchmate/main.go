package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/internal/client/auth"
	"github.com/pitchmate/pitchmate/internal/client/cli"
	"github.com/pitchmate/pitchmate/internal/client/config"
	"github.com/pitchmate/pitchmate/internal/client/iocli"
	"github.com/pitchmate/pitchmate/internal/client/posts"
	"github.com/pitchmate/pitchmate/internal/client/session"
	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	// Глобальные флаги; перекрывают значения из окружения
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg.ServerURL = *serverURL
	cfg.DBPath = *dbPath

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	io := iocli.NewStdio()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Восстанавливаем сессию с прошлого запуска
	lifetime, err := config.ParseLifetime(cfg.TokenLifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid token lifetime: %v\n", err)
		os.Exit(1)
	}

	sess := session.NewStore(boltStorage, lifetime)
	if err := sess.Rehydrate(ctx); err != nil {
		slog.Warn("failed to rehydrate session", "error", err)
	}

	clientID, err := getOrCreateClientID(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize client id: %v\n", err)
		os.Exit(1)
	}

	// Создаем API клиент с авторизационным пайплайном
	apiClient := clientapi.NewClient(cfg.ServerURL, sess, clientID)

	authService := auth.NewService(apiClient, sess)
	postsService := posts.NewService(apiClient, boltStorage, slog.Default())
	googleFlow := auth.NewGoogleFlow(cfg.GoogleClientID, cfg.GoogleClientSecret)

	app := cli.New(io, sess, authService, postsService, googleFlow)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// getOrCreateClientID возвращает стабильный идентификатор этого
// устройства, создавая его при первом запуске
func getOrCreateClientID(ctx context.Context, meta storage.MetadataStorage) (string, error) {
	clientID, err := meta.GetClientID(ctx)
	if err != nil {
		return "", err
	}
	if clientID != "" {
		return clientID, nil
	}

	clientID = uuid.New().String()
	if err := meta.SaveClientID(ctx, clientID); err != nil {
		return "", err
	}
	return clientID, nil
}

func printVersion() {
	fmt.Printf("Pitchmate Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
