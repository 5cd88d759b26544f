// main.go
package main

import (
	"context"
	"log"

	"cinema-client/cmd"
	"cinema-client/internal/data/remote"
	"cinema-client/internal/data/repository"
	"cinema-client/internal/usecase"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("api_base_url", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Build the resource client; the token is an opaque credential supplied
	// by the environment.
	client := remote.NewClient(
		config.API.BaseURL,
		config.API.Timeout,
		func() string { return config.API.Token },
		logger,
	)
	api := remote.NewRemote(client, logger)

	// Entity cache and services
	store := repository.NewStore(logger)
	svc := usecase.NewService(api, store, logger)

	if err := cmd.Browse(context.Background(), svc, config.App.PageSize); err != nil {
		logger.Fatal("Browse cycle failed", zap.Error(err))
	}
}
