package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pronet/internal/terminal"
	"pronet/pkg/container"
	"pronet/pkg/logger"
)

func main() {
	// .env is a development convenience; production uses real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	logger.Init(getEnv("APP_ENV", "development"))

	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer c.Cleanup()

	app := terminal.New(c, terminal.NewStdPrompter(os.Stdin, os.Stdout), os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("session aborted")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
