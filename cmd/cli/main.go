package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/asemenova/toolshare/internal/buildinfo"
	"github.com/asemenova/toolshare/internal/client/cli"
	"github.com/asemenova/toolshare/internal/client/config"
	"github.com/asemenova/toolshare/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
