package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/buildinfo"
	"github.com/cbdowney09-alt/WorkProof/internal/cli"
	"github.com/cbdowney09-alt/WorkProof/internal/config"
	"github.com/cbdowney09-alt/WorkProof/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}

	app.Run(context.Background())
}
