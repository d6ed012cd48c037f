package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/derivepass/internal/buildinfo"
	"github.com/dmitrijs2005/derivepass/internal/cli"
	"github.com/dmitrijs2005/derivepass/internal/config"
	"github.com/dmitrijs2005/derivepass/internal/logging"
	"github.com/google/uuid"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel).With("session_id", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
