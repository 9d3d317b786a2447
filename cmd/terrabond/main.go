package main

import (
	"context"
	"log"
	"os"

	"github.com/terrabond/terrabond-cli/internal/buildinfo"
	"github.com/terrabond/terrabond-cli/internal/client/cli"
	"github.com/terrabond/terrabond-cli/internal/client/config"
	"github.com/terrabond/terrabond-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTerminalLogger(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
