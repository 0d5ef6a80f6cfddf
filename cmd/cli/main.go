package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/smartscan/internal/buildinfo"
	"github.com/dmitrijs2005/smartscan/internal/client/cli"
	"github.com/dmitrijs2005/smartscan/internal/client/config"
	"github.com/dmitrijs2005/smartscan/internal/logging"
	"github.com/fatih/color"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(color.HiRedString("invalid log level: %v", err))
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatal(color.HiRedString("%v", err))
	}

	app.Run(ctx)

}
