package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophnet/internal/cli"
	"github.com/dmitrijs2005/gophnet/internal/config"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/dmitrijs2005/gophnet/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	repo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "open storage", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error(ctx, "close storage", "error", err)
		}
	}()

	app := cli.NewApp(cfg, repo, log, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
