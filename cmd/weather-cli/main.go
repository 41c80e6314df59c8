package main

import (
	"context"
	"log"
	"os"

	"github.com/i474232898/weather-lookup/internal/cli"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	presenter := cli.NewTerminalPresenter(os.Stdout, os.Stderr)
	provs := providers.FromConfig(cfg)
	service := weather.NewService(provs.Resolver, provs.Fetcher, presenter, provs.Locator, cfg.DefaultUnit)

	cmd := cli.New(service, presenter, cfg.SuggestLimit)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("exec: %s\n", err)
		os.Exit(1)
	}
}
