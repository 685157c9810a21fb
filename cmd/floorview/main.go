package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"floorview/internal/config"
	"floorview/internal/gui"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	assets := flag.String("assets", "", "assets directory or base URL (overrides config)")
	floors := flag.Int("floors", 0, "number of floors (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *assets != "" {
		cfg.Assets = *assets
	}
	if *floors > 0 {
		cfg.Floors = *floors
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gui.NewApp(cfg, logger).Run()
}
