package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/desktop"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/sprite"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	logger, closer, err := settings.Log.NewLogger(os.Stderr, "desktop")
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}
	defer closer.Close()

	sheet, err := sprite.Load()
	if err != nil {
		logger.Fatal("failed to load sprites", "err", err)
	}
	assets, err := object.LoadAssets(sheet)
	if err != nil {
		logger.Fatal("failed to load assets", "err", err)
	}

	app := loop.NewApp(assets, loop.AppOptions{
		Logger:     logger,
		Seed:       time.Now().UnixNano(),
		Background: sheet.Background(),
	})

	logger.Info("opening window", "title", settings.Desktop.Title, "scale", settings.Desktop.Scale)
	if err := desktop.Run(app, settings.Desktop.Title, settings.Desktop.Scale); err != nil {
		logger.Fatal("window error", "err", err)
	}
}
