package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/sprite"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// Anything written to stderr would corrupt the screen, so only log to a file.
	logger, closer, err := settings.Log.NewLogger(io.Discard, "game")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sheet, err := sprite.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load sprites: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, sheet, loop.Options{
		Logger:  logger,
		Profile: termenv.TrueColor,
		Seed:    time.Now().UnixNano(),
	})
	if err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
