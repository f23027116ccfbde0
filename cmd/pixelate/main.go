// Command pixelate runs the LED matrix game console in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/VA24d/Pixelate/config"
	"github.com/VA24d/Pixelate/console"
	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/fontstore"
	"github.com/VA24d/Pixelate/logger"
	"github.com/VA24d/Pixelate/remote"
	"github.com/VA24d/Pixelate/score"
	"github.com/VA24d/Pixelate/sound"
	"github.com/VA24d/Pixelate/sprite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pixelate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Nop()
	if cfg.LogFile != "" {
		fileLog, closer, err := logger.New(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer closer.Close()
		log = fileLog
	}

	sprites := sprite.NewStore(cfg.SpritesPath())
	sprites.Load()
	fonts := fontstore.NewStore(cfg.FontOverridesPath())
	fonts.Load()

	// Scores and sound are both optional: the console plays fine with
	// neither a writable disk nor an audio device.
	scores, err := score.Open(cfg.ScoresPath())
	if err != nil {
		log.Error("open score store", "path", cfg.ScoresPath(), "error", err)
		scores = nil
	} else {
		defer scores.Close()
	}

	player := sound.NewPlayer()
	if cfg.Sound {
		if err := player.Init(); err != nil {
			log.Error("init audio", "error", err)
		}
	} else {
		player.SetEnabled(false)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *remote.Hub
	if cfg.Listen != "" {
		hub = remote.NewHub(log)
		srv := remote.NewServer(cfg.Listen, hub, log)
		srv.Start(ctx)
		defer srv.Shutdown()
		log.Info("remote viewer listening", "addr", cfg.Listen)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()

	c := console.New(screen, console.Options{
		FPS:      cfg.FPS,
		Sound:    player,
		Scores:   scores,
		Sprites:  sprites,
		Fonts:    fonts,
		Hub:      hub,
		PhotoDir: cfg.PhotoDir,
		Log:      log,
	})
	log.Info("console started", "fps", cfg.FPS, "data", cfg.DataDir)
	c.Run(ctx)
	log.Info("console stopped")
	return nil
}
