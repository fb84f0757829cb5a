// Noël: a festive name rotation countdown for the terminal.
//
// Usage:
//
//	noel [-config noel.yaml] [-verbose] [-quiet] [-no-chime]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/hammamikhairi/noel/internal/ambience"
	"github.com/hammamikhairi/noel/internal/chime"
	"github.com/hammamikhairi/noel/internal/config"
	"github.com/hammamikhairi/noel/internal/display"
	"github.com/hammamikhairi/noel/internal/domain"
	"github.com/hammamikhairi/noel/internal/logger"
	"github.com/hammamikhairi/noel/internal/rotation"
	"github.com/hammamikhairi/noel/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to the YAML config (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".noel-logs/noel.log", "file to write logs to (use \"stderr\" to log to console)")
	noChime := flag.Bool("no-chime", false, "do not ring a bell when the name changes")
	seed := flag.Int64("seed", 0, "snowfall seed (0 picks a random one)")
	flag.Parse()

	// Direct logs to a file by default so the display stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	log := logger.New(logger.ParseLevel(*verbose, *quiet), logOut)

	path, isDefault := config.ResolvePath(*configPath)
	cfg, err := config.Load(path, isDefault)
	if err != nil {
		return err
	}
	log.Info("config loaded (%d names, %ds per name, source=%s)", len(cfg.Names), cfg.DurationSeconds, path)

	// Set up context, cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	var announcer domain.Announcer = chime.NewNoOp(log.Named("chime"))
	if cfg.Chime && !*noChime {
		if bell, err := newBell(log.Named("chime")); err != nil {
			log.Warn("chime disabled: %v", err)
		} else {
			bell.Start(ctx)
			announcer = bell
		}
	}

	ctrl, err := rotation.New(cfg.Names, cfg.DurationSeconds, log.Named("rotation"),
		rotation.WithAnnouncer(announcer),
	)
	if err != nil {
		return fmt.Errorf("rotation: %w", err)
	}

	countdown := timer.New(ctrl, log.Named("timer"))
	defer countdown.Stop()

	if *seed == 0 {
		*seed = ambience.NewSeed()
	}
	field := ambience.NewField(ambience.Generate(cfg.Snowflakes, *seed), time.Now())
	log.Debug("snowfall generated (%d flakes, seed=%d)", field.Len(), *seed)

	ui := display.NewUI(countdown, field, cfg.Title, log.Named("display"))

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(ctx); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("display: %v", err)
		return fmt.Errorf("display: %w", err)
	}
	cancel()
	return nil
}

// newBell opens the audio device and prepares the chime.
func newBell(log *logger.Logger) (*chime.Bell, error) {
	player, err := chime.NewPlayer(log)
	if err != nil {
		return nil, err
	}
	return chime.NewBell(player, log)
}
