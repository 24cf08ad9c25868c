package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/arena-brawl/audio"
	"github.com/lixenwraith/arena-brawl/config"
	"github.com/lixenwraith/arena-brawl/core"
	"github.com/lixenwraith/arena-brawl/engine"
)

var (
	configFlag   = flag.String("config", "", "Config file path (default arena.toml when present)")
	fpsFlag      = flag.Int("fps", 0, "Frame rate")
	motionFlag   = flag.String("motion", "", "Motion mode: frame, scaled")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 seeds from time")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/arena.log")
	muteFlag     = flag.Bool("mute", false, "Start with sound off")
	headlessFlag = flag.Bool("headless", false, "Run rounds without a terminal and print the tally")
	playersFlag  = flag.Int("players", 4, "Players per headless round")
	roundsFlag   = flag.Int("rounds", 10, "Headless rounds")
)

func main() {
	os.Exit(run())
}

func run() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, source, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		return 1
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config from %s: %+v", source, cfg)

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runBatch(ctx, os.Stdout, cfg, batchConfig{Players: *playersFlag, Rounds: *roundsFlag}); err != nil {
			fmt.Fprintf(os.Stderr, "arena: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runInteractive(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags overrides config with flags given explicitly on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fpsFlag
		case "motion":
			cfg.Motion = *motionFlag
		case "color":
			cfg.Color = *colorFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "mute":
			cfg.Sound = !*muteFlag
		}
	})
}

func runInteractive(cfg config.Config) error {
	switch cfg.Color {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Sound)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed, continuing without sound: %v", err)
	}
	defer sound.Cleanup()

	return newGame(screen, cfg, sound, engine.NewTimeProvider()).run()
}
