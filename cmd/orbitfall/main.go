package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/orbitfall/engine/internal/config"
	"github.com/orbitfall/engine/internal/content"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/data"
	"github.com/orbitfall/engine/internal/input"
	"github.com/orbitfall/engine/internal/render"
	"github.com/orbitfall/engine/internal/scripting"
	"github.com/orbitfall/engine/internal/system"
	"github.com/orbitfall/engine/internal/vmath"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(mode string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             Orbitfall  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        arcade simulation core in Go       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mmode:\033[0m %s\n\n", mode)
}

func printSection(title string) {
	lineLen := max(46-runewidth.StringWidth(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(42-runewidth.StringWidth(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	cfgPath := flag.String("config", "", "path to config file (default config/orbitfall.toml)")
	mode := flag.String("mode", "", "override render mode: headless or terminal")
	seed := flag.Int64("seed", 0, "override random seed")
	flag.Parse()

	// 1. Load config
	path := "config/orbitfall.toml"
	if p := os.Getenv("ORBITFALL_CONFIG"); p != "" {
		path = p
	}
	if *cfgPath != "" {
		path = *cfgPath
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *mode != "" {
		cfg.Render.Mode = *mode
	}
	if *seed != 0 {
		cfg.Universe.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	terminal := cfg.Render.Mode == "terminal"
	if terminal && cfg.Logging.File == "" {
		cfg.Logging.File = "orbitfall.log"
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Render.Mode)

	// 3. Load content
	printSection("content")
	table, err := data.LoadArchetypes(cfg.Content.Archetypes)
	if err != nil {
		return fmt.Errorf("load archetypes: %w", err)
	}
	factory, err := content.NewFactory(table, content.Defaults{Restitution: cfg.Physics.Restitution}, log)
	if err != nil {
		return fmt.Errorf("archetypes: %w", err)
	}
	if !factory.Has(cfg.Content.Player) {
		return fmt.Errorf("player archetype %q: %w", cfg.Content.Player, content.ErrUnknownArchetype)
	}
	printStat("archetypes", table.Count())

	rng := vmath.NewRandom(cfg.Universe.Seed)
	field := vmath.Vec{X: cfg.Field.Width, Y: cfg.Field.Height}

	eng, err := scripting.NewEngine(cfg.Content.Scripts, scripting.Env{
		Random: rng,
		Width:  field.X,
		Height: field.Y,
	}, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer eng.Close()
	stages, err := eng.Stages()
	switch {
	case errors.Is(err, scripting.ErrNoStages):
		log.Warn("no stages defined, the arena stays empty", zap.String("scripts", cfg.Content.Scripts))
	case err != nil:
		return fmt.Errorf("stages: %w", err)
	}
	for _, st := range stages {
		for _, sp := range st.Spawns {
			if !factory.Has(sp.Archetype) {
				return fmt.Errorf("stage %q spawns %q: %w", st.Name, sp.Archetype, content.ErrUnknownArchetype)
			}
		}
	}
	printStat("stages", len(stages))
	printOK("content validated")

	// 4. Host surfaces
	var (
		screen tcell.Screen
		sink   render.Sink
		rec    *render.Recorder
		buf    = input.NewBuffer()
	)
	if terminal {
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("terminal init: %w", err)
		}
		defer screen.Fini()
		screen.EnableMouse()
		screen.HideCursor()
		sink = render.NewTerminal(screen)
	} else {
		rec = render.NewRecorder(1)
		sink = rec
	}

	// 5. Universe and routines
	u := coresys.NewUniverse(log)
	u.SetTimeScale(cfg.Universe.TimeScale)
	bus := event.NewBus()
	routines := system.Install(system.Deps{
		Universe:   u,
		Bus:        bus,
		Spawner:    factory,
		Random:     rng,
		Stages:     stages,
		Input:      buf,
		Sink:       sink,
		Field:      field,
		MaxStep:    cfg.Universe.MaxStep,
		Separation: cfg.Physics.Separation,
		Language:   language.English,
		Log:        log,
	})
	u.Add(factory.MustSpawn(cfg.Content.Player, field.Scale(0.5), -vmath.Tau/4))

	// 6. Run
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if !terminal && cfg.Render.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Render.Duration)
		defer cancel()
	}

	if terminal {
		var quit context.CancelFunc
		ctx, quit = context.WithCancel(ctx)
		defer quit()
		term := sink.(*render.Terminal)
		adapter := &input.TcellAdapter{Buffer: buf, ToField: term.ScreenToField}
		go pollEvents(screen, adapter, quit)
	} else {
		printSection("ready")
		printReady(fmt.Sprintf("headless run (frame: %s, duration: %s)", cfg.Universe.FrameInterval, cfg.Render.Duration))
		fmt.Println()
	}

	sched := coresys.NewTickerScheduler(cfg.Universe.FrameInterval)
	u.Start(sched)
	err = sched.Run(ctx)
	u.Stop()

	clock := u.Clock()
	log.Info("arena stopped",
		zap.Uint64("ticks", clock.Ticks),
		zap.Float64("seconds", clock.Total),
		zap.Int("score", routines.HUD.Score()),
		zap.Stringer("stage", routines.Stage.Phase()),
		zap.Int("links", u.Len()))
	if rec != nil {
		if f, ok := rec.Last(); ok {
			log.Info("last frame", zap.Int("sprites", len(f.Sprites)), zap.String("status", f.HUD.Status))
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// pollEvents feeds terminal input into the buffer until quit or the screen
// closes.
func pollEvents(screen tcell.Screen, adapter *input.TcellAdapter, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || input.KeyFor(ev) == input.KeyQuit {
				quit()
				return
			}
		}
		adapter.Handle(ev)
	}
}

// loadConfig reads path, or falls back to built-in defaults when the file
// does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zapCfg.Build()
}
