package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orbitview/config"
	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/ecs/debugui"
	debugui_ebiten "github.com/plus3/orbitview/ecs/debugui/ebiten"
	"github.com/plus3/orbitview/host/ebitenhost"
	"github.com/plus3/orbitview/render"
	"github.com/plus3/orbitview/window"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	overlay := flag.Bool("overlay", false, "Show the debug overlay.")
	policy := flag.String("policy", "", "Who consumes pointer motion when both buttons are held: exclusive or snapshot.")
	headless := flag.Bool("headless", false, "Run without a window and print a report.")
	duration := flag.Duration("duration", 5*time.Second, "How long a headless run lasts.")
	verbose := flag.Bool("verbose", false, "Log every pan delta.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "overlay":
			cfg.Overlay = *overlay
		case "policy":
			cfg.Gesture.Policy = *policy
		case "verbose":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := log.Default()

	if *headless {
		runHeadless(cfg, *duration, logger)
		return
	}
	runWindowed(cfg, logger)
}

func runHeadless(cfg config.Config, duration time.Duration, logger *log.Logger) {
	v, err := newViewer(cfg, window.NewRecorder(), logger)
	if err != nil {
		log.Fatalf("Failed to build viewer: %v", err)
	}

	log.Printf("Running headless for %s at %d tps...\n", duration, cfg.TPS)
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	v.scheduler.Run(ctx, time.Second/time.Duration(cfg.TPS))
	log.Println("Headless run finished.")

	if err := newReport(v, duration).Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println()
}

func runWindowed(cfg config.Config, logger *log.Logger) {
	var backend *debugui_ebiten.ImguiBackend
	if cfg.Overlay {
		backend = debugui_ebiten.NewImguiBackend(cfg.Window)
	}
	win := ebitenhost.NewWindow(cfg.Window)
	ebiten.SetTPS(cfg.TPS)

	v, err := newViewer(cfg, win, logger)
	if err != nil {
		log.Fatalf("Failed to build viewer: %v", err)
	}

	game := &ebitenhost.Game{
		Scheduler: v.scheduler,
		Registry:  v.registry,
		Renderer:  render.NewRenderer(v.registry, render.DefaultProjector()),
		HUD:       render.NewHUD(),
		Capture:   v.capture,
		Gestures:  v.gestures,
		Imgui:     backend,
	}
	if cfg.Overlay {
		game.Overlay = debugui.NewOverlaySystem(
			debugui.NewScenePanel(v.capture, v.gestures),
			debugui.NewStatsPanel(v.scheduler, 120),
		)
		v.scheduler.Register(game.Overlay)
	}

	log.Printf("Opening %q (%dx%d), drain policy %s\n", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, v.gestures.Config().Policy)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Viewer stopped: %v", err)
	}
	if v.capture.State() == control.CursorCaptured {
		log.Println("Exited with the cursor captured.")
	}
}
