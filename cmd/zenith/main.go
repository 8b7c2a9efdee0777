package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/zenith/audio"
	"github.com/lixenwraith/zenith/config"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/event"
	"github.com/lixenwraith/zenith/hud"
	"github.com/lixenwraith/zenith/input"
	"github.com/lixenwraith/zenith/level"
	"github.com/lixenwraith/zenith/manifest"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/render/tui"
	"github.com/lixenwraith/zenith/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "zenith: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "zenith: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	campaign := level.DefaultCampaign()
	if cfg.Campaign != "" {
		c, err := level.Load(cfg.Campaign)
		if err != nil {
			return err
		}
		campaign = c
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.ParseBindings(cfg.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		keys.Merge(override)
	}

	player := audio.NewPlayer(audio.LoadConfig())
	if cfg.Mute {
		player.SetMuted(true)
	}
	if err := player.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
	} else {
		defer player.Stop()
	}

	stats := status.NewRegistry()
	game, err := manifest.NewGame(
		engine.ConfigResource{Width: cfg.Width, Height: cfg.Height, Scale: cfg.Scale},
		engine.WithSeed(cfg.Seed),
		engine.WithAudio(player),
		engine.WithCampaign(campaign),
		engine.WithStatus(stats),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	orchestrator := tui.NewDefaultOrchestrator(screen, tui.NewPalette(cfg.ColorMode))

	held := input.NewHeldKeys(parameter.HoldTimeout)
	interval := time.Second / time.Duration(cfg.TickRate)
	scheduler, tickDone := engine.NewClockScheduler(game, nil, interval, func(now time.Time) {
		game.SetInput(held.Snapshot(now))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.HUDAddr != "" {
		feed := hud.NewServer(game, parameter.HUDPublishInterval)
		g.Go(func() error {
			return feed.ListenAndServe(gctx, cfg.HUDAddr)
		})
	}

	g.Go(func() error {
		defer cancel()
		return loop(gctx, screen, game, orchestrator, keys, held, player, tickDone)
	})

	scheduler.Start()
	defer scheduler.Stop()
	log.Printf("zenith started: %gx%g @ %d Hz, seed %d", cfg.Width, cfg.Height, cfg.TickRate, cfg.Seed)

	err = g.Wait()
	played, dropped := player.Stats()
	log.Printf("zenith stopped after %d ticks, cues played %d dropped %d", scheduler.TickCount(), played, dropped)
	return err
}

// loop owns the screen: it renders after every completed tick and routes key events until quit
func loop(ctx context.Context, screen tcell.Screen, game *engine.GameContext, orchestrator *tui.Orchestrator,
	keys *input.KeyTable, held *input.HeldKeys, player *audio.Player, tickDone <-chan struct{}) error {

	events := make(chan tcell.Event, 256)
	core.Go(func() { pumpEvents(ctx, screen, events) })

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-tickDone:
			orchestrator.RenderFrame(game)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				orchestrator.Resize()
			case *tcell.EventKey:
				b, shift, ok := tui.ResolveKey(keys, ev)
				if !ok {
					continue
				}
				now := ev.When()
				if shift {
					held.Press(input.KeyPrecision, now)
				}
				if b.Held {
					held.Press(b.Key, now)
					continue
				}
				switch b.Intent {
				case input.IntentQuit:
					return nil
				case input.IntentPause:
					game.PushEvent(event.EventPauseToggle, nil)
				case input.IntentRestart:
					game.PushEvent(event.EventRestart, nil)
				case input.IntentToggleMute:
					muted := player.ToggleMute()
					log.Printf("audio muted: %v", muted)
				}
			}
		}
	}
}

// pumpEvents forwards terminal events until Fini or until ctx ends
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
