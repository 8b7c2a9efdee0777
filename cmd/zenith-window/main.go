// Command zenith-window runs the simulation in a desktop window
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/zenith/audio"
	"github.com/lixenwraith/zenith/config"
	"github.com/lixenwraith/zenith/core"
	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/hud"
	"github.com/lixenwraith/zenith/level"
	"github.com/lixenwraith/zenith/manifest"
	"github.com/lixenwraith/zenith/parameter"
	"github.com/lixenwraith/zenith/render/gfx"
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
		fmt.Fprintf(os.Stderr, "zenith-window: %v\n", err)
		os.Exit(2)
	}

	// The window leaves the terminal free, so debug logs go to stderr
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "zenith-window: %v\n", err)
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

	player := audio.NewPlayer(audio.LoadConfig())
	if cfg.Mute {
		player.SetMuted(true)
	}
	if err := player.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
	} else {
		defer player.Stop()
	}

	game, err := manifest.NewGame(
		engine.ConfigResource{Width: cfg.Width, Height: cfg.Height, Scale: cfg.Scale},
		engine.WithSeed(cfg.Seed),
		engine.WithAudio(player),
		engine.WithCampaign(campaign),
		engine.WithStatus(status.NewRegistry()),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	if cfg.HUDAddr != "" {
		feed := hud.NewServer(game, parameter.HUDPublishInterval)
		g.Go(func() error {
			return feed.ListenAndServe(gctx, cfg.HUDAddr)
		})
	}

	window := gfx.NewGame(game, cfg.TickRate)
	window.OnMute = func() {
		log.Printf("audio muted: %v", player.ToggleMute())
	}

	// ebiten must own the main goroutine
	runErr := gfx.Run(window, "zenith")
	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
