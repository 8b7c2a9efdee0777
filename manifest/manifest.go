// Package manifest wires the full system set into a game context
package manifest

import (
	"fmt"

	"github.com/lixenwraith/zenith/engine"
)

// RegisterSystems constructs every system in Systems and adds it to the context
// Must be called after NewGameContext and before Start
func RegisterSystems(ctx *engine.GameContext) {
	for _, def := range Systems {
		ctx.AddSystem(def.New(ctx.World))
	}
}

// NewGame builds a context with every system registered and started
func NewGame(view engine.ConfigResource, opts ...engine.Option) (*engine.GameContext, error) {
	ctx := engine.NewGameContext(view, opts...)
	RegisterSystems(ctx)
	if err := ctx.Start(); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	return ctx, nil
}
