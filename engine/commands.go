package engine

import "github.com/lixenwraith/zenith/core"

// Commands buffers structural changes until the scheduler flush point
// Spawned IDs are reserved immediately but the entity is not alive, and has no components, before Flush
type Commands struct {
	world    *World
	ops      []command
	despawns []core.Entity
}

type command struct {
	entity core.Entity
	spawn  bool
	apply  func()
}

// EntityCommands targets one entity in the buffer
type EntityCommands struct {
	cmds   *Commands
	entity core.Entity
}

func newCommands(w *World) *Commands {
	return &Commands{
		world:    w,
		ops:      make([]command, 0, 64),
		despawns: make([]core.Entity, 0, 32),
	}
}

// Spawn reserves a new entity and queues its creation
func (c *Commands) Spawn() *EntityCommands {
	e := c.world.reserveEntity()
	c.ops = append(c.ops, command{entity: e, spawn: true})
	return &EntityCommands{cmds: c, entity: e}
}

// Entity targets an existing entity for deferred insertion
func (c *Commands) Entity(e core.Entity) *EntityCommands {
	return &EntityCommands{cmds: c, entity: e}
}

// Despawn queues entity removal; despawning an unknown or already removed entity is a no-op
func (c *Commands) Despawn(e core.Entity) {
	c.despawns = append(c.despawns, e)
}

// ID returns the reserved entity
func (ec *EntityCommands) ID() core.Entity {
	return ec.entity
}

// Insert queues setting a component on the targeted entity
func Insert[T any](ec *EntityCommands, store *Store[T], val T) *EntityCommands {
	e := ec.entity
	ec.cmds.ops = append(ec.cmds.ops, command{
		entity: e,
		apply:  func() { store.Set(e, val) },
	})
	return ec
}

// Remove queues removing a component from the targeted entity
func Remove[T any](ec *EntityCommands, store *Store[T]) *EntityCommands {
	e := ec.entity
	ec.cmds.ops = append(ec.cmds.ops, command{
		entity: e,
		apply:  func() { store.Remove(e) },
	})
	return ec
}

// Pending returns the number of buffered operations
func (c *Commands) Pending() int {
	return len(c.ops) + len(c.despawns)
}

// Flush applies spawns and inserts in request order, then despawns
// Inserts targeting entities that are not alive at apply time are dropped
func (c *Commands) Flush() int {
	n := c.Pending()
	if n == 0 {
		return 0
	}

	for i := range c.ops {
		op := &c.ops[i]
		switch {
		case op.spawn:
			c.world.markAlive(op.entity)
		case c.world.Alive(op.entity):
			op.apply()
		}
		op.apply = nil
	}
	c.ops = c.ops[:0]

	for _, e := range c.despawns {
		c.world.DestroyEntity(e)
	}
	c.despawns = c.despawns[:0]

	return n
}
