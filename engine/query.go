package engine

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/zenith/core"
)

// QueryBuilder finds entities present in every With store and absent from every Without store
// Intersection starts from the smallest store
type QueryBuilder struct {
	with    []AnyStore
	without []AnyStore
}

// Query creates a new QueryBuilder
//
// Example:
//
//	bullets := w.Query().
//	    With(w.Components.Bullet).
//	    With(w.Components.Transform).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{with: make([]AnyStore, 0, 4)}
}

// With adds a required component store
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	qb.with = append(qb.with, store)
	return qb
}

// Without adds an excluded component store
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	qb.without = append(qb.without, store)
	return qb
}

// Execute returns matching entities; an empty query returns none
func (qb *QueryBuilder) Execute() []core.Entity {
	if len(qb.with) == 0 {
		return nil
	}

	sort.Slice(qb.with, func(i, j int) bool {
		return qb.with[i].Count() < qb.with[j].Count()
	})

	candidates := qb.with[0].All()
	for _, store := range qb.with[1:] {
		candidates = filter(candidates, store.Has)
		if len(candidates) == 0 {
			return candidates
		}
	}
	for _, store := range qb.without {
		candidates = filter(candidates, func(e core.Entity) bool { return !store.Has(e) })
	}
	return candidates
}

func filter(entities []core.Entity, keep func(core.Entity) bool) []core.Entity {
	out := entities[:0]
	for _, e := range entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Single returns the only entity and component in a store
// Panics when the store holds zero or more than one component
func Single[T any](store *Store[T]) (core.Entity, T) {
	entities := store.All()
	if len(entities) != 1 {
		panic(fmt.Sprintf("expected a single %s, found %d", store.Name(), len(entities)))
	}
	val, _ := store.Get(entities[0])
	return entities[0], val
}
