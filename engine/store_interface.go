package engine

import "github.com/lixenwraith/zenith/core"

// AnyStore provides type-erased operations for lifecycle management and queries
// World uses it for entity destruction; the scheduler uses store identity for access validation
type AnyStore interface {
	Name() string
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
	All() []core.Entity
}
