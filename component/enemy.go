package component

import "fmt"

// EnemyKind selects an enemy archetype
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyStrafer
	EnemyBomber
	EnemyGunner
)

var enemyKindNames = [...]string{
	EnemyBasic:   "basic",
	EnemyStrafer: "strafer",
	EnemyBomber:  "bomber",
	EnemyGunner:  "gunner",
}

func (k EnemyKind) String() string {
	if int(k) < len(enemyKindNames) {
		return enemyKindNames[k]
	}
	return fmt.Sprintf("enemy(%d)", k)
}

// ParseEnemyKind resolves a lowercase kind name
func ParseEnemyKind(name string) (EnemyKind, error) {
	for i, n := range enemyKindNames {
		if n == name {
			return EnemyKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", name)
}

// EnemyComponent marks an entity as a hostile ship
type EnemyComponent struct {
	Kind EnemyKind
}
