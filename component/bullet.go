package component

// BulletKind selects projectile sprite and stats
type BulletKind uint8

const (
	BulletSmall BulletKind = iota
	BulletBomb
)

// BulletComponent marks an entity as a projectile
type BulletComponent struct {
	Kind BulletKind
}
