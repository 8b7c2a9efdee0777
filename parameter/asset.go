package parameter

// Sprite asset paths
const (
	AssetPlayer      = "textures/player.png"
	AssetEnemyBasic  = "textures/enemies/basic.png"
	AssetEnemyStrafe = "textures/enemies/strafer.png"
	AssetEnemyBomber = "textures/enemies/bomber.png"
	AssetEnemyGunner = "textures/enemies/gunner.png"
	AssetBulletSmall = "textures/bullets/small.png"
	AssetBulletBomb  = "textures/bullets/bomb.png"
	AssetExplosion   = "textures/explosion.png"
	AssetStarSmall   = "textures/starfield/small.png"
	AssetStarMedium  = "textures/starfield/medium.png"
	AssetStarLarge   = "textures/starfield/large.png"
	AssetHeart       = "textures/ui/heart.png"
	AssetHeartEmpty  = "textures/ui/heart_empty.png"
)

// Sound cue paths
const (
	CueFire      = "sounds/fire.wav"
	CueExplosion = "sounds/explosion.wav"
	CueHit       = "sounds/hit.wav"
	CueWave      = "sounds/wave.wav"
)
