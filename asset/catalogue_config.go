package asset

// DefaultCatalogueConfig describes every sprite sheet as a frame grid
const DefaultCatalogueConfig = `
[sprite."textures/player.png"]
frame = [50, 43]
grid = [4, 1]

[sprite."textures/enemies/basic.png"]
frame = [50, 43]
grid = [4, 1]

[sprite."textures/enemies/strafer.png"]
frame = [48, 40]
grid = [4, 1]

[sprite."textures/enemies/bomber.png"]
frame = [64, 52]
grid = [4, 1]

[sprite."textures/enemies/gunner.png"]
frame = [56, 48]
grid = [4, 1]

[sprite."textures/bullets/small.png"]
frame = [6, 6]
grid = [1, 1]

[sprite."textures/bullets/bomb.png"]
frame = [12, 12]
grid = [1, 1]

[sprite."textures/explosion.png"]
frame = [96, 96]
grid = [12, 1]

[sprite."textures/starfield/small.png"]
frame = [2, 2]
grid = [1, 1]

[sprite."textures/starfield/medium.png"]
frame = [4, 4]
grid = [1, 1]

[sprite."textures/starfield/large.png"]
frame = [6, 6]
grid = [1, 1]

[sprite."textures/ui/heart.png"]
frame = [16, 16]
grid = [1, 1]

[sprite."textures/ui/heart_empty.png"]
frame = [16, 16]
grid = [1, 1]
`
