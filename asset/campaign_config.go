package asset

// DefaultCampaignConfig is the built-in wave table
// Wave 0 mirrors the classic opening: basic enemies only, ten of them, 0.8 to 3.2 seconds apart
const DefaultCampaignConfig = `
[[wave]]
delay_ms = [800, 3200]
quota = 10
enemies = [{ kind = "basic", weight = 1 }]

[[wave]]
delay_ms = [600, 2400]
quota = 15
enemies = [
    { kind = "basic", weight = 3 },
    { kind = "strafer", weight = 2 },
    { kind = "gunner", weight = 1 },
]

[[wave]]
delay_ms = [400, 1800]
quota = 20
enemies = [
    { kind = "basic", weight = 2 },
    { kind = "strafer", weight = 2 },
    { kind = "bomber", weight = 1 },
    { kind = "gunner", weight = 2 },
]
`
