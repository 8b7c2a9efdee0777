package asset

// DefaultMatchFSMConfig is the match state machine: Playing, Paused and GameOver under a shared Match parent
// Actions are registered by the match system
const DefaultMatchFSMConfig = `
initial = "Playing"

[states.Match]
on_enter = [{ action = "BeginSession" }]

[states.Playing]
parent = "Match"
on_enter = [{ action = "SetMatchState", arg = "playing" }]
transitions = [
    { trigger = "EventPauseToggle", target = "Paused" },
    { trigger = "EventPlayerDied", target = "GameOver" },
]

[states.Paused]
parent = "Match"
on_enter = [{ action = "SetMatchState", arg = "paused" }]
transitions = [
    { trigger = "EventPauseToggle", target = "Playing" },
]

[states.GameOver]
parent = "Match"
on_enter = [{ action = "SetMatchState", arg = "gameover" }]
on_exit = [{ action = "ResetSession" }]
transitions = [
    { trigger = "EventRestart", target = "Playing" },
]
`
