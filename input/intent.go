package input

// Intent is a front end command that is not a held game control
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentRestart
	IntentToggleMute
)
