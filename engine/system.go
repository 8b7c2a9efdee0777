package engine

// Stage is a fixed position in the per-frame pipeline
type Stage uint8

const (
	StageInput Stage = iota
	StageTimers
	StageAcceleration
	StageIntegrate
	StageBoundary
	StageCollision
	StageLifecycle
	StageWave
	StageState
	stageCount
)

var stageNames = [stageCount]string{
	"input", "timers", "acceleration", "integrate", "boundary",
	"collision", "lifecycle", "wave", "state",
}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return "unknown"
}

// MatchState is the top-level match phase
type MatchState uint8

const (
	MatchPlaying MatchState = iota
	MatchPaused
	MatchGameOver
)

func (m MatchState) String() string {
	switch m {
	case MatchPlaying:
		return "playing"
	case MatchPaused:
		return "paused"
	case MatchGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StateMask is a set of match states a system runs in
type StateMask uint8

const (
	ActivePlaying  StateMask = 1 << MatchPlaying
	ActivePaused   StateMask = 1 << MatchPaused
	ActiveGameOver StateMask = 1 << MatchGameOver

	// ActiveSimulation covers gameplay systems frozen by pause and game over
	ActiveSimulation = ActivePlaying
	// ActiveEffects keeps decorative and effect systems running after game over
	ActiveEffects = ActivePlaying | ActiveGameOver
	ActiveAlways  = ActivePlaying | ActivePaused | ActiveGameOver
)

// Has reports whether the mask includes the state
func (m StateMask) Has(s MatchState) bool {
	return m&(1<<s) != 0
}

// System is an interface that all systems must implement
type System interface {
	// Init resets internal state; called once when the game context starts
	Init()
	// Name is used in diagnostics and conflict reports
	Name() string
	Stage() Stage
	// Priority orders systems within a stage, lower runs first
	Priority() int
	ActiveIn() StateMask
	Update()
}

// AccessDeclarer is implemented by systems that declare the stores they touch
// The scheduler validates that same-stage systems do not overlap on writes
type AccessDeclarer interface {
	Access() Access
}

// Access lists stores a system reads and writes
// With and Without mirror the system's query filters: two systems requiring
// a store the other excludes touch disjoint entities and never conflict
type Access struct {
	Reads   []AnyStore
	Writes  []AnyStore
	With    []AnyStore
	Without []AnyStore
}

// Read appends read stores
func (a Access) Read(stores ...AnyStore) Access {
	a.Reads = append(a.Reads, stores...)
	return a
}

// Write appends written stores
func (a Access) Write(stores ...AnyStore) Access {
	a.Writes = append(a.Writes, stores...)
	return a
}

// Require appends stores every matched entity has
func (a Access) Require(stores ...AnyStore) Access {
	a.With = append(a.With, stores...)
	return a
}

// Exclude appends stores no matched entity has
func (a Access) Exclude(stores ...AnyStore) Access {
	a.Without = append(a.Without, stores...)
	return a
}
