package core

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score (floor of the simulated score)
	Best  int   // Best recorded score of the current user, 0 if unknown
	Lives int   // Remaining lives
	Level int   // Difficulty level, 1-based
	Phase Phase // Menu, playing or game over
}
