package core

// User identifies a signed-in player.
type User struct {
	ID          string // Stable identifier used to key scores (the e-mail)
	DisplayName string // Name shown in the UI
}

// Accounts reports who is currently signed in.
type Accounts interface {
	// CurrentUser returns the signed-in user, or false when nobody is.
	CurrentUser() (User, bool)
}

// ScoreStore persists the best score per user for a single game slot.
type ScoreStore interface {
	// BestScore returns the highest score recorded for the user, 0 if none.
	BestScore(userID string) (int, error)

	// RecordScore stores a finished run. The best score only ever grows.
	RecordScore(userID string, score int) error
}
