package storage

import (
	"fmt"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// Scoreboard is the score slot of one game, seen through core.ScoreStore.
// Every failure is reported as ErrStorageUnavailable.
type Scoreboard struct {
	store  *Store
	gameID string
}

// Scoreboard returns the score slot of the given game.
func (s *Store) Scoreboard(gameID string) *Scoreboard {
	return &Scoreboard{store: s, gameID: gameID}
}

// BestScore returns the user's best score in this slot.
func (b *Scoreboard) BestScore(userID string) (int, error) {
	if b == nil || b.store == nil {
		return 0, ErrStorageUnavailable
	}
	best, err := b.store.BestScore(b.gameID, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return best, nil
}

// RecordScore appends a finished run. The best score is the maximum over
// all recorded runs, so it never decreases.
func (b *Scoreboard) RecordScore(userID string, score int) error {
	if b == nil || b.store == nil {
		return ErrStorageUnavailable
	}
	if _, err := b.store.SaveScore(b.gameID, userID, score); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

var _ core.ScoreStore = (*Scoreboard)(nil)
