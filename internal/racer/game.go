package racer

import (
	"github.com/vovakirdan/dodge-racer/internal/registry"
)

// ID is the registry identifier and score slot of Dodge Racer.
const ID = "racer"

// Title is the display name.
const Title = "Dodge Racer"

// ID returns the unique identifier for this game.
func (s *Session) ID() string {
	return ID
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return Title
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(deps registry.Deps) (registry.Game, error) {
		s, err := NewSession(Options{
			Config:   deps.Config,
			Seed:     deps.Seed,
			Accounts: deps.Accounts,
			Scores:   deps.Scores,
			Notifier: deps.Notifier,
			Logger:   deps.Logger,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

var _ registry.Game = (*Session)(nil)
