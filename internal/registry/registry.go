// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"image"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-racer/internal/config"
	"github.com/vovakirdan/dodge-racer/internal/core"
)

// Game is the interface every arcade game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier, also used as the score slot.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Start begins a run from the menu or restarts after game over.
	Start() error

	// Cancel returns to the menu.
	Cancel() error

	// Press and Release report held steering input.
	Press(a core.Action)
	Release(a core.Action)

	// Tick advances the simulation to the given frame time.
	Tick(now time.Time) float64

	// Render draws the current frame. It has no side effects on the game.
	Render(dst core.Surface)

	// State returns the current score, lives, level and phase.
	State() core.GameState

	// Subscribe registers a listener for game events.
	Subscribe(l core.Listener)

	// AttachSprite installs the player image once it has been decoded.
	AttachSprite(img image.Image)

	// Canvas returns the logical drawing size.
	Canvas() (w, h float64)
}

// Deps are the collaborators handed to a game factory.
type Deps struct {
	Config   config.RacerConfig
	Seed     int64
	Accounts core.Accounts
	Scores   core.ScoreStore // Score slot of the game being created
	Notifier core.Notifier
	Logger   *log.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(deps Deps) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(deps)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a registered game, or the ID itself
// when the game is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
