package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// Hold timing. Terminals report a held key as one press, a pause, then a
// stream of repeats, and never report the release.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// HoldTracker turns key presses into press and release events for steering.
// A direction counts as held until its key has been silent for the hold
// window; the first window is longer to bridge the auto-repeat delay.
type HoldTracker struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial:  initial,
		repeat:   repeat,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press records a key event for a steering action at time now. It reports
// whether the action just became held, and returns the opposite direction
// if pressing this one released it (ActionNone otherwise).
func (h *HoldTracker) Press(a core.Action, now time.Time) (started bool, released core.Action) {
	released = core.ActionNone
	if opp := opposite(a); opp != core.ActionNone {
		if _, ok := h.deadline[opp]; ok {
			delete(h.deadline, opp)
			released = opp
		}
	}

	if _, ok := h.deadline[a]; ok {
		h.deadline[a] = now.Add(h.repeat)
		return false, released
	}
	h.deadline[a] = now.Add(h.initial)
	return true, released
}

// Expire releases every action whose key has been silent past its window.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var out []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if d, ok := h.deadline[a]; ok && now.After(d) {
			delete(h.deadline, a)
			out = append(out, a)
		}
	}
	return out
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.deadline[a]
	return ok
}

// Reset releases everything without reporting it.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// gameKeyMap lists the in-game bindings for the help bar.
type gameKeyMap struct {
	Steer      key.Binding
	Start      key.Binding
	Menu       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Start, k.Menu, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultGameKeyMap() gameKeyMap {
	return gameKeyMap{
		Steer: key.NewBinding(
			key.WithKeys("left", "right", "a", "d", "h", "l"),
			key.WithHelp("←/→", "steer"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
