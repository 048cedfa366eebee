// Package tui hosts games in the terminal with Bubble Tea: the tick loop,
// key mapping, drawing into character cells and the menu screens.
package tui

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-racer/internal/assets"
	"github.com/vovakirdan/dodge-racer/internal/core"
	"github.com/vovakirdan/dodge-racer/internal/registry"
)

// Rows below the game area: status bar, toast line, help line.
const chromeRows = 3

// Options configures a game run.
type Options struct {
	TickRate   int
	SpritePath string // Empty means the placeholder car
	Accounts   core.Accounts
	Toasts     *Toasts // Must be the notifier the game was created with
	Logger     *log.Logger
	Width      int
	Height     int
	Now        func() time.Time
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate, 60 per second when
// the rate is not positive.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spriteLoadedMsg carries the decoded sprite back to the update loop.
type spriteLoadedMsg struct {
	img image.Image
	err error
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236"))

// Model is the Bubble Tea model hosting a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	surface    *CellSurface
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	toasts     *Toasts
	help       help.Model
	keys       gameKeyMap
	accounts   core.Accounts
	logger     *log.Logger
	now        func() time.Time
	state      core.GameState
	tickRate   int
	spritePath string
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Toasts == nil {
		opts.Toasts = NewToasts(opts.Now)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	screen := core.NewScreen(opts.Width, gameRows(opts.Height))
	cw, ch := game.Canvas()
	toasts := opts.Toasts

	game.Subscribe(core.ListenerFunc(func(e core.Event) {
		if lc, ok := e.(core.LevelChanged); ok && lc.Level > 1 {
			toasts.Notify(core.Notice{
				Severity: core.SeverityInfo,
				Title:    "Level up",
				Message:  fmt.Sprintf("level %d", lc.Level),
			})
		}
	}))

	return Model{
		game:       game,
		screen:     screen,
		surface:    NewCellSurface(screen, cw, ch),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		toasts:     toasts,
		help:       help.New(),
		keys:       defaultGameKeyMap(),
		accounts:   opts.Accounts,
		logger:     opts.Logger,
		now:        opts.Now,
		state:      game.State(),
		tickRate:   opts.TickRate,
		spritePath: opts.SpritePath,
		width:      opts.Width,
		height:     opts.Height,
	}
}

func gameRows(height int) int {
	return max(height-chromeRows, 1)
}

// Init starts the tick loop and the sprite load.
func (m Model) Init() tea.Cmd {
	if m.spritePath == "" {
		return tickCmd(m.tickRate)
	}
	return tea.Batch(tickCmd(m.tickRate), loadSpriteCmd(m.spritePath))
}

func loadSpriteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := assets.LoadImage(path)
		return spriteLoadedMsg{img: img, err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spriteLoadedMsg:
		m.handleSprite(msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsSteering() {
		started, released := m.holds.Press(action, m.now())
		if released != core.ActionNone {
			m.game.Release(released)
		}
		if started {
			m.game.Press(action)
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game area filling the terminal. The canvas is
// fixed, so a resize only changes how many cells it maps to.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleSprite(msg spriteLoadedMsg) {
	if msg.err != nil {
		m.logger.Warn("car sprite unavailable, using placeholder", "path", m.spritePath, "error", msg.err)
		return
	}
	m.game.AttachSprite(msg.img)
}

// handleTick applies the one-shot commands collected since the last tick,
// then advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expire(now) {
		m.game.Release(a)
	}

	phase := m.game.State().Phase
	switch {
	case m.inputFrame.Has(core.ActionBack) && phase == core.PhaseMenu:
		m.backToMenu = true
		m.inputFrame.Clear()
		return m, tea.Quit

	case m.inputFrame.Has(core.ActionBack):
		if err := m.game.Cancel(); err != nil {
			m.logger.Debug("cancel ignored", "phase", phase, "error", err)
		}
		m.holds.Reset()

	case m.inputFrame.Has(core.ActionConfirm) && phase != core.PhasePlaying:
		// Refusals are reported to the player through the notifier.
		if err := m.game.Start(); err != nil {
			m.logger.Debug("start refused", "error", err)
		}
	}
	m.inputFrame.Clear()

	m.game.Tick(now)
	m.toasts.Prune(now)
	m.state = m.game.State()

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		m.toasts.Notify(core.Notice{Severity: core.SeverityError, Title: "Screenshot failed", Message: err.Error()})
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.toasts.Notify(core.Notice{Severity: core.SeverityError, Title: "Screenshot failed", Message: err.Error()})
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.toasts.Notify(core.Notice{Severity: core.SeverityError, Title: "Screenshot failed", Message: err.Error()})
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.toasts.Notify(core.Notice{Severity: core.SeveritySuccess, Title: "Screenshot saved", Message: path})
}

// View renders the game area followed by status, toast and help lines.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.surface)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.statusLine(),
		m.toasts.View(m.width),
		m.help.View(m.keys),
	)
}

func (m Model) statusLine() string {
	player := "guest"
	if m.accounts != nil {
		if u, ok := m.accounts.CurrentUser(); ok {
			player = u.DisplayName
		}
	}
	s := m.state
	line := fmt.Sprintf(" %s | %s | score %d | best %d | lives %d | level %d | %s ",
		m.game.Title(), player, s.Score, s.Best, s.Lives, s.Level, s.Phase)
	return statusStyle.Width(m.width).MaxWidth(m.width).Render(line)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Result reports how a game run ended.
type Result struct {
	State      core.GameState
	BackToMenu bool // The player left with Back from the game's own menu
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits or goes back to the picker.
func Run(game registry.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{State: game.State()}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{State: game.State()}, nil
	}
	return Result{State: m.state, BackToMenu: m.backToMenu}, nil
}
