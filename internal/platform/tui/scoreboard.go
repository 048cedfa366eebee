package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 20
	maxScores          = 100
)

// ScoreSource lists the best runs of a game. *storage.Store implements it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	source     ScoreSource
	userEmail  string // Rows of this player are marked
	scores     []storage.ScoreEntry
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
// userEmail may be empty when nobody is signed in.
func NewScoreboardModel(source ScoreSource, userEmail string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:     registry.List(),
		source:    source,
		userEmail: userEmail,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m *ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3
	}
	playerWidth := min(max(tableWidth-6-8-14-4, 8), 24)

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: playerWidth},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.loadErr = nil, nil
	if m.source != nil {
		m.scores, m.loadErr = m.source.TopScores(gameID, maxScores)
	}
	m.table.SetRows(scoreRows(m.scores, m.userEmail))
	m.table.GotoTop()
}

// scoreRows formats entries as table rows. Runs of the given player are
// marked with a star.
func scoreRows(scores []storage.ScoreEntry, userEmail string) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		player := s.Username
		if player == "" {
			player = s.UserEmail
		}
		if userEmail != "" && s.UserEmail == userEmail {
			player = "* " + player
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores, m.userEmail))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.gameCursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}

	body := panelStyle.Render(m.renderTableContent())
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(boardTitleStyle.Render(title), m.width),
		"",
		body,
		hintStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		line := "  " + g.Title
		if i == m.gameCursor {
			line = boardTitleStyle.Render("> " + g.Title)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return panelStyle.Width(sidebarWidth).Render(b.String())
}

func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return emptyStyle.Render("Scores unavailable:\n" + m.loadErr.Error())
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(source ScoreSource, userEmail string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(source, userEmail, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
