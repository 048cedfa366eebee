package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-racer/internal/account"
	"github.com/vovakirdan/dodge-racer/internal/core"
	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

func init() {
	registry.Register("fake", "Fake Racer", func(registry.Deps) (registry.Game, error) {
		return newFakeGame(), nil
	})
}

type fakeSource struct {
	entries []storage.ScoreEntry
	err     error
	asked   []string
}

func (s *fakeSource) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	s.asked = append(s.asked, gameID)
	return s.entries, s.err
}

func TestScoreRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.ScoreEntry{
		{UserEmail: "ann@example.com", Username: "ann", Score: 300, CreatedAt: at},
		{UserEmail: "gone@example.com", Score: 120, CreatedAt: at},
	}, "ann@example.com")

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := [][]string{
		{"#1", "* ann", "300", "Mar 04 15:30"},
		{"#2", "gone@example.com", "120", "Mar 04 15:30"},
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}

func TestScoreboardModel(t *testing.T) {
	src := &fakeSource{entries: []storage.ScoreEntry{{UserEmail: "ann@example.com", Username: "ann", Score: 77}}}
	m := NewScoreboardModel(src, "", 100, 30)

	if len(src.asked) == 0 {
		t.Fatal("scores should load for the first game")
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "77") {
		t.Errorf("View() missing title or score:\n%s", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back to the menu")
	}
}

func TestScoreboardShowsLoadError(t *testing.T) {
	src := &fakeSource{err: errors.New("disk gone")}
	m := NewScoreboardModel(src, "", 100, 30)

	if view := m.View(); !strings.Contains(view, "disk gone") {
		t.Errorf("View() should report the load error:\n%s", view)
	}
}

func TestMenuProfileCard(t *testing.T) {
	guest := NewMenuModel(nil, 80, 24)
	if card := guest.profileCard(); !strings.Contains(card, "Not signed in") || !strings.Contains(card, "racer login") {
		t.Errorf("guest card = %q", card)
	}

	p := &account.Profile{
		User:    core.User{ID: "ann@example.com", DisplayName: "ann"},
		Initial: "A",
		Bests:   map[string]int{"fake": 250},
	}
	card := NewMenuModel(p, 80, 24).profileCard()
	for _, want := range []string{"A", "ann", "ann@example.com", "Fake Racer", "250"} {
		if !strings.Contains(card, want) {
			t.Errorf("profile card missing %q:\n%s", want, card)
		}
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID == "" {
		t.Fatal("enter should select the highlighted game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}
