package racer

import (
	"errors"
	"image"
	"testing"

	"github.com/vovakirdan/dodge-racer/internal/config"
	"github.com/vovakirdan/dodge-racer/internal/core"
)

type fakeAccounts struct {
	user *core.User
}

func (a *fakeAccounts) CurrentUser() (core.User, bool) {
	if a.user == nil {
		return core.User{}, false
	}
	return *a.user, true
}

type fakeStore struct {
	best      map[string]int
	recorded  []int
	bestErr   error
	recordErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{best: make(map[string]int)}
}

func (f *fakeStore) BestScore(userID string) (int, error) {
	if f.bestErr != nil {
		return 0, f.bestErr
	}
	return f.best[userID], nil
}

func (f *fakeStore) RecordScore(userID string, score int) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, score)
	if score > f.best[userID] {
		f.best[userID] = score
	}
	return nil
}

type noticeLog struct {
	notices []core.Notice
}

func (n *noticeLog) Notify(notice core.Notice) {
	n.notices = append(n.notices, notice)
}

type eventLog struct {
	events []core.Event
}

func (l *eventLog) OnEvent(e core.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) phaseChanges(to core.Phase) int {
	n := 0
	for _, e := range l.events {
		if pc, ok := e.(core.PhaseChanged); ok && pc.To == to {
			n++
		}
	}
	return n
}

// drawOp is one call made on a recordingSurface.
type drawOp struct {
	kind  string // fill, stroke, image, text
	rect  core.Rect
	color core.Color
	text  string
}

type recordingSurface struct {
	w, h float64
	ops  []drawOp
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", rect: rect, color: c})
}

func (r *recordingSurface) StrokeRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "stroke", rect: rect, color: c})
}

func (r *recordingSurface) DrawImage(_ image.Image, dst core.Rect) {
	r.ops = append(r.ops, drawOp{kind: "image", rect: dst})
}

func (r *recordingSurface) DrawText(x, y float64, text string, _ core.Align, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", rect: core.NewRect(x, y, 0, 0), color: c, text: text})
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

var errStorage = errors.New("storage down")

type fixture struct {
	s        *Session
	accounts *fakeAccounts
	store    *fakeStore
	notices  *noticeLog
	events   *eventLog
}

func newFixture(t *testing.T, signedIn bool) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, signedIn, config.DefaultRacerConfig())
}

func newFixtureWithConfig(t *testing.T, signedIn bool, cfg config.RacerConfig) *fixture {
	t.Helper()
	f := &fixture{
		accounts: &fakeAccounts{},
		store:    newFakeStore(),
		notices:  &noticeLog{},
		events:   &eventLog{},
	}
	if signedIn {
		f.accounts.user = &core.User{ID: "ana@example.com", DisplayName: "ana"}
	}
	s, err := NewSession(Options{
		Config:   cfg,
		Seed:     42,
		Accounts: f.accounts,
		Scores:   f.store,
		Notifier: f.notices,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Subscribe(f.events)
	f.s = s
	return f
}

// start begins a run and fails the test on error.
func (f *fixture) start(t *testing.T) {
	t.Helper()
	if err := f.s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

// dropOnPlayer replaces the live obstacles with one sitting on the car.
func (f *fixture) dropOnPlayer() {
	hb := f.s.player.Hitbox()
	f.s.spawner.obstacles = append(f.s.spawner.obstacles[:0], Obstacle{
		X:      hb.X,
		Y:      hb.Y + 10,
		Width:  hb.W,
		Height: 50,
	})
}

// farObstacle returns an obstacle on the left edge of the road, clear of a
// centered car.
func farObstacle(y float64) Obstacle {
	return Obstacle{X: 90, Y: y, Width: 60, Height: 30}
}
