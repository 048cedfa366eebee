package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// Toast timing and capacity.
const (
	ToastLifetime = 2400 * time.Millisecond
	maxToasts     = 3
)

var severityStyles = map[core.Severity]lipgloss.Style{
	core.SeverityInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")),
	core.SeveritySuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("42")),
	core.SeverityError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("160")),
}

type toast struct {
	notice  core.Notice
	expires time.Time
}

// Toasts collects notices and shows each one for ToastLifetime.
// It is only touched from the Bubble Tea update loop.
type Toasts struct {
	now   func() time.Time
	items []toast
}

// NewToasts creates an empty toast queue. now defaults to time.Now.
func NewToasts(now func() time.Time) *Toasts {
	if now == nil {
		now = time.Now
	}
	return &Toasts{now: now}
}

// Notify queues a notice, dropping the oldest when full.
func (t *Toasts) Notify(n core.Notice) {
	t.items = append(t.items, toast{notice: n, expires: t.now().Add(ToastLifetime)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Prune drops toasts that expired before now.
func (t *Toasts) Prune(now time.Time) {
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.expires) {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

// Active returns the notices currently shown, oldest first.
func (t *Toasts) Active() []core.Notice {
	out := make([]core.Notice, len(t.items))
	for i, it := range t.items {
		out[i] = it.notice
	}
	return out
}

// View renders the newest toast on one line, or an empty line.
func (t *Toasts) View(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	n := t.items[len(t.items)-1].notice
	line := formatNotice(n)
	if width > 0 && lipgloss.Width(line) > width {
		runes := []rune(line)
		line = string(runes[:min(max(width-1, 0), len(runes))]) + "…"
	}
	return severityStyles[n.Severity].Render(line)
}

func formatNotice(n core.Notice) string {
	if n.Message == "" {
		return fmt.Sprintf(" %s ", n.Title)
	}
	return fmt.Sprintf(" %s: %s ", n.Title, n.Message)
}

// LineNotifier prints each notice as a styled line. Used by plain CLI
// commands that have no toast area.
type LineNotifier struct {
	W io.Writer
}

// Notify writes the notice followed by a newline.
func (l LineNotifier) Notify(n core.Notice) {
	style, ok := severityStyles[n.Severity]
	if !ok {
		style = severityStyles[core.SeverityInfo]
	}
	fmt.Fprintln(l.W, style.Render(strings.TrimSpace(formatNotice(n))))
}

var (
	_ core.Notifier = (*Toasts)(nil)
	_ core.Notifier = LineNotifier{}
)
