package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-racer/internal/account"
	"github.com/vovakirdan/dodge-racer/internal/config"
	"github.com/vovakirdan/dodge-racer/internal/core"
	"github.com/vovakirdan/dodge-racer/internal/platform/tui"
	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. Interactive commands log to the
// log file because the alternate screen owns the terminal.
func newLogger(interactive bool) (*log.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if interactive && flagLogFile != "" {
		if f, err := openLogFile(flagLogFile); err == nil {
			w, closer = f, f
		} else {
			w = io.Discard
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closer
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadGameConfig resolves the YAML config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.RacerConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RacerConfig{}, err
	}
	cfg, err := config.LoadRacer(path)
	if err != nil {
		return config.RacerConfig{}, err
	}
	config.ApplyRacerPreset(&cfg, preset)
	return cfg, nil
}

// gameIDs lists every registered game slot.
func gameIDs() []string {
	games := registry.List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// profileOf returns the signed-in profile, or nil when nobody is signed in
// or the profile cannot be read.
func profileOf(accounts *account.Service, logger *log.Logger) *account.Profile {
	p, err := accounts.Profile(gameIDs())
	if err != nil {
		logger.Debug("no profile", "error", err)
		return nil
	}
	return &p
}

// playSession holds what one interactive game run needs.
type playSession struct {
	store    *storage.Store
	accounts *account.Service
	logger   *log.Logger
	cfg      config.RacerConfig
	sprite   string
	width    int
	height   int
}

// play creates the game and runs it until the player leaves.
func (s playSession) play(gameID string) (tui.Result, error) {
	toasts := tui.NewToasts(nil)
	game, err := registry.Create(gameID, registry.Deps{
		Config:   s.cfg,
		Seed:     seed(),
		Accounts: s.accounts,
		Scores:   s.store.Scoreboard(gameID),
		Notifier: toasts,
		Logger:   s.logger,
	})
	if err != nil {
		return tui.Result{}, err
	}

	if _, ok := s.accounts.CurrentUser(); !ok {
		toasts.Notify(core.Notice{
			Severity: core.SeverityInfo,
			Title:    "Not signed in",
			Message:  "run `racer login` to record scores",
		})
	}

	s.logger.Info("game started", "game", gameID, "lives", s.cfg.Player.MaxLives)
	res, err := tui.Run(game, tui.Options{
		TickRate:   flagFPS,
		SpritePath: s.sprite,
		Accounts:   s.accounts,
		Toasts:     toasts,
		Logger:     s.logger,
		Width:      s.width,
		Height:     s.height,
	})
	s.logger.Info("game closed", "game", gameID, "score", res.State.Score, "best", res.State.Best)
	return res, err
}
