package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-racer/internal/account"
	"github.com/vovakirdan/dodge-racer/internal/platform/tui"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start in interactive menu mode.

The menu shows the signed-in player with their best score per game.
After a game you return to the menu with Esc.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  racer menu
  racer menu --fps 30
  racer menu --db ./racer.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	logger, logCloser := newLogger(true)
	defer logCloser.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	accounts := account.NewService(store)
	width, height := terminalSize()

	for {
		menuResult, err := tui.RunMenu(profileOf(accounts, logger), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			email := ""
			if u, ok := accounts.CurrentUser(); ok {
				email = u.ID
			}
			goBack, sbErr := tui.RunScoreboard(store, email, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		session := playSession{
			store:    store,
			accounts: accounts,
			logger:   logger,
			cfg:      cfg,
			sprite:   flagSprite,
			width:    width,
			height:   height,
		}
		res, err := session.play(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !res.BackToMenu {
			return
		}
	}
}
