package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-racer/internal/account"
	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSprite     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: racer).

You need to be signed in to start a run; see 'racer register' and
'racer login'.

Controls:
  Left/Right, A/D, H/L  - Steer
  Space/Enter           - Start or restart a run
  Esc/B                 - Back to the game menu
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 1 life, the first hit ends the run

Examples:
  racer play
  racer play --difficulty hard
  racer play --sprite ./car.png
  racer play racer --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		c.Flags().StringVar(&flagSprite, "sprite", "", "Car image (png, jpeg, gif, bmp, tiff or webp)")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "racer"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'racer list' to see available games.", gameID)
	}

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

	width, height := terminalSize()
	session := playSession{
		store:    store,
		accounts: account.NewService(store),
		logger:   logger,
		cfg:      cfg,
		sprite:   flagSprite,
		width:    width,
		height:   height,
	}

	if _, err := session.play(gameID); err != nil {
		logger.Error("game failed", "game", gameID, "error", err)
		store.Close()
		fail("running game: %v", err)
	}
}
