// racer is a terminal Dodge Racer: steer between falling obstacles for as
// long as your lives last.
//
// Usage:
//
//	racer list              - List available games
//	racer play [game]       - Play a game (default: racer)
//	racer menu              - Start menu to pick games interactively
//	racer scores <game>     - Show high scores for a game
//	racer register          - Create an account and sign in
//	racer login             - Sign in
//	racer logout            - Sign out
//	racer whoami            - Show the signed-in player
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.racer/racer.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination for interactive commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dodge-racer/internal/racer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Dodge Racer - dodge falling obstacles in your terminal",
	Long: `Dodge Racer is a terminal arcade game. Steer your car left and right
to avoid the obstacles falling down the road. The road speeds up every
120 points, up to level 6.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  register  - Create an account
  login     - Sign in with e-mail and password
  logout    - Sign out
  whoami    - Show the signed-in player

Examples:
  racer register
  racer play
  racer play --difficulty easy
  racer scores racer`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.racer/racer.db", "Path to accounts and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.racer/racer.log", "Log file used while the game owns the terminal")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
