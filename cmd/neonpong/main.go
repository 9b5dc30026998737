// neonpong is a neon table tennis arcade game for the terminal.
//
// Usage:
//
//	neonpong play       - Play against the AI in this terminal
//	neonpong serve      - Start SSH server for remote play
//	neonpong history    - Browse recorded matches
//	neonpong config     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML configuration
//	--difficulty <preset> - AI preset: easy, normal, hard
//	--db <path>           - Record matches in a SQLite database
//	--log-file <path>     - Write match events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpong",
	Short: "Neon Pong - table tennis against a cyber AI in your terminal",
	Long: `Neon Pong is a neon table tennis arcade game played in the terminal.
Move your paddle with the mouse or the arrow keys, charge energy for power
hits, and grab power-ups before the cyber AI does.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Browse recorded matches
  config   - Print the effective configuration

Examples:
  neonpong play
  neonpong play --difficulty hard --db ~/.neonpong/matches.db
  neonpong serve --ssh :2222 --db ./matches.db
  neonpong history --db ./matches.db --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (empty = no history)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to match event log (empty = no log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
