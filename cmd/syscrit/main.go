// syscrit is a terminal arcade game: pilot a ship through rock fields,
// one subsystem powered at a time, and escape through the wormhole.
//
// Usage:
//
//	syscrit play              - Play the game
//	syscrit scores            - Show recorded runs
//	syscrit simulate          - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: from config)
//	--config <path>  - Path to a settings YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags. Zero values defer to the config file.
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "syscrit",
	Short: "Systems Critical - a one-subsystem-at-a-time terminal arcade game",
	Long: `Systems Critical is a terminal arcade game. Your ship has three
subsystems (engines, weapons, radar) but only the selected one responds
to the activate key. Destroy rocks, find the wormhole, go deeper.

Available commands:
  play      - Play the game
  scores    - View recorded runs
  simulate  - Run the simulation headless and print the result

Examples:
  syscrit play
  syscrit play --seed 42
  syscrit scores
  syscrit simulate --ticks 3600`,
	// Running the binary bare starts a game.
	Run: runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("syscrit " + version)
	},
}

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "dev"

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}
