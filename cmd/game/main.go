// tanchiki is a tile-based tank battle for the desktop.
//
// Usage:
//
//	tanchiki play            - Start the game window
//	tanchiki scores          - Show the high score table
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible runs (0 = from time)
//	--config <path>  - Path to a tuning YAML file
//	--db <path>      - Scores database path (default: ~/.tanchiki/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagLevel     string
	flagStage     int
	flagEnemyDefs string
	flagPowerDefs string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tanchiki",
	Short: "Tanchiki - defend the base, clear the wave",
	Long: `Tanchiki is a tile-based tank battle: hold the base, survive the
enemy wave and rack up the score.

Examples:
  tanchiki play
  tanchiki play --seed 42 --config my-tuning.yaml
  tanchiki scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML (empty = search defaults)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tanchiki/scores.db", "Path to scores database")

	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a custom level layout file")
	playCmd.Flags().IntVar(&flagStage, "stage", 1, "Stage to start new games from")
	playCmd.Flags().StringVar(&flagEnemyDefs, "enemy-defs", "", "Path to an enemy definitions JSON file")
	playCmd.Flags().StringVar(&flagPowerDefs, "powerup-defs", "", "Path to a power-up definitions JSON file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
