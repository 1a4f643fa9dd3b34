// pentris is a falling-block puzzle with five-cell pieces, played in the
// terminal or over SSH.
//
// Usage:
//
//	pentris list              - List game variants
//	pentris play [variant]    - Play a variant, or pick one from the menu
//	pentris serve             - Start SSH server for remote play
//	pentris scores [variant]  - Show high scores
//	pentris config            - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pentris/scores.db)
//
// PENTRIS_DB, PENTRIS_FPS, PENTRIS_SEED, PENTRIS_SSH_ADDR, PENTRIS_HOST_KEY,
// PENTRIS_IDLE_TIMEOUT and PENTRIS_CONFIG provide defaults that flags
// override.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JoshMDonato/Pentris/internal/config"
	"github.com/JoshMDonato/Pentris/internal/games/pentris"
	"github.com/JoshMDonato/Pentris/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool

	// PENTRIS_* values, read before any command runs
	environ config.Env
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pentris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pentris",
	Short: "Pentris - falling pentominoes in your terminal",
	Long: `Pentris is a falling-block puzzle played with the eighteen
one-sided pentominoes on a 13 by 27 field.

Available commands:
  list     - Show the game variants
  play     - Play a variant (menu when none is given)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective rules

Examples:
  pentris play
  pentris play pentris_relaxed --difficulty hard
  pentris serve --ssh :2222
  pentris scores pentris`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log session events at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills every flag the user did not set from PENTRIS_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	var err error
	environ, err = config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if environ.FPS > 0 && !flags.Changed("fps") {
		flagFPS = environ.FPS
	}
	if environ.Seed != 0 && !flags.Changed("seed") {
		flagSeed = environ.Seed
	}
	if environ.DB != "" && !flags.Changed("db") {
		flagDBPath = environ.DB
	}
	if flagFPS <= 0 {
		logger.Warn("ignoring non-positive tick rate", "fps", flagFPS)
		flagFPS = 60
	}

	if flagDebug {
		logger.SetLevel(log.DebugLevel)
		pentris.SetLogger(logger.WithPrefix("session"))
	}
	return nil
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		return nil
	}
	return store
}
