package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JoshMDonato/Pentris/internal/config"
	"github.com/JoshMDonato/Pentris/internal/core"
	"github.com/JoshMDonato/Pentris/internal/games/pentris"
	"github.com/JoshMDonato/Pentris/internal/platform/tui"
	"github.com/JoshMDonato/Pentris/internal/registry"
	"github.com/JoshMDonato/Pentris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. Without a variant a menu lets you pick one, choose
the difficulty and browse the scoreboard.

Controls:
  Left/Right, h/l    - Move
  Down, j            - Soft drop (hold for fast gravity)
  Space              - Hard drop
  Z / X, Up          - Rotate counter-clockwise / clockwise
  C                  - Hold
  P                  - Pause
  R                  - Restart
  Esc                - Back to menu (paused or game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Two hold slots, longer lock delay
  normal - Standard rules from level 1
  hard   - Start at level 5 with a short lock delay
  fixed  - Gravity stays at the starting level

Examples:
  pentris play
  pentris play pentris --difficulty hard
  pentris play pentris_relaxed --difficulty fixed
  pentris play pentris --config ./my-pentris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig == "" && !cmd.Flags().Changed("config") {
		flagConfig = environ.Config
	}
	pentris.SetConfigPath(flagConfig)
	pentris.SetDifficultyPreset(flagDifficulty)

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 'pentris list' to see them", gameID)
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	if gameID != "" {
		_, err := playOnce(gameID, "", store, cfg)
		return err
	}
	return runMenuLoop(store, cfg)
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}
		if res.GameID == "" {
			return nil
		}

		// Each round from the menu gets a fresh seed unless one was pinned.
		round := cfg
		if flagSeed == 0 {
			round.Seed = time.Now().UnixNano()
		}
		back, err := playOnce(res.GameID, res.Difficulty, store, round)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// playOnce runs one variant until the player quits or returns to the menu.
func playOnce(gameID string, preset config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	if preset != "" {
		if g, ok := game.(*pentris.Game); ok {
			g.SetDifficulty(preset)
		}
	}

	logger.Debug("starting game", "variant", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	return tui.Run(game, store, cfg, os.Getenv("USER"))
}
