package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshMDonato/Pentris/internal/config"
	"github.com/JoshMDonato/Pentris/internal/games/pentris"
	"github.com/JoshMDonato/Pentris/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective rules as YAML",
	Long: `Print the rules a game would start with after the config file,
the difficulty preset and the variant are applied. The output can be
saved and passed back with 'pentris play --config'.

Examples:
  pentris config
  pentris config pentris_relaxed --difficulty easy > easy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q, run 'pentris list' to see them", args[0])
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	path := flagConfig
	if path == "" {
		path = environ.Config
	}

	cfg, err := config.LoadPentris(path)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyPentrisPreset(&cfg, preset)
	}
	if len(args) == 1 && args[0] == pentris.IDRelaxed {
		cfg = config.RelaxedPentrisConfig(cfg)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
