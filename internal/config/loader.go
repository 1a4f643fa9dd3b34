package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in each config directory.
const ConfigFile = "pentris.yaml"

// LoadPentris loads the game rules.
// Search order: customPath -> ~/.pentris/configs/pentris.yaml ->
// ./configs/pentris.yaml -> embedded default.
// Files are read on top of the defaults, so they may set only some keys.
func LoadPentris(customPath string) (PentrisConfig, error) {
	cfg, err := embedded()
	if err != nil {
		return cfg, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// embedded decodes the embedded defaults, falling back to the hardcoded
// configuration if they are unusable.
func embedded() (PentrisConfig, error) {
	cfg := DefaultPentrisConfig()
	if err := yaml.Unmarshal(defaultPentrisYAML, &cfg); err != nil {
		return DefaultPentrisConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pentris", "configs", filename)
}
