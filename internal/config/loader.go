package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a validated Config by layering, low to high precedence:
//  1. defaults (Default())
//  2. YAML file at path, if path is non-empty
//  3. env vars with prefix TEBOWSKI_ (TEBOWSKI_K_FACTOR -> k_factor,
//     TEBOWSKI_POWER_WEIGHTS__ELO -> power_weights.elo)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("TEBOWSKI_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "TEBOWSKI_"))
		// Double underscore separates nested keys; single underscores are
		// part of the key itself.
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
