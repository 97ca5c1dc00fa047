// Package config reads ruleset and CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Rules are the table rules the CLI evaluates hands under.
type Rules struct {
	RedFives   bool   `env:"MAHJONG_RED_FIVES" envDefault:"true"`
	Locale     string `env:"MAHJONG_LOCALE" envDefault:"en-US"`
	CacheWaits bool   `env:"MAHJONG_CACHE_WAITS" envDefault:"true"` // share a hand.Analyzer across queries
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRules reads Rules from the environment.
func LoadRules() (Rules, error) {
	var r Rules
	if err := ParseEnv(&r); err != nil {
		return Rules{}, err
	}
	return r, nil
}
