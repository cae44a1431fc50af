package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	SubmarineCount int
	MaxHP          int
	LayoutsPath    string
	Seed           int64
	ShowPositions  bool
	Strategy       string
}

// Load reads an optional .env file and then the environment. Invalid
// numeric or boolean values fall back to their defaults with a warning.
func Load() *Config {
	LoadDotEnv(".env")
	return &Config{
		SubmarineCount: envInt("SUBHUNT_SUBMARINES", submarine.DefaultSubmarineCount),
		MaxHP:          envInt("SUBHUNT_MAX_HP", submarine.DefaultMaxHP),
		LayoutsPath:    envOrDefault("SUBHUNT_LAYOUTS", ""),
		Seed:           int64(envInt("SUBHUNT_SEED", 0)),
		ShowPositions:  envBool("SUBHUNT_SHOW_POSITIONS", true),
		Strategy:       envOrDefault("SUBHUNT_STRATEGY", "heuristic"),
	}
}

// LoadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load env file")
	}
}

// Rules returns the game rules the configuration describes.
func (c *Config) Rules() submarine.Rules {
	return submarine.Rules{SubmarineCount: c.SubmarineCount, MaxHP: c.MaxHP}
}

// Layouts returns the candidate placements: the built-ins that fit the
// rules plus any layouts from LayoutsPath.
func (c *Config) Layouts() ([]submarine.Layout, error) {
	var extra []submarine.Layout
	if c.LayoutsPath != "" {
		var err error
		extra, err = LoadLayouts(c.LayoutsPath, c.MaxHP)
		if err != nil {
			return nil, err
		}
	}
	return submarine.CandidateLayouts(c.Rules(), extra)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Warn().Str("key", key).Str("value", v).Int("default", fallback).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Bool("default", fallback).Msg("Invalid boolean, using default")
		return fallback
	}
	return b
}

// Validate rejects rules no board can hold.
func (c *Config) Validate() error {
	if c.SubmarineCount < 1 || c.SubmarineCount > submarine.CellCount {
		return fmt.Errorf("config: submarine count %d out of range 1..%d", c.SubmarineCount, submarine.CellCount)
	}
	if c.MaxHP < 1 {
		return fmt.Errorf("config: max HP %d must be positive", c.MaxHP)
	}
	return nil
}
