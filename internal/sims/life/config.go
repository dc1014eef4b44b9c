package life

import (
	"strconv"

	"bitlife/internal/grid"
)

// Config controls the Life engine dimensions and behaviour.
type Config struct {
	Width  int
	Height int
	Policy grid.Policy

	Seed int64

	// Workers is the number of goroutines used per Step. Zero or one keeps
	// the step serial.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 128,
		Policy: grid.Torus,
		Seed:   42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := grid.ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
