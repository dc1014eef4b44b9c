package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"

	"bitlife/internal/render"
)

// Config represents the driver parameters, settable from flags or a JSON
// config file.
type Config struct {
	Sim      string `json:"sim"`
	Scenario string `json:"scenario"`

	Width  int    `json:"width"`
	Height int    `json:"height"`
	Policy string `json:"policy"`
	Seed   int64  `json:"seed"`

	// Workers above one enables row-parallel stepping.
	Workers int `json:"workers"`

	// TPS paces the terminal render loop; MaxGenerations of zero runs forever.
	TPS            int `json:"tps"`
	MaxGenerations int `json:"max_generations"`

	GlyphOn  string `json:"glyph_on"`
	GlyphOff string `json:"glyph_off"`

	// Scale is the pixel multiplier for the GUI build.
	Scale int `json:"scale"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Scenario: "random",
		Width:    40,
		Height:   20,
		Policy:   "torus",
		Seed:     42,
		TPS:      10,
		GlyphOn:  "O",
		GlyphOff: ".",
		Scale:    3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "initial pattern to seed")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Policy, "policy", c.Policy, "out-of-bounds policy: off, on or torus")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized scenarios")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per step, <2 is serial")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.MaxGenerations, "max-gen", c.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.StringVar(&c.GlyphOn, "on", c.GlyphOn, "glyph for live cells")
	fs.StringVar(&c.GlyphOff, "off", c.GlyphOff, "glyph for dead cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
}

// LoadFile merges values from a JSON config file into c. Flags bound after a
// load still override the file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "config: reading %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "config: parsing %s", path)
	}
	return nil
}

// SimOptions converts the config into the key/value form sim factories take.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"policy":  c.Policy,
		"workers": strconv.Itoa(c.Workers),
	}
}

// RenderOptions converts the configured glyphs into renderer options. Each
// glyph must be exactly one rune.
func (c *Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	if c.GlyphOn != "" {
		r, size := utf8.DecodeRuneInString(c.GlyphOn)
		if size != len(c.GlyphOn) {
			return opts, errors.Errorf("config: glyph for live cells must be a single rune, got %q", c.GlyphOn)
		}
		opts.On = r
	}
	if c.GlyphOff != "" {
		r, size := utf8.DecodeRuneInString(c.GlyphOff)
		if size != len(c.GlyphOff) {
			return opts, errors.Errorf("config: glyph for dead cells must be a single rune, got %q", c.GlyphOff)
		}
		opts.Off = r
	}
	return opts, nil
}
