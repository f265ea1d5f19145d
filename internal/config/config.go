// Package config loads kiu settings from defaults, an optional TOML/YAML/JSON file and
// KIU_* environment variables, in that order of precedence (lowest first).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
	"github.com/psidex/kiu/internal/tessellation"
)

type Highlight struct {
	MaxDistance float64         `json:"maxDistance" toml:"max_distance" yaml:"max_distance"`
	Palette     sampler.Palette `json:"palette" toml:"palette" yaml:"palette"`
}

type Typewriter struct {
	Text     string       `json:"text" toml:"text" yaml:"text"`
	Interval lib.Duration `json:"interval" toml:"interval" yaml:"interval"`
}

type Carousel struct {
	Items    []string     `json:"items" toml:"items" yaml:"items"`
	Interval lib.Duration `json:"interval" toml:"interval" yaml:"interval"`
}

type Server struct {
	Bind      string `json:"bind" toml:"bind" yaml:"bind"`
	GRPCBind  string `json:"grpcBind" toml:"grpc_bind" yaml:"grpc_bind"`
	StaticDir string `json:"staticDir" toml:"static_dir" yaml:"static_dir"`
}

type Output struct {
	Dir     string   `json:"dir" toml:"dir" yaml:"dir"`
	Formats []string `json:"formats" toml:"formats" yaml:"formats"`
	Workers uint     `json:"workers" toml:"workers" yaml:"workers"`
}

type Config struct {
	LogLevel     string            `json:"logLevel" toml:"log_level" yaml:"log_level"`
	Streets      streets.Config    `json:"streets" toml:"streets" yaml:"streets"`
	Highlight    Highlight         `json:"highlight" toml:"highlight" yaml:"highlight"`
	Tessellation tessellation.Grid `json:"tessellation" toml:"tessellation" yaml:"tessellation"`
	Typewriter   Typewriter        `json:"typewriter" toml:"typewriter" yaml:"typewriter"`
	Carousel     Carousel          `json:"carousel" toml:"carousel" yaml:"carousel"`
	Server       Server            `json:"server" toml:"server" yaml:"server"`
	Output       Output            `json:"output" toml:"output" yaml:"output"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Streets:  streets.DefaultConfig(),
		Highlight: Highlight{
			MaxDistance: sampler.DefaultMaxDistance,
			Palette:     sampler.DefaultPalette(),
		},
		Tessellation: tessellation.DefaultGrid(),
		Typewriter: Typewriter{
			Text:     "Art, Tech, Collective",
			Interval: lib.DurationFrom(80 * time.Millisecond),
		},
		Carousel: Carousel{
			Items:    []string{"Open Call", "Startup Pitches", "Immersive Gallery", "Panels"},
			Interval: lib.DurationFrom(4 * time.Second),
		},
		Server: Server{
			Bind:      "127.0.0.1:8080",
			StaticDir: "",
		},
		Output: Output{
			Dir:     ".",
			Formats: []string{"svg"},
			Workers: 2,
		},
	}
}

// Load reads path over the defaults and then applies the environment. An empty path
// skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ReadFile decodes path into c, choosing the decoder by extension. Keys absent from
// the file keep their current values.
func (c *Config) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(b), c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	case ".json":
		err = json.Unmarshal(b, c)
	default:
		return errors.Errorf("unsupported config extension %q", ext)
	}

	return errors.Wrapf(err, "decode %s", path)
}

// ApplyEnv overrides fields from KIU_* variables found with lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("KIU_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("KIU_SEED"); ok {
		seed, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "KIU_SEED")
		}
		c.Streets.Seed = seed
	}
	if v, ok := lookup("KIU_BIND"); ok {
		c.Server.Bind = v
	}
	if v, ok := lookup("KIU_GRPC_BIND"); ok {
		c.Server.GRPCBind = v
	}
	if v, ok := lookup("KIU_STATIC_DIR"); ok {
		c.Server.StaticDir = v
	}
	if v, ok := lookup("KIU_OUTPUT_DIR"); ok {
		c.Output.Dir = v
	}
	return nil
}

// Validate rejects settings the generator or server cannot work with.
func (c Config) Validate() error {
	s := c.Streets
	if s.Cols < 1 || s.Rows < 1 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", s.Cols, s.Rows)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("canvas must be positive, got %vx%v", s.Width, s.Height)
	}
	if c.Highlight.MaxDistance <= 0 {
		return errors.New("highlight max distance must be positive")
	}
	if c.Typewriter.Interval.Duration <= 0 || c.Carousel.Interval.Duration <= 0 {
		return errors.New("timer intervals must be positive")
	}
	return nil
}
