// Package config loads wiremap settings from a TOML file with environment
// overrides. Settings resolve in order: defaults, file, environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/render/wire"
)

// Config holds all wiremap settings.
type Config struct {
	Render RenderConfig `toml:"render"`
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

type RenderConfig struct {
	Style      string  `toml:"style"`
	Curve      string  `toml:"curve"`
	StepRadius float64 `toml:"step_radius"`
	ArrowSize  float64 `toml:"arrow_size"`
}

type LayoutConfig struct {
	NodeWidth  float64 `toml:"node_width"`
	NodeHeight float64 `toml:"node_height"`
	ColumnGap  float64 `toml:"column_gap"`
	RowGap     float64 `toml:"row_gap"`
	Padding    float64 `toml:"padding"`
}

type CacheConfig struct {
	Dir     string `toml:"dir"`
	TTL     string `toml:"ttl"`
	Enabled bool   `toml:"enabled"`
}

type StoreConfig struct {
	DSN string `toml:"dsn"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Style:      wire.StyleSimple,
			Curve:      string(geometry.CurveBezier),
			StepRadius: geometry.DefaultStepRadius,
			ArrowSize:  wire.DefaultArrowSize,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Store: StoreConfig{
			DSN: "file:",
		},
		Server: ServerConfig{
			Addr: "localhost:8321",
		},
	}
}

// Load reads configuration, starting from defaults. If path is empty, the
// default location is consulted and silently skipped when absent. Environment
// variables are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeConfigFailure, err, "failed to parse config file")
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine.
	default:
		return Config{}, errors.Wrap(errors.ErrCodeConfigFailure, err, "failed to read config file")
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the standard config location, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wiremap", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "wiremap", "config.toml")
}

func (c *Config) applyEnv() {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setFloat := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	setString("WIREMAP_RENDER_STYLE", &c.Render.Style)
	setString("WIREMAP_RENDER_CURVE", &c.Render.Curve)
	setFloat("WIREMAP_RENDER_STEP_RADIUS", &c.Render.StepRadius)
	setFloat("WIREMAP_RENDER_ARROW_SIZE", &c.Render.ArrowSize)
	setFloat("WIREMAP_LAYOUT_NODE_WIDTH", &c.Layout.NodeWidth)
	setFloat("WIREMAP_LAYOUT_NODE_HEIGHT", &c.Layout.NodeHeight)
	setFloat("WIREMAP_LAYOUT_COLUMN_GAP", &c.Layout.ColumnGap)
	setFloat("WIREMAP_LAYOUT_ROW_GAP", &c.Layout.RowGap)
	setFloat("WIREMAP_LAYOUT_PADDING", &c.Layout.Padding)
	setString("WIREMAP_CACHE_DIR", &c.Cache.Dir)
	setString("WIREMAP_CACHE_TTL", &c.Cache.TTL)
	setString("WIREMAP_STORE_DSN", &c.Store.DSN)
	setString("WIREMAP_SERVER_ADDR", &c.Server.Addr)

	if v := os.Getenv("WIREMAP_CACHE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = b
		}
	}
}

// Validate checks the configuration for values that would fail later.
func (c *Config) Validate() error {
	if c.Render.Style != "" {
		if _, ok := wire.ValidStyles[c.Render.Style]; !ok {
			return errors.New(errors.ErrCodeInvalidStyle, "unknown render style: %s", c.Render.Style)
		}
	}
	if c.Render.Curve != "" {
		if _, ok := geometry.ValidCurves[geometry.Curve(c.Render.Curve)]; !ok {
			return errors.New(errors.ErrCodeInvalidCurve, "unknown curve: %s", c.Render.Curve)
		}
	}
	if c.Render.StepRadius < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "step radius must not be negative")
	}
	if c.Render.ArrowSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "arrow size must not be negative")
	}
	for _, dim := range []struct {
		name  string
		value float64
	}{
		{"node_width", c.Layout.NodeWidth},
		{"node_height", c.Layout.NodeHeight},
		{"column_gap", c.Layout.ColumnGap},
		{"row_gap", c.Layout.RowGap},
		{"padding", c.Layout.Padding},
	} {
		if dim.value < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "layout %s must not be negative", dim.name)
		}
	}
	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return errors.Wrap(errors.ErrCodeConfigFailure, err, "invalid cache ttl")
		}
	}
	if c.Server.Addr != "" {
		if err := errors.ValidateAddr(c.Server.Addr); err != nil {
			return err
		}
	}
	return nil
}

// CacheTTL returns the configured TTL, or the default artifact TTL when
// unset. Validate must have accepted the config first.
func (c *Config) CacheTTL(fallback time.Duration) time.Duration {
	if c.Cache.TTL == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return fallback
	}
	return d
}
