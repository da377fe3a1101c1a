package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wiremaphq/wiremap/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Render.Style != "simple" || cfg.Render.Curve != "bezier" {
		t.Fatalf("unexpected defaults: %+v", cfg.Render)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("cache disabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
style = "blueprint"
curve = "smoothstep"
step_radius = 8.0

[layout]
node_width = 200

[store]
dsn = "redis://localhost:6379/0"

[server]
addr = "localhost:9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Style != "blueprint" || cfg.Render.Curve != "smoothstep" {
		t.Fatalf("render not loaded: %+v", cfg.Render)
	}
	if cfg.Render.StepRadius != 8.0 {
		t.Fatalf("step_radius = %v, want 8", cfg.Render.StepRadius)
	}
	if cfg.Layout.NodeWidth != 200 {
		t.Fatalf("node_width = %v, want 200", cfg.Layout.NodeWidth)
	}
	if cfg.Store.DSN != "redis://localhost:6379/0" {
		t.Fatalf("dsn = %q", cfg.Store.DSN)
	}
	if cfg.Server.Addr != "localhost:9000" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	// Unset sections keep defaults.
	if cfg.Render.ArrowSize != Default().Render.ArrowSize {
		t.Fatalf("arrow_size = %v, want default", cfg.Render.ArrowSize)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeConfigFailure) {
		t.Fatalf("err = %v, want CONFIG_FAILURE", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"bad style", "[render]\nstyle = \"neon\"\n", errors.ErrCodeInvalidStyle},
		{"bad curve", "[render]\ncurve = \"spiral\"\n", errors.ErrCodeInvalidCurve},
		{"negative gap", "[layout]\nrow_gap = -1.0\n", errors.ErrCodeInvalidInput},
		{"bad ttl", "[cache]\nttl = \"sometimes\"\n", errors.ErrCodeConfigFailure},
		{"bad addr", "[server]\naddr = \"no port\"\n", errors.ErrCodeInvalidInput},
		{"bad toml", "render = [\n", errors.ErrCodeConfigFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WIREMAP_RENDER_STYLE", "blueprint")
	t.Setenv("WIREMAP_LAYOUT_PADDING", "32")
	t.Setenv("WIREMAP_CACHE_ENABLED", "false")
	t.Setenv("WIREMAP_STORE_DSN", "mem:")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Style != "blueprint" {
		t.Fatalf("style = %q, want blueprint", cfg.Render.Style)
	}
	if cfg.Layout.Padding != 32 {
		t.Fatalf("padding = %v, want 32", cfg.Layout.Padding)
	}
	if cfg.Cache.Enabled {
		t.Fatal("cache env override ignored")
	}
	if cfg.Store.DSN != "mem:" {
		t.Fatalf("dsn = %q, want mem:", cfg.Store.DSN)
	}
}

func TestCacheTTL(t *testing.T) {
	cfg := Default()
	if got := cfg.CacheTTL(time.Hour); got != time.Hour {
		t.Fatalf("CacheTTL fallback = %v, want 1h", got)
	}
	cfg.Cache.TTL = "30m"
	if got := cfg.CacheTTL(time.Hour); got != 30*time.Minute {
		t.Fatalf("CacheTTL = %v, want 30m", got)
	}
}
