package dashgate

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBuildRequiresStore(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("Build accepted a configuration with no store and no storage path")
	}
}

func TestBuildFromStoragePath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.StoragePath = filepath.Join(t.TempDir(), "session.json")

	ctrl, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ctrl.Close()
}

func TestBuildRejectsSecondUse(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.StoragePath = filepath.Join(t.TempDir(), "session.json")

	b := New().WithConfig(cfg)
	ctrl, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(ctrl.Close)

	if _, err := b.Build(); err == nil {
		t.Fatal("Build succeeded twice on one builder")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.StoragePath = filepath.Join(t.TempDir(), "session.json")
	cfg.Login.EstablishLatency = -time.Second

	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("Build accepted a negative establish latency")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"negative latency", func(c *Config) { c.Login.EstablishLatency = -1 }, true},
		{"audit enabled without buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}, true},
		{"audit enabled with buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 16
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
