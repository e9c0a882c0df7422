package dnsrelay

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfigMissing(t *testing.T) {
	cfg, err := loadFileConfigFromPath(filepath.Join(t.TempDir(), "relay.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg.Listen != "" {
		t.Errorf("Listen = %q, want empty", cfg.Listen)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	content := "listen: 0.0.0.0:5353\ntick: 500ms\nupstream_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFileConfigFromPath(path)
	if err != nil {
		t.Fatalf("loadFileConfigFromPath() error = %v", err)
	}

	base := Config{}
	if err := cfg.Apply(&base); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if base.Listen != "0.0.0.0:5353" {
		t.Errorf("Listen = %q, want 0.0.0.0:5353", base.Listen)
	}
	if base.Tick != 500*time.Millisecond {
		t.Errorf("Tick = %v, want 500ms", base.Tick)
	}
	if base.UpstreamTimeout != 3*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 3s", base.UpstreamTimeout)
	}
}

func TestApplyInvalidDuration(t *testing.T) {
	cfg := &FileConfig{Tick: "soon"}
	if err := cfg.Apply(&Config{}); err == nil {
		t.Fatal("Apply() = nil, want error for invalid duration")
	}
}

func TestLoadFileConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	if err := os.WriteFile(path, []byte("listen: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFileConfigFromPath(path); err == nil {
		t.Fatal("loadFileConfigFromPath() = nil, want parse error")
	}
}
