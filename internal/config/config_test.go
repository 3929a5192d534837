package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shps951023/minipdf-bench/internal/renderer"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed without a config file: %v", err)
	}

	if cfg.DPI != renderer.DefaultDPI {
		t.Errorf("default DPI should be %d, got %v", renderer.DefaultDPI, cfg.DPI)
	}
	if cfg.Workers != 1 {
		t.Errorf("default workers should be 1, got %d", cfg.Workers)
	}
	if cfg.RenderDisabled {
		t.Error("rendering should be enabled by default")
	}
	if cfg.MiniPdfDir == "" || cfg.ReferenceDir == "" || cfg.ReportDir == "" {
		t.Errorf("directory defaults missing: %+v", cfg)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("minipdf_dir: /data/minipdf\nreference_dir: /data/reference\nworkers: 4\nrender_disabled: true\ndpi: 72\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MiniPdfDir != "/data/minipdf" {
		t.Errorf("minipdf_dir not applied: %s", cfg.MiniPdfDir)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers not applied: %d", cfg.Workers)
	}
	if !cfg.RenderDisabled {
		t.Error("render_disabled not applied")
	}
	if cfg.DPI != 72 {
		t.Errorf("dpi not applied: %v", cfg.DPI)
	}
	// Unset keys keep their defaults.
	if cfg.ReportDir != "./reports" {
		t.Errorf("report_dir default lost: %s", cfg.ReportDir)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("workers: [not a number\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("a malformed config file should be an error, not silently ignored")
	}
}
