package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/shps951023/minipdf-bench/internal/renderer"
)

// Config holds the benchmark configuration. Directories and execution knobs
// live here; the scoring policy itself (weights, thresholds, rounding) is
// deliberately not configurable.
type Config struct {
	XlsxDir      string `mapstructure:"xlsx_dir"`
	MiniPdfDir   string `mapstructure:"minipdf_dir"`
	ReferenceDir string `mapstructure:"reference_dir"`
	ReportDir    string `mapstructure:"report_dir"`

	// MiniPdfCommand is the external command that converts the xlsx corpus to
	// PDF via MiniPdf. Empty means the step is skipped.
	MiniPdfCommand string `mapstructure:"minipdf_command"`

	DPI     float64 `mapstructure:"dpi"`
	Workers int     `mapstructure:"workers"`

	// RenderDisabled installs the no-op rendering capability: no page counts,
	// no visual comparison, fallback text extraction only.
	RenderDisabled bool `mapstructure:"render_disabled"`

	Notify  bool   `mapstructure:"notify"`
	LogFile string `mapstructure:"log_file"`
	Debug   bool   `mapstructure:"debug"`
}

// Load reads config.yaml from path if present, applies MINIPDF_BENCH_* env
// overrides and falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("MINIPDF_BENCH")
	v.AutomaticEnv()

	v.SetDefault("xlsx_dir", "./testdata/xlsx")
	v.SetDefault("minipdf_dir", "./testdata/minipdf_pdfs")
	v.SetDefault("reference_dir", "./testdata/reference_pdfs")
	v.SetDefault("report_dir", "./reports")
	v.SetDefault("minipdf_command", "")
	v.SetDefault("dpi", float64(renderer.DefaultDPI))
	v.SetDefault("workers", 1)
	v.SetDefault("render_disabled", false)
	v.SetDefault("notify", false)
	v.SetDefault("log_file", "benchmark.log")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
