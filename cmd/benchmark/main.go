// Command benchmark runs the MiniPdf self-evaluation pipeline: generate the
// xlsx corpus, convert it to PDF via MiniPdf and via LibreOffice, compare the
// two PDF sets and write a scored report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/gen2brain/beeep"
	"github.com/joho/godotenv"

	"github.com/shps951023/minipdf-bench/internal/compare"
	"github.com/shps951023/minipdf-bench/internal/config"
	"github.com/shps951023/minipdf-bench/internal/fixtures"
	"github.com/shps951023/minipdf-bench/internal/logger"
	"github.com/shps951023/minipdf-bench/internal/reference"
	"github.com/shps951023/minipdf-bench/internal/renderer"
	"github.com/shps951023/minipdf-bench/internal/report"
	"github.com/shps951023/minipdf-bench/internal/watcher"
)

var (
	configPath    = flag.String("config", ".", "directory containing config.yaml")
	skipGenerate  = flag.Bool("skip-generate", false, "skip Excel fixture generation")
	skipMiniPdf   = flag.Bool("skip-minipdf", false, "skip the MiniPdf conversion step")
	skipReference = flag.Bool("skip-reference", false, "skip LibreOffice reference conversion")
	compareOnly   = flag.Bool("compare-only", false, "only run comparison (assumes PDFs exist)")
	watchMode     = flag.Bool("watch", false, "recompare when MiniPdf PDFs change")
)

func main() {
	flag.Parse()

	// Optional .env for LIBREOFFICE_PATH and friends.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogFile, cfg.Debug); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*compareOnly {
		runPreparation(ctx, cfg)
	}

	banner("Compare MiniPdf vs Reference")
	engine := resolveEngine(cfg)
	comparator := compare.New(engine, cfg.DPI)

	results, summary, err := runComparison(ctx, comparator, cfg)
	if err != nil {
		logger.Log.Fatalf("comparison failed: %v", err)
	}
	printSummary(summary)

	if cfg.Notify {
		msg := fmt.Sprintf("Average score %.4f over %d cases", summary.Average, summary.Total)
		if err := beeep.Notify("MiniPdf Benchmark", msg, ""); err != nil {
			logger.Log.Debugf("notification failed: %v", err)
		}
	}

	if *watchMode {
		// Only the changed case is recompared; its fresh result is folded
		// into the batch before the reports are rewritten. The mutex covers
		// overlapping debounce timers for different cases.
		var mu sync.Mutex
		w, err := watcher.New(cfg.MiniPdfDir, func(caseName string) {
			logger.Log.Infof("change detected, recomparing %s", caseName)
			result := comparator.ComparePair(compare.Pair{
				Name:          caseName,
				MiniPdfPath:   filepath.Join(cfg.MiniPdfDir, caseName+".pdf"),
				ReferencePath: filepath.Join(cfg.ReferenceDir, caseName+".pdf"),
			})

			mu.Lock()
			defer mu.Unlock()
			results = compare.MergeResult(results, *result)
			summary := report.Summarize(results)
			if err := writeReports(results, summary, cfg); err != nil {
				logger.Log.Errorf("failed to rewrite reports: %v", err)
				return
			}
			printSummary(summary)
		})
		if err != nil {
			logger.Log.Fatalf("failed to start watcher: %v", err)
		}
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			logger.Log.Errorf("watcher stopped: %v", err)
		}
	}
}

func runPreparation(ctx context.Context, cfg *config.Config) {
	if !*skipGenerate {
		banner("Generate Test Excel Files")
		if err := fixtures.GenerateAll(cfg.XlsxDir); err != nil {
			logger.Log.Fatalf("fixture generation failed: %v", err)
		}
	}

	if !*skipMiniPdf && cfg.MiniPdfCommand != "" {
		banner("Convert Excel -> PDF (MiniPdf)")
		if err := runMiniPdf(ctx, cfg); err != nil {
			logger.Log.Warnf("MiniPdf conversion failed: %v", err)
		}
	}

	if !*skipReference {
		banner("Convert Excel -> PDF (LibreOffice Reference)")
		converted, failed, err := reference.ConvertAll(ctx, cfg.XlsxDir, cfg.ReferenceDir)
		if err != nil {
			logger.Log.Warnf("reference conversion skipped: %v", err)
		} else {
			logger.Log.Infof("reference conversion done: %d converted, %d failed", converted, failed)
		}
	}
}

// runMiniPdf shells out to the configured MiniPdf conversion command.
func runMiniPdf(ctx context.Context, cfg *config.Config) error {
	parts := strings.Fields(cfg.MiniPdfCommand)
	if len(parts) == 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logger.Log.Infof("running: %s", cfg.MiniPdfCommand)
	return cmd.Run()
}

func runComparison(ctx context.Context, comparator *compare.Comparator, cfg *config.Config) ([]compare.PairResult, report.Summary, error) {
	pairs := compare.DiscoverPairs(cfg.MiniPdfDir, cfg.ReferenceDir)
	if len(pairs) == 0 {
		return nil, report.Summary{}, fmt.Errorf("no PDF files found in %s or %s", cfg.MiniPdfDir, cfg.ReferenceDir)
	}

	results := comparator.CompareAll(ctx, pairs, cfg.Workers)
	summary := report.Summarize(results)
	if err := writeReports(results, summary, cfg); err != nil {
		return results, summary, err
	}
	return results, summary, nil
}

func writeReports(results []compare.PairResult, summary report.Summary, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := report.WriteJSON(results, filepath.Join(cfg.ReportDir, "comparison_report.json")); err != nil {
		return err
	}
	return report.WriteMarkdown(results, summary, filepath.Join(cfg.ReportDir, "comparison_report.md"))
}

// resolveEngine picks the rendering capability once; everything downstream
// sees only the interface.
func resolveEngine(cfg *config.Config) renderer.Engine {
	if cfg.RenderDisabled {
		logger.Log.Warn("rendering disabled: no page counts or visual comparison, fallback text extraction only")
		return renderer.Disabled{}
	}
	return renderer.Fitz{}
}

func printSummary(s report.Summary) {
	banner("Analysis Summary")
	logger.Log.Infof("Total test cases: %d", s.Total)
	logger.Log.Infof("Average score:    %.4f", s.Average)
	logger.Log.Infof("Excellent (>=0.9): %d", s.Excellent)
	logger.Log.Infof("Good (0.7-0.9):    %d", s.Good)
	logger.Log.Infof("Poor (<0.7):       %d", s.Poor)
	for _, low := range s.LowScores {
		logger.Log.Warnf("needs attention: %s (score: %.4f)", low.Name, low.Score)
	}
}

func banner(msg string) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n  %s\n%s\n\n", line, msg, line)
}
