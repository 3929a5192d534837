// Package reference produces the ground-truth PDFs by converting xlsx files
// with headless LibreOffice.
package reference

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shps951023/minipdf-bench/internal/logger"
)

// convertTimeout bounds a single conversion; LibreOffice occasionally hangs on
// malformed input.
const convertTimeout = 120 * time.Second

// FindSOffice locates the LibreOffice executable: the LIBREOFFICE_PATH env
// var first, then well-known install locations, then PATH.
func FindSOffice() (string, error) {
	if envPath := os.Getenv("LIBREOFFICE_PATH"); envPath != "" {
		if info, err := os.Stat(envPath); err == nil && info.Mode().IsRegular() {
			return envPath, nil
		}
	}

	candidates := []string{
		`C:\Program Files\LibreOffice\program\soffice.exe`,
		`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		"/Applications/LibreOffice.app/Contents/MacOS/soffice",
		"/usr/bin/soffice",
		"/usr/bin/libreoffice",
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}

	for _, name := range []string{"soffice", "libreoffice"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("LibreOffice not found: install it or set LIBREOFFICE_PATH")
}

// Convert renders one xlsx to PDF into outDir. Each conversion runs with a
// throwaway user profile so concurrent invocations don't fight over the
// profile lock.
func Convert(ctx context.Context, soffice, xlsxPath, outDir string) error {
	profile, err := os.MkdirTemp("", "soffice-profile-")
	if err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}
	defer os.RemoveAll(profile)

	ctx, cancel := context.WithTimeout(ctx, convertTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, soffice,
		"--headless",
		"--norestore",
		"-env:UserInstallation=file://"+filepath.ToSlash(profile),
		"--convert-to", "pdf",
		"--outdir", outDir,
		xlsxPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("soffice failed for %s: %w: %s",
			filepath.Base(xlsxPath), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ConvertAll converts every .xlsx in xlsxDir into outDir. Individual failures
// are logged and counted; only the absence of LibreOffice or of input files is
// an error.
func ConvertAll(ctx context.Context, xlsxDir, outDir string) (converted, failed int, err error) {
	soffice, err := FindSOffice()
	if err != nil {
		return 0, 0, err
	}

	files, err := filepath.Glob(filepath.Join(xlsxDir, "*.xlsx"))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list xlsx files: %w", err)
	}
	if len(files) == 0 {
		return 0, 0, fmt.Errorf("no .xlsx files found in %s", xlsxDir)
	}
	sort.Strings(files)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Log.Infof("LibreOffice: %s", soffice)
	for _, xlsx := range files {
		if err := Convert(ctx, soffice, xlsx, outDir); err != nil {
			logger.Log.Warnf("reference conversion failed: %v", err)
			failed++
			continue
		}
		logger.Log.Infof("converted %s", filepath.Base(xlsx))
		converted++
	}
	return converted, failed, nil
}
