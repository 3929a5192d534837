// Package compare scores MiniPdf-generated PDFs against reference PDFs by
// combining text similarity, per-page visual similarity and a page-count check
// into one weighted score per pair.
package compare

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shps951023/minipdf-bench/internal/logger"
	"github.com/shps951023/minipdf-bench/internal/renderer"
	"github.com/shps951023/minipdf-bench/internal/worker"
)

// Error strings recorded on a PairResult when a required file is missing.
const (
	ErrMiniPdfNotFound   = "MiniPdf PDF not found"
	ErrReferenceNotFound = "Reference PDF not found"
)

// Pair names one test case and the two files to compare.
type Pair struct {
	Name          string
	MiniPdfPath   string
	ReferencePath string
}

// Comparator drives document pairs through extraction, scoring and
// aggregation. It holds no per-pair state, so one Comparator can serve
// parallel workers.
type Comparator struct {
	engine renderer.Engine
	dpi    float64
}

// New creates a Comparator on the given rendering capability. A non-positive
// dpi falls back to renderer.DefaultDPI.
func New(engine renderer.Engine, dpi float64) *Comparator {
	if dpi <= 0 {
		dpi = renderer.DefaultDPI
	}
	return &Comparator{engine: engine, dpi: dpi}
}

// ComparePair runs one candidate/reference pair through existence checks,
// text extraction, similarity scoring, visual scoring and aggregation. It
// always returns a result: every failure stays local to the pair.
func (c *Comparator) ComparePair(pair Pair) *PairResult {
	result := &PairResult{
		Name:            pair.Name,
		MiniPdfExists:   fileExists(pair.MiniPdfPath),
		ReferenceExists: fileExists(pair.ReferencePath),
		MiniPdfPages:    -1,
		ReferencePages:  -1,
	}

	if !result.MiniPdfExists {
		result.Error = ErrMiniPdfNotFound
		return result
	}
	if !result.ReferenceExists {
		result.Error = ErrReferenceNotFound
		return result
	}

	result.MiniPdfSize = fileSize(pair.MiniPdfPath)
	result.ReferenceSize = fileSize(pair.ReferencePath)

	render := c.engine.Available()
	if render {
		var err error
		if result.MiniPdfPages, err = c.engine.PageCount(pair.MiniPdfPath); err == nil {
			result.ReferencePages, err = c.engine.PageCount(pair.ReferencePath)
		}
		if err != nil {
			// An unopenable document is treated like a lost rendering
			// capability, for this pair only: pages stay unknown and visual
			// scoring is skipped. Text still flows through the fallback path.
			logger.Log.Warnf("page count probe failed for %s: %v", pair.Name, err)
			result.MiniPdfPages, result.ReferencePages = -1, -1
			render = false
		}
	}

	pagesM, warnM := ExtractPages(c.engine, pair.MiniPdfPath)
	pagesR, warnR := ExtractPages(c.engine, pair.ReferencePath)
	if warnM != "" {
		result.TextExtractWarning = warnM
	} else if warnR != "" {
		result.TextExtractWarning = warnR
	}

	flatM := FlattenPages(pagesM)
	flatR := FlattenPages(pagesR)
	result.MiniPdfText = flatM
	result.ReferenceText = flatR

	pageAware := Round4(TextRatio(flatM, flatR))
	pageAgnostic := Round4(TextRatio(StripPageMarkers(flatM), StripPageMarkers(flatR)))
	textScore := math.Max(pageAware, pageAgnostic)
	result.PageTextSimilarity = &pageAware
	result.FlatTextSimilarity = &pageAgnostic
	result.TextSimilarity = &textScore

	result.TextDiff = UnifiedTextDiff(pair.Name, flatM, flatR)

	hasVisual := false
	if render {
		result.VisualScores, result.VisualAvg = c.visualScores(pair, result.MiniPdfPages, result.ReferencePages)
		hasVisual = true
	}

	visual := 0.0
	if result.VisualAvg != nil {
		visual = *result.VisualAvg
	}
	result.OverallScore = Aggregate(textScore, visual, hasVisual, PageScore(result.MiniPdfPages, result.ReferencePages))

	return result
}

// visualScores renders and compares every page index up to the larger page
// count. A page missing on either side contributes 0.0 instead of being
// skipped.
func (c *Comparator) visualScores(pair Pair, pagesM, pagesR int) ([]float64, *float64) {
	maxPages := pagesM
	if pagesR > maxPages {
		maxPages = pagesR
	}

	scores := make([]float64, 0, maxPages)
	for p := 0; p < maxPages; p++ {
		pixM := c.renderPage(pair.MiniPdfPath, p)
		pixR := c.renderPage(pair.ReferencePath, p)
		scores = append(scores, Round4(PixelScore(pixM, pixR)))
	}

	avg := 0.0
	if len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		avg = Round4(sum / float64(len(scores)))
	}
	return scores, &avg
}

// renderPage folds render failures into the absent-buffer case, the same
// bucket as a page index past the end of the document.
func (c *Comparator) renderPage(path string, page int) *renderer.PixelBuffer {
	pix, err := c.engine.RenderPage(path, page, c.dpi)
	if err != nil {
		logger.Log.Debugf("render failed for %s page %d: %v", path, page, err)
		return nil
	}
	return pix
}

// CompareAll compares every pair, fanning the work out across workerCount
// goroutines. Results come back in input order regardless of scheduling.
func (c *Comparator) CompareAll(ctx context.Context, pairs []Pair, workerCount int) []PairResult {
	results := make([]PairResult, len(pairs))
	worker.Run(ctx, len(pairs), workerCount, func(ctx context.Context, i int) {
		result := c.ComparePair(pairs[i])
		logger.Log.Infof("compared %s: score=%.4f", result.Name, result.OverallScore)
		results[i] = *result
	})
	return results
}

// MergeResult folds a single recompared result into an existing batch:
// a result for a known case replaces it in place, a new case is inserted
// at its sorted position so the batch stays ordered like DiscoverPairs
// produces it.
func MergeResult(results []PairResult, result PairResult) []PairResult {
	for i := range results {
		if results[i].Name == result.Name {
			results[i] = result
			return results
		}
	}
	at := sort.Search(len(results), func(i int) bool { return results[i].Name >= result.Name })
	results = append(results, PairResult{})
	copy(results[at+1:], results[at:])
	results[at] = result
	return results
}

// DiscoverPairs collects case names from the *.pdf files in both directories.
// A name present on only one side still becomes a pair, so the missing side is
// reported rather than silently dropped.
func DiscoverPairs(minipdfDir, referenceDir string) []Pair {
	names := make(map[string]bool)
	for _, dir := range []string{minipdfDir, referenceDir} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
		if err != nil {
			continue
		}
		for _, m := range matches {
			names[strings.TrimSuffix(filepath.Base(m), ".pdf")] = true
		}
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	pairs := make([]Pair, 0, len(sorted))
	for _, n := range sorted {
		pairs = append(pairs, Pair{
			Name:          n,
			MiniPdfPath:   filepath.Join(minipdfDir, n+".pdf"),
			ReferencePath: filepath.Join(referenceDir, n+".pdf"),
		})
	}
	return pairs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
