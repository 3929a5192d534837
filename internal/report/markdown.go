package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/shps951023/minipdf-bench/internal/compare"
)

// maxDiffChars caps the diff text embedded per case so a badly broken document
// cannot balloon the report.
const maxDiffChars = 3000

// WriteMarkdown renders the human-readable comparison report to path.
func WriteMarkdown(results []compare.PairResult, summary Summary, path string) error {
	var b strings.Builder

	b.WriteString("# MiniPdf vs Reference PDF Comparison Report\n\n")
	fmt.Fprintf(&b, "Generated: %s (run %s)\n\n", summary.Generated.Format("2006-01-02T15:04:05Z07:00"), summary.RunID)

	b.WriteString("## Summary\n\n")
	b.WriteString("| # | Test Case | Text Sim | Visual Avg | Pages (M/R) | Overall |\n")
	b.WriteString("|---|-----------|----------|------------|-------------|--------|\n")
	for i, r := range results {
		fmt.Fprintf(&b, "| %d | %s %s | %s | %s | %s/%s | **%s** |\n",
			i+1, scoreEmoji(r), r.Name,
			formatOptional(r.TextSimilarity),
			formatOptional(r.VisualAvg),
			formatPages(r.MiniPdfPages), formatPages(r.ReferencePages),
			formatOverall(r))
	}
	fmt.Fprintf(&b, "\n**Average Overall Score: %.4f**\n\n", summary.Average)

	b.WriteString("## Detailed Results\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "### %s\n\n", r.Name)

		if r.Error != "" {
			fmt.Fprintf(&b, "**Error:** %s\n\n", r.Error)
			continue
		}

		fmt.Fprintf(&b, "- **Text Similarity:** %s\n", formatOptional(r.TextSimilarity))
		fmt.Fprintf(&b, "- **Visual Average:** %s\n", formatOptional(r.VisualAvg))
		fmt.Fprintf(&b, "- **Overall Score:** %.4f\n", r.OverallScore)
		fmt.Fprintf(&b, "- **Pages:** MiniPdf=%s, Reference=%s\n", formatPages(r.MiniPdfPages), formatPages(r.ReferencePages))
		fmt.Fprintf(&b, "- **File Size:** MiniPdf=%d bytes, Reference=%d bytes\n\n", r.MiniPdfSize, r.ReferenceSize)
		if r.TextExtractWarning != "" {
			fmt.Fprintf(&b, "- **Extraction Warning:** %s\n\n", r.TextExtractWarning)
		}

		if r.TextDiff != "" && r.TextDiff != compare.Identical {
			b.WriteString("<details><summary>Text Diff</summary>\n\n```diff\n")
			if len(r.TextDiff) > maxDiffChars {
				b.WriteString(r.TextDiff[:maxDiffChars])
				fmt.Fprintf(&b, "\n... (%d more characters)\n", len(r.TextDiff)-maxDiffChars)
			} else {
				b.WriteString(r.TextDiff)
			}
			b.WriteString("\n```\n</details>\n\n")
		} else {
			b.WriteString("Text content: identical\n\n")
		}
	}

	b.WriteString("## Improvement Suggestions\n\n")
	if len(summary.LowScores) > 0 {
		fmt.Fprintf(&b, "The following test cases scored below %.1f and need attention:\n\n", compare.LowScoreThreshold)
		for _, low := range summary.LowScores {
			fmt.Fprintf(&b, "1. **%s** (score: %.4f)\n", low.Name, low.Score)
		}
		b.WriteString("\nReview the text diffs and visual scores above to identify specific rendering issues.\n")
	} else {
		fmt.Fprintf(&b, "All test cases scored %.1f or above.\n", compare.LowScoreThreshold)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}

func scoreEmoji(r compare.PairResult) string {
	if r.Error != "" {
		return "⚪"
	}
	switch {
	case r.OverallScore >= 0.9:
		return "🟢"
	case r.OverallScore >= 0.7:
		return "🟡"
	default:
		return "🔴"
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *v)
}

func formatOverall(r compare.PairResult) string {
	if r.Error != "" {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", r.OverallScore)
}

func formatPages(pages int) string {
	if pages < 0 {
		return "?"
	}
	return fmt.Sprintf("%d", pages)
}
