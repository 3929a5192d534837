package compare

// PairResult is the immutable outcome of comparing one MiniPdf-generated PDF
// against its LibreOffice reference. JSON field names follow the benchmark
// report schema, so downstream tooling reading comparison_report.json keeps
// working.
//
// Similarity fields are pointers: when either file is missing they are never
// computed and must be absent from the serialized result, not zero.
type PairResult struct {
	Name            string `json:"name"`
	MiniPdfExists   bool   `json:"minipdf_exists"`
	ReferenceExists bool   `json:"reference_exists"`

	// Error identifies the missing side. Set only when one of the files does
	// not exist, which is terminal for the pair.
	Error string `json:"error,omitempty"`

	MiniPdfSize   int64 `json:"minipdf_size,omitempty"`
	ReferenceSize int64 `json:"reference_size,omitempty"`

	// Page counts are -1 when they were not probed (missing file, or the
	// rendering capability was unavailable).
	MiniPdfPages   int `json:"minipdf_pages"`
	ReferencePages int `json:"reference_pages"`

	// Flattened per-page text with page markers, both sides.
	MiniPdfText   string `json:"minipdf_text,omitempty"`
	ReferenceText string `json:"reference_text,omitempty"`

	// TextSimilarity is the maximum of the page-aware and page-agnostic
	// ratios, each of which is also reported.
	TextSimilarity     *float64 `json:"text_similarity,omitempty"`
	PageTextSimilarity *float64 `json:"page_text_similarity,omitempty"`
	FlatTextSimilarity *float64 `json:"flat_text_similarity,omitempty"`

	// TextDiff is a unified diff of the flattened texts, or "(identical)".
	TextDiff string `json:"text_diff,omitempty"`

	// Per-page visual scores over max(MiniPdfPages, ReferencePages), and
	// their arithmetic mean. Nil when rendering was unavailable.
	VisualScores []float64 `json:"visual_scores,omitempty"`
	VisualAvg    *float64  `json:"visual_avg,omitempty"`

	OverallScore float64 `json:"overall_score"`

	// TextExtractWarning is set when primary extraction failed and the
	// raw-byte fallback was used instead.
	TextExtractWarning string `json:"text_extract_warning,omitempty"`
}
