package compare

import "math"

// Scoring policy. These values are fixed calibration constants, not tunables:
// downstream report thresholds were calibrated against exactly these numbers.
const (
	TextWeight   = 0.4
	VisualWeight = 0.4
	PageWeight   = 0.2

	// PagePenalty is the flat page-count score for any mismatch. It does not
	// scale with how far apart the counts are.
	PagePenalty = 0.5

	// LowScoreThreshold flags cases that need attention in the report.
	LowScoreThreshold = 0.8

	scoreScale = 1e4
)

// Round4 rounds a score to four decimal places so results are reproducible
// across runs and platforms.
func Round4(v float64) float64 {
	return math.Round(v*scoreScale) / scoreScale
}

// PageScore is 1.0 when the page counts match and PagePenalty otherwise.
// Unknown counts (-1 on both sides) compare equal and earn full credit.
func PageScore(minipdfPages, referencePages int) float64 {
	if minipdfPages == referencePages {
		return 1.0
	}
	return PagePenalty
}

// Aggregate combines the component scores into the overall score:
// 0.4*text + 0.4*visual + 0.2*page, rounded to four digits. When visual
// scoring was not performed, the text score stands in for the visual one,
// collapsing the formula to 0.8*text + 0.2*page without a separate branch.
func Aggregate(textScore, visualScore float64, hasVisual bool, pageScore float64) float64 {
	vis := visualScore
	if !hasVisual {
		vis = textScore
	}
	return Round4(TextWeight*textScore + VisualWeight*vis + PageWeight*pageScore)
}
