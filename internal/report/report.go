// Package report turns a batch of pair results into summary statistics and
// renders them as JSON and markdown reports.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shps951023/minipdf-bench/internal/compare"
)

// Summary is the batch-level rollup of all pair results.
type Summary struct {
	RunID     string    `json:"run_id"`
	Generated time.Time `json:"generated"`
	Total     int       `json:"total"`
	Average   float64   `json:"average"`

	// Score buckets: >= 0.9, 0.7-0.9, < 0.7.
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Poor      int `json:"poor"`

	// LowScores lists cases below compare.LowScoreThreshold, worst first.
	LowScores []LowScore `json:"low_scores"`
}

// LowScore is one case flagged as needing attention.
type LowScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Summarize derives the batch summary from the full result set.
func Summarize(results []compare.PairResult) Summary {
	s := Summary{
		RunID:     uuid.NewString(),
		Generated: time.Now(),
		Total:     len(results),
	}

	sum := 0.0
	for _, r := range results {
		sum += r.OverallScore
		switch {
		case r.OverallScore >= 0.9:
			s.Excellent++
		case r.OverallScore >= 0.7:
			s.Good++
		default:
			s.Poor++
		}
		if r.OverallScore < compare.LowScoreThreshold {
			s.LowScores = append(s.LowScores, LowScore{Name: r.Name, Score: r.OverallScore})
		}
	}
	if s.Total > 0 {
		s.Average = sum / float64(s.Total)
	}

	sort.Slice(s.LowScores, func(i, j int) bool {
		if s.LowScores[i].Score != s.LowScores[j].Score {
			return s.LowScores[i].Score < s.LowScores[j].Score
		}
		return s.LowScores[i].Name < s.LowScores[j].Name
	})

	return s
}

// WriteJSON dumps the ordered result set to path.
func WriteJSON(results []compare.PairResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
