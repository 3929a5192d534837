package compare

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// PageMarker separates extracted pages in the flattened document text.
const PageMarker = "\n---PAGE---\n"

// Identical marks a text diff with no differences.
const Identical = "(identical)"

// TextRatio returns a sequence-alignment similarity ratio in [0,1] between two
// strings, character by character: twice the total length of the matching
// blocks divided by the combined length of both inputs. Two empty strings are
// identical by definition, not undefined.
func TextRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

// FlattenPages joins per-page text with the page marker and trims surrounding
// whitespace. This is the page-aware view of a document's text.
func FlattenPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, PageMarker))
}

// StripPageMarkers replaces page markers with plain newlines, producing the
// page-agnostic view. Scoring both views and keeping the better one avoids
// penalizing documents whose content matches but whose page breaks fall in
// different places.
func StripPageMarkers(text string) string {
	return strings.ReplaceAll(text, PageMarker, "\n")
}

// UnifiedTextDiff renders a unified diff of the two flattened texts, labeled
// with the case name, or Identical when they match.
func UnifiedTextDiff(name, minipdfText, referenceText string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(minipdfText),
		B:        difflib.SplitLines(referenceText),
		FromFile: "minipdf/" + name + ".pdf",
		ToFile:   "reference/" + name + ".pdf",
		Context:  3,
	}

	text, _ := difflib.GetUnifiedDiffString(diff)
	if text == "" {
		return Identical
	}
	return text
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
