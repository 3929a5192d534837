package compare

import (
	"os"
	"regexp"
	"strings"

	"github.com/shps951023/minipdf-bench/internal/renderer"
)

// Parenthesized string literals, the form PDF text show operators take their
// operand in.
var literalString = regexp.MustCompile(`\(([^)]*)\)`)

// ExtractPages returns per-page text for a document. The rendering capability
// is the primary path; when it fails, the raw-byte fallback takes over and the
// failure is surfaced as a non-fatal warning. When the capability is absent
// the fallback is used without a warning.
func ExtractPages(engine renderer.Engine, path string) (pages []string, warning string) {
	if !engine.Available() {
		return fallbackPages(path), ""
	}

	pages, err := engine.ExtractText(path)
	if err != nil {
		return fallbackPages(path), err.Error()
	}
	return pages, ""
}

// fallbackPages scrapes parenthesized string literals out of the raw document
// bytes and returns them as a single page. It never fails: an unreadable file
// yields one empty page.
func fallbackPages(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{""}
	}

	text := decodeLatin1(data)
	matches := literalString.FindAllStringSubmatch(text, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m[1])
	}

	return []string{strings.Join(parts, "\n")}
}

// decodeLatin1 maps every byte to its Latin-1 rune, so no input can fail to
// decode.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
