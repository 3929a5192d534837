// Package renderer abstracts the rendering/text-extraction capability used by
// the comparison engine. The capability may be absent (e.g. builds or hosts
// without MuPDF); callers are expected to resolve an Engine once at startup
// and degrade gracefully when Available reports false.
package renderer

import "errors"

// ErrUnavailable is returned by the Disabled engine for every operation.
var ErrUnavailable = errors.New("rendering capability is not available")

// DefaultDPI is the resolution used for page rasterization. Visual comparison
// is byte-exact, so both documents must be rendered at the same DPI for scores
// to be reproducible.
const DefaultDPI = 150

// PixelBuffer holds one rendered page as flat RGB samples. No alpha channel.
type PixelBuffer struct {
	Width   int
	Height  int
	Samples []byte
}

// Engine exposes page count, per-page text and page rasterization for a
// document on disk. Implementations must not keep a handle to the document
// open past any single call.
type Engine interface {
	// Available reports whether the engine can actually render documents.
	Available() bool

	// PageCount returns the number of pages in the document.
	PageCount(path string) (int, error)

	// ExtractText returns the text of each page, in page order.
	ExtractText(path string) ([]string, error)

	// RenderPage rasterizes one page at the given DPI. A page index past the
	// last page returns (nil, nil): an expected condition, not an error.
	RenderPage(path string, page int, dpi float64) (*PixelBuffer, error)
}

// Disabled is the no-op engine installed when rendering is unavailable.
type Disabled struct{}

func (Disabled) Available() bool { return false }

func (Disabled) PageCount(path string) (int, error) { return 0, ErrUnavailable }

func (Disabled) ExtractText(path string) ([]string, error) { return nil, ErrUnavailable }

func (Disabled) RenderPage(path string, page int, dpi float64) (*PixelBuffer, error) {
	return nil, ErrUnavailable
}
