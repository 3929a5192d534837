package compare

import "github.com/shps951023/minipdf-bench/internal/renderer"

// PixelScore compares two rendered pages byte by byte and returns a similarity
// in [0,1]. An absent (nil) buffer scores 0. Buffers with different dimensions
// are compared over the common prefix of their sample sequences; no resampling
// or alignment is attempted, so a dimension mismatch yields a low score rather
// than an error.
func PixelScore(a, b *renderer.PixelBuffer) float64 {
	if a == nil || b == nil {
		return 0.0
	}

	if a.Width != b.Width || a.Height != b.Height {
		n := len(a.Samples)
		if len(b.Samples) < n {
			n = len(b.Samples)
		}
		if n == 0 {
			return 0.0
		}
		return float64(countEqual(a.Samples[:n], b.Samples[:n])) / float64(n)
	}

	total := len(a.Samples)
	if total == 0 {
		// Two zero-sized rasters of equal dimensions are trivially identical.
		return 1.0
	}
	return float64(countEqual(a.Samples, b.Samples)) / float64(total)
}

func countEqual(a, b []byte) int {
	matching := 0
	for i := range a {
		if a[i] == b[i] {
			matching++
		}
	}
	return matching
}
