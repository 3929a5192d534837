package compare

import (
	"bytes"
	"testing"

	"github.com/shps951023/minipdf-bench/internal/renderer"
)

func buffer(width, height int, fill byte) *renderer.PixelBuffer {
	return &renderer.PixelBuffer{
		Width:   width,
		Height:  height,
		Samples: bytes.Repeat([]byte{fill}, width*height*3),
	}
}

func TestPixelScore_AbsentBuffers(t *testing.T) {
	full := buffer(10, 10, 0)
	if s := PixelScore(nil, full); s != 0.0 {
		t.Errorf("absent first buffer should score 0.0, got %v", s)
	}
	if s := PixelScore(full, nil); s != 0.0 {
		t.Errorf("absent second buffer should score 0.0, got %v", s)
	}
	if s := PixelScore(nil, nil); s != 0.0 {
		t.Errorf("two absent buffers should score 0.0, got %v", s)
	}
}

func TestPixelScore_IdenticalBuffers(t *testing.T) {
	a := buffer(100, 100, 0)
	b := buffer(100, 100, 0)
	if s := PixelScore(a, b); s != 1.0 {
		t.Errorf("identical equal-dimension buffers should score 1.0, got %v", s)
	}
}

func TestPixelScore_ZeroLengthIdentical(t *testing.T) {
	a := &renderer.PixelBuffer{Width: 0, Height: 0}
	b := &renderer.PixelBuffer{Width: 0, Height: 0}
	if s := PixelScore(a, b); s != 1.0 {
		t.Errorf("zero-length identical rasters should score 1.0, got %v", s)
	}
}

func TestPixelScore_CompletelyDifferent(t *testing.T) {
	a := buffer(10, 10, 0x00)
	b := buffer(10, 10, 0xFF)
	if s := PixelScore(a, b); s != 0.0 {
		t.Errorf("fully different buffers should score 0.0, got %v", s)
	}
}

func TestPixelScore_PartialMatch(t *testing.T) {
	a := buffer(2, 2, 0)
	b := buffer(2, 2, 0)
	// Flip half the samples on one side.
	for i := 0; i < len(b.Samples)/2; i++ {
		b.Samples[i] = 0xFF
	}
	if s := PixelScore(a, b); s != 0.5 {
		t.Errorf("expected 0.5 for a half-matching buffer, got %v", s)
	}
}

// Dimension mismatch is compared over the common sample prefix, never raised
// as an error.
func TestPixelScore_DimensionMismatch(t *testing.T) {
	a := buffer(100, 100, 0)
	b := buffer(100, 50, 0)
	if s := PixelScore(a, b); s != 1.0 {
		t.Errorf("overlapping region is identical, expected 1.0, got %v", s)
	}

	c := buffer(100, 50, 0xFF)
	if s := PixelScore(a, c); s != 0.0 {
		t.Errorf("overlapping region is fully different, expected 0.0, got %v", s)
	}
}

func TestPixelScore_DimensionMismatchZeroOverlap(t *testing.T) {
	a := buffer(10, 10, 0)
	b := &renderer.PixelBuffer{Width: 0, Height: 10}
	if s := PixelScore(a, b); s != 0.0 {
		t.Errorf("zero overlap should score 0.0, got %v", s)
	}
}

func TestPixelScore_AlwaysInRange(t *testing.T) {
	cases := []struct {
		a, b *renderer.PixelBuffer
	}{
		{buffer(3, 7, 0x10), buffer(7, 3, 0x10)},
		{buffer(1, 1, 0xAB), buffer(2, 2, 0xAB)},
		{buffer(5, 5, 0x00), buffer(5, 5, 0x01)},
	}
	for i, c := range cases {
		s := PixelScore(c.a, c.b)
		if s < 0.0 || s > 1.0 {
			t.Errorf("case %d: score %v out of [0,1]", i, s)
		}
	}
}
