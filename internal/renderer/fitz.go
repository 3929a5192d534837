package renderer

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Fitz renders and extracts text through MuPDF.
// API reference: https://pkg.go.dev/github.com/gen2brain/go-fitz
//
// Every method opens the document and closes it before returning, so no file
// handle survives a call and pairs can be processed by parallel workers
// without sharing document state.
type Fitz struct{}

func (Fitz) Available() bool { return true }

func (Fitz) PageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	return doc.NumPage(), nil
}

func (Fitz) ExtractText(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}

	return pages, nil
}

func (Fitz) RenderPage(path string, page int, dpi float64) (*PixelBuffer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		// Past the last page: expected when the two documents paginate
		// differently, not a failure.
		return nil, nil
	}

	img, err := doc.ImageDPI(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page, err)
	}

	return rgbSamples(img), nil
}

// rgbSamples repacks an RGBA image into a flat RGB sample buffer, dropping the
// alpha channel so the buffer matches the comparison contract.
func rgbSamples(img *image.RGBA) *PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	samples := make([]byte, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			samples = append(samples, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
	}

	return &PixelBuffer{Width: width, Height: height, Samples: samples}
}
