// Package extract turns PDF statement bytes into positioned text fragments.
package extract

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/minsukim/tossu/pkg/layout"
)

// Fragments decodes a PDF and returns each page's positioned text fragments.
// Fragment order within a page is whatever the content stream yields; callers
// rebuild reading order from the coordinates.
func Fragments(data []byte) ([][]layout.Fragment, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	pages := make([][]layout.Fragment, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		texts, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("failed to decode page %d: %w", i, err)
		}
		frags := make([]layout.Fragment, 0, len(texts))
		for _, t := range texts {
			frags = append(frags, layout.Fragment{
				Text: t.S,
				X:    sanitize(t.X),
				Y:    sanitize(t.Y),
			})
		}
		pages = append(pages, frags)
	}
	return pages, nil
}

// pageText converts the library's content-stream panics on malformed pages
// into a regular error.
func pageText(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// sanitize maps NaN and infinite coordinates from broken transforms to 0 so a
// single bad glyph run cannot poison row grouping.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
