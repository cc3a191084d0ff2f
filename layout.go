package pdfimpose

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout is the grid of input pages on one output sheet.
type Layout struct {
	PagesInWidth  int // pages across the sheet
	PagesInHeight int // pages down the sheet
}

// NewLayout builds a layout from explicit grid dimensions. Both must be
// positive.
func NewLayout(pagesInWidth, pagesInHeight int) (Layout, error) {
	if pagesInWidth < 1 || pagesInHeight < 1 {
		return Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, pagesInWidth, pagesInHeight)
	}
	return Layout{PagesInWidth: pagesInWidth, PagesInHeight: pagesInHeight}, nil
}

// ParseLayout parses a layout specification of the form "WxH", e.g. "2x1"
// for two pages side by side on one sheet.
func ParseLayout(s string) (Layout, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
	pagesInWidth, err := strconv.Atoi(w)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
	pagesInHeight, err := strconv.Atoi(h)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
	layout, err := NewLayout(pagesInWidth, pagesInHeight)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
	return layout, nil
}

// PagesPerSheet is the number of grid slots on one output sheet.
func (l Layout) PagesPerSheet() int {
	return l.PagesInWidth * l.PagesInHeight
}

// String renders the layout in "WxH" form.
func (l Layout) String() string {
	return strconv.Itoa(l.PagesInWidth) + "x" + strconv.Itoa(l.PagesInHeight)
}
