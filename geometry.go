package pdfimpose

// Placement positions one source page on an output sheet. Coordinates are
// in PDF user space (origin at the bottom-left corner, y increasing
// upwards). Scale is uniform and applied before translation.
type Placement struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// ReductionFactor is the uniform scale applied to an input page so that
// PagesInWidth of them fit across the output sheet. All input pages are
// assumed to share the dimensions of the first page.
func ReductionFactor(layout Layout, input, output Size) float64 {
	return output.Width / (float64(layout.PagesInWidth) * input.Width)
}

// IncreasingFactor is the uniform scale applied to a booklet sheet so that
// one of its grid cells fills a whole output page.
func IncreasingFactor(layout Layout, input, output Size) float64 {
	return float64(layout.PagesInWidth) * output.Width / input.Width
}

// ImposePlacement computes the placement of a page in slot (row, col) of an
// output sheet. Rows are 0-indexed from the top, columns from the left.
// Used by bookletize and reduce.
func ImposePlacement(row, col int, layout Layout, input, output Size) Placement {
	return Placement{
		Scale:      ReductionFactor(layout, input, output),
		TranslateX: float64(col) * output.Width / float64(layout.PagesInWidth),
		TranslateY: output.Height - float64(row+1)*output.Height/float64(layout.PagesInHeight),
	}
}

// ExtractPlacement computes the placement that scales a booklet sheet up so
// that its slot (row, col) covers one whole output page. Used by linearize.
func ExtractPlacement(row, col int, layout Layout, input, output Size) Placement {
	return Placement{
		Scale:      IncreasingFactor(layout, input, output),
		TranslateX: -float64(col) * output.Width,
		TranslateY: float64(row-layout.PagesInHeight+1) * output.Height,
	}
}
