package pdfimpose

// DocumentSource describes the input document. Only the page count and the
// dimensions of the first page are consulted; all pages are assumed to
// share those dimensions.
type DocumentSource interface {
	// PageCount returns the number of pages in the input document.
	PageCount() (int, error)
	// PageSize returns the dimensions in points of the page at the given
	// 0-based index.
	PageSize(index int) (Size, error)
}

// DocumentSink assembles the output document one sheet at a time. A
// conversion calls BeginPage, places zero or more source pages on the sheet
// with PlacePage, closes it with EndPage, and finally serializes the whole
// document with Flush. Source pages are referenced by index and are never
// mutated.
type DocumentSink interface {
	// BeginPage appends a blank sheet of the given size and makes it the
	// current page. rotation is the whole-sheet rotation in degrees (0 or
	// 180); it is declared up front so backends that draw through a
	// page-level transform can honor it.
	BeginPage(size Size, rotation int) error
	// PlacePage merges the source page with the given 0-based index onto
	// the current sheet, scaled then translated per the placement.
	PlacePage(index int, p Placement) error
	// EndPage closes the current sheet.
	EndPage() error
	// Flush serializes the assembled document to its destination.
	Flush() error
}
