package pdfimpose

// Size holds page dimensions in points (1/72 inch).
type Size struct {
	Width  float64
	Height float64
}

// Orientation describes how a page is turned. It is always derived from the
// page dimensions, never stored independently.
type Orientation int

const (
	// OrientationSquare means width and height are equal.
	OrientationSquare Orientation = iota
	// OrientationPortrait means the page is taller than wide.
	OrientationPortrait
	// OrientationLandscape means the page is wider than tall.
	OrientationLandscape
)

// Orientation derives the page orientation from the dimensions.
func (s Size) Orientation() Orientation {
	switch {
	case s.Height > s.Width:
		return OrientationPortrait
	case s.Height < s.Width:
		return OrientationLandscape
	default:
		return OrientationSquare
	}
}

// flipped returns the size with width and height swapped.
func (s Size) flipped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// PageFormats maps recognized paper format names to their dimensions in
// points, portrait orientation.
var PageFormats = map[string]Size{
	"A3":      {842, 1192},
	"A4":      {595, 842},
	"A5":      {420, 595},
	"Tabloid": {792, 1224},
	"Letter":  {612, 792},
	"Legal":   {612, 1008},
}

// FormatByName looks up a paper format by name. It returns an
// *UnknownFormatError if the name is not in PageFormats.
func FormatByName(name string) (Size, error) {
	size, ok := PageFormats[name]
	if !ok {
		return Size{}, &UnknownFormatError{Format: name}
	}
	return size, nil
}

// FormatName reports the name of the paper format matching the given
// dimensions. Landscape sizes match their portrait table entry. The second
// return value is false when no format matches.
func FormatName(size Size) (string, bool) {
	if size.Orientation() == OrientationLandscape {
		size = size.flipped()
	}
	for name, dims := range PageFormats {
		if dims == size {
			return name, true
		}
	}
	return "", false
}
