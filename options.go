package pdfimpose

// ProgressFunc is called at conversion checkpoints with a human-readable
// phase message and a progress fraction in [0, 1]. Conversions are
// synchronous, so a callback that blocks stalls the whole conversion.
type ProgressFunc func(msg string, progress float64)

// TwoSidedFlip is the paper edge the printer flips on when printing
// two-sided.
type TwoSidedFlip int

const (
	// ShortEdgeFlip leaves all output sheets the right way up.
	ShortEdgeFlip TwoSidedFlip = iota
	// LongEdgeFlip rotates every odd output sheet (0-based) by 180 degrees
	// so the booklet reads correctly after duplex printing.
	LongEdgeFlip
)

func (f TwoSidedFlip) String() string {
	if f == LongEdgeFlip {
		return "long-edge flip"
	}
	return "short-edge flip"
}

// Config holds the settings of one conversion run. Build it with NewConfig
// and pass it by value; conversions never mutate it.
type Config struct {
	Layout    Layout
	Output    Size // output sheet dimensions in points
	Flip      TwoSidedFlip
	CopyPages bool         // duplicate each page group to fill a whole sheet
	Progress  ProgressFunc // never nil after NewConfig
}

// Option is a functional option for configuring a conversion via NewConfig.
type Option func(*configBuilder)

type configBuilder struct {
	layoutSpec string
	grid       *Layout
	format     string
	flip       TwoSidedFlip
	copyPages  bool
	progress   ProgressFunc
}

// WithLayout sets the grid of input pages on one output sheet from a "WxH"
// specification such as "2x1" (see ParseLayout).
func WithLayout(spec string) Option {
	return func(c *configBuilder) {
		c.layoutSpec = spec
		c.grid = nil
	}
}

// WithLayoutGrid sets the grid from explicit dimensions.
func WithLayoutGrid(pagesInWidth, pagesInHeight int) Option {
	return func(c *configBuilder) {
		c.grid = &Layout{PagesInWidth: pagesInWidth, PagesInHeight: pagesInHeight}
	}
}

// WithPageFormat sets the output paper format by name, among the keys of
// PageFormats (e.g. "A3", "A4", "A5").
func WithPageFormat(name string) Option {
	return func(c *configBuilder) {
		c.format = name
	}
}

// WithFlip sets the edge the paper will be flipped on when printed
// two-sided. Defaults to ShortEdgeFlip, where all output sheets are the
// right way up. If your printer can only flip over the long edge, use
// LongEdgeFlip; the imposer rotates every odd output sheet 180 degrees to
// compensate.
func WithFlip(flip TwoSidedFlip) Option {
	return func(c *configBuilder) {
		c.flip = flip
	}
}

// WithCopyPages controls whether the same group of input pages is copied to
// fill every slot of its output sheet instead of advancing to new pages
// (used to print N identical copies per sheet for cut-and-stack printing).
func WithCopyPages(copyPages bool) Option {
	return func(c *configBuilder) {
		c.copyPages = copyPages
	}
}

// WithProgress registers a callback informing on conversion progress.
func WithProgress(fn ProgressFunc) Option {
	return func(c *configBuilder) {
		c.progress = fn
	}
}

// NewConfig builds an immutable conversion configuration.
// If no options are specified, defaults to a "2x1" layout on A4 paper with
// short-edge flip, no page copying, and no progress reporting.
//
// Validation is eager: a malformed layout or an unknown page format fails
// here, before any page is processed.
func NewConfig(opts ...Option) (Config, error) {
	b := configBuilder{layoutSpec: "2x1", format: "A4"}
	for _, opt := range opts {
		opt(&b)
	}

	var cfg Config
	var err error
	if b.grid != nil {
		cfg.Layout, err = NewLayout(b.grid.PagesInWidth, b.grid.PagesInHeight)
	} else {
		cfg.Layout, err = ParseLayout(b.layoutSpec)
	}
	if err != nil {
		return Config{}, err
	}
	if cfg.Output, err = FormatByName(b.format); err != nil {
		return Config{}, err
	}
	cfg.Flip = b.flip
	cfg.CopyPages = b.copyPages
	cfg.Progress = b.progress
	if cfg.Progress == nil {
		cfg.Progress = func(string, float64) {}
	}
	return cfg, nil
}
