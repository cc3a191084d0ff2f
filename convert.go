package pdfimpose

import "fmt"

// Converter drives one conversion run against a document backend. Source
// and sink may be the same value; the fpdf subpackage implements both on a
// single document session.
//
// A Converter holds no state across calls, but slot placement is inherently
// sequential: every PlacePage call mutates the shared destination document.
// Concurrent conversions must use independent source/sink instances.
type Converter struct {
	src  DocumentSource
	sink DocumentSink
	cfg  Config
}

// NewConverter creates a Converter reading pages from src and assembling
// output sheets through sink, configured by cfg.
func NewConverter(src DocumentSource, sink DocumentSink, cfg Config) *Converter {
	return &Converter{src: src, sink: sink, cfg: cfg}
}

// Bookletize reorders the linear input document into saddle-stitch booklet
// order. Page counts that are not a multiple of four are padded with
// trailing blank slots, not rejected; callers that care should check the
// count beforehand.
func (c *Converter) Bookletize() error {
	count, input, output, err := c.prepare("Bookletize", ReconcileForImpose)
	if err != nil {
		return err
	}
	seq := BookletSequence(count, c.cfg.Layout, c.cfg.CopyPages)
	return c.impose("Bookletize", seq, input, output)
}

// Reduce places the input pages on output sheets in their original order
// (N-up). The tail of the last sheet is padded with blank slots when the
// page count does not fill the grid.
func (c *Converter) Reduce() error {
	count, input, output, err := c.prepare("Reduce", ReconcileForImpose)
	if err != nil {
		return err
	}
	seq := ReduceSequence(count, c.cfg.Layout, c.cfg.CopyPages)
	return c.impose("Reduce", seq, input, output)
}

// Linearize reverts a booklet to linear page order, extracting one output
// page per non-blank slot of every input sheet.
func (c *Converter) Linearize() error {
	count, input, output, err := c.prepare("Linearize", ReconcileForLinearize)
	if err != nil {
		return err
	}
	seq := LinearizeSequence(count, c.cfg.Layout, c.cfg.CopyPages)
	return c.extract("Linearize", seq, count, input, output)
}

// prepare queries the input document and reconciles the output sheet
// orientation. It runs before any output is produced, so incompatible
// configurations fail without leaving partial results. Empty documents skip
// reconciliation; they produce an empty output regardless of orientation.
func (c *Converter) prepare(op string, reconcile func(Layout, Size, Size) (Size, error)) (count int, input, output Size, err error) {
	count, err = c.src.PageCount()
	if err != nil {
		return 0, Size{}, Size{}, newConvError(op, err)
	}
	if count == 0 {
		return 0, Size{}, c.cfg.Output, nil
	}
	input, err = c.src.PageSize(0)
	if err != nil {
		return 0, Size{}, Size{}, newConvError(op, err)
	}
	output, err = reconcile(c.cfg.Layout, input, c.cfg.Output)
	if err != nil {
		return 0, Size{}, Size{}, newConvError(op, err)
	}
	return count, input, output, nil
}

// impose lays the sequenced source pages onto output sheets, walking each
// sheet's grid row by row, left to right. With long-edge flip, every odd
// sheet (0-based) is rotated 180 degrees.
func (c *Converter) impose(op string, seq Sequence, input, output Size) error {
	layout := c.cfg.Layout
	pagesPerSheet := layout.PagesPerSheet()
	sheets := (len(seq) + pagesPerSheet - 1) / pagesPerSheet

	for sheet := 0; sheet < sheets; sheet++ {
		c.cfg.Progress(fmt.Sprintf("creating page %d", sheet+1),
			float64(sheet*pagesPerSheet)/float64(len(seq)))

		rotation := 0
		if c.cfg.Flip == LongEdgeFlip && sheet%2 == 1 {
			rotation = 180
		}
		if err := c.sink.BeginPage(output, rotation); err != nil {
			return newConvError(op, err)
		}
		for row := 0; row < layout.PagesInHeight; row++ {
			for col := 0; col < layout.PagesInWidth; col++ {
				slot := sheet*pagesPerSheet + row*layout.PagesInWidth + col
				if slot >= len(seq) || seq[slot] == Blank {
					continue
				}
				p := ImposePlacement(row, col, layout, input, output)
				if err := c.sink.PlacePage(seq[slot], p); err != nil {
					return newConvError(op, err)
				}
			}
		}
		if err := c.sink.EndPage(); err != nil {
			return newConvError(op, err)
		}
	}
	return c.flush(op)
}

// extract walks the slots of every input sheet, resolves the destination
// position named by the sequence for each non-blank slot, and emits the
// extracted pages in final document order. Positions past the end of the
// document are clamped, so a sequence that runs ahead of the available
// pages truncates silently rather than failing.
func (c *Converter) extract(op string, seq Sequence, sheetCount int, input, output Size) error {
	layout := c.cfg.Layout

	// Resolve insert positions up front: the sink only appends, so the
	// final order has to be known before the first page is emitted.
	type slotRef struct {
		sheet, row, col int
	}
	var order []slotRef
	k := 0
	for sheet := 0; sheet < sheetCount; sheet++ {
		for row := 0; row < layout.PagesInHeight; row++ {
			for col := 0; col < layout.PagesInWidth; col++ {
				if k >= len(seq) {
					continue
				}
				pos := seq[k]
				k++
				if pos == Blank {
					continue
				}
				if pos > len(order) {
					pos = len(order)
				}
				order = append(order, slotRef{})
				copy(order[pos+1:], order[pos:])
				order[pos] = slotRef{sheet: sheet, row: row, col: col}
			}
		}
	}

	for i, ref := range order {
		c.cfg.Progress(fmt.Sprintf("extracting page %d", i+1),
			float64(i)/float64(len(order)))

		if err := c.sink.BeginPage(output, 0); err != nil {
			return newConvError(op, err)
		}
		p := ExtractPlacement(ref.row, ref.col, layout, input, output)
		if err := c.sink.PlacePage(ref.sheet, p); err != nil {
			return newConvError(op, err)
		}
		if err := c.sink.EndPage(); err != nil {
			return newConvError(op, err)
		}
	}
	return c.flush(op)
}

func (c *Converter) flush(op string) error {
	c.cfg.Progress("writing converted file", 1)
	if err := c.sink.Flush(); err != nil {
		return newConvError(op, err)
	}
	c.cfg.Progress("done", 1)
	return nil
}
