// Package fpdf implements pdfimpose's document backend on top of the gofpdf
// generation library and the gofpdi page importer.
//
// Input pages are imported as templates and placed scaled, translated and
// optionally rotated onto the output sheets; the input PDF itself is never
// modified. A Document works either on an io.ReadSeeker/io.Writer pair or
// on file paths, mirroring the stream and file conversion surfaces.
package fpdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gofpdf "github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"
	fpdi "github.com/phpdave11/gofpdi"

	"github.com/lvillar/pdfimpose"
)

// Document is a single conversion session: it reads pages from one input
// PDF and assembles one output PDF. It implements both
// pdfimpose.DocumentSource and pdfimpose.DocumentSink and must not be
// shared between concurrent conversions.
type Document struct {
	pdf *gofpdf.Fpdf
	imp *gofpdi.Importer

	rs        io.ReadSeeker // input stream; nil when reading from a file
	inputPath string        // input file path; empty when reading from a stream

	pageCount int
	pageSizes map[int]map[string]map[string]float64

	out     io.Writer // output stream; nil when writing to a file
	outPath string

	templates map[int]int    // source page index -> imported template id
	current   pdfimpose.Size // size of the current output sheet
	rotated   bool           // current sheet draws through a 180 degree transform
}

// NewDocument prepares a conversion session that reads the input PDF from
// rs and writes the converted document to w on Flush.
func NewDocument(rs io.ReadSeeker, w io.Writer) (doc *Document, err error) {
	defer recoverParseError("NewDocument", &err)

	raw := fpdi.NewImporter()
	raw.SetSourceStream(&rs)

	return &Document{
		pdf:       newSheetPDF(),
		imp:       gofpdi.NewImporter(),
		rs:        rs,
		pageCount: raw.GetNumPages(),
		pageSizes: raw.GetPageSizes(),
		out:       w,
		templates: make(map[int]int),
	}, nil
}

// OpenFile prepares a conversion session on files. outputPath may be empty,
// in which case DefaultOutputPath(inputPath) is used. When the output file
// already exists and confirm is non-nil, confirm is called with the
// absolute path; a false answer aborts with *pdfimpose.UserInterruptError.
// The output file is only created on Flush, so a failed conversion leaves
// no partial file behind.
func OpenFile(inputPath, outputPath string, confirm func(path string) bool) (doc *Document, err error) {
	defer recoverParseError("OpenFile", &err)

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}
	if confirm != nil {
		if _, statErr := os.Stat(outputPath); statErr == nil {
			abs, absErr := filepath.Abs(outputPath)
			if absErr != nil {
				abs = outputPath
			}
			if !confirm(abs) {
				return nil, &pdfimpose.UserInterruptError{}
			}
		}
	}

	raw := fpdi.NewImporter()
	raw.SetSourceFile(inputPath)

	return &Document{
		pdf:       newSheetPDF(),
		imp:       gofpdi.NewImporter(),
		inputPath: inputPath,
		pageCount: raw.GetNumPages(),
		pageSizes: raw.GetPageSizes(),
		outPath:   outputPath,
		templates: make(map[int]int),
	}, nil
}

// DefaultOutputPath derives the output file name from the input file name
// by appending "-conv" before the extension: "doc.pdf" becomes
// "doc-conv.pdf".
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "-conv.pdf"
}

// newSheetPDF creates the output document. Every sheet gets an explicit
// per-page format, so the document-level defaults are irrelevant.
func newSheetPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// recoverParseError converts gofpdi's parse panics into errors.
func recoverParseError(op string, err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("fpdf: %s: %w", op, e)
			return
		}
		*err = fmt.Errorf("fpdf: %s: %v", op, r)
	}
}

// PageCount implements pdfimpose.DocumentSource.
func (d *Document) PageCount() (int, error) {
	return d.pageCount, nil
}

// PageSize implements pdfimpose.DocumentSource. The index is 0-based.
func (d *Document) PageSize(index int) (pdfimpose.Size, error) {
	dims, ok := d.pageSizes[index+1]
	if !ok {
		return pdfimpose.Size{}, fmt.Errorf("fpdf: no such page %d", index)
	}
	mb, ok := dims["/MediaBox"]
	if !ok {
		return pdfimpose.Size{}, fmt.Errorf("fpdf: page %d has no media box", index)
	}
	return pdfimpose.Size{Width: mb["w"], Height: mb["h"]}, nil
}

// BeginPage implements pdfimpose.DocumentSink.
func (d *Document) BeginPage(size pdfimpose.Size, rotation int) error {
	d.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})
	d.current = size
	if rotation%360 != 0 {
		// Rotate the whole sheet around its center; every placement until
		// EndPage draws through this transform.
		d.pdf.TransformBegin()
		d.pdf.TransformRotate(float64(rotation), size.Width/2, size.Height/2)
		d.rotated = true
	}
	return d.pdf.Error()
}

// PlacePage implements pdfimpose.DocumentSink. The source page is imported
// once as a template and placed scaled then translated onto the current
// sheet.
func (d *Document) PlacePage(index int, p pdfimpose.Placement) (err error) {
	defer recoverParseError("PlacePage", &err)

	tpl := d.template(index)
	src, err := d.PageSize(index)
	if err != nil {
		return err
	}

	w := src.Width * p.Scale
	h := src.Height * p.Scale
	// Placement is in PDF user space (origin bottom-left); gofpdf wants
	// the top-left corner of the target box.
	x := p.TranslateX
	y := d.current.Height - p.TranslateY - h
	d.imp.UseImportedTemplate(d.pdf, tpl, x, y, w, h)
	return d.pdf.Error()
}

// template imports the source page at the 0-based index, reusing the
// template on repeated placements of the same page.
func (d *Document) template(index int) int {
	if tpl, ok := d.templates[index]; ok {
		return tpl
	}
	var tpl int
	if d.rs != nil {
		tpl = d.imp.ImportPageFromStream(d.pdf, &d.rs, index+1, "/MediaBox")
	} else {
		tpl = d.imp.ImportPage(d.pdf, d.inputPath, index+1, "/MediaBox")
	}
	d.templates[index] = tpl
	return tpl
}

// EndPage implements pdfimpose.DocumentSink.
func (d *Document) EndPage() error {
	if d.rotated {
		d.pdf.TransformEnd()
		d.rotated = false
	}
	return d.pdf.Error()
}

// Flush implements pdfimpose.DocumentSink: it serializes the assembled
// document to the destination stream or file.
func (d *Document) Flush() error {
	if d.pdf.Err() {
		return fmt.Errorf("fpdf: assembling output: %w", d.pdf.Error())
	}
	if d.out != nil {
		return d.pdf.Output(d.out)
	}
	f, err := os.Create(d.outPath)
	if err != nil {
		return fmt.Errorf("fpdf: creating %s: %w", d.outPath, err)
	}
	defer f.Close()
	return d.pdf.Output(f)
}
