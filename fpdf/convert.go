package fpdf

import (
	"io"

	"github.com/lvillar/pdfimpose"
)

// Bookletize converts the linear PDF read from rs to a booklet written to w.
func Bookletize(w io.Writer, rs io.ReadSeeker, opts ...pdfimpose.Option) error {
	return convertStream(rs, w, (*pdfimpose.Converter).Bookletize, opts)
}

// BookletizeFile converts a linear PDF file to a booklet. outputPath may be
// empty to derive it from inputPath (see DefaultOutputPath). An existing
// output file is overwritten; use OpenFile directly to confirm overwrites.
func BookletizeFile(inputPath, outputPath string, opts ...pdfimpose.Option) error {
	return convertFile(inputPath, outputPath, (*pdfimpose.Converter).Bookletize, opts)
}

// Linearize converts the booklet PDF read from rs back to linear page
// order, written to w.
func Linearize(w io.Writer, rs io.ReadSeeker, opts ...pdfimpose.Option) error {
	return convertStream(rs, w, (*pdfimpose.Converter).Linearize, opts)
}

// LinearizeFile converts a booklet PDF file back to linear page order.
func LinearizeFile(inputPath, outputPath string, opts ...pdfimpose.Option) error {
	return convertFile(inputPath, outputPath, (*pdfimpose.Converter).Linearize, opts)
}

// Reduce places several pages of the PDF read from rs on each output sheet
// without reordering, written to w.
func Reduce(w io.Writer, rs io.ReadSeeker, opts ...pdfimpose.Option) error {
	return convertStream(rs, w, (*pdfimpose.Converter).Reduce, opts)
}

// ReduceFile places several pages of a PDF file on each output sheet
// without reordering.
func ReduceFile(inputPath, outputPath string, opts ...pdfimpose.Option) error {
	return convertFile(inputPath, outputPath, (*pdfimpose.Converter).Reduce, opts)
}

func convertStream(rs io.ReadSeeker, w io.Writer, run func(*pdfimpose.Converter) error, opts []pdfimpose.Option) error {
	cfg, err := pdfimpose.NewConfig(opts...)
	if err != nil {
		return err
	}
	doc, err := NewDocument(rs, w)
	if err != nil {
		return err
	}
	return run(pdfimpose.NewConverter(doc, doc, cfg))
}

func convertFile(inputPath, outputPath string, run func(*pdfimpose.Converter) error, opts []pdfimpose.Option) error {
	cfg, err := pdfimpose.NewConfig(opts...)
	if err != nil {
		return err
	}
	doc, err := OpenFile(inputPath, outputPath, nil)
	if err != nil {
		return err
	}
	return run(pdfimpose.NewConverter(doc, doc, cfg))
}
