package fpdf_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	gofpdf "github.com/phpdave11/gofpdf"
	fpdi "github.com/phpdave11/gofpdi"

	"github.com/lvillar/pdfimpose"
	"github.com/lvillar/pdfimpose/fpdf"
)

// createTestPDF generates a simple A5 portrait test PDF with the given
// number of pages.
func createTestPDF(t *testing.T, filename string, numPages int) {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A5", "")
	pdf.SetFont("Helvetica", "", 14)
	for i := 1; i <= numPages; i++ {
		pdf.AddPage()
		pdf.Text(20, 30, fmt.Sprintf("Page %d of %d", i, numPages))
	}
	if err := pdf.OutputFileAndClose(filename); err != nil {
		t.Fatalf("creating test PDF: %v", err)
	}
}

// readPages parses the converted PDF and returns the size of every page.
func readPages(t *testing.T, filename string) (sizes []pdfimpose.Size) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("parsing %s: %v", filename, r)
		}
	}()

	imp := fpdi.NewImporter()
	imp.SetSourceFile(filename)
	n := imp.GetNumPages()
	dims := imp.GetPageSizes()
	for i := 1; i <= n; i++ {
		mb := dims[i]["/MediaBox"]
		sizes = append(sizes, pdfimpose.Size{Width: mb["w"], Height: mb["h"]})
	}
	return sizes
}

func sizeNear(got, want pdfimpose.Size) bool {
	const tol = 1.0 // points
	return math.Abs(got.Width-want.Width) < tol && math.Abs(got.Height-want.Height) < tol
}

func TestBookletizeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "booklet.pdf")
	createTestPDF(t, input, 4)

	if err := fpdf.BookletizeFile(input, output); err != nil {
		t.Fatalf("bookletize: %v", err)
	}

	// Four portrait pages on 2x1 sheets give two landscape A4 sheets.
	sizes := readPages(t, output)
	if len(sizes) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(sizes))
	}
	want := pdfimpose.Size{Width: 842, Height: 595}
	for i, size := range sizes {
		if !sizeNear(size, want) {
			t.Errorf("sheet %d: size %v, want %v", i, size, want)
		}
	}
	t.Logf("Booklet: %d sheets of %.0fx%.0f pt", len(sizes), sizes[0].Width, sizes[0].Height)
}

func TestBookletizeStream(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	createTestPDF(t, input, 4)
	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := fpdf.Bookletize(&buf, bytes.NewReader(data)); err != nil {
		t.Fatalf("bookletize: %v", err)
	}

	converted := filepath.Join(dir, "booklet.pdf")
	if err := os.WriteFile(converted, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if sizes := readPages(t, converted); len(sizes) != 2 {
		t.Errorf("expected 2 sheets, got %d", len(sizes))
	}
}

func TestLinearizeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	booklet := filepath.Join(dir, "booklet.pdf")
	linear := filepath.Join(dir, "linear.pdf")
	createTestPDF(t, input, 4)

	if err := fpdf.BookletizeFile(input, booklet); err != nil {
		t.Fatalf("bookletize: %v", err)
	}
	if err := fpdf.LinearizeFile(booklet, linear); err != nil {
		t.Fatalf("linearize: %v", err)
	}

	// Back to four portrait A4 pages.
	sizes := readPages(t, linear)
	if len(sizes) != 4 {
		t.Fatalf("expected 4 pages, got %d", len(sizes))
	}
	want := pdfimpose.Size{Width: 595, Height: 842}
	for i, size := range sizes {
		if !sizeNear(size, want) {
			t.Errorf("page %d: size %v, want %v", i, size, want)
		}
	}
}

func TestReduceFileCopyPages(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "reduced.pdf")
	createTestPDF(t, input, 3)

	err := fpdf.ReduceFile(input, output,
		pdfimpose.WithLayout("2x2"),
		pdfimpose.WithCopyPages(true))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	// With copies, every source page fills one whole sheet.
	if sizes := readPages(t, output); len(sizes) != 3 {
		t.Errorf("expected 3 sheets, got %d", len(sizes))
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"doc.pdf", "doc-conv.pdf"},
		{"dir/doc.pdf", "dir/doc-conv.pdf"},
		{"doc", "doc-conv.pdf"},
	}
	for _, tt := range tests {
		if got := fpdf.DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenFileOverwriteConfirm(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "out.pdf")
	createTestPDF(t, input, 1)
	if err := os.WriteFile(output, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	var asked string
	_, err := fpdf.OpenFile(input, output, func(path string) bool {
		asked = path
		return false
	})
	var interrupt *pdfimpose.UserInterruptError
	if !errors.As(err, &interrupt) {
		t.Fatalf("err = %v, want UserInterruptError", err)
	}
	if asked == "" {
		t.Error("confirm callback not called")
	}

	// The declined output file is left untouched.
	data, err := os.ReadFile(output)
	if err != nil || string(data) != "existing" {
		t.Errorf("output file modified: %q, %v", data, err)
	}
}

func TestBookletizeUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "out.pdf")
	createTestPDF(t, input, 4)

	err := fpdf.BookletizeFile(input, output, pdfimpose.WithPageFormat("A2"))
	var unknown *pdfimpose.UnknownFormatError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownFormatError", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output file created despite config error")
	}
}
