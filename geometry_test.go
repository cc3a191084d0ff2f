package pdfimpose_test

import (
	"math"
	"testing"

	"github.com/lvillar/pdfimpose"
)

const tolerance = 1e-9

func TestReductionFactorInvariant(t *testing.T) {
	// reductionFactor * pagesInWidth * inputWidth == outputWidth.
	inputs := []pdfimpose.Size{
		{Width: 420, Height: 595},
		{Width: 595, Height: 842},
		{Width: 612, Height: 792},
	}
	outputs := []pdfimpose.Size{
		{Width: 842, Height: 595},
		{Width: 595, Height: 842},
	}
	layouts := []string{"2x1", "2x2", "3x2"}

	for _, spec := range layouts {
		layout := mustLayout(t, spec)
		for _, in := range inputs {
			for _, out := range outputs {
				factor := pdfimpose.ReductionFactor(layout, in, out)
				got := factor * float64(layout.PagesInWidth) * in.Width
				if math.Abs(got-out.Width) > tolerance {
					t.Errorf("layout %s, in %v, out %v: %v != %v", spec, in, out, got, out.Width)
				}
			}
		}
	}
}

func TestImposePlacement(t *testing.T) {
	layout := mustLayout(t, "2x2")
	input := pdfimpose.Size{Width: 420, Height: 595}
	output := pdfimpose.Size{Width: 595, Height: 842}

	tests := []struct {
		row, col int
		wantX    float64
		wantY    float64
	}{
		{row: 0, col: 0, wantX: 0, wantY: 421},
		{row: 0, col: 1, wantX: 297.5, wantY: 421},
		{row: 1, col: 0, wantX: 0, wantY: 0},
		{row: 1, col: 1, wantX: 297.5, wantY: 0},
	}
	for _, tt := range tests {
		p := pdfimpose.ImposePlacement(tt.row, tt.col, layout, input, output)
		if math.Abs(p.TranslateX-tt.wantX) > tolerance || math.Abs(p.TranslateY-tt.wantY) > tolerance {
			t.Errorf("slot (%d,%d): translate = (%v, %v), want (%v, %v)",
				tt.row, tt.col, p.TranslateX, p.TranslateY, tt.wantX, tt.wantY)
		}
		if want := pdfimpose.ReductionFactor(layout, input, output); p.Scale != want {
			t.Errorf("slot (%d,%d): scale = %v, want %v", tt.row, tt.col, p.Scale, want)
		}
	}
}

func TestExtractPlacement(t *testing.T) {
	layout := mustLayout(t, "2x1")
	input := pdfimpose.Size{Width: 842, Height: 595} // booklet sheet
	output := pdfimpose.Size{Width: 595, Height: 842}

	left := pdfimpose.ExtractPlacement(0, 0, layout, input, output)
	if left.TranslateX != 0 || left.TranslateY != 0 {
		t.Errorf("left slot: translate = (%v, %v), want (0, 0)", left.TranslateX, left.TranslateY)
	}

	right := pdfimpose.ExtractPlacement(0, 1, layout, input, output)
	if right.TranslateX != -output.Width || right.TranslateY != 0 {
		t.Errorf("right slot: translate = (%v, %v), want (%v, 0)", right.TranslateX, right.TranslateY, -output.Width)
	}

	wantScale := float64(layout.PagesInWidth) * output.Width / input.Width
	if math.Abs(left.Scale-wantScale) > tolerance {
		t.Errorf("scale = %v, want %v", left.Scale, wantScale)
	}
}
