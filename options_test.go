package pdfimpose_test

import (
	"errors"
	"testing"

	"github.com/lvillar/pdfimpose"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := pdfimpose.NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Layout.String() != "2x1" {
		t.Errorf("layout = %s, want 2x1", cfg.Layout)
	}
	if want := (pdfimpose.Size{Width: 595, Height: 842}); cfg.Output != want {
		t.Errorf("output = %v, want %v", cfg.Output, want)
	}
	if cfg.Flip != pdfimpose.ShortEdgeFlip {
		t.Errorf("flip = %v, want short edge", cfg.Flip)
	}
	if cfg.CopyPages {
		t.Error("copy pages enabled by default")
	}
	if cfg.Progress == nil {
		t.Error("progress callback is nil")
	}
}

func TestNewConfigOptions(t *testing.T) {
	called := false
	cfg, err := pdfimpose.NewConfig(
		pdfimpose.WithLayoutGrid(2, 2),
		pdfimpose.WithPageFormat("Letter"),
		pdfimpose.WithFlip(pdfimpose.LongEdgeFlip),
		pdfimpose.WithCopyPages(true),
		pdfimpose.WithProgress(func(string, float64) { called = true }),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Layout.PagesPerSheet() != 4 {
		t.Errorf("pages per sheet = %d, want 4", cfg.Layout.PagesPerSheet())
	}
	if want := (pdfimpose.Size{Width: 612, Height: 792}); cfg.Output != want {
		t.Errorf("output = %v, want %v", cfg.Output, want)
	}
	if cfg.Flip != pdfimpose.LongEdgeFlip || !cfg.CopyPages {
		t.Errorf("flip = %v, copyPages = %v", cfg.Flip, cfg.CopyPages)
	}
	cfg.Progress("test", 0)
	if !called {
		t.Error("progress callback not wired")
	}
}

func TestNewConfigUnknownFormat(t *testing.T) {
	// Validation is eager: the unknown format fails before any sheet
	// geometry is computed.
	_, err := pdfimpose.NewConfig(pdfimpose.WithPageFormat("A2"))
	var unknown *pdfimpose.UnknownFormatError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownFormatError", err)
	}
}

func TestNewConfigInvalidLayout(t *testing.T) {
	_, err := pdfimpose.NewConfig(pdfimpose.WithLayout("2by1"))
	if !errors.Is(err, pdfimpose.ErrInvalidLayout) {
		t.Fatalf("err = %v, want ErrInvalidLayout", err)
	}

	_, err = pdfimpose.NewConfig(pdfimpose.WithLayoutGrid(0, 1))
	if !errors.Is(err, pdfimpose.ErrInvalidLayout) {
		t.Fatalf("err = %v, want ErrInvalidLayout", err)
	}
}
