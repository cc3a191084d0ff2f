// Package pdfimpose rearranges the pages of a paginated document onto
// output sheets according to a layout grid.
//
// Three conversions are supported:
//   - Bookletize reorders a linear document into booklet (saddle-stitch)
//     order, so that folding and stapling the printed stack yields correctly
//     ordered reading pages;
//   - Linearize reverts a booklet to linear page order;
//   - Reduce places several pages on one sheet without reordering (N-up).
//
// The package computes page sequences and slot geometry only. Reading and
// writing actual page content is delegated to a document backend implementing
// the DocumentSource and DocumentSink interfaces; the fpdf subpackage
// provides a gofpdf/gofpdi-based implementation working on PDF files and
// streams.
//
// Conversions are synchronous and single-threaded. A Converter together with
// its source and sink must not be shared between concurrent conversions.
package pdfimpose
