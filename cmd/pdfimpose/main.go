// Command pdfimpose converts PDF documents between page layouts.
//
// # Usage
//
//	pdfimpose bookletize book.pdf            # linear -> booklet
//	pdfimpose linearize booklet.pdf          # booklet -> linear
//	pdfimpose reduce -l 2x2 slides.pdf       # 4-up without reordering
//
// The output defaults to <input>-conv.pdf. Layout, paper format, flip edge
// and page copying can be set per invocation or through a TOML defaults
// file; see pdfimpose --help.
package main

import (
	"os"

	"github.com/lvillar/pdfimpose/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
