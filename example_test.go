package pdfimpose_test

import (
	"fmt"
	"log"

	"github.com/lvillar/pdfimpose"
)

func ExampleBookletSequence() {
	layout, err := pdfimpose.ParseLayout("2x1")
	if err != nil {
		log.Fatal(err)
	}
	seq := pdfimpose.BookletSequence(4, layout, false)
	fmt.Println(seq)
	// Output: [3 0 1 2]
}

func ExampleParseLayout() {
	layout, err := pdfimpose.ParseLayout("2x2")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(layout.PagesPerSheet())
	// Output: 4
}
