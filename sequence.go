package pdfimpose

// Blank marks a sequence slot that receives no source page.
const Blank = -1

// Sequence is an ordered list of slot assignments. Non-negative entries are
// 0-based source page indices; Blank entries leave the slot empty. For
// LinearizeSequence the entries are destination insert positions instead,
// see there.
type Sequence []int

// BookletSequence computes the slot order that imposes a linear document of
// pageCount pages as a saddle-stitch booklet: sheet 1 holds pages
// {N, 1, 2, N-1}, sheet 2 holds {N-2, 3, 4, N-3}, and so on. The page list
// is padded at the tail with Blank entries until its length is a multiple
// of four; a page count that is not a multiple of four therefore produces
// trailing blank slots, not an error.
//
// When copyPages is set, every spread pair is replicated
// layout.PagesPerSheet()/2 times so each sheet carries copies of the same
// spread.
func BookletSequence(pageCount int, layout Layout, copyPages bool) Sequence {
	pages := make([]int, pageCount)
	for i := range pages {
		pages[i] = i
	}
	if pageCount%4 != 0 {
		for i := 0; i < 4-pageCount%4; i++ {
			pages = append(pages, Blank)
		}
	}

	appendPair := func(seq Sequence, a, b int) Sequence {
		if copyPages {
			for i := 0; i < layout.PagesPerSheet()/2; i++ {
				seq = append(seq, a, b)
			}
			return seq
		}
		return append(seq, a, b)
	}

	var seq Sequence
	for len(pages) > 0 {
		// Outside-in pair: last and first.
		seq = appendPair(seq, pages[len(pages)-1], pages[0])
		pages = pages[1 : len(pages)-1]
		// Inside-out pair: new first and new last.
		seq = appendPair(seq, pages[0], pages[len(pages)-1])
		pages = pages[1 : len(pages)-1]
	}
	return seq
}

// LinearizeSequence computes, for every slot of a booklet of pageCount
// sheets walked in blocks of four, the destination position at which the
// extracted page is inserted into the linear output document. Entries are
// insert positions, not source indices; Blank entries skip the slot. When
// copyPages is set, each position pair is followed by enough Blank entries
// to cover the duplicated slots of its sheet.
func LinearizeSequence(pageCount int, layout Layout, copyPages bool) Sequence {
	pagesPerSheet := layout.PagesPerSheet()

	appendPositions := func(seq Sequence, a, b int) Sequence {
		seq = append(seq, a, b)
		if copyPages {
			for i := 0; i < pagesPerSheet-2; i++ {
				seq = append(seq, Blank)
			}
		}
		return seq
	}

	var seq Sequence
	for i := 0; i < pageCount*pagesPerSheet; i += 4 {
		seq = appendPositions(seq, i/2, i/2)
		seq = appendPositions(seq, i/2+1, i/2+2)
	}
	return seq
}

// ReduceSequence computes the slot order for N-up placement without
// reordering. Without copyPages, pages keep their original order and the
// tail is padded with Blank entries to fill the last sheet. With copyPages,
// every page is replicated PagesPerSheet times so each source page fills
// one whole output sheet.
func ReduceSequence(pageCount int, layout Layout, copyPages bool) Sequence {
	pagesPerSheet := layout.PagesPerSheet()
	if copyPages {
		seq := make(Sequence, 0, pageCount*pagesPerSheet)
		for page := 0; page < pageCount; page++ {
			for i := 0; i < pagesPerSheet; i++ {
				seq = append(seq, page)
			}
		}
		return seq
	}

	seq := make(Sequence, 0, pageCount)
	for page := 0; page < pageCount; page++ {
		seq = append(seq, page)
	}
	for len(seq)%pagesPerSheet != 0 {
		seq = append(seq, Blank)
	}
	return seq
}
