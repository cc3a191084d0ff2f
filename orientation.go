package pdfimpose

// reconcileOutput adapts the output sheet orientation to the layout grid and
// the input page orientation. double reports whether its first operand is
// exactly twice the second; imposing compares pages-in-width against
// pages-in-height, linearizing the reverse.
func reconcileOutput(layout Layout, input, output Size, double func(a, b int) bool) (Size, error) {
	in := input.Orientation()
	switch {
	case double(layout.PagesInWidth, layout.PagesInHeight):
		if in != OrientationPortrait {
			return Size{}, &MismatchingOrientationsError{Layout: layout}
		}
		return ensure(output, OrientationLandscape), nil
	case double(layout.PagesInHeight, layout.PagesInWidth):
		if in != OrientationLandscape {
			return Size{}, &MismatchingOrientationsError{Layout: layout}
		}
		return ensure(output, OrientationPortrait), nil
	default:
		// Neither grid dimension is exactly double the other: only oppose a
		// portrait/landscape mismatch with the input, never fail.
		if in == OrientationLandscape {
			return ensure(output, OrientationLandscape), nil
		}
		return ensure(output, OrientationPortrait), nil
	}
}

// ensure returns the size oriented as asked, swapping width and height when
// needed. Square sizes are left alone.
func ensure(s Size, o Orientation) Size {
	cur := s.Orientation()
	if cur == OrientationSquare || cur == o {
		return s
	}
	return s.flipped()
}

func isDouble(a, b int) bool { return a == 2*b }

func isHalf(a, b int) bool { return b == 2*a }

// ReconcileForImpose fixes the output sheet orientation for the bookletize
// and reduce directions. The returned size may have width and height swapped
// relative to output; a *MismatchingOrientationsError is returned when the
// layout grid is incompatible with the input page orientation.
//
// This is a pure decision, re-run at the start of every conversion.
func ReconcileForImpose(layout Layout, input, output Size) (Size, error) {
	return reconcileOutput(layout, input, output, isDouble)
}

// ReconcileForLinearize fixes the output sheet orientation for the linearize
// direction, which undoes the opposite grid relationship.
func ReconcileForLinearize(layout Layout, input, output Size) (Size, error) {
	return reconcileOutput(layout, input, output, isHalf)
}
