package pdfimpose

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is the sentinel wrapped by all layout parsing and
// validation failures.
var ErrInvalidLayout = errors.New("pdfimpose: invalid layout")

// UnknownFormatError reports a requested output page format name that is not
// present in PageFormats. It is raised at configuration time, before any
// page is processed.
type UnknownFormatError struct {
	Format string // the unrecognized format name
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("pdfimpose: unknown page format %q", e.Format)
}

// MismatchingOrientationsError reports a layout grid that cannot be
// reconciled with the input page orientation. It is raised before any sheet
// is produced.
type MismatchingOrientationsError struct {
	Layout Layout // the problematic layout
}

func (e *MismatchingOrientationsError) Error() string {
	return fmt.Sprintf("pdfimpose: layout %s is incompatible with the input page orientation", e.Layout)
}

// UserInterruptError reports that the caller declined to overwrite an
// existing destination file.
type UserInterruptError struct{}

func (e *UserInterruptError) Error() string {
	return "pdfimpose: user interruption"
}

// ConvError represents an error that occurred during a specific conversion
// operation. It wraps an underlying error and includes the operation name
// for context.
type ConvError struct {
	Op  string // operation name, e.g. "Bookletize", "Linearize"
	Err error  // underlying error
}

func (e *ConvError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfimpose.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdfimpose.%s: unknown error", e.Op)
}

func (e *ConvError) Unwrap() error {
	return e.Err
}

// newConvError creates a new ConvError wrapping the given error with
// operation context.
func newConvError(op string, err error) *ConvError {
	return &ConvError{Op: op, Err: err}
}
