package report

import (
	"errors"
	"fmt"
)

var (
	// ErrMarkerNotFound indicates the input has no Package Pins Summary section.
	ErrMarkerNotFound = errors.New("marker \"" + SummaryMarker + "\" not found")

	// ErrTruncatedHeader indicates the input ended inside the table header.
	ErrTruncatedHeader = errors.New("table header truncated")

	// ErrFieldCount indicates a row with the wrong number of columns.
	ErrFieldCount = errors.New("unexpected field count")

	// ErrMissingField indicates a required column is blank.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidBank indicates a non-integer bank column.
	ErrInvalidBank = errors.New("invalid bank number")

	// ErrDuplicatePin indicates the same package pin appears twice.
	ErrDuplicatePin = errors.New("duplicate package pin")
)

// ParseError reports a structural problem in the report. Line is 1-based
// and zero when the problem is not tied to a single line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("report: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("report: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
