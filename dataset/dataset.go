package dataset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyTable is returned when a table contains no data rows.
var ErrEmptyTable = errors.New("table contains no data rows")

// ErrRowWidthMismatch indicates a row whose value count differs from the
// first row of the table.
type ErrRowWidthMismatch struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrRowWidthMismatch) Error() string {
	return fmt.Sprintf("line %d: row has %d values, expected %d", e.Line, e.Actual, e.Expected)
}

// ErrMissingLabel indicates a data line without a row label.
type ErrMissingLabel struct {
	Line int
}

func (e *ErrMissingLabel) Error() string {
	return fmt.Sprintf("line %d: missing row label", e.Line)
}

// ParseError indicates a cell that could not be parsed as a float32.
//
// The original underlying error can be accessed via errors.Unwrap.
type ParseError struct {
	Line   int
	Column int
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Dataset is a labeled float32 matrix with uniform row width.
//
// Rows share a single flat backing array. A Dataset is exclusively owned by
// whoever constructs or receives it; normalization mutates it in place.
type Dataset struct {
	labels []string
	values []float32
	width  int
}

// New creates a Dataset from labels and rows.
// All rows must have the same non-zero width, and labels must be parallel to
// rows.
func New(labels []string, rows [][]float32) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("label count %d does not match row count %d", len(labels), len(rows))
	}

	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("rows must have at least one value")
	}

	values := make([]float32, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, &ErrRowWidthMismatch{Line: i + 1, Expected: width, Actual: len(row)}
		}
		values = append(values, row...)
	}

	return &Dataset{
		labels: slices.Clone(labels),
		values: values,
		width:  width,
	}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.values) / d.width
}

// Width returns the number of values per row.
func (d *Dataset) Width() int {
	return d.width
}

// Row returns row i as a slice into the backing array.
// Mutating the returned slice mutates the Dataset.
func (d *Dataset) Row(i int) []float32 {
	return d.values[i*d.width : (i+1)*d.width]
}

// Label returns the label of row i.
func (d *Dataset) Label(i int) string {
	return d.labels[i]
}

// Labels returns a copy of all row labels.
func (d *Dataset) Labels() []string {
	return slices.Clone(d.labels)
}

// Clone returns a deep copy of the Dataset.
// Multi-start runs clone per restart since normalization mutates in place.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		labels: slices.Clone(d.labels),
		values: slices.Clone(d.values),
		width:  d.width,
	}
}
