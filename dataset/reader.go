package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TableReader parses a record format into a Dataset.
//
// Implementations must document their concurrency contract; readers plugged
// into concurrent pipelines are expected to be safe for concurrent use.
type TableReader interface {
	// ReadTable parses the full table from r.
	// It either returns a fully valid Dataset or an error; no partial state.
	ReadTable(r io.Reader) (*Dataset, error)

	// Name returns the stable name of the format.
	Name() string
}

// DSV reads delimiter-separated tables with a single configurable delimiter.
//
// DSV is stateless and safe for concurrent use.
type DSV struct {
	// Delimiter separates fields. The zero value means comma.
	Delimiter rune
}

// Name returns "dsv".
func (DSV) Name() string { return "dsv" }

func (d DSV) delimiter() string {
	if d.Delimiter == 0 {
		return ","
	}
	return string(d.Delimiter)
}

// ReadTable parses a delimited table from r.
//
// The first field of each line is the row label. A first line with an empty
// leading field is a header and is skipped. Every other line must carry a
// label and the same number of float32 values as the first data line.
func (d DSV) ReadTable(r io.Reader) (*Dataset, error) {
	sep := d.delimiter()

	var (
		labels []string
		rows   [][]float32
		width  = -1
		line   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}

		fields := strings.Split(text, sep)
		if fields[0] == "" {
			if len(labels) == 0 {
				// Header row.
				continue
			}
			return nil, &ErrMissingLabel{Line: line}
		}

		values := make([]float32, 0, len(fields)-1)
		for col, cell := range fields[1:] {
			f, err := strconv.ParseFloat(strings.TrimSpace(cell), 32)
			if err != nil {
				return nil, &ParseError{Line: line, Column: col + 2, cause: err}
			}
			values = append(values, float32(f))
		}

		if width == -1 {
			width = len(values)
		} else if len(values) != width {
			return nil, &ErrRowWidthMismatch{Line: line, Expected: width, Actual: len(values)}
		}

		labels = append(labels, fields[0])
		rows = append(rows, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	return New(labels, rows)
}
