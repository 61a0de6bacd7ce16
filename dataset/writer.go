package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteAssignments writes a cluster assignment as delimited text.
//
// The header is "Rowname<sep>Cluster", followed by one line per row.
// Clusters are written 1-indexed; in memory they are 0-indexed.
func WriteAssignments(w io.Writer, labels []string, clusters []int, delimiter rune) error {
	if len(labels) != len(clusters) {
		return fmt.Errorf("label count %d does not match assignment count %d", len(labels), len(clusters))
	}

	sep := string(delimiter)
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "Rowname%sCluster\n", sep); err != nil {
		return err
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(bw, "%s%s%d\n", label, sep, clusters[i]+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadAssignments parses an assignment file written by WriteAssignments.
// Returned clusters are converted back to 0-indexed.
func ReadAssignments(r io.Reader, delimiter rune) (labels []string, clusters []int, err error) {
	sep := string(delimiter)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		if line == 1 {
			// Header.
			continue
		}

		fields := strings.Split(text, sep)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		if fields[0] == "" {
			return nil, nil, &ErrMissingLabel{Line: line}
		}

		cluster, perr := strconv.Atoi(strings.TrimSpace(fields[1]))
		if perr != nil {
			return nil, nil, &ParseError{Line: line, Column: 2, cause: perr}
		}
		if cluster < 1 {
			return nil, nil, fmt.Errorf("line %d: cluster numbers are 1-indexed, got %d", line, cluster)
		}

		labels = append(labels, fields[0])
		clusters = append(clusters, cluster-1)
	}
	if serr := scanner.Err(); serr != nil {
		return nil, nil, fmt.Errorf("read assignments: %w", serr)
	}

	return labels, clusters, nil
}
