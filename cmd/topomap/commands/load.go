// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads one point per record. Blank lines and lines starting with
// '#' are skipped; a first record that does not parse as numbers is taken as
// a header. Row lengths are not checked here.
func LoadCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points [][]float64
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		p, err := parseRecord(rec)
		if err != nil {
			if first {
				continue
			}
			row, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("csv line %d: %w", row, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func parseRecord(rec []string) ([]float64, error) {
	p := make([]float64, len(rec))
	for i, field := range rec {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		p[i] = x
	}

	return p, nil
}
