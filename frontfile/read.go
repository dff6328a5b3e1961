// SPDX-License-Identifier: MIT

package frontfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypervolume/front"
)

// maxLineBytes bounds a single point line.
const maxLineBytes = 16 << 20

// Open reads every front stored in the file at path, decompressing by
// extension unless WithCompression overrides it.
func Open(path string, opts ...Option) ([]*front.Front, error) {
	o := gather(path, opts)
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	rc, err := decompress(bufio.NewReader(fh), o.Compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer rc.Close()

	fronts, err := read(rc, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fronts, nil
}

// Read parses every front from r. Compression, if set, is applied to r.
//
// Errors:
//   - ErrSyntax for a non-numeric value (wrapped with the line number).
//   - front.ErrRaggedRows when a point's length differs within a front.
//   - ErrColumnRange when a selected column does not exist on a line.
func Read(r io.Reader, opts ...Option) ([]*front.Front, error) {
	o := gather("", opts)
	rc, err := decompress(r, o.Compression)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return read(rc, o)
}

func read(r io.Reader, o Options) ([]*front.Front, error) {
	var (
		fronts []*front.Front
		rows   [][]float64
		line   int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		f, err := front.FromRows(rows)
		if err != nil {
			return fmt.Errorf("frontfile: front %d: %w", len(fronts), err)
		}
		fronts = append(fronts, f)
		rows = nil

		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case text[0] == '#':
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		row, err := parseRow(text, o)
		if err != nil {
			return nil, fmt.Errorf("frontfile: line %d: %w", line, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("frontfile: line %d has %d values, want %d: %w",
				line, len(row), len(rows[0]), front.ErrRaggedRows)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("frontfile: line %d: %w", line+1, err)
		}

		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return fronts, nil
}

// parseRow splits one point line and applies the column selection.
func parseRow(text string, o Options) ([]float64, error) {
	var fields []string
	if o.Delimiter == "" {
		fields = strings.Fields(text)
	} else {
		fields = strings.Split(text, o.Delimiter)
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i+1, field, ErrSyntax)
		}
		values[i] = v
	}
	if o.Columns == nil {
		return values, nil
	}

	picked := make([]float64, len(o.Columns))
	for i, c := range o.Columns {
		if c >= len(values) {
			return nil, fmt.Errorf("column %d of %d: %w", c, len(values), ErrColumnRange)
		}
		picked[i] = values[c]
	}

	return picked, nil
}
