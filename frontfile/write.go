// SPDX-License-Identifier: MIT

package frontfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/hypervolume/front"
)

// Create writes fronts to the file at path, compressing by extension
// unless WithCompression overrides it. An existing file is truncated.
func Create(path string, fronts []*front.Front, opts ...Option) (err error) {
	o := gather(path, opts)
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	if err = write(fh, fronts, o); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Write encodes fronts to w, each followed by a '#' separator line.
// Columns are ignored; values use the shortest exact representation.
func Write(w io.Writer, fronts []*front.Front, opts ...Option) error {
	return write(w, fronts, gather("", opts))
}

func write(w io.Writer, fronts []*front.Front, o Options) error {
	wc, err := compress(w, o.Compression)
	if err != nil {
		return err
	}
	sep := o.Delimiter
	if sep == "" {
		sep = " "
	}

	return encode(wc, fronts, sep)
}

// encode writes fronts to wc and closes it on every path; the first error wins.
func encode(wc io.WriteCloser, fronts []*front.Front, sep string) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(wc)
	var buf []byte
	for _, f := range fronts {
		for _, p := range f.Points() {
			buf = buf[:0]
			for j, v := range p {
				if j > 0 {
					buf = append(buf, sep...)
				}
				buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			}
			buf = append(buf, '\n')
			if _, err = bw.Write(buf); err != nil {
				return err
			}
		}
		if _, err = bw.WriteString("#\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
