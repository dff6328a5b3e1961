// SPDX-License-Identifier: MIT

package frontfile

import "errors"

// Sentinel errors.
var (
	// ErrSyntax indicates a value that does not parse as a float64.
	ErrSyntax = errors.New("frontfile: syntax error")

	// ErrColumnRange indicates a selected column beyond the end of a row.
	ErrColumnRange = errors.New("frontfile: column out of range")

	// ErrUnsupportedCompression indicates an unknown Compression value.
	ErrUnsupportedCompression = errors.New("frontfile: unsupported compression")
)

const (
	panicColumnNegative = "frontfile: WithColumns: column index must be non-negative"
	panicDelimiterEmpty = "frontfile: WithDelimiter: delimiter must be non-empty"
)

// Options configures reading and writing.
//
// Fields:
//   - Delimiter   — value separator; "" splits on runs of whitespace when
//     reading and writes a single space.
//   - Columns     — zero-indexed objective columns to keep, in order; nil keeps all.
//   - Compression — stream codec; Open and Create default to the codec
//     implied by the file extension.
type Options struct {
	Delimiter   string
	Columns     []int
	Compression Compression
}

// DefaultOptions returns whitespace-separated, uncompressed, all columns.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithDelimiter sets the value separator. It panics on an empty delimiter.
func WithDelimiter(d string) Option {
	if d == "" {
		panic(panicDelimiterEmpty)
	}

	return func(o *Options) { o.Delimiter = d }
}

// WithColumns keeps only the given zero-indexed columns, in the given order.
// It panics on a negative index.
func WithColumns(cols ...int) Option {
	for _, c := range cols {
		if c < 0 {
			panic(panicColumnNegative)
		}
	}
	cp := append([]int(nil), cols...)

	return func(o *Options) { o.Columns = cp }
}

// WithCompression forces a codec regardless of the file extension.
func WithCompression(c Compression) Option {
	return func(o *Options) { o.Compression = c }
}

func gather(path string, setters []Option) Options {
	o := DefaultOptions()
	o.Compression = DetectCompression(path)
	for _, set := range setters {
		if set != nil {
			set(&o)
		}
	}

	return o
}
