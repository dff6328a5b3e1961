// SPDX-License-Identifier: MIT

package frontfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names a stream codec.
type Compression uint8

const (
	// None stores plain text.
	None Compression = iota

	// Gzip uses klauspost/compress/gzip (.gz).
	Gzip

	// Zstd uses klauspost/compress/zstd (.zst).
	Zstd

	// LZ4 uses the pierrec/lz4 frame format (.lz4).
	LZ4
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// DetectCompression maps a file extension to its codec; unknown
// extensions are plain text.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// decompress wraps r with the decoder for c.
func decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("frontfile: gzip header: %w", err)
		}

		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("frontfile: zstd: %w", err)
		}

		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("frontfile: %s: %w", c, ErrUnsupportedCompression)
	}
}

// compress wraps w with the encoder for c. Closing the result flushes the
// encoder but leaves w open.
func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("frontfile: zstd: %w", err)
		}

		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("frontfile: %s: %w", c, ErrUnsupportedCompression)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
