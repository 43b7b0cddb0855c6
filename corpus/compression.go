package corpus

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the compressor a corpus file is written through.
type Compression int

const (
	// None writes plain text.
	None Compression = iota
	// Gzip writes gzip-compressed text.
	Gzip
	// Zstd writes zstandard-compressed text.
	Zstd
	// LZ4 writes lz4-compressed text.
	LZ4
)

// String returns the stable name of the compression.
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
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Suffix returns the file suffix for corpus files written with c,
// including the base format suffix.
func (c Compression) Suffix() string {
	switch c {
	case Gzip:
		return ".libsvm.gz"
	case Zstd:
		return ".libsvm.zst"
	case LZ4:
		return ".libsvm.lz4"
	default:
		return ".libsvm"
	}
}

// ByName returns a built-in compression by its stable name.
func ByName(name string) (Compression, bool) {
	switch name {
	case "none", "":
		return None, true
	case "gzip":
		return Gzip, true
	case "zstd":
		return Zstd, true
	case "lz4":
		return LZ4, true
	default:
		return None, false
	}
}

// nopCloser adds a no-op Close to a plain io.Writer.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// wrap layers the compressor over w. The returned WriteCloser closes only
// the compression layer, never w itself.
func (c Compression) wrap(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("corpus: unknown compression %d", int(c))
	}
}
