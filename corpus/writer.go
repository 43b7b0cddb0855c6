package corpus

import (
	"fmt"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/branchfeat/feat"
	"github.com/hupe1980/branchfeat/libsvm"
)

// Stats summarizes what a Writer has emitted so far.
type Stats struct {
	// Lines is the number of examples written.
	Lines int64
	// Positive and Negative count lines by label sign; zero labels count
	// as neither.
	Positive int64
	Negative int64
	// Indices is the set of global feature indices occupied by at least
	// one written example.
	Indices *roaring.Bitmap
	// MaxIndex is the largest occupied index, 0 if nothing was written.
	MaxIndex uint32
}

// Writer appends examples to one corpus destination. It owns the
// compression layer but not the destination itself, except when created
// via Create. Not safe for concurrent use.
type Writer struct {
	file   *os.File // non-nil only when created via Create
	comp   io.WriteCloser
	enc    *libsvm.Writer
	stats  Stats
	closed bool
}

// NewWriter creates a Writer that appends examples to w through the given
// compression.
func NewWriter(w io.Writer, c Compression) (*Writer, error) {
	comp, err := c.wrap(w)
	if err != nil {
		return nil, err
	}
	return &Writer{
		comp:  comp,
		enc:   libsvm.NewWriter(comp),
		stats: Stats{Indices: roaring.New()},
	}, nil
}

// Create creates the file at path and returns a Writer over it. Closing
// the Writer closes the file.
func Create(path string, c Compression) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: create %s: %w", path, err)
	}
	w, err := NewWriter(f, c)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.file = f
	return w, nil
}

// WriteExample appends one single-vector example.
func (w *Writer) WriteExample(v *feat.Vector, label int) error {
	if w.closed {
		return fmt.Errorf("corpus: writer is closed")
	}
	if err := w.enc.WriteVector(v, label); err != nil {
		return err
	}
	w.record(label)
	w.occupy(v)
	return nil
}

// WritePair appends one pairwise-difference example.
func (w *Writer) WritePair(a, b *feat.Vector, label int, negate bool) error {
	if w.closed {
		return fmt.Errorf("corpus: writer is closed")
	}
	if err := w.enc.WriteDiff(a, b, label, negate); err != nil {
		return err
	}
	if negate {
		label = -label
	}
	w.record(label)
	w.occupy(a)
	w.occupy(b)
	return nil
}

// Stats returns a snapshot of the corpus statistics. The returned bitmap
// is a copy and stays valid after further writes.
func (w *Writer) Stats() Stats {
	s := w.stats
	s.Indices = w.stats.Indices.Clone()
	return s
}

// Close flushes and closes the compression layer and, for file-backed
// writers, the file. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.comp.Close()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (w *Writer) record(label int) {
	w.stats.Lines++
	switch {
	case label > 0:
		w.stats.Positive++
	case label < 0:
		w.stats.Negative++
	}
}

func (w *Writer) occupy(v *feat.Vector) {
	lo := uint64(v.Offset() + 1)
	hi := lo + uint64(v.Size())
	w.stats.Indices.AddRange(lo, hi)
	if max := uint32(hi - 1); max > w.stats.MaxIndex {
		w.stats.MaxIndex = max
	}
}
