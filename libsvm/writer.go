package libsvm

import (
	"io"
	"strconv"

	"github.com/hupe1980/branchfeat/feat"
)

// Writer emits feature vectors as sparse labeled lines to an underlying
// io.Writer. It is not safe for concurrent use; concurrent producers write
// to separate Writers over separate destinations.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteVector writes one line for v with the given label.
// Panics if v has not been calculated (depth 0).
func (w *Writer) WriteVector(v *feat.Vector, label int) error {
	if v.Depth() == 0 {
		panic("libsvm: cannot write an uncalculated vector")
	}

	w.buf = strconv.AppendInt(w.buf[:0], int64(label), 10)
	w.appendBlock(v.Values(), v.Offset(), false)
	w.buf = append(w.buf, '\n')

	_, err := w.w.Write(w.buf)
	return err
}

// WriteDiff writes one line encoding the elementwise difference a-b, with
// a's values placed at a's offset and b's negated values at b's offset. If
// negate is true the roles of a and b are swapped and the label's sign is
// flipped, producing the mirror example of the same pair.
//
// Panics if either vector is uncalculated or the sizes differ.
func (w *Writer) WriteDiff(a, b *feat.Vector, label int, negate bool) error {
	if a.Depth() == 0 || b.Depth() == 0 {
		panic("libsvm: cannot write an uncalculated vector")
	}
	if a.Size() != b.Size() {
		panic("libsvm: cannot diff vectors of different size")
	}

	if negate {
		a, b = b, a
		label = -label
	}

	offA := a.Offset()
	offB := b.Offset()

	w.buf = strconv.AppendInt(w.buf[:0], int64(label), 10)

	switch {
	case offA == offB:
		// Same block: superimpose as an elementwise difference.
		valsA, valsB := a.Values(), b.Values()
		for i := range valsA {
			w.appendPair(i+offA+1, valsA[i]-valsB[i])
		}
	case offA < offB:
		// Sparse format wants ascending indices: smaller block first.
		w.appendBlock(a.Values(), offA, false)
		w.appendBlock(b.Values(), offB, true)
	default:
		w.appendBlock(b.Values(), offB, true)
		w.appendBlock(a.Values(), offA, false)
	}

	w.buf = append(w.buf, '\n')

	_, err := w.w.Write(w.buf)
	return err
}

func (w *Writer) appendBlock(vals []float64, offset int, negate bool) {
	for i, val := range vals {
		if negate {
			val = -val
		}
		w.appendPair(i+offset+1, val)
	}
}

func (w *Writer) appendPair(index int, value float64) {
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendInt(w.buf, int64(index), 10)
	w.buf = append(w.buf, ':')
	w.buf = strconv.AppendFloat(w.buf, value, 'f', 6, 64)
}
