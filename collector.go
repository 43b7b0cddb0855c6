package branchfeat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/branchfeat/corpus"
	"github.com/hupe1980/branchfeat/feat"
	"github.com/hupe1980/branchfeat/solver"
)

// Collector featurizes search nodes during one solver run and appends the
// resulting examples to corpus files in a directory, rotating files after
// a configurable number of examples.
//
// A Collector owns its scratch vectors and the open corpus file; it is not
// safe for concurrent use. Independent solver runs use independent
// Collectors over independent directories.
type Collector struct {
	state solver.SearchState
	dir   string
	opts  options

	va *feat.Vector
	vb *feat.Vector

	w      *corpus.Writer
	seq    int
	lines  int64 // lines in the current file
	total  Stats
	closed bool
}

// Stats aggregates what a Collector has written across all rotated files.
type Stats struct {
	// Examples is the number of lines written.
	Examples int64
	// Pairs is the number of pairwise examples among them.
	Pairs int64
	// Files is the number of corpus files started.
	Files int
}

// NewCollector creates a Collector writing corpus files into dir, creating
// it if necessary. WithMaxDepth must be given a nonzero value.
func NewCollector(state solver.SearchState, dir string, opts ...Option) (*Collector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDepth == 0 {
		return nil, fmt.Errorf("branchfeat: collector requires WithMaxDepth")
	}
	if o.featureSize < int(feat.NumSlots) {
		return nil, fmt.Errorf("branchfeat: feature size %d is smaller than the slot set (%d)", o.featureSize, feat.NumSlots)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("branchfeat: create corpus dir: %w", err)
	}

	va := feat.New(o.featureSize)
	va.SetMaxDepth(o.maxDepth)
	vb := feat.New(o.featureSize)
	vb.SetMaxDepth(o.maxDepth)

	c := &Collector{
		state: state,
		dir:   dir,
		opts:  o,
		va:    va,
		vb:    vb,
	}
	if err := c.rotate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Node featurizes one node and appends a single example with the given
// label.
func (c *Collector) Node(node solver.Node, label int) error {
	if c.closed {
		return fmt.Errorf("branchfeat: collector is closed")
	}
	feat.Calc(c.state, node, c.va)
	if err := c.w.WriteExample(c.va, label); err != nil {
		return err
	}
	c.count(1)
	return c.maybeRotate()
}

// Pair featurizes both nodes and appends the symmetric pair of difference
// examples: preferred-other with label +1 and its mirror with label -1.
// Training on both orderings keeps the learned scorer sign-consistent.
func (c *Collector) Pair(preferred, other solver.Node) error {
	if c.closed {
		return fmt.Errorf("branchfeat: collector is closed")
	}
	feat.Calc(c.state, preferred, c.va)
	feat.Calc(c.state, other, c.vb)

	if err := c.w.WritePair(c.va, c.vb, 1, false); err != nil {
		return err
	}
	if err := c.w.WritePair(c.va, c.vb, 1, true); err != nil {
		return err
	}
	c.count(2)
	c.total.Pairs += 2
	return c.maybeRotate()
}

// Stats returns the totals across all files written so far.
func (c *Collector) Stats() Stats { return c.total }

// FileStats returns the statistics of the currently open corpus file.
func (c *Collector) FileStats() corpus.Stats { return c.w.Stats() }

// Close flushes and closes the current corpus file. Close is idempotent.
func (c *Collector) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.w.Close()
	c.opts.logger.Info("corpus collection finished",
		"dir", c.dir, "files", c.total.Files, "examples", c.total.Examples)
	return err
}

func (c *Collector) count(n int64) {
	c.lines += n
	c.total.Examples += n
}

func (c *Collector) maybeRotate() error {
	if c.opts.rotateEvery <= 0 || c.lines < c.opts.rotateEvery {
		return nil
	}
	if err := c.w.Close(); err != nil {
		return err
	}
	return c.rotate()
}

func (c *Collector) rotate() error {
	name := fmt.Sprintf("%s-%06d%s", c.opts.filePrefix, c.seq, c.opts.compression.Suffix())
	w, err := corpus.Create(filepath.Join(c.dir, name), c.opts.compression)
	if err != nil {
		return err
	}
	c.w = w
	c.seq++
	c.lines = 0
	c.total.Files++
	c.opts.logger.WithFile(name).Debug("corpus file started")
	return nil
}
