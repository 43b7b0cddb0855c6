package branchfeat

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/branchfeat/blobstore"
)

// Exporter uploads finished corpus files to a blob store.
type Exporter struct {
	store blobstore.Store
	opts  options
}

// NewExporter creates an Exporter over the given store.
func NewExporter(store blobstore.Store, opts ...Option) *Exporter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Exporter{store: store, opts: o}
}

// Export uploads every regular file in dir (non-recursive) under its base
// name. Files already present in the store are skipped unless
// WithExportOverwrite was set. Uploads run with the configured concurrency
// and share the configured byte-rate budget; the first error cancels the
// remaining uploads.
func (e *Exporter) Export(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("branchfeat: read corpus dir: %w", err)
	}

	var limiter *rate.Limiter
	if e.opts.exportBytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(e.opts.exportBytesPerSec), int(e.opts.exportBytesPerSec))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.exportConcurrency)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			return e.upload(ctx, filepath.Join(dir, name), name, limiter)
		})
	}
	return g.Wait()
}

func (e *Exporter) upload(ctx context.Context, path, name string, limiter *rate.Limiter) error {
	log := e.opts.logger.WithFile(name)

	if !e.opts.exportOverwrite {
		ok, err := e.store.Exists(ctx, name)
		if err != nil {
			return err
		}
		if ok {
			log.Debug("corpus file already uploaded, skipping")
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	var r io.Reader = f
	if limiter != nil {
		r = &limitedReader{r: f, limiter: limiter, ctx: ctx}
	}

	if err := e.store.Put(ctx, name, r, info.Size()); err != nil {
		return fmt.Errorf("branchfeat: upload %s: %w", name, err)
	}
	log.Info("corpus file uploaded", "bytes", info.Size())
	return nil
}

// limitedReader throttles reads against a shared rate limiter.
type limitedReader struct {
	r       io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func (l *limitedReader) Read(p []byte) (int, error) {
	// Cap the chunk at the limiter's burst so WaitN cannot fail.
	if burst := l.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := l.r.Read(p)
	if n > 0 {
		if werr := l.limiter.WaitN(l.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
