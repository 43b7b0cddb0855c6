package branchfeat

import (
	"github.com/hupe1980/branchfeat/corpus"
	"github.com/hupe1980/branchfeat/feat"
)

type options struct {
	logger      *Logger
	compression corpus.Compression
	featureSize int
	maxDepth    int
	rotateEvery int64
	filePrefix  string

	exportConcurrency int
	exportBytesPerSec int64
	exportOverwrite   bool
}

func defaultOptions() options {
	return options{
		logger:            NoopLogger(),
		compression:       corpus.None,
		featureSize:       int(feat.NumSlots),
		rotateEvery:       0, // no rotation
		filePrefix:        "corpus",
		exportConcurrency: 1,
	}
}

// Option configures Collector and Exporter behavior.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCompression configures the compression corpus files are written with.
func WithCompression(c corpus.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithFeatureSize configures the feature vector size. The default,
// feat.NumSlots, fits exactly the built-in slot set; a larger size leaves
// trailing slots at zero for caller-defined extensions.
func WithFeatureSize(size int) Option {
	return func(o *options) {
		o.featureSize = size
	}
}

// WithMaxDepth configures the depth normalizer used for feature
// calculation and index placement. Collectors require it to be nonzero.
func WithMaxDepth(maxDepth int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

// WithRotateEvery configures file rotation: after n examples the current
// corpus file is closed and a new one is started. n <= 0 disables
// rotation (one file per Collector).
func WithRotateEvery(n int64) Option {
	return func(o *options) {
		o.rotateEvery = n
	}
}

// WithFilePrefix configures the corpus file name prefix ("corpus" by
// default, yielding corpus-000000.libsvm, corpus-000001.libsvm, ...).
func WithFilePrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.filePrefix = prefix
		}
	}
}

// WithExportConcurrency configures how many files an Exporter uploads in
// parallel. Values below 1 are treated as 1.
func WithExportConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.exportConcurrency = n
	}
}

// WithExportRateLimit caps the aggregate upload throughput in bytes per
// second. 0 means unlimited.
func WithExportRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.exportBytesPerSec = bytesPerSec
	}
}

// WithExportOverwrite makes the Exporter re-upload files that already
// exist in the store instead of skipping them.
func WithExportOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.exportOverwrite = overwrite
	}
}
