// Package corpus writes training-corpus files of sparse labeled examples.
//
// A Writer wraps a destination with an optional compressor and a libsvm
// line writer, and tracks corpus statistics while writing: line and label
// counts, the set of occupied global feature indices (a Roaring bitmap)
// and the maximum index. Downstream training uses the stats to size its
// feature space without re-reading the corpus.
//
// # Compression
//
//   - None: plain text (.libsvm)
//   - Gzip: klauspost/compress gzip (.libsvm.gz)
//   - Zstd: klauspost/compress zstd (.libsvm.zst)
//   - LZ4:  pierrec/lz4 (.libsvm.lz4)
//
// Compression names are stable and resolvable via ByName, so file suffixes
// are self-describing.
package corpus
