// Package branchfeat turns branch-and-bound search-node state into
// fixed-size feature vectors and writes them as sparse labeled training
// data for learned node-selection scorers.
//
// # Packages
//
//   - solver: read-only interfaces the surrounding solver implements
//   - feat: feature vectors, the slot set, the calculator, index offsets
//   - libsvm: sparse labeled line serialization
//   - corpus: corpus files with compression and occupancy stats
//   - blobstore: artifact stores (local, memory, S3, MinIO)
//
// # Quick Start
//
// Collect symmetric pairwise examples during a solver run:
//
//	c, err := branchfeat.NewCollector(state, "./corpus",
//	    branchfeat.WithMaxDepth(42),
//	    branchfeat.WithCompression(corpus.Zstd),
//	    branchfeat.WithRotateEvery(100_000),
//	)
//	if err != nil { ... }
//	defer c.Close()
//
//	// whenever the oracle prefers node a over node b:
//	if err := c.Pair(a, b); err != nil { ... }
//
// Upload finished corpus files to object storage:
//
//	exp := branchfeat.NewExporter(store,
//	    branchfeat.WithExportConcurrency(4),
//	)
//	if err := exp.Export(ctx, "./corpus"); err != nil { ... }
package branchfeat
