// Package libsvm serializes feature vectors as sparse labeled text lines.
//
// Each line is a signed integer label followed by space-separated
// index:value pairs with ascending 1-based indices:
//
//	1 31:1.000000 32:2.000000 33:3.000000
//
// The index of a feature is its slot position plus the vector's Offset, so
// vectors from different depth deciles and bound directions occupy disjoint
// index ranges within one training file. WriteDiff overlays two such ranges
// to encode a pairwise ranking example.
//
// Lines are assembled in full before they are written: neither a contract
// panic nor an I/O error can leave a partial line in the output.
package libsvm
