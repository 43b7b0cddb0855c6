// Package feat computes fixed-size feature vectors from branch-and-bound
// search nodes.
//
// A Vector holds one node's feature values plus the metadata (depth,
// bound-change direction) that decides where those values land in a global
// sparse index space. Calc populates a Vector from the solver's read-only
// view; Offset maps the populated metadata to the vector's index block.
//
// Contract violations (uncalculated vectors, size mismatches, unset
// normalizers) are programmer errors and panic. Degenerate numeric inputs
// (zero root bound, empty columns) are not errors; Calc substitutes small
// constants so ratio features stay finite.
package feat
