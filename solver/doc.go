// Package solver defines the read-only view of a branch-and-bound solver
// that feature extraction depends on.
//
// The surrounding solver implements these interfaces; branchfeat never
// mutates solver state through them. Keeping the surface this narrow is
// deliberate: feature computation must not grow a dependency on tree
// management, LP solving or statistics bookkeeping.
//
// # Interfaces
//
//   - Node: a search node (depth, kind, bounds, bound-change history)
//   - SearchState: global search quantities (bounds, incumbent count)
//   - Variable: the branching variable (directions, solutions, statistics)
//   - Column: the LP column behind a variable
package solver
