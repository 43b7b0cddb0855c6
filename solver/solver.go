package solver

import "fmt"

// BoundType is the direction of a bound change.
type BoundType int

const (
	// BoundLower tightens a variable's lower bound.
	BoundLower BoundType = iota
	// BoundUpper tightens a variable's upper bound.
	BoundUpper
)

// String returns a string representation of the BoundType.
func (b BoundType) String() string {
	switch b {
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return fmt.Sprintf("BoundType(%d)", int(b))
	}
}

// NodeKind classifies a search node relative to the focus node.
type NodeKind int

const (
	// NodeOther covers kinds that carry no feature signal (focus, probing,
	// dead-end, refocused...).
	NodeOther NodeKind = iota
	// NodeSibling is a sibling of the focus node.
	NodeSibling
	// NodeChild is a child of the focus node.
	NodeChild
	// NodeLeaf is a leaf of the open-node queue.
	NodeLeaf
)

// BranchDir is a branching direction hint or statistic axis.
type BranchDir int

const (
	// BranchAuto means no preference.
	BranchAuto BranchDir = iota
	// BranchDown prefers rounding the variable down.
	BranchDown
	// BranchUp prefers rounding the variable up.
	BranchUp
	// BranchFixed prefers fixing the variable.
	BranchFixed
)

// ChangeKind is the origin of a bound change.
type ChangeKind int

const (
	// ChangeBranching marks a bound change made by a branching decision.
	ChangeBranching ChangeKind = iota
	// ChangeInference marks a bound change deduced by propagation or
	// constraint inference.
	ChangeInference
)

// BoundChange is one entry of a node's bound-change history.
type BoundChange struct {
	// Var is the variable whose bound changed.
	Var Variable
	// NewBound is the bound value after the change.
	NewBound float64
	// Bound is the direction of the change.
	Bound BoundType
	// Kind is the origin of the change.
	Kind ChangeKind
}

// Node is a read-only view of a branch-and-bound search node.
type Node interface {
	// Depth is the node's depth in the search tree; the root has depth 0.
	Depth() int
	// Kind classifies the node relative to the focus node.
	Kind() NodeKind
	// LowerBound is the node's local dual bound.
	LowerBound() float64
	// Estimate is the node's objective estimate.
	Estimate() float64
	// BoundChanges returns the node's bound changes in application order.
	// For a branched node the first entry is the branching decision.
	BoundChanges() []BoundChange
}

// SearchState is a read-only view of global search quantities.
type SearchState interface {
	// LowerBound is the current global dual bound.
	LowerBound() float64
	// CutoffBound is the current global primal (cutoff) bound.
	CutoffBound() float64
	// RootLowerBound is the dual bound of the root node's relaxation.
	RootLowerBound() float64
	// SolutionsFound is the number of feasible solutions found so far.
	SolutionsFound() int64
	// FocusNodeHasLP reports whether the focus node has a solved LP
	// relaxation, which decides where Variable.LPSol reads from.
	FocusNodeHasLP() bool
}

// Variable is a read-only view of a decision variable.
type Variable interface {
	// BranchDirection is the variable's preferred branching direction.
	BranchDirection() BranchDir
	// Column is the LP column associated with the variable.
	Column() Column
	// LPSol is the variable's value in the current LP solution when hasLP
	// is true, otherwise a fallback value (e.g. the pseudo solution).
	LPSol(hasLP bool) float64
	// RootLPSol is the variable's value in the root LP solution.
	RootLPSol() float64
	// Pseudocost estimates the objective degradation for moving the
	// variable by delta from its LP value.
	Pseudocost(delta float64) float64
	// AvgInferences is the average number of inferences historically
	// triggered by branching the variable in the given direction.
	AvgInferences(dir BranchDir) float64
}

// Column is a read-only view of an LP column.
type Column interface {
	// Obj is the variable's objective coefficient.
	Obj() float64
	// Nonzeros is the number of nonzero entries in the column.
	Nonzeros() int
}
