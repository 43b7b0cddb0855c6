package feat

import (
	"math"

	"github.com/hupe1980/branchfeat/solver"
)

// Calc populates v's values, depth and bound type from the given node,
// overwriting any prior content.
//
// Preconditions (violations panic): node is not the root, v.SetMaxDepth has
// been called with a nonzero value, v holds at least NumSlots values, and
// the node's first recorded bound change is a branching decision on exactly
// one variable.
func Calc(state solver.SearchState, node solver.Node, v *Vector) {
	if node.Depth() == 0 {
		panic("feat: cannot calculate features for the root node")
	}
	if v.maxDepth == 0 {
		panic("feat: calculation requires maxDepth to be set")
	}
	if v.size < int(NumSlots) {
		panic("feat: vector too small for the feature slot set")
	}

	chgs := node.BoundChanges()
	if len(chgs) == 0 || chgs[0].Kind != solver.ChangeBranching {
		panic("feat: node has no leading branching bound change")
	}
	// Branching on more than one variable is unsupported.
	if len(chgs) > 1 && chgs[1].Kind == solver.ChangeBranching {
		panic("feat: multi-variable branching is unsupported")
	}

	nodeLower := node.LowerBound()
	rootLower := state.RootLowerBound()
	if rootLower == 0 {
		rootLower = 0.1
	}
	lower := state.LowerBound()
	cutoff := state.CutoffBound()
	// Before the first incumbent the cutoff is effectively infinite; shrink
	// it toward the dual bound so relative-bound features stay meaningful.
	if state.SolutionsFound() == 0 {
		cutoff = lower + 0.2*(cutoff-lower)
	}

	branchVar := chgs[0].Var
	branchBound := chgs[0].NewBound
	col := branchVar.Column()
	varObj := col.Obj()
	colSize := float64(col.Nonzeros())
	if colSize == 0 {
		colSize = 0.1
	}
	absObj := math.Abs(varObj)
	if absObj == 0 {
		absObj = 0.1
	}

	varSol := branchVar.LPSol(state.FocusNodeHasLP())
	varRootSol := branchVar.RootLPSol()

	v.depth = node.Depth()
	v.boundType = chgs[0].Bound
	vals := v.vals
	for i := range vals {
		vals[i] = 0
	}

	vals[SlotLowerBound] = nodeLower / rootLower
	vals[SlotEstimate] = node.Estimate() / rootLower

	if cutoff-lower != 0 {
		vals[SlotRelativeBound] = (nodeLower - lower) / (cutoff - lower)
	}

	switch node.Kind() {
	case solver.NodeSibling:
		vals[SlotNodeSibling] = 1
	case solver.NodeChild:
		vals[SlotNodeChild] = 1
	case solver.NodeLeaf:
		vals[SlotNodeLeaf] = 1
	}

	vals[SlotObjPerNonzero] = varObj / colSize
	vals[SlotBoundLPDiff] = branchBound - varSol
	vals[SlotRootLPDiff] = varRootSol - varSol

	switch branchVar.BranchDirection() {
	case solver.BranchDown:
		vals[SlotPrioDown] = 1
	case solver.BranchUp:
		vals[SlotPrioUp] = 1
	}

	vals[SlotPseudocost] = branchVar.Pseudocost(branchBound-varSol) / absObj

	// A lower-bound tightening moves the variable upwards and vice versa.
	infDir := solver.BranchDown
	if v.boundType == solver.BoundLower {
		infDir = solver.BranchUp
	}
	vals[SlotAvgInference] = branchVar.AvgInferences(infDir) / float64(v.maxDepth)
}
