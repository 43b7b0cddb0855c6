package feat

// Slot names one position in a Vector's value array. The order is fixed:
// serialized corpora index features by these positions, so reordering or
// removing slots invalidates previously written training data.
type Slot int

const (
	// SlotLowerBound is the node lower bound over the root lower bound.
	SlotLowerBound Slot = iota
	// SlotEstimate is the node estimate over the root lower bound.
	SlotEstimate
	// SlotRelativeBound is the node bound's position between the global
	// lower bound and the cutoff bound.
	SlotRelativeBound
	// SlotNodeSibling is 1 if the node is a sibling of the focus node.
	SlotNodeSibling
	// SlotNodeChild is 1 if the node is a child of the focus node.
	SlotNodeChild
	// SlotNodeLeaf is 1 if the node is a queue leaf.
	SlotNodeLeaf
	// SlotObjPerNonzero is the branching variable's objective coefficient
	// per column nonzero.
	SlotObjPerNonzero
	// SlotBoundLPDiff is the new branching bound minus the variable's LP
	// solution value.
	SlotBoundLPDiff
	// SlotRootLPDiff is the variable's root LP value minus its current LP
	// value.
	SlotRootLPDiff
	// SlotPrioDown is 1 if the variable prefers branching downwards.
	SlotPrioDown
	// SlotPrioUp is 1 if the variable prefers branching upwards.
	SlotPrioUp
	// SlotPseudocost is the pseudocost of the branching move per unit of
	// objective coefficient.
	SlotPseudocost
	// SlotAvgInference is the variable's average inference count in the
	// direction implied by the bound change, normalized by max depth.
	SlotAvgInference

	// NumSlots closes the slot set; vectors passed to Calc must hold at
	// least this many values.
	NumSlots
)
