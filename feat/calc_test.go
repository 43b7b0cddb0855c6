package feat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/branchfeat/solver"
)

type fakeColumn struct {
	obj      float64
	nonzeros int
}

func (c fakeColumn) Obj() float64  { return c.obj }
func (c fakeColumn) Nonzeros() int { return c.nonzeros }

type fakeVariable struct {
	dir        solver.BranchDir
	col        fakeColumn
	lpSol      float64
	noLPSol    float64
	rootLPSol  float64
	pcostPerDelta  float64
	avgInfUp   float64
	avgInfDown float64
}

func (v fakeVariable) BranchDirection() solver.BranchDir { return v.dir }
func (v fakeVariable) Column() solver.Column             { return v.col }

func (v fakeVariable) LPSol(hasLP bool) float64 {
	if hasLP {
		return v.lpSol
	}
	return v.noLPSol
}

func (v fakeVariable) RootLPSol() float64 { return v.rootLPSol }

func (v fakeVariable) Pseudocost(delta float64) float64 { return v.pcostPerDelta * delta }

func (v fakeVariable) AvgInferences(dir solver.BranchDir) float64 {
	if dir == solver.BranchUp {
		return v.avgInfUp
	}
	return v.avgInfDown
}

type fakeNode struct {
	depth    int
	kind     solver.NodeKind
	lower    float64
	estimate float64
	chgs     []solver.BoundChange
}

func (n fakeNode) Depth() int                         { return n.depth }
func (n fakeNode) Kind() solver.NodeKind              { return n.kind }
func (n fakeNode) LowerBound() float64                { return n.lower }
func (n fakeNode) Estimate() float64                  { return n.estimate }
func (n fakeNode) BoundChanges() []solver.BoundChange { return n.chgs }

type fakeState struct {
	lower     float64
	cutoff    float64
	rootLower float64
	nSols     int64
	hasLP     bool
}

func (s fakeState) LowerBound() float64     { return s.lower }
func (s fakeState) CutoffBound() float64    { return s.cutoff }
func (s fakeState) RootLowerBound() float64 { return s.rootLower }
func (s fakeState) SolutionsFound() int64   { return s.nSols }
func (s fakeState) FocusNodeHasLP() bool    { return s.hasLP }

func testVariable() fakeVariable {
	return fakeVariable{
		dir:        solver.BranchUp,
		col:        fakeColumn{obj: 2, nonzeros: 4},
		lpSol:      0.4,
		noLPSol:    0.25,
		rootLPSol:  0.7,
		pcostPerDelta:  0.5,
		avgInfUp:   3,
		avgInfDown: 7,
	}
}

func testNode(v solver.Variable) fakeNode {
	return fakeNode{
		depth:    3,
		kind:     solver.NodeChild,
		lower:    5,
		estimate: 6,
		chgs: []solver.BoundChange{
			{Var: v, NewBound: 1, Bound: solver.BoundLower, Kind: solver.ChangeBranching},
			{Var: v, NewBound: 0, Bound: solver.BoundUpper, Kind: solver.ChangeInference},
		},
	}
}

func testState() fakeState {
	return fakeState{lower: 4, cutoff: 10, rootLower: 2, nSols: 1, hasLP: true}
}

func calcVector(t *testing.T, state solver.SearchState, node solver.Node) *Vector {
	t.Helper()
	v := New(int(NumSlots))
	v.SetMaxDepth(30)
	Calc(state, node, v)
	return v
}

func TestCalc(t *testing.T) {
	v := calcVector(t, testState(), testNode(testVariable()))

	assert.Equal(t, 3, v.Depth())
	assert.Equal(t, solver.BoundLower, v.BoundType())

	vals := v.Values()
	assert.InDelta(t, 2.5, vals[SlotLowerBound], 1e-9) // 5/2
	assert.InDelta(t, 3.0, vals[SlotEstimate], 1e-9) // 6/2
	assert.InDelta(t, 1.0/6, vals[SlotRelativeBound], 1e-9) // (5-4)/(10-4)
	assert.Zero(t, vals[SlotNodeSibling])
	assert.Equal(t, 1.0, vals[SlotNodeChild])
	assert.Zero(t, vals[SlotNodeLeaf])
	assert.InDelta(t, 0.5, vals[SlotObjPerNonzero], 1e-9) // 2/4
	assert.InDelta(t, 0.6, vals[SlotBoundLPDiff], 1e-9) // 1-0.4
	assert.InDelta(t, 0.3, vals[SlotRootLPDiff], 1e-9) // 0.7-0.4
	assert.Zero(t, vals[SlotPrioDown])
	assert.Equal(t, 1.0, vals[SlotPrioUp])
	assert.InDelta(t, 0.15, vals[SlotPseudocost], 1e-9) // 0.5*0.6/2
	assert.InDelta(t, 0.1, vals[SlotAvgInference], 1e-9) // up: 3/30
}

func TestCalcOverwritesPriorContent(t *testing.T) {
	v := New(int(NumSlots))
	v.SetMaxDepth(30)
	for i := range v.Values() {
		v.Values()[i] = 99
	}

	Calc(testState(), testNode(testVariable()), v)

	// One-hot slots not selected by this node must be back at zero.
	assert.Zero(t, v.Values()[SlotNodeSibling])
	assert.Zero(t, v.Values()[SlotNodeLeaf])
	assert.Zero(t, v.Values()[SlotPrioDown])
}

func TestCalcDefensiveSubstitutions(t *testing.T) {
	t.Run("ZeroRootLowerBound", func(t *testing.T) {
		state := testState()
		state.rootLower = 0
		v := calcVector(t, state, testNode(testVariable()))
		// substituted divisor 0.1
		assert.InDelta(t, 50.0, v.Values()[SlotLowerBound], 1e-9)
		assert.InDelta(t, 60.0, v.Values()[SlotEstimate], 1e-9)
	})

	t.Run("NoIncumbentShrinksCutoff", func(t *testing.T) {
		state := testState()
		state.nSols = 0
		v := calcVector(t, state, testNode(testVariable()))
		// cutoff = 4 + 0.2*(10-4) = 5.2
		assert.InDelta(t, 1.0/1.2, v.Values()[SlotRelativeBound], 1e-9)
	})

	t.Run("ZeroBoundGapLeavesRelativeBoundAtZero", func(t *testing.T) {
		state := testState()
		state.cutoff = state.lower
		v := calcVector(t, state, testNode(testVariable()))
		assert.Zero(t, v.Values()[SlotRelativeBound])
	})

	t.Run("EmptyColumn", func(t *testing.T) {
		variable := testVariable()
		variable.col.nonzeros = 0
		v := calcVector(t, testState(), testNode(variable))
		// substituted column size 0.1
		assert.InDelta(t, 20.0, v.Values()[SlotObjPerNonzero], 1e-9)
	})

	t.Run("ZeroObjectiveCoefficient", func(t *testing.T) {
		variable := testVariable()
		variable.col.obj = 0
		v := calcVector(t, testState(), testNode(variable))
		// pseudocost divisor |obj| substituted with 0.1
		assert.InDelta(t, 0.5*0.6/0.1, v.Values()[SlotPseudocost], 1e-9)
	})
}

func TestCalcLPFallback(t *testing.T) {
	state := testState()
	state.hasLP = false
	v := calcVector(t, state, testNode(testVariable()))
	assert.InDelta(t, 0.75, v.Values()[SlotBoundLPDiff], 1e-9) // 1-0.25
	assert.InDelta(t, 0.45, v.Values()[SlotRootLPDiff], 1e-9) // 0.7-0.25
}

func TestCalcInferenceDirectionFollowsBoundType(t *testing.T) {
	variable := testVariable()
	node := testNode(variable)
	node.chgs[0].Bound = solver.BoundUpper

	v := calcVector(t, testState(), node)

	assert.Equal(t, solver.BoundUpper, v.BoundType())
	// upper bound change implies the downwards statistic: 7/30
	assert.InDelta(t, 7.0/30, v.Values()[SlotAvgInference], 1e-9)
}

func TestCalcNodeKindOneHot(t *testing.T) {
	for kind, slot := range map[solver.NodeKind]Slot{
		solver.NodeSibling: SlotNodeSibling,
		solver.NodeChild:   SlotNodeChild,
		solver.NodeLeaf:    SlotNodeLeaf,
	} {
		node := testNode(testVariable())
		node.kind = kind
		v := calcVector(t, testState(), node)

		for _, s := range []Slot{SlotNodeSibling, SlotNodeChild, SlotNodeLeaf} {
			if s == slot {
				assert.Equal(t, 1.0, v.Values()[s])
			} else {
				assert.Zero(t, v.Values()[s])
			}
		}
	}

	t.Run("OtherKindLeavesAllZero", func(t *testing.T) {
		node := testNode(testVariable())
		node.kind = solver.NodeOther
		v := calcVector(t, testState(), node)
		assert.Zero(t, v.Values()[SlotNodeSibling])
		assert.Zero(t, v.Values()[SlotNodeChild])
		assert.Zero(t, v.Values()[SlotNodeLeaf])
	})
}

func TestCalcBranchDirectionOneHot(t *testing.T) {
	for _, tt := range []struct {
		dir  solver.BranchDir
		down float64
		up   float64
	}{
		{solver.BranchDown, 1, 0},
		{solver.BranchUp, 0, 1},
		{solver.BranchAuto, 0, 0},
		{solver.BranchFixed, 0, 0},
	} {
		variable := testVariable()
		variable.dir = tt.dir
		v := calcVector(t, testState(), testNode(variable))
		assert.Equal(t, tt.down, v.Values()[SlotPrioDown])
		assert.Equal(t, tt.up, v.Values()[SlotPrioUp])
	}
}

func TestCalcContractViolations(t *testing.T) {
	newVec := func() *Vector {
		v := New(int(NumSlots))
		v.SetMaxDepth(30)
		return v
	}

	t.Run("RootNode", func(t *testing.T) {
		node := testNode(testVariable())
		node.depth = 0
		require.Panics(t, func() { Calc(testState(), node, newVec()) })
	})

	t.Run("UnsetMaxDepth", func(t *testing.T) {
		v := New(int(NumSlots))
		require.Panics(t, func() { Calc(testState(), testNode(testVariable()), v) })
	})

	t.Run("NoBoundChanges", func(t *testing.T) {
		node := testNode(testVariable())
		node.chgs = nil
		require.Panics(t, func() { Calc(testState(), node, newVec()) })
	})

	t.Run("LeadingChangeNotBranching", func(t *testing.T) {
		node := testNode(testVariable())
		node.chgs[0].Kind = solver.ChangeInference
		require.Panics(t, func() { Calc(testState(), node, newVec()) })
	})

	t.Run("MultiVariableBranching", func(t *testing.T) {
		node := testNode(testVariable())
		node.chgs[1].Kind = solver.ChangeBranching
		require.Panics(t, func() { Calc(testState(), node, newVec()) })
	})

	t.Run("VectorTooSmall", func(t *testing.T) {
		v := New(int(NumSlots) - 1)
		v.SetMaxDepth(30)
		require.Panics(t, func() { Calc(testState(), testNode(testVariable()), v) })
	})
}
