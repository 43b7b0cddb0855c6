package feat

import "github.com/hupe1980/branchfeat/solver"

// Vector is a fixed-size feature vector for one search node, plus the
// metadata that places it in the global sparse index space.
//
// A Vector is not safe for concurrent use; callers featurizing in parallel
// use one Vector per goroutine.
type Vector struct {
	vals      []float64
	size      int
	depth     int
	maxDepth  int
	boundType solver.BoundType

	// Normalizers stored for downstream consumers, never read by Calc.
	rootLPObj   float64
	sumObjCoeff float64
	nConstrs    int
}

// New creates a zero-initialized Vector of the given size.
func New(size int) *Vector {
	if size <= 0 {
		panic("feat: vector size must be positive")
	}
	return &Vector{
		vals: make([]float64, size),
		size: size,
	}
}

// CopyInto copies all values and metadata into dst.
// Panics if the sizes differ.
func (v *Vector) CopyInto(dst *Vector) {
	if v.size != dst.size {
		panic("feat: cannot copy between vectors of different size")
	}
	dst.depth = v.depth
	dst.maxDepth = v.maxDepth
	dst.boundType = v.boundType
	dst.rootLPObj = v.rootLPObj
	dst.sumObjCoeff = v.sumObjCoeff
	dst.nConstrs = v.nConstrs
	copy(dst.vals, v.vals)
}

// Values returns the backing value slice. The caller may read and write
// elements but must not resize it.
func (v *Vector) Values() []float64 { return v.vals }

// Size returns the fixed number of feature values.
func (v *Vector) Size() int { return v.size }

// Depth returns the depth of the node this vector was calculated for;
// 0 means the vector has not been calculated.
func (v *Vector) Depth() int { return v.depth }

// BoundType returns the direction of the branching bound change.
func (v *Vector) BoundType() solver.BoundType { return v.boundType }

// MaxDepth returns the depth normalizer.
func (v *Vector) MaxDepth() int { return v.maxDepth }

// SetMaxDepth sets the depth normalizer. It must be set nonzero before
// Calc or Offset is used.
func (v *Vector) SetMaxDepth(maxDepth int) { v.maxDepth = maxDepth }

// SetDepth records the node depth. Normally written by Calc; exported for
// featurizers that fill vectors by other means.
func (v *Vector) SetDepth(depth int) { v.depth = depth }

// SetBoundType records the bound-change direction. Normally written by
// Calc; exported for featurizers that fill vectors by other means.
func (v *Vector) SetBoundType(bt solver.BoundType) { v.boundType = bt }

// SetRootLPObj stores the root LP objective normalizer.
func (v *Vector) SetRootLPObj(obj float64) { v.rootLPObj = obj }

// RootLPObj returns the root LP objective normalizer.
func (v *Vector) RootLPObj() float64 { return v.rootLPObj }

// SetSumObjCoeff stores the sum-of-objective-coefficients normalizer.
func (v *Vector) SetSumObjCoeff(sum float64) { v.sumObjCoeff = sum }

// SumObjCoeff returns the sum-of-objective-coefficients normalizer.
func (v *Vector) SumObjCoeff() float64 { return v.sumObjCoeff }

// SetNConstrs stores the constraint-count normalizer.
func (v *Vector) SetNConstrs(n int) { v.nConstrs = n }

// NConstrs returns the constraint-count normalizer.
func (v *Vector) NConstrs() int { return v.nConstrs }

// Offset maps the vector's metadata to the start of its exclusive index
// block in the global sparse index space. Each (depth decile, bound type)
// combination owns a contiguous block of indices, so features computed in
// different structural contexts never collide within one training file.
//
// The decile divisor maxDepth/10 is clamped to 1, so shallow trees
// (maxDepth < 10) bucket per depth level instead of dividing by zero.
// A node at depth == maxDepth lands in bucket 10.
//
// Offset never modifies the vector. Panics if maxDepth is unset.
func (v *Vector) Offset() int {
	if v.maxDepth == 0 {
		panic("feat: offset requires maxDepth to be set")
	}
	decile := v.maxDepth / 10
	if decile < 1 {
		decile = 1
	}
	return v.size*2*(v.depth/decile) + v.size*int(v.boundType)
}
