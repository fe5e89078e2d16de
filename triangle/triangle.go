package triangle

import (
	"errors"
)

var (
	// ErrNoRows is returned for an empty set of rows.
	ErrNoRows = errors.New("triangle: empty set of rows")
	// ErrRaggedRows is returned when row number i does not contain exactly i+1 values.
	ErrRaggedRows = errors.New("triangle: row length does not match its level")
)

// NumNode Single value of the triangle. The node at (level, index) references
// (level+1, index) as its left child and (level+1, index+1) as its right one.
// A child object is shared with the neighbour parent, so the whole structure
// is a DAG rather than a binary tree.
type NumNode struct {
	Value int64
	Left  *NumNode
	Right *NumNode

	memo     int64
	memoDone bool
}

// NumTree DAG built from triangular rows. Immutable after construction except
// for the per-node memoized sums.
type NumTree struct {
	Root *NumNode

	// levels[level][index] is the single node object shared by both of its
	// parents. Kept after construction for exporting and inspection.
	levels [][]*NumNode
}

// NewNumTree Builds the DAG from triangular rows: row number i (0-based) must
// contain exactly i+1 values. Nodes are allocated into an index-keyed cache
// first and linked afterwards, so each (level, index) node exists exactly once
// no matter how many parents reference it.
func NewNumTree(rows [][]int64) (*NumTree, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	levels := make([][]*NumNode, len(rows))
	for level := range rows {
		if len(rows[level]) != level+1 {
			return nil, ErrRaggedRows
		}
		levels[level] = make([]*NumNode, len(rows[level]))
		for index, value := range rows[level] {
			levels[level][index] = &NumNode{Value: value}
		}
	}
	for level := 0; level < len(levels)-1; level++ {
		for index, node := range levels[level] {
			node.Left = levels[level+1][index]
			node.Right = levels[level+1][index+1]
		}
	}
	return &NumTree{Root: levels[0][0], levels: levels}, nil
}

// Levels Returns number of levels in the DAG
func (tree *NumTree) Levels() int {
	return len(tree.levels)
}

// MaxSum Returns the maximum sum along any root-to-leaf path.
func (tree *NumTree) MaxSum() int64 {
	return tree.Root.downwardMaxSum()
}

// downwardMaxSum Computes value + max(left, right), treating an absent child
// as 0, and caches the result at the node. Nodes are shared between two
// parents, so without the write-once cache the descent would walk O(2^n)
// paths instead of touching O(n^2) nodes.
func (node *NumNode) downwardMaxSum() int64 {
	if node == nil {
		return 0
	}
	if node.memoDone {
		return node.memo
	}
	left := node.Left.downwardMaxSum()
	right := node.Right.downwardMaxSum()
	sum := node.Value
	if left > right {
		sum += left
	} else {
		sum += right
	}
	node.memo = sum
	node.memoDone = true
	return sum
}
