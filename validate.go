package bst

import (
	"fmt"
	"strconv"
)

// bound is an exclusive limit for keys. An unset bound does not restrict
// anything, not even math.MinInt or math.MaxInt.
type bound struct {
	key int
	set bool
}

func (b bound) format(unset string) string {
	if !b.set {
		return unset
	}
	return strconv.Itoa(b.key)
}

// IsValid reports whether every node of the tree respects the search tree
// order. The empty tree is valid.
func (t *Tree) IsValid() bool {
	return t.Check() == nil
}

// Check validates the search tree order. Every node has to carry a key
// strictly between the bounds established by its ancestors: descending into
// a left child sets the upper bound to the parent's key, descending into a
// right child sets the lower bound.
//
// The first node out of its bounds is reported with an error wrapping
// ErrOrderViolated. Structures with cycles or shared nodes, which may only
// be built by hand, necessarily violate the order and are rejected as well.
func (t *Tree) Check() error {
	if t == nil {
		return nil
	}
	if err := checkNode(t.root, bound{}, bound{}); err != nil {
		T().Infof("bst: %v", err)
		return err
	}
	return nil
}

func checkNode(node *Node, lower, upper bound) error {
	if node == nil {
		return nil
	}
	if (lower.set && node.key <= lower.key) || (upper.set && node.key >= upper.key) {
		return fmt.Errorf("%w: key %d not within (%s, %s)", ErrOrderViolated,
			node.key, lower.format("-∞"), upper.format("∞"))
	}
	if err := checkNode(node.left, lower, bound{key: node.key, set: true}); err != nil {
		return err
	}
	return checkNode(node.right, bound{key: node.key, set: true}, upper)
}
