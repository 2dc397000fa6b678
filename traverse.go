package bst

import (
	"iter"
	"slices"
	"strings"
)

// Order selects one of the canonical depth-first visiting orders.
type Order int8

const (
	// InOrder visits the left subtree, then the node, then the right subtree.
	InOrder Order = iota
	// PreOrder visits the node, then the left subtree, then the right subtree.
	PreOrder
	// PostOrder visits the left subtree, then the right subtree, then the node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown order"
}

// Range returns an iterator over all nodes of the tree in the given order.
//
// Iteration stops early if the consumer stops pulling nodes.
func (t *Tree) Range(order Order) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if t == nil || t.root == nil {
			return
		}
		switch order {
		case PreOrder:
			preorder(t.root, yield)
		case PostOrder:
			postorder(t.root, yield)
		default:
			inorder(t.root, yield)
		}
	}
}

// Inorder returns all nodes of the tree, left subtree first, then the node,
// then the right subtree. For a valid tree the keys are in ascending order.
func (t *Tree) Inorder() []*Node {
	return collect(t.Range(InOrder))
}

// Preorder returns all nodes of the tree, each node ahead of its left and
// then its right subtree.
func (t *Tree) Preorder() []*Node {
	return collect(t.Range(PreOrder))
}

// Postorder returns all nodes of the tree, each node after its left and
// then its right subtree.
func (t *Tree) Postorder() []*Node {
	return collect(t.Range(PostOrder))
}

// collect never returns nil, so an empty tree yields an empty slice.
func collect(seq iter.Seq[*Node]) []*Node {
	nodes := slices.Collect(seq)
	if nodes == nil {
		return []*Node{}
	}
	return nodes
}

func inorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return inorder(node.left, yield) && yield(node) && inorder(node.right, yield)
}

func preorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return yield(node) && preorder(node.left, yield) && preorder(node.right, yield)
}

func postorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return postorder(node.left, yield) && postorder(node.right, yield) && yield(node)
}

// Keys extracts the keys of a sequence of nodes.
func Keys(nodes []*Node) []int {
	keys := make([]int, len(nodes))
	for i, node := range nodes {
		keys[i] = node.Key()
	}
	return keys
}

// FormatNodes renders a sequence of nodes as
//
//	node1-node2-…-nodeN
//
// An empty sequence renders as the empty string.
func FormatNodes(nodes []*Node) string {
	var b strings.Builder
	for i, node := range nodes {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(node.String())
	}
	return b.String()
}
