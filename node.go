package bst

import "strconv"

// Node is a single cell of a search tree, holding a key and links to
// up to two children.
//
// Node performs no checks whatsoever. Keeping keys in order is the
// responsibility of Tree.
type Node struct {
	key   int
	left  *Node
	right *Node
}

// NewNode creates a node for key without any children.
func NewNode(key int) *Node {
	return &Node{key: key}
}

// Key returns the key of a node. A nil node has key 0.
func (node *Node) Key() int {
	if node == nil {
		return 0
	}
	return node.key
}

// SetKey replaces the key of a node.
func (node *Node) SetKey(key int) {
	node.key = key
}

// Left returns the left child, or nil.
func (node *Node) Left() *Node {
	if node == nil {
		return nil
	}
	return node.left
}

// SetLeft links child as the left child of node.
func (node *Node) SetLeft(child *Node) {
	node.left = child
}

// Right returns the right child, or nil.
func (node *Node) Right() *Node {
	if node == nil {
		return nil
	}
	return node.right
}

// SetRight links child as the right child of node.
func (node *Node) SetRight(child *Node) {
	node.right = child
}

// IsLeaf is true for nodes without children.
func (node *Node) IsLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *Node) String() string {
	if node == nil {
		return "<nil>"
	}
	return strconv.Itoa(node.key)
}
