package bst

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an unbalanced binary search tree over int keys.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like the empty tree.
//
// Insert is the only operation changing the structure of a tree. Keys are
// never removed, and inserting a key twice leaves the tree untouched.
//
//	Operation     |  average   |  worst case
//	--------------+------------+-----------
//	Search        |  O(log n)  |  O(n)
//	Insert        |  O(log n)  |  O(n)
//	Traversal     |  O(n)      |  O(n)
//	Validation    |  O(n)      |  O(n)
//
// The worst case is met by degenerate trees, e.g. after inserting keys in
// sorted order.
//
// Trees are not safe for concurrent use.
type Tree struct {
	root *Node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// FromKeys creates a tree by inserting keys in the order given.
func FromKeys(keys ...int) *Tree {
	t := New()
	for _, key := range keys {
		t.Insert(key)
	}
	return t
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// SetRoot replaces the complete structure of t with the nodes reachable
// from root. No checks are performed; use Check or IsValid to verify
// hand-built trees.
func (t *Tree) SetRoot(root *Node) {
	if t == nil {
		T().Errorf("bst: cannot set root of nil tree")
		return
	}
	t.root = root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return countNodes(t.root)
}

func countNodes(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.left) + countNodes(node.right)
}

// Height returns the number of nodes on the longest path from the root
// to a leaf. An empty tree has height 0, a lone root has height 1.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return subtreeHeight(t.root)
}

func subtreeHeight(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + max(subtreeHeight(node.left), subtreeHeight(node.right))
}

// Search reports whether key is present in the tree.
func (t *Tree) Search(key int) bool {
	if t == nil {
		return false
	}
	return search(t.root, key)
}

func search(node *Node, key int) bool {
	if node == nil {
		return false
	}
	if key == node.key {
		return true
	}
	if key < node.key {
		return search(node.left, key)
	}
	return search(node.right, key)
}

// Insert adds key to the tree, if not already present.
//
// The tree is not re-balanced.
func (t *Tree) Insert(key int) {
	if t == nil {
		T().Errorf("bst: insert of %d into nil tree", key)
		return
	}
	t.root = insert(t.root, key)
}

// insert returns the root of the subtree after insertion. Callers overwrite
// their child link with the result, which is either node itself or, at an
// absent position, a fresh node for key.
func insert(node *Node, key int) *Node {
	if node == nil {
		T().Debugf("bst: insert new node %d", key)
		return NewNode(key)
	}
	if key == node.key {
		T().Debugf("bst: key %d already present", key)
		return node
	}
	if key > node.key {
		node.right = insert(node.right, key)
		return node
	}
	node.left = insert(node.left, key)
	return node
}

// ExampleTree returns a small tree with keys 10, 5, 15, 3 and 9,
// linked by hand:
//
//	      10
//	     /  \
//	    5    15
//	   / \
//	  3   9
func ExampleTree() *Tree {
	root := NewNode(10)
	root.SetLeft(NewNode(5))
	root.SetRight(NewNode(15))
	root.Left().SetLeft(NewNode(3))
	root.Left().SetRight(NewNode(9))
	return &Tree{root: root}
}
