package bst

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExampleTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := ExampleTree()
	if !tree.Search(15) {
		t.Errorf("expected to find 15 in example tree")
	}
	if tree.Search(22) {
		t.Errorf("did not expect to find 22 in example tree")
	}
	if s := FormatNodes(tree.Preorder()); s != "10-5-3-9-15" {
		t.Errorf("unexpected preorder: %q", s)
	}
	if s := FormatNodes(tree.Inorder()); s != "3-5-9-10-15" {
		t.Errorf("unexpected inorder: %q", s)
	}
	if s := FormatNodes(tree.Postorder()); s != "3-9-5-15-10" {
		t.Errorf("unexpected postorder: %q", s)
	}
	tree.Insert(8)
	if s := FormatNodes(tree.Inorder()); s != "3-5-8-9-10-15" {
		t.Errorf("unexpected inorder after insert(8): %q", s)
	}
	if tree.Root().Left().Right().Left().Key() != 8 {
		t.Errorf("expected 8 to be left child of 9")
	}
	if !tree.IsValid() {
		t.Errorf("expected example tree to be valid")
	}
}

func TestInsertBuildsExampleShape(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := FromKeys(10, 5, 15, 3, 9)
	want := ExampleTree()
	if got, exp := FormatNodes(tree.Preorder()), FormatNodes(want.Preorder()); got != exp {
		t.Errorf("insert built %q, expected %q", got, exp)
	}
	if tree.Len() != 5 || tree.Height() != 3 {
		t.Errorf("unexpected len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, tree := range []*Tree{New(), {}, nil} {
		if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
			t.Errorf("expected empty tree, have len=%d height=%d", tree.Len(), tree.Height())
		}
		for _, key := range []int{0, 1, -1, 42} {
			if tree.Search(key) {
				t.Errorf("empty tree should not contain %d", key)
			}
		}
		for _, nodes := range [][]*Node{tree.Inorder(), tree.Preorder(), tree.Postorder()} {
			if nodes == nil || len(nodes) != 0 {
				t.Errorf("expected empty, non-nil traversal, have %v", nodes)
			}
		}
		if !tree.IsValid() {
			t.Errorf("empty tree should be valid")
		}
	}
}

func TestInsertIntoEmptyTreeSetsRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tree Tree
	tree.Insert(7)
	if tree.Root() == nil || tree.Root().Key() != 7 {
		t.Fatalf("expected 7 at root, have %v", tree.Root())
	}
	if !tree.Root().IsLeaf() {
		t.Errorf("expected single root to be a leaf")
	}
}

func TestWritesToNilTreeAreNoOps(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tree *Tree
	tree.Insert(1)
	tree.SetRoot(NewNode(2))
	if !tree.IsEmpty() || tree.Root() != nil {
		t.Errorf("nil tree must stay empty")
	}
}

func TestInsertDuplicateIsIdempotent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := ExampleTree()
	before := tree.Inorder()
	root := tree.Root()
	for _, key := range []int{10, 5, 15, 3, 9} {
		tree.Insert(key)
	}
	after := tree.Inorder()
	if !slices.Equal(before, after) {
		t.Errorf("duplicate inserts changed tree: %s -> %s", FormatNodes(before), FormatNodes(after))
	}
	if tree.Root() != root {
		t.Errorf("duplicate inserts replaced the root node")
	}
}

func TestDegenerateTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := New()
	for key := 1; key <= 100; key++ {
		tree.Insert(key)
	}
	if tree.Len() != 100 || tree.Height() != 100 {
		t.Errorf("expected degenerate tree of height 100, have len=%d height=%d", tree.Len(), tree.Height())
	}
	for node := tree.Root(); node != nil; node = node.Right() {
		if node.Left() != nil {
			t.Fatalf("node %d of ascending insertion has a left child", node.Key())
		}
	}
	if !tree.IsValid() {
		t.Errorf("degenerate tree should be valid")
	}
}

func TestRandomInsertions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(4711))
	for run := 0; run < 50; run++ {
		n := rnd.Intn(200)
		inserted := make(map[int]bool)
		tree := New()
		for i := 0; i < n; i++ {
			key := rnd.Intn(400) - 200
			tree.Insert(key)
			inserted[key] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("run %d: tree invalid after insertions: %v", run, err)
		}
		if tree.Len() != len(inserted) {
			t.Errorf("run %d: tree has %d nodes, expected %d", run, tree.Len(), len(inserted))
		}
		for key := -210; key < 210; key++ {
			if tree.Search(key) != inserted[key] {
				t.Errorf("run %d: Search(%d) = %v, expected %v", run, key, tree.Search(key), inserted[key])
			}
		}
		keys := Keys(tree.Inorder())
		if !slices.IsSorted(keys) {
			t.Errorf("run %d: inorder keys not sorted: %v", run, keys)
		}
	}
}
