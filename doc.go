/*
Package bst implements a binary search tree over integer keys.

Binary Search Trees

A binary search tree organizes keys in nodes with up to two children. For
every node N, all keys in N's left subtree are strictly less than N's key,
and all keys in N's right subtree are strictly greater. This package keeps
the tree deliberately plain: there is no balancing, no deletion, and no
generic key type. Inserting a key which is already present does nothing.

	tree := bst.FromKeys(10, 5, 15, 3, 9)
	tree.Search(9)                         // true
	bst.FormatNodes(tree.Inorder())        // "3-5-9-10-15"

Because no rotations take place, the height of a tree depends on the order
of insertion. Inserting keys in ascending order yields a degenerate tree,
shaped like a linked list, with height equal to the number of keys.
Operations are implemented recursively, therefore stack usage is proportional
to the height of the tree.

Validation checks every node against bounds inherited from its ancestors.
The root is checked without any bounds, so keys at the extremes of the int
range are perfectly valid.

Trees are not safe for concurrent mutation. Clients which share a tree
between goroutines have to guard it with a lock of their own.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bst

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bst module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrOrderViolated is flagged whenever a node's key is out of the bounds
// imposed by its ancestors.
const ErrOrderViolated = TreeError("search tree order violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")
