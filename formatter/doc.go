/*
Package formatter outputs search trees and traversal sequences on consoles
with fixed-width fonts.

Three kinds of output are supported:

▪︎ Sequences of nodes in the canonical `node1-node2-…-nodeN` notation

▪︎ Sequences of keys, wrapped to fit the width of a terminal

▪︎ Drawings of a tree, turned sideways with the root at the left margin

Line widths are measured in “en”s, i.e. fixed width positions. East Asian
wide and fullwidth characters take two ens, ambiguous ones are configurable.
Wrapping follows UAX#14 (line breaking). Colors
are applied only if the output device supports them.

	console := formatter.NewConsole(os.Stdout, nil)
	console.Sequence(tree.Inorder())
	console.Draw(tree, formatter.ConfigFromTerminal())

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
