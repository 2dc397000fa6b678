/*
Package html renders search trees as nested HTML lists and reads them back.

Every tree node becomes a list item carrying its key in a `data-key`
attribute and its position (root, left or right child) as a CSS class.
Children are wrapped in a nested list:

	<ul class="bst"><li class="root" data-key="10">10<ul>
	  <li class="left" data-key="5">5</li>
	  <li class="right" data-key="15">15</li>
	</ul></li></ul>

Reading such a fragment back inserts the keys in document order, which is
a pre-order walk of the rendered tree, and therefore re-creates a tree of
identical shape.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

// KeyAttr is the attribute holding a node's key.
const KeyAttr = "data-key"

// Render writes t as a nested HTML list to w.
//
// An empty tree renders as an empty list.
func Render(t *bst.Tree, w io.Writer) error {
	if t == nil {
		return bst.ErrIllegalArguments
	}
	list := element(atom.Ul, html.Attribute{Key: "class", Val: "bst"})
	if root := t.Root(); root != nil {
		list.AppendChild(listItem(root, "root"))
	}
	return html.Render(w, list)
}

func listItem(node *bst.Node, side string) *html.Node {
	li := element(atom.Li,
		html.Attribute{Key: "class", Val: side},
		html.Attribute{Key: KeyAttr, Val: strconv.Itoa(node.Key())},
	)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: node.String()})
	if node.IsLeaf() {
		return li
	}
	children := element(atom.Ul)
	if node.Left() != nil {
		children.AppendChild(listItem(node.Left(), "left"))
	}
	if node.Right() != nil {
		children.AppendChild(listItem(node.Right(), "right"))
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// TreeFromHTML creates a search tree from an HTML fragment. Every element
// with a `data-key` attribute contributes its key; keys are inserted in
// document order.
//
// Elements without the attribute are ignored; a key which is not an integer
// results in an error wrapping bst.ErrIllegalArguments.
func TreeFromHTML(input io.Reader) (*bst.Tree, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := bst.New()
	for _, n := range nodes {
		if err := collectKeys(n, tree); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("tree from HTML has %d nodes", tree.Len())
	return tree, nil
}

func collectKeys(n *html.Node, tree *bst.Tree) error {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key != KeyAttr {
				continue
			}
			key, err := strconv.Atoi(a.Val)
			if err != nil {
				return fmt.Errorf("%w: <%s %s=%q>", bst.ErrIllegalArguments, n.Data, KeyAttr, a.Val)
			}
			tree.Insert(key)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectKeys(c, tree); err != nil {
			return err
		}
	}
	return nil
}
