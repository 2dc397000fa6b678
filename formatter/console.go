package formatter

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bst"
)

// Role is the part an output string plays, used to select a color.
type Role int8

// Roles of console output.
const (
	HeadingRole Role = iota
	KeyRole
	TrueRole
	FalseRole
)

// Console is a type for outputting trees and sequences to a console with
// a fixed width font.
//
// Colors are applied by package github.com/fatih/color, which turns them off
// for devices other than terminals. Output of Sequence is never colored, so
// it may be parsed by other programs.
type Console struct {
	out    io.Writer
	colors map[Role]*color.Color
}

// NewConsole creates a new console formatter writing to w.
//
// colors is a map from roles to colors, used for display. It may contain
// just a subset of the roles. If colors is nil, a default palette is used.
func NewConsole(w io.Writer, colors map[Role]*color.Color) *Console {
	c := &Console{out: w, colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		HeadingRole: color.New(color.Bold),
		KeyRole:     color.New(color.FgBlue),
		TrueRole:    color.New(color.FgGreen),
		FalseRole:   color.New(color.FgRed),
	}
	return palette
}

func (c *Console) styled(s string, role Role) {
	if col, ok := c.colors[role]; ok {
		col.Fprint(c.out, s)
		return
	}
	io.WriteString(c.out, s)
}

// Heading outputs s on a line of its own, preceded by an empty line.
func (c *Console) Heading(s string) {
	io.WriteString(c.out, "\n")
	c.styled(s, HeadingRole)
	io.WriteString(c.out, "\n")
}

// Bool outputs a boolean result on a line of its own.
func (c *Console) Bool(b bool) {
	if b {
		c.styled(strconv.FormatBool(b), TrueRole)
	} else {
		c.styled(strconv.FormatBool(b), FalseRole)
	}
	io.WriteString(c.out, "\n")
}

// Sequence outputs nodes as node1-node2-…-nodeN on a line of its own.
func (c *Console) Sequence(nodes []*bst.Node) {
	io.WriteString(c.out, bst.FormatNodes(nodes))
	io.WriteString(c.out, "\n")
}

// Wrapped outputs the keys of nodes, separated by blanks and broken into
// lines of at most config.LineWidth positions. A key wider than the line
// width gets a line of its own. config may be nil.
func (c *Console) Wrapped(nodes []*bst.Node, config *Config) {
	if len(nodes) == 0 {
		return
	}
	cfg := config.normalized()
	labels := make([]string, len(nodes))
	for i, node := range nodes {
		labels[i] = node.String()
	}
	lines := wrap(strings.Join(labels, " "), cfg)
	T().Infof("wrapped %d keys to %d lines of %d en", len(nodes), len(lines), cfg.LineWidth)
	for _, line := range lines {
		c.styled(line, KeyRole)
		io.WriteString(c.out, "\n")
	}
}

// Draw outputs a tree turned sideways: the root is at the left margin,
// right subtrees are above and left subtrees below their parent. Every
// level is indented by the width of the widest key plus one.
// config may be nil.
//
// An empty tree produces no output.
func (c *Console) Draw(t *bst.Tree, config *Config) {
	if t.IsEmpty() {
		return
	}
	cfg := config.normalized()
	indent := 0
	for node := range t.Range(bst.InOrder) {
		indent = max(indent, enWidth(node.String(), cfg.AmbiguousWide))
	}
	indent++
	if depth := t.Height() - 1; depth*indent+indent > cfg.LineWidth {
		T().Infof("drawing of depth %d exceeds line width of %d en", depth, cfg.LineWidth)
	}
	c.drawNode(t.Root(), 0, indent)
}

func (c *Console) drawNode(node *bst.Node, depth int, indent int) {
	if node == nil {
		return
	}
	c.drawNode(node.Right(), depth+1, indent)
	io.WriteString(c.out, strings.Repeat(" ", depth*indent))
	c.styled(node.String(), KeyRole)
	io.WriteString(c.out, "\n")
	c.drawNode(node.Left(), depth+1, indent)
}
