package bst

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Inner nodes with a single child get an empty placeholder for the missing
// child, so that left and right children can be told apart.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	for node := range t.Range(PreOrder) {
		ID := ids.alloc(node)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%d\" %s];\n", ID, node.Key(), nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			continue
		}
		for i, child := range [2]*Node{node.Left(), node.Right()} {
			if child == nil {
				nilid := fmt.Sprintf("nil%d%c", ID, "lr"[i])
				nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	}
	T().Debugf("tree DOT: %d nodes", ids.max-1)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#CCDDFF\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	s += ",color=black,shape=circle"
	return s
}
