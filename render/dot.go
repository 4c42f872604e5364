package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avl/node"
)

type nodeids[K, V any] struct {
	idTable map[*node.Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node.Node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node.Node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of the tree at root in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their key and height;
// empty children of inner nodes are drawn as small circles.
func Dot[K, V any](w io.Writer, root *node.Node[K, V], keyString func(K) string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	nilcnt := 0
	var walk func(n *node.Node[K, V])
	walk = func(n *node.Node[K, V]) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%s\\n(%d)", escapeDot(keyString(n.Key())), n.Height())
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n))
		if n.Left() == nil && n.Right() == nil {
			return
		}
		for _, child := range []*node.Node[K, V]{n.Left(), n.Right()} {
			if child == nil {
				nilcnt++
				nilid := fmt.Sprintf("nil%d", nilcnt)
				nodelist += fmt.Sprintf("\t\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func escapeDot(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K, V any](n *node.Node[K, V]) string {
	s := ",style=filled"
	if n.Left() == nil && n.Right() == nil {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(n.Height(), len(hexcolors))-1])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
