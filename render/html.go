package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/avl/node"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the tree at root as a nested HTML list. Every node becomes a list
// item with a <code> element for the key, followed by the value and a nested
// <ul> holding the left and the right child:
//
//	<ul class="avl"><li data-height="2"><code>1</code> B<ul>…</ul></li></ul>
//
// Empty children of inner nodes are rendered as list items of class "empty".
func HTML[K, V any](w io.Writer, root *node.Node[K, V], keyString func(K) string,
	valueString func(V) string) error {
	//
	ul := element(atom.Ul)
	ul.Attr = append(ul.Attr, html.Attribute{Key: "class", Val: "avl"})
	if root != nil {
		ul.AppendChild(htmlItem(root, keyString, valueString))
	}
	return html.Render(w, ul)
}

func htmlItem[K, V any](n *node.Node[K, V], keyString func(K) string,
	valueString func(V) string) *html.Node {
	//
	li := element(atom.Li)
	if n == nil {
		li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "empty"})
		return li
	}
	li.Attr = append(li.Attr, html.Attribute{Key: "data-height", Val: fmt.Sprint(n.Height())})
	code := element(atom.Code)
	code.AppendChild(&html.Node{Type: html.TextNode, Data: keyString(n.Key())})
	li.AppendChild(code)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: " " + valueString(n.Value())})
	if n.Left() != nil || n.Right() != nil {
		children := element(atom.Ul)
		children.AppendChild(htmlItem(n.Left(), keyString, valueString))
		children.AppendChild(htmlItem(n.Right(), keyString, valueString))
		li.AppendChild(children)
	}
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
