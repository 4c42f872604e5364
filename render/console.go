package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avl/node"
	"github.com/npillmayer/uax/uax11"
)

// Fprint draws the tree at root to w, one node per line. Children are indented
// below their parent, the left child first:
//
//	3 : "D"
//	├── 1 : "B"
//	│   ├── 0 : "A"
//	│   └── 2 : "C"
//	└── 4 : "E"
//
// Keys are padded to a common display width (respecting wide East Asian
// characters), so values are aligned on lines of equal depth. Lines exceeding
// config.Width are clipped. If config is nil, DefaultConfig() is used.
func Fprint[K, V any](w io.Writer, root *node.Node[K, V], keyString func(K) string,
	valueString func(V) string, config *Config) error {
	//
	p := &printer[K, V]{
		w:           w,
		config:      config.normalized(),
		keyString:   keyString,
		valueString: valueString,
	}
	if root == nil {
		p.write("(empty)\n")
		return p.err
	}
	p.keyWidth = node.FoldL(root, 0, func(k K, _ V, acc int) int {
		return max(acc, displayWidth(keyString(k), p.config.Context))
	})
	p.print(root, "", "")
	return p.err
}

type printer[K, V any] struct {
	w           io.Writer
	config      *Config
	keyString   func(K) string
	valueString func(V) string
	keyWidth    int
	err         error
}

func (p *printer[K, V]) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer[K, V]) print(n *node.Node[K, V], lead, indent string) {
	if n == nil {
		p.write(lead + "·\n")
		return
	}
	p.write(lead + p.label(n, lead) + "\n")
	if n.Left() == nil && n.Right() == nil {
		return
	}
	p.print(n.Left(), indent+"├── ", indent+"│   ")
	p.print(n.Right(), indent+"└── ", indent+"    ")
}

func (p *printer[K, V]) label(n *node.Node[K, V], lead string) string {
	ctx := p.config.Context
	key := p.keyString(n.Key())
	if pad := p.keyWidth - displayWidth(key, ctx); pad > 0 {
		key += strings.Repeat(" ", pad)
	}
	value := p.valueString(n.Value())
	var suffix string
	if p.config.Heights {
		suffix = fmt.Sprintf("  (%d)", n.Height())
	}
	if p.config.Width > 0 {
		used := displayWidth(lead, ctx) + displayWidth(key, ctx) + 3 + displayWidth(suffix, ctx)
		value = clip(value, p.config.Width-used, ctx)
	}
	if p.config.Color {
		return p.config.KeyColor.Sprint(key) + " : " + p.config.ValueColor.Sprint(value) + suffix
	}
	return key + " : " + value + suffix
}

// clip shortens s to at most width display positions, marking the cut with an
// ellipsis.
func clip(s string, width int, context *uax11.Context) string {
	if displayWidth(s, context) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if t := string(runes) + "…"; displayWidth(t, context) <= width {
			return t
		}
	}
	return ""
}
