/*
Package render draws AVL trees for debugging purposes.

Renderers work on the root of a tree (see avl.Dict.Root) and need two functions to
turn keys and values into strings. Three output formats are supported:

  - Fprint draws an indented tree to a console, optionally colored
  - Dot writes the tree in Graphviz DOT format
  - HTML writes the tree as nested HTML lists

None of these are needed for working with dictionaries; they help inspecting the
shape of trees, e.g., in tests.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}
