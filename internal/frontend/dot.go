package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/1homsi/hopscotch/internal/dotattrs"
	"github.com/1homsi/hopscotch/internal/engine"
	"github.com/1homsi/hopscotch/internal/symtab"
)

// WriteDOT renders groups as a single `digraph { … }` block. Groups
// of size > 1 are wrapped in a labeled cluster subgraph. Edges are
// printed with source and destination reversed relative to the input
// graph (n<successor> -> n<node>) — this mirrors the reference
// implementation exactly and is preserved deliberately, not a bug;
// see DESIGN.md's Open Question notes.
func WriteDOT(w io.Writer, tab *symtab.Table, eng *engine.Engine, groups [][]uint32, attrs dotattrs.Attrs) error {
	var b strings.Builder

	b.WriteString("digraph {\n")
	fmt.Fprintf(&b, "    graph [%s];\n", attrs.Graph)
	fmt.Fprintf(&b, "    node [%s];\n", attrs.Node)
	fmt.Fprintf(&b, "    edge [%s];\n", attrs.Edge)

	for groupID, members := range groups {
		cluster := len(members) > 1
		indent := "    "
		if cluster {
			fmt.Fprintf(&b, "    subgraph cluster_%d {\n", groupID)
			indent = "        "
			fmt.Fprintf(&b, "%sgraph [%s];\n", indent, attrs.Cluster)
		}

		for _, id := range members {
			sym := tab.Get(id)
			if sym == nil {
				return fmt.Errorf("dot output: unknown symbol id %d", id)
			}
			fmt.Fprintf(&b, "%sn%d [label=%q];\n", indent, id, sym.Text)
		}

		if cluster {
			b.WriteString("    }\n")
			indent = "    "
		}

		for _, id := range members {
			successors, ok := eng.Successors(id)
			if !ok {
				return fmt.Errorf("dot output: get-successors(%d): %v", id, eng.Err())
			}
			for _, succID := range successors {
				fmt.Fprintf(&b, "%sn%d -> n%d\n", indent, succID, id)
			}
		}

		b.WriteByte('\n')
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
