package symtab

import (
	"fmt"
	"io"
)

// Table2Dot outputs the internal structure of a Table in Graphviz DOT
// format (for debugging purposes). Every node shows its key and its
// cached subtree size; absent children appear as small filled dots, so
// the unbalanced shape of the tree is visible at a glance.
func Table2Dot[K, V any](t *Table[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nulls := 0
	t.walkRefs(t.root, func(n ref) {
		nd := t.arena.at(n)
		label := fmt.Sprintf("“%v”\\n%d", nd.key, nd.count)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,fillcolor=\"#a3d7e4\",shape=box];\n",
			n, label)
		for _, child := range []ref{nd.left, nd.right} {
			if child == none {
				nodelist += fmt.Sprintf("\"null%d\" %s;\n", nulls, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"null%d\";\n", n, nulls)
				nulls++
			} else {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n, child)
			}
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=circle,fixedsize=true,width=.15]"
}

// walkRefs visits every node handle below n in preorder.
func (t *Table[K, V]) walkRefs(n ref, visit func(ref)) {
	if n == none {
		return
	}
	visit(n)
	t.walkRefs(t.arena.at(n).left, visit)
	t.walkRefs(t.arena.at(n).right, visit)
}
