package bimap

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bimap/arena"
	"github.com/npillmayer/bimap/tree"
)

// Bimap2Dot outputs the internal structure of a bimap in Graphviz DOT format
// (for debugging purposes).
//
// Both trees are drawn, the left tree in blue and the right tree in red. Each
// pair record appears once per tree; a dashed edge connects its two roles.
// The heads of the two trees are drawn as boxes and linked to each other.
func Bimap2Dot[L, R any](bm *Bimap[L, R], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nodelist.WriteString("\"headL\" [label=\"left\",shape=box];\n")
	nodelist.WriteString("\"headR\" [label=\"right\",shape=box];\n")
	edgelist.WriteString("\"headL\" -> \"headR\" [dir=both,style=dotted];\n")
	dotTree(bm, arena.LeftRole, bm.left.Root(), &nodelist, &edgelist)
	dotTree(bm, arena.RightRole, bm.right.Root(), &nodelist, &edgelist)
	for n := range bm.left.All() {
		fmt.Fprintf(&edgelist, "\"L%d\" -> \"R%d\" [style=dashed,arrowhead=none,constraint=false];\n", n, n)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		T().Errorf("bimap DOT: %s", err.Error())
	}
	return err
}

func dotTree[L, R any](bm *Bimap[L, R], role arena.Role, root tree.Ref,
	nodelist, edgelist *strings.Builder) {
	//
	prefix, color := "L", "#1f5fbf"
	if role == arena.RightRole {
		prefix, color = "R", "#bf3f1f"
	}
	if root == tree.Nil {
		return
	}
	fmt.Fprintf(edgelist, "\"head%s\" -> \"%s%d\" [color=\"%s\"];\n", prefix, prefix, root, color)
	var walk func(n tree.Ref)
	walk = func(n tree.Ref) {
		label := fmt.Sprintf("%v", bm.nodes.Left(n))
		if role == arena.RightRole {
			label = fmt.Sprintf("%v", bm.nodes.Right(n))
		}
		fmt.Fprintf(nodelist, "\"%s%d\" [label=\"%s\"%s];\n", prefix, n, dotEscape(label), nodeDotStyles(color))
		links := bm.nodes.Links(n, role)
		for _, child := range [2]tree.Ref{links.Left, links.Right} {
			if child == tree.Nil {
				continue
			}
			fmt.Fprintf(edgelist, "\"%s%d\" -> \"%s%d\" [color=\"%s\"];\n", prefix, n, prefix, child, color)
			walk(child)
		}
	}
	walk(root)
}

func nodeDotStyles(color string) string {
	return fmt.Sprintf(",style=filled,shape=circle,color=\"%s\",fillcolor=\"#a3d7e4\"", color)
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
