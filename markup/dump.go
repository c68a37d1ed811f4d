package markup

import (
	"faicon/utils/debug"
)

// Dump returns human readable indented representation of the node tree.
func Dump(n Node) string {
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, n)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, n Node) {
	switch n := n.(type) {
	case *Element:
		tw.Line(depth, "<%s> children=%d", n.Tag, len(n.Children))
		for _, a := range n.Attrs() {
			tw.TextBlock(depth+1, "@"+a.Name, a.Value)
		}
		for _, c := range n.Children {
			dumpNode(tw, depth+1, c)
		}
	case Text:
		tw.TextBlock(depth, "text", string(n))
	}
}
