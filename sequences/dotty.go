package sequences

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the internal structure of a segment tree in Graphviz DOT
// format (for debugging purposes). Leaves are labelled with their index,
// inner nodes with the range they aggregate.
func (t *SegmentTree[M]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var edges strings.Builder
	last := len(t.nodes)
	for k := 1; k <= last; k++ {
		from, to := t.span(k)
		var label, styles string
		if k >= t.base {
			label = fmt.Sprintf("#%d\\n%s", from, dotEscape(t.node(k)))
			styles = nodeDotStyles(true)
		} else {
			label = fmt.Sprintf("[%d,%d)\\n%s", from, to, dotEscape(t.node(k)))
			styles = nodeDotStyles(false)
			for _, c := range []int{k << 1, k<<1 | 1} {
				if c <= last {
					fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", k, c)
				}
			}
		}
		fmt.Fprintf(bw, "\t\"%d\" [label=\"%s\"%s];\n", k, label, styles)
	}
	bw.WriteString(edges.String())
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("segment tree DOT: %s", err.Error())
		return err
	}
	return nil
}

// span returns the range of element indices node k covers, including
// padding.
func (t *SegmentTree[M]) span(k int) (from, to int) {
	width := 1
	for k < t.base {
		k <<= 1
		width <<= 1
	}
	from = k - t.base
	return from, from + width
}

func dotEscape(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
