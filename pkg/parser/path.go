package parser

import (
	"strconv"
	"strings"
)

// Step is one element on a path. Index is the zero-based position among
// siblings with the same tag.
type Step struct {
	Element string
	Index   int
}

// Path is the sequence of elements from the document root to a node.
type Path []Step

// String renders the path as Law/LawBody/MainProvision/Chapter[2]/Article[1].
// Index zero is omitted.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.Element)
		if s.Index > 0 {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// child returns a new path extended by one step. The receiver is never
// modified, so sibling paths do not share a backing array.
func (p Path) child(tag string, index int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Step{Element: tag, Index: index})
}
