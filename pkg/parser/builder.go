package parser

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/schema"
	"go.uber.org/zap"
)

// child is an element together with its path from the document root.
type child struct {
	el   *etree.Element
	path Path
}

// node is an element that has been checked against its content model.
// Children are listed in document order.
type node struct {
	child
	model    *schema.Model
	children []child
}

// alternatives maps the element kinds that may fill one position to the
// builders that handle them.
type alternatives[T any] map[string]func(*builder, child) (T, error)

// resolve dispatches c to the builder for its tag.
func resolve[T any](b *builder, alts alternatives[T], c child) (T, error) {
	build, ok := alts[c.el.Tag]
	if !ok {
		var zero T
		return zero, b.unsupported(c)
	}
	return build(b, c)
}

// nodeBuilder adapts a typed builder to a law.Node position.
func nodeBuilder[T law.Node](build func(*builder, child) (T, error)) func(*builder, child) (law.Node, error) {
	return func(b *builder, c child) (law.Node, error) {
		n, err := build(b, c)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

// builder holds the state of one parse. It is never shared between parses
// and carries nothing that influences the tree besides the schema.
type builder struct {
	schema *schema.Schema
	log    *zap.Logger

	// paragraphBlocks are the elements following a ParagraphSentence.
	paragraphBlocks alternatives[law.Node]
	// itemBlocks are the elements following an item's sentence.
	itemBlocks alternatives[law.Node]
	// cellContents are the elements of a TableColumn.
	cellContents alternatives[law.Node]
	// noteContents are the elements of a Note.
	noteContents alternatives[law.Node]
	// quoteContents are the elements of a QuoteStruct.
	quoteContents alternatives[law.Node]
	// appendixContents are the elements of every appendix kind.
	appendixContents alternatives[law.Node]
	// newProvisionContents are the elements of a NewProvision.
	newProvisionContents alternatives[law.Node]
	// nodes covers every element that builds a standalone node.
	nodes alternatives[law.Node]
}

func newBuilder(s *schema.Schema, log *zap.Logger) *builder {
	b := &builder{schema: s, log: log}

	structs := alternatives[law.Node]{
		"TableStruct":  nodeBuilder((*builder).structure),
		"FigStruct":    nodeBuilder((*builder).structure),
		"NoteStruct":   nodeBuilder((*builder).structure),
		"StyleStruct":  nodeBuilder((*builder).structure),
		"FormatStruct": nodeBuilder((*builder).structure),
	}
	units := alternatives[law.Node]{
		"Part":       nodeBuilder((*builder).part),
		"Chapter":    nodeBuilder((*builder).chapter),
		"Section":    nodeBuilder((*builder).section),
		"Subsection": nodeBuilder((*builder).subsection),
		"Division":   nodeBuilder((*builder).division),
		"Article":    nodeBuilder((*builder).article),
		"Paragraph":  nodeBuilder((*builder).paragraph),
	}
	items := alternatives[law.Node]{"Item": nodeBuilder((*builder).item)}
	for level := 1; level <= law.MaxSubitemLevel; level++ {
		items[subitemTag(level)] = nodeBuilder((*builder).item)
	}
	appendices := alternatives[law.Node]{}
	for _, tag := range appendixTags {
		appendices[tag] = nodeBuilder((*builder).appendix)
	}
	titles := alternatives[law.Node]{}
	for _, tag := range []string{"LawTitle", "PartTitle", "ChapterTitle", "SectionTitle", "SubsectionTitle", "DivisionTitle", "SupplNote"} {
		titles[tag] = nodeBuilder((*builder).fragment)
	}
	list := nodeBuilder((*builder).list)
	sentence := nodeBuilder((*builder).sentence)
	fig := nodeBuilder((*builder).fig)
	formula := nodeBuilder((*builder).arithFormula)
	remarks := nodeBuilder((*builder).remarks)

	b.paragraphBlocks = merge(structs, items, alternatives[law.Node]{
		"AmendProvision": nodeBuilder((*builder).amendProvision),
		"Class":          nodeBuilder((*builder).class),
		"List":           list,
	})
	b.itemBlocks = merge(structs, items, alternatives[law.Node]{"List": list})
	b.cellContents = merge(units, items, alternatives[law.Node]{
		"FigStruct": nodeBuilder((*builder).structure),
		"Remarks":   remarks,
		"Sentence":  sentence,
		"Column":    nodeBuilder((*builder).column),
	})
	b.noteContents = alternatives[law.Node]{
		"Sentence":     sentence,
		"Fig":          fig,
		"Item":         nodeBuilder((*builder).item),
		"ArithFormula": formula,
		"List":         list,
	}
	b.quoteContents = alternatives[law.Node]{
		"Sentence":     sentence,
		"Item":         nodeBuilder((*builder).item),
		"Paragraph":    nodeBuilder((*builder).paragraph),
		"List":         list,
		"Fig":          fig,
		"FigStruct":    nodeBuilder((*builder).structure),
		"Table":        nodeBuilder((*builder).table),
		"TableStruct":  nodeBuilder((*builder).structure),
		"AppdxTable":   nodeBuilder((*builder).appendix),
		"ArithFormula": formula,
		"TOCSection":   nodeBuilder((*builder).tocEntry),
	}
	b.appendixContents = merge(structs, alternatives[law.Node]{
		"Item":         nodeBuilder((*builder).item),
		"Remarks":      remarks,
		"ArithFormula": formula,
	})
	b.newProvisionContents = merge(units, items, structs, appendices, titles, alternatives[law.Node]{
		"Preamble":       nodeBuilder((*builder).preamble),
		"TOC":            nodeBuilder((*builder).toc),
		"List":           list,
		"Sentence":       sentence,
		"AmendProvision": nodeBuilder((*builder).amendProvision),
		"TableRow":       nodeBuilder((*builder).tableRow),
		"TableColumn":    nodeBuilder((*builder).tableColumn),
		"Remarks":        remarks,
		"LawBody":        nodeBuilder((*builder).lawBody),
	})
	b.nodes = merge(b.newProvisionContents, b.paragraphBlocks, b.quoteContents, alternatives[law.Node]{
		"Law":            nodeBuilder((*builder).law),
		"MainProvision":  nodeBuilder((*builder).mainProvision),
		"SupplProvision": nodeBuilder((*builder).supplProvision),
		"NewProvision":   nodeBuilder((*builder).newProvision),
		"Column":         nodeBuilder((*builder).column),
		"Note":           nodeBuilder((*builder).note),
		"Style":          nodeBuilder((*builder).note),
		"Format":         nodeBuilder((*builder).note),
		"TOCPart":        nodeBuilder((*builder).tocEntry),
		"TOCChapter":     nodeBuilder((*builder).tocEntry),
		"TOCSubsection":  nodeBuilder((*builder).tocEntry),
		"TOCDivision":    nodeBuilder((*builder).tocEntry),
		"TOCArticle":     nodeBuilder((*builder).tocEntry),
	})
	return b
}

func merge[T any](tables ...alternatives[T]) alternatives[T] {
	out := alternatives[T]{}
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

// open checks the element of c against its content model: attributes first,
// then character data and child elements. It returns the element with the
// paths of its children.
func (b *builder) open(c child) (*node, error) {
	model, ok := b.schema.Model(c.el.Tag)
	if !ok {
		return nil, &Error{
			Kind:    SchemaViolation,
			Path:    c.path,
			Element: c.el.Tag,
			Message: "unknown element " + c.el.Tag,
		}
	}

	if v := model.CheckAttributes(func(name string) (string, bool) {
		a := c.el.SelectAttr(name)
		if a == nil {
			return "", false
		}
		return a.Value, true
	}); v != nil {
		return nil, b.violation(c.path, v, nil)
	}

	n := &node{child: c, model: model}
	var tags []string
	var text bool
	seen := make(map[string]int)
	for _, tok := range c.el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if !t.IsWhitespace() {
				text = true
			}
		case *etree.Element:
			tags = append(tags, t.Tag)
			n.children = append(n.children, child{el: t, path: c.path.child(t.Tag, seen[t.Tag])})
			seen[t.Tag]++
		}
	}

	if v := model.Check(tags, text); v != nil {
		return nil, b.violation(c.path, v, n.children)
	}
	return n, nil
}

// violation converts a content model violation into a parse error. When the
// violation names a child, the path points at that child.
func (b *builder) violation(path Path, v *schema.Violation, children []child) *Error {
	kind := SchemaViolation
	if v.Kind.Structural() {
		kind = StructuralViolation
	}
	if v.Index >= 0 && v.Index < len(children) {
		path = children[v.Index].path
	}
	return &Error{
		Kind:     kind,
		Path:     path,
		Element:  v.Element,
		Message:  v.Message,
		Expected: v.Expected,
	}
}

// unsupported reports an element no builder handles at its position.
// Elements outside the vocabulary are schema violations; known ones are
// merely not modeled.
func (b *builder) unsupported(c child) *Error {
	if !b.schema.Known(c.el.Tag) {
		return &Error{
			Kind:    SchemaViolation,
			Path:    c.path,
			Element: c.el.Tag,
			Message: "unknown element " + c.el.Tag,
		}
	}
	return &Error{
		Kind:    UnsupportedContent,
		Path:    c.path,
		Element: c.el.Tag,
		Message: c.el.Tag + " is not supported here",
	}
}

// Attribute accessors. Values have already been checked by open, so
// conversions cannot fail.

func (n *node) str(name string) string {
	return n.el.SelectAttrValue(name, "")
}

func (n *node) flag(name string) bool {
	return n.el.SelectAttrValue(name, "") == "true"
}

func (n *node) integer(name string) int {
	v, _ := strconv.Atoi(n.el.SelectAttrValue(name, "0"))
	return v
}

// textOf returns the concatenated character data of an element.
func textOf(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

func subitemTag(level int) string {
	return "Subitem" + strconv.Itoa(level)
}

func sublistTag(level int) string {
	return "Sublist" + strconv.Itoa(level)
}
