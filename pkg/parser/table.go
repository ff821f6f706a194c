package parser

import (
	"github.com/beevik/etree"
	"github.com/coolbeans/jalaw/pkg/law"
)

func (b *builder) table(c child) (*law.Table, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	t := &law.Table{WritingMode: law.WritingMode(n.str("WritingMode"))}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "TableHeaderRow":
			err = add(b, &t.HeaderRows, (*builder).tableHeaderRow, ch)
		case "TableRow":
			err = add(b, &t.Rows, (*builder).tableRow, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (b *builder) tableHeaderRow(c child) (*law.TableHeaderRow, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	r := &law.TableHeaderRow{}
	for _, ch := range n.children {
		if err := add(b, &r.Columns, (*builder).taggedText, ch); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (b *builder) tableRow(c child) (*law.TableRow, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	r := &law.TableRow{}
	for _, ch := range n.children {
		if err := add(b, &r.Columns, (*builder).tableColumn, ch); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (b *builder) tableColumn(c child) (*law.TableColumn, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	col := &law.TableColumn{
		BorderTop:    law.LineStyle(n.str("BorderTop")),
		BorderBottom: law.LineStyle(n.str("BorderBottom")),
		BorderLeft:   law.LineStyle(n.str("BorderLeft")),
		BorderRight:  law.LineStyle(n.str("BorderRight")),
		Rowspan:      n.integer("rowspan"),
		Colspan:      n.integer("colspan"),
		Align:        law.Align(n.str("Align")),
		Valign:       law.VAlign(n.str("Valign")),
	}
	for _, ch := range n.children {
		if err := b.addNode(&col.Contents, b.cellContents, ch); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// structure builds any of the *Struct wrappers. Remarks are split by
// whether they precede or follow the wrapped body.
func (b *builder) structure(c child) (*law.Struct, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	tag := c.el.Tag
	s := &law.Struct{Kind: law.Kind(tag)}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case tag + "Title":
			s.Title, err = b.heading(ch)
		case "Remarks":
			if s.Body == nil {
				err = add(b, &s.PreRemarks, (*builder).remarks, ch)
			} else {
				err = add(b, &s.PostRemarks, (*builder).remarks, ch)
			}
		case "Table":
			s.Body, err = nodeOf(b.table(ch))
		case "Fig":
			s.Body, err = nodeOf(b.fig(ch))
		case "Note", "Style", "Format":
			s.Body, err = nodeOf(b.note(ch))
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// nodeOf keeps a failed build from leaving a typed nil in an interface.
func nodeOf[T law.Node](n T, err error) (law.Node, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (b *builder) remarks(c child) (*law.Remarks, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	r := &law.Remarks{}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "RemarksLabel":
			r.Label, err = b.remarksLabel(ch)
		case "Sentence":
			err = add(b, &r.Sentences, (*builder).sentence, ch)
		case "Item":
			err = add(b, &r.Items, (*builder).item, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// note builds a Note, Style or Format body.
func (b *builder) note(c child) (*law.Note, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	nt := &law.Note{Kind: law.Kind(c.el.Tag)}
	for _, ch := range n.children {
		if err := b.addNode(&nt.Contents, b.noteContents, ch); err != nil {
			return nil, err
		}
	}
	return nt, nil
}

func (b *builder) fig(c child) (*law.Fig, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}
	return &law.Fig{Src: n.str("src")}, nil
}

// arithFormula keeps the figures of a formula. Formulas written out as
// sentences, tables or items are valid but not modeled.
func (b *builder) arithFormula(c child) (*law.ArithFormula, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	f := &law.ArithFormula{Num: n.str("Num")}
	for _, ch := range n.children {
		if ch.el.Tag != "Fig" {
			return nil, b.unsupported(ch)
		}
		if err := add(b, &f.Figs, (*builder).fig, ch); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// quoteStruct keeps character data and quoted elements in document order.
func (b *builder) quoteStruct(c child) (*law.QuoteStruct, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	q := &law.QuoteStruct{}
	k := 0
	for _, tok := range c.el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if t.Data != "" {
				q.Contents = append(q.Contents, law.PlainText{Value: t.Data})
			}
		case *etree.Element:
			ch := n.children[k]
			k++
			if err := b.addNode(&q.Contents, b.quoteContents, ch); err != nil {
				return nil, err
			}
		}
	}
	return q, nil
}
