package parser

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/coolbeans/jalaw/pkg/law"
)

// runs flattens the mixed content of n into text runs in reading order.
// Character data becomes plain text, or emphasized text when marks are
// inherited from an enclosing Line, Sup or Sub. Adjacent runs are never
// merged.
func (b *builder) runs(n *node, marks []law.Mark) (law.Runs, error) {
	var out law.Runs
	k := 0
	for _, tok := range n.el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if t.Data == "" {
				continue
			}
			out = append(out, textRun(t.Data, marks))
		case *etree.Element:
			c := n.children[k]
			k++
			rs, err := b.inline(c, marks)
			if err != nil {
				return nil, err
			}
			out = append(out, rs...)
		}
	}
	return out, nil
}

func textRun(s string, marks []law.Mark) law.Run {
	if len(marks) == 0 {
		return law.PlainText{Value: s}
	}
	return law.EmphasizedText{Value: s, Marks: marks}
}

// withMark returns marks extended by m. The input is never modified.
func withMark(marks []law.Mark, m law.Mark) []law.Mark {
	out := make([]law.Mark, len(marks), len(marks)+1)
	copy(out, marks)
	return append(out, m)
}

// inline resolves one inline element. Elements the content model does not
// permit have already been rejected by open.
func (b *builder) inline(c child, marks []law.Mark) (law.Runs, error) {
	switch c.el.Tag {
	case "Ruby":
		r, err := b.ruby(c, marks)
		if err != nil {
			return nil, err
		}
		return law.Runs{r}, nil
	case "Line":
		n, err := b.open(c)
		if err != nil {
			return nil, err
		}
		style := law.LineStyle(n.str("Style"))
		if style == "" {
			style = law.LineSolid
		}
		return b.runs(n, withMark(marks, law.Mark{Kind: law.MarkUnderline, Style: style}))
	case "Sup", "Sub":
		if _, err := b.open(c); err != nil {
			return nil, err
		}
		kind := law.MarkSup
		if c.el.Tag == "Sub" {
			kind = law.MarkSub
		}
		return law.Runs{law.EmphasizedText{Value: textOf(c.el), Marks: withMark(marks, law.Mark{Kind: kind})}}, nil
	case "Br":
		if _, err := b.open(c); err != nil {
			return nil, err
		}
		return law.Runs{law.LineBreak{}}, nil
	case "QuoteStruct":
		q, err := b.quoteStruct(c)
		if err != nil {
			return nil, err
		}
		return law.Runs{law.QuoteRun{Quote: q, Marks: marks}}, nil
	case "ArithFormula":
		f, err := b.arithFormula(c)
		if err != nil {
			return nil, err
		}
		return law.Runs{law.FormulaRun{Formula: f, Marks: marks}}, nil
	}
	return nil, b.unsupported(c)
}

// ruby builds a base text with its glosses. Glosses stay separate from the
// base and keep their order.
func (b *builder) ruby(c child, marks []law.Mark) (law.RubyText, error) {
	n, err := b.open(c)
	if err != nil {
		return law.RubyText{}, err
	}

	var base strings.Builder
	for _, tok := range c.el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			base.WriteString(cd.Data)
		}
	}
	r := law.RubyText{Base: base.String(), Marks: marks}
	for _, rt := range n.children {
		if _, err := b.open(rt); err != nil {
			return law.RubyText{}, err
		}
		r.Glosses = append(r.Glosses, textOf(rt.el))
	}
	return r, nil
}

// mixed opens a text-bearing element and flattens its content.
func (b *builder) mixed(c child) (*node, law.Runs, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, nil, err
	}
	runs, err := b.runs(n, nil)
	if err != nil {
		return nil, nil, err
	}
	return n, runs, nil
}

func (b *builder) taggedText(c child) (*law.TaggedText, error) {
	_, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.TaggedText{Runs: runs}, nil
}

func (b *builder) caption(c child) (*law.Caption, error) {
	n, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.Caption{TaggedText: law.TaggedText{Runs: runs}, CommonCaption: n.flag("CommonCaption")}, nil
}

func (b *builder) heading(c child) (*law.Heading, error) {
	n, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.Heading{TaggedText: law.TaggedText{Runs: runs}, WritingMode: law.WritingMode(n.str("WritingMode"))}, nil
}

func (b *builder) lawTitle(c child) (*law.LawTitle, error) {
	n, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.LawTitle{
		TaggedText: law.TaggedText{Runs: runs},
		Kana:       n.str("Kana"),
		Abbrev:     n.str("Abbrev"),
		AbbrevKana: n.str("AbbrevKana"),
	}, nil
}

func (b *builder) remarksLabel(c child) (*law.RemarksLabel, error) {
	n, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.RemarksLabel{TaggedText: law.TaggedText{Runs: runs}, LineBreak: n.flag("LineBreak")}, nil
}

func (b *builder) sentence(c child) (*law.Sentence, error) {
	n, runs, err := b.mixed(c)
	if err != nil {
		return nil, err
	}
	return &law.Sentence{
		Num:         n.str("Num"),
		Function:    law.SentenceFunction(n.str("Function")),
		Indent:      n.str("Indent"),
		WritingMode: law.WritingMode(n.str("WritingMode")),
		Runs:        runs,
	}, nil
}

func (b *builder) column(c child) (*law.Column, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	col := &law.Column{
		Num:       n.str("Num"),
		LineBreak: n.flag("LineBreak"),
		Align:     law.Align(n.str("Align")),
	}
	for _, ch := range n.children {
		if err := add(b, &col.Sentences, (*builder).sentence, ch); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// sentenceBlock builds the content of ParagraphSentence, ItemSentence and
// the other sentence wrappers. The content model guarantees that only one
// of sentences, columns and a table is present.
func (b *builder) sentenceBlock(c child) (*law.SentenceBlock, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	blk := &law.SentenceBlock{}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "Sentence":
			err = add(b, &blk.Sentences, (*builder).sentence, ch)
		case "Column":
			err = add(b, &blk.Columns, (*builder).column, ch)
		case "Table":
			blk.Table, err = b.table(ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return blk, nil
}
