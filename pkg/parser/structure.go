package parser

import (
	"github.com/coolbeans/jalaw/pkg/law"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// add builds c and appends the result to dst.
func add[T any](b *builder, dst *[]T, build func(*builder, child) (T, error), c child) error {
	v, err := build(b, c)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// addNode resolves c among alts and appends the result to dst.
func (b *builder) addNode(dst *[]law.Node, alts alternatives[law.Node], c child) error {
	n, err := resolve(b, alts, c)
	if err != nil {
		return err
	}
	*dst = append(*dst, n)
	return nil
}

func (b *builder) law(c child) (*law.Law, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	l := &law.Law{
		Era:             law.Era(n.str("Era")),
		Year:            n.integer("Year"),
		Num:             n.str("Num"),
		Type:            law.LawType(n.str("LawType")),
		Lang:            b.lang(n.str("Lang")),
		PromulgateMonth: n.integer("PromulgateMonth"),
		PromulgateDay:   n.integer("PromulgateDay"),
	}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "LawNum":
			if _, err = b.open(ch); err == nil {
				l.LawNum = textOf(ch.el)
			}
		case "LawBody":
			l.Body, err = b.lawBody(ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (b *builder) lang(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		b.log.Debug("Unable to parse law language", zap.String("lang", s), zap.Error(err))
		return language.Und
	}
	return tag
}

func (b *builder) lawBody(c child) (*law.LawBody, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	body := &law.LawBody{Subject: n.str("Subject")}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "LawTitle":
			body.Title, err = b.lawTitle(ch)
		case "EnactStatement":
			err = add(b, &body.EnactStatements, (*builder).taggedText, ch)
		case "TOC":
			body.TOC, err = b.toc(ch)
		case "Preamble":
			body.Preamble, err = b.preamble(ch)
		case "MainProvision":
			body.MainProvision, err = b.mainProvision(ch)
		case "SupplProvision":
			err = add(b, &body.SupplProvisions, (*builder).supplProvision, ch)
		case "AppdxTable", "AppdxNote", "AppdxStyle", "Appdx", "AppdxFig", "AppdxFormat":
			err = add(b, &body.Appendices, (*builder).appendix, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (b *builder) preamble(c child) (*law.Preamble, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	p := &law.Preamble{}
	for _, ch := range n.children {
		if err := add(b, &p.Paragraphs, (*builder).paragraph, ch); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *builder) mainProvision(c child) (*law.MainProvision, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	mp := &law.MainProvision{Extract: n.flag("Extract")}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "Part":
			err = add(b, &mp.Parts, (*builder).part, ch)
		case "Chapter":
			err = add(b, &mp.Chapters, (*builder).chapter, ch)
		case "Section":
			err = add(b, &mp.Sections, (*builder).section, ch)
		case "Article":
			err = add(b, &mp.Articles, (*builder).article, ch)
		case "Paragraph":
			err = add(b, &mp.Paragraphs, (*builder).paragraph, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	b.log.Debug("Built main provision", zap.Stringer("layout", mp.Layout()))
	return mp, nil
}

func unitHeader(n *node) law.UnitHeader {
	return law.UnitHeader{
		Num:    n.str("Num"),
		Delete: n.flag("Delete"),
		Hide:   n.flag("Hide"),
	}
}

// openUnit opens a structural unit and logs it.
func (b *builder) openUnit(c child) (*node, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}
	b.log.Debug("Building unit",
		zap.String("tag", c.el.Tag),
		zap.String("num", n.str("Num")),
		zap.Stringer("path", c.path))
	return n, nil
}

func (b *builder) part(c child) (*law.Part, error) {
	n, err := b.openUnit(c)
	if err != nil {
		return nil, err
	}

	p := &law.Part{UnitHeader: unitHeader(n)}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "PartTitle":
			p.Title, err = b.taggedText(ch)
		case "Chapter":
			err = add(b, &p.Chapters, (*builder).chapter, ch)
		case "Article":
			err = add(b, &p.Articles, (*builder).article, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *builder) chapter(c child) (*law.Chapter, error) {
	n, err := b.openUnit(c)
	if err != nil {
		return nil, err
	}

	ch := &law.Chapter{UnitHeader: unitHeader(n)}
	for _, cc := range n.children {
		switch cc.el.Tag {
		case "ChapterTitle":
			ch.Title, err = b.taggedText(cc)
		case "Section":
			err = add(b, &ch.Sections, (*builder).section, cc)
		case "Article":
			err = add(b, &ch.Articles, (*builder).article, cc)
		default:
			err = b.unsupported(cc)
		}
		if err != nil {
			return nil, err
		}
	}
	return ch, nil
}

func (b *builder) section(c child) (*law.Section, error) {
	n, err := b.openUnit(c)
	if err != nil {
		return nil, err
	}

	s := &law.Section{UnitHeader: unitHeader(n)}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "SectionTitle":
			s.Title, err = b.taggedText(ch)
		case "Subsection":
			err = add(b, &s.Subsections, (*builder).subsection, ch)
		case "Division":
			err = add(b, &s.Divisions, (*builder).division, ch)
		case "Article":
			err = add(b, &s.Articles, (*builder).article, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (b *builder) subsection(c child) (*law.Subsection, error) {
	n, err := b.openUnit(c)
	if err != nil {
		return nil, err
	}

	s := &law.Subsection{UnitHeader: unitHeader(n)}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "SubsectionTitle":
			s.Title, err = b.taggedText(ch)
		case "Division":
			err = add(b, &s.Divisions, (*builder).division, ch)
		case "Article":
			err = add(b, &s.Articles, (*builder).article, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (b *builder) division(c child) (*law.Division, error) {
	n, err := b.openUnit(c)
	if err != nil {
		return nil, err
	}

	d := &law.Division{UnitHeader: unitHeader(n)}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "DivisionTitle":
			d.Title, err = b.taggedText(ch)
		case "Article":
			err = add(b, &d.Articles, (*builder).article, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}
