package parser

import (
	"strconv"
	"strings"

	"github.com/coolbeans/jalaw/pkg/law"
	"go.uber.org/zap"
)

func (b *builder) article(c child) (*law.Article, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}
	b.log.Debug("Building article", zap.String("num", n.str("Num")), zap.Stringer("path", c.path))

	a := &law.Article{
		Num:    n.str("Num"),
		Delete: n.flag("Delete"),
		Hide:   n.flag("Hide"),
	}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "ArticleCaption":
			a.Caption, err = b.caption(ch)
		case "ArticleTitle":
			a.Title, err = b.taggedText(ch)
		case "Paragraph":
			err = add(b, &a.Paragraphs, (*builder).paragraph, ch)
		case "SupplNote":
			a.SupplNote, err = b.taggedText(ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (b *builder) paragraph(c child) (*law.Paragraph, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	p := &law.Paragraph{
		Num:      n.str("Num"),
		OldStyle: n.flag("OldStyle"),
		OldNum:   n.flag("OldNum"),
		Hide:     n.flag("Hide"),
	}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "ParagraphCaption":
			p.Caption, err = b.caption(ch)
		case "ParagraphNum":
			p.ParagraphNum, err = b.taggedText(ch)
		case "ParagraphSentence":
			p.Sentence, err = b.sentenceBlock(ch)
		default:
			err = b.addNode(&p.Blocks, b.paragraphBlocks, ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// item builds an Item or a Subitem of any level. Every level shares one
// shape: {Tag}Title, {Tag}Sentence, then nested blocks.
func (b *builder) item(c child) (*law.Item, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	tag := c.el.Tag
	it := &law.Item{
		Level:  levelOf(tag, "Subitem"),
		Num:    n.str("Num"),
		Delete: n.flag("Delete"),
		Hide:   n.flag("Hide"),
	}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case tag + "Title":
			it.Title, err = b.taggedText(ch)
		case tag + "Sentence":
			it.Sentence, err = b.sentenceBlock(ch)
		default:
			err = b.addNode(&it.Blocks, b.itemBlocks, ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (b *builder) class(c child) (*law.Class, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	cl := &law.Class{Num: n.str("Num")}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "ClassTitle":
			cl.Title, err = b.taggedText(ch)
		case "ClassSentence":
			cl.Sentence, err = b.sentenceBlock(ch)
		case "Item":
			err = add(b, &cl.Items, (*builder).item, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return cl, nil
}

// list builds a List or a Sublist of any level.
func (b *builder) list(c child) (*law.List, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	tag := c.el.Tag
	l := &law.List{Level: levelOf(tag, "Sublist")}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case tag + "Sentence":
			l.Sentence, err = b.sentenceBlock(ch)
		case sublistTag(l.Level + 1):
			err = add(b, &l.Sublists, (*builder).list, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

// levelOf returns n for tags like Subitem{n} and 0 otherwise.
func levelOf(tag, prefix string) int {
	rest, ok := strings.CutPrefix(tag, prefix)
	if !ok {
		return 0
	}
	level, err := strconv.Atoi(rest)
	if err != nil {
		return 0
	}
	return level
}
