package parser

import (
	"strings"

	"github.com/coolbeans/jalaw/pkg/law"
)

func (b *builder) toc(c child) (*law.TOC, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	t := &law.TOC{}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "TOCLabel":
			t.Label, err = b.taggedText(ch)
		case "TOCPreambleLabel":
			t.PreambleLabel, err = b.taggedText(ch)
		case "TOCPart", "TOCChapter", "TOCSection", "TOCArticle":
			err = add(b, &t.Entries, (*builder).tocEntry, ch)
		case "TOCSupplProvision":
			t.SupplProvision, err = b.tocEntry(ch)
		case "TOCAppdxTableLabel":
			err = add(b, &t.AppdxTableLabels, (*builder).taggedText, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// tocEntry builds every TOC entry kind.
func (b *builder) tocEntry(c child) (*law.TOCEntry, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	e := &law.TOCEntry{
		Kind:   law.Kind(c.el.Tag),
		Num:    n.str("Num"),
		Delete: n.flag("Delete"),
	}
	for _, ch := range n.children {
		switch tag := ch.el.Tag; {
		case tag == "ArticleRange":
			e.ArticleRange, err = b.taggedText(ch)
		case tag == "ArticleCaption":
			e.Caption, err = b.caption(ch)
		case tag == "SupplProvisionLabel", strings.HasSuffix(tag, "Title"):
			e.Title, err = b.taggedText(ch)
		case strings.HasPrefix(tag, "TOC"):
			err = add(b, &e.Children, (*builder).tocEntry, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}
