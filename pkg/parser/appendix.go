package parser

import (
	"strings"

	"github.com/coolbeans/jalaw/pkg/law"
)

// appendixTags lists every appendix kind, including those attached to
// supplementary provisions.
var appendixTags = []string{
	"AppdxTable", "AppdxNote", "AppdxStyle", "Appdx", "AppdxFig", "AppdxFormat",
	"SupplProvisionAppdxTable", "SupplProvisionAppdxStyle", "SupplProvisionAppdx",
}

func (b *builder) appendix(c child) (*law.Appendix, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	a := &law.Appendix{Kind: law.Kind(c.el.Tag), Num: n.str("Num")}
	for _, ch := range n.children {
		switch tag := ch.el.Tag; {
		case tag == "ArithFormulaNum":
			a.ArithFormulaNum, err = b.taggedText(ch)
		case tag == "RelatedArticleNum":
			a.RelatedArticleNum, err = b.taggedText(ch)
		case strings.HasSuffix(tag, "Title"):
			a.Title, err = b.heading(ch)
		default:
			err = b.addNode(&a.Contents, b.appendixContents, ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (b *builder) supplProvision(c child) (*law.SupplProvision, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	s := &law.SupplProvision{
		Type:        law.SupplType(n.str("Type")),
		AmendLawNum: n.str("AmendLawNum"),
		Extract:     n.flag("Extract"),
	}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "SupplProvisionLabel":
			s.Label, err = b.taggedText(ch)
		case "Chapter":
			err = add(b, &s.Chapters, (*builder).chapter, ch)
		case "Article":
			err = add(b, &s.Articles, (*builder).article, ch)
		case "Paragraph":
			err = add(b, &s.Paragraphs, (*builder).paragraph, ch)
		case "SupplProvisionAppdxTable", "SupplProvisionAppdxStyle", "SupplProvisionAppdx":
			err = add(b, &s.Appendices, (*builder).appendix, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (b *builder) amendProvision(c child) (*law.AmendProvision, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	ap := &law.AmendProvision{}
	for _, ch := range n.children {
		switch ch.el.Tag {
		case "AmendProvisionSentence":
			ap.Sentence, err = b.sentenceBlock(ch)
		case "NewProvision":
			err = add(b, &ap.NewProvisions, (*builder).newProvision, ch)
		default:
			err = b.unsupported(ch)
		}
		if err != nil {
			return nil, err
		}
	}
	return ap, nil
}

func (b *builder) newProvision(c child) (*law.NewProvision, error) {
	n, err := b.open(c)
	if err != nil {
		return nil, err
	}

	np := &law.NewProvision{}
	for _, ch := range n.children {
		if err := b.addNode(&np.Contents, b.newProvisionContents, ch); err != nil {
			return nil, err
		}
	}
	return np, nil
}

// fragment builds a title or note that stands on its own.
func (b *builder) fragment(c child) (*law.Fragment, error) {
	t, err := b.taggedText(c)
	if err != nil {
		return nil, err
	}
	return &law.Fragment{Tag: c.el.Tag, Text: t}, nil
}
