package law

import "github.com/samber/lo"

// Children returns the node children of n in document order. Titles,
// captions and labels are not nodes and are not returned.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Law:
		return opt(v.Body)
	case *LawBody:
		out := concat(opt(v.TOC), opt(v.Preamble), opt(v.MainProvision))
		return concat(out, nodes(v.SupplProvisions), nodes(v.Appendices))
	case *TOC:
		return concat(nodes(v.Entries), opt(v.SupplProvision))
	case *TOCEntry:
		return nodes(v.Children)
	case *Preamble:
		return nodes(v.Paragraphs)
	case *MainProvision:
		return concat(nodes(v.Parts), nodes(v.Chapters), nodes(v.Sections), nodes(v.Articles), nodes(v.Paragraphs))
	case *Part:
		return concat(nodes(v.Chapters), nodes(v.Articles))
	case *Chapter:
		return concat(nodes(v.Sections), nodes(v.Articles))
	case *Section:
		return concat(nodes(v.Subsections), nodes(v.Divisions), nodes(v.Articles))
	case *Subsection:
		return concat(nodes(v.Divisions), nodes(v.Articles))
	case *Division:
		return nodes(v.Articles)
	case *Article:
		return nodes(v.Paragraphs)
	case *Paragraph:
		return concat(blockNodes(v.Sentence), v.Blocks)
	case *Item:
		return concat(blockNodes(v.Sentence), v.Blocks)
	case *Class:
		return concat(blockNodes(v.Sentence), nodes(v.Items))
	case *List:
		return concat(blockNodes(v.Sentence), nodes(v.Sublists))
	case *Column:
		return nodes(v.Sentences)
	case *Sentence:
		return runNodes(v.Runs)
	case *SupplProvision:
		return concat(nodes(v.Chapters), nodes(v.Articles), nodes(v.Paragraphs), nodes(v.Appendices))
	case *AmendProvision:
		return concat(blockNodes(v.Sentence), nodes(v.NewProvisions))
	case *NewProvision:
		return v.Contents
	case *Table:
		return nodes(v.Rows)
	case *TableRow:
		return nodes(v.Columns)
	case *TableColumn:
		return v.Contents
	case *Struct:
		out := nodes(v.PreRemarks)
		if v.Body != nil {
			out = append(out, v.Body)
		}
		return concat(out, nodes(v.PostRemarks))
	case *Remarks:
		return concat(nodes(v.Sentences), nodes(v.Items))
	case *Note:
		return v.Contents
	case *ArithFormula:
		return nodes(v.Figs)
	case *QuoteStruct:
		return v.Contents
	case *Appendix:
		return v.Contents
	}
	return nil
}

// Walk visits n and its descendants depth-first in document order. When fn
// returns false the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Texts returns the readable text fragments of n in document order: titles,
// captions and labels, then one fragment per sentence. Paragraph numbers,
// figures and empty fragments are omitted.
func Texts(n Node) []string {
	var out []string
	emit := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	var visit func(Node)
	each := func(ns []Node) {
		for _, c := range ns {
			visit(c)
		}
	}
	block := func(b *SentenceBlock) {
		if b == nil {
			return
		}
		each(blockNodes(b))
	}
	visit = func(n Node) {
		switch v := n.(type) {
		case *LawBody:
			if v.Title != nil {
				emit(v.Title.Text())
			}
			for _, e := range v.EnactStatements {
				emit(e.Text())
			}
		case *TOC:
			emit(v.Label.Text())
			emit(v.PreambleLabel.Text())
			each(Children(v))
			for _, l := range v.AppdxTableLabels {
				emit(l.Text())
			}
			return
		case *TOCEntry:
			emit(v.Title.Text())
			emit(v.ArticleRange.Text())
			if v.Caption != nil {
				emit(v.Caption.Text())
			}
		case Unit:
			emit(v.Header().Title.Text())
		case *Article:
			if v.Caption != nil {
				emit(v.Caption.Text())
			}
			emit(v.Title.Text())
			each(Children(v))
			emit(v.SupplNote.Text())
			return
		case *Paragraph:
			if v.Caption != nil {
				emit(v.Caption.Text())
			}
		case *Item:
			emit(v.Title.Text())
		case *Class:
			emit(v.Title.Text())
		case *Sentence:
			emit(v.Text())
			return
		case *SupplProvision:
			emit(v.Label.Text())
		case *Fragment:
			emit(v.Text.Text())
			return
		case *Table:
			for _, h := range v.HeaderRows {
				for _, c := range h.Columns {
					emit(c.Text())
				}
			}
		case *Struct:
			if v.Title != nil {
				emit(v.Title.Text())
			}
		case *Remarks:
			if v.Label != nil {
				emit(v.Label.Text())
			}
		case *QuoteStruct:
			emit(v.Text())
			return
		case *Appendix:
			if v.Title != nil {
				emit(v.Title.Text())
			}
			emit(v.ArithFormulaNum.Text())
			emit(v.RelatedArticleNum.Text())
		case PlainText:
			emit(v.Value)
			return
		case *AmendProvision:
			block(v.Sentence)
			each(nodes(v.NewProvisions))
			return
		}
		each(Children(n))
	}
	if n != nil {
		visit(n)
	}
	return out
}

func blockNodes(b *SentenceBlock) []Node {
	if b == nil {
		return nil
	}
	if b.Table != nil {
		return []Node{b.Table}
	}
	return concat(nodes(b.Sentences), nodes(b.Columns))
}

func runNodes(rs Runs) []Node {
	return lo.FilterMap(rs, func(r Run, _ int) (Node, bool) {
		switch v := r.(type) {
		case QuoteRun:
			return v.Quote, v.Quote != nil
		case FormulaRun:
			return v.Formula, v.Formula != nil
		}
		return nil, false
	})
}

func nodes[T Node](s []T) []Node {
	return lo.Map(s, func(t T, _ int) Node { return t })
}

func opt[T interface {
	*E
	Node
}, E any](p T) []Node {
	if p == nil {
		return nil
	}
	return []Node{p}
}

func concat(parts ...[]Node) []Node {
	return lo.Flatten(parts)
}
