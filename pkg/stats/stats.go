// Package stats computes structural and textual statistics over a parsed
// statute.
package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/segment"
	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/samber/lo"
)

// Stats summarizes one statute.
type Stats struct {
	Title  string `json:"title" yaml:"title"`
	LawNum string `json:"law_num" yaml:"law_num"`
	Layout string `json:"layout" yaml:"layout"`

	// Elements counts nodes per element kind.
	Elements map[law.Kind]int `json:"elements" yaml:"elements"`

	Sentences  int `json:"sentences" yaml:"sentences"`
	Characters int `json:"characters" yaml:"characters"`
	Words      int `json:"words" yaml:"words"`
	Ideographs int `json:"ideographs" yaml:"ideographs"`
	Kana       int `json:"kana" yaml:"kana"`
	Numbers    int `json:"numbers" yaml:"numbers"`
	Rubies     int `json:"rubies" yaml:"rubies"`
}

// Count returns the number of nodes of kind k.
func (s *Stats) Count(k law.Kind) int {
	return s.Elements[k]
}

// Compute walks the whole tree once.
func Compute(l *law.Law) *Stats {
	s := &Stats{Elements: make(map[law.Kind]int)}
	if l == nil {
		return s
	}
	s.Title = l.Title()
	s.LawNum = l.LawNum
	if l.Body != nil && l.Body.MainProvision != nil {
		s.Layout = l.Body.MainProvision.Layout().String()
	}

	var sentences []*law.Sentence
	law.Walk(l, func(n law.Node) bool {
		if k := KindOf(n); k != "" {
			s.Elements[k]++
		}
		if sen, ok := n.(*law.Sentence); ok {
			sentences = append(sentences, sen)
		}
		return true
	})

	s.Sentences = len(sentences)
	s.Characters = lo.SumBy(sentences, func(sen *law.Sentence) int {
		return utf8.RuneCountInString(sen.Text())
	})
	s.Rubies = lo.SumBy(sentences, func(sen *law.Sentence) int {
		return lo.CountBy(sen.Runs, func(r law.Run) bool {
			_, ok := r.(law.RubyText)
			return ok
		})
	})
	for _, sen := range sentences {
		s.addSegments(sen.Text())
	}
	return s
}

// addSegments classifies the UAX #29 word segments of text.
func (s *Stats) addSegments(text string) {
	seg := segment.NewWordSegmenter(strings.NewReader(text))
	for seg.Segment() {
		switch seg.Type() {
		case segment.None:
			continue
		case segment.Ideo:
			s.Ideographs++
		case segment.Kana:
			s.Kana++
		case segment.Number:
			s.Numbers++
		}
		s.Words++
	}
}

// KindOf returns the element kind a node was built from, or "" for
// character data kept inside quotes.
func KindOf(n law.Node) law.Kind {
	switch v := n.(type) {
	case *law.Law:
		return law.KindLaw
	case *law.LawBody:
		return law.KindLawBody
	case *law.TOC:
		return law.KindTOC
	case *law.TOCEntry:
		return v.Kind
	case *law.Preamble:
		return law.KindPreamble
	case *law.MainProvision:
		return law.KindMainProvision
	case *law.Part:
		return law.KindPart
	case *law.Chapter:
		return law.KindChapter
	case *law.Section:
		return law.KindSection
	case *law.Subsection:
		return law.KindSubsection
	case *law.Division:
		return law.KindDivision
	case *law.Article:
		return law.KindArticle
	case *law.Paragraph:
		return law.KindParagraph
	case *law.Item:
		return law.Kind(v.Tag())
	case *law.Class:
		return law.KindClass
	case *law.List:
		return law.Kind(v.Tag())
	case *law.Sentence:
		return law.KindSentence
	case *law.Column:
		return law.KindColumn
	case *law.SupplProvision:
		return law.KindSupplProvision
	case *law.AmendProvision:
		return law.KindAmendProvision
	case *law.NewProvision:
		return law.KindNewProvision
	case *law.Fragment:
		return law.Kind(v.Tag)
	case *law.Table:
		return law.KindTable
	case *law.TableRow:
		return law.KindTableRow
	case *law.TableColumn:
		return law.KindTableColumn
	case *law.Struct:
		return v.Kind
	case *law.Remarks:
		return law.KindRemarks
	case *law.Note:
		return v.Kind
	case *law.Fig:
		return law.KindFig
	case *law.ArithFormula:
		return law.KindArithFormula
	case *law.QuoteStruct:
		return law.KindQuoteStruct
	case *law.Appendix:
		return v.Kind
	}
	return ""
}
