package law

import "github.com/samber/lo"

// Kind names an element kind of the statute schema.
type Kind string

const (
	KindLaw            Kind = "Law"
	KindLawBody        Kind = "LawBody"
	KindTOC            Kind = "TOC"
	KindPreamble       Kind = "Preamble"
	KindMainProvision  Kind = "MainProvision"
	KindPart           Kind = "Part"
	KindChapter        Kind = "Chapter"
	KindSection        Kind = "Section"
	KindSubsection     Kind = "Subsection"
	KindDivision       Kind = "Division"
	KindArticle        Kind = "Article"
	KindParagraph      Kind = "Paragraph"
	KindItem           Kind = "Item"
	KindClass          Kind = "Class"
	KindList           Kind = "List"
	KindSentence       Kind = "Sentence"
	KindColumn         Kind = "Column"
	KindSupplProvision Kind = "SupplProvision"
	KindAmendProvision Kind = "AmendProvision"
	KindNewProvision   Kind = "NewProvision"

	KindTable        Kind = "Table"
	KindTableRow     Kind = "TableRow"
	KindTableColumn  Kind = "TableColumn"
	KindTableStruct  Kind = "TableStruct"
	KindFigStruct    Kind = "FigStruct"
	KindNoteStruct   Kind = "NoteStruct"
	KindStyleStruct  Kind = "StyleStruct"
	KindFormatStruct Kind = "FormatStruct"
	KindRemarks      Kind = "Remarks"
	KindNote         Kind = "Note"
	KindStyle        Kind = "Style"
	KindFormat       Kind = "Format"
	KindFig          Kind = "Fig"
	KindArithFormula Kind = "ArithFormula"
	KindQuoteStruct  Kind = "QuoteStruct"

	KindAppdxTable               Kind = "AppdxTable"
	KindAppdxNote                Kind = "AppdxNote"
	KindAppdxStyle               Kind = "AppdxStyle"
	KindAppdx                    Kind = "Appdx"
	KindAppdxFig                 Kind = "AppdxFig"
	KindAppdxFormat              Kind = "AppdxFormat"
	KindSupplProvisionAppdxTable Kind = "SupplProvisionAppdxTable"
	KindSupplProvisionAppdxStyle Kind = "SupplProvisionAppdxStyle"
	KindSupplProvisionAppdx      Kind = "SupplProvisionAppdx"

	KindTOCPart           Kind = "TOCPart"
	KindTOCChapter        Kind = "TOCChapter"
	KindTOCSection        Kind = "TOCSection"
	KindTOCSubsection     Kind = "TOCSubsection"
	KindTOCDivision       Kind = "TOCDivision"
	KindTOCArticle        Kind = "TOCArticle"
	KindTOCSupplProvision Kind = "TOCSupplProvision"
)

// Node is any element of the document tree. The set of implementations is
// closed; which of them may appear at a given position is fixed by the schema.
type Node interface {
	node()
}

// Select returns the members of nodes that have the concrete type T, keeping
// their relative order.
func Select[T Node](nodes []Node) []T {
	return lo.FilterMap(nodes, func(n Node, _ int) (T, bool) {
		t, ok := n.(T)
		return t, ok
	})
}

// at returns s[i], or nil when i is out of range.
func at[T any](s []*T, i int) *T {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

func (*Law) node()            {}
func (*LawBody) node()        {}
func (*TOC) node()            {}
func (*TOCEntry) node()       {}
func (*Preamble) node()       {}
func (*MainProvision) node()  {}
func (*Part) node()           {}
func (*Chapter) node()        {}
func (*Section) node()        {}
func (*Subsection) node()     {}
func (*Division) node()       {}
func (*Article) node()        {}
func (*Paragraph) node()      {}
func (*Item) node()           {}
func (*Class) node()          {}
func (*List) node()           {}
func (*Sentence) node()       {}
func (*Column) node()         {}
func (*SupplProvision) node() {}
func (*AmendProvision) node() {}
func (*NewProvision) node()   {}
func (*Fragment) node()       {}
func (*Table) node()          {}
func (*TableRow) node()       {}
func (*TableColumn) node()    {}
func (*Struct) node()         {}
func (*Remarks) node()        {}
func (*Note) node()           {}
func (*Fig) node()            {}
func (*ArithFormula) node()   {}
func (*QuoteStruct) node()    {}
func (*Appendix) node()       {}
func (PlainText) node()       {}
