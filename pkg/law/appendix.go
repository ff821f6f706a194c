package law

// Appendix is an appended table, note, style, figure, format or formula
// section. Kind is one of the Appdx kinds and decides which contents occur:
// structs, items and remarks for tables and notes, formulas for Appdx.
type Appendix struct {
	Kind              Kind
	Num               string
	Title             *Heading
	ArithFormulaNum   *TaggedText
	RelatedArticleNum *TaggedText
	Contents          []Node
}

// Structs returns the appendix's table, figure, note, style and format
// structs in document order.
func (a *Appendix) Structs() []*Struct { return Select[*Struct](a.Contents) }

// SupplType distinguishes the supplementary provisions of the original
// enactment from those of amending acts.
type SupplType string

const (
	SupplNew   SupplType = "New"
	SupplAmend SupplType = "Amend"
)

// SupplProvision is a supplementary provision (附則). At most one of
// Chapters, Articles and Paragraphs is populated.
type SupplProvision struct {
	Type        SupplType
	AmendLawNum string
	Extract     bool
	Label       *TaggedText
	Chapters    []*Chapter
	Articles    []*Article
	Paragraphs  []*Paragraph
	Appendices  []*Appendix
}

func (s *SupplProvision) Chapter(i int) *Chapter     { return at(s.Chapters, i) }
func (s *SupplProvision) Article(i int) *Article     { return at(s.Articles, i) }
func (s *SupplProvision) Paragraph(i int) *Paragraph { return at(s.Paragraphs, i) }

// AmendProvision is an amendment instruction together with the provisions
// it inserts. The instruction is kept as text and never applied.
type AmendProvision struct {
	Sentence      *SentenceBlock // nil when absent
	NewProvisions []*NewProvision
}

// NewProvision holds the structure an amendment inserts. Contents may be
// any structural node, including fragments for bare titles and notes.
type NewProvision struct {
	Contents []Node
}

// Fragment is a title or note appearing on its own inside a new provision,
// e.g. a replacement ChapterTitle. Tag is the source element name.
type Fragment struct {
	Tag  string
	Text *TaggedText
}
