package law

import "strconv"

// Article is the addressable legal unit.
type Article struct {
	Num     string
	Delete  bool
	Hide    bool
	Caption *Caption
	// Title is the printed article number, e.g. "第十一条".
	Title      *TaggedText
	Paragraphs []*Paragraph
	SupplNote  *TaggedText
}

// Paragraph returns the paragraph at zero-based position i, or nil.
func (a *Article) Paragraph(i int) *Paragraph { return at(a.Paragraphs, i) }

// Paragraph is a subdivision of an article.
type Paragraph struct {
	Num      string
	OldStyle bool
	OldNum   bool
	Hide     bool
	Caption  *Caption
	// ParagraphNum is the printed number; it is empty for the first
	// paragraph of most articles.
	ParagraphNum *TaggedText
	Sentence     *SentenceBlock
	// Blocks holds the content following the sentence in document order:
	// *Item, *List, *Class, *AmendProvision and *Struct values.
	Blocks []Node
}

func (p *Paragraph) Items() []*Item                     { return Select[*Item](p.Blocks) }
func (p *Paragraph) Lists() []*List                     { return Select[*List](p.Blocks) }
func (p *Paragraph) Classes() []*Class                  { return Select[*Class](p.Blocks) }
func (p *Paragraph) AmendProvisions() []*AmendProvision { return Select[*AmendProvision](p.Blocks) }
func (p *Paragraph) Structs() []*Struct                 { return Select[*Struct](p.Blocks) }

// Item returns the item at zero-based position i among the paragraph's
// items, or nil.
func (p *Paragraph) Item(i int) *Item { return at(p.Items(), i) }

// MaxSubitemLevel is the deepest subitem level the schema defines.
const MaxSubitemLevel = 10

// Item is a numbered clause. Subitems of every depth use the same type;
// Level is 0 for an Item and n for a Subitem n.
type Item struct {
	Level    int
	Num      string
	Delete   bool
	Hide     bool
	Title    *TaggedText
	Sentence *SentenceBlock
	// Blocks holds nested subitems, lists and structs in document order.
	Blocks []Node
}

// Tag returns the element name for the item's level.
func (it *Item) Tag() string {
	if it.Level == 0 {
		return "Item"
	}
	return "Subitem" + strconv.Itoa(it.Level)
}

func (it *Item) Subitems() []*Item { return Select[*Item](it.Blocks) }
func (it *Item) Lists() []*List    { return Select[*List](it.Blocks) }
func (it *Item) Structs() []*Struct {
	return Select[*Struct](it.Blocks)
}

// Subitem returns the nested item at position i, or nil.
func (it *Item) Subitem(i int) *Item { return at(it.Subitems(), i) }

// Class is a classification clause inside a paragraph.
type Class struct {
	Num      string
	Title    *TaggedText
	Sentence *SentenceBlock
	Items    []*Item
}

// MaxSublistLevel is the deepest sublist level the schema defines.
const MaxSublistLevel = 3

// List is an unnumbered enumeration. Level is 0 for a List and n for a
// Sublist n.
type List struct {
	Level    int
	Sentence *SentenceBlock
	Sublists []*List
}

// Tag returns the element name for the list's level.
func (l *List) Tag() string {
	if l.Level == 0 {
		return "List"
	}
	return "Sublist" + strconv.Itoa(l.Level)
}
