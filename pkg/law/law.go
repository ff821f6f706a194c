package law

import (
	"golang.org/x/text/language"
)

// Era is the imperial era in which a law was promulgated.
type Era string

const (
	EraMeiji  Era = "Meiji"
	EraTaisho Era = "Taisho"
	EraShowa  Era = "Showa"
	EraHeisei Era = "Heisei"
	EraReiwa  Era = "Reiwa"
)

// LawType classifies the kind of legal instrument.
type LawType string

const (
	TypeConstitution         LawType = "Constitution"
	TypeAct                  LawType = "Act"
	TypeCabinetOrder         LawType = "CabinetOrder"
	TypeImperialOrder        LawType = "ImperialOrder"
	TypeMinisterialOrdinance LawType = "MinisterialOrdinance"
	TypeRule                 LawType = "Rule"
	TypeMisc                 LawType = "Misc"
)

// Law is the document root.
type Law struct {
	Era             Era
	Year            int
	Num             string
	Type            LawType
	Lang            language.Tag
	PromulgateMonth int // 0 when not given
	PromulgateDay   int // 0 when not given

	// LawNum is the promulgation number as printed, e.g. "昭和二十一年憲法".
	LawNum string
	Body   *LawBody
}

// Title returns the law's title text, or "" when the body has none.
func (l *Law) Title() string {
	if l == nil || l.Body == nil || l.Body.Title == nil {
		return ""
	}
	return l.Body.Title.Text()
}

// Articles returns every article of the main provision in document order,
// however deeply it is nested in structural units.
func (l *Law) Articles() []*Article {
	if l == nil || l.Body == nil {
		return nil
	}
	return l.Body.MainProvision.AllArticles()
}

// FindArticle returns the first main-provision article whose Num attribute
// equals num, or nil. Num is matched as opaque text ("9", "9_2").
func (l *Law) FindArticle(num string) *Article {
	for _, a := range l.Articles() {
		if a.Num == num {
			return a
		}
	}
	return nil
}

// LawBody holds the content of the law. Its fields follow the fixed schema
// order rather than document order.
type LawBody struct {
	Subject         string
	Title           *LawTitle
	EnactStatements []*TaggedText
	TOC             *TOC
	Preamble        *Preamble
	MainProvision   *MainProvision
	SupplProvisions []*SupplProvision
	Appendices      []*Appendix
}

// SupplProvision returns the supplementary provision at position i, or nil.
func (b *LawBody) SupplProvision(i int) *SupplProvision { return at(b.SupplProvisions, i) }

// Preamble is the text preceding the main provision.
type Preamble struct {
	Paragraphs []*Paragraph
}

// Layout reports which alternative fills a polymorphic provision position.
type Layout int

const (
	LayoutEmpty Layout = iota
	LayoutParts
	LayoutChapters
	LayoutSections
	LayoutSubsections
	LayoutDivisions
	LayoutArticles
	LayoutParagraphs
)

func (l Layout) String() string {
	switch l {
	case LayoutParts:
		return "parts"
	case LayoutChapters:
		return "chapters"
	case LayoutSections:
		return "sections"
	case LayoutSubsections:
		return "subsections"
	case LayoutDivisions:
		return "divisions"
	case LayoutArticles:
		return "articles"
	case LayoutParagraphs:
		return "paragraphs"
	default:
		return "empty"
	}
}

// MainProvision is the body of enacted provisions. Exactly one of its slices
// is non-empty.
type MainProvision struct {
	Extract    bool
	Parts      []*Part
	Chapters   []*Chapter
	Sections   []*Section
	Articles   []*Article
	Paragraphs []*Paragraph
}

func (m *MainProvision) Part(i int) *Part           { return at(m.Parts, i) }
func (m *MainProvision) Chapter(i int) *Chapter     { return at(m.Chapters, i) }
func (m *MainProvision) Section(i int) *Section     { return at(m.Sections, i) }
func (m *MainProvision) Article(i int) *Article     { return at(m.Articles, i) }
func (m *MainProvision) Paragraph(i int) *Paragraph { return at(m.Paragraphs, i) }

// Layout reports which alternative the main provision uses.
func (m *MainProvision) Layout() Layout {
	switch {
	case len(m.Parts) > 0:
		return LayoutParts
	case len(m.Chapters) > 0:
		return LayoutChapters
	case len(m.Sections) > 0:
		return LayoutSections
	case len(m.Articles) > 0:
		return LayoutArticles
	case len(m.Paragraphs) > 0:
		return LayoutParagraphs
	}
	return LayoutEmpty
}

// AllArticles returns the articles of the main provision depth-first.
func (m *MainProvision) AllArticles() []*Article {
	if m == nil {
		return nil
	}
	var out []*Article
	for _, p := range m.Parts {
		out = append(out, p.AllArticles()...)
	}
	for _, c := range m.Chapters {
		out = append(out, c.AllArticles()...)
	}
	for _, s := range m.Sections {
		out = append(out, s.AllArticles()...)
	}
	return append(out, m.Articles...)
}
