package law

import "github.com/samber/lo"

// UnitHeader is shared by every structural unit.
type UnitHeader struct {
	// Num is the declared number copied verbatim ("3", "2_2"). It is
	// display data and never used for indexing.
	Num    string
	Delete bool
	Hide   bool
	// Title is the printed heading, e.g. "第三章　国民の権利及び義務".
	Title *TaggedText
}

// Unit is a structural unit between the main provision and its articles.
type Unit interface {
	Node
	Header() *UnitHeader
	Layout() Layout
	AllArticles() []*Article
}

func (h *UnitHeader) Header() *UnitHeader { return h }

// Part holds either chapters or articles.
type Part struct {
	UnitHeader
	Chapters []*Chapter
	Articles []*Article
}

func (p *Part) Chapter(i int) *Chapter { return at(p.Chapters, i) }
func (p *Part) Article(i int) *Article { return at(p.Articles, i) }

func (p *Part) Layout() Layout {
	if len(p.Chapters) > 0 {
		return LayoutChapters
	}
	return articlesLayout(p.Articles)
}

func (p *Part) AllArticles() []*Article {
	return append(lo.FlatMap(p.Chapters, func(c *Chapter, _ int) []*Article {
		return c.AllArticles()
	}), p.Articles...)
}

// Chapter holds either sections or articles. A chapter without sections is
// a legal layout, not an error.
type Chapter struct {
	UnitHeader
	Sections []*Section
	Articles []*Article
}

func (c *Chapter) Section(i int) *Section { return at(c.Sections, i) }
func (c *Chapter) Article(i int) *Article { return at(c.Articles, i) }

func (c *Chapter) Layout() Layout {
	if len(c.Sections) > 0 {
		return LayoutSections
	}
	return articlesLayout(c.Articles)
}

func (c *Chapter) AllArticles() []*Article {
	return append(lo.FlatMap(c.Sections, func(s *Section, _ int) []*Article {
		return s.AllArticles()
	}), c.Articles...)
}

// Section holds subsections, divisions or articles.
type Section struct {
	UnitHeader
	Subsections []*Subsection
	Divisions   []*Division
	Articles    []*Article
}

func (s *Section) Subsection(i int) *Subsection { return at(s.Subsections, i) }
func (s *Section) Division(i int) *Division     { return at(s.Divisions, i) }
func (s *Section) Article(i int) *Article       { return at(s.Articles, i) }

func (s *Section) Layout() Layout {
	switch {
	case len(s.Subsections) > 0:
		return LayoutSubsections
	case len(s.Divisions) > 0:
		return LayoutDivisions
	}
	return articlesLayout(s.Articles)
}

func (s *Section) AllArticles() []*Article {
	out := lo.FlatMap(s.Subsections, func(ss *Subsection, _ int) []*Article {
		return ss.AllArticles()
	})
	out = append(out, lo.FlatMap(s.Divisions, func(d *Division, _ int) []*Article {
		return d.Articles
	})...)
	return append(out, s.Articles...)
}

// Subsection holds divisions or articles.
type Subsection struct {
	UnitHeader
	Divisions []*Division
	Articles  []*Article
}

func (s *Subsection) Division(i int) *Division { return at(s.Divisions, i) }
func (s *Subsection) Article(i int) *Article   { return at(s.Articles, i) }

func (s *Subsection) Layout() Layout {
	if len(s.Divisions) > 0 {
		return LayoutDivisions
	}
	return articlesLayout(s.Articles)
}

func (s *Subsection) AllArticles() []*Article {
	return append(lo.FlatMap(s.Divisions, func(d *Division, _ int) []*Article {
		return d.Articles
	}), s.Articles...)
}

// Division is the lowest structural unit and holds articles only.
type Division struct {
	UnitHeader
	Articles []*Article
}

func (d *Division) Article(i int) *Article  { return at(d.Articles, i) }
func (d *Division) Layout() Layout          { return articlesLayout(d.Articles) }
func (d *Division) AllArticles() []*Article { return d.Articles }

func articlesLayout(as []*Article) Layout {
	if len(as) > 0 {
		return LayoutArticles
	}
	return LayoutEmpty
}
