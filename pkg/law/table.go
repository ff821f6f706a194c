package law

import "strings"

// Table is a grid of rows. Header rows are optional; body rows are not.
type Table struct {
	WritingMode WritingMode
	HeaderRows  []*TableHeaderRow
	Rows        []*TableRow
}

// Row returns the body row at position i, or nil.
func (t *Table) Row(i int) *TableRow { return at(t.Rows, i) }

// TableHeaderRow is a row of column headings.
type TableHeaderRow struct {
	Columns []*TaggedText
}

// TableRow is one body row.
type TableRow struct {
	Columns []*TableColumn
}

// Column returns the cell at position i, or nil.
func (r *TableRow) Column(i int) *TableColumn { return at(r.Columns, i) }

// TableColumn is one table cell. Its content may be sentences, columns or
// whole structural units (tables that list amended provisions).
type TableColumn struct {
	BorderTop    LineStyle
	BorderBottom LineStyle
	BorderLeft   LineStyle
	BorderRight  LineStyle
	Rowspan      int // 0 when not given
	Colspan      int // 0 when not given
	Align        Align
	Valign       VAlign
	Contents     []Node
}

// Sentences returns the cell's direct sentences.
func (c *TableColumn) Sentences() []*Sentence { return Select[*Sentence](c.Contents) }

// Text joins the readable text of the cell's direct sentences and columns.
func (c *TableColumn) Text() string {
	var b strings.Builder
	for _, n := range c.Contents {
		switch v := n.(type) {
		case *Sentence:
			b.WriteString(v.Text())
		case *Column:
			b.WriteString(v.Text())
		}
	}
	return b.String()
}

// Struct is a titled block wrapping a table, figure, note, style or format
// with optional remarks before and after it. Kind tells which.
type Struct struct {
	Kind        Kind
	Title       *Heading
	PreRemarks  []*Remarks
	Body        Node // *Table, *Fig or *Note
	PostRemarks []*Remarks
}

// Table returns the wrapped table of a TableStruct, or nil.
func (s *Struct) Table() *Table {
	t, _ := s.Body.(*Table)
	return t
}

// Fig returns the wrapped figure of a FigStruct, or nil.
func (s *Struct) Fig() *Fig {
	f, _ := s.Body.(*Fig)
	return f
}

// Note returns the wrapped note, style or format, or nil.
func (s *Struct) Note() *Note {
	n, _ := s.Body.(*Note)
	return n
}

// Remarks is an explanatory block attached to a table, figure or appendix.
type Remarks struct {
	Label     *RemarksLabel
	Sentences []*Sentence
	Items     []*Item
}

// Note is the body of a note, style or format. Kind is KindNote, KindStyle
// or KindFormat. Styles and formats only hold figures.
type Note struct {
	Kind     Kind
	Contents []Node
}

// Fig is a reference to an image.
type Fig struct {
	Src string
}

// ArithFormula is an arithmetic formula, stored as figures.
type ArithFormula struct {
	Num  string
	Figs []*Fig
}

// QuoteStruct is a structure quoted inside running text: a fragment of
// another law, a table, a figure and so on. PlainText values hold the
// character data between the quoted elements.
type QuoteStruct struct {
	Contents []Node
}

// Text returns the quoted character data and the text of quoted sentences.
// Other quoted structures contribute nothing.
func (q *QuoteStruct) Text() string {
	if q == nil {
		return ""
	}
	var b strings.Builder
	for _, n := range q.Contents {
		switch v := n.(type) {
		case PlainText:
			b.WriteString(v.Value)
		case *Sentence:
			b.WriteString(v.Text())
		}
	}
	return b.String()
}
