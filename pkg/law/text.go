package law

import "strings"

// Run is one span of a sentence's mixed content. The implementations are
// PlainText, RubyText, EmphasizedText, LineBreak, QuoteRun and FormulaRun.
type Run interface {
	// Text returns the readable characters the run contributes to its
	// sentence. Ruby glosses and line breaks contribute nothing.
	Text() string
	run()
}

// MarkKind identifies an inline decoration applied to a run.
type MarkKind int

const (
	MarkUnderline MarkKind = iota + 1
	MarkSup
	MarkSub
)

func (k MarkKind) String() string {
	switch k {
	case MarkUnderline:
		return "underline"
	case MarkSup:
		return "sup"
	case MarkSub:
		return "sub"
	default:
		return "unknown"
	}
}

// Mark is a decoration inherited from an enclosing inline element. Marks are
// ordered outermost first.
type Mark struct {
	Kind  MarkKind
	Style LineStyle // underline only
}

// PlainText is undecorated character data.
type PlainText struct {
	Value string
}

// RubyText is a base text annotated with one or more phonetic glosses.
type RubyText struct {
	Base    string
	Glosses []string
	Marks   []Mark
}

// EmphasizedText is character data inside underline, superscript or
// subscript markup.
type EmphasizedText struct {
	Value string
	Marks []Mark
}

// LineBreak is an explicit break. Renderers decide how to show it.
type LineBreak struct{}

// QuoteRun is a quoted sub-structure embedded in running text.
type QuoteRun struct {
	Quote *QuoteStruct
	Marks []Mark
}

// FormulaRun is an arithmetic formula embedded in running text.
type FormulaRun struct {
	Formula *ArithFormula
	Marks   []Mark
}

func (t PlainText) Text() string      { return t.Value }
func (t RubyText) Text() string       { return t.Base }
func (t EmphasizedText) Text() string { return t.Value }
func (LineBreak) Text() string        { return "" }
func (t QuoteRun) Text() string       { return t.Quote.Text() }
func (FormulaRun) Text() string       { return "" }

func (PlainText) run()      {}
func (RubyText) run()       {}
func (EmphasizedText) run() {}
func (LineBreak) run()      {}
func (QuoteRun) run()       {}
func (FormulaRun) run()     {}

// Runs is an ordered run sequence.
type Runs []Run

// Text concatenates the readable text of every run in order.
func (rs Runs) Text() string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Text())
	}
	return b.String()
}

// TaggedText is the mixed content of a title, caption, label or number.
type TaggedText struct {
	Runs Runs
}

// Text returns the readable text, or "" for an absent title.
func (t *TaggedText) Text() string {
	if t == nil {
		return ""
	}
	return t.Runs.Text()
}

// Caption is an article or paragraph caption.
type Caption struct {
	TaggedText
	CommonCaption bool
}

// Heading is the title of a table, figure, form or appendix.
type Heading struct {
	TaggedText
	WritingMode WritingMode
}

// LawTitle is the title of the law with its reading and abbreviations.
type LawTitle struct {
	TaggedText
	Kana       string
	Abbrev     string
	AbbrevKana string
}

// RemarksLabel labels a remarks block.
type RemarksLabel struct {
	TaggedText
	LineBreak bool
}

// SentenceFunction marks a sentence as main text or proviso.
type SentenceFunction string

const (
	FunctionMain    SentenceFunction = "main"
	FunctionProviso SentenceFunction = "proviso"
)

// WritingMode is the line direction of a block.
type WritingMode string

const (
	WritingVertical   WritingMode = "vertical"
	WritingHorizontal WritingMode = "horizontal"
)

// LineStyle is an underline or border style.
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDotted LineStyle = "dotted"
	LineDouble LineStyle = "double"
	LineNone   LineStyle = "none"
)

// Align is horizontal alignment of a column or cell.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// VAlign is vertical alignment of a cell.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// Sentence is the atomic text-bearing unit. Adjacent sentences are never
// merged; each Sentence element of the source is one value.
type Sentence struct {
	Num         string
	Function    SentenceFunction
	Indent      string
	WritingMode WritingMode
	Runs        Runs
}

// Text returns the readable text of the sentence.
func (s *Sentence) Text() string {
	if s == nil {
		return ""
	}
	return s.Runs.Text()
}

// Column is one column of a sentence laid out in columns.
type Column struct {
	Num       string
	LineBreak bool
	Align     Align
	Sentences []*Sentence
}

// Text joins the column's sentences.
func (c *Column) Text() string {
	return joinSentences(c.Sentences)
}

// SentenceBlock is the text body of a paragraph, item, class or list entry.
// Exactly one of Sentences, Columns and Table is populated.
type SentenceBlock struct {
	Sentences []*Sentence
	Columns   []*Column
	Table     *Table
}

// Sentence returns the sentence at zero-based position i, or nil.
func (b *SentenceBlock) Sentence(i int) *Sentence {
	if b == nil {
		return nil
	}
	return at(b.Sentences, i)
}

// Text returns the readable text of the block. Columns are separated by a
// full-width space, as printed statutes do.
func (b *SentenceBlock) Text() string {
	if b == nil {
		return ""
	}
	if len(b.Columns) > 0 {
		parts := make([]string, 0, len(b.Columns))
		for _, c := range b.Columns {
			parts = append(parts, c.Text())
		}
		return strings.Join(parts, "　")
	}
	return joinSentences(b.Sentences)
}

func joinSentences(ss []*Sentence) string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(s.Text())
	}
	return b.String()
}
