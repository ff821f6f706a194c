// Package render converts a parsed statute into plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/coolbeans/jalaw/pkg/law"
)

// RubyMode selects how ruby runs are written.
type RubyMode string

const (
	// RubyBase writes only the base text.
	RubyBase RubyMode = "base"
	// RubyGloss writes only the reading.
	RubyGloss RubyMode = "gloss"
	// RubyBoth writes the base followed by the reading in parentheses.
	RubyBoth RubyMode = "both"
)

// ParseRubyMode validates a ruby mode name. The empty string selects
// RubyBase.
func ParseRubyMode(s string) (RubyMode, error) {
	switch RubyMode(s) {
	case "", RubyBase:
		return RubyBase, nil
	case RubyGloss, RubyBoth:
		return RubyMode(s), nil
	}
	return "", fmt.Errorf("unknown ruby mode %q (expected base, gloss or both)", s)
}

// Options control plain text output.
type Options struct {
	Ruby RubyMode
	// LineBreak replaces explicit line breaks inside sentences.
	LineBreak string
	// Indent prefixes items and subitems with one full-width space per level.
	Indent bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Ruby: RubyBase, LineBreak: "\n", Indent: true}
}

const (
	ideographicSpace = "　"
	blockSeparator   = "\n"
)

// Runs writes a run sequence as text.
func Runs(runs law.Runs, opts Options) string {
	var builder strings.Builder
	writeRuns(&builder, runs, opts)
	return builder.String()
}

func writeRuns(builder *strings.Builder, runs law.Runs, opts Options) {
	for _, run := range runs {
		switch r := run.(type) {
		case law.RubyText:
			writeRuby(builder, r, opts.Ruby)
		case law.LineBreak:
			builder.WriteString(opts.LineBreak)
		case law.QuoteRun:
			writeQuote(builder, r.Quote, opts)
		default:
			builder.WriteString(run.Text())
		}
	}
}

func writeRuby(builder *strings.Builder, r law.RubyText, mode RubyMode) {
	gloss := strings.Join(r.Glosses, "")
	switch {
	case mode == RubyGloss && gloss != "":
		builder.WriteString(gloss)
	case mode == RubyBoth && gloss != "":
		builder.WriteString(r.Base + "（" + gloss + "）")
	default:
		builder.WriteString(r.Base)
	}
}

func writeQuote(builder *strings.Builder, q *law.QuoteStruct, opts Options) {
	if q == nil {
		return
	}
	for _, n := range q.Contents {
		switch v := n.(type) {
		case law.PlainText:
			builder.WriteString(v.Value)
		case *law.Sentence:
			writeRuns(builder, v.Runs, opts)
		}
	}
}

// Tagged writes a title or label.
func Tagged(t *law.TaggedText, opts Options) string {
	if t == nil {
		return ""
	}
	return Runs(t.Runs, opts)
}

// Block writes the sentences, columns or table of a sentence block.
// Columns are separated by a full-width space, table cells by tabs.
func Block(b *law.SentenceBlock, opts Options) string {
	if b == nil {
		return ""
	}
	if len(b.Columns) > 0 {
		parts := make([]string, 0, len(b.Columns))
		for _, c := range b.Columns {
			parts = append(parts, sentences(c.Sentences, opts))
		}
		return strings.Join(parts, ideographicSpace)
	}
	if b.Table != nil {
		var builder strings.Builder
		writeTable(&builder, b.Table, "", opts)
		return strings.TrimSuffix(builder.String(), "\n")
	}
	return sentences(b.Sentences, opts)
}

func sentences(ss []*law.Sentence, opts Options) string {
	var builder strings.Builder
	for _, s := range ss {
		writeRuns(&builder, s.Runs, opts)
	}
	return builder.String()
}

// LawToPlaintext writes a whole statute: title, number, table of contents,
// preamble, main provision, supplementary provisions and appendices.
func LawToPlaintext(l *law.Law, opts Options) string {
	var builder strings.Builder
	if l == nil || l.Body == nil {
		return ""
	}
	body := l.Body

	if body.Title != nil {
		builder.WriteString(Runs(body.Title.Runs, opts) + "\n")
	}
	if l.LawNum != "" {
		builder.WriteString("（" + l.LawNum + "）\n")
	}
	builder.WriteString(blockSeparator)

	for _, es := range body.EnactStatements {
		builder.WriteString(Tagged(es, opts) + "\n")
	}
	if body.TOC != nil {
		writeTOC(&builder, body.TOC, opts)
		builder.WriteString(blockSeparator)
	}
	if body.Preamble != nil {
		for _, p := range body.Preamble.Paragraphs {
			writeParagraph(&builder, p, true, opts)
		}
		builder.WriteString(blockSeparator)
	}
	writeMainProvision(&builder, body.MainProvision, opts)

	for _, sp := range body.SupplProvisions {
		builder.WriteString(blockSeparator)
		writeSupplProvision(&builder, sp, opts)
	}
	for _, ap := range body.Appendices {
		builder.WriteString(blockSeparator)
		writeAppendix(&builder, ap, opts)
	}
	return builder.String()
}

// ArticleToPlaintext writes one article with its caption, paragraphs and
// items.
func ArticleToPlaintext(a *law.Article, opts Options) string {
	var builder strings.Builder
	writeArticle(&builder, a, opts)
	return builder.String()
}

// TOCToPlaintext writes a table of contents, nesting entries by indentation.
func TOCToPlaintext(toc *law.TOC, opts Options) string {
	var builder strings.Builder
	writeTOC(&builder, toc, opts)
	return builder.String()
}

func writeTOC(builder *strings.Builder, toc *law.TOC, opts Options) {
	if toc == nil {
		return
	}
	if toc.Label != nil {
		builder.WriteString(Tagged(toc.Label, opts) + "\n")
	}
	if toc.PreambleLabel != nil {
		builder.WriteString(ideographicSpace + Tagged(toc.PreambleLabel, opts) + "\n")
	}
	for _, e := range toc.Entries {
		writeTOCEntry(builder, e, 1, opts)
	}
	if toc.SupplProvision != nil {
		writeTOCEntry(builder, toc.SupplProvision, 1, opts)
	}
	for _, label := range toc.AppdxTableLabels {
		builder.WriteString(ideographicSpace + Tagged(label, opts) + "\n")
	}
}

func writeTOCEntry(builder *strings.Builder, e *law.TOCEntry, depth int, opts Options) {
	line := Tagged(e.Title, opts)
	if e.Caption != nil {
		line += Runs(e.Caption.Runs, opts)
	}
	if e.ArticleRange != nil {
		line += Tagged(e.ArticleRange, opts)
	}
	builder.WriteString(strings.Repeat(ideographicSpace, depth) + line + "\n")
	for _, c := range e.Children {
		writeTOCEntry(builder, c, depth+1, opts)
	}
}

func writeMainProvision(builder *strings.Builder, mp *law.MainProvision, opts Options) {
	if mp == nil {
		return
	}
	for _, p := range mp.Parts {
		writeUnit(builder, p, 0, opts)
	}
	for _, c := range mp.Chapters {
		writeUnit(builder, c, 0, opts)
	}
	for _, s := range mp.Sections {
		writeUnit(builder, s, 0, opts)
	}
	for _, a := range mp.Articles {
		writeArticle(builder, a, opts)
	}
	for _, p := range mp.Paragraphs {
		writeParagraph(builder, p, true, opts)
	}
}

// writeUnit writes a structural unit title indented by its depth, then its
// nested units and articles.
func writeUnit(builder *strings.Builder, u law.Unit, depth int, opts Options) {
	h := u.Header()
	if h.Title != nil {
		indent := ""
		if opts.Indent {
			indent = strings.Repeat(ideographicSpace, depth+2)
		}
		builder.WriteString(indent + Tagged(h.Title, opts) + "\n")
	}

	var children []law.Unit
	var articles []*law.Article
	switch v := u.(type) {
	case *law.Part:
		children = units(v.Chapters)
		articles = v.Articles
	case *law.Chapter:
		children = units(v.Sections)
		articles = v.Articles
	case *law.Section:
		children = append(units(v.Subsections), units(v.Divisions)...)
		articles = v.Articles
	case *law.Subsection:
		children = units(v.Divisions)
		articles = v.Articles
	case *law.Division:
		articles = v.Articles
	}
	for _, c := range children {
		writeUnit(builder, c, depth+1, opts)
	}
	for _, a := range articles {
		writeArticle(builder, a, opts)
	}
}

func units[T law.Unit](s []T) []law.Unit {
	out := make([]law.Unit, len(s))
	for i, u := range s {
		out[i] = u
	}
	return out
}

func writeArticle(builder *strings.Builder, a *law.Article, opts Options) {
	if a == nil {
		return
	}
	if a.Caption != nil {
		builder.WriteString(ideographicSpace + Runs(a.Caption.Runs, opts) + "\n")
	}
	title := Tagged(a.Title, opts)
	for i, p := range a.Paragraphs {
		if i == 0 {
			writeParagraphAs(builder, p, title, opts)
			continue
		}
		writeParagraph(builder, p, false, opts)
	}
	if a.SupplNote != nil {
		builder.WriteString(Tagged(a.SupplNote, opts) + "\n")
	}
}

// writeParagraph writes a paragraph headed by its number. The number of a
// sole or first paragraph is usually empty and is then omitted.
func writeParagraph(builder *strings.Builder, p *law.Paragraph, first bool, opts Options) {
	num := Tagged(p.ParagraphNum, opts)
	if first && num == "" {
		writeParagraphAs(builder, p, "", opts)
		return
	}
	writeParagraphAs(builder, p, num, opts)
}

func writeParagraphAs(builder *strings.Builder, p *law.Paragraph, label string, opts Options) {
	if p.Caption != nil {
		builder.WriteString(ideographicSpace + Runs(p.Caption.Runs, opts) + "\n")
	}
	writeLine(builder, "", label, Block(p.Sentence, opts))
	writeBlocks(builder, p.Blocks, 1, opts)
}

func writeLine(builder *strings.Builder, indent, label, text string) {
	builder.WriteString(indent)
	if label != "" {
		builder.WriteString(label)
		if text != "" {
			builder.WriteString(ideographicSpace)
		}
	}
	builder.WriteString(text + "\n")
}

func (o Options) indent(level int) string {
	if !o.Indent {
		return ""
	}
	return strings.Repeat(ideographicSpace, level)
}

// writeBlocks writes the items, lists, classes, structs, amendments,
// sentences, figures and remarks that follow a sentence or fill a note, in
// document order.
func writeBlocks(builder *strings.Builder, blocks []law.Node, level int, opts Options) {
	for _, n := range blocks {
		switch v := n.(type) {
		case *law.Item:
			writeLine(builder, opts.indent(level), Tagged(v.Title, opts), Block(v.Sentence, opts))
			writeBlocks(builder, v.Blocks, level+1, opts)
		case *law.List:
			writeList(builder, v, level, opts)
		case *law.Class:
			writeLine(builder, opts.indent(level), Tagged(v.Title, opts), Block(v.Sentence, opts))
			for _, it := range v.Items {
				writeBlocks(builder, []law.Node{it}, level+1, opts)
			}
		case *law.Struct:
			writeStruct(builder, v, level, opts)
		case *law.AmendProvision:
			if v.Sentence != nil {
				writeLine(builder, opts.indent(level), "", Block(v.Sentence, opts))
			}
			for _, np := range v.NewProvisions {
				writeNodes(builder, np.Contents, level+1, opts)
			}
		case *law.Sentence:
			writeLine(builder, opts.indent(level), "", Runs(v.Runs, opts))
		case *law.Fig:
			builder.WriteString(opts.indent(level) + "[" + v.Src + "]\n")
		case *law.ArithFormula:
			for _, f := range v.Figs {
				builder.WriteString(opts.indent(level) + "[" + f.Src + "]\n")
			}
		case *law.Remarks:
			writeRemarks(builder, v, level, opts)
		case *law.Table:
			writeTable(builder, v, opts.indent(level), opts)
		}
	}
}

func writeList(builder *strings.Builder, l *law.List, level int, opts Options) {
	writeLine(builder, opts.indent(level), "", Block(l.Sentence, opts))
	for _, s := range l.Sublists {
		writeList(builder, s, level+1, opts)
	}
}

// writeNodes writes structural content that may stand anywhere: the body of
// a new provision or of a table cell.
func writeNodes(builder *strings.Builder, nodes []law.Node, level int, opts Options) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *law.Article:
			writeArticle(builder, v, opts)
		case *law.Paragraph:
			writeParagraph(builder, v, false, opts)
		case *law.Fragment:
			writeLine(builder, opts.indent(level), "", Tagged(v.Text, opts))
		case law.Unit:
			writeUnit(builder, v, level, opts)
		default:
			writeBlocks(builder, []law.Node{n}, level, opts)
		}
	}
}

func writeStruct(builder *strings.Builder, s *law.Struct, level int, opts Options) {
	if s.Title != nil {
		builder.WriteString(opts.indent(level) + Runs(s.Title.Runs, opts) + "\n")
	}
	for _, r := range s.PreRemarks {
		writeRemarks(builder, r, level, opts)
	}
	switch body := s.Body.(type) {
	case *law.Note:
		writeBlocks(builder, body.Contents, level, opts)
	case nil:
	default:
		writeBlocks(builder, []law.Node{body}, level, opts)
	}
	for _, r := range s.PostRemarks {
		writeRemarks(builder, r, level, opts)
	}
}

func writeRemarks(builder *strings.Builder, r *law.Remarks, level int, opts Options) {
	label := ""
	if r.Label != nil {
		label = Runs(r.Label.Runs, opts)
	}
	writeLine(builder, opts.indent(level), label, sentences(r.Sentences, opts))
	for _, it := range r.Items {
		writeBlocks(builder, []law.Node{it}, level+1, opts)
	}
}

// writeTable writes one line per row with cells separated by tabs.
func writeTable(builder *strings.Builder, t *law.Table, indent string, opts Options) {
	for _, hr := range t.HeaderRows {
		cells := make([]string, len(hr.Columns))
		for i, c := range hr.Columns {
			cells[i] = Tagged(c, opts)
		}
		builder.WriteString(indent + strings.Join(cells, "\t") + "\n")
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row.Columns))
		for i, c := range row.Columns {
			cells[i] = cellText(c, opts)
		}
		builder.WriteString(indent + strings.Join(cells, "\t") + "\n")
	}
}

// cellText writes a cell on one line. Provisions, items and structs held in
// the cell are written unindented with their lines joined by a full-width
// space.
func cellText(c *law.TableColumn, opts Options) string {
	flat := opts
	flat.Indent = false

	var parts []string
	for _, n := range c.Contents {
		switch v := n.(type) {
		case *law.Sentence:
			parts = append(parts, Runs(v.Runs, opts))
		case *law.Column:
			parts = append(parts, sentences(v.Sentences, opts))
		default:
			var builder strings.Builder
			writeNodes(&builder, []law.Node{n}, 0, flat)
			for _, line := range strings.Split(builder.String(), "\n") {
				if line != "" {
					parts = append(parts, line)
				}
			}
		}
	}
	return strings.Join(parts, ideographicSpace)
}

func writeSupplProvision(builder *strings.Builder, sp *law.SupplProvision, opts Options) {
	label := Tagged(sp.Label, opts)
	if sp.AmendLawNum != "" {
		label += "（" + sp.AmendLawNum + "）"
	}
	if label != "" {
		builder.WriteString(opts.indent(3) + label + "\n")
	}
	for _, c := range sp.Chapters {
		writeUnit(builder, c, 0, opts)
	}
	for _, a := range sp.Articles {
		writeArticle(builder, a, opts)
	}
	for i, p := range sp.Paragraphs {
		writeParagraph(builder, p, i == 0, opts)
	}
	for _, ap := range sp.Appendices {
		writeAppendix(builder, ap, opts)
	}
}

func writeAppendix(builder *strings.Builder, ap *law.Appendix, opts Options) {
	heading := ""
	if ap.Title != nil {
		heading = Runs(ap.Title.Runs, opts)
	}
	heading += Tagged(ap.ArithFormulaNum, opts) + Tagged(ap.RelatedArticleNum, opts)
	if heading != "" {
		builder.WriteString(heading + "\n")
	}
	writeBlocks(builder, ap.Contents, 0, opts)
}
