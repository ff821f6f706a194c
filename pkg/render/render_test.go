package render

import (
	"strings"
	"testing"

	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/parser"
)

const sampleLaw = `<Law Era="Heisei" Year="5" Num="88" LawType="Act" Lang="ja">
<LawNum>平成五年法律第八十八号</LawNum>
<LawBody>
<LawTitle>行政手続法</LawTitle>
<MainProvision>
<Chapter Num="1"><ChapterTitle>第一章　総則</ChapterTitle>
<Article Num="1"><ArticleCaption>（目的等）</ArticleCaption><ArticleTitle>第一条</ArticleTitle>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>この<Ruby>法律<Rt>ほうりつ</Rt></Ruby>は、目的とする。</Sentence></ParagraphSentence></Paragraph>
<Paragraph Num="2"><ParagraphNum>２</ParagraphNum><ParagraphSentence><Sentence>前項の規定による。</Sentence></ParagraphSentence>
<Item Num="1"><ItemTitle>一</ItemTitle><ItemSentence><Sentence>申請</Sentence></ItemSentence></Item>
</Paragraph>
</Article>
</Chapter>
</MainProvision>
<SupplProvision><SupplProvisionLabel>附　則</SupplProvisionLabel>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>施行する。</Sentence></ParagraphSentence></Paragraph>
</SupplProvision>
</LawBody>
</Law>`

func parseSample(t *testing.T) *law.Law {
	t.Helper()
	l, err := parser.New().ParseBytes([]byte(sampleLaw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return l
}

func TestRunsRubyModes(t *testing.T) {
	runs := law.Runs{
		law.PlainText{Value: "この"},
		law.RubyText{Base: "法律", Glosses: []string{"ほうりつ"}},
		law.LineBreak{},
		law.EmphasizedText{Value: "は"},
	}

	tests := []struct {
		mode     RubyMode
		expected string
	}{
		{RubyBase, "この法律|は"},
		{RubyGloss, "このほうりつ|は"},
		{RubyBoth, "この法律（ほうりつ）|は"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Runs(runs, Options{Ruby: tt.mode, LineBreak: "|"})
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRubyWithoutGloss(t *testing.T) {
	got := Runs(law.Runs{law.RubyText{Base: "法"}}, Options{Ruby: RubyGloss})
	if got != "法" {
		t.Errorf("expected base when gloss is missing, got %q", got)
	}
}

func TestParseRubyMode(t *testing.T) {
	for _, s := range []string{"", "base", "gloss", "both"} {
		if _, err := ParseRubyMode(s); err != nil {
			t.Errorf("expected %q to be valid, got %v", s, err)
		}
	}
	if _, err := ParseRubyMode("furigana"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestArticleToPlaintext(t *testing.T) {
	l := parseSample(t)
	got := ArticleToPlaintext(l.FindArticle("1"), DefaultOptions())

	expected := "　（目的等）\n" +
		"第一条　この法律は、目的とする。\n" +
		"２　前項の規定による。\n" +
		"　一　申請\n"
	if got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestArticleWithoutIndent(t *testing.T) {
	l := parseSample(t)
	opts := DefaultOptions()
	opts.Indent = false
	got := ArticleToPlaintext(l.FindArticle("1"), opts)
	if !strings.Contains(got, "\n一　申請\n") {
		t.Errorf("expected unindented item, got:\n%s", got)
	}
}

func TestLawToPlaintext(t *testing.T) {
	l := parseSample(t)
	opts := DefaultOptions()
	opts.Ruby = RubyBoth
	got := LawToPlaintext(l, opts)

	for _, want := range []string{
		"行政手続法\n（平成五年法律第八十八号）\n",
		"　　第一章　総則\n",
		"第一条　この法律（ほうりつ）は、目的とする。\n",
		"　　　附　則\n施行する。\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestLawToPlaintextNil(t *testing.T) {
	if got := LawToPlaintext(nil, DefaultOptions()); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestBlockColumnsAndTable(t *testing.T) {
	cols := &law.SentenceBlock{Columns: []*law.Column{
		{Sentences: []*law.Sentence{{Runs: law.Runs{law.PlainText{Value: "甲"}}}}},
		{Sentences: []*law.Sentence{{Runs: law.Runs{law.PlainText{Value: "乙"}}}}},
	}}
	if got := Block(cols, DefaultOptions()); got != "甲　乙" {
		t.Errorf("expected 甲　乙, got %q", got)
	}

	tbl := &law.SentenceBlock{Table: &law.Table{Rows: []*law.TableRow{
		{Columns: []*law.TableColumn{
			{Contents: []law.Node{&law.Sentence{Runs: law.Runs{law.PlainText{Value: "a"}}}}},
			{Contents: []law.Node{&law.Sentence{Runs: law.Runs{law.PlainText{Value: "b"}}}}},
		}},
	}}}
	if got := Block(tbl, DefaultOptions()); got != "a\tb" {
		t.Errorf("expected a\\tb, got %q", got)
	}
}

func TestTOCToPlaintext(t *testing.T) {
	toc := &law.TOC{
		Label: &law.TaggedText{Runs: law.Runs{law.PlainText{Value: "目次"}}},
		Entries: []*law.TOCEntry{{
			Kind:         law.KindTOCChapter,
			Title:        &law.TaggedText{Runs: law.Runs{law.PlainText{Value: "第一章　総則"}}},
			ArticleRange: &law.TaggedText{Runs: law.Runs{law.PlainText{Value: "（第一条・第二条）"}}},
			Children: []*law.TOCEntry{{
				Kind:  law.KindTOCSection,
				Title: &law.TaggedText{Runs: law.Runs{law.PlainText{Value: "第一節　通則"}}},
			}},
		}},
	}
	expected := "目次\n　第一章　総則（第一条・第二条）\n　　第一節　通則\n"
	if got := TOCToPlaintext(toc, DefaultOptions()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTableCellProvisions(t *testing.T) {
	xml := `<Law Era="Heisei" Year="5" Num="88" LawType="Act" Lang="ja">
<LawNum>平成五年法律第八十八号</LawNum>
<LawBody><LawTitle>改正法</LawTitle><MainProvision>
<Article Num="1"><ArticleTitle>第一条</ArticleTitle>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>次のように改める。</Sentence></ParagraphSentence>
<TableStruct><Table><TableRow>
<TableColumn><Sentence>改正後</Sentence></TableColumn>
<TableColumn><Item Num="1"><ItemTitle>一</ItemTitle><ItemSentence><Sentence>新しい号の本文</Sentence></ItemSentence></Item></TableColumn>
</TableRow></Table></TableStruct>
</Paragraph></Article>
</MainProvision></LawBody></Law>`
	l, err := parser.New().ParseBytes([]byte(xml))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := "第一条　次のように改める。\n　改正後\t一　新しい号の本文\n"
	if got := ArticleToPlaintext(l.FindArticle("1"), DefaultOptions()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestStructNoteAndRemarks(t *testing.T) {
	text := func(s string) law.Runs { return law.Runs{law.PlainText{Value: s}} }
	sentence := func(s string) *law.SentenceBlock {
		return &law.SentenceBlock{Sentences: []*law.Sentence{{Runs: text(s)}}}
	}

	a := &law.Article{
		Title: &law.TaggedText{Runs: text("第一条")},
		Paragraphs: []*law.Paragraph{{
			Sentence: sentence("本文"),
			Blocks: []law.Node{&law.Struct{
				Kind:  law.KindNoteStruct,
				Title: &law.Heading{TaggedText: law.TaggedText{Runs: text("様式")}},
				Body: &law.Note{Kind: law.KindNote, Contents: []law.Node{
					&law.Sentence{Runs: text("注記")},
					&law.List{Sentence: sentence("甲")},
					&law.ArithFormula{Figs: []*law.Fig{{Src: "f.jpg"}}},
				}},
				PostRemarks: []*law.Remarks{{
					Label:     &law.RemarksLabel{TaggedText: law.TaggedText{Runs: text("備考")}},
					Sentences: []*law.Sentence{{Runs: text("説明")}},
					Items: []*law.Item{{
						Title:    &law.TaggedText{Runs: text("一")},
						Sentence: sentence("号"),
						Blocks: []law.Node{&law.Item{
							Level:    1,
							Title:    &law.TaggedText{Runs: text("イ")},
							Sentence: sentence("細目"),
						}},
					}},
				}},
			}},
		}},
	}

	expected := "第一条　本文\n" +
		"　様式\n" +
		"　注記\n" +
		"　甲\n" +
		"　[f.jpg]\n" +
		"　備考　説明\n" +
		"　　一　号\n" +
		"　　　イ　細目\n"
	if got := ArticleToPlaintext(a, DefaultOptions()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
