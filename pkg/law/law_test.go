package law

import (
	"reflect"
	"testing"
)

func plain(s string) *TaggedText {
	return &TaggedText{Runs: Runs{PlainText{Value: s}}}
}

func sentence(s string) *Sentence {
	return &Sentence{Runs: Runs{PlainText{Value: s}}}
}

func article(num, title string, sentences ...string) *Article {
	block := &SentenceBlock{}
	for _, s := range sentences {
		block.Sentences = append(block.Sentences, sentence(s))
	}
	return &Article{
		Num:        num,
		Title:      plain(title),
		Paragraphs: []*Paragraph{{Num: "1", ParagraphNum: &TaggedText{}, Sentence: block}},
	}
}

func testLaw() *Law {
	return &Law{
		Era:    EraShowa,
		Year:   21,
		Type:   TypeConstitution,
		LawNum: "昭和二十一年憲法",
		Body: &LawBody{
			Title: &LawTitle{TaggedText: *plain("日本国憲法")},
			MainProvision: &MainProvision{
				Chapters: []*Chapter{
					{
						UnitHeader: UnitHeader{Num: "1", Title: plain("第一章　天皇")},
						Articles:   []*Article{article("1", "第一条", "天皇は、日本国の象徴である。")},
					},
					{
						UnitHeader: UnitHeader{Num: "2", Title: plain("第二章　戦争の放棄")},
						Sections: []*Section{{
							UnitHeader: UnitHeader{Num: "1", Title: plain("第一節")},
							Articles:   []*Article{article("9", "第九条", "日本国民は、正義と秩序を基調とする国際平和を誠実に希求する。")},
						}},
					},
					{
						UnitHeader: UnitHeader{Num: "3", Title: plain("第三章　国民の権利及び義務")},
						Articles: []*Article{
							article("10", "第十条", "日本国民たる要件は、法律でこれを定める。"),
							article("11", "第十一条", "国民は、すべての基本的人権の享有を妨げられない。", "この憲法が国民に保障する基本的人権は、侵すことのできない永久の権利として、現在及び将来の国民に与へられる。"),
						},
					},
				},
			},
		},
	}
}

func TestIndexedAccessors(t *testing.T) {
	l := testLaw()
	mp := l.Body.MainProvision

	if got := mp.Chapter(2).Article(1).Paragraph(0).Sentence.Sentence(1).Text(); got != "この憲法が国民に保障する基本的人権は、侵すことのできない永久の権利として、現在及び将来の国民に与へられる。" {
		t.Errorf("unexpected second sentence: %q", got)
	}
	if mp.Chapter(3) != nil {
		t.Error("expected nil for chapter index out of range")
	}
	if mp.Chapter(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if mp.Chapter(0).Article(0).Paragraph(0).Sentence.Sentence(5) != nil {
		t.Error("expected nil for sentence index out of range")
	}

	var nilBlock *SentenceBlock
	if nilBlock.Sentence(0) != nil || nilBlock.Text() != "" {
		t.Error("expected nil-safe sentence block")
	}
}

func TestLayout(t *testing.T) {
	l := testLaw()
	mp := l.Body.MainProvision

	if mp.Layout() != LayoutChapters {
		t.Errorf("expected chapters layout, got %s", mp.Layout())
	}
	if got := mp.Chapter(0).Layout(); got != LayoutArticles {
		t.Errorf("expected articles layout, got %s", got)
	}
	if got := mp.Chapter(1).Layout(); got != LayoutSections {
		t.Errorf("expected sections layout, got %s", got)
	}
	if got := (&Division{}).Layout(); got != LayoutEmpty {
		t.Errorf("expected empty layout, got %s", got)
	}
}

func TestArticlesAndFind(t *testing.T) {
	l := testLaw()

	articles := l.Articles()
	if len(articles) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(articles))
	}
	nums := []string{articles[0].Num, articles[1].Num, articles[2].Num, articles[3].Num}
	if !reflect.DeepEqual(nums, []string{"1", "9", "10", "11"}) {
		t.Errorf("unexpected article order: %v", nums)
	}

	if a := l.FindArticle("9"); a == nil || a.Title.Text() != "第九条" {
		t.Errorf("expected to find article 9, got %+v", a)
	}
	if l.FindArticle("99") != nil {
		t.Error("expected nil for unknown article")
	}
	if l.Title() != "日本国憲法" {
		t.Errorf("expected title, got %q", l.Title())
	}

	var empty *Law
	if empty.Title() != "" || empty.Articles() != nil || empty.FindArticle("1") != nil {
		t.Error("expected nil-safe law accessors")
	}
}

func TestRunsText(t *testing.T) {
	quote := &QuoteStruct{Contents: []Node{
		PlainText{Value: "「"},
		sentence("前条"),
		&Fig{Src: "./pict/1.jpg"},
		PlainText{Value: "」"},
	}}
	s := &Sentence{Runs: Runs{
		PlainText{Value: "この"},
		RubyText{Base: "憲法", Glosses: []string{"けんぽう"}},
		EmphasizedText{Value: "は", Marks: []Mark{{Kind: MarkUnderline, Style: LineSolid}}},
		LineBreak{},
		QuoteRun{Quote: quote},
		FormulaRun{Formula: &ArithFormula{}},
		PlainText{Value: "。"},
	}}

	if got := s.Text(); got != "この憲法は「前条」。" {
		t.Errorf("unexpected sentence text: %q", got)
	}
}

func TestSentenceBlockColumns(t *testing.T) {
	b := &SentenceBlock{Columns: []*Column{
		{Num: "1", Sentences: []*Sentence{sentence("一")}},
		{Num: "2", Sentences: []*Sentence{sentence("二"), sentence("三")}},
	}}
	if got := b.Text(); got != "一　二三" {
		t.Errorf("unexpected column text: %q", got)
	}
}

func TestSelect(t *testing.T) {
	p := &Paragraph{Blocks: []Node{
		&Item{Num: "1"},
		&Struct{Kind: KindTableStruct},
		&Item{Num: "2"},
		&List{},
	}}

	items := p.Items()
	if len(items) != 2 || items[0].Num != "1" || items[1].Num != "2" {
		t.Errorf("unexpected items: %+v", items)
	}
	if p.Item(1).Num != "2" || p.Item(2) != nil {
		t.Error("unexpected item accessor result")
	}
	if len(p.Structs()) != 1 || len(p.Lists()) != 1 || len(p.Classes()) != 0 {
		t.Error("unexpected block selection")
	}
}

func TestItemTag(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Item"},
		{1, "Subitem1"},
		{10, "Subitem10"},
	}
	for _, tt := range tests {
		if got := (&Item{Level: tt.level}).Tag(); got != tt.want {
			t.Errorf("level %d: expected %s, got %s", tt.level, tt.want, got)
		}
	}
	if got := (&List{Level: 2}).Tag(); got != "Sublist2" {
		t.Errorf("expected Sublist2, got %s", got)
	}
}

func TestWalkOrder(t *testing.T) {
	l := testLaw()

	var kinds []string
	Walk(l, func(n Node) bool {
		switch v := n.(type) {
		case *Chapter:
			kinds = append(kinds, "Chapter"+v.Num)
		case *Section:
			kinds = append(kinds, "Section"+v.Num)
		case *Article:
			kinds = append(kinds, "Article"+v.Num)
			return false
		}
		return true
	})

	want := []string{"Chapter1", "Article1", "Chapter2", "Section1", "Article9", "Chapter3", "Article10", "Article11"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("expected %v, got %v", want, kinds)
	}
}

func TestTexts(t *testing.T) {
	a := article("11", "第十一条", "国民は、", "妨げられない。")
	a.Caption = &Caption{TaggedText: *plain("（基本的人権）")}
	a.Paragraph(0).Blocks = []Node{
		&Item{Num: "1", Title: plain("一"), Sentence: &SentenceBlock{Sentences: []*Sentence{sentence("第一号")}}},
	}

	got := Texts(a)
	want := []string{"（基本的人権）", "第十一条", "国民は、", "妨げられない。", "一", "第一号"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if Texts(nil) != nil {
		t.Error("expected no texts for nil node")
	}
}

func TestTextsLaw(t *testing.T) {
	got := Texts(testLaw())
	if len(got) == 0 || got[0] != "日本国憲法" {
		t.Fatalf("expected law title first, got %v", got)
	}
	if got[1] != "第一章　天皇" {
		t.Errorf("expected chapter title second, got %q", got[1])
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"第１条", "第1条"},
		{"ＡＢＣ　ｄｅｆ", "ABC def"},
		{"ｶﾀｶﾅ", "カタカナ"},
		{"  a \n b  ", "a b"},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
