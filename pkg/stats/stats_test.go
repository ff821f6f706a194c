package stats

import (
	"testing"

	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/parser"
)

const sampleLaw = `<Law Era="Reiwa" Year="3" Num="1" LawType="Act" Lang="ja">
<LawNum>令和三年法律第一号</LawNum>
<LawBody>
<LawTitle>見本法</LawTitle>
<MainProvision>
<Article Num="1"><ArticleTitle>第一条</ArticleTitle>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>この<Ruby>法律<Rt>ほうりつ</Rt></Ruby>は、見本である。</Sentence></ParagraphSentence>
<Item Num="1"><ItemTitle>一</ItemTitle><ItemSentence><Sentence>甲</Sentence></ItemSentence>
<Subitem1 Num="1"><Subitem1Title>イ</Subitem1Title><Subitem1Sentence><Sentence>乙</Sentence></Subitem1Sentence></Subitem1>
</Item>
</Paragraph>
</Article>
<Article Num="2"><ArticleTitle>第二条</ArticleTitle>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>Article 12 applies</Sentence></ParagraphSentence></Paragraph>
</Article>
</MainProvision>
</LawBody>
</Law>`

func TestCompute(t *testing.T) {
	l, err := parser.New().ParseBytes([]byte(sampleLaw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s := Compute(l)

	if s.Title != "見本法" || s.LawNum != "令和三年法律第一号" {
		t.Errorf("unexpected title or number: %q %q", s.Title, s.LawNum)
	}
	if s.Layout != "articles" {
		t.Errorf("expected articles layout, got %q", s.Layout)
	}

	counts := map[law.Kind]int{
		law.KindLaw:       1,
		law.KindArticle:   2,
		law.KindParagraph: 2,
		law.KindItem:      1,
		"Subitem1":        1,
		law.KindSentence:  4,
	}
	for kind, expected := range counts {
		if got := s.Count(kind); got != expected {
			t.Errorf("expected %d %s, got %d", expected, kind, got)
		}
	}
	if s.Sentences != 4 {
		t.Errorf("expected 4 sentences, got %d", s.Sentences)
	}
	if s.Rubies != 1 {
		t.Errorf("expected 1 ruby, got %d", s.Rubies)
	}
	// この法律は、見本である。 + 甲 + 乙 + "Article 12 applies"
	if s.Characters != 12+1+1+18 {
		t.Errorf("expected 32 characters, got %d", s.Characters)
	}
	if s.Numbers != 1 {
		t.Errorf("expected 1 number segment, got %d", s.Numbers)
	}
	if s.Ideographs == 0 {
		t.Error("expected ideographic segments")
	}
	if s.Words < s.Ideographs+s.Kana+s.Numbers+2 {
		t.Errorf("expected words to include the two latin words, got %+v", s)
	}
}

func TestComputeNil(t *testing.T) {
	s := Compute(nil)
	if s.Sentences != 0 || len(s.Elements) != 0 {
		t.Errorf("expected empty stats, got %+v", s)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		node     law.Node
		expected law.Kind
	}{
		{&law.Item{Level: 3}, "Subitem3"},
		{&law.List{Level: 1}, "Sublist1"},
		{&law.Struct{Kind: law.KindFigStruct}, law.KindFigStruct},
		{&law.Note{Kind: law.KindStyle}, law.KindStyle},
		{&law.Fragment{Tag: "ChapterTitle"}, "ChapterTitle"},
		{law.PlainText{Value: "x"}, ""},
	}
	for _, tt := range tests {
		if got := KindOf(tt.node); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
