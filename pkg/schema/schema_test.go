package schema

import (
	"testing"
)

func mustModel(t *testing.T, s *Schema, tag string) *Model {
	t.Helper()
	m, ok := s.Model(tag)
	if !ok {
		t.Fatalf("expected model for %s", tag)
	}
	return m
}

func TestNewSchemaVocabulary(t *testing.T) {
	s := New()

	for _, tag := range []string{
		"Law", "LawBody", "MainProvision", "Part", "Chapter", "Section", "Subsection", "Division",
		"Article", "Paragraph", "Item", "Subitem1", "Subitem10", "Subitem10Sentence", "List", "Sublist3",
		"Sentence", "Ruby", "Rt", "Line", "Br", "QuoteStruct", "ArithFormula", "TableStruct",
		"AppdxTable", "AppdxNoteTitle", "AppdxFormatTitle", "SupplProvision", "NewProvision", "TOCSupplProvision",
	} {
		if !s.Known(tag) {
			t.Errorf("expected %s to be known", tag)
		}
	}
	if s.Known("Subitem11") {
		t.Error("expected Subitem11 to be unknown")
	}
	if s.Known("Paragraphs") {
		t.Error("expected Paragraphs to be unknown")
	}

	// every child a model permits must itself be modeled
	for _, name := range s.Elements() {
		m := mustModel(t, s, name)
		for _, child := range m.AllowedChildren() {
			if !s.Known(child) {
				t.Errorf("%s permits unmodeled child %s", name, child)
			}
		}
	}
}

func TestSubitemChain(t *testing.T) {
	s := New()

	if !mustModel(t, s, "Subitem9").Allows("Subitem10") {
		t.Error("expected Subitem9 to allow Subitem10")
	}
	if mustModel(t, s, "Subitem10").Allows("Subitem11") {
		t.Error("expected Subitem10 to have no deeper subitems")
	}
	if mustModel(t, s, "Item").Allows("Subitem2") {
		t.Error("expected Item to skip no levels")
	}
}

func TestCheck(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		element  string
		tags     []string
		text     bool
		wantKind ViolationKind
		wantElem string
		wantIdx  int
	}{
		{
			name:    "valid article",
			element: "Article",
			tags:    []string{"ArticleCaption", "ArticleTitle", "Paragraph", "Paragraph"},
		},
		{
			name:     "article without paragraph",
			element:  "Article",
			tags:     []string{"ArticleTitle"},
			wantKind: Missing,
			wantElem: "Paragraph",
			wantIdx:  -1,
		},
		{
			name:     "article with two titles",
			element:  "Article",
			tags:     []string{"ArticleTitle", "ArticleTitle", "Paragraph"},
			wantKind: TooMany,
			wantElem: "ArticleTitle",
			wantIdx:  1,
		},
		{
			name:     "unknown child",
			element:  "Article",
			tags:     []string{"ArticleTitle", "Paragraph", "Footnote"},
			wantKind: Unknown,
			wantElem: "Footnote",
			wantIdx:  2,
		},
		{
			name:    "chapter with articles only",
			element: "Chapter",
			tags:    []string{"ChapterTitle", "Article", "Article", "Article"},
		},
		{
			name:     "chapter mixing sections and articles",
			element:  "Chapter",
			tags:     []string{"ChapterTitle", "Section", "Article"},
			wantKind: MixedAlternatives,
			wantElem: "Article",
			wantIdx:  2,
		},
		{
			name:     "empty main provision",
			element:  "MainProvision",
			wantKind: Missing,
			wantElem: "Part|Chapter|Section|Article|Paragraph",
			wantIdx:  -1,
		},
		{
			name:     "item sentence with two tables",
			element:  "ItemSentence",
			tags:     []string{"Table", "Table"},
			wantKind: TooMany,
			wantElem: "Table",
			wantIdx:  1,
		},
		{
			name:     "text in element only content",
			element:  "Paragraph",
			tags:     []string{"ParagraphNum", "ParagraphSentence"},
			text:     true,
			wantKind: StrayText,
			wantIdx:  -1,
		},
		{
			name:    "sentence with inline markup",
			element: "Sentence",
			tags:    []string{"Ruby", "Line", "Br", "Sup"},
			text:    true,
		},
		{
			name:     "block inside sentence",
			element:  "Sentence",
			tags:     []string{"Paragraph"},
			wantKind: Unknown,
			wantElem: "Paragraph",
			wantIdx:  0,
		},
		{
			name:     "ruby without gloss",
			element:  "Ruby",
			text:     true,
			wantKind: Missing,
			wantElem: "Rt",
			wantIdx:  -1,
		},
		{
			name:     "element in text only content",
			element:  "Rt",
			tags:     []string{"Sup"},
			wantKind: Unknown,
			wantElem: "Sup",
			wantIdx:  0,
		},
		{
			name:     "text in empty element",
			element:  "Br",
			text:     true,
			wantKind: StrayText,
			wantIdx:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustModel(t, s, tt.element).Check(tt.tags, tt.text)
			if tt.wantKind == 0 {
				if v != nil {
					t.Fatalf("expected no violation, got %v", v)
				}
				return
			}
			if v == nil {
				t.Fatalf("expected %s violation, got none", tt.wantKind)
			}
			if v.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, v.Kind)
			}
			if v.Element != tt.wantElem {
				t.Errorf("expected element %q, got %q", tt.wantElem, v.Element)
			}
			if v.Index != tt.wantIdx {
				t.Errorf("expected index %d, got %d", tt.wantIdx, v.Index)
			}
			if v.Message == "" || v.Expected == "" {
				t.Errorf("expected message and expectation, got %+v", v)
			}
		})
	}
}

func TestCheckAttributes(t *testing.T) {
	s := New()
	law := mustModel(t, s, "Law")

	lookup := func(m map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			v, ok := m[name]
			return v, ok
		}
	}

	valid := map[string]string{"Era": "Showa", "Year": "21", "Num": "0", "LawType": "Constitution", "Lang": "ja", "Extra": "ignored"}
	if v := law.CheckAttributes(lookup(valid)); v != nil {
		t.Fatalf("expected valid attributes, got %v", v)
	}

	tests := []struct {
		name     string
		change   map[string]string
		drop     string
		wantKind ViolationKind
		wantAttr string
	}{
		{name: "missing era", drop: "Era", wantKind: MissingAttribute, wantAttr: "Era"},
		{name: "bad law type", change: map[string]string{"LawType": "Decree"}, wantKind: BadAttribute, wantAttr: "LawType"},
		{name: "zero year", change: map[string]string{"Year": "0"}, wantKind: BadAttribute, wantAttr: "Year"},
		{name: "negative num", change: map[string]string{"Num": "-1"}, wantKind: BadAttribute, wantAttr: "Num"},
		{name: "bad month", change: map[string]string{"PromulgateMonth": "May"}, wantKind: BadAttribute, wantAttr: "PromulgateMonth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := make(map[string]string)
			for k, v := range valid {
				attrs[k] = v
			}
			for k, v := range tt.change {
				attrs[k] = v
			}
			delete(attrs, tt.drop)

			v := law.CheckAttributes(lookup(attrs))
			if v == nil {
				t.Fatal("expected violation")
			}
			if v.Kind != tt.wantKind || v.Element != tt.wantAttr {
				t.Errorf("expected %s on %s, got %s on %s", tt.wantKind, tt.wantAttr, v.Kind, v.Element)
			}
		})
	}

	col := mustModel(t, s, "Column")
	if v := col.CheckAttributes(lookup(map[string]string{"LineBreak": "yes"})); v == nil || v.Kind != BadAttribute {
		t.Errorf("expected bad boolean attribute, got %v", v)
	}
}

func TestViolationKindStructural(t *testing.T) {
	structural := map[ViolationKind]bool{
		Unknown:           false,
		StrayText:         false,
		BadAttribute:      false,
		Missing:           true,
		TooMany:           true,
		MixedAlternatives: true,
		MissingAttribute:  true,
	}
	for k, want := range structural {
		if got := k.Structural(); got != want {
			t.Errorf("%s: expected structural=%v, got %v", k, want, got)
		}
	}
}
