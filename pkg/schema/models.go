package schema

import "strconv"

// Element names shared by several models.
var (
	// SentenceInline is the inline markup permitted in a Sentence.
	SentenceInline = []string{"Line", "QuoteStruct", "ArithFormula", "Ruby", "Sup", "Sub", "Br"}
	// TitleInline is the inline markup permitted in titles and labels.
	TitleInline = []string{"Line", "Ruby", "Sup", "Sub", "Br"}
	// LineInline is the inline markup permitted inside a Line.
	LineInline = []string{"QuoteStruct", "ArithFormula", "Ruby", "Sup", "Sub", "Br"}
)

var (
	eras        = []string{"Meiji", "Taisho", "Showa", "Heisei", "Reiwa"}
	lawTypes    = []string{"Constitution", "Act", "CabinetOrder", "ImperialOrder", "MinisterialOrdinance", "Rule", "Misc"}
	langs       = []string{"ja", "en"}
	modes       = []string{"vertical", "horizontal"}
	lineStyles  = []string{"solid", "dotted", "double", "none"}
	aligns      = []string{"left", "center", "right", "justify"}
	valigns     = []string{"top", "middle", "bottom"}
	functions   = []string{"main", "proviso"}
	supplTypes  = []string{"New", "Amend"}
	indentTypes = append([]string{"Paragraph", "Item"}, subitemTags(1)...)
)

const maxSubitem = 10

func one(tag string) Particle  { return Particle{Element: tag, Occurs: One} }
func opt(tag string) Particle  { return Particle{Element: tag, Occurs: Optional} }
func many(tag string) Particle { return Particle{Element: tag, Occurs: Many} }
func some(tag string) Particle { return Particle{Element: tag, Occurs: OneOrMore} }

func manyOf(tags ...string) []Particle {
	out := make([]Particle, len(tags))
	for i, t := range tags {
		out[i] = many(t)
	}
	return out
}

func anyOf(alts ...Particle) Choice  { return Choice{Alternatives: alts} }
func oneOf(alts ...Particle) Choice  { return Choice{Alternatives: alts, Required: true} }
func choices(cs ...Choice) []Choice { return cs }

func str(name string) Attribute     { return Attribute{Name: name, Type: String} }
func reqStr(name string) Attribute  { return Attribute{Name: name, Type: String, Required: true} }
func flag(name string) Attribute    { return Attribute{Name: name, Type: Bool} }
func posInt(name string) Attribute  { return Attribute{Name: name, Type: PositiveInt} }
func natural(name string) Attribute { return Attribute{Name: name, Type: NonNegativeInt} }
func enum(name string, values []string) Attribute {
	return Attribute{Name: name, Type: Enum, Values: values}
}
func required(a Attribute) Attribute {
	a.Required = true
	return a
}

func attrs(as ...Attribute) []Attribute { return as }

// subitemTags returns Subitem{from}..Subitem10.
func subitemTags(from int) []string {
	var out []string
	for i := from; i <= maxSubitem; i++ {
		out = append(out, "Subitem"+strconv.Itoa(i))
	}
	return out
}

func elements(tag string, ps ...Particle) *Model {
	return &Model{Element: tag, Content: ElementOnly, Particles: ps}
}

func title(tag string, as ...Attribute) *Model {
	return &Model{Element: tag, Content: Mixed, Particles: manyOf(TitleInline...), Attributes: as}
}

func textOnly(tag string) *Model {
	return &Model{Element: tag, Content: TextOnly}
}

// sentences is the content of the *Sentence wrappers: sentences, columns or
// a single table, never mixed.
func sentences(tag string, table bool) *Model {
	alts := []Particle{some("Sentence"), some("Column")}
	if table {
		alts = append(alts, one("Table"))
	}
	return &Model{Element: tag, Content: ElementOnly, Choices: choices(oneOf(alts...))}
}

func unitAttrs() []Attribute {
	return attrs(reqStr("Num"), flag("Delete"), flag("Hide"))
}

func structModel(tag, titleTag, body string) *Model {
	return elements(tag, opt(titleTag), many("Remarks"), one(body))
}

func appendix(tag, titleTag string, ps ...Particle) *Model {
	m := elements(tag, append([]Particle{opt(titleTag), opt("RelatedArticleNum")}, ps...)...)
	m.Attributes = attrs(str("Num"))
	return m
}

func models() []*Model {
	ms := []*Model{
		{
			Element:   "Law",
			Content:   ElementOnly,
			Particles: []Particle{one("LawNum"), one("LawBody")},
			Attributes: attrs(
				required(enum("Era", eras)),
				required(posInt("Year")),
				required(natural("Num")),
				required(enum("LawType", lawTypes)),
				required(enum("Lang", langs)),
				posInt("PromulgateMonth"),
				posInt("PromulgateDay"),
			),
		},
		textOnly("LawNum"),
		{
			Element: "LawBody",
			Content: ElementOnly,
			Particles: append([]Particle{
				opt("LawTitle"), many("EnactStatement"), opt("TOC"), opt("Preamble"), one("MainProvision"),
			}, manyOf("SupplProvision", "AppdxTable", "AppdxNote", "AppdxStyle", "Appdx", "AppdxFig", "AppdxFormat")...),
			Attributes: attrs(str("Subject")),
		},
		title("LawTitle", str("Kana"), str("Abbrev"), str("AbbrevKana")),
		title("EnactStatement"),

		// Table of contents.
		{
			Element:   "TOC",
			Content:   ElementOnly,
			Particles: []Particle{opt("TOCLabel"), opt("TOCPreambleLabel"), opt("TOCSupplProvision"), many("TOCAppdxTableLabel")},
			Choices:   choices(anyOf(many("TOCPart"), many("TOCChapter"), many("TOCSection"), many("TOCArticle"))),
		},
		title("TOCLabel"),
		title("TOCPreambleLabel"),
		title("TOCAppdxTableLabel"),
		{
			Element:    "TOCPart",
			Content:    ElementOnly,
			Particles:  []Particle{opt("PartTitle"), opt("ArticleRange"), many("TOCChapter")},
			Attributes: attrs(reqStr("Num"), flag("Delete")),
		},
		{
			Element:    "TOCChapter",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ChapterTitle"), opt("ArticleRange"), many("TOCSection")},
			Attributes: attrs(reqStr("Num"), flag("Delete")),
		},
		{
			Element:    "TOCSection",
			Content:    ElementOnly,
			Particles:  []Particle{opt("SectionTitle"), opt("ArticleRange")},
			Choices:    choices(anyOf(many("TOCSubsection"), many("TOCDivision"))),
			Attributes: attrs(reqStr("Num"), flag("Delete")),
		},
		{
			Element:    "TOCSubsection",
			Content:    ElementOnly,
			Particles:  []Particle{opt("SubsectionTitle"), opt("ArticleRange"), many("TOCDivision")},
			Attributes: attrs(reqStr("Num"), flag("Delete")),
		},
		{
			Element:    "TOCDivision",
			Content:    ElementOnly,
			Particles:  []Particle{opt("DivisionTitle"), opt("ArticleRange")},
			Attributes: attrs(str("Num"), flag("Delete")),
		},
		{
			Element:    "TOCArticle",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ArticleTitle"), opt("ArticleCaption")},
			Attributes: attrs(reqStr("Num"), flag("Delete")),
		},
		{
			Element:   "TOCSupplProvision",
			Content:   ElementOnly,
			Particles: []Particle{opt("SupplProvisionLabel"), opt("ArticleRange")},
			Choices:   choices(anyOf(many("TOCArticle"), many("TOCChapter"))),
		},
		title("ArticleRange"),

		// Main provision and structural units.
		elements("Preamble", some("Paragraph")),
		{
			Element:    "MainProvision",
			Content:    ElementOnly,
			Choices:    choices(oneOf(some("Part"), some("Chapter"), some("Section"), some("Article"), some("Paragraph"))),
			Attributes: attrs(flag("Extract")),
		},
		{
			Element:    "Part",
			Content:    ElementOnly,
			Particles:  []Particle{opt("PartTitle")},
			Choices:    choices(anyOf(some("Chapter"), some("Article"))),
			Attributes: unitAttrs(),
		},
		{
			Element:    "Chapter",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ChapterTitle")},
			Choices:    choices(anyOf(some("Section"), some("Article"))),
			Attributes: unitAttrs(),
		},
		{
			Element:    "Section",
			Content:    ElementOnly,
			Particles:  []Particle{opt("SectionTitle")},
			Choices:    choices(anyOf(some("Subsection"), some("Division"), some("Article"))),
			Attributes: unitAttrs(),
		},
		{
			Element:    "Subsection",
			Content:    ElementOnly,
			Particles:  []Particle{opt("SubsectionTitle")},
			Choices:    choices(anyOf(some("Division"), some("Article"))),
			Attributes: unitAttrs(),
		},
		{
			Element:    "Division",
			Content:    ElementOnly,
			Particles:  []Particle{opt("DivisionTitle"), many("Article")},
			Attributes: unitAttrs(),
		},
		title("PartTitle"),
		title("ChapterTitle"),
		title("SectionTitle"),
		title("SubsectionTitle"),
		title("DivisionTitle"),

		// Articles and their content.
		{
			Element:    "Article",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ArticleCaption"), one("ArticleTitle"), some("Paragraph"), opt("SupplNote")},
			Attributes: unitAttrs(),
		},
		title("ArticleCaption", flag("CommonCaption")),
		title("ArticleTitle"),
		title("SupplNote"),
		{
			Element: "Paragraph",
			Content: ElementOnly,
			Particles: append([]Particle{opt("ParagraphCaption"), one("ParagraphNum"), one("ParagraphSentence")},
				manyOf("AmendProvision", "Class", "TableStruct", "FigStruct", "StyleStruct", "Item", "List")...),
			Attributes: attrs(required(natural("Num")), flag("OldStyle"), flag("OldNum"), flag("Hide")),
		},
		title("ParagraphCaption", flag("CommonCaption")),
		title("ParagraphNum"),
		elements("ParagraphSentence", some("Sentence")),
		{
			Element:    "Class",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ClassTitle"), one("ClassSentence"), many("Item")},
			Attributes: attrs(reqStr("Num")),
		},
		title("ClassTitle"),
		sentences("ClassSentence", true),
		{
			Element: "Sentence",
			Content: Mixed,
			Particles: manyOf(SentenceInline...),
			Attributes: attrs(
				natural("Num"),
				enum("Function", functions),
				enum("Indent", indentTypes),
				enum("WritingMode", modes),
			),
		},
		{
			Element:    "Column",
			Content:    ElementOnly,
			Particles:  []Particle{some("Sentence")},
			Attributes: attrs(natural("Num"), flag("LineBreak"), enum("Align", aligns)),
		},

		// Inline markup.
		{
			Element:    "Line",
			Content:    Mixed,
			Particles:  manyOf(LineInline...),
			Attributes: attrs(enum("Style", lineStyles)),
		},
		{Element: "Ruby", Content: Mixed, Particles: []Particle{some("Rt")}},
		textOnly("Rt"),
		textOnly("Sup"),
		textOnly("Sub"),
		{Element: "Br", Content: Empty},
		{
			Element:   "QuoteStruct",
			Content:   Mixed,
			Particles: manyOf("Sentence", "Item", "Paragraph", "List", "Fig", "FigStruct", "Table", "TableStruct", "AppdxTable", "ArithFormula", "TOCSection"),
		},
		{
			Element: "ArithFormula",
			Content: ElementOnly,
			// Only figures are modeled; the other kinds are legal but
			// rejected as unsupported by the parser.
			Particles:  manyOf("Fig", "Sentence", "Table", "TableStruct", "FigStruct", "Item", "List", "Paragraph"),
			Attributes: attrs(natural("Num")),
		},
		{Element: "Fig", Content: Empty, Attributes: attrs(reqStr("src"))},

		// Lists.
		elements("List", one("ListSentence"), many("Sublist1")),
		elements("Sublist1", one("Sublist1Sentence"), many("Sublist2")),
		elements("Sublist2", one("Sublist2Sentence"), many("Sublist3")),
		elements("Sublist3", one("Sublist3Sentence")),
		sentences("ListSentence", false),
		sentences("Sublist1Sentence", false),
		sentences("Sublist2Sentence", false),
		sentences("Sublist3Sentence", false),

		// Amendments.
		elements("AmendProvision", opt("AmendProvisionSentence"), many("NewProvision")),
		elements("AmendProvisionSentence", some("Sentence")),
		{
			Element: "NewProvision",
			Content: ElementOnly,
			Particles: manyOf(append([]string{
				"LawTitle", "Preamble", "TOC", "Part", "PartTitle", "Chapter", "ChapterTitle",
				"Section", "SectionTitle", "Subsection", "SubsectionTitle", "Division", "DivisionTitle",
				"Article", "SupplNote", "Paragraph", "Item"},
				append(subitemTags(1),
					"List", "Sentence", "AmendProvision",
					"AppdxTable", "AppdxNote", "AppdxStyle", "Appdx", "AppdxFig", "AppdxFormat",
					"SupplProvisionAppdxStyle", "SupplProvisionAppdxTable", "SupplProvisionAppdx",
					"TableStruct", "TableRow", "TableColumn", "FigStruct", "NoteStruct", "StyleStruct",
					"FormatStruct", "Remarks", "LawBody")...)...),
		},

		// Supplementary provisions.
		{
			Element:    "SupplProvision",
			Content:    ElementOnly,
			Particles:  []Particle{opt("SupplProvisionLabel"), many("SupplProvisionAppdxTable"), many("SupplProvisionAppdxStyle"), many("SupplProvisionAppdx")},
			Choices:    choices(anyOf(some("Chapter"), some("Article"), some("Paragraph"))),
			Attributes: attrs(enum("Type", supplTypes), str("AmendLawNum"), flag("Extract")),
		},
		title("SupplProvisionLabel"),
		appendix("SupplProvisionAppdxTable", "SupplProvisionAppdxTableTitle", many("TableStruct")),
		appendix("SupplProvisionAppdxStyle", "SupplProvisionAppdxStyleTitle", many("StyleStruct")),
		appendix("SupplProvisionAppdx", "ArithFormulaNum", many("ArithFormula")),
		title("SupplProvisionAppdxTableTitle", enum("WritingMode", modes)),
		title("SupplProvisionAppdxStyleTitle", enum("WritingMode", modes)),

		// Appendices.
		appendix("AppdxTable", "AppdxTableTitle", many("TableStruct"), many("Item"), many("Remarks")),
		appendix("AppdxNote", "AppdxNoteTitle", many("NoteStruct"), many("FigStruct"), many("TableStruct"), many("Remarks")),
		appendix("AppdxStyle", "AppdxStyleTitle", many("StyleStruct"), many("Remarks")),
		appendix("Appdx", "ArithFormulaNum", many("ArithFormula"), many("Remarks")),
		appendix("AppdxFig", "AppdxFigTitle", many("FigStruct"), many("TableStruct")),
		appendix("AppdxFormat", "AppdxFormatTitle", many("FormatStruct"), many("Remarks")),
		title("AppdxTableTitle", enum("WritingMode", modes)),
		title("AppdxNoteTitle", enum("WritingMode", modes)),
		title("AppdxStyleTitle", enum("WritingMode", modes)),
		title("AppdxFigTitle", enum("WritingMode", modes)),
		title("AppdxFormatTitle", enum("WritingMode", modes)),
		title("RelatedArticleNum"),
		title("ArithFormulaNum"),

		// Tables, figures and their wrappers.
		{
			Element:    "Table",
			Content:    ElementOnly,
			Particles:  []Particle{many("TableHeaderRow"), some("TableRow")},
			Attributes: attrs(enum("WritingMode", modes)),
		},
		elements("TableHeaderRow", some("TableHeaderColumn")),
		title("TableHeaderColumn"),
		elements("TableRow", some("TableColumn")),
		{
			Element: "TableColumn",
			Content: ElementOnly,
			Particles: append(manyOf(append([]string{
				"Part", "Chapter", "Section", "Subsection", "Division", "Article", "Paragraph", "Item"},
				append(subitemTags(1), "FigStruct", "Sentence", "Column")...)...),
				opt("Remarks")),
			Attributes: attrs(
				enum("BorderTop", lineStyles),
				enum("BorderBottom", lineStyles),
				enum("BorderLeft", lineStyles),
				enum("BorderRight", lineStyles),
				posInt("rowspan"),
				posInt("colspan"),
				enum("Align", aligns),
				enum("Valign", valigns),
			),
		},
		structModel("TableStruct", "TableStructTitle", "Table"),
		structModel("FigStruct", "FigStructTitle", "Fig"),
		structModel("NoteStruct", "NoteStructTitle", "Note"),
		structModel("StyleStruct", "StyleStructTitle", "Style"),
		structModel("FormatStruct", "FormatStructTitle", "Format"),
		title("TableStructTitle", enum("WritingMode", modes)),
		title("FigStructTitle"),
		title("NoteStructTitle"),
		title("StyleStructTitle"),
		title("FormatStructTitle"),
		{
			Element:   "Remarks",
			Content:   ElementOnly,
			Particles: []Particle{opt("RemarksLabel"), many("Sentence"), many("Item")},
		},
		title("RemarksLabel", flag("LineBreak")),
		elements("Note", manyOf("Sentence", "Fig", "Item", "ArithFormula", "List")...),
		elements("Style", many("Fig")),
		elements("Format", many("Fig")),

		// Items.
		{
			Element:    "Item",
			Content:    ElementOnly,
			Particles:  []Particle{opt("ItemTitle"), one("ItemSentence"), many("Subitem1"), many("TableStruct"), many("FigStruct"), many("StyleStruct"), many("List")},
			Attributes: unitAttrs(),
		},
		title("ItemTitle"),
		sentences("ItemSentence", true),
	}

	for level := 1; level <= maxSubitem; level++ {
		tag := "Subitem" + strconv.Itoa(level)
		ps := []Particle{opt(tag + "Title"), one(tag + "Sentence")}
		if level < maxSubitem {
			ps = append(ps, many("Subitem"+strconv.Itoa(level+1)))
		}
		ps = append(ps, manyOf("TableStruct", "FigStruct", "StyleStruct", "List")...)
		ms = append(ms,
			&Model{Element: tag, Content: ElementOnly, Particles: ps, Attributes: unitAttrs()},
			title(tag+"Title"),
			sentences(tag+"Sentence", true),
		)
	}
	return ms
}
