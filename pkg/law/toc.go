package law

// TOC is the table of contents printed before the main provision.
type TOC struct {
	Label         *TaggedText
	PreambleLabel *TaggedText
	// Entries are the top-level TOCPart, TOCChapter, TOCSection or
	// TOCArticle entries; one kind per table of contents.
	Entries          []*TOCEntry
	SupplProvision   *TOCEntry
	AppdxTableLabels []*TaggedText
}

// TOCEntry is one line of the table of contents. Every TOC element kind
// shares this shape; Kind tells them apart.
type TOCEntry struct {
	Kind   Kind
	Num    string
	Delete bool
	// Title is the unit title, or the label of a TOCSupplProvision.
	Title        *TaggedText
	ArticleRange *TaggedText
	// Caption is only set for TOCArticle.
	Caption  *Caption
	Children []*TOCEntry
}

// Child returns the nested entry at position i, or nil.
func (e *TOCEntry) Child(i int) *TOCEntry { return at(e.Children, i) }
