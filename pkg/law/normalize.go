package law

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeText folds s for matching: NFKC composition, full-width ASCII to
// half-width and half-width katakana to full-width, and collapsed runs of
// white space. It is meant for search keys, not for display.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = width.Fold.String(s)
	return strings.Join(strings.Fields(s), " ")
}
