// Package law provides the typed document tree for statutes written in the
// national legal-document markup (constitutions, acts, cabinet orders,
// ministerial ordinances and rules).
//
// A tree is produced in one call by the parser package and is never modified
// afterwards, so a *Law may be shared between goroutines without locking.
// Callers must treat every field as read-only.
//
// Ordering follows the source document. Slice positions are zero-based
// positions in document order, not the printed numerals: Chapters[2] is the
// third Chapter element present, whatever its Num attribute says.
//
// Optional elements that the schema allows to be absent are nil pointers
// (or empty slices for repeated elements). Because parsing either builds the
// whole tree or fails, a nil field always means "legally absent".
package law
