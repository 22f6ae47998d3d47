package models

// Page is a zero-based row offset plus a page length. A nil *Page means the
// caller asked for the entire result set.
type Page struct {
	Offset int
	Size   int
}
