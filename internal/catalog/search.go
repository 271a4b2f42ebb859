package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"atlantis/internal/model"
)

// Fold lowercases a string and strips diacritics (NFD decompose, drop
// combining marks), so "Útopía" matches a search for "utopia". Catalog
// titles are largely Spanish; accent-sensitive search misses too much.
func Fold(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Filter returns the books matching a folded substring search over title
// and author, optionally restricted to books in stock. An empty query
// matches everything.
func Filter(books []model.Book, query string, inStockOnly bool) []model.Book {
	q := Fold(query)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if inStockOnly && !b.InStock() {
			continue
		}
		if q != "" && !strings.Contains(Fold(b.Title), q) && !strings.Contains(Fold(b.Author), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}
