package catalog

import (
	"strings"

	"atlantis/internal/fields"
	"atlantis/internal/model"
)

// Field alias lists for catalog entries, in priority order. Upstream
// revisions disagreed on identifier naming, so all observed variants are
// recognized.
var (
	idAliases     = []string{"id", "idlibro", "idArticulo", "idarticulo", "isbn", "sku", "codigo"}
	titleAliases  = []string{"titulo", "title"}
	authorAliases = []string{"autor", "author"}
	priceAliases  = []string{"precio", "price", "valor", "amount"}
	stockAliases  = []string{"stock", "existencias"}
)

// Index maps case-normalized article identifiers to titles and prices.
// It is built as a unit and shared read-only; rebuilding replaces both
// maps atomically.
type Index struct {
	Titles map[string]string
	Prices map[string]float64
	Stats  IndexStats
}

// IndexStats summarizes one index build.
type IndexStats struct {
	TotalEntries int
	Indexed      int
	Skipped      int
}

// Key normalizes an article identifier for index lookup. Identifier
// comparison is case-insensitive.
func Key(articleID string) string {
	return strings.ToLower(strings.TrimSpace(articleID))
}

// BuildIndex constructs an Index from raw catalog entries. Entries
// without a resolvable identifier are skipped; a partial catalog is not
// an error. Title and price are indexed independently, so an entry may
// contribute one without the other.
func BuildIndex(entries []map[string]any) *Index {
	idx := &Index{
		Titles: make(map[string]string, len(entries)),
		Prices: make(map[string]float64, len(entries)),
	}
	idx.Stats.TotalEntries = len(entries)

	for _, entry := range entries {
		rawID, ok := fields.Lookup(entry, idAliases)
		if !ok {
			idx.Stats.Skipped++
			continue
		}
		key := Key(fields.String(rawID))
		if key == "" {
			idx.Stats.Skipped++
			continue
		}
		idx.Stats.Indexed++

		if v, ok := fields.Lookup(entry, titleAliases); ok {
			if title := fields.String(v); title != "" {
				if _, exists := idx.Titles[key]; !exists {
					idx.Titles[key] = title
				}
			}
		}
		if v, ok := fields.Lookup(entry, priceAliases); ok {
			if price, ok := fields.Number(v); ok {
				if _, exists := idx.Prices[key]; !exists {
					idx.Prices[key] = price
				}
			}
		}
	}
	return idx
}

// Title resolves an article id to its catalog title.
func (ix *Index) Title(articleID string) (string, bool) {
	t, ok := ix.Titles[Key(articleID)]
	return t, ok
}

// Price resolves an article id to its catalog price.
func (ix *Index) Price(articleID string) (float64, bool) {
	p, ok := ix.Prices[Key(articleID)]
	return p, ok
}

// DecodeBooks converts raw catalog entries into Book values for listing.
// Entries without any resolvable identifier are dropped, mirroring the
// index build.
func DecodeBooks(entries []map[string]any) []model.Book {
	books := make([]model.Book, 0, len(entries))
	for _, entry := range entries {
		rawID, ok := fields.Lookup(entry, idAliases)
		if !ok {
			continue
		}
		b := model.Book{ID: fields.String(rawID)}
		if b.ID == "" {
			continue
		}
		if v, ok := fields.Lookup(entry, titleAliases); ok {
			b.Title = fields.String(v)
		}
		if v, ok := fields.Lookup(entry, authorAliases); ok {
			b.Author = fields.String(v)
		}
		if v, ok := fields.Lookup(entry, priceAliases); ok {
			if p, ok := fields.Number(v); ok {
				b.Price = &p
			}
		}
		if v, ok := fields.Lookup(entry, stockAliases); ok {
			if s, ok := fields.Number(v); ok {
				n := int(s)
				b.Stock = &n
			}
		}
		books = append(books, b)
	}
	return books
}
