package catalog

import "testing"

func TestBuildIndex_IdentifierVariants(t *testing.T) {
	idx := BuildIndex([]map[string]any{
		{"id": "7", "titulo": "Dune", "precio": float64(15)},
		{"idlibro": "12", "titulo": "La Sombra del Viento", "precio": 12.5},
		{"idarticulo": "31", "title": "Neuromancer", "price": "9.95"},
		{"isbn": "978-1", "titulo": "Fundación", "valor": float64(7)},
	})
	if idx.Stats.Indexed != 4 || idx.Stats.Skipped != 0 {
		t.Fatalf("stats: %+v", idx.Stats)
	}
	for id, title := range map[string]string{"7": "Dune", "12": "La Sombra del Viento", "31": "Neuromancer", "978-1": "Fundación"} {
		got, ok := idx.Title(id)
		if !ok || got != title {
			t.Fatalf("title for %s: got %q ok=%v", id, got, ok)
		}
	}
	if p, ok := idx.Price("31"); !ok || p != 9.95 {
		t.Fatalf("quoted price should coerce: got %v ok=%v", p, ok)
	}
}

func TestBuildIndex_SkipsEntriesWithoutIdentifier(t *testing.T) {
	idx := BuildIndex([]map[string]any{
		{"titulo": "Sin identificador", "precio": float64(4)},
		{"id": "1", "titulo": "Con identificador"},
	})
	if idx.Stats.Indexed != 1 || idx.Stats.Skipped != 1 {
		t.Fatalf("partial catalog tolerated, not an error: %+v", idx.Stats)
	}
}

func TestBuildIndex_CaseNormalizedKeys(t *testing.T) {
	idx := BuildIndex([]map[string]any{{"id": "AbC", "titulo": "X"}})
	if _, ok := idx.Title("aBc"); !ok {
		t.Fatalf("lookup must be case-insensitive")
	}
}

func TestBuildIndex_NonFinitePriceAbsent(t *testing.T) {
	idx := BuildIndex([]map[string]any{{"id": "1", "titulo": "X", "precio": "gratis"}})
	if _, ok := idx.Price("1"); ok {
		t.Fatalf("unparseable price must be absent, not zero")
	}
	if title, ok := idx.Title("1"); !ok || title != "X" {
		t.Fatalf("title still indexed: %q ok=%v", title, ok)
	}
}

func TestDecodeBooks(t *testing.T) {
	books := DecodeBooks([]map[string]any{
		{"id": "7", "titulo": "Dune", "autor": "Frank Herbert", "precio": float64(15), "stock": float64(3)},
		{"titulo": "sin id"},
	})
	if len(books) != 1 {
		t.Fatalf("entries without id dropped: got %d", len(books))
	}
	b := books[0]
	if b.ID != "7" || b.Title != "Dune" || b.Author != "Frank Herbert" {
		t.Fatalf("decode mismatch: %+v", b)
	}
	if b.Price == nil || *b.Price != 15 || !b.InStock() {
		t.Fatalf("price/stock mismatch: %+v", b)
	}
}
