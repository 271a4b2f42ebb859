package catalog

import (
	"testing"

	"atlantis/internal/model"
)

func intp(n int) *int { return &n }

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Útopía":       "utopia",
		"GARCÍA":       "garcia",
		"  La Sombra ": "la sombra",
		"":             "",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilter(t *testing.T) {
	books := []model.Book{
		{ID: "1", Title: "La Sombra del Viento", Author: "Carlos Ruiz Zafón", Stock: intp(2)},
		{ID: "2", Title: "Dune", Author: "Frank Herbert", Stock: intp(0)},
		{ID: "3", Title: "Fundación", Author: "Isaac Asimov"},
	}

	got := Filter(books, "zafon", false)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("accent-insensitive author search: %+v", got)
	}

	got = Filter(books, "fundacion", false)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("accent-insensitive title search: %+v", got)
	}

	got = Filter(books, "", true)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("in-stock facet (missing stock counts as out): %+v", got)
	}

	got = Filter(books, "", false)
	if len(got) != 3 {
		t.Fatalf("empty query matches everything: %d", len(got))
	}
}
