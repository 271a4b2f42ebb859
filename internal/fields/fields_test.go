package fields

import "testing"

func TestLookup_PriorityAndExactBeatsCaseInsensitive(t *testing.T) {
	rec := map[string]any{"ordernumber": "A", "orderNumber": "B"}
	v, ok := Lookup(rec, []string{"ordernumber", "orderNumber"})
	if !ok || v != "A" {
		t.Fatalf("first alias should win: got %v ok=%v", v, ok)
	}

	// Only a case variant present: falls back to case-insensitive match.
	rec = map[string]any{"ORDERNO": "X"}
	v, ok = Lookup(rec, []string{"orderno"})
	if !ok || v != "X" {
		t.Fatalf("case-insensitive fallback failed: got %v ok=%v", v, ok)
	}
}

func TestLookup_SkipsNil(t *testing.T) {
	rec := map[string]any{"estado": nil, "status": "enviado"}
	v, ok := Lookup(rec, []string{"estado", "status"})
	if !ok || v != "enviado" {
		t.Fatalf("nil value should be skipped: got %v ok=%v", v, ok)
	}
	if _, ok := Lookup(map[string]any{"estado": nil}, []string{"estado"}); ok {
		t.Fatalf("all-nil record should not match")
	}
}

func TestString_Numbers(t *testing.T) {
	if got := String(float64(7)); got != "7" {
		t.Fatalf("integer-valued float: got %q", got)
	}
	if got := String(9.95); got != "9.95" {
		t.Fatalf("fractional float: got %q", got)
	}
	if got := String("  Dune  "); got != "Dune" {
		t.Fatalf("string trim: got %q", got)
	}
}

func TestNumber_Coercion(t *testing.T) {
	if n, ok := Number("15.5"); !ok || n != 15.5 {
		t.Fatalf("numeric string: got %v ok=%v", n, ok)
	}
	if _, ok := Number("free"); ok {
		t.Fatalf("non-numeric string should not coerce")
	}
	if _, ok := Number(nil); ok {
		t.Fatalf("nil should not coerce")
	}
}
