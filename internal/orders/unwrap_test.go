package orders

import "testing"

func TestExtractSequence_Shapes(t *testing.T) {
	one := []any{map[string]any{"ordernumber": 1}}

	cases := []struct {
		name    string
		payload any
	}{
		{"top-level array", one},
		{"orders key", map[string]any{"orders": one}},
		{"data.orders", map[string]any{"data": map[string]any{"orders": one}}},
		{"data array", map[string]any{"data": one}},
		{"first array field", map[string]any{"total": float64(1), "results": one}},
	}
	for _, c := range cases {
		seq, ok := extractSequence(c.payload)
		if !ok || len(seq) != 1 {
			t.Fatalf("%s: not unwrapped: ok=%v len=%d", c.name, ok, len(seq))
		}
	}
}

func TestExtractSequence_NoSequence(t *testing.T) {
	for _, payload := range []any{nil, "x", map[string]any{"total": float64(3)}, float64(7)} {
		if _, ok := extractSequence(payload); ok {
			t.Fatalf("payload %v should not unwrap", payload)
		}
	}
}

func TestExtractSequence_DeterministicScan(t *testing.T) {
	payload := map[string]any{
		"zzz": []any{map[string]any{"id": "z"}},
		"aaa": []any{map[string]any{"id": "a"}},
	}
	for i := 0; i < 20; i++ {
		seq, ok := extractSequence(payload)
		if !ok {
			t.Fatalf("should unwrap")
		}
		if id := seq[0].(map[string]any)["id"]; id != "a" {
			t.Fatalf("scan must take keys in sorted order, got %v", id)
		}
	}
}

func TestToRawOrders_NonRecordElements(t *testing.T) {
	raws := toRawOrders([]any{map[string]any{"id": 1}, "junk", nil})
	if len(raws) != 3 {
		t.Fatalf("all elements kept: got %d", len(raws))
	}
	if raws[1] != nil || raws[2] != nil {
		t.Fatalf("non-records should come through nil")
	}
}
