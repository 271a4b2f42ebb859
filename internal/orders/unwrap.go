package orders

import (
	"sort"

	"atlantis/internal/model"
)

// extractSequence locates the order sequence inside an orders payload.
// The upstream response shape drifted across revisions, so several
// nestings are accepted, tried in order:
//
//	the payload itself | orders | data.orders | data | first array-valued field
//
// Keys are scanned in sorted order so the last resort is deterministic.
// Returns false when no sequence exists anywhere in the payload.
func extractSequence(payload any) ([]any, bool) {
	if seq, ok := payload.([]any); ok {
		return seq, true
	}
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	if seq, ok := m["orders"].([]any); ok {
		return seq, true
	}
	if data, ok := m["data"].(map[string]any); ok {
		if seq, ok := data["orders"].([]any); ok {
			return seq, true
		}
	}
	if seq, ok := m["data"].([]any); ok {
		return seq, true
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if seq, ok := m[k].([]any); ok {
			return seq, true
		}
	}
	return nil, false
}

// toRawOrders converts payload elements into RawOrder maps. Elements
// that are not structured records come through as nil so the normalizer
// can still emit a placeholder row for them.
func toRawOrders(seq []any) []model.RawOrder {
	out := make([]model.RawOrder, 0, len(seq))
	for _, e := range seq {
		if m, ok := e.(map[string]any); ok {
			out = append(out, model.RawOrder(m))
		} else {
			out = append(out, nil)
		}
	}
	return out
}
