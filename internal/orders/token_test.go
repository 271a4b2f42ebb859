package orders

import "testing"

func TestLatest_LastStartedWins(t *testing.T) {
	var l Latest
	t1 := l.Begin()
	t2 := l.Begin()

	// The superseded run finishes first or last; either way it loses.
	if l.Accept(t1) {
		t.Fatalf("stale run must be discarded")
	}
	if !l.Accept(t2) {
		t.Fatalf("latest run must be accepted")
	}
	if l.Accept(t1) {
		t.Fatalf("stale run must stay discarded after a newer accept")
	}
}

func TestLatest_SingleRun(t *testing.T) {
	var l Latest
	tok := l.Begin()
	if !l.Accept(tok) {
		t.Fatalf("sole run must be accepted")
	}
	if l.Accept(tok) {
		t.Fatalf("double render of the same run must be refused")
	}
}
