package session

import (
	"testing"

	"atlantis/internal/model"
)

func testCustomer() model.Customer {
	return model.Customer{ClientID: "c100", Nombre: "Ana", Apellido: "García", Email: "ana@example.com"}
}

func TestMemoryStore_Roundtrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Load(); err != nil || ok {
		t.Fatalf("fresh store should be empty: ok=%v err=%v", ok, err)
	}
	if err := s.Save(testCustomer()); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if c.ClientID != "c100" || c.Nombre != "Ana" {
		t.Fatalf("loaded %+v", c)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Load(); ok {
		t.Fatalf("cleared store should be empty")
	}
}

func TestPebbleStore_RoundtripAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewPebbleStore(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(testCustomer()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = NewPebbleStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	c, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load after reopen: ok=%v err=%v", ok, err)
	}
	if c.ClientID != "c100" {
		t.Fatalf("loaded %+v", c)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Load(); ok {
		t.Fatalf("cleared store should be empty")
	}
}
