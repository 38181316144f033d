package statement

import (
	"testing"

	"banalysis/internal/core"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()

	if _, ok := s.Current(); ok {
		t.Fatal("new store should be empty")
	}

	first := Statement{ID: "one", Transactions: []core.Transaction{{Type: "Payment"}}}
	s.Replace(first)

	got, ok := s.Current()
	if !ok || got.ID != "one" {
		t.Fatalf("got %+v, %v; want statement one", got, ok)
	}

	// A new upload fully replaces the previous statement.
	s.Replace(Statement{ID: "two"})
	got, ok = s.Current()
	if !ok || got.ID != "two" {
		t.Fatalf("got %+v; want statement two", got)
	}
	if len(got.Transactions) != 0 {
		t.Fatal("replacement must not inherit prior transactions")
	}

	s.Clear()
	if _, ok := s.Current(); ok {
		t.Fatal("store should be empty after Clear")
	}
}
