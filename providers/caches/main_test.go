package caches

import "testing"

func TestLastFixStoreRoundTrip(t *testing.T) {
	store, err := NewLastFixStore(4)
	if err != nil {
		t.Fatalf("NewLastFixStore: %v", err)
	}

	if _, found := store.Last("bus-1"); found {
		t.Fatal("empty store should not know bus-1")
	}

	fix := Fix{Lat: -36.8485, Lon: 174.7633, Timestamp: 1700000000}
	store.Record("bus-1", fix)

	got, found := store.Last("bus-1")
	if !found {
		t.Fatal("bus-1 should be tracked after Record")
	}
	if got != fix {
		t.Fatalf("Last = %+v, want %+v", got, fix)
	}
}

func TestLastFixStoreEvictsOldest(t *testing.T) {
	store, err := NewLastFixStore(2)
	if err != nil {
		t.Fatalf("NewLastFixStore: %v", err)
	}

	store.Record("bus-1", Fix{Timestamp: 1})
	store.Record("bus-2", Fix{Timestamp: 2})
	store.Record("bus-3", Fix{Timestamp: 3})

	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
	if _, found := store.Last("bus-1"); found {
		t.Error("bus-1 should have been evicted")
	}
	if _, found := store.Last("bus-3"); !found {
		t.Error("bus-3 should still be tracked")
	}
}
