package garagebook

import (
	"os"
	"path/filepath"
	"testing"
)

const seedArray = `[
  {"name": "Seeded One", "mobiles": ["07700900100"], "cars": [{"reg": "SE01 AAA", "car": "Ford Ka"}]},
  {"name": "Seeded Two", "mobiles": ["07700900101"], "cars": [{"reg": "SE02 BBB", "car": "Mini Cooper"}]}
]`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootstrap_TopLevelArray(t *testing.T) {
	s := NewStore(t.TempDir())
	b := NewBook()
	n, err := s.Bootstrap(b, writeSeed(t, seedArray))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if n != 2 || b.Len() != 2 {
		t.Fatalf("seeded %d customers, book has %d, want 2", n, b.Len())
	}
	if b.Customers()[0].ID == "" {
		t.Error("seeded record without id")
	}
	// the seeded book was persisted
	loaded, err := s.LoadBook()
	if err != nil {
		t.Fatalf("LoadBook after seed: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("persisted book has %d customers, want 2", loaded.Len())
	}
}

func TestBootstrap_WrappedCustomers(t *testing.T) {
	s := NewStore(t.TempDir())
	b := NewBook()
	n, err := s.Bootstrap(b, writeSeed(t, `{"customers": `+seedArray+`}`))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if n != 2 {
		t.Errorf("seeded %d customers, want 2", n)
	}
}

func TestBootstrap_MissingSeedIsNotAnError(t *testing.T) {
	s := NewStore(t.TempDir())
	b := NewBook()
	n, err := s.Bootstrap(b, filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Bootstrap on missing seed: %v", err)
	}
	if n != 0 || b.Len() != 0 {
		t.Errorf("seeded %d, book %d, want empty", n, b.Len())
	}
}

func TestBootstrap_NonEmptyBookIsLeftAlone(t *testing.T) {
	s := NewStore(t.TempDir())
	b := testBook(t)
	before := b.Len()
	n, err := s.Bootstrap(b, writeSeed(t, seedArray))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if n != 0 || b.Len() != before {
		t.Errorf("bootstrap touched a non-empty book: n=%d len=%d", n, b.Len())
	}
}

func TestBootstrap_BadShape(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Bootstrap(NewBook(), writeSeed(t, `{"things": []}`)); err == nil {
		t.Error("Bootstrap with no customer array: want error")
	}
}
