package garagebook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadBook_AbsentInitializesEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	b, err := s.LoadBook()
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("fresh book has %d customers", b.Len())
	}
	// the empty default was persisted
	if _, err := os.Stat(filepath.Join(s.Path(), customersFile)); err != nil {
		t.Errorf("empty book not persisted: %v", err)
	}
}

func TestStore_SaveBook_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	b := testBook(t)
	if err := b.UpsertInvoice("cust-smith", "AB12 CDE", invoice("INV-1", "05/01/2024", 100, 20)); err != nil {
		t.Fatalf("UpsertInvoice: %v", err)
	}
	if err := s.SaveBook(b); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}

	loaded, err := s.LoadBook()
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if loaded.Len() != b.Len() {
		t.Fatalf("loaded %d customers, want %d", loaded.Len(), b.Len())
	}
	c, ok := loaded.FindByID("cust-smith")
	if !ok {
		t.Fatal("customer lost in round trip")
	}
	inv := c.Vehicle("AB12 CDE").Invoice("INV-1")
	if inv == nil {
		t.Fatal("invoice lost in round trip")
	}
	if !inv.Totals.FinalTotal.Equal(M(120)) {
		t.Errorf("round-tripped total = %s, want %s", inv.Totals.FinalTotal, M(120))
	}
}

func TestStore_LoadBook_CorruptStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, customersFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir)
	b, err := s.LoadBook()
	if err != nil {
		t.Fatalf("LoadBook on corrupt store: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("corrupt store produced %d customers", b.Len())
	}
	// the corrupt document was kept aside, not destroyed
	if _, err := os.Stat(filepath.Join(dir, customersFile+".corrupt")); err != nil {
		t.Errorf("corrupt document not preserved: %v", err)
	}
}

func TestStore_LoadBook_BackfillsIDs(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{"name":"Old Record","mobiles":["07700900009"],"cars":[{"reg":"OLD 1","car":"Rover 25"}]}]`
	if err := os.WriteFile(filepath.Join(dir, customersFile), []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := NewStore(dir).LoadBook()
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("customers = %d, want 1", b.Len())
	}
	if b.Customers()[0].ID == "" {
		t.Error("legacy record not assigned an id")
	}
	// legacy identity lookup still works
	if _, ok := b.FindByIdentity("Old Record", "07700900009"); !ok {
		t.Error("legacy identity lookup failed")
	}
}

func TestStore_Settings(t *testing.T) {
	s := NewStore(t.TempDir())

	// nothing saved yet: hard defaults
	settings, err := s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.VATPercent != DefaultVATPercent || settings.MOTAmount != DefaultMOTAmount {
		t.Errorf("defaults = %+v", settings)
	}

	if err := s.SaveSettings(Settings{VATPercent: 1.25, MOTAmount: 50}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	settings, err = s.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.VATPercent != 1.25 || settings.MOTAmount != 50 {
		t.Errorf("loaded = %+v", settings)
	}

	// non-positive values never reach the store
	if err := s.SaveSettings(Settings{VATPercent: -1, MOTAmount: 50}); err == nil {
		t.Error("SaveSettings with negative vat: want error")
	}
}

func TestStore_BusinessInfo(t *testing.T) {
	s := NewStore(t.TempDir())
	info, err := s.LoadBusinessInfo()
	if err != nil {
		t.Fatalf("LoadBusinessInfo: %v", err)
	}
	if info != (BusinessInfo{}) {
		t.Errorf("unsaved business info = %+v, want zero", info)
	}

	want := BusinessInfo{InvoiceTitle: "AK Motors", Mobile: "07700900000", Address: "1 Works Lane"}
	if err := s.SaveBusinessInfo(want); err != nil {
		t.Fatalf("SaveBusinessInfo: %v", err)
	}
	info, err = s.LoadBusinessInfo()
	if err != nil {
		t.Fatalf("LoadBusinessInfo: %v", err)
	}
	if info != want {
		t.Errorf("round trip = %+v, want %+v", info, want)
	}
}
