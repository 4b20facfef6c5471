package garagebook

import (
	"errors"
	"testing"
)

func activeSession(t *testing.T, b *Book) *Session {
	t.Helper()
	s := NewSession(DefaultSettings())
	c, ok := b.FindByID("cust-smith")
	if !ok {
		t.Fatal("test customer missing")
	}
	if err := s.Select(c, "AB12 CDE"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	return s
}

func TestSession_Unselected_RejectsEverything(t *testing.T) {
	s := NewSession(DefaultSettings())
	b := testBook(t)

	if _, err := s.AddRow(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("AddRow: want ErrNoSelection, got %v", err)
	}
	if _, err := s.AddMOTRow(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("AddMOTRow: want ErrNoSelection, got %v", err)
	}
	if err := s.DeleteRow(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("DeleteRow: want ErrNoSelection, got %v", err)
	}
	if err := s.Save(b); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Save: want ErrNoSelection, got %v", err)
	}
	if _, err := s.Invoice(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Invoice: want ErrNoSelection, got %v", err)
	}
}

func TestSession_TotalsInvariant(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)

	edits := []struct {
		parts, labour string
	}{
		{"50", "30"},
		{"", "45.5"},
		{"10.25", ""},
		{"", ""},
	}
	for range edits {
		if _, err := s.AddRow(); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}
	for i, e := range edits {
		if err := s.SetParts(i, e.parts); err != nil {
			t.Fatalf("SetParts(%d, %q): %v", i, e.parts, err)
		}
		if err := s.SetLabour(i, e.labour); err != nil {
			t.Fatalf("SetLabour(%d, %q): %v", i, e.labour, err)
		}
		// the invariant holds after every single edit
		tot := s.Totals()
		if !tot.FinalTotal.Equal(tot.TotalLabour.Add(tot.TotalParts)) {
			t.Fatalf("after edit %d: final %s != labour %s + parts %s",
				i, tot.FinalTotal, tot.TotalLabour, tot.TotalParts)
		}
	}

	tot := s.Totals()
	// parts: (50 + 10.25) * 1.2 ; labour: 30 + 45.5
	if want := M(72.30); !tot.TotalParts.Equal(want) {
		t.Errorf("TotalParts = %s, want %s", tot.TotalParts, want)
	}
	if want := M(75.50); !tot.TotalLabour.Equal(want) {
		t.Errorf("TotalLabour = %s, want %s", tot.TotalLabour, want)
	}
}

func TestSession_NonNumericAmounts(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)
	if _, err := s.AddRow(); err != nil {
		t.Fatalf("AddRow: %v", err)
	}

	if err := s.SetParts(0, "fifty"); err == nil {
		t.Error("SetParts(fifty): want error")
	}
	if err := s.SetLabour(0, "12..3"); err == nil {
		t.Error("SetLabour(12..3): want error")
	}
	// a rejected edit leaves the totals untouched
	if tot := s.Totals(); !tot.FinalTotal.IsZero() {
		t.Errorf("totals after rejected edits = %s, want zero", tot.FinalTotal)
	}

	// blank contributes exactly zero
	if err := s.SetParts(0, ""); err != nil {
		t.Fatalf("SetParts blank: %v", err)
	}
	if tot := s.Totals(); !tot.TotalParts.IsZero() {
		t.Errorf("blank parts contributes %s, want zero", tot.TotalParts)
	}
}

func TestSession_OneShotVAT(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)
	if _, err := s.AddRow(); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := s.SetDescription(0, "brake pads"); err != nil {
		t.Fatalf("SetDescription: %v", err)
	}

	// a raw 50 committed with vat 1.2 is stored and displayed as 60.00
	if err := s.SetParts(0, "50"); err != nil {
		t.Fatalf("SetParts: %v", err)
	}
	if got := s.Rows()[0].Parts(); !got.Equal(M(60)) {
		t.Fatalf("committed parts = %s, want %s", got, M(60))
	}
	if err := s.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// reloading the saved invoice must not re-multiply
	c, _ := b.FindByID("cust-smith")
	reload := NewSession(DefaultSettings())
	if err := reload.LoadInvoice(c, "AB12 CDE", s.InvoiceID()); err != nil {
		t.Fatalf("LoadInvoice: %v", err)
	}
	if got := reload.Rows()[0].Parts(); !got.Equal(M(60)) {
		t.Errorf("reloaded parts = %s, want %s (not re-multiplied)", got, M(60))
	}
	if tot := reload.Totals(); !tot.TotalParts.Equal(M(60)) {
		t.Errorf("reloaded TotalParts = %s, want %s", tot.TotalParts, M(60))
	}
}

func TestSession_InstanceSettingsOverride(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)

	if err := s.UseSettings(Settings{VATPercent: 1.0, MOTAmount: 45.50}); err != nil {
		t.Fatalf("UseSettings: %v", err)
	}
	if _, err := s.AddRow(); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := s.SetParts(0, "50"); err != nil {
		t.Fatalf("SetParts: %v", err)
	}
	if got := s.Rows()[0].Parts(); !got.Equal(M(50)) {
		t.Errorf("parts with instance vat 1.0 = %s, want %s", got, M(50))
	}

	// a fresh session falls back to the global scope
	fresh := NewSession(DefaultSettings())
	if got := fresh.Settings().VATPercent; got != 1.2 {
		t.Errorf("fresh session vat = %v, want 1.2", got)
	}

	// non-positive overrides are rejected and leave settings in force
	if err := s.UseSettings(Settings{VATPercent: 0, MOTAmount: 45.50}); err == nil {
		t.Error("UseSettings with zero vat: want error")
	}
	if got := s.Settings().VATPercent; got != 1.0 {
		t.Errorf("settings after rejected override = %v, want 1.0", got)
	}
}

func TestSession_SaveIsUpsert(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)
	if _, err := s.AddRow(); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := s.SetLabour(0, "100"); err != nil {
		t.Fatalf("SetLabour: %v", err)
	}
	if err := s.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// the session stays active after saving
	if !s.Active() {
		t.Fatal("session not active after save")
	}

	// edit and re-save: still exactly one invoice for that id
	if err := s.SetLabour(0, "120"); err != nil {
		t.Fatalf("SetLabour: %v", err)
	}
	if err := s.Save(b); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	c, _ := b.FindByID("cust-smith")
	v := c.Vehicle("AB12 CDE")
	if len(v.Invoices) != 1 {
		t.Fatalf("invoices = %d, want 1 (upsert, not duplicate)", len(v.Invoices))
	}
	if got := v.Invoices[0].Totals.FinalTotal; !got.Equal(M(120)) {
		t.Errorf("saved total = %s, want %s", got, M(120))
	}
}

func TestSession_SelectClearsAndRegeneratesID(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)
	first := s.InvoiceID()
	if _, err := s.AddRow(); err != nil {
		t.Fatalf("AddRow: %v", err)
	}

	c, _ := b.FindByID("cust-smith")
	if err := s.Select(c, "XY99 ZZZ"); err != nil {
		t.Fatalf("re-Select: %v", err)
	}
	if len(s.Rows()) != 0 {
		t.Error("rows survived re-selection")
	}
	if s.InvoiceID() == first || s.InvoiceID() == "" {
		t.Errorf("invoice id not regenerated: %q", s.InvoiceID())
	}
}

func TestSession_MOTRow(t *testing.T) {
	b := testBook(t)
	s := activeSession(t, b)
	i, err := s.AddMOTRow()
	if err != nil {
		t.Fatalf("AddMOTRow: %v", err)
	}
	row := s.Rows()[i]
	if row.Description != "MOT" {
		t.Errorf("description = %q, want MOT", row.Description)
	}
	// the MOT charge is a fixed amount, no VAT applied to it
	if !row.Parts().Equal(M(45.50)) {
		t.Errorf("MOT parts = %s, want %s", row.Parts(), M(45.50))
	}
}

func TestSession_SelectUnknownReg(t *testing.T) {
	b := testBook(t)
	s := NewSession(DefaultSettings())
	c, _ := b.FindByID("cust-smith")
	if err := s.Select(c, "NOPE"); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("want ErrVehicleNotFound, got %v", err)
	}
	if s.Active() {
		t.Error("session active after failed select")
	}
}
