package garagebook

import (
	"testing"
)

func TestBook_Search(t *testing.T) {
	b := testBook(t)

	tests := []struct {
		term string
		by   SearchBy
		want int
	}{
		{"smith", ByName, 1},
		{"SMITH", ByName, 1},
		{"o", ByName, 2}, // John and Jones
		{"", ByName, 0},  // empty term clears the list
		{"xy99", ByReg, 1},
		{"zz", ByReg, 1},
		{"07700900002", ByMobile, 1},
		{"0770", ByMobile, 2},
		{"nothing", ByName, 0},
	}
	for _, tc := range tests {
		got := b.Search(tc.term, tc.by)
		if len(got) != tc.want {
			t.Errorf("Search(%q, %s) = %d customers, want %d", tc.term, tc.by, len(got), tc.want)
		}
	}
}

func TestVehicleInvoices_YearFilter(t *testing.T) {
	b := testBook(t)
	for _, inv := range []Invoice{
		invoice("INV-1", "05/01/2024", 100, 0),
		invoice("INV-2", "20/06/2023", 50, 0),
		invoice("INV-3", "nonsense", 10, 0),
	} {
		if err := b.UpsertInvoice("cust-smith", "AB12 CDE", inv); err != nil {
			t.Fatalf("UpsertInvoice: %v", err)
		}
	}
	c, _ := b.FindByID("cust-smith")

	all, err := VehicleInvoices(c, "AB12 CDE", 0, DayFirst)
	if err != nil {
		t.Fatalf("VehicleInvoices: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered = %d invoices, want 3", len(all))
	}

	y24, err := VehicleInvoices(c, "ab12 cde", 2024, DayFirst)
	if err != nil {
		t.Fatalf("VehicleInvoices 2024: %v", err)
	}
	if len(y24) != 1 || y24[0].InvoiceID != "INV-1" {
		t.Errorf("2024 filter = %v", y24)
	}

	if _, err := VehicleInvoices(c, "NOPE", 0, DayFirst); err == nil {
		t.Error("unknown reg: want error")
	}

	years := InvoiceYears(c, DayFirst)
	if len(years) != 2 || years[0] != 2024 || years[1] != 2023 {
		t.Errorf("InvoiceYears = %v, want [2024 2023]", years)
	}
}

func TestParseSearchBy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want SearchBy
		err  bool
	}{
		{"name", ByName, false},
		{"Reg", ByReg, false},
		{"mobile", ByMobile, false},
		{"vin", ByName, true},
	} {
		got, err := ParseSearchBy(tc.in)
		if tc.err != (err != nil) || got != tc.want {
			t.Errorf("ParseSearchBy(%q) = %v, %v", tc.in, got, err)
		}
	}
}
