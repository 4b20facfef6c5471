package garagebook

import "testing"

func TestServiceType(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"MOT", ServiceMOT},
		{"full service", ServiceFull},
		{"front brake pads", ServiceBrakes},
		{"oil and filter change", ServiceOil},
		{"two new tyres", ServiceTyres},
		{"tire rotation", ServiceTyres},
		{"replace exhaust", ServiceOther},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := ServiceType(tc.desc); got != tc.want {
			t.Errorf("ServiceType(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestCarBrand(t *testing.T) {
	tests := []struct {
		car  string
		want string
	}{
		{"Ford Focus", "ford"},
		{"BMW 320d", "bmw"},
		{"Land Rover Discovery", "land rover"},
		{"Range Rover Sport", "range rover"},
		{"Reliant Robin", ""},
	}
	for _, tc := range tests {
		if got := CarBrand(tc.car); got != tc.want {
			t.Errorf("CarBrand(%q) = %q, want %q", tc.car, got, tc.want)
		}
	}
}

func TestNewInsights(t *testing.T) {
	b := analyticsBook(t)
	in := NewInsights(b, DayFirst)

	if in.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", in.TotalCustomers)
	}
	// insights keep every invoice, parsable date or not
	if in.TotalInvoices != 4 {
		t.Errorf("TotalInvoices = %d, want 4", in.TotalInvoices)
	}
	if in.CarBrands["ford"] != 1 || in.CarBrands["bmw"] != 1 || in.CarBrands["toyota"] != 1 {
		t.Errorf("CarBrands = %v", in.CarBrands)
	}
	if len(in.TopCustomers) != 2 {
		t.Fatalf("TopCustomers = %d, want 2", len(in.TopCustomers))
	}
	// smith: 100+200 beats jones: 50+1998? jones has the garbage-dated 1998
	if in.TopCustomers[0].Name != "Mary Jones" {
		t.Errorf("top customer = %q (ranked by revenue)", in.TopCustomers[0].Name)
	}
	if len(in.RecentInvoices) != 4 {
		t.Fatalf("RecentInvoices = %d, want 4", len(in.RecentInvoices))
	}
	// newest parsable date first, unparsable last
	if in.RecentInvoices[0].Date != "12/03/2024" {
		t.Errorf("most recent = %q, want 12/03/2024", in.RecentInvoices[0].Date)
	}
	if in.RecentInvoices[3].Date != "garbage" {
		t.Errorf("unparsable date not last: %q", in.RecentInvoices[3].Date)
	}
}
