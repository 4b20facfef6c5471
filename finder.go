package garagebook

import (
	"fmt"
	"sort"
	"strings"
)

// SearchBy selects which field the invoice finder matches against.
type SearchBy int

const (
	ByName SearchBy = iota
	ByReg
	ByMobile
)

func (by SearchBy) String() string {
	switch by {
	case ByName:
		return "name"
	case ByReg:
		return "reg"
	case ByMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// ParseSearchBy parses a finder field flag value.
func ParseSearchBy(s string) (SearchBy, error) {
	switch strings.ToLower(s) {
	case "name":
		return ByName, nil
	case "reg":
		return ByReg, nil
	case "mobile":
		return ByMobile, nil
	default:
		return ByName, fmt.Errorf("unknown search field %q (want name, reg or mobile)", s)
	}
}

// Search returns the customers matching the term on the chosen field,
// case-insensitive substring match. An empty term matches nothing, the way
// the finder clears its list when the input empties.
func (b *Book) Search(term string, by SearchBy) []*Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var found []*Customer
	for i := range b.customers {
		c := &b.customers[i]
		if matches(c, term, by) {
			found = append(found, c)
		}
	}
	return found
}

func matches(c *Customer, term string, by SearchBy) bool {
	switch by {
	case ByName:
		return strings.Contains(strings.ToLower(c.Name), term)
	case ByReg:
		for _, car := range c.Cars {
			if strings.Contains(strings.ToLower(car.Reg), term) {
				return true
			}
		}
	case ByMobile:
		for _, m := range c.Mobiles {
			if strings.Contains(strings.ToLower(m), term) {
				return true
			}
		}
	}
	return false
}

// InvoiceYears returns the distinct years of a customer's invoices, newest
// first, for the finder's year filter.
func InvoiceYears(c *Customer, order DateOrder) []int {
	seen := make(map[int]bool)
	var years []int
	for _, car := range c.Cars {
		for _, inv := range car.Invoices {
			d, err := ParseDisplayDate(inv.Date, order)
			if err != nil {
				continue
			}
			if !seen[d.Year()] {
				seen[d.Year()] = true
				years = append(years, d.Year())
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// VehicleInvoices returns the invoices of one vehicle, optionally restricted
// to a year (0 means all years). Invoices with unparsable dates only show in
// the unfiltered view.
func VehicleInvoices(c *Customer, reg string, year int, order DateOrder) ([]Invoice, error) {
	v := c.Vehicle(reg)
	if v == nil {
		return nil, fmt.Errorf("invoices for reg %q: %w", reg, ErrVehicleNotFound)
	}
	if year == 0 {
		return v.Invoices, nil
	}
	var invoices []Invoice
	for _, inv := range v.Invoices {
		d, err := ParseDisplayDate(inv.Date, order)
		if err != nil {
			continue
		}
		if d.Year() == year {
			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}
