package garagebook

import (
	"sort"
	"strings"
)

// this file computes the locally-aggregated views the chat assistant is
// allowed to see. Raw customer records never leave the process; the model
// only ever receives these rollups.

// Service type labels derived from line-item descriptions.
const (
	ServiceMOT    = "MOT"
	ServiceFull   = "Service"
	ServiceBrakes = "Brake Work"
	ServiceOil    = "Oil Change"
	ServiceTyres  = "Tyre Work"
	ServiceOther  = "Other Repairs"
)

// ServiceType classifies a line-item description by substring, or "" for a
// blank description.
func ServiceType(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	switch {
	case desc == "":
		return ""
	case strings.Contains(desc, "mot"):
		return ServiceMOT
	case strings.Contains(desc, "service"):
		return ServiceFull
	case strings.Contains(desc, "brake"):
		return ServiceBrakes
	case strings.Contains(desc, "oil"):
		return ServiceOil
	case strings.Contains(desc, "tyre"), strings.Contains(desc, "tire"):
		return ServiceTyres
	default:
		return ServiceOther
	}
}

// carBrands are the makes recognised in free-text vehicle descriptions.
var carBrands = []string{
	"bmw", "mercedes", "ford", "toyota", "honda", "nissan", "audi",
	"volkswagen", "vauxhall", "peugeot", "citroen", "skoda", "kia",
	"hyundai", "mazda", "mini", "lexus", "jaguar", "land rover", "range rover",
}

// CarBrand extracts a known make from a free-text car description, or "".
func CarBrand(car string) string {
	lower := strings.ToLower(car)
	// longer names first so "land rover" beats nothing and "range rover"
	// is not reported as "rover"
	for _, brand := range []string{"land rover", "range rover"} {
		if strings.Contains(lower, brand) {
			return brand
		}
	}
	for _, brand := range carBrands {
		if strings.Contains(lower, brand) {
			return brand
		}
	}
	return ""
}

// CustomerStat summarizes one customer's business.
type CustomerStat struct {
	Name         string
	CarCount     int
	InvoiceCount int
	Revenue      Money
}

// RecentInvoice is one flattened invoice for the "latest work" view.
type RecentInvoice struct {
	Customer string
	Car      string
	Reg      string
	Date     string
	Total    Money
}

// Insights is the aggregate view handed to the assistant.
type Insights struct {
	TotalCustomers int
	TotalInvoices  int
	TotalRevenue   Money
	AverageInvoice Money
	CarBrands      map[string]int
	ServiceTypes   map[string]int
	TopCustomers   []CustomerStat
	RecentInvoices []RecentInvoice
}

// NewInsights aggregates the whole book into the assistant's view. Top
// customers are ranked by revenue and capped, recent invoices sorted by
// date (unparsable dates sink to the end) and capped.
func NewInsights(b *Book, order DateOrder) *Insights {
	in := &Insights{
		TotalCustomers: b.Len(),
		CarBrands:      make(map[string]int),
		ServiceTypes:   make(map[string]int),
	}

	stats := make(map[string]*CustomerStat)
	var recent []struct {
		inv  RecentInvoice
		date Date
		ok   bool
	}

	for i := range b.Customers() {
		c := &b.Customers()[i]
		stat := &CustomerStat{Name: c.Name, CarCount: len(c.Cars)}
		stats[c.ID] = stat

		for j := range c.Cars {
			v := &c.Cars[j]
			if brand := CarBrand(v.Car); brand != "" {
				in.CarBrands[brand]++
			}
			for _, inv := range v.Invoices {
				in.TotalInvoices++
				in.TotalRevenue = in.TotalRevenue.Add(inv.Totals.FinalTotal)
				stat.InvoiceCount++
				stat.Revenue = stat.Revenue.Add(inv.Totals.FinalTotal)

				for _, row := range inv.TableRows {
					if t := ServiceType(row.Description); t != "" {
						in.ServiceTypes[t]++
					}
				}

				d, err := ParseDisplayDate(inv.Date, order)
				recent = append(recent, struct {
					inv  RecentInvoice
					date Date
					ok   bool
				}{
					inv: RecentInvoice{
						Customer: c.Name,
						Car:      v.Car,
						Reg:      v.Reg,
						Date:     inv.Date,
						Total:    inv.Totals.FinalTotal,
					},
					date: d,
					ok:   err == nil,
				})
			}
		}
	}

	if in.TotalInvoices > 0 {
		in.AverageInvoice = in.TotalRevenue.DivCount(in.TotalInvoices)
	}

	for _, stat := range stats {
		if stat.InvoiceCount > 0 {
			in.TopCustomers = append(in.TopCustomers, *stat)
		}
	}
	sort.Slice(in.TopCustomers, func(i, j int) bool {
		return in.TopCustomers[i].Revenue.GreaterThan(in.TopCustomers[j].Revenue)
	})
	if len(in.TopCustomers) > 5 {
		in.TopCustomers = in.TopCustomers[:5]
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].ok != recent[j].ok {
			return recent[i].ok
		}
		return recent[j].date.Before(recent[i].date)
	})
	for i, r := range recent {
		if i == 10 {
			break
		}
		in.RecentInvoices = append(in.RecentInvoices, r.inv)
	}
	return in
}
