package garagebook

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate checks struct tags on records before they reach the book. The UI
// used to be the only validation layer; the repository checks again so the
// stored collection only ever holds well-formed records.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Customer is one entry of the customer book. A customer exclusively owns its
// vehicles, and each vehicle its invoices; deleting a customer cascades.
type Customer struct {
	// ID is the surrogate identifier assigned at creation. Records imported
	// from older datasets may lack one; the store backfills it on load.
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name" validate:"required"`
	Address string    `json:"address,omitempty"`
	Mobiles []string  `json:"mobiles"`
	Cars    []Vehicle `json:"cars"`
}

// Vehicle is one of a customer's cars. Invoices stays nil until the first
// invoice is saved against it.
type Vehicle struct {
	Reg      string    `json:"reg" validate:"required"`
	Car      string    `json:"car"`
	Invoices []Invoice `json:"invoices,omitempty"`
}

// Invoice is a saved invoice for one vehicle.
type Invoice struct {
	InvoiceID string     `json:"invoiceId"`
	Date      string     `json:"date"`
	Mileage   string     `json:"mileage"`
	Reg       string     `json:"reg,omitempty"`
	TableRows []LineItem `json:"tableRows"`
	Totals    Totals     `json:"totals"`
}

// LineItem is one row of an invoice table. Amounts are kept as the strings
// the user committed; blank means "no amount". Parts is VAT-inclusive once
// stored.
type LineItem struct {
	Qty         string `json:"qty"`
	Description string `json:"description"`
	Parts       string `json:"parts"`
	Labor       string `json:"labor"`
}

// Totals are the computed invoice totals. FinalTotal is always exactly
// TotalLabour + TotalParts.
type Totals struct {
	TotalLabour Money `json:"totalLabour"`
	TotalParts  Money `json:"totalParts"`
	FinalTotal  Money `json:"finalTotal"`
}

// customerForm mirrors the five required fields of the new-customer form.
type customerForm struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
	Mobile  string `validate:"required"`
	Reg     string `validate:"required"`
	Car     string `validate:"required"`
}

// NewCustomer builds a customer from the new-customer form fields. All five
// fields are required.
func NewCustomer(name, address, mobile, reg, car string) (Customer, error) {
	form := customerForm{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Mobile:  strings.TrimSpace(mobile),
		Reg:     strings.TrimSpace(reg),
		Car:     strings.TrimSpace(car),
	}
	if err := validate.Struct(form); err != nil {
		return Customer{}, fmt.Errorf("customer form incomplete: %w", err)
	}
	return Customer{
		ID:      NewCustomerID(),
		Name:    form.Name,
		Address: form.Address,
		Mobiles: []string{form.Mobile},
		Cars:    []Vehicle{{Reg: form.Reg, Car: form.Car}},
	}, nil
}

// NewCustomerID returns a fresh surrogate customer id.
func NewCustomerID() string { return uuid.NewString() }

// NewInvoiceID returns a fresh invoice id, generated when a customer and
// vehicle are selected for a new invoice.
func NewInvoiceID() string { return "INV-" + uuid.NewString() }

// FirstMobile returns the customer's first mobile number, or "".
func (c *Customer) FirstMobile() string {
	if len(c.Mobiles) == 0 {
		return ""
	}
	return c.Mobiles[0]
}

// Vehicle returns the customer's vehicle with the given reg, or nil.
// Regs compare trimmed and case-insensitively.
func (c *Customer) Vehicle(reg string) *Vehicle {
	for i := range c.Cars {
		if SameReg(c.Cars[i].Reg, reg) {
			return &c.Cars[i]
		}
	}
	return nil
}

// InvoiceCount returns the number of invoices across all the customer's cars.
func (c *Customer) InvoiceCount() int {
	n := 0
	for i := range c.Cars {
		n += len(c.Cars[i].Invoices)
	}
	return n
}

// Invoice returns the vehicle's invoice with the given id, or nil.
func (v *Vehicle) Invoice(id string) *Invoice {
	for i := range v.Invoices {
		if v.Invoices[i].InvoiceID == id {
			return &v.Invoices[i]
		}
	}
	return nil
}

// SameReg reports whether two registration plates refer to the same vehicle.
func SameReg(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
