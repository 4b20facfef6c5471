package garagebook

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrCustomerNotFound is returned when a lookup matches no customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrVehicleNotFound is returned when an invoice targets a reg that
	// matches none of the customer's cars. Recoverable: the caller keeps
	// the unsaved invoice and may fix the reg.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrInvoiceNotFound is returned when deleting an unknown invoice id.
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// Book is the in-memory customer collection, the single source of truth for
// a session and the only writer back to the store.
type Book struct {
	customers []Customer
}

// NewBook creates an empty customer book.
func NewBook() *Book {
	return &Book{customers: make([]Customer, 0)}
}

// Len returns the number of customers in the book.
func (b *Book) Len() int { return len(b.customers) }

// Customers returns the customers in book order.
func (b *Book) Customers() []Customer { return b.customers }

// Add validates and appends a customer, assigning an id if it has none.
func (b *Book) Add(c Customer) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid customer record: %w", err)
	}
	if c.ID == "" {
		c.ID = NewCustomerID()
	}
	b.customers = append(b.customers, c)
	return nil
}

// FindByID returns the customer with the given surrogate id.
func (b *Book) FindByID(id string) (*Customer, bool) {
	for i := range b.customers {
		if b.customers[i].ID == id {
			return &b.customers[i], true
		}
	}
	return nil, false
}

// FindByIdentity returns the first customer matching the legacy identity pair
// (name, first mobile). Duplicate identities are not resolved: first match
// wins, which is why new code should prefer FindByID.
func (b *Book) FindByIdentity(name, firstMobile string) (*Customer, bool) {
	for i := range b.customers {
		c := &b.customers[i]
		if c.Name == name && c.FirstMobile() == firstMobile {
			return c, true
		}
	}
	return nil, false
}

// UpsertInvoice saves an invoice against the vehicle with the given reg of
// the customer with the given id: replaced when the invoice id already
// exists, appended otherwise. The invoices sequence is created lazily.
func (b *Book) UpsertInvoice(customerID, reg string, inv Invoice) error {
	c, ok := b.FindByID(customerID)
	if !ok {
		return fmt.Errorf("upsert invoice: %w", ErrCustomerNotFound)
	}
	v := c.Vehicle(reg)
	if v == nil {
		return fmt.Errorf("upsert invoice for reg %q: %w", reg, ErrVehicleNotFound)
	}
	for i := range v.Invoices {
		if v.Invoices[i].InvoiceID == inv.InvoiceID {
			v.Invoices[i] = inv
			return nil
		}
	}
	v.Invoices = append(v.Invoices, inv)
	return nil
}

// DeleteInvoice removes the invoice with the given id from the customer's
// vehicle.
func (b *Book) DeleteInvoice(customerID, reg, invoiceID string) error {
	c, ok := b.FindByID(customerID)
	if !ok {
		return fmt.Errorf("delete invoice: %w", ErrCustomerNotFound)
	}
	v := c.Vehicle(reg)
	if v == nil {
		return fmt.Errorf("delete invoice for reg %q: %w", reg, ErrVehicleNotFound)
	}
	for i := range v.Invoices {
		if v.Invoices[i].InvoiceID == invoiceID {
			v.Invoices = slices.Delete(v.Invoices, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete invoice %q: %w", invoiceID, ErrInvoiceNotFound)
}

// DeleteCustomer removes the customer and, by ownership, all of its vehicles
// and their invoices. No other customer's data is touched.
func (b *Book) DeleteCustomer(id string) error {
	for i := range b.customers {
		if b.customers[i].ID == id {
			b.customers = slices.Delete(b.customers, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete customer %q: %w", id, ErrCustomerNotFound)
}

// AddVehicle appends a vehicle to the customer's cars.
func (b *Book) AddVehicle(customerID string, v Vehicle) error {
	c, ok := b.FindByID(customerID)
	if !ok {
		return fmt.Errorf("add vehicle: %w", ErrCustomerNotFound)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid vehicle record: %w", err)
	}
	if c.Vehicle(v.Reg) != nil {
		return fmt.Errorf("add vehicle: reg %q already on record", v.Reg)
	}
	c.Cars = append(c.Cars, v)
	return nil
}

// AddMobile appends a mobile number to the customer.
func (b *Book) AddMobile(customerID, mobile string) error {
	c, ok := b.FindByID(customerID)
	if !ok {
		return fmt.Errorf("add mobile: %w", ErrCustomerNotFound)
	}
	if mobile == "" {
		return fmt.Errorf("add mobile: empty number")
	}
	c.Mobiles = append(c.Mobiles, mobile)
	return nil
}

// Rename updates the customer's name.
func (b *Book) Rename(customerID, name string) error {
	c, ok := b.FindByID(customerID)
	if !ok {
		return fmt.Errorf("rename: %w", ErrCustomerNotFound)
	}
	if name == "" {
		return fmt.Errorf("rename: empty name")
	}
	c.Name = name
	return nil
}

// InvoiceRef is one invoice flattened out of the book, carrying the customer
// and vehicle it belongs to.
type InvoiceRef struct {
	CustomerID   string
	CustomerName string
	Reg          string
	Car          string
	Invoice      Invoice
}

// AllInvoices flattens every invoice across every vehicle across every
// customer, in book order.
func (b *Book) AllInvoices() []InvoiceRef {
	var refs []InvoiceRef
	for i := range b.customers {
		c := &b.customers[i]
		for j := range c.Cars {
			v := &c.Cars[j]
			for _, inv := range v.Invoices {
				refs = append(refs, InvoiceRef{
					CustomerID:   c.ID,
					CustomerName: c.Name,
					Reg:          v.Reg,
					Car:          v.Car,
					Invoice:      inv,
				})
			}
		}
	}
	return refs
}
