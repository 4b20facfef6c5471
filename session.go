package garagebook

import (
	"errors"
	"fmt"
)

// ErrNoSelection is returned by every invoice-editing operation while no
// customer and vehicle are selected.
var ErrNoSelection = errors.New("customer required: select a customer and vehicle first")

// Row is one editable line of the invoice being composed. Amounts start
// blank; a blank amount contributes zero to the totals.
type Row struct {
	Qty         string
	Description string

	parts       Money
	labour      Money
	partsBlank  bool
	labourBlank bool
}

// Parts returns the committed, VAT-inclusive parts amount.
func (r *Row) Parts() Money { return r.parts }

// Labour returns the committed labour amount.
func (r *Row) Labour() Money { return r.labour }

func newRow() Row { return Row{partsBlank: true, labourBlank: true} }

// Session holds the working state of one invoice being composed. It starts
// unselected; every editing operation is rejected until Select or
// LoadInvoice binds a customer and vehicle. Saving keeps the session active
// so edits can continue and be re-saved under the same invoice id.
type Session struct {
	global   Settings
	instance *Settings
	order    DateOrder

	customerID   string
	customerName string
	reg          string
	car          string

	invoiceID string
	date      Date
	mileage   string
	rows      []Row
}

// NewSession creates an unselected session using the given global settings.
func NewSession(global Settings) *Session {
	return &Session{global: global, order: DayFirst}
}

// SetDateOrder sets how ambiguous dates are read for this session.
func (s *Session) SetDateOrder(order DateOrder) { s.order = order }

// UseSettings sets the instance override for this session only. Non-positive
// values are rejected and the previous settings stay in force.
func (s *Session) UseSettings(instance Settings) error {
	if err := instance.Validate(); err != nil {
		return err
	}
	s.instance = instance.clone()
	return nil
}

func (s Settings) clone() *Settings { return &s }

// Settings returns the effective settings: the instance override when one
// was set this session, otherwise the global scope, otherwise the defaults.
func (s *Session) Settings() Settings { return Resolve(s.global, s.instance) }

// Active reports whether a customer and vehicle are bound.
func (s *Session) Active() bool { return s.invoiceID != "" }

// InvoiceID returns the id the next save will upsert under.
func (s *Session) InvoiceID() string { return s.invoiceID }

// CustomerName and Reg identify the bound customer and vehicle for display.
func (s *Session) CustomerName() string { return s.customerName }
func (s *Session) Reg() string          { return s.reg }
func (s *Session) Car() string          { return s.car }
func (s *Session) Date() Date           { return s.date }
func (s *Session) Mileage() string      { return s.mileage }

// Rows returns the current line items.
func (s *Session) Rows() []Row { return s.rows }

// Select binds a customer and one of their vehicles, clears any previous
// line items and generates a fresh invoice id.
func (s *Session) Select(c *Customer, reg string) error {
	v := c.Vehicle(reg)
	if v == nil {
		return fmt.Errorf("select reg %q for %s: %w", reg, c.Name, ErrVehicleNotFound)
	}
	s.bind(c, v)
	s.invoiceID = NewInvoiceID()
	s.date = Today()
	s.mileage = ""
	s.rows = nil
	return nil
}

// LoadInvoice binds a customer and vehicle and restores a previously saved
// invoice for editing: its id is reused and its line items come back as
// stored. Stored parts are already VAT-inclusive, so no amount is
// re-multiplied here.
func (s *Session) LoadInvoice(c *Customer, reg, invoiceID string) error {
	v := c.Vehicle(reg)
	if v == nil {
		return fmt.Errorf("load invoice for reg %q: %w", reg, ErrVehicleNotFound)
	}
	inv := v.Invoice(invoiceID)
	if inv == nil {
		return fmt.Errorf("load invoice %q: %w", invoiceID, ErrInvoiceNotFound)
	}
	s.bind(c, v)
	s.invoiceID = inv.InvoiceID
	s.mileage = inv.Mileage
	if d, err := ParseDisplayDate(inv.Date, s.order); err == nil {
		s.date = d
	} else {
		s.date = Today()
	}
	s.rows = make([]Row, 0, len(inv.TableRows))
	for _, item := range inv.TableRows {
		row := newRow()
		row.Qty = item.Qty
		row.Description = item.Description
		if item.Parts != "" {
			// stored amounts that fail to parse contribute zero
			row.parts, _ = ParseAmount(item.Parts)
			row.partsBlank = false
		}
		if item.Labor != "" {
			row.labour, _ = ParseAmount(item.Labor)
			row.labourBlank = false
		}
		s.rows = append(s.rows, row)
	}
	return nil
}

func (s *Session) bind(c *Customer, v *Vehicle) {
	s.customerID = c.ID
	s.customerName = c.Name
	s.reg = v.Reg
	s.car = v.Car
}

// Clear drops the selection and all line items, back to unselected.
func (s *Session) Clear() {
	s.customerID, s.customerName, s.reg, s.car = "", "", "", ""
	s.invoiceID = ""
	s.mileage = ""
	s.rows = nil
}

// SetDate sets the invoice date.
func (s *Session) SetDate(d Date) error {
	if !s.Active() {
		return ErrNoSelection
	}
	s.date = d
	return nil
}

// SetMileage sets the recorded mileage, free text.
func (s *Session) SetMileage(mileage string) error {
	if !s.Active() {
		return ErrNoSelection
	}
	s.mileage = mileage
	return nil
}

// AddRow appends an empty line item and returns its index.
func (s *Session) AddRow() (int, error) {
	if !s.Active() {
		return 0, ErrNoSelection
	}
	s.rows = append(s.rows, newRow())
	return len(s.rows) - 1, nil
}

// AddMOTRow appends the standard MOT line: description "MOT" and the
// configured MOT amount as parts. The amount is a fixed charge, not a raw
// entry, so VAT is not applied to it.
func (s *Session) AddMOTRow() (int, error) {
	i, err := s.AddRow()
	if err != nil {
		return 0, err
	}
	s.rows[i].Description = "MOT"
	s.rows[i].parts = M(s.Settings().MOTAmount)
	s.rows[i].partsBlank = false
	return i, nil
}

// DeleteRow removes the last line item.
func (s *Session) DeleteRow() error {
	if !s.Active() {
		return ErrNoSelection
	}
	if len(s.rows) == 0 {
		return fmt.Errorf("no rows to delete")
	}
	s.rows = s.rows[:len(s.rows)-1]
	return nil
}

func (s *Session) row(i int) (*Row, error) {
	if !s.Active() {
		return nil, ErrNoSelection
	}
	if i < 0 || i >= len(s.rows) {
		return nil, fmt.Errorf("no row %d", i)
	}
	return &s.rows[i], nil
}

// SetQty sets the quantity of row i, free text.
func (s *Session) SetQty(i int, qty string) error {
	row, err := s.row(i)
	if err != nil {
		return err
	}
	row.Qty = qty
	return nil
}

// SetDescription sets the description of row i.
func (s *Session) SetDescription(i int, desc string) error {
	row, err := s.row(i)
	if err != nil {
		return err
	}
	row.Description = desc
	return nil
}

// SetParts commits a raw parts entry for row i. The raw value is multiplied
// by the effective VAT percent exactly once, here; what the row then holds
// is the VAT-inclusive amount that will be stored and displayed. A blank
// entry clears the amount; a non-numeric one is rejected with no change.
func (s *Session) SetParts(i int, raw string) error {
	row, err := s.row(i)
	if err != nil {
		return err
	}
	if raw == "" {
		row.parts = Money{}
		row.partsBlank = true
		return nil
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	row.parts = amount.MulRate(s.Settings().VATPercent)
	row.partsBlank = false
	return nil
}

// SetLabour commits a labour entry for row i. Labour is never VAT-adjusted.
func (s *Session) SetLabour(i int, raw string) error {
	row, err := s.row(i)
	if err != nil {
		return err
	}
	if raw == "" {
		row.labour = Money{}
		row.labourBlank = true
		return nil
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	row.labour = amount
	row.labourBlank = false
	return nil
}

// Totals recomputes the invoice totals from the current rows. The final
// total is exactly labour plus parts.
func (s *Session) Totals() Totals {
	var t Totals
	for i := range s.rows {
		t.TotalParts = t.TotalParts.Add(s.rows[i].parts)
		t.TotalLabour = t.TotalLabour.Add(s.rows[i].labour)
	}
	t.FinalTotal = t.TotalLabour.Add(t.TotalParts)
	return t
}

// Invoice captures the current session state as a saveable invoice record.
func (s *Session) Invoice() (Invoice, error) {
	if !s.Active() {
		return Invoice{}, ErrNoSelection
	}
	items := make([]LineItem, 0, len(s.rows))
	for i := range s.rows {
		row := &s.rows[i]
		item := LineItem{Qty: row.Qty, Description: row.Description}
		if !row.partsBlank {
			item.Parts = row.parts.Amount()
		}
		if !row.labourBlank {
			item.Labor = row.labour.Amount()
		}
		items = append(items, item)
	}
	return Invoice{
		InvoiceID: s.invoiceID,
		Date:      s.date.String(),
		Mileage:   s.mileage,
		Reg:       s.reg,
		TableRows: items,
		Totals:    s.Totals(),
	}, nil
}

// Save commits the current line items and totals into the bound vehicle's
// invoices via the book: replace by id when already saved, append otherwise.
// The session stays active so further edits re-save under the same id.
func (s *Session) Save(b *Book) error {
	inv, err := s.Invoice()
	if err != nil {
		return err
	}
	return b.UpsertInvoice(s.customerID, s.reg, inv)
}
