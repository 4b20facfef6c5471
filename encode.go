package garagebook

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file handles the canonical encoding of the customer book: a single
// JSON array of customer records, indented for diff-friendly storage.

// EncodeBook writes the whole customer collection to w.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.customers); err != nil {
		return fmt.Errorf("cannot encode customer book: %w", err)
	}
	return nil
}

// DecodeBook reads a customer collection from r. Records from older datasets
// that carry no surrogate id get one backfilled, so every customer in a
// loaded book is addressable by id.
func DecodeBook(r io.Reader) (*Book, error) {
	var customers []Customer
	dec := json.NewDecoder(r)
	if err := dec.Decode(&customers); err != nil {
		return nil, fmt.Errorf("cannot decode customer book: %w", err)
	}
	for i := range customers {
		if customers[i].ID == "" {
			customers[i].ID = NewCustomerID()
		}
	}
	if customers == nil {
		customers = make([]Customer, 0)
	}
	return &Book{customers: customers}, nil
}
