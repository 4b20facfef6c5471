package garagebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// Bootstrap seeds an empty book from a bundled customer dataset. It is a
// no-op when the book already has customers or when the seed file is absent;
// a first run without a seed just starts empty.
//
// Seed files shipped with different versions of the old app either hold the
// customer array at the top level or wrap it under a "customers" property,
// so the array is located by jsonpath before decoding.
func (s *Store) Bootstrap(b *Book, seedPath string) (int, error) {
	if b.Len() > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(seedPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no seed dataset at %q, starting with an empty book", seedPath)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read seed dataset %q: %w", seedPath, err)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return 0, fmt.Errorf("cannot parse seed dataset %q: %w", seedPath, err)
	}

	jcustomers := jobj
	if _, ok := jobj.([]any); !ok {
		jval, err := jsonpath.Get("$.customers", jobj)
		if err != nil {
			return 0, fmt.Errorf("seed dataset %q: no customer array at top level or under $.customers", seedPath)
		}
		jcustomers = jval
	}

	// round-trip the located node through json into typed records
	raw, err := json.Marshal(jcustomers)
	if err != nil {
		return 0, fmt.Errorf("cannot re-encode seed customers: %w", err)
	}
	var customers []Customer
	if err := json.Unmarshal(raw, &customers); err != nil {
		return 0, fmt.Errorf("seed dataset %q does not hold customer records: %w", seedPath, err)
	}

	for i := range customers {
		if customers[i].ID == "" {
			customers[i].ID = NewCustomerID()
		}
	}
	if customers == nil {
		customers = make([]Customer, 0)
	}
	b.customers = customers

	if err := s.SaveBook(b); err != nil {
		return 0, err
	}
	return len(customers), nil
}
