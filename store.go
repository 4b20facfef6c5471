package garagebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The store keeps the whole state under one directory, one document per
// concern, rewritten wholesale on every save. Small data, no diffing.
const (
	customersFile = "customers.json"
	settingsFile  = "settings.json"
	businessFile  = "business.json"
)

// Store reads and writes the persisted documents under a directory.
type Store struct {
	path string
}

// NewStore returns a store rooted at path. The directory is created on the
// first save.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the store directory.
func (s *Store) Path() string { return s.path }

// LoadBook loads the customer collection. A missing file yields an empty
// book, persisted so the next run finds a well-formed document. An
// unparsable file also yields an empty book, but the original is kept
// aside rather than overwritten.
func (s *Store) LoadBook() (*Book, error) {
	name := filepath.Join(s.path, customersFile)
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		b := NewBook()
		if err := s.SaveBook(b); err != nil {
			return nil, fmt.Errorf("cannot initialize empty customer book: %w", err)
		}
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage unavailable: %w", err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		// keep the corrupt document for inspection, start empty.
		log.Printf("warning: %v, keeping it as %s.corrupt and starting empty", err, customersFile)
		if rerr := os.Rename(name, name+".corrupt"); rerr != nil {
			return nil, fmt.Errorf("cannot set aside corrupt customer book: %w", rerr)
		}
		b = NewBook()
		if serr := s.SaveBook(b); serr != nil {
			return nil, fmt.Errorf("cannot initialize empty customer book: %w", serr)
		}
	}
	return b, nil
}

// SaveBook serializes the entire collection and overwrites the stored
// document. On failure the in-memory book is untouched and the error is
// surfaced, never swallowed.
func (s *Store) SaveBook(b *Book) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	f, err := os.Create(filepath.Join(s.path, customersFile))
	if err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	defer f.Close()
	return EncodeBook(f, b)
}

// LoadSettings loads the global settings, or the defaults when none were
// ever saved.
func (s *Store) LoadSettings() (Settings, error) {
	var settings Settings
	err := s.loadDoc(settingsFile, &settings)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveSettings persists the global settings after validation.
func (s *Store) SaveSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.saveDoc(settingsFile, settings)
}

// BusinessInfo is the display header of the printable invoice.
type BusinessInfo struct {
	InvoiceTitle string `json:"invoiceTitle"`
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
}

// LoadBusinessInfo loads the business header, empty when never saved.
func (s *Store) LoadBusinessInfo() (BusinessInfo, error) {
	var info BusinessInfo
	err := s.loadDoc(businessFile, &info)
	if errors.Is(err, fs.ErrNotExist) {
		return BusinessInfo{}, nil
	}
	if err != nil {
		return BusinessInfo{}, err
	}
	return info, nil
}

// SaveBusinessInfo persists the business header.
func (s *Store) SaveBusinessInfo(info BusinessInfo) error {
	return s.saveDoc(businessFile, info)
}

func (s *Store) loadDoc(file string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.path, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("storage unavailable: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot decode %s: %w", file, err)
	}
	return nil
}

func (s *Store) saveDoc(file string, v any) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", file, err)
	}
	if err := os.WriteFile(filepath.Join(s.path, file), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	return nil
}
