package garagebook

import "fmt"

// Hard defaults applied when no settings have ever been saved.
const (
	DefaultVATPercent = 1.2
	DefaultMOTAmount  = 45.50
)

// Settings holds the VAT multiplier applied to raw parts entries and the
// standard MOT charge. The persisted value is the global scope; a session may
// carry an in-memory instance override that wins for that session only.
type Settings struct {
	VATPercent float64 `json:"vatPercent"`
	MOTAmount  float64 `json:"motAmount"`
}

// DefaultSettings returns the hard-coded defaults.
func DefaultSettings() Settings {
	return Settings{VATPercent: DefaultVATPercent, MOTAmount: DefaultMOTAmount}
}

// Validate rejects non-positive values. A zero or negative VAT multiplier
// would silently wipe every parts entry it touches.
func (s Settings) Validate() error {
	if s.VATPercent <= 0 {
		return fmt.Errorf("vat percent must be positive, got %v", s.VATPercent)
	}
	if s.MOTAmount <= 0 {
		return fmt.Errorf("mot amount must be positive, got %v", s.MOTAmount)
	}
	return nil
}

// Resolve returns the effective settings: instance when set, else global.
// Callers that loaded neither pass a zero global and get the defaults.
func Resolve(global Settings, instance *Settings) Settings {
	if instance != nil {
		return *instance
	}
	if global == (Settings{}) {
		return DefaultSettings()
	}
	return global
}
