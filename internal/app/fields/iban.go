// Package fields implements the live field interactions of the claim form:
// IBAN/bank coupling, debounced address suggestions, amount-to-words
// conversion, and the segmented one-time-code input. The helpers compute
// what the form should show; rendering stays with the binding layer.
package fields

import (
	"strings"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/domain"
	"github.com/drk-digital/erstattungsportal/internal/ports/out/bankdir"
)

const (
	// BankHighlight is how long the institute field flashes after an
	// automatic fill.
	BankHighlight = 2 * time.Second

	// ManualEntryPlaceholder is shown when a long-enough IBAN has no
	// directory match.
	ManualEntryPlaceholder = "Bank nicht gefunden - bitte manuell eingeben"
)

// BankUpdate is the outcome of one keystroke in the IBAN field.
type BankUpdate struct {
	// IBAN is the normalized value to write back into the field.
	IBAN string
	// Institute is the resolved bank name when Found.
	Institute string
	Found     bool
	// Highlight is non-zero when the institute field was auto-filled.
	Highlight time.Duration
	// PromptManual asks the binding layer to show ManualEntryPlaceholder
	// without overwriting a manually entered institute.
	PromptManual bool
}

// IBANField couples an IBAN input to its institute field through the routing
// directory.
type IBANField struct {
	dir bankdir.Directory
}

func NewIBANField(dir bankdir.Directory) *IBANField {
	return &IBANField{dir: dir}
}

// Input re-normalizes the IBAN and attempts a directory lookup. Lookup misses
// on an IBAN of plausible length prompt for manual entry.
func (f *IBANField) Input(raw string) BankUpdate {
	normalized := domain.NormalizeIBAN(raw)
	u := BankUpdate{IBAN: normalized}

	if name, ok := bankdir.LookupBank(normalized, f.dir); ok {
		u.Institute = name
		u.Found = true
		u.Highlight = BankHighlight
		return u
	}
	if len(strings.ReplaceAll(normalized, " ", "")) >= 12 {
		u.PromptManual = true
	}
	return u
}
