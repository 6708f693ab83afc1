// Package bankdir defines the outbound port for the routing-code directory:
// a read-only mapping from an 8-digit German routing code (Bankleitzahl) to a
// bank display name. The dataset is supplied externally.
package bankdir

import (
	"github.com/drk-digital/erstattungsportal/internal/domain"
)

// Directory resolves routing codes to bank display names.
type Directory interface {
	// Lookup returns the display name for code, or ok=false when the code is
	// not in the dataset.
	Lookup(code string) (string, bool)
}

// LookupBank resolves an IBAN (in any spacing) to a bank display name.
// ok=false means the caller should prompt for manual entry.
func LookupBank(iban string, d Directory) (string, bool) {
	code, ok := domain.RoutingCodeOf(iban)
	if !ok {
		return "", false
	}
	return d.Lookup(code)
}
