package domain

import "strings"

// NormalizeIBAN strips all whitespace, uppercases, and regroups the IBAN into
// blocks of four characters separated by single spaces. It is a pure formatting
// transform and performs no checksum validation.
func NormalizeIBAN(raw string) string {
	compact := compactIBAN(raw)
	if compact == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(compact) + len(compact)/4)
	for i, r := range compact {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RoutingCodeOf extracts the 8-digit German routing code (Bankleitzahl) from an
// IBAN. It returns ok=false for IBANs that do not start with "DE" or are shorter
// than 12 characters once whitespace is removed.
func RoutingCodeOf(iban string) (string, bool) {
	compact := compactIBAN(iban)
	if !strings.HasPrefix(compact, "DE") || len(compact) < 12 {
		return "", false
	}
	return compact[4:12], true
}

func compactIBAN(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
