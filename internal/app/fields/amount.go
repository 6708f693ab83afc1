package fields

import (
	"strings"

	"github.com/drk-digital/erstattungsportal/internal/domain"
)

// AmountInput processes one keystroke in the amount field: everything except
// digits and the comma is stripped, and the words field is recomputed from
// the sanitized value. It returns the value to write back and the German
// phrase for the paired "Betrag in Worten" field.
func AmountInput(raw string) (value, words string) {
	value = sanitizeAmount(raw)
	if value == "" {
		return "", ""
	}
	return value, domain.ParseMonetary(value).InWords()
}

func sanitizeAmount(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
