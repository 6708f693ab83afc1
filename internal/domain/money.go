package domain

import (
	"strconv"
	"strings"
)

// Amount is a monetary value split into whole euros and cents.
type Amount struct {
	Euros int
	Cents int
}

// ParseMonetary parses a user-typed amount that uses a comma as the decimal
// separator. The fractional part is right-padded with zeros to two digits and
// then truncated to two digits: a third digit is dropped, never rounded.
// Missing or unparsable parts default to zero.
func ParseMonetary(raw string) Amount {
	sanitized := strings.ReplaceAll(raw, ",", ".")
	parts := strings.Split(sanitized, ".")

	euroStr := parts[0]
	centStr := ""
	if len(parts) > 1 {
		centStr = parts[1]
	}

	for len(centStr) < 2 {
		centStr += "0"
	}
	centStr = centStr[:2]

	return Amount{
		Euros: parseIntDefault(euroStr),
		Cents: parseIntDefault(centStr),
	}
}

func parseIntDefault(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
