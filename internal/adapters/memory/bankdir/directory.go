// Package bankdir is the in-memory implementation of the routing-code
// directory port.
package bankdir

import (
	bankdirport "github.com/drk-digital/erstattungsportal/internal/ports/out/bankdir"
)

// Entry is one routing-code row of an externally supplied dataset.
type Entry struct {
	Code string
	Name string
}

// Directory is a read-only routing-code lookup. Safe for concurrent reads
// after construction.
type Directory struct {
	byCode map[string]string
}

var _ bankdirport.Directory = (*Directory)(nil)

// Load builds a directory from an external dataset. The source data is known
// to contain duplicate codes with differing names; later rows win, and the
// number of overridden codes is reported so the caller can log data-quality
// noise without failing.
func Load(entries []Entry) (*Directory, int) {
	byCode := make(map[string]string, len(entries))
	overridden := 0
	for _, e := range entries {
		if prev, ok := byCode[e.Code]; ok && prev != e.Name {
			overridden++
		}
		byCode[e.Code] = e.Name
	}
	return &Directory{byCode: byCode}, overridden
}

func (d *Directory) Lookup(code string) (string, bool) {
	name, ok := d.byCode[code]
	return name, ok
}
