// Package addresses defines the outbound port for the external
// address-suggestion service.
package addresses

import (
	"context"

	"github.com/drk-digital/erstattungsportal/internal/domain"
)

// Suggester returns candidate postal addresses for a free-text query.
type Suggester interface {
	// Suggest returns up to a small fixed number of candidates for query.
	// Queries shorter than 3 characters yield an empty slice without I/O.
	Suggest(ctx context.Context, query string) ([]domain.AddressSuggestion, error)
}
