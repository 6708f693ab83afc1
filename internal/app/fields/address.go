package fields

import (
	"context"
	"sync"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/domain"
	"github.com/drk-digital/erstattungsportal/internal/ports/out/addresses"
)

const (
	// AddressDebounce is how long typing must pause before a lookup fires.
	AddressDebounce = 300 * time.Millisecond

	// AddressHighlight is the flash applied to fields filled from a selected
	// suggestion.
	AddressHighlight = 1500 * time.Millisecond

	minQueryLength = 3
)

// AddressLayout selects how the paired postal fields are laid out on the two
// form variants.
type AddressLayout int

const (
	// LayoutCombined writes "PLZ Ort" into a single field (claim form).
	LayoutCombined AddressLayout = iota
	// LayoutSplit keeps postal code and city separate (registration form).
	LayoutSplit
)

// AddressSelection is what the binding layer writes into the form after the
// user picks a suggestion.
type AddressSelection struct {
	StreetLine string
	// PostalArea is filled under LayoutCombined, PostalCode/City under
	// LayoutSplit.
	PostalArea string
	PostalCode string
	City       string
	Highlight  time.Duration
}

// AddressField debounces typing in an address input and queries the
// suggestion service. Only the last keystroke's query within the debounce
// window executes; a new keystroke cancels the in-flight lookup.
//
// The deliver callback runs on the field's own timer goroutine; the binding
// layer marshals back onto the UI thread.
type AddressField struct {
	suggester addresses.Suggester
	layout    AddressLayout
	debounce  time.Duration
	deliver   func([]domain.AddressSuggestion)

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	gen    uint64
}

func NewAddressField(s addresses.Suggester, layout AddressLayout, deliver func([]domain.AddressSuggestion)) *AddressField {
	return &AddressField{
		suggester: s,
		layout:    layout,
		debounce:  AddressDebounce,
		deliver:   deliver,
	}
}

// SetDebounce overrides the debounce window; tests use short values.
func (f *AddressField) SetDebounce(d time.Duration) { f.debounce = d }

// Input handles one keystroke. Queries under three characters dismiss the
// suggestion list immediately and cost no I/O.
func (f *AddressField) Input(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	if len([]rune(query)) < minQueryLength {
		go f.deliver(nil)
		return
	}
	gen := f.gen
	f.timer = time.AfterFunc(f.debounce, func() { f.lookup(query, gen) })
}

// Close cancels any pending debounce timer and in-flight lookup.
func (f *AddressField) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
}

// stopLocked retires the pending timer and the in-flight lookup. Bumping the
// generation also silences a lookup whose timer already fired but which has
// not stored its cancel func yet.
func (f *AddressField) stopLocked() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *AddressField) lookup(query string, gen uint64) {
	ctx, cancel := context.WithCancel(context.Background())
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		cancel()
		return
	}
	f.cancel = cancel
	f.mu.Unlock()
	defer cancel()

	suggestions, err := f.suggester.Suggest(ctx, query)
	if err != nil {
		// Suggestion lookups are best-effort; failures just clear the list.
		suggestions = nil
	}

	// A superseded lookup must not surface: a newer keystroke's results may
	// already be on screen.
	f.mu.Lock()
	current := gen == f.gen
	if current {
		f.cancel = nil
	}
	f.mu.Unlock()
	if !current {
		return
	}
	f.deliver(suggestions)
}

// Select maps a chosen suggestion onto the form fields for this layout.
func (f *AddressField) Select(s domain.AddressSuggestion) AddressSelection {
	sel := AddressSelection{
		StreetLine: s.StreetLine(),
		Highlight:  AddressHighlight,
	}
	switch f.layout {
	case LayoutCombined:
		sel.PostalArea = s.PostalCode + " " + s.City
	case LayoutSplit:
		sel.PostalCode = s.PostalCode
		sel.City = s.City
	}
	return sel
}
