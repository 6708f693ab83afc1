package fields

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/domain"
)

type recordingSuggester struct {
	mu      sync.Mutex
	queries []string
	results []domain.AddressSuggestion
}

func (r *recordingSuggester) Suggest(_ context.Context, query string) ([]domain.AddressSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	return r.results, nil
}

func (r *recordingSuggester) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func TestAddressField_DebounceRunsOnlyLastQuery(t *testing.T) {
	t.Parallel()

	sugg := &recordingSuggester{results: []domain.AddressSuggestion{{Street: "Hauptstraße"}}}
	delivered := make(chan []domain.AddressSuggestion, 4)
	f := NewAddressField(sugg, LayoutCombined, func(s []domain.AddressSuggestion) { delivered <- s })
	f.SetDebounce(20 * time.Millisecond)
	defer f.Close()

	f.Input("Hau")
	f.Input("Haupt")
	f.Input("Hauptstr")

	select {
	case got := <-delivered:
		if len(got) != 1 || got[0].Street != "Hauptstraße" {
			t.Fatalf("delivered=%v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}

	if qs := sugg.seen(); len(qs) != 1 || qs[0] != "Hauptstr" {
		t.Fatalf("queries=%v, want only the last keystroke's query", qs)
	}
}

// stallingSuggester blocks its first call until the context is cancelled and
// keeps running a little longer before failing; later calls answer instantly.
type stallingSuggester struct {
	mu       sync.Mutex
	calls    int
	results  []domain.AddressSuggestion
	entered  chan struct{}
	finished chan struct{}
}

func (s *stallingSuggester) Suggest(ctx context.Context, _ string) ([]domain.AddressSuggestion, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()
	if first {
		close(s.entered)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		defer close(s.finished)
		return nil, ctx.Err()
	}
	return s.results, nil
}

func TestAddressField_SupersededLookupDoesNotDeliver(t *testing.T) {
	t.Parallel()

	sugg := &stallingSuggester{
		results:  []domain.AddressSuggestion{{Street: "Neue Straße"}},
		entered:  make(chan struct{}),
		finished: make(chan struct{}),
	}
	delivered := make(chan []domain.AddressSuggestion, 4)
	f := NewAddressField(sugg, LayoutCombined, func(s []domain.AddressSuggestion) { delivered <- s })
	f.SetDebounce(5 * time.Millisecond)
	defer f.Close()

	f.Input("Alte Straße")
	select {
	case <-sugg.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first lookup never started")
	}

	// The new keystroke cancels the in-flight lookup.
	f.Input("Neue Straße")

	select {
	case got := <-delivered:
		if len(got) != 1 || got[0].Street != "Neue Straße" {
			t.Fatalf("delivered=%v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery for the new query")
	}

	select {
	case <-sugg.finished:
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled lookup never finished")
	}

	// The cancelled lookup's outcome must not clear the list shown for the
	// newer query.
	select {
	case extra := <-delivered:
		t.Fatalf("delivered=%v after the newer query's results", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAddressField_ShortQueryClearsWithoutLookup(t *testing.T) {
	t.Parallel()

	sugg := &recordingSuggester{}
	delivered := make(chan []domain.AddressSuggestion, 1)
	f := NewAddressField(sugg, LayoutCombined, func(s []domain.AddressSuggestion) { delivered <- s })
	f.SetDebounce(5 * time.Millisecond)
	defer f.Close()

	f.Input("Ha")

	select {
	case got := <-delivered:
		if got != nil {
			t.Fatalf("delivered=%v, want cleared list", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}
	if qs := sugg.seen(); len(qs) != 0 {
		t.Fatalf("queries=%v, want none", qs)
	}
}

func TestAddressField_SelectLayouts(t *testing.T) {
	t.Parallel()

	s := domain.AddressSuggestion{
		Street:      "Hauptstraße",
		HouseNumber: "5",
		PostalCode:  "64283",
		City:        "Darmstadt",
	}

	combined := NewAddressField(nil, LayoutCombined, nil).Select(s)
	if combined.StreetLine != "Hauptstraße 5" || combined.PostalArea != "64283 Darmstadt" {
		t.Fatalf("combined=%+v", combined)
	}
	if combined.PostalCode != "" || combined.City != "" {
		t.Fatalf("combined=%+v, split fields must stay empty", combined)
	}

	split := NewAddressField(nil, LayoutSplit, nil).Select(s)
	if split.PostalCode != "64283" || split.City != "Darmstadt" || split.PostalArea != "" {
		t.Fatalf("split=%+v", split)
	}
	if split.Highlight != AddressHighlight {
		t.Fatalf("highlight=%v", split.Highlight)
	}
}
