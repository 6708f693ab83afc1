// Package nominatim implements the address-suggestion port against the
// OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/domain"
	"github.com/drk-digital/erstattungsportal/internal/ports/out/addresses"
)

const (
	// DefaultEndpoint is the public Nominatim search endpoint.
	DefaultEndpoint = "https://nominatim.openstreetmap.org/search"

	resultLimit = 5
	userAgent   = "DRK-Form-Application"
)

// Client queries Nominatim for German postal addresses.
type Client struct {
	endpoint string
	client   *http.Client
}

var _ addresses.Suggester = (*Client)(nil)

func New(endpoint string) *Client {
	return NewWithClient(endpoint, nil)
}

func NewWithClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{endpoint: endpoint, client: httpClient}
}

type candidate struct {
	Address struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Postcode    string `json:"postcode"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
	} `json:"address"`
}

// Suggest returns up to five German address candidates for query. Queries
// under three characters return no candidates without issuing a request.
func (c *Client) Suggest(ctx context.Context, query string) ([]domain.AddressSuggestion, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 3 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query+", Deutschland")
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", fmt.Sprint(resultLimit))
	params.Set("countrycodes", "de")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("address search failed: status=%d", resp.StatusCode)
	}

	var results []candidate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	out := make([]domain.AddressSuggestion, 0, len(results))
	for _, r := range results {
		city := r.Address.City
		if city == "" {
			city = r.Address.Town
		}
		if city == "" {
			city = r.Address.Village
		}
		out = append(out, domain.AddressSuggestion{
			Street:      r.Address.Road,
			HouseNumber: r.Address.HouseNumber,
			PostalCode:  r.Address.Postcode,
			City:        city,
		})
	}
	return out, nil
}
