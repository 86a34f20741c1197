// Package geo translates coordinates into place names through a
// Nominatim-compatible reverse-geocoding endpoint.
package geo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// Client performs reverse-geocoding lookups.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient builds a Client for the given reverse-geocoding endpoint.
func NewClient(geocodeURL string) *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
		url:  geocodeURL,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseLookup returns the display name for the coordinate pair, or "" if
// the service has no answer. Out-of-range coordinates are rejected with
// domain.ErrValidation before any network call.
func (c *Client) ReverseLookup(ctx context.Context, lat, lng float64) (string, error) {
	if !domain.ValidCoordinates(lat, lng) {
		return "", fmt.Errorf("geo.Client.ReverseLookup: %w: coordinates out of range", domain.ErrValidation)
	}

	var out reverseResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format":          "json",
			"lat":             strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":             strconv.FormatFloat(lng, 'f', -1, 64),
			"accept-language": "th",
		}).
		SetResult(&out).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("geo.Client.ReverseLookup: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("geo.Client.ReverseLookup: geocoder returned %s", resp.Status())
	}
	return out.DisplayName, nil
}
