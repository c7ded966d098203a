package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weav-api/core/config"
	"weav-api/core/logger"
)

var ErrNotConfigured = errors.New("eventbrite: api key not configured")

// StatusError is returned for a non-2xx search response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("eventbrite: unexpected status %d: %s", e.StatusCode, e.Body)
}

type Text struct {
	Text *string `json:"text"`
}

type Moment struct {
	UTC string `json:"utc"`
}

type Address struct {
	LocalizedAddressDisplay string `json:"localized_address_display"`
}

type Venue struct {
	Address Address `json:"address"`
}

type Cost struct {
	Value float64 `json:"value"`
}

type TicketClass struct {
	Cost *Cost `json:"cost"`
}

type Logo struct {
	URL string `json:"url"`
}

type Organizer struct {
	Name string `json:"name"`
}

type Tag struct {
	Tag string `json:"tag"`
}

type Event struct {
	ID               string        `json:"id"`
	Name             Text          `json:"name"`
	Description      Text          `json:"description"`
	Summary          *string       `json:"summary"`
	Start            Moment        `json:"start"`
	End              Moment        `json:"end"`
	URL              string        `json:"url"`
	Venue            *Venue        `json:"venue"`
	IsFree           bool          `json:"is_free"`
	TicketClasses    []TicketClass `json:"ticket_classes"`
	CategoryID       *string       `json:"category_id"`
	Logo             *Logo         `json:"logo"`
	Organizer        *Organizer    `json:"organizer"`
	CapacityIsCustom bool          `json:"capacity_is_custom"`
	Capacity         int           `json:"capacity"`
	NumAttendees     int           `json:"num_attendees"`
	Tags             []Tag         `json:"tags"`
}

type searchResponse struct {
	Events []Event `json:"events"`
}

type Client struct {
	http *http.Client
	cfg  config.EventbriteConfig
}

// NewClient uses cfg.Timeout for every call when httpClient is nil.
func NewClient(cfg config.EventbriteConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: httpClient, cfg: cfg}
}

func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Search runs GET {base}/events/search/ with the configured query.
// The token is sent both as a query parameter and a bearer header.
func (c *Client) Search(ctx context.Context) ([]Event, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + "/events/search/")
	if err != nil {
		return nil, fmt.Errorf("eventbrite: base url: %w", err)
	}
	q := u.Query()
	q.Set("token", c.cfg.APIKey)
	q.Set("location.address", c.cfg.LocationAddress)
	q.Set("sort_by", c.cfg.SortBy)
	q.Set("event.keyword", c.cfg.Keyword)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("Eventbrite:Search:Request", "host", u.Host, err)
		return nil, fmt.Errorf("eventbrite: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Eventbrite:Search:Status", "status", resp.StatusCode, "body", string(body))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("eventbrite: decode: %w", err)
	}
	logger.Debug("Eventbrite:Search:OK", "events", len(out.Events))
	return out.Events, nil
}
