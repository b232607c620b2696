package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"GoldSentinel/internal/model"
)

// FredClient fetches observation series from the FRED REST API.
type FredClient struct {
	BaseURL          string
	APIKey           string
	ObservationStart string
	Client           *http.Client
}

// NewFredClient creates a FRED client with optional proxy support.
func NewFredClient(baseURL, apiKey, observationStart, proxyURL string) *FredClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FredClient{
		BaseURL:          baseURL,
		APIKey:           apiKey,
		ObservationStart: observationStart,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// fredObservation is one entry of the observations payload. Values
// arrive as strings, with "." marking a missing print.
type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredPayload struct {
	Observations []fredObservation `json:"observations"`
}

// FetchSeries retrieves one FRED series as date-sorted records. A
// series with no observations comes back as an empty slice, not an
// error.
func (c *FredClient) FetchSeries(seriesID string) ([]model.SeriesRecord, error) {
	op := "fred " + seriesID
	if c.APIKey == "" {
		return nil, &FetchError{Kind: KindMissingCredential, Op: op, Message: "FRED_API_KEY is not set"}
	}

	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.APIKey)
	q.Set("file_type", "json")
	q.Set("observation_start", c.ObservationStart)

	resp, err := c.Client.Get(c.BaseURL + "?" + q.Encode())
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Kind:    KindHTTPStatus,
			Op:      op,
			Message: fmt.Sprintf("status %d, body: %s", resp.StatusCode, string(body)),
		}
	}

	var payload fredPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Kind: KindProvider, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return normalizeRateSeries(op, payload.Observations)
}
