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

// AlphaClient fetches daily time series from the Alpha Vantage REST
// API. All functions share one endpoint and one error convention.
type AlphaClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaClient creates an Alpha Vantage client with optional proxy
// support.
func NewAlphaClient(baseURL, apiKey, proxyURL string) *AlphaClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// alphaPayload covers every Alpha Vantage daily response this client
// touches. Error Message and Note ride alongside the data keys, and
// both TIME_SERIES_DAILY and TIME_SERIES_DAILY_ADJUSTED answer under
// "Time Series (Daily)".
type alphaPayload struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	FXSeries     map[string]map[string]string `json:"Time Series FX (Daily)"`
	DailySeries  map[string]map[string]string `json:"Time Series (Daily)"`
}

func (c *AlphaClient) fetchPayload(op string, q url.Values) (*alphaPayload, error) {
	if c.APIKey == "" {
		return nil, &FetchError{Kind: KindMissingCredential, Op: op, Message: "ALPHAVANTAGE_API_KEY is not set"}
	}
	q.Set("outputsize", "full")
	q.Set("apikey", c.APIKey)

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

	var payload alphaPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Kind: KindProvider, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	if payload.ErrorMessage != "" {
		return nil, &FetchError{Kind: KindProvider, Op: op, Message: payload.ErrorMessage}
	}
	if payload.Note != "" {
		return nil, &FetchError{Kind: KindThrottled, Op: op, Message: "request was throttled, wait and retry or reduce frequency"}
	}
	return &payload, nil
}

// FetchFXDaily retrieves the full daily history of a currency pair. A
// pair with no usable rows yields an empty slice, not an error.
func (c *AlphaClient) FetchFXDaily(from, to string) ([]model.PriceRecord, error) {
	op := fmt.Sprintf("alphavantage FX_DAILY %s/%s", from, to)
	q := url.Values{}
	q.Set("function", "FX_DAILY")
	q.Set("from_symbol", from)
	q.Set("to_symbol", to)

	payload, err := c.fetchPayload(op, q)
	if err != nil {
		return nil, err
	}
	return normalizeCloseSeries(op, payload.FXSeries)
}

// FetchDailyClose retrieves the unadjusted daily close history of a
// symbol. Unlike FetchFXDaily, a series with no usable rows is an
// error.
func (c *AlphaClient) FetchDailyClose(symbol string) ([]model.PriceRecord, error) {
	op := "alphavantage TIME_SERIES_DAILY " + symbol
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)

	payload, err := c.fetchPayload(op, q)
	if err != nil {
		return nil, err
	}
	records, err := normalizeCloseSeries(op, payload.DailySeries)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &FetchError{Kind: KindEmptyResult, Op: op, Message: "no close prices"}
	}
	return records, nil
}

// FetchDailyAdjusted retrieves the adjusted daily history of an equity
// symbol.
func (c *AlphaClient) FetchDailyAdjusted(symbol string) ([]model.EquityRecord, error) {
	op := "alphavantage TIME_SERIES_DAILY_ADJUSTED " + symbol
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	q.Set("symbol", symbol)

	payload, err := c.fetchPayload(op, q)
	if err != nil {
		return nil, err
	}
	return normalizeAdjustedSeries(op, payload.DailySeries)
}
