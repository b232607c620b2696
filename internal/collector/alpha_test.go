package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestAlphaClient_FetchFXDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "FX_DAILY" {
			t.Errorf("expected function FX_DAILY, got %q", q.Get("function"))
		}
		if q.Get("from_symbol") != "EUR" || q.Get("to_symbol") != "USD" {
			t.Errorf("expected EUR/USD pair, got %s/%s", q.Get("from_symbol"), q.Get("to_symbol"))
		}
		if q.Get("outputsize") != "full" {
			t.Errorf("expected outputsize full, got %q", q.Get("outputsize"))
		}
		if q.Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %q", q.Get("apikey"))
		}
		fmt.Fprint(w, `{"Time Series FX (Daily)":{
			"2024-01-03":{"4. close":"1.0950"},
			"2024-01-02":{"4. close":"1.0940"}
		}}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	records, err := c.FetchFXDaily("EUR", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2024-01-02" || records[0].Close != 1.0940 {
		t.Errorf("first record wrong: %+v", records[0])
	}
}

func TestAlphaClient_FXDailyEmptyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Time Series FX (Daily)":{}}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	records, err := c.FetchFXDaily("EUR", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestAlphaClient_ErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Error Message":"Invalid API call. Please retry or visit the documentation."}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	_, err := c.FetchFXDaily("XAU", "USD")
	if err == nil {
		t.Fatal("expected provider error")
	}
	if KindOf(err) != KindProvider {
		t.Errorf("expected provider kind, got %v", KindOf(err))
	}
	if !strings.Contains(err.Error(), "Invalid API call") {
		t.Errorf("expected upstream message preserved, got %q", err.Error())
	}
}

func TestAlphaClient_Throttled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Note":"Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	_, err := c.FetchDailyClose("XAUUSD")
	if err == nil {
		t.Fatal("expected throttle error")
	}
	if KindOf(err) != KindThrottled {
		t.Errorf("expected throttled kind, got %v", KindOf(err))
	}
}

func TestAlphaClient_DailyCloseEmptyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Time Series (Daily)":{}}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	_, err := c.FetchDailyClose("XAUUSD")
	if err == nil {
		t.Fatal("expected empty result error")
	}
	if KindOf(err) != KindEmptyResult {
		t.Errorf("expected empty_result kind, got %v", KindOf(err))
	}
}

func TestAlphaClient_FetchDailyAdjusted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "TIME_SERIES_DAILY_ADJUSTED" {
			t.Errorf("expected function TIME_SERIES_DAILY_ADJUSTED, got %q", got)
		}
		fmt.Fprint(w, `{"Time Series (Daily)":{
			"2024-01-02":{"4. close":"185.2","5. adjusted close":"184.9","6. volume":"1200000"},
			"2024-01-03":{"4. close":"","5. adjusted close":"186.1"},
			"2024-01-04":{"4. close":"","5. adjusted close":""}
		}}`)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	records, err := c.FetchDailyAdjusted("GLD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2024-01-02" {
		t.Errorf("expected 2024-01-02 first, got %s", records[0].Date)
	}
	if records[1].Close != nil {
		t.Errorf("expected nil close on adjusted-only date, got %v", *records[1].Close)
	}
	if records[1].AdjustedClose == nil || *records[1].AdjustedClose != 186.1 {
		t.Errorf("expected adjusted close 186.1, got %v", records[1].AdjustedClose)
	}
	if records[1].Volume != nil {
		t.Errorf("expected nil volume when field is absent, got %v", *records[1].Volume)
	}
}

func TestAlphaClient_MissingAPIKey(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "", "")
	_, err := c.FetchFXDaily("XAU", "USD")
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if KindOf(err) != KindMissingCredential {
		t.Errorf("expected missing_credential kind, got %v", KindOf(err))
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

func TestAlphaClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := NewAlphaClient(srv.URL, "test-key", "")
	_, err := c.FetchDailyAdjusted("IAU")
	if err == nil {
		t.Fatal("expected error for 504 response")
	}
	if KindOf(err) != KindHTTPStatus {
		t.Errorf("expected http_status kind, got %v", KindOf(err))
	}
}
