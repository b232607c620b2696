package collector

import (
	"errors"
	"log"
	"strings"

	"GoldSentinel/internal/model"
)

// goldFixSeries is the FRED series used as the last gold price source
// (London AM fix, USD per troy ounce).
const goldFixSeries = "GOLDAMGBD228NLBM"

// GoldFetcher resolves the XAU/USD daily series through a chain of
// sources: Alpha Vantage FX_DAILY, then TIME_SERIES_DAILY on the
// XAUUSD ticker, then the FRED London AM fix. Each stage runs at most
// once per fetch.
type GoldFetcher struct {
	Alpha *AlphaClient
	Fred  *FredClient
}

// NewGoldFetcher wires the chain to its two provider clients.
func NewGoldFetcher(alpha *AlphaClient, fred *FredClient) *GoldFetcher {
	return &GoldFetcher{Alpha: alpha, Fred: fred}
}

// Fetch returns the records of the first stage that comes back
// non-empty. A missing credential is returned immediately, since every
// stage needs one. Any other primary or secondary failure advances the
// chain; a tertiary failure is returned to the caller.
func (g *GoldFetcher) Fetch() ([]model.PriceRecord, error) {
	records, err := g.Alpha.FetchFXDaily("XAU", "USD")
	switch {
	case err == nil && len(records) > 0:
		return records, nil
	case err == nil:
		log.Printf("[WARN] FX_DAILY returned no usable data for XAU/USD, retrying TIME_SERIES_DAILY")
	case KindOf(err) == KindMissingCredential:
		return nil, err
	case isInvalidCall(err):
		log.Printf("[WARN] FX_DAILY not available for XAU/USD, retrying TIME_SERIES_DAILY")
	case KindOf(err) == KindTransport || KindOf(err) == KindHTTPStatus:
		log.Printf("[WARN] FX_DAILY request failed for XAU/USD: %v, retrying TIME_SERIES_DAILY", err)
	default:
		log.Printf("[WARN] FX_DAILY error for XAU/USD: %v, retrying TIME_SERIES_DAILY", err)
	}

	records, err = g.Alpha.FetchDailyClose("XAUUSD")
	if err == nil {
		return records, nil
	}
	log.Printf("[WARN] TIME_SERIES_DAILY fallback failed for XAU/USD: %v", err)
	log.Printf("[WARN] falling back to FRED gold price series %s (London AM fix, 10:30) for XAU/USD", goldFixSeries)

	series, err := g.Fred.FetchSeries(goldFixSeries)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, &FetchError{Kind: KindEmptyResult, Op: "fred " + goldFixSeries, Message: "no observations"}
	}
	remapped := make([]model.PriceRecord, len(series))
	for i, s := range series {
		remapped[i] = model.PriceRecord{Date: s.Date, Close: s.Value}
	}
	return remapped, nil
}

// isInvalidCall reports whether err is the provider's "Invalid API
// call" rejection of a currency pair. The provider exposes no
// structured code for this rejection, so the match is a substring
// check against the message text it sent.
func isInvalidCall(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Kind == KindProvider && strings.Contains(fe.Message, "Invalid API call")
}
