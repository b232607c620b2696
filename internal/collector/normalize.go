package collector

import (
	"sort"
	"time"

	"GoldSentinel/internal/model"
	"GoldSentinel/internal/parse"
)

// Alpha Vantage daily payload field labels.
const (
	fieldClose         = "4. close"
	fieldAdjustedClose = "5. adjusted close"
	fieldVolume        = "6. volume"
)

// normalizeRateSeries converts FRED observations into date-sorted
// records. Entries whose value is missing or whose date is empty are
// dropped silently.
func normalizeRateSeries(op string, obs []fredObservation) ([]model.SeriesRecord, error) {
	records := make([]model.SeriesRecord, 0, len(obs))
	for _, o := range obs {
		v := parse.Float(o.Value)
		if v == nil || o.Date == "" {
			continue
		}
		records = append(records, model.SeriesRecord{Date: o.Date, Value: *v})
	}
	if err := sortByDate(op, records, func(r model.SeriesRecord) string { return r.Date }); err != nil {
		return nil, err
	}
	return records, nil
}

// normalizeCloseSeries converts an Alpha Vantage daily map (date to
// field to raw value) into date-sorted close records, dropping dates
// whose close does not parse.
func normalizeCloseSeries(op string, series map[string]map[string]string) ([]model.PriceRecord, error) {
	records := make([]model.PriceRecord, 0, len(series))
	for date, fields := range series {
		c := parse.Float(fields[fieldClose])
		if c == nil {
			continue
		}
		records = append(records, model.PriceRecord{Date: date, Close: *c})
	}
	if err := sortByDate(op, records, func(r model.PriceRecord) string { return r.Date }); err != nil {
		return nil, err
	}
	return records, nil
}

// normalizeAdjustedSeries converts an Alpha Vantage daily adjusted map
// into date-sorted equity records. A date is kept as long as close or
// adjusted close parses; the fields that did not parse stay null.
func normalizeAdjustedSeries(op string, series map[string]map[string]string) ([]model.EquityRecord, error) {
	records := make([]model.EquityRecord, 0, len(series))
	for date, fields := range series {
		c := parse.Float(fields[fieldClose])
		ac := parse.Float(fields[fieldAdjustedClose])
		if c == nil && ac == nil {
			continue
		}
		records = append(records, model.EquityRecord{
			Date:          date,
			Close:         c,
			AdjustedClose: ac,
			Volume:        parse.Float(fields[fieldVolume]),
		})
	}
	if err := sortByDate(op, records, func(r model.EquityRecord) string { return r.Date }); err != nil {
		return nil, err
	}
	return records, nil
}

// sortByDate orders records ascending by their date string, parsing
// every date. A single unparseable date fails the whole series; equal
// dates keep their input order.
func sortByDate[T any](op string, recs []T, key func(T) string) error {
	type dated struct {
		t   time.Time
		rec T
	}
	ds := make([]dated, len(recs))
	for i, r := range recs {
		t, err := parse.Date(key(r))
		if err != nil {
			return &FetchError{Kind: KindDateParse, Op: op, Err: err}
		}
		ds[i] = dated{t: t, rec: r}
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].t.Before(ds[j].t) })
	for i, d := range ds {
		recs[i] = d.rec
	}
	return nil
}
