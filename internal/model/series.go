package model

// SeriesRecord is one daily observation of a macro series.
type SeriesRecord struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PriceRecord is one daily close of a traded instrument.
type PriceRecord struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// EquityRecord is one daily bar of an adjusted equity series. Close,
// AdjustedClose and Volume are pointers so an absent field stays a JSON
// null instead of collapsing to zero.
type EquityRecord struct {
	Date          string   `json:"date"`
	Close         *float64 `json:"close"`
	AdjustedClose *float64 `json:"adjusted_close"`
	Volume        *float64 `json:"volume"`
}

// CbSheetRow is one row of the optional balance sheet CSV. The column
// set comes from the CSV header: date columns pass through as strings,
// every other column is a parsed float or null.
type CbSheetRow map[string]interface{}
