package runner

import (
	"fmt"
	"log"
	"strings"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/store"
)

// Runner executes one batch run: every registry series in order, then
// the optional balance sheet CSV.
type Runner struct {
	Fred     *collector.FredClient
	Alpha    *collector.AlphaClient
	Gold     *collector.GoldFetcher
	Sheets   *collector.SheetClient
	Store    *store.JSONStore
	Recorder recorder.Recorder
	Registry []SeriesSpec
	SheetURL string
}

// NewRunner wires the provider clients to the default registry.
func NewRunner(fred *collector.FredClient, alpha *collector.AlphaClient, gold *collector.GoldFetcher,
	sheets *collector.SheetClient, st *store.JSONStore, rec recorder.Recorder, sheetURL string) *Runner {
	return &Runner{
		Fred:     fred,
		Alpha:    alpha,
		Gold:     gold,
		Sheets:   sheets,
		Store:    st,
		Recorder: rec,
		Registry: DefaultRegistry,
		SheetURL: sheetURL,
	}
}

// Run fetches every registered series in order and persists each one
// before moving on. The first failure aborts the run. The optional
// sheet comes last: a missing URL skips it without a request, and any
// sheet failure is logged and swallowed.
func (r *Runner) Run() error {
	for _, spec := range r.Registry {
		log.Printf("[INFO] fetching %s (%s)", spec.Key, spec.Source)
		start := time.Now()
		records, count, err := r.fetchSeries(spec)
		r.recordFetch(spec.Key, string(spec.Source), count, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", spec.Key, err)
		}
		if err := r.Store.Write(spec.Filename, records); err != nil {
			return fmt.Errorf("write %s: %w", spec.Key, err)
		}
	}

	if r.SheetURL == "" {
		return nil
	}
	log.Println("[INFO] fetching central bank balance sheet CSV")
	start := time.Now()
	rows, err := r.Sheets.FetchSheet(r.SheetURL)
	if err == nil {
		err = r.Store.Write("cb_sheets.json", rows)
	}
	r.recordFetch("cb_sheets", "csv", len(rows), time.Since(start), err)
	if err != nil {
		log.Printf("[WARN] failed to fetch CB sheets: %v", err)
	}
	return nil
}

// fetchSeries dispatches one registry entry to its provider client and
// returns the records alongside their count.
func (r *Runner) fetchSeries(spec SeriesSpec) (interface{}, int, error) {
	switch spec.Source {
	case SourceFred:
		records, err := r.Fred.FetchSeries(spec.SeriesID)
		return records, len(records), err
	case SourceAlphaFX:
		// XAU/USD goes through the gold fallback chain.
		if strings.EqualFold(spec.FromSymbol, "XAU") && strings.EqualFold(spec.ToSymbol, "USD") {
			records, err := r.Gold.Fetch()
			return records, len(records), err
		}
		records, err := r.Alpha.FetchFXDaily(spec.FromSymbol, spec.ToSymbol)
		return records, len(records), err
	case SourceAlphaEquity:
		records, err := r.Alpha.FetchDailyAdjusted(spec.Symbol)
		return records, len(records), err
	default:
		return nil, 0, &collector.FetchError{
			Kind:    collector.KindUnsupportedConfig,
			Op:      "run " + spec.Key,
			Message: fmt.Sprintf("unsupported source %q", spec.Source),
		}
	}
}

func (r *Runner) recordFetch(series, source string, count int, d time.Duration, fetchErr error) {
	evt := &recorder.FetchEvent{Series: series, Source: source, Records: count, Duration: d}
	if fetchErr != nil {
		evt.Err = fetchErr.Error()
	}
	if err := r.Recorder.RecordFetch(evt); err != nil {
		log.Printf("[ERROR] record fetch %s: %v", series, err)
	}
}
