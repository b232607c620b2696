package collector

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"GoldSentinel/internal/model"
	"GoldSentinel/internal/parse"
)

// SheetClient fetches the optional operator-supplied balance sheet
// CSV.
type SheetClient struct {
	Client *http.Client
}

// NewSheetClient creates a sheet client with optional proxy support.
func NewSheetClient(proxyURL string) *SheetClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &SheetClient{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// FetchSheet downloads a CSV document and converts each row into a
// header-keyed record. Columns named "date" in any letter case pass
// through as strings; every other column is parsed as a float or null.
// Rows sort on the exact lowercase "date" key, so a sheet without that
// column fails the fetch.
func (c *SheetClient) FetchSheet(rawURL string) ([]model.CbSheetRow, error) {
	const op = "cb_sheets csv"

	resp, err := c.Client.Get(rawURL)
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

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1 // ragged rows are tolerated

	header, err := reader.Read()
	if err == io.EOF {
		return []model.CbSheetRow{}, nil
	}
	if err != nil {
		return nil, &FetchError{Kind: KindProvider, Op: op, Err: fmt.Errorf("read header: %w", err)}
	}

	rows := make([]model.CbSheetRow, 0, 64)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FetchError{Kind: KindProvider, Op: op, Err: fmt.Errorf("read row: %w", err)}
		}
		row := make(model.CbSheetRow, len(header))
		for i, col := range header {
			if i >= len(fields) {
				row[col] = nil // short row, column absent
				continue
			}
			if strings.EqualFold(col, "date") {
				row[col] = fields[i]
			} else {
				row[col] = parse.Float(fields[i])
			}
		}
		rows = append(rows, row)
	}

	if err := sortByDate(op, rows, func(r model.CbSheetRow) string {
		s, _ := r["date"].(string)
		return s
	}); err != nil {
		return nil, err
	}
	return rows, nil
}
