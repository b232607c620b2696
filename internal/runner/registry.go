package runner

// Source identifies which provider serves a series.
type Source string

const (
	SourceFred        Source = "fred"
	SourceAlphaFX     Source = "alpha_fx"
	SourceAlphaEquity Source = "alpha_equity"
)

// SeriesSpec describes one series to fetch: where it comes from and
// which file it lands in. Only the fields matching its Source are set.
type SeriesSpec struct {
	Key        string
	Source     Source
	Filename   string
	SeriesID   string // fred series id
	FromSymbol string // alpha_fx currency pair
	ToSymbol   string
	Symbol     string // alpha_equity ticker
}

// DefaultRegistry lists every series a run fetches, in fetch order.
var DefaultRegistry = []SeriesSpec{
	{Key: "dfii10", Source: SourceFred, SeriesID: "DFII10", Filename: "dfii10.json"},
	{Key: "dtwexbgs", Source: SourceFred, SeriesID: "DTWEXBGS", Filename: "dtwexbgs.json"},
	{Key: "xauusd", Source: SourceAlphaFX, FromSymbol: "XAU", ToSymbol: "USD", Filename: "xauusd.json"},
	{Key: "gld", Source: SourceAlphaEquity, Symbol: "GLD", Filename: "gld.json"},
	{Key: "iau", Source: SourceAlphaEquity, Symbol: "IAU", Filename: "iau.json"},
}
