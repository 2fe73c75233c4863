package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
)

// DefaultLiveURL is the quote service queried when none is configured.
const DefaultLiveURL = "https://query1.finance.yahoo.com"

// Live fetches quotes and historical closes from a Yahoo-compatible quote
// service over HTTP.
type Live struct {
	// BaseURL of the service, DefaultLiveURL when empty.
	BaseURL string
	// Client used for requests. When nil, quotes use http.DefaultClient and
	// historical closes go through a daily-expiring disk cache.
	Client *http.Client
}

// NewLive returns a live provider against the default quote service.
func NewLive() *Live {
	return &Live{BaseURL: DefaultLiveURL}
}

func (l *Live) base() string {
	if l.BaseURL == "" {
		return DefaultLiveURL
	}
	return strings.TrimSuffix(l.BaseURL, "/")
}

func (l *Live) client() *http.Client {
	if l.Client == nil {
		return http.DefaultClient
	}
	return l.Client
}

// pick extracts a single value at a jsonpath, unwrapping the one-element list
// the library sometimes returns instead of a scalar.
func pick(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func pickFloat(jobj any, path string) (float64, error) {
	jval, err := pick(jobj, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return val, nil
}

func pickString(jobj any, path string) (string, error) {
	jval, err := pick(jobj, path)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return val, nil
}

// Quote fetches the current quote of one ticker.
//
// The payload is the deeply nested quoteResponse envelope; jsonpath keeps the
// extraction readable instead of declaring the whole shape as structs.
func (l *Live) Quote(ctx context.Context, ticker string) (stockfolio.Quote, error) {
	addr := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", l.base(), url.QueryEscape(ticker))

	var jobj any
	if err := jwget(l.client(), addr, &jobj); err != nil {
		return stockfolio.Quote{}, fmt.Errorf("cannot retrieve quote for %q: %w", ticker, err)
	}

	result := "$.quoteResponse.result[0]"
	if _, err := pick(jobj, result); err != nil {
		return stockfolio.Quote{}, fmt.Errorf("no quote for %q: %w", ticker, err)
	}

	q := stockfolio.Quote{Ticker: strings.ToUpper(ticker)}
	var err error
	if q.Price, err = pickFloat(jobj, result+".regularMarketPrice"); err != nil {
		return stockfolio.Quote{}, err
	}
	// The remaining fields are decorative, a payload missing them still
	// yields a usable quote.
	q.CompanyName, _ = pickString(jobj, result+".longName")
	q.Volume, _ = pickFloat(jobj, result+".regularMarketVolume")
	q.DayHigh, _ = pickFloat(jobj, result+".regularMarketDayHigh")
	q.DayLow, _ = pickFloat(jobj, result+".regularMarketDayLow")
	q.PreviousClose, _ = pickFloat(jobj, result+".regularMarketPreviousClose")
	return q, nil
}

// History fetches the trailing daily closes of one ticker.
//
// The endpoint answers a flat array of {date, close} objects, bounds
// included, most recent last. Non-trading days are simply absent; no fill is
// applied, the valuation layer knows how to handle the gaps.
func (l *Live) History(ctx context.Context, ticker string, days int) (*date.History[float64], error) {
	to := date.Today()
	from := to.Add(-(days - 1))
	addr := fmt.Sprintf("%s/v1/finance/eod/%s?from=%s&to=%s", l.base(), url.PathEscape(ticker), from, to)

	type point struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"close"`
	}
	// Closes don't move intraday: query that endpoint at most once a day.
	client := l.Client
	if client == nil {
		client = newDailyCachingClient()
	}
	content := make([]point, 0)
	if err := jwget(client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot retrieve history for %q: %w", ticker, err)
	}

	h := new(date.History[float64])
	for _, pt := range content {
		h.Append(pt.Date, pt.Close)
	}
	return h, nil
}
