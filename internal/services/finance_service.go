package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

var ErrUnknownTimeRange = errors.New("unknown time range")

// StockQuote is the reshaped Alpha Vantage global quote the dashboard and
// the realtime stock poller consume.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	Close         float64 `json:"close"`
}

// SymbolMatch is one result of a symbol search.
type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// FinanceService wraps the Alpha Vantage quote API. Unlike the other
// proxies it reshapes the positional upstream fields into stable JSON.
type FinanceService struct {
	apiKey  string
	baseURL string
}

func NewFinanceService(apiKey string) *FinanceService {
	return &FinanceService{apiKey: apiKey, baseURL: alphaVantageBaseURL}
}

func (s *FinanceService) GetQuote(ctx context.Context, symbol string) (*StockQuote, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", s.apiKey)

	raw, err := fetchJSON(ctx, s.baseURL, q)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Quote map[string]string `json:"Global Quote"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode quote: %w", err)
	}
	if len(envelope.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for symbol %q", symbol)
	}

	price := parseFloat(envelope.Quote["05. price"])
	return &StockQuote{
		Symbol:        envelope.Quote["01. symbol"],
		Price:         price,
		Change:        parseFloat(envelope.Quote["09. change"]),
		ChangePercent: parseFloat(strings.TrimSuffix(envelope.Quote["10. change percent"], "%")),
		Volume:        parseInt(envelope.Quote["06. volume"]),
		High:          parseFloat(envelope.Quote["03. high"]),
		Low:           parseFloat(envelope.Quote["04. low"]),
		Open:          parseFloat(envelope.Quote["02. open"]),
		Close:         price,
	}, nil
}

// GetHistoricalData returns the raw time series for a range. The range maps
// to an upstream function and interval pair.
func (s *FinanceService) GetHistoricalData(ctx context.Context, symbol, timeRange string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var function, interval string
	switch timeRange {
	case "1d":
		function, interval = "TIME_SERIES_INTRADAY", "5min"
	case "1w":
		function, interval = "TIME_SERIES_DAILY", "60min"
	case "1m", "1y":
		function, interval = "TIME_SERIES_DAILY", "daily"
	default:
		return nil, ErrUnknownTimeRange
	}

	q := url.Values{}
	q.Set("function", function)
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("apikey", s.apiKey)

	return fetchJSON(ctx, s.baseURL, q)
}

func (s *FinanceService) SearchSymbols(ctx context.Context, query string) ([]SymbolMatch, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("function", "SYMBOL_SEARCH")
	q.Set("keywords", query)
	q.Set("apikey", s.apiKey)

	raw, err := fetchJSON(ctx, s.baseURL, q)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		BestMatches []map[string]string `json:"bestMatches"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode symbol search: %w", err)
	}

	matches := make([]SymbolMatch, 0, len(envelope.BestMatches))
	for _, m := range envelope.BestMatches {
		matches = append(matches, SymbolMatch{
			Symbol: m["1. symbol"],
			Name:   m["2. name"],
		})
	}
	return matches, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}
