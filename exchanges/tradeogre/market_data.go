package tradeogre

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/buger/jsonparser"
	"github.com/ogrekit/ogrekit/currency"
)

var errMalformedMarketEntry = errors.New("malformed market entry")

// MarketData groups the public market endpoints
type MarketData struct {
	t *TradeOgre
}

func marketPath(prefix, currency1, currency2 string) string {
	return prefix + url.PathEscape(currency.MakePair(currency1, currency2))
}

// OrderBook returns the buy and sell sides of a market
func (m *MarketData) OrderBook(ctx context.Context, currency1, currency2 string) (*OrderBook, error) {
	var resp OrderBook
	if err := m.t.SendHTTPRequest(ctx, http.MethodGet, marketPath(marketOrderBook, currency1, currency2), nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeHistory returns the recent trades of a market
func (m *MarketData) TradeHistory(ctx context.Context, currency1, currency2 string) ([]TradeHistory, error) {
	var resp []TradeHistory
	if err := m.t.SendHTTPRequest(ctx, http.MethodGet, marketPath(marketHistory, currency1, currency2), nil, false, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Ticker returns the 24 hour statistics of a market
func (m *MarketData) Ticker(ctx context.Context, currency1, currency2 string) (*Ticker, error) {
	var resp Ticker
	if err := m.t.SendHTTPRequest(ctx, http.MethodGet, marketPath(marketTicker, currency1, currency2), nil, false, &resp); err != nil {
		return nil, err
	}
	if resp.Successful() {
		resp.Currency1 = currency1
		resp.Currency2 = currency2
	}
	return &resp, nil
}

// Markets returns the ticker of every listed market, in the order the
// exchange lists them
func (m *MarketData) Markets(ctx context.Context) ([]Ticker, error) {
	raw, err := m.t.GetRaw(ctx, markets, false)
	if err != nil {
		return nil, err
	}
	return flattenMarkets([]byte(raw))
}

// flattenMarkets converts the exchange's list of single key objects
// [{"BTC-USDT":{...}},...] into tickers carrying the pair components. A
// single object of markets is accepted too. Anything that is not a container
// yields an empty list.
func flattenMarkets(data []byte) ([]Ticker, error) {
	tickers := []Ticker{}
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return tickers, nil
	}
	switch dataType {
	case jsonparser.Array:
		var entryErr error
		_, err = jsonparser.ArrayEach(value, func(entry []byte, entryType jsonparser.ValueType, _ int, _ error) {
			if entryErr != nil {
				return
			}
			if entryType != jsonparser.Object {
				entryErr = fmt.Errorf("%w: %s", errMalformedMarketEntry, entry)
				return
			}
			tickers, entryErr = appendMarkets(tickers, entry)
		})
		if err != nil {
			return nil, err
		}
		if entryErr != nil {
			return nil, entryErr
		}
		return tickers, nil
	case jsonparser.Object:
		return appendMarkets(tickers, value)
	default:
		return tickers, nil
	}
}

func appendMarkets(tickers []Ticker, object []byte) ([]Ticker, error) {
	err := jsonparser.ObjectEach(object, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		if dataType != jsonparser.Object {
			return fmt.Errorf("%w: %s", errMalformedMarketEntry, key)
		}
		var tick Ticker
		if err := json.Unmarshal(value, &tick); err != nil {
			return fmt.Errorf("%w: %s: %w", errMalformedMarketEntry, key, err)
		}
		pair := string(key)
		tick.Currency1 = currency.ParsePair(pair, true)
		tick.Currency2 = currency.ParsePair(pair, false)
		tickers = append(tickers, tick)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickers, nil
}
