package tradeogre

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogrekit/ogrekit/currency"
	"github.com/ogrekit/ogrekit/types"
	"github.com/shopspring/decimal"
)

// ErrRequestUnsuccessful is returned by Response.Err when the exchange
// reported a failed request
var ErrRequestUnsuccessful = errors.New("request unsuccessful")

// Response is the envelope shared by every reply. Domain fields of a result
// are only meaningful when Success is true.
type Response struct {
	Success types.Bool `json:"success"`
	Error   string     `json:"error,omitempty"`
}

// Successful reports whether the exchange accepted the request
func (r *Response) Successful() bool {
	return bool(r.Success)
}

// Err converts a failed envelope into an error, nil on success
func (r *Response) Err() error {
	if r.Successful() {
		return nil
	}
	if r.Error == "" {
		return ErrRequestUnsuccessful
	}
	return fmt.Errorf("%w: %s", ErrRequestUnsuccessful, r.Error)
}

// TradeSide is the side of an order or trade
type TradeSide uint8

// TradeSide values
const (
	UnknownSide TradeSide = iota
	Buy
	Sell
)

// String implements fmt.Stringer
func (s TradeSide) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s TradeSide) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised values
// decode to UnknownSide.
func (s *TradeSide) UnmarshalText(text []byte) error {
	*s = SideFromString(string(text))
	return nil
}

// SideFromString parses a side, case insensitive
func SideFromString(side string) TradeSide {
	switch strings.ToLower(side) {
	case "buy":
		return Buy
	case "sell":
		return Sell
	default:
		return UnknownSide
	}
}

// Order holds an account order. The currency components are derived from
// Pair on access.
type Order struct {
	Response
	ID        string          `json:"uuid"`
	Side      TradeSide       `json:"type"`
	Date      types.Time      `json:"date"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Fulfilled decimal.Decimal `json:"fulfilled"`
	Pair      string          `json:"market"`
}

// Timestamp returns the raw Unix epoch seconds the order was placed at
func (o *Order) Timestamp() int64 {
	return o.Date.Unix()
}

// LocalTime returns the order placement time in the local time zone
func (o *Order) LocalTime() time.Time {
	return o.Date.Local()
}

// Currency1 returns the first currency of the order market
func (o *Order) Currency1() string {
	return currency.ParsePair(o.Pair, true)
}

// Currency2 returns the second currency of the order market
func (o *Order) Currency2() string {
	return currency.ParsePair(o.Pair, false)
}

// TradeOrder is the reply to an order submission
type TradeOrder struct {
	Response
	ID                   string          `json:"uuid"`
	BuyBalanceAvailable  decimal.Decimal `json:"bnewbalavail"`
	SellBalanceAvailable decimal.Decimal `json:"snewbalavail"`
}

// CancelResult is the reply to an order cancellation
type CancelResult struct {
	Response
}

// CurrencyBalances holds the total balance of every currency on the account
type CurrencyBalances struct {
	Response
	Balances map[string]decimal.Decimal `json:"balances"`
}

// CurrencyBalance holds the balance of a single currency. Currency is set by
// the client, the exchange does not return it.
type CurrencyBalance struct {
	Response
	Currency  string          `json:"currency,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	Available decimal.Decimal `json:"available"`
}

// OrderBook holds the buy and sell sides of a market keyed by price
type OrderBook struct {
	Response
	Buy  map[string]decimal.Decimal `json:"buy"`
	Sell map[string]decimal.Decimal `json:"sell"`
}

// TradeHistory is a single executed trade
type TradeHistory struct {
	Date     types.Time      `json:"date"`
	Side     TradeSide       `json:"type"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Ticker holds market statistics for the last 24 hours. InitialPrice is the
// price 24 hours ago. Currency1 and Currency2 are set by the client.
type Ticker struct {
	Response
	InitialPrice decimal.Decimal `json:"initialprice"`
	Price        decimal.Decimal `json:"price"`
	High         decimal.Decimal `json:"high"`
	Low          decimal.Decimal `json:"low"`
	Volume       decimal.Decimal `json:"volume"`
	Bid          decimal.Decimal `json:"bid"`
	Ask          decimal.Decimal `json:"ask"`
	Currency1    string          `json:"currency1,omitempty"`
	Currency2    string          `json:"currency2,omitempty"`
}
