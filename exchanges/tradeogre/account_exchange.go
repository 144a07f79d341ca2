package tradeogre

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ogrekit/ogrekit/currency"
	"github.com/shopspring/decimal"
)

// AccountExchange groups the order management endpoints
type AccountExchange struct {
	t *TradeOgre
}

// Order returns a single account order by its uuid
func (e *AccountExchange) Order(ctx context.Context, id string) (*Order, error) {
	var resp Order
	if err := e.t.SendHTTPRequest(ctx, http.MethodGet, accountOrder+url.PathEscape(id), nil, true, &resp); err != nil {
		return nil, err
	}
	if resp.Successful() {
		resp.ID = id
	}
	return &resp, nil
}

// Orders returns the open orders of the account. The result is limited to a
// single market only when both currencies are supplied.
func (e *AccountExchange) Orders(ctx context.Context, currency1, currency2 string) ([]Order, error) {
	var params url.Values
	if currency1 != "" && currency2 != "" {
		params = url.Values{}
		params.Set("market", currency.MakePair(currency1, currency2))
	}
	var resp []Order
	if err := e.t.SendHTTPRequest(ctx, http.MethodPost, accountOrders, params, true, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Create submits a limit order and, once accepted, returns the order as
// reported by the exchange. A rejected submission is returned as an Order
// with Success false and the exchange error message; no follow-up request is
// made in that case. Sides other than Buy and Sell are rejected with
// errInvalidSide before anything is sent.
func (e *AccountExchange) Create(ctx context.Context, currency1, currency2 string, side TradeSide, price, quantity decimal.Decimal) (*Order, error) {
	path := orderBuy
	switch side {
	case Buy:
	case Sell:
		path = orderSell
	default:
		return nil, fmt.Errorf("%w: %s", errInvalidSide, side)
	}

	params := url.Values{}
	params.Set("market", currency.MakePair(currency1, currency2))
	params.Set("price", price.String())
	params.Set("quantity", quantity.String())

	var result TradeOrder
	if err := e.t.SendHTTPRequest(ctx, http.MethodPost, path, params, true, &result); err != nil {
		return nil, err
	}
	if !result.Successful() {
		return &Order{Response: Response{Error: result.Error}}, nil
	}
	return e.Order(ctx, result.ID)
}

// Cancel cancels an open order by its uuid
func (e *AccountExchange) Cancel(ctx context.Context, id string) (*CancelResult, error) {
	params := url.Values{}
	params.Set("uuid", id)
	var resp CancelResult
	if err := e.t.SendHTTPRequest(ctx, http.MethodPost, orderCancel, params, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
