package tradeogre

import (
	"context"
	"net/http"
	"net/url"
)

// AccountInfo groups the account balance endpoints
type AccountInfo struct {
	t *TradeOgre
}

// Balances returns the total balance of every currency on the account
func (a *AccountInfo) Balances(ctx context.Context) (*CurrencyBalances, error) {
	var resp CurrencyBalances
	if err := a.t.SendHTTPRequest(ctx, http.MethodGet, accountBalances, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Balance returns the total and available balance of a single currency
func (a *AccountInfo) Balance(ctx context.Context, currency string) (*CurrencyBalance, error) {
	params := url.Values{}
	params.Set("currency", currency)
	var resp CurrencyBalance
	if err := a.t.SendHTTPRequest(ctx, http.MethodPost, accountBalance, params, true, &resp); err != nil {
		return nil, err
	}
	if resp.Successful() {
		resp.Currency = currency
	}
	return &resp, nil
}
