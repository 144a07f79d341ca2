package tradeogre

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/ogrekit/ogrekit/exchanges/request"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPrice    = decimal.RequireFromString("0.00002")
	testQuantity = decimal.NewFromInt(100)
)

func TestOrder(t *testing.T) {
	t.Parallel()
	o, err := e.Exchange().Order(context.Background(), "abc123")
	require.NoError(t, err)
	require.True(t, o.Successful())
	assert.Equal(t, "abc123", o.ID, "id should be attached on success")
	assert.Equal(t, Buy, o.Side)
	assert.Equal(t, int64(1700000000), o.Timestamp())
	assert.Equal(t, o.Date.Time().Local(), o.LocalTime())
	assert.Equal(t, "BTC", o.Currency1())
	assert.Equal(t, "USDT", o.Currency2())
	requireDecimal(t, "0.00002", o.Price)
	requireDecimal(t, "100", o.Quantity)
	requireDecimal(t, "25", o.Fulfilled)

	o, err = e.Exchange().Order(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, o.Successful())
	assert.Equal(t, "Order not found", o.Error)
	assert.Empty(t, o.ID, "id must not be attached on failure")
}

func TestOrders(t *testing.T) {
	t.Parallel()
	orders, err := e.Exchange().Orders(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "def456", orders[1].ID)
	assert.Equal(t, Sell, orders[1].Side)
	assert.Equal(t, "XMR", orders[1].Currency1())
	assert.Equal(t, "BTC", orders[1].Currency2())

	orders, err = e.Exchange().Orders(context.Background(), "BTC", "USDT")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "abc123", orders[0].ID)

	// A single currency is not enough to filter by market
	orders, err = e.Exchange().Orders(context.Background(), "BTC", "")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestCreate(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)

	o, err := c.Exchange().Create(context.Background(), "BTC", "USDT", Buy, testPrice, testQuantity)
	require.NoError(t, err)
	require.True(t, o.Successful())
	assert.Equal(t, "abc123", o.ID)
	requireDecimal(t, "25", o.Fulfilled)

	reqs := s.Requests()
	require.Len(t, reqs, 2, "successful creation must fetch the created order")
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/order/buy", reqs[0].Path)
	vals, err := url.ParseQuery(reqs[0].Body)
	require.NoError(t, err)
	assert.Equal(t, "BTC-USDT", vals.Get("market"))
	assert.Equal(t, "0.00002", vals.Get("price"))
	assert.Equal(t, "100", vals.Get("quantity"))
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, "/account/order/abc123", reqs[1].Path)
}

func TestCreateFailure(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)

	o, err := c.Exchange().Create(context.Background(), "BTC", "USDT", Sell, testPrice, testQuantity)
	require.NoError(t, err, "a rejected order must not be returned as an error")
	assert.False(t, o.Successful())
	assert.Equal(t, "Insufficient funds", o.Error)
	assert.Equal(t, &Order{Response: Response{Error: "Insufficient funds"}}, o, "a rejected order must carry no domain fields")

	reqs := s.Requests()
	require.Len(t, reqs, 1, "a rejected order must not be fetched")
	assert.Equal(t, "/order/sell", reqs[0].Path)
}

func TestCreateLookupRejected(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)

	o, err := c.Exchange().Create(context.Background(), "XMR", "BTC", Buy, decimal.RequireFromString("0.006"), decimal.NewFromInt(1))
	require.NoError(t, err, "an unsuccessful lookup envelope must not be returned as an error")
	assert.False(t, o.Successful())
	assert.Equal(t, "Order not found", o.Error)
	assert.Empty(t, o.ID)

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/order/buy", reqs[0].Path)
	assert.Equal(t, "/account/order/ghost1", reqs[1].Path)
}

func TestCreateLookupTransportError(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method == http.MethodPost && r.URL.Path == "/order/buy" {
			// A fresh connection for the lookup stops the transport retrying it
			w.Header().Set("Connection", "close")
			_, _ = w.Write([]byte(`{"success":true,"uuid":"abc123"}`))
			return
		}
		conn, _, err := w.(http.Hijacker).Hijack()
		if err != nil {
			return
		}
		_ = conn.Close()
	}))
	defer s.Close()
	c := New(apiKey, apiSecret, WithAPIURL(s.URL), WithHTTPClient(s.Client()))

	o, err := c.Exchange().Create(context.Background(), "BTC", "USDT", Buy, testPrice, testQuantity)
	require.Error(t, err, "a failed lookup must be propagated")
	assert.Nil(t, o)
	var httpErr *request.HTTPError
	assert.False(t, errors.As(err, &httpErr), "a dropped connection is not an HTTP error")
	assert.Equal(t, int32(2), hits.Load(), "Create must stop after the failed lookup")
}

func TestCreateInvalidSide(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)
	_, err := c.Exchange().Create(context.Background(), "BTC", "USDT", UnknownSide, testPrice, testQuantity)
	assert.ErrorIs(t, err, errInvalidSide)
	assert.Empty(t, s.Requests())
}

func TestCancel(t *testing.T) {
	t.Parallel()
	resp, err := e.Exchange().Cancel(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, resp.Successful())
}
