package tradeogre

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/ogrekit/ogrekit/exchanges/account"
	"github.com/ogrekit/ogrekit/exchanges/mock"
	"github.com/ogrekit/ogrekit/exchanges/request"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mockFile  = "../../testdata/http_mock/tradeogre/tradeogre.json"
	apiKey    = "key"
	apiSecret = "secret"
	basicAuth = "Basic a2V5OnNlY3JldA=="
)

var e *TradeOgre

func TestMain(m *testing.M) {
	s, err := mock.NewVCRServer(mockFile)
	if err != nil {
		log.Fatalf("Mock server error %s", err)
	}
	e = New(apiKey, apiSecret, WithAPIURL(s.URL), WithHTTPClient(s.Client()))
	code := m.Run()
	s.Close()
	os.Exit(code)
}

// newRecordingClient returns a client backed by its own mock server so the
// requests it sends can be asserted in isolation
func newRecordingClient(t *testing.T) (*TradeOgre, *mock.VCRServer) {
	t.Helper()
	s, err := mock.NewVCRServer(mockFile)
	require.NoError(t, err, "NewVCRServer must not error")
	t.Cleanup(s.Close)
	return New(apiKey, apiSecret, WithAPIURL(s.URL), WithHTTPClient(s.Client())), s
}

func TestNew(t *testing.T) {
	t.Parallel()
	c := New("k", "s")
	assert.Equal(t, "TradeOgre", c.Name)
	assert.Equal(t, DefaultAPIURL, c.APIURL())
	assert.Zero(t, c.httpClient.Timeout, "the default client must not impose a timeout")
	assert.False(t, c.Verbose)

	client := &http.Client{}
	c = New("k", "s",
		WithAPIURL("http://localhost:1337/api/v1/"),
		WithHTTPClient(client),
		WithUserAgent("ogrekit"),
		WithVerbose(true),
		WithHTTPDebugging(true))
	assert.Equal(t, "http://localhost:1337/api/v1", c.APIURL(), "trailing slash should be trimmed")
	assert.Same(t, client, c.httpClient)
	assert.Equal(t, "ogrekit", c.userAgent)
	assert.True(t, c.Verbose)
	assert.True(t, c.HTTPDebugging)
	assert.NotNil(t, c.Account())
	assert.NotNil(t, c.Exchange())
	assert.NotNil(t, c.Market())
}

func TestGetCredentials(t *testing.T) {
	t.Parallel()
	creds, err := e.GetCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &account.Credentials{Key: apiKey, Secret: apiSecret}, creds)

	override := &account.Credentials{Key: "other", Secret: "pass"}
	creds, err = e.GetCredentials(account.DeployCredentialsToContext(context.Background(), override))
	require.NoError(t, err)
	assert.Equal(t, override, creds)

	creds.Key = "mutated"
	creds, err = e.GetCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, apiKey, creds.Key, "returned credentials must not alias the client")
}

func TestSendHTTPRequest(t *testing.T) {
	t.Parallel()
	err := e.SendHTTPRequest(context.Background(), http.MethodDelete, accountBalances, nil, true, nil)
	assert.ErrorIs(t, err, errUnsupportedMethod)
}

func TestBasicAuthOnSecureEndpointsOnly(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)
	ctx := context.Background()

	_, err := c.Account().Balances(ctx)
	require.NoError(t, err)
	_, err = c.Market().Ticker(ctx, "BTC", "USDT")
	require.NoError(t, err)
	_, err = c.Exchange().Cancel(ctx, "abc123")
	require.NoError(t, err)
	_, err = c.Market().Markets(ctx)
	require.NoError(t, err)

	reqs := s.Requests()
	require.Len(t, reqs, 4)
	assert.Equal(t, basicAuth, reqs[0].Authorization, "balances must be authenticated")
	assert.Empty(t, reqs[1].Authorization, "ticker must not be authenticated")
	assert.Equal(t, basicAuth, reqs[2].Authorization, "cancel must be authenticated")
	assert.Empty(t, reqs[3].Authorization, "markets must not be authenticated")
}

func TestPostEncoding(t *testing.T) {
	t.Parallel()
	c, s := newRecordingClient(t)
	ctx := context.Background()

	_, err := c.Account().Balance(ctx, "BTC")
	require.NoError(t, err)
	_, err = c.Exchange().Orders(ctx, "", "")
	require.NoError(t, err)

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "currency=BTC", reqs[0].Body)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].ContentType)
	assert.Equal(t, http.MethodPost, reqs[1].Method)
	assert.Empty(t, reqs[1].Body, "POST without params must have an empty body")
	assert.Empty(t, reqs[1].ContentType)
}

func TestHTTPErrorContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		if _, err := io.WriteString(w, "rate limited"); err != nil {
			log.Fatal(err)
		}
	}))
	defer srv.Close()
	c := New(apiKey, apiSecret, WithAPIURL(srv.URL), WithHTTPClient(srv.Client()))

	var resp Ticker
	err := c.SendHTTPRequest(context.Background(), http.MethodGet, "/ticker/XMR-BTC", url.Values{"depth": {"5"}}, false, &resp)
	var httpErr *request.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "/ticker/XMR-BTC")
	assert.Contains(t, err.Error(), "depth=5")
	assert.Contains(t, err.Error(), "rate limited")

	_, err = c.Market().Ticker(context.Background(), "XMR", "BTC")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "/ticker/XMR-BTC", httpErr.Path)
}

func TestDecodeFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := io.WriteString(w, "<html>maintenance</html>"); err != nil {
			log.Fatal(err)
		}
	}))
	defer srv.Close()
	c := New(apiKey, apiSecret, WithAPIURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.Account().Balances(context.Background())
	var httpErr *request.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusOK, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "maintenance")
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	c := New(apiKey, apiSecret, WithAPIURL(u))

	_, err := c.Market().Markets(context.Background())
	require.Error(t, err)
	var httpErr *request.HTTPError
	assert.False(t, errors.As(err, &httpErr), "transport failures must not be consolidated")
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Market().Ticker(ctx, "BTC", "USDT")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetRaw(t *testing.T) {
	t.Parallel()
	raw, err := e.GetRaw(context.Background(), "/ticker/BTC-USDT", false)
	require.NoError(t, err)
	assert.Contains(t, raw, `"initialprice":"0.00001900"`)
}

func TestResponseErr(t *testing.T) {
	t.Parallel()
	assert.NoError(t, (&Response{Success: true}).Err())
	assert.ErrorIs(t, (&Response{}).Err(), ErrRequestUnsuccessful)
	err := (&Response{Error: "Invalid currency"}).Err()
	assert.ErrorIs(t, err, ErrRequestUnsuccessful)
	assert.ErrorContains(t, err, "Invalid currency")
}

func TestTradeSide(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Buy, SideFromString("BUY"))
	assert.Equal(t, Sell, SideFromString("sell"))
	assert.Equal(t, UnknownSide, SideFromString("short"))
	assert.Equal(t, "unknown", UnknownSide.String())

	var s TradeSide
	require.NoError(t, s.UnmarshalText([]byte("sell")))
	assert.Equal(t, Sell, s)
	text, err := Buy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "buy", string(text))
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
