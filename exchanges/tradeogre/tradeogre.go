package tradeogre

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ogrekit/ogrekit/common"
	"github.com/ogrekit/ogrekit/exchanges/account"
	"github.com/ogrekit/ogrekit/exchanges/request"
	"github.com/ogrekit/ogrekit/log"
)

const (
	// DefaultAPIURL is the production REST endpoint
	DefaultAPIURL = "https://tradeogre.com/api/v1"

	accountOrder    = "/account/order/"
	accountOrders   = "/account/orders"
	accountBalances = "/account/balances"
	accountBalance  = "/account/balance"
	orderBuy        = "/order/buy"
	orderSell       = "/order/sell"
	orderCancel     = "/order/cancel"
	marketOrderBook = "/orders/"
	marketHistory   = "/history/"
	marketTicker    = "/ticker/"
	markets         = "/markets"
)

var (
	errUnsupportedMethod = errors.New("unsupported HTTP method")
	errInvalidSide       = errors.New("invalid order side")
)

// TradeOgre is the overarching type across the tradeogre package. It holds
// immutable configuration only and is safe for concurrent use.
type TradeOgre struct {
	Name          string
	Verbose       bool
	HTTPDebugging bool

	apiURL      string
	credentials account.Credentials
	httpClient  *http.Client
	userAgent   string
	requester   *request.Requester
}

// Option configures a TradeOgre client
type Option func(*TradeOgre)

// WithAPIURL overrides the base API URL
func WithAPIURL(u string) Option {
	return func(t *TradeOgre) {
		t.apiURL = common.TrimURL(u)
	}
}

// WithHTTPClient sets the HTTP client used for every request
func WithHTTPClient(c *http.Client) Option {
	return func(t *TradeOgre) {
		t.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header of every request
func WithUserAgent(ua string) Option {
	return func(t *TradeOgre) {
		t.userAgent = ua
	}
}

// WithVerbose enables request and response logging
func WithVerbose(verbose bool) Option {
	return func(t *TradeOgre) {
		t.Verbose = verbose
	}
}

// WithHTTPDebugging enables request and response dumps
func WithHTTPDebugging(debug bool) Option {
	return func(t *TradeOgre) {
		t.HTTPDebugging = debug
	}
}

// New returns a client authenticating with the supplied API key and secret
func New(apiKey, apiSecret string, opts ...Option) *TradeOgre {
	t := &TradeOgre{
		Name:        "TradeOgre",
		apiURL:      DefaultAPIURL,
		credentials: account.Credentials{Key: apiKey, Secret: apiSecret},
	}
	for _, o := range opts {
		o(t)
	}
	if t.httpClient == nil {
		// Deadlines belong to the caller's context
		t.httpClient = &http.Client{}
	}
	t.requester = request.New(t.Name, t.httpClient, request.WithUserAgent(t.userAgent))
	return t
}

// Account returns the account information endpoints
func (t *TradeOgre) Account() *AccountInfo {
	return &AccountInfo{t: t}
}

// Exchange returns the order management endpoints
func (t *TradeOgre) Exchange() *AccountExchange {
	return &AccountExchange{t: t}
}

// Market returns the public market data endpoints
func (t *TradeOgre) Market() *MarketData {
	return &MarketData{t: t}
}

// APIURL returns the base API URL requests are sent to
func (t *TradeOgre) APIURL() string {
	return t.apiURL
}

// GetCredentials returns credentials deployed to the context if present,
// otherwise the credentials supplied at construction
func (t *TradeOgre) GetCredentials(ctx context.Context) (*account.Credentials, error) {
	creds, err := account.GetCredentialsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if creds != nil {
		return creds, nil
	}
	creds = new(account.Credentials)
	*creds = t.credentials
	return creds, nil
}

// SendHTTPRequest sends a single request to path relative to the API URL.
// GET params are sent as a query string, POST params as a URL encoded form;
// a POST with nil params has no body. Secure requests carry HTTP Basic
// credentials. A *string result receives the raw body.
func (t *TradeOgre) SendHTTPRequest(ctx context.Context, method, path string, params url.Values, secure bool, result any) error {
	if method != http.MethodGet && method != http.MethodPost {
		return fmt.Errorf("%w: %s", errUnsupportedMethod, method)
	}

	var creds *account.Credentials
	if secure {
		var err error
		creds, err = t.GetCredentials(ctx)
		if err != nil {
			return err
		}
	}

	endpoint := t.apiURL + path
	verbose := request.IsVerbose(ctx, t.Verbose)
	if verbose && creds != nil {
		log.Debugf(log.ExchangeSys, "%s authenticating with %s", t.Name, creds)
	}
	return t.requester.SendPayload(ctx, func() (*request.Item, error) {
		item := &request.Item{
			Method:        method,
			Path:          endpoint,
			Result:        result,
			BasicAuth:     creds,
			Verbose:       verbose,
			HTTPDebugging: t.HTTPDebugging,
		}
		if method == http.MethodGet {
			item.Path = common.EncodeURLValues(endpoint, params)
			return item, nil
		}
		if params != nil {
			body := params.Encode()
			if verbose {
				log.Debugf(log.ExchangeSys, "%s request body: %s", t.Name, body)
			}
			item.Body = strings.NewReader(body)
			item.Headers = map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
		}
		return item, nil
	})
}

// GetRaw sends a GET request and returns the response body verbatim, for
// endpoints without a typed result
func (t *TradeOgre) GetRaw(ctx context.Context, path string, secure bool) (string, error) {
	var raw string
	if err := t.SendHTTPRequest(ctx, http.MethodGet, path, nil, secure, &raw); err != nil {
		return "", err
	}
	return raw, nil
}
