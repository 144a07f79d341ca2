package request

import (
	"io"
	"net/http"

	"github.com/ogrekit/ogrekit/exchanges/account"
)

const userAgent = "User-Agent"

// Requester struct for the request client
type Requester struct {
	HTTPClient *http.Client
	Name       string
	UserAgent  string
}

// RequesterOption is a function option that can be applied to a new Requester
type RequesterOption func(*Requester)

// Item is a temp item for requests
type Item struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    io.Reader
	// Result receives the decoded JSON body. A *string receives the raw body
	// verbatim, nil discards the body.
	Result any
	// BasicAuth attaches an HTTP Basic Authorization header when set
	BasicAuth     *account.Credentials
	Verbose       bool
	HTTPDebugging bool
}

// Generate defines a closure for functionality outside the requester to
// build the request item.
type Generate func() (*Item, error)
