package common

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidHTTPTimeout is returned when an HTTP timeout is not positive
var ErrInvalidHTTPTimeout = errors.New("http timeout must be positive")

// NewHTTPClientWithTimeout initialises a new HTTP client and its underlying
// transport IdleConnTimeout with the specified timeout duration
func NewHTTPClientWithTimeout(t time.Duration) *http.Client {
	tr := &http.Transport{
		// Added IdleConnTimeout to reduce the time of idle connections which
		// could potentially slow macOS reconnection when there is a sudden
		// network disconnection/issue
		IdleConnTimeout: t,
		Proxy:           http.ProxyFromEnvironment,
	}
	return &http.Client{
		Transport: tr,
		Timeout:   t,
	}
}

// EncodeURLValues concatenates url values onto a url string and returns a
// string
func EncodeURLValues(urlPath string, values url.Values) string {
	if len(values) == 0 {
		return urlPath
	}
	return urlPath + "?" + values.Encode()
}

// AppendError appends an error to a list of existing errors, either can be
// nil. Returns a single error.
func AppendError(original, incoming error) error {
	if incoming == nil {
		return original
	}
	if original == nil {
		return incoming
	}
	return errors.Join(original, incoming)
}

// TrimURL removes any trailing slash from a base url
func TrimURL(u string) string {
	return strings.TrimRight(u, "/")
}
