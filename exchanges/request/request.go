package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/ogrekit/ogrekit/log"
)

var (
	errRequestSystemIsNil     = errors.New("request system is nil")
	errRequestFunctionIsNil   = errors.New("request function is nil")
	errRequestItemNil         = errors.New("request item is nil")
	errInvalidPath            = errors.New("invalid path")
	errHTTPClientIsNil        = errors.New("http client is nil")
	errUnsuccessfulStatusCode = errors.New("unsuccessful HTTP status code")
)

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) *Requester {
	r := &Requester{
		HTTPClient: httpRequester,
		Name:       name,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithUserAgent sets the user agent sent with every request
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.UserAgent = ua
	}
}

// SendPayload sends exactly one HTTP request and decodes its response. There
// are no retries; cancellation and timeouts belong to ctx and the HTTP client.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) error {
	if r == nil {
		return errRequestSystemIsNil
	}
	if newRequest == nil {
		return errRequestFunctionIsNil
	}
	if r.HTTPClient == nil {
		return errHTTPClientIsNil
	}

	p, err := newRequest()
	if err != nil {
		return err
	}

	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return err
	}

	verbose := IsVerbose(ctx, p.Verbose)
	if verbose {
		log.Debugf(log.RequestSys, "%s request path: %s", r.Name, p.Path)
		for k, d := range req.Header {
			if k == "Authorization" {
				d = []string{"[redacted]"}
			}
			log.Debugf(log.RequestSys, "%s request header [%s]: %s", r.Name, k, d)
		}
		log.Debugf(log.RequestSys, "%s request type: %s", r.Name, p.Method)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		// No response to recover context from, hand back the transport error.
		return err
	}
	defer resp.Body.Close()

	contents, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			Name:       r.Name,
			Path:       req.URL.Path,
			Query:      req.URL.RawQuery,
			StatusCode: resp.StatusCode,
			Err:        errUnsuccessfulStatusCode,
		}
		if readErr != nil {
			httpErr.Err = fmt.Errorf("%w: %w", errUnsuccessfulStatusCode, readErr)
		} else {
			httpErr.Body = string(contents)
		}
		return httpErr
	}
	if readErr != nil {
		return readErr
	}

	if p.HTTPDebugging {
		dump, err := httputil.DumpResponse(resp, false)
		if err != nil {
			log.Errorf(log.RequestSys, "DumpResponse invalid response: %v:", err)
		}
		log.Debugf(log.RequestSys, "DumpResponse Headers (%v):\n%s", p.Path, dump)
		log.Debugf(log.RequestSys, "DumpResponse Body (%v):\n %s", p.Path, string(contents))
	}

	if verbose {
		log.Debugf(log.RequestSys, "HTTP status: %s, Code: %v", resp.Status, resp.StatusCode)
		if !p.HTTPDebugging {
			log.Debugf(log.RequestSys, "%s raw response: %s", r.Name, string(contents))
		}
	}

	switch result := p.Result.(type) {
	case nil:
		return nil
	case *string:
		*result = string(contents)
		return nil
	default:
		if err := json.Unmarshal(contents, result); err != nil {
			return &HTTPError{
				Name:       r.Name,
				Path:       req.URL.Path,
				Query:      req.URL.RawQuery,
				StatusCode: resp.StatusCode,
				Body:       string(contents),
				Err:        err,
			}
		}
		return nil
	}
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if i.BasicAuth != nil {
		req.Header.Set("Authorization", i.BasicAuth.BasicAuthHeader())
	}

	if r.UserAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.UserAgent)
	}

	if i.HTTPDebugging {
		// Err not evaluated due to validation check above
		dump, _ := httputil.DumpRequestOut(req, true)
		log.Debugf(log.RequestSys, "DumpRequest:\n%s", dump)
	}

	return req, nil
}
